package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer renders command results as text or JSON. Field elements are
// printed as decimal integers.
type Printer struct {
	format OutputFormat
	writer io.Writer
}

func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

type shareView struct {
	Row   int    `json:"row"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (p *Printer) PrintShares(fieldName string, m *lsss.AccessMatrix, shares *lsss.Shares) error {
	views := make([]shareView, len(shares.Rows))
	for i, s := range shares.Rows {
		views[i] = shareView{Row: i, Label: string(m.RowLabel(i)), Value: s.String()}
	}
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]any{
			"field":  fieldName,
			"shares": views,
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Field: %s\n", fieldName)
		fmt.Fprintln(p.writer, "Shares:")
		for _, v := range views {
			fmt.Fprintf(p.writer, "  %s[%d]: %s\n", v.Label, v.Row, v.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func coefficientStrings(c lsss.CoefficientMap) map[string]string {
	out := make(map[string]string, len(c))
	for a, v := range c {
		out[string(a)] = v.String()
	}
	return out
}

func attributeStrings(attrs []lsss.Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = string(a)
	}
	return out
}

func (p *Printer) PrintCoefficients(fieldName string, c lsss.CoefficientMap) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]any{
			"field":        fieldName,
			"attributes":   attributeStrings(c.Attributes()),
			"coefficients": coefficientStrings(c),
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Field: %s\n", fieldName)
		p.printCoefficientLines(c)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printCoefficientLines(c lsss.CoefficientMap) {
	fmt.Fprintln(p.writer, "Coefficients:")
	for _, a := range c.Attributes() {
		fmt.Fprintf(p.writer, "  %s: %s\n", a, c[a])
	}
}

func (p *Printer) PrintRoundTrip(fieldName string, c lsss.CoefficientMap, recovered lsss.Element, match bool) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]any{
			"field":        fieldName,
			"coefficients": coefficientStrings(c),
			"recovered":    recovered.String(),
			"match":        match,
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Field: %s\n", fieldName)
		p.printCoefficientLines(c)
		fmt.Fprintf(p.writer, "Recovered: %s\n", recovered)
		fmt.Fprintf(p.writer, "Match: %t\n", match)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

type fieldView struct {
	Name    string `json:"name"`
	Modulus string `json:"modulus"`
	Size    int    `json:"size"`
}

func (p *Printer) PrintFields(fields []fieldView) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]any{
			"fields": fields,
		})
	case OutputFormatText:
		fmt.Fprintln(p.writer, "Available Fields:")
		for _, f := range fields {
			fmt.Fprintf(p.writer, "  - %-10s %d bytes, p = %s\n", f.Name, f.Size, f.Modulus)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

type policyView struct {
	Name       string    `json:"name,omitempty"`
	Field      string    `json:"field"`
	Labels     []string  `json:"labels"`
	Rows       [][]int64 `json:"rows"`
	Presented  []string  `json:"presented,omitempty"`
	Authorized *bool     `json:"authorized,omitempty"`
	Minimal    []string  `json:"minimal,omitempty"`
}

func (p *Printer) PrintPolicy(v policyView, yamlDoc []byte) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(v)
	case OutputFormatText:
		fmt.Fprint(p.writer, string(yamlDoc))
		if v.Authorized != nil {
			fmt.Fprintf(p.writer, "# presented:  %s\n", strings.Join(v.Presented, ", "))
			fmt.Fprintf(p.writer, "# authorized: %t\n", *v.Authorized)
			if *v.Authorized {
				fmt.Fprintf(p.writer, "# minimal:    %s\n", strings.Join(v.Minimal, ", "))
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
