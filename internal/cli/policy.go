package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/lsss-go/internal/policyfile"
	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

type policy struct {
	file   *policyfile.File
	matrix *lsss.AccessMatrix
	field  field.Field
}

// loadPolicy reads the policy file and resolves the field: --field or
// LSSS_FIELD first, then the file's own field, then bn254.
func (a *app) loadPolicy(cmd *cobra.Command, path string) (*policy, error) {
	file, err := policyfile.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := file.Matrix()
	if err != nil {
		return nil, err
	}

	name := a.settings.Field
	if name == "" {
		name = file.Field
	}
	if name == "" {
		name = defaultField
	}
	f, err := field.ByName(name)
	if err != nil {
		return nil, err
	}

	a.logger.Info(a.ctx(cmd), "policy loaded", "path", path, "rows", m.Rows(), "cols", m.Cols(), "field", f.Name())
	return &policy{file: file, matrix: m, field: f}, nil
}

// parseSecret accepts a decimal (or 0x-prefixed hex) integer in [0, p).
func parseSecret(f field.Field, s string) (field.Element, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("secret %q is not an integer", s)
	}
	if v.Sign() < 0 || v.Cmp(f.Modulus()) >= 0 {
		return nil, fmt.Errorf("secret is outside [0, p) for field %s", f.Name())
	}
	return f.FromBigInt(v), nil
}

func toAttributes(names []string) []lsss.Attribute {
	out := make([]lsss.Attribute, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, lsss.Attribute(n))
		}
	}
	return out
}

func (a *app) policyCommand() *cobra.Command {
	var (
		policyPath string
		attrs      []string
	)
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Validate a policy file and optionally test a set of attributes",
		Long: `Validate a policy file and print it in normalised form.

With --attrs, also report whether the attributes satisfy the policy and
which minimal subset reconstruction would use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pol, err := a.loadPolicy(cmd, policyPath)
			if err != nil {
				return err
			}
			doc, err := policyfile.FromMatrix(pol.file.Name, pol.field.Name(), pol.matrix).Marshal()
			if err != nil {
				return err
			}
			view := policyView{
				Name:   pol.file.Name,
				Field:  pol.field.Name(),
				Labels: attributeStrings(pol.matrix.Labels()),
				Rows:   pol.matrix.Entries(),
			}

			if cmd.Flags().Changed("attrs") {
				res, err := lsss.NewSpanResolver(pol.field, pol.matrix)
				if err != nil {
					return err
				}
				presented := toAttributes(attrs)
				minimal, ok := res.MinimalSatisfyingSubset(presented)
				view.Presented = attributeStrings(presented)
				view.Authorized = &ok
				view.Minimal = attributeStrings(minimal)
			}
			return a.printer().PrintPolicy(view, doc)
		},
	}
	cmd.Flags().StringVarP(&policyPath, "policy", "p", "", "policy file (YAML)")
	cmd.Flags().StringSliceVarP(&attrs, "attrs", "a", nil, "comma-separated attributes to test")
	_ = cmd.MarkFlagRequired("policy")
	return cmd
}
