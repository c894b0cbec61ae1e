package lsss

import (
	"sort"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

// Field is an alias for field.Field.
type Field = field.Field

// Element is an alias for field.Element.
type Element = field.Element

// Attribute identifies a row label of the access matrix. Its content is
// opaque to this package.
type Attribute string

// ShareMap maps an attribute to its share λ. When an attribute labels
// several rows, the share of the last such row is kept; use Shares.Rows to
// address rows individually.
type ShareMap map[Attribute]Element

// Attributes returns the keys in sorted order.
func (s ShareMap) Attributes() []Attribute { return sortedKeys(s) }

// CoefficientMap maps each presented attribute to its reconstruction
// coefficient ω. Attributes that take no part in the reconstruction map to
// zero, so Σ ω[a]·λ[a] can be summed over every key.
type CoefficientMap map[Attribute]Element

// Attributes returns the keys in sorted order.
func (c CoefficientMap) Attributes() []Attribute { return sortedKeys(c) }

func (c CoefficientMap) clone() CoefficientMap {
	out := make(CoefficientMap, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[Attribute]Element) []Attribute {
	keys := make([]Attribute, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// dedupe drops repeated attributes, keeping first occurrences in order.
func dedupe(attrs []Attribute) []Attribute {
	seen := make(map[Attribute]struct{}, len(attrs))
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
