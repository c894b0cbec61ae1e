package lsss

import (
	"github.com/hsiuhsiu/lsss-go/pkg/lsss/linalg"
)

// SpanResolver is a Resolver that works from the matrix alone, without the
// policy tree it came from. A set of attributes is authorized when
// (1, 0, …, 0) lies in the span of the rows they label.
type SpanResolver struct {
	matrix Matrix
	rows   linalg.Matrix
	target []Element
}

// NewSpanResolver precomputes m over f. m must not change afterwards.
func NewSpanResolver(f Field, m Matrix) (*SpanResolver, error) {
	if f == nil {
		return nil, errorf("NewSpanResolver", "%w: nil field", ErrFieldFault)
	}
	if err := checkMatrix(m); err != nil {
		return nil, wrap("NewSpanResolver", err)
	}

	rows := make(linalg.Matrix, m.Rows())
	for i := range rows {
		rows[i] = make([]Element, m.Cols())
		for j := range rows[i] {
			rows[i][j] = f.FromInt64(m.Entry(i, j))
		}
	}
	target := make([]Element, m.Cols())
	for j := range target {
		target[j] = f.Zero()
	}
	target[secretColumn] = f.One()

	return &SpanResolver{matrix: m, rows: rows, target: target}, nil
}

// Authorized reports whether attrs satisfy the access structure.
func (s *SpanResolver) Authorized(attrs []Attribute) bool {
	set := make(map[Attribute]struct{}, len(attrs))
	for _, a := range attrs {
		set[a] = struct{}{}
	}
	var sub linalg.Matrix
	for i := 0; i < s.matrix.Rows(); i++ {
		if _, ok := set[s.matrix.RowLabel(i)]; ok {
			sub = append(sub, s.rows[i])
		}
	}
	ok, err := linalg.InRowSpan(sub, s.target)
	return err == nil && ok
}

// MinimalSatisfyingSubset drops presented attributes one at a time, in
// order, whenever the rest stays authorized. Authorization is monotone, so
// the result is inclusion-minimal. Attributes keep their presented order.
func (s *SpanResolver) MinimalSatisfyingSubset(presented []Attribute) ([]Attribute, bool) {
	set := dedupe(presented)
	if !s.Authorized(set) {
		return nil, false
	}
	for i := 0; i < len(set); {
		candidate := make([]Attribute, 0, len(set)-1)
		candidate = append(candidate, set[:i]...)
		candidate = append(candidate, set[i+1:]...)
		if s.Authorized(candidate) {
			set = candidate
			continue
		}
		i++
	}
	return set, true
}

// NewSpanStructure returns m paired with a SpanResolver over f.
func NewSpanStructure(f Field, m Matrix) (Structure, error) {
	res, err := NewSpanResolver(f, m)
	if err != nil {
		return Structure{}, err
	}
	return NewStructure(m, res), nil
}
