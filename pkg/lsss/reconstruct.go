package lsss

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/linalg"
)

// secretColumn is the column of M that carries the secret.
const secretColumn = 0

// Reconstructor computes reconstruction coefficients ω for a set of
// presented attributes. It holds no mutable state and is safe for
// concurrent use.
type Reconstructor struct {
	field  Field
	tracer Tracer
}

// ReconstructorOption configures a Reconstructor.
type ReconstructorOption func(*Reconstructor)

// WithTracer installs a Tracer. Tracing never alters results.
func WithTracer(t Tracer) ReconstructorOption {
	return func(r *Reconstructor) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewReconstructor returns a Reconstructor over f.
func NewReconstructor(f Field, opts ...ReconstructorOption) (*Reconstructor, error) {
	if f == nil {
		return nil, errorf("NewReconstructor", "%w: nil field", ErrFieldFault)
	}
	r := &Reconstructor{field: f, tracer: NopTracer{}}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ReconstructStructure is Reconstruct with the matrix and resolver taken from s.
func (r *Reconstructor) ReconstructStructure(presented []Attribute, s AccessStructure) (CoefficientMap, error) {
	if s == nil {
		return r.Reconstruct(presented, nil, nil)
	}
	return r.Reconstruct(presented, s, s)
}

// Reconstruct returns coefficients ω such that Σ ω[a]·λ[a] over the
// presented attributes equals the shared secret. Every presented attribute
// gets an entry; those outside the minimal subset get zero.
//
// It fails with an error matching ErrUnsatisfiedAccessStructure when the
// resolver finds no authorized subset, when the selected rows are not
// independent, when the reduced matrix is singular over the field, or when
// the secret column is not among the selected columns. No partial result is
// ever returned.
func (r *Reconstructor) Reconstruct(presented []Attribute, m Matrix, res Resolver) (coefficients CoefficientMap, err error) {
	defer func() {
		if err != nil {
			err = wrap("Reconstruct", err)
			r.tracer.ReconstructionFailed(err)
		}
	}()
	defer recoverFieldMismatch(&err)

	if err := checkMatrix(m); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: nil resolver", ErrInvalidResolver)
	}
	presented = dedupe(presented)

	minimal, err := r.resolve(presented, res)
	if err != nil {
		return nil, err
	}

	rows := selectRows(m, minimal)
	if len(rows) == 0 {
		return nil, unsatisfied(ReasonNoAuthorizedSubset, "no row is labelled by the minimal subset")
	}
	r.tracer.RowsSelected(append([]int(nil), rows...))

	cols, err := selectColumns(m, rows)
	if err != nil {
		return nil, err
	}

	entries := reducedEntries(m, rows, cols)
	r.tracer.ReducedMatrix(append([]int(nil), rows...), append([]int(nil), cols...), cloneGrid(entries))

	// ω = e_pos · M'⁻¹. Without column 0 the inverse is still computed
	// (from row 0) so a singular M' is reported first.
	pos := indexOf(cols, secretColumn)
	omega, err := linalg.UnitRowTimesInverse(r.field, linalg.FromInt64(r.field, entries), max(pos, 0))
	if errors.Is(err, linalg.ErrSingular) {
		return nil, unsatisfied(ReasonSingularMatrix, "reduced %dx%d matrix over %s", len(rows), len(cols), r.field.Name())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFieldFault, err)
	}
	if pos < 0 {
		return nil, unsatisfied(ReasonSecretColumnMissing, "selected columns %v", cols)
	}

	out := make(CoefficientMap, len(presented))
	for a, row := range rows {
		out[m.RowLabel(row)] = omega[a]
	}
	for _, attr := range presented {
		if _, ok := out[attr]; !ok {
			out[attr] = r.field.Zero()
		}
	}
	r.tracer.CoefficientsComputed(out.clone())
	return out, nil
}

// resolve asks res for a minimal subset and checks it against presented.
func (r *Reconstructor) resolve(presented []Attribute, res Resolver) (map[Attribute]struct{}, error) {
	minimal, ok := res.MinimalSatisfyingSubset(append([]Attribute(nil), presented...))
	if !ok || len(minimal) == 0 {
		return nil, unsatisfied(ReasonNoAuthorizedSubset, "%d presented attributes", len(presented))
	}

	allowed := make(map[Attribute]struct{}, len(presented))
	for _, a := range presented {
		allowed[a] = struct{}{}
	}
	set := make(map[Attribute]struct{}, len(minimal))
	for _, a := range minimal {
		if _, ok := allowed[a]; !ok {
			return nil, fmt.Errorf("%w: %q was not presented", ErrInvalidResolver, a)
		}
		set[a] = struct{}{}
	}
	return set, nil
}

// selectRows returns, in index order, every row whose label is in minimal.
func selectRows(m Matrix, minimal map[Attribute]struct{}) []int {
	var rows []int
	for i := 0; i < m.Rows(); i++ {
		if _, ok := minimal[m.RowLabel(i)]; ok {
			rows = append(rows, i)
		}
	}
	return rows
}

// selectColumns walks the columns in order and accepts a column as soon as
// one selected row (scanned in order) has a nonzero entry in it. Exactly
// len(rows) columns must be accepted; a nonzero column beyond that quota, or
// too few nonzero columns, means the rows are dependent.
func selectColumns(m Matrix, rows []int) ([]int, error) {
	quota := len(rows)
	cols := make([]int, 0, quota)
	for j := 0; j < m.Cols(); j++ {
		for _, i := range rows {
			if m.Entry(i, j) == 0 {
				continue
			}
			if len(cols) == quota {
				return nil, unsatisfied(ReasonDependentRows, "column %d is nonzero after %d columns were selected for %d rows", j, quota, quota)
			}
			cols = append(cols, j)
			break
		}
	}
	if len(cols) < quota {
		return nil, unsatisfied(ReasonDependentRows, "only %d nonzero columns for %d rows", len(cols), quota)
	}
	return cols, nil
}

// reducedEntries builds M'[a][b] = M[rows[a]][cols[b]].
func reducedEntries(m Matrix, rows, cols []int) [][]int64 {
	out := make([][]int64, len(rows))
	for a, i := range rows {
		out[a] = make([]int64, len(cols))
		for b, j := range cols {
			out[a][b] = m.Entry(i, j)
		}
	}
	return out
}

func indexOf(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
