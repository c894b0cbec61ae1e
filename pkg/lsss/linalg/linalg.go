package linalg

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

var (
	// ErrSingular indicates a square matrix with no inverse over the field.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrNotSquare indicates a matrix that is empty, ragged or not square.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrDimension indicates mismatched vector or matrix dimensions.
	ErrDimension = errors.New("linalg: dimension mismatch")
)

// Matrix is a dense row-major matrix of field elements.
type Matrix [][]field.Element

// FromInt64 maps an integer matrix into f entry by entry.
func FromInt64(f field.Field, rows [][]int64) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]field.Element, len(row))
		for j, v := range row {
			m[i][j] = f.FromInt64(v)
		}
	}
	return m
}

// Identity returns the n×n identity matrix over f.
func Identity(f field.Field, n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]field.Element, n)
		for j := range m[i] {
			if i == j {
				m[i][j] = f.One()
			} else {
				m[i][j] = f.Zero()
			}
		}
	}
	return m
}

// Clone copies the row slices. Elements are immutable and are shared.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]field.Element(nil), row...)
	}
	return out
}

// Dims returns the row count and the length of the first row.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

func (m Matrix) square() (int, error) {
	n := len(m)
	if n == 0 {
		return 0, ErrNotSquare
	}
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
	}
	return n, nil
}

// Invert returns m⁻¹ using Gauss–Jordan elimination on [m | I]. For each
// column the first row at or below the diagonal with a nonzero entry is
// taken as pivot. m itself is not modified.
func Invert(f field.Field, m Matrix) (Matrix, error) {
	n, err := m.square()
	if err != nil {
		return nil, err
	}
	a := m.Clone()
	inv := Identity(f, n)

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if !a[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		scale, err := a[col][col].Inverse()
		if err != nil {
			return nil, err
		}
		scaleRow(a[col], scale)
		scaleRow(inv[col], scale)

		for r := 0; r < n; r++ {
			if r == col || a[r][col].IsZero() {
				continue
			}
			factor := a[r][col]
			subtractRow(a[r], a[col], factor)
			subtractRow(inv[r], inv[col], factor)
		}
	}
	return inv, nil
}

// UnitRowTimesInverse returns e_pos · m⁻¹, i.e. row pos of the inverse: the
// unique ω with ω · m = e_pos.
func UnitRowTimesInverse(f field.Field, m Matrix, pos int) ([]field.Element, error) {
	if pos < 0 || pos >= len(m) {
		return nil, fmt.Errorf("%w: unit position %d outside %d rows", ErrDimension, pos, len(m))
	}
	inv, err := Invert(f, m)
	if err != nil {
		return nil, err
	}
	return append([]field.Element(nil), inv[pos]...), nil
}

// Rank returns the rank of m over the field. All rows must have the same
// length.
func Rank(m Matrix) (int, error) {
	rows, cols := m.Dims()
	for i, row := range m {
		if len(row) != cols {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrDimension, i, len(row), cols)
		}
	}
	a := m.Clone()
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivot := -1
		for r := rank; r < rows; r++ {
			if !a[r][col].IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]
		scale, err := a[rank][col].Inverse()
		if err != nil {
			return 0, err
		}
		scaleRow(a[rank], scale)
		for r := rank + 1; r < rows; r++ {
			if a[r][col].IsZero() {
				continue
			}
			subtractRow(a[r], a[rank], a[r][col])
		}
		rank++
	}
	return rank, nil
}

// InRowSpan reports whether target is a linear combination of rows.
func InRowSpan(rows Matrix, target []field.Element) (bool, error) {
	if len(rows) == 0 {
		for _, v := range target {
			if !v.IsZero() {
				return false, nil
			}
		}
		return true, nil
	}
	if _, cols := rows.Dims(); cols != len(target) {
		return false, fmt.Errorf("%w: target has %d entries, rows have %d", ErrDimension, len(target), cols)
	}
	base, err := Rank(rows)
	if err != nil {
		return false, err
	}
	extended := append(rows.Clone(), target)
	withTarget, err := Rank(extended)
	if err != nil {
		return false, err
	}
	return base == withTarget, nil
}

func scaleRow(row []field.Element, s field.Element) {
	for j := range row {
		row[j] = row[j].Mul(s)
	}
}

// subtractRow sets dst = dst - factor·src.
func subtractRow(dst, src []field.Element, factor field.Element) {
	for j := range dst {
		dst[j] = dst[j].Sub(factor.Mul(src[j]))
	}
}
