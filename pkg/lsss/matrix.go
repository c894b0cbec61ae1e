package lsss

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is the read-only view of an LSSS access matrix M together with its
// row labelling ρ. Column 0 is the secret coordinate. Implementations must be
// safe for concurrent reads.
type Matrix interface {
	Rows() int
	Cols() int
	Entry(i, j int) int64
	RowLabel(i int) Attribute
}

// Resolver finds a minimal authorized subset of the presented attributes.
// It reports false when the presented attributes do not satisfy the access
// structure.
type Resolver interface {
	MinimalSatisfyingSubset(presented []Attribute) ([]Attribute, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(presented []Attribute) ([]Attribute, bool)

func (f ResolverFunc) MinimalSatisfyingSubset(presented []Attribute) ([]Attribute, bool) {
	return f(presented)
}

// AccessStructure is implemented by every concrete policy representation
// that can both expose its matrix and resolve minimal subsets.
type AccessStructure interface {
	Matrix
	Resolver
}

// Structure pairs a Matrix with a Resolver.
type Structure struct {
	Matrix
	Resolver
}

// NewStructure bundles m and r into an AccessStructure.
func NewStructure(m Matrix, r Resolver) Structure {
	return Structure{Matrix: m, Resolver: r}
}

// AccessMatrix is an immutable in-memory Matrix.
type AccessMatrix struct {
	entries [][]int64
	labels  []Attribute
	cols    int
}

// NewAccessMatrix validates and copies entries and labels. Every row must
// have the same, nonzero, length and carry a non-empty label. A label may
// appear on several rows.
func NewAccessMatrix(entries [][]int64, labels []Attribute) (*AccessMatrix, error) {
	if len(entries) == 0 {
		return nil, errorf("NewAccessMatrix", "%w: no rows", ErrInvalidMatrix)
	}
	if len(labels) != len(entries) {
		return nil, errorf("NewAccessMatrix", "%w: %d labels for %d rows", ErrInvalidMatrix, len(labels), len(entries))
	}
	cols := len(entries[0])
	if cols == 0 {
		return nil, errorf("NewAccessMatrix", "%w: no columns", ErrInvalidMatrix)
	}

	m := &AccessMatrix{
		entries: make([][]int64, len(entries)),
		labels:  make([]Attribute, len(labels)),
		cols:    cols,
	}
	for i, row := range entries {
		if len(row) != cols {
			return nil, errorf("NewAccessMatrix", "%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), cols)
		}
		if labels[i] == "" {
			return nil, errorf("NewAccessMatrix", "%w: row %d has an empty label", ErrInvalidMatrix, i)
		}
		m.entries[i] = append([]int64(nil), row...)
	}
	copy(m.labels, labels)
	return m, nil
}

func (m *AccessMatrix) Rows() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *AccessMatrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.cols
}

func (m *AccessMatrix) Entry(i, j int) int64 { return m.entries[i][j] }

func (m *AccessMatrix) RowLabel(i int) Attribute { return m.labels[i] }

// Entries returns a copy of the matrix entries.
func (m *AccessMatrix) Entries() [][]int64 {
	out := make([][]int64, len(m.entries))
	for i, row := range m.entries {
		out[i] = append([]int64(nil), row...)
	}
	return out
}

// Labels returns a copy of the row labels.
func (m *AccessMatrix) Labels() []Attribute {
	return append([]Attribute(nil), m.labels...)
}

// RowsFor returns the indices of the rows labelled a, in order.
func (m *AccessMatrix) RowsFor(a Attribute) []int {
	var rows []int
	for i, l := range m.labels {
		if l == a {
			rows = append(rows, i)
		}
	}
	return rows
}

// String renders one "label: [entries]" line per row.
func (m *AccessMatrix) String() string {
	var b strings.Builder
	for i, row := range m.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(m.labels[i]))
		b.WriteString(": [")
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(v, 10))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// checkMatrix rejects nil or empty matrices coming through the interface.
func checkMatrix(m Matrix) error {
	if m == nil {
		return fmt.Errorf("%w: nil matrix", ErrInvalidMatrix)
	}
	if m.Rows() < 1 || m.Cols() < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidMatrix, m.Rows(), m.Cols())
	}
	return nil
}
