package lsss

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

// Splitter turns a secret into one share per matrix row. A Splitter is
// immutable and may be used from several goroutines as long as its random
// source is safe for concurrent use (crypto/rand.Reader is).
type Splitter struct {
	field  Field
	random io.Reader
	tracer Tracer
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithRandom sets the source used to sample v[1..]. Defaults to
// crypto/rand.Reader.
func WithRandom(r io.Reader) SplitterOption {
	return func(s *Splitter) {
		if r != nil {
			s.random = r
		}
	}
}

// WithSplitTracer installs a Tracer notified after each split.
func WithSplitTracer(t Tracer) SplitterOption {
	return func(s *Splitter) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewSplitter returns a Splitter over f.
func NewSplitter(f Field, opts ...SplitterOption) (*Splitter, error) {
	if f == nil {
		return nil, errorf("NewSplitter", "%w: nil field", ErrFieldFault)
	}
	s := &Splitter{field: f, random: rand.Reader, tracer: NopTracer{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Shares is the result of a split.
type Shares struct {
	// Rows holds share i for row i of the matrix.
	Rows []Element

	// ByAttribute keys the shares by row label; for a repeated label the
	// last row wins.
	ByAttribute ShareMap
}

// Split samples v = (secret, r_1, …, r_{cols-1}) and returns λ = M·v. The
// matrix is only read.
func (s *Splitter) Split(secret Element, m Matrix) (*Shares, error) {
	if err := checkMatrix(m); err != nil {
		return nil, wrap("Split", err)
	}
	if secret == nil {
		return nil, errorf("Split", "%w: nil secret", ErrFieldFault)
	}

	v := make([]Element, m.Cols())
	v[0] = secret
	for j := 1; j < len(v); j++ {
		r, err := s.field.Random(s.random)
		if err != nil {
			return nil, errorf("Split", "%w: %v", ErrRandomSource, err)
		}
		v[j] = r
	}
	shares, err := s.split(v, m)
	if err != nil {
		return nil, wrap("Split", err)
	}
	return shares, nil
}

// SplitMap is Split keyed by attribute only.
func (s *Splitter) SplitMap(secret Element, m Matrix) (ShareMap, error) {
	shares, err := s.Split(secret, m)
	if err != nil {
		return nil, err
	}
	return shares.ByAttribute, nil
}

// SplitWithVector computes λ = M·v for a caller-chosen v. v[0] is the
// secret; the caller is responsible for v[1..] being uniformly random.
// Useful for reproducing fixed test vectors.
func (s *Splitter) SplitWithVector(v []Element, m Matrix) (*Shares, error) {
	if err := checkMatrix(m); err != nil {
		return nil, wrap("SplitWithVector", err)
	}
	if len(v) != m.Cols() {
		return nil, errorf("SplitWithVector", "%w: vector has %d entries, matrix has %d columns", ErrInvalidMatrix, len(v), m.Cols())
	}
	for j, e := range v {
		if e == nil {
			return nil, errorf("SplitWithVector", "%w: nil vector entry %d", ErrFieldFault, j)
		}
	}
	shares, err := s.split(v, m)
	if err != nil {
		return nil, wrap("SplitWithVector", err)
	}
	return shares, nil
}

func (s *Splitter) split(v []Element, m Matrix) (shares *Shares, err error) {
	defer recoverFieldMismatch(&err)

	rows := m.Rows()
	out := &Shares{
		Rows:        make([]Element, rows),
		ByAttribute: make(ShareMap, rows),
	}
	for i := 0; i < rows; i++ {
		acc := s.field.Zero()
		for j := 0; j < len(v); j++ {
			c := m.Entry(i, j)
			if c == 0 {
				continue
			}
			acc = acc.Add(s.field.FromInt64(c).Mul(v[j]))
		}
		out.Rows[i] = acc
		out.ByAttribute[m.RowLabel(i)] = acc
	}
	s.tracer.SharesSplit(rows)
	return out, nil
}

// IsFieldFault reports whether err stems from the field arithmetic rather
// than from the access structure.
func IsFieldFault(err error) bool {
	return errors.Is(err, ErrFieldFault)
}

// recoverFieldMismatch turns the panic raised when elements of two fields
// meet into an ErrFieldFault. Any other panic is re-raised.
func recoverFieldMismatch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if perr, ok := r.(error); ok && errors.Is(perr, field.ErrFieldMismatch) {
		*err = fmt.Errorf("%w: %w", ErrFieldFault, perr)
		return
	}
	panic(r)
}
