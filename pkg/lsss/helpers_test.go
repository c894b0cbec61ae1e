package lsss_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
	"github.com/hsiuhsiu/lsss-go/pkg/lsss/field"
)

func attrs(names ...string) []lsss.Attribute {
	out := make([]lsss.Attribute, len(names))
	for i, n := range names {
		out[i] = lsss.Attribute(n)
	}
	return out
}

func mustMatrix(t *testing.T, labels []string, rows [][]int64) *lsss.AccessMatrix {
	t.Helper()
	m, err := lsss.NewAccessMatrix(rows, attrs(labels...))
	if err != nil {
		t.Fatalf("NewAccessMatrix: %v", err)
	}
	return m
}

// exampleMatrix is [[1,0],[0,1],[1,1]] labelled A, B, C.
func exampleMatrix(t *testing.T) *lsss.AccessMatrix {
	return mustMatrix(t, []string{"A", "B", "C"}, [][]int64{{1, 0}, {0, 1}, {1, 1}})
}

func primeField(t *testing.T, p int64) field.Field {
	t.Helper()
	f, err := field.NewPrime("", big.NewInt(p))
	if err != nil {
		t.Fatalf("NewPrime(%d): %v", p, err)
	}
	return f
}

func mustSplitter(t *testing.T, f field.Field, opts ...lsss.SplitterOption) *lsss.Splitter {
	t.Helper()
	s, err := lsss.NewSplitter(f, opts...)
	if err != nil {
		t.Fatalf("NewSplitter: %v", err)
	}
	return s
}

func mustReconstructor(t *testing.T, f field.Field, opts ...lsss.ReconstructorOption) *lsss.Reconstructor {
	t.Helper()
	r, err := lsss.NewReconstructor(f, opts...)
	if err != nil {
		t.Fatalf("NewReconstructor: %v", err)
	}
	return r
}

func mustSpanStructure(t *testing.T, f field.Field, m lsss.Matrix) lsss.Structure {
	t.Helper()
	s, err := lsss.NewSpanStructure(f, m)
	if err != nil {
		t.Fatalf("NewSpanStructure: %v", err)
	}
	return s
}

// checkElement fails the test unless got equals want.
func checkElement(t *testing.T, name string, got, want field.Element) {
	t.Helper()
	if got == nil {
		t.Errorf("%s = nil, want %s", name, want)
		return
	}
	if !got.Equal(want) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func equalAttributes(a, b []lsss.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fixedResolver(names ...string) lsss.Resolver {
	return lsss.ResolverFunc(func([]lsss.Attribute) ([]lsss.Attribute, bool) {
		return attrs(names...), true
	})
}

func rejectingResolver() lsss.Resolver {
	return lsss.ResolverFunc(func([]lsss.Attribute) ([]lsss.Attribute, bool) {
		return nil, false
	})
}

type recordingTracer struct {
	mu       sync.Mutex
	splits   []int
	rows     [][]int
	cols     [][]int
	reduced  [][][]int64
	computed []lsss.CoefficientMap
	failures []error
}

func (r *recordingTracer) SharesSplit(rows int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.splits = append(r.splits, rows)
}

func (r *recordingTracer) RowsSelected(rows []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows)
}

func (r *recordingTracer) ReducedMatrix(_, cols []int, entries [][]int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cols = append(r.cols, cols)
	r.reduced = append(r.reduced, entries)
}

func (r *recordingTracer) CoefficientsComputed(c lsss.CoefficientMap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.computed = append(r.computed, c)
}

func (r *recordingTracer) ReconstructionFailed(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, err)
}
