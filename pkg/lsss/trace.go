package lsss

import (
	"context"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss/logging"
)

// Tracer observes splitting and reconstruction for diagnostics. Every
// argument is a copy owned by the tracer; nothing a tracer does can change
// the result of the operation that called it. Implementations shared
// between goroutines must be safe for concurrent use.
type Tracer interface {
	// SharesSplit is called after a successful split. Share values are
	// deliberately not passed.
	SharesSplit(rows int)

	// RowsSelected receives the row indices labelled by the minimal subset.
	RowsSelected(rows []int)

	// ReducedMatrix receives the square matrix M' before inversion.
	ReducedMatrix(rows, cols []int, entries [][]int64)

	// CoefficientsComputed receives the final coefficient map.
	CoefficientsComputed(coefficients CoefficientMap)

	// ReconstructionFailed receives the error returned to the caller.
	ReconstructionFailed(err error)
}

// NopTracer ignores every event. It is the default.
type NopTracer struct{}

func (NopTracer) SharesSplit(int)                       {}
func (NopTracer) RowsSelected([]int)                    {}
func (NopTracer) ReducedMatrix([]int, []int, [][]int64) {}
func (NopTracer) CoefficientsComputed(CoefficientMap)   {}
func (NopTracer) ReconstructionFailed(error)            {}

type multiTracer []Tracer

// MultiTracer fans every event out to each non-nil tracer in order.
func MultiTracer(tracers ...Tracer) Tracer {
	var out multiTracer
	for _, t := range tracers {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (m multiTracer) SharesSplit(rows int) {
	for _, t := range m {
		t.SharesSplit(rows)
	}
}

func (m multiTracer) RowsSelected(rows []int) {
	for _, t := range m {
		t.RowsSelected(append([]int(nil), rows...))
	}
}

func (m multiTracer) ReducedMatrix(rows, cols []int, entries [][]int64) {
	for _, t := range m {
		t.ReducedMatrix(append([]int(nil), rows...), append([]int(nil), cols...), cloneGrid(entries))
	}
}

func (m multiTracer) CoefficientsComputed(c CoefficientMap) {
	for _, t := range m {
		t.CoefficientsComputed(c.clone())
	}
}

func (m multiTracer) ReconstructionFailed(err error) {
	for _, t := range m {
		t.ReconstructionFailed(err)
	}
}

type logTracer struct {
	logger logging.Logger
}

// NewLogTracer returns a Tracer that writes each event as a debug record.
func NewLogTracer(logger logging.Logger) Tracer {
	if logger == nil {
		logger = logging.Nop()
	}
	return logTracer{logger: logger.With("component", "lsss")}
}

func (l logTracer) SharesSplit(rows int) {
	l.logger.Debug(context.Background(), "shares split", "rows", rows, logging.Redacted("shares"))
}

func (l logTracer) RowsSelected(rows []int) {
	l.logger.Debug(context.Background(), "rows selected", "rows", rows)
}

func (l logTracer) ReducedMatrix(rows, cols []int, entries [][]int64) {
	l.logger.Debug(context.Background(), "reduced matrix", "rows", rows, "cols", cols, "entries", entries)
}

func (l logTracer) CoefficientsComputed(c CoefficientMap) {
	args := make([]any, 0, 2*len(c))
	for _, a := range c.Attributes() {
		args = append(args, string(a), c[a].String())
	}
	l.logger.Debug(context.Background(), "coefficients computed", args...)
}

func (l logTracer) ReconstructionFailed(err error) {
	l.logger.Debug(context.Background(), "reconstruction failed", "reason", string(ReasonOf(err)), "error", err)
}

func cloneGrid(g [][]int64) [][]int64 {
	out := make([][]int64, len(g))
	for i, row := range g {
		out[i] = append([]int64(nil), row...)
	}
	return out
}
