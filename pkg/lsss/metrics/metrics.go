// Package metrics exports lsss activity to Prometheus. A Collector is an
// lsss.Tracer, so it is installed with lsss.WithTracer or
// lsss.WithSplitTracer and can be combined with other tracers through
// lsss.MultiTracer.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hsiuhsiu/lsss-go/pkg/lsss"
)

const (
	// Namespace is the Prometheus namespace for all lsss metrics.
	Namespace = "lsss"

	// Label names
	LabelOutcome = "outcome"
	LabelReason  = "reason"

	// Outcome values
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	// Reason values for failures that are not an unsatisfied access structure.
	ReasonNone            = "none"
	ReasonInvalidMatrix   = "invalid_matrix"
	ReasonInvalidResolver = "invalid_resolver"
	ReasonFieldFault      = "field_fault"
	ReasonOther           = "other"
)

// Collector counts splits and reconstructions. It never sees share or
// coefficient values beyond their count.
type Collector struct {
	splits          prometheus.Counter
	shares          prometheus.Counter
	reconstructions *prometheus.CounterVec
	reducedSize     prometheus.Histogram
	coefficients    prometheus.Histogram
}

var _ lsss.Tracer = (*Collector)(nil)

// NewCollector creates the lsss metrics and registers them with reg. A nil
// reg leaves them unregistered, which is useful in tests.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		splits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "splits_total",
			Help:      "Total number of secrets split",
		}),
		shares: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "shares_total",
			Help:      "Total number of shares produced",
		}),
		reconstructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "reconstructions_total",
				Help:      "Total number of reconstruction attempts by outcome and failure reason",
			},
			[]string{LabelOutcome, LabelReason},
		),
		reducedSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "reduced_matrix_rows",
			Help:      "Number of rows in the square matrix inverted during reconstruction",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		coefficients: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "coefficients",
			Help:      "Number of coefficients returned per successful reconstruction",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range []prometheus.Collector{c.splits, c.shares, c.reconstructions, c.reducedSize, c.coefficients} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) SharesSplit(rows int) {
	c.splits.Inc()
	c.shares.Add(float64(rows))
}

func (c *Collector) RowsSelected([]int) {}

func (c *Collector) ReducedMatrix(rows, _ []int, _ [][]int64) {
	c.reducedSize.Observe(float64(len(rows)))
}

func (c *Collector) CoefficientsComputed(coefficients lsss.CoefficientMap) {
	c.reconstructions.WithLabelValues(OutcomeSuccess, ReasonNone).Inc()
	c.coefficients.Observe(float64(len(coefficients)))
}

func (c *Collector) ReconstructionFailed(err error) {
	c.reconstructions.WithLabelValues(OutcomeFailure, reasonLabel(err)).Inc()
}

func reasonLabel(err error) string {
	if r := lsss.ReasonOf(err); r != "" {
		return string(r)
	}
	switch {
	case errors.Is(err, lsss.ErrInvalidMatrix):
		return ReasonInvalidMatrix
	case errors.Is(err, lsss.ErrInvalidResolver):
		return ReasonInvalidResolver
	case lsss.IsFieldFault(err):
		return ReasonFieldFault
	default:
		return ReasonOther
	}
}
