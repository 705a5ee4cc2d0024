// Package prommetrics exports selection metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	sel := seedselect.New(digest.Sum256,
//	    seedselect.WithMetricsCollector(prommetrics.NewCollector(reg)),
//	)
package prommetrics

import (
	"errors"
	"time"

	"github.com/hupe1980/seedselect"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements seedselect.MetricsCollector.
type Collector struct {
	Selections *prometheus.CounterVec
	Duration   prometheus.Histogram
	PoolSize   prometheus.Histogram
	Selected   prometheus.Counter
}

var _ seedselect.MetricsCollector = (*Collector)(nil)

// NewCollector creates and registers all selection metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Selections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seedselect_selections_total",
				Help: "Total number of selections by result",
			},
			[]string{"result"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seedselect_select_duration_seconds",
				Help:    "Time spent per selection in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		PoolSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seedselect_pool_size",
				Help:    "Number of candidates per selection",
				Buckets: prometheus.ExponentialBuckets(1, 4, 12),
			},
		),
		Selected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "seedselect_selected_total",
				Help: "Total number of candidates selected",
			},
		),
	}

	reg.MustRegister(
		c.Selections,
		c.Duration,
		c.PoolSize,
		c.Selected,
	)

	return c
}

// RecordSelect implements seedselect.MetricsCollector.
func (c *Collector) RecordSelect(candidates, n int, duration time.Duration, err error) {
	c.Selections.WithLabelValues(resultLabel(err)).Inc()
	c.Duration.Observe(duration.Seconds())
	c.PoolSize.Observe(float64(candidates))
	if err == nil {
		c.Selected.Add(float64(n))
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, seedselect.ErrNoCandidates):
		return "no_candidates"
	case errors.Is(err, seedselect.ErrInvalidSelectionSize):
		return "invalid_size"
	case errors.Is(err, seedselect.ErrDuplicateCandidate):
		return "duplicate"
	case errors.Is(err, seedselect.ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, seedselect.ErrDigestFailure):
		return "digest_failure"
	case errors.Is(err, seedselect.ErrEmptySeed):
		return "empty_seed"
	case errors.Is(err, seedselect.ErrWeightsMismatch):
		return "weights_mismatch"
	default:
		return "error"
	}
}
