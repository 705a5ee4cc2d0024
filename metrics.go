package seedselect

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting selection metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordSelect is called after each selection.
	// candidates is the pool size, n the requested selection size,
	// duration the time taken, err is nil if successful.
	RecordSelect(candidates, n int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSelect(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SelectCount      atomic.Int64
	SelectErrors     atomic.Int64
	SelectTotalNanos atomic.Int64
	CandidatesTotal  atomic.Int64
	SelectedTotal    atomic.Int64
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(candidates, n int, duration time.Duration, err error) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(duration.Nanoseconds())
	b.CandidatesTotal.Add(int64(candidates))
	if err != nil {
		b.SelectErrors.Add(1)
		return
	}
	b.SelectedTotal.Add(int64(n))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SelectCount:     b.SelectCount.Load(),
		SelectErrors:    b.SelectErrors.Load(),
		SelectAvgNanos:  b.getAvgSelectNanos(),
		CandidatesTotal: b.CandidatesTotal.Load(),
		SelectedTotal:   b.SelectedTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSelectNanos() int64 {
	count := b.SelectCount.Load()
	if count == 0 {
		return 0
	}
	return b.SelectTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SelectCount     int64
	SelectErrors    int64
	SelectAvgNanos  int64
	CandidatesTotal int64
	SelectedTotal   int64
}
