package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGenerate is called after each sieve generation.
	// limit is the configured bound, threads the resolved thread count
	// (1 for sequential engines), duration the wall time taken.
	RecordGenerate(limit uint64, threads int, duration time.Duration)

	// RecordExport is called after each export operation (write, file save,
	// blob upload). count is the number of primes written, err is nil on
	// success.
	RecordExport(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(uint64, int, time.Duration) {}
func (NoopMetricsCollector) RecordExport(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateTotalNanos atomic.Int64
	ExportCount        atomic.Int64
	ExportErrors       atomic.Int64
	ExportTotalNanos   atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(_ uint64, _ int, duration time.Duration) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(_ int, duration time.Duration, err error) {
	b.ExportCount.Add(1)
	b.ExportTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExportErrors.Add(1)
	}
}
