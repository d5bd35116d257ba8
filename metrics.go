package xvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    growCounter   prometheus.Counter
//	    growHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGrow(oldCap, newCap int, d time.Duration) {
//	    p.growCounter.Inc()
//	    p.growHistogram.Observe(d.Seconds())
//	}
//
// A collector may be shared by many vectors and must be safe for concurrent use.
type MetricsCollector interface {
	// RecordGrow is called after a buffer was replaced by a larger one.
	// duration covers allocation and element migration.
	RecordGrow(oldCap, newCap int, duration time.Duration)

	// RecordShrink is called after ShrinkToFit replaced the buffer.
	RecordShrink(oldCap, newCap int)

	// RecordRollback is called when a mutating operation failed and the
	// vector was restored to its prior state.
	RecordRollback(op string, err error)

	// RecordAllocFailure is called when a buffer of capacity slots could
	// not be obtained.
	RecordAllocFailure(capacity int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordShrink(int, int)              {}
func (NoopMetricsCollector) RecordRollback(string, error)       {}
func (NoopMetricsCollector) RecordAllocFailure(int, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount         atomic.Int64
	GrowTotalNanos    atomic.Int64
	SlotsGrown        atomic.Int64
	ShrinkCount       atomic.Int64
	SlotsShrunk       atomic.Int64
	RollbackCount     atomic.Int64
	AllocFailureCount atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int, duration time.Duration) {
	b.GrowCount.Add(1)
	b.GrowTotalNanos.Add(duration.Nanoseconds())
	b.SlotsGrown.Add(int64(newCap - oldCap))
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(oldCap, newCap int) {
	b.ShrinkCount.Add(1)
	b.SlotsShrunk.Add(int64(oldCap - newCap))
}

// RecordRollback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRollback(string, error) {
	b.RollbackCount.Add(1)
}

// RecordAllocFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocFailure(int, error) {
	b.AllocFailureCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:         b.GrowCount.Load(),
		GrowAvgNanos:      b.getAvgGrowNanos(),
		SlotsGrown:        b.SlotsGrown.Load(),
		ShrinkCount:       b.ShrinkCount.Load(),
		SlotsShrunk:       b.SlotsShrunk.Load(),
		RollbackCount:     b.RollbackCount.Load(),
		AllocFailureCount: b.AllocFailureCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGrowNanos() int64 {
	count := b.GrowCount.Load()
	if count == 0 {
		return 0
	}
	return b.GrowTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount         int64
	GrowAvgNanos      int64
	SlotsGrown        int64
	ShrinkCount       int64
	SlotsShrunk       int64
	RollbackCount     int64
	AllocFailureCount int64
}
