package markbook

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSort is called after each fuzzy reorder.
	// count is the number of records scored, duration the time taken.
	RecordSort(count int, duration time.Duration)

	// RecordMarks is called after each marks assignment.
	// err is nil if successful.
	RecordMarks(duration time.Duration, err error)

	// RecordSave is called after each snapshot save.
	// size is the snapshot size in bytes, err is nil if successful.
	RecordSave(size int, duration time.Duration, err error)

	// RecordLoad is called after each snapshot load attempt.
	RecordLoad(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSort(int, time.Duration)        {}
func (NoopMetricsCollector) RecordMarks(time.Duration, error)     {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLoad(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SortCount      atomic.Int64
	SortTotalNanos atomic.Int64
	MarksCount     atomic.Int64
	MarksErrors    atomic.Int64
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	SaveTotalBytes atomic.Int64
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(count int, duration time.Duration) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
}

// RecordMarks implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMarks(_ time.Duration, err error) {
	b.MarksCount.Add(1)
	if err != nil {
		b.MarksErrors.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(size int, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	b.SaveTotalBytes.Add(int64(size))
	if err != nil {
		b.SaveErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}
