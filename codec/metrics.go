package codec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting codec metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordEncode is called after each encode. size is the number of bytes
	// produced, err is nil if successful.
	RecordEncode(size int, duration time.Duration, err error)

	// RecordDecode is called after each decode. size is the number of bytes
	// consumed, err is nil if successful.
	RecordDecode(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEncode(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDecode(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// Count, error and latency fields cover every call. The byte counters cover
// successful calls only: EncodeBytes sums the output of successful encodes
// and DecodeBytes the input of successful decodes.
type BasicMetricsCollector struct {
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeBytes      atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeBytes      atomic.Int64
	DecodeTotalNanos atomic.Int64
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(size int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
		return
	}
	b.EncodeBytes.Add(int64(size))
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(size int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
		return
	}
	b.DecodeBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EncodeCount:    b.EncodeCount.Load(),
		EncodeErrors:   b.EncodeErrors.Load(),
		EncodeBytes:    b.EncodeBytes.Load(),
		EncodeAvgNanos: avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:    b.DecodeCount.Load(),
		DecodeErrors:   b.DecodeErrors.Load(),
		DecodeBytes:    b.DecodeBytes.Load(),
		DecodeAvgNanos: avg(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EncodeCount    int64
	EncodeErrors   int64
	EncodeBytes    int64
	EncodeAvgNanos int64
	DecodeCount    int64
	DecodeErrors   int64
	DecodeBytes    int64
	DecodeAvgNanos int64
}
