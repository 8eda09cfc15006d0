package markbook

import (
	"github.com/hupe1980/markbook/codec"
)

// DefaultKey is the storage key a session saves its snapshot under.
const DefaultKey = "marks_records"

type options struct {
	codec       codec.Codec
	compression Compression
	key         string
	logger      *Logger
	metrics     MetricsCollector
}

// Option configures Session behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. codec- or compression-specific constructor variants).
type Option func(*options)

// WithCodec configures the codec used for transport serialization.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures how snapshots are compressed at rest.
// Snapshots record the compression name in their header, so sessions can
// switch compression between runs and still load old snapshots.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithKey configures the storage key the snapshot is saved under.
// Use distinct keys to keep several mark books in one store.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithLogger configures structured logging. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
