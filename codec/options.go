package codec

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Transcoder.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for encode/decode calls.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &codec.BasicMetricsCollector{}
//	tc := codec.NewTranscoder(codec.Binary{}, codec.WithMetricsCollector(metrics))
//	// ... use tc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Encodes: %d, Avg latency: %dns\n", stats.EncodeCount, stats.EncodeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for encode/decode calls.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := codec.NewJSONLogger(slog.LevelDebug)
//	tc := codec.NewTranscoder(codec.Binary{}, codec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
