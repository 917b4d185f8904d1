package sievego

import (
	"github.com/hupe1980/sievego/resource"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	provider    ConcurrencyProvider
	controller  *resource.Controller
	compression Compression
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		provider:    RuntimeConcurrency,
		compression: CompressionNone,
	}
}

// Option configures engine construction.
type Option func(*options)

// WithLogger configures the structured logger used by the engine.
// Pass nil to keep logging disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// generation and export operations. Pass nil to disable metrics collection.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithConcurrencyProvider configures how parallel engines resolve their
// worker count when the caller does not pin one. Tests inject deterministic
// providers here; the default is RuntimeConcurrency.
func WithConcurrencyProvider(p ConcurrencyProvider) Option {
	return func(o *options) {
		if p != nil {
			o.provider = p
		}
	}
}

// WithResourceController attaches a resource controller. The engine reports
// its marker-storage footprint to the controller and throttles export I/O
// through its rate limiter.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithCompression selects the compression codec applied by file and blob
// exports. The plain text format (one decimal per line) is unchanged; only
// the byte stream is wrapped.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
