package xvec

import (
	"log/slog"

	"github.com/hupe1980/xvec/internal/alloc"
	"github.com/hupe1980/xvec/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	offHeapThreshold int
	lifecycle        any // Lifecycle[T] for the vector's T
}

// Option configures a vector at construction time.
//
// Options are carried over to vectors derived from it (Clone, Move), so a
// budget or logger set once follows the data.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for buffer events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &xvec.BasicMetricsCollector{}
//	v, _ := xvec.New[int](xvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Grows: %d, Avg latency: %dns\n", stats.GrowCount, stats.GrowAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for reallocations and rollbacks.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := xvec.NewJSONLogger(slog.LevelDebug)
//	v, _ := xvec.New[int](xvec.WithLogger(logger))
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

// WithMemoryController charges every buffer against rc's memory budget.
// Allocations beyond the limit fail with ErrAllocationFailed wrapping
// resource.ErrMemoryLimitExceeded. A controller may be shared by any
// number of vectors.
//
// Budget is returned by Free, by reallocation, and by ShrinkToFit. A vector
// that is dropped without Free keeps its bytes charged.
func WithMemoryController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithOffHeapThreshold backs buffers of at least bytes bytes with anonymous
// memory mappings instead of the Go heap. Only element types without Go
// pointers and without lifecycle hooks qualify; others ignore the setting.
// Zero (the default) keeps every buffer on the heap.
//
// Off-heap buffers are unmapped only by Free, reallocation and ShrinkToFit.
// A vector dropped without Free leaks its mapping.
func WithOffHeapThreshold(bytes int) Option {
	return func(o *options) {
		o.offHeapThreshold = max(bytes, 0)
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

// env is the immutable configuration shared by a vector and everything
// derived from it.
type env struct {
	metrics MetricsCollector
	logger  *Logger
	alloc   alloc.Config
}

func newEnv(o options) *env {
	return &env{
		metrics: o.metricsCollector,
		logger:  o.logger,
		alloc: alloc.Config{
			Controller:       o.controller,
			OffHeapThreshold: o.offHeapThreshold,
		},
	}
}

var defaultEnv = newEnv(applyOptions(nil))
