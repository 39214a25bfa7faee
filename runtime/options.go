package runtime

// options.go adapts the teacher's generic functional-option pattern
// (pkg/config.go) to objrt.Initialize's non-generic config surface:
// objrt has one process-wide runtime, not a per-instance cache, so
// Option closes over a single *config rather than config[K,V].

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures Initialize. Options never allocate unless
// strictly necessary.
type Option func(*config)

type config struct {
	recursionLimit int
	idealAllocSize int
	registry       *prometheus.Registry
	logger         *zap.Logger
}

func defaultConfig() *config {
	return &config{
		recursionLimit: 1000,
		idealAllocSize: 256,
		logger:         zap.NewNop(),
	}
}

// WithRecursionLimit bounds hash/compare/deep-copy traversal depth
// (spec.md §5, object.SetRecursionLimit). Must be positive.
func WithRecursionLimit(n int) Option {
	return func(c *config) { c.recursionLimit = n }
}

// WithIdealAllocSize sets the ideal allocation size (default 256) for
// spec.md §9's "ideal allocation size". It must be positive; that is
// the only check made, and the value is not compared with the size of
// the smallest hash table. Initialize only reports it in its debug log
// line: the allocator's bucket sizes do not depend on it.
func WithIdealAllocSize(n int) Option {
	return func(c *config) { c.idealAllocSize = n }
}

// WithMetrics enables Prometheus metrics collection. Passing nil
// disables metrics (the default) and the hot dispatch path pays
// nothing for instrumentation.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(c *config) { c.registry = reg }
}

// WithLogger plugs an external zap.Logger. The runtime never logs on
// the hot dispatch path; only Initialize itself emits through it.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func applyOptions(cfg *config, opts []Option) error {
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.recursionLimit <= 0 {
		return errInvalidRecursionLimit
	}
	if cfg.idealAllocSize <= 0 {
		return errInvalidAllocSize
	}
	return nil
}

var (
	errInvalidRecursionLimit = errors.New("objrt: recursion limit must be > 0")
	errInvalidAllocSize      = errors.New("objrt: ideal alloc size must be > 0")
)
