// Package runtime is objrt's host-facing API: the entry points an
// embedding program calls to configure the object runtime and invoke
// its polymorphic operations. object package types are never
// constructed directly by host code — everything flows through here,
// mirroring the teacher's pkg.Cache as the one public surface over its
// internal packages.
package runtime

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/objrt/objrt/internal/alloc"
	"github.com/objrt/objrt/object"
)

var (
	initOnce  sync.Once
	initDone  atomic.Bool
	metrics   metricsSink = noopMetrics{}
	logger    *zap.Logger = zap.NewNop()
	allocator *alloc.Allocator
)

// Initialize configures the process-wide runtime. It is idempotent:
// the first call wins and applies its options; subsequent calls are
// no-ops that return nil (logging a warning only when the first call
// failed), matching the teacher's single-cache setup-once model
// generalized to a process-wide object runtime.
func Initialize(opts ...Option) error {
	var applyErr error
	initOnce.Do(func() {
		cfg := defaultConfig()
		if err := applyOptions(cfg, opts); err != nil {
			applyErr = err
			return
		}
		object.SetRecursionLimit(cfg.recursionLimit)
		allocator = alloc.New()
		object.SetAllocator(allocator)
		metrics = newMetricsSink(cfg.registry)
		logger = cfg.logger
		initDone.Store(true)
		logger.Debug("objrt runtime initialized",
			zap.Int("recursion_limit", cfg.recursionLimit),
			zap.Int("ideal_alloc_size", cfg.idealAllocSize),
			zap.Bool("metrics_enabled", cfg.registry != nil),
		)
	})
	if applyErr != nil {
		return applyErr
	}
	if !initDone.Load() {
		logger.Warn("objrt.Initialize called again after a failed first attempt")
	}
	return nil
}

// Initialized reports whether Initialize has successfully run.
func Initialized() bool { return initDone.Load() }

// Allocator exposes the process-wide buffer allocator for host code
// that needs raw scratch buffers sized the same way object's containers
// do. Before Initialize it returns a fresh, unshared allocator.
func Allocator() *alloc.Allocator {
	if allocator == nil {
		return alloc.New()
	}
	return allocator
}
