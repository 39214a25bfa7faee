package runtime

import "testing"

func TestApplyOptionsRejectsNonPositiveRecursionLimit(t *testing.T) {
	cfg := defaultConfig()
	err := applyOptions(cfg, []Option{WithRecursionLimit(0)})
	if err != errInvalidRecursionLimit {
		t.Fatalf("got %v, want errInvalidRecursionLimit", err)
	}
}

func TestApplyOptionsRejectsNonPositiveAllocSize(t *testing.T) {
	cfg := defaultConfig()
	err := applyOptions(cfg, []Option{WithIdealAllocSize(-1)})
	if err != errInvalidAllocSize {
		t.Fatalf("got %v, want errInvalidAllocSize", err)
	}
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	cfg := defaultConfig()
	want := cfg.logger
	if err := applyOptions(cfg, []Option{WithLogger(nil)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.logger != want {
		t.Fatalf("WithLogger(nil) should not replace the default logger")
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := defaultConfig()
	if cfg.recursionLimit != 1000 {
		t.Fatalf("default recursionLimit = %d, want 1000", cfg.recursionLimit)
	}
	if cfg.idealAllocSize != 256 {
		t.Fatalf("default idealAllocSize = %d, want 256", cfg.idealAllocSize)
	}
}
