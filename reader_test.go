//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

func TestOptions(t *testing.T) {
	opts := defaultOptions()

	if opts.batchSize != DefaultBatchSize {
		t.Errorf("default batch size = %d, want %d", opts.batchSize, DefaultBatchSize)
	}
	if opts.alloc != memory.DefaultAllocator {
		t.Error("default allocator should be memory.DefaultAllocator")
	}

	alloc := memory.NewGoAllocator()
	for _, opt := range []Option{
		WithBatchSize(4096),
		WithIncludedColumns("id", "name"),
		WithAllocator(alloc),
		WithParallelism(3),
	} {
		opt(&opts)
	}

	if opts.batchSize != 4096 {
		t.Errorf("batch size = %d, want 4096", opts.batchSize)
	}
	if len(opts.include) != 2 || opts.include[0] != "id" || opts.include[1] != "name" {
		t.Errorf("include = %v", opts.include)
	}
	if opts.alloc != alloc {
		t.Error("allocator not applied")
	}
	if opts.parallelism != 3 {
		t.Errorf("parallelism = %d, want 3", opts.parallelism)
	}
}

func TestOptionsRejectInvalid(t *testing.T) {
	opts := defaultOptions()

	WithBatchSize(0)(&opts)
	if opts.batchSize != DefaultBatchSize {
		t.Error("WithBatchSize(0) should keep the default")
	}

	WithBatchSize(-5)(&opts)
	if opts.batchSize != DefaultBatchSize {
		t.Error("WithBatchSize(-5) should keep the default")
	}

	WithAllocator(nil)(&opts)
	if opts.alloc == nil {
		t.Error("WithAllocator(nil) should keep the default")
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogDebug, "debug"},
		{LogInfo, "info"},
		{LogWarning, "warning"},
		{LogError, "error"},
		{LogLevel(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestBatchPoolClosed(t *testing.T) {
	p := NewBatchPool(0)
	p.Close()

	if _, err := p.Get(nil, DefaultBatchSize); err == nil {
		t.Error("Get on a closed pool should fail")
	}

	// Closing twice and putting nil are no-ops.
	p.Close()
	p.Put(nil)
}
