package tx

import (
	"github.com/cwbudde/algo-tx/internal/cpu"
	"github.com/cwbudde/algo-tx/internal/kernels"
	"github.com/cwbudde/algo-tx/internal/memory"
)

// Allocator accounts for the memory held by contexts. It can enforce a byte
// limit and inject allocation failures. It is safe for concurrent use.
type Allocator = memory.Allocator

// NewAllocator returns an allocator that holds at most limit bytes; zero
// means no limit.
func NewAllocator(limit int64) *Allocator {
	return memory.NewAllocator(limit)
}

// Option configures New.
type Option func(*options)

type options struct {
	alloc        *memory.Allocator
	forceGeneric bool

	// registry and features replace the built-in codelets and the detected
	// CPU features when set.
	registry *kernels.Registry[*strategyTable]
	features *cpu.Features
}

// WithAllocator makes the context allocate its tables from a.
func WithAllocator(a *Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithForceGeneric restricts strategy selection to pure Go codelets,
// whatever the CPU supports.
func WithForceGeneric() Option {
	return func(o *options) {
		o.forceGeneric = true
	}
}

func buildOptions(opts []Option) options {
	o := options{alloc: memory.Default}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
