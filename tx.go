// Package tx builds and runs fixed-length discrete transforms: complex
// FFTs, MDCTs and real FFTs over float32, float64 and Q31 fixed-point data.
//
// A transform is prepared once with New, which precomputes every table
// and returns the context together with the function that executes it:
//
//	ctx, fn, err := tx.New(tx.DoubleFFT, false, 480, 1, 0)
//	if err != nil {
//		return err
//	}
//	defer tx.Destroy(&ctx)
//
//	fn(ctx, out, in, 1)
//
// Supported lengths are n*2^k with n in {1, 3, 5, 15} and k <= 17. MDCT
// and real FFT lengths must be even, with half the length of that form.
//
// A context may be executed from several goroutines only when it was built
// with ConcurrentScratch; otherwise each goroutine needs its own context.
package tx

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-tx/internal/cpu"
	"github.com/cwbudde/algo-tx/internal/fftypes"
	"github.com/cwbudde/algo-tx/internal/kernels"
	txmath "github.com/cwbudde/algo-tx/internal/math"
	"github.com/cwbudde/algo-tx/internal/memory"
)

// Func executes the transform of c, reading in and writing out.
//
// Buffer types follow the context type: complex slices for FFTs, real
// slices for MDCTs, and real samples with complex bins for real FFTs. For
// FFTs stride applies to both buffers; for the other families it applies
// to the coefficient side only. Buffers of the wrong type panic; buffers
// that are too short or overlapping are not detected.
type Func func(c *Context, out, in any, stride int)

// Context holds the precomputed tables of one transform. Its tables are
// read-only after New returns.
type Context struct {
	typ     Type
	inverse bool
	length  int
	scale   float64
	flags   Flags
	n, m    int
	codelet string

	plan interface {
		Release()
		ScratchLen() int
	}
	// pool hands out scratch buffers for ConcurrentScratch contexts.
	pool *sync.Pool
	fn   Func
}

// New builds a transform context of the given type, direction and length.
// For MDCTs length is the number of coefficients, half the input frame.
// A zero scale means unscaled; fixed-point types need |scale| <= 1.
//
// On failure no memory is retained and the error wraps ErrInvalidArgument
// or ErrOutOfMemory.
func New(typ Type, inverse bool, length int, scale float64, flags Flags, opts ...Option) (*Context, Func, error) {
	o := buildOptions(opts)

	if err := validate(typ, inverse, length, scale, flags); err != nil {
		return nil, nil, err
	}

	if scale == 0 {
		scale = 1
	}

	core := length
	if typ.family() != fftypes.FamilyFFT {
		core = length / 2
	}

	n, m, ok := txmath.Factor(core)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s length %d cannot be factored", ErrInvalidArgument, typ, length)
	}

	c := &Context{
		typ:     typ,
		inverse: inverse,
		length:  length,
		scale:   scale,
		flags:   flags,
		n:       n,
		m:       m,
	}

	impl, err := c.selectStrategy(o)
	if err != nil {
		return nil, nil, err
	}

	if err := impl.build(c, o.alloc); err != nil {
		if errors.Is(err, memory.ErrExhausted) {
			return nil, nil, fmt.Errorf("%w: building %s of length %d: %w", ErrOutOfMemory, typ, length, err)
		}

		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	c.fn = impl.exec

	return c, c.fn, nil
}

func validate(typ Type, inverse bool, length int, scale float64, flags Flags) error {
	switch {
	case !typ.valid():
		return fmt.Errorf("%w: unknown transform type %d", ErrInvalidArgument, uint8(typ))
	case flags&^knownFlags != 0:
		return fmt.Errorf("%w: unknown flags %#x", ErrInvalidArgument, uint64(flags&^knownFlags))
	case math.IsNaN(scale) || math.IsInf(scale, 0):
		return fmt.Errorf("%w: scale %v", ErrInvalidArgument, scale)
	case typ.fixed() && math.Abs(scale) > 1:
		return fmt.Errorf("%w: %s needs |scale| <= 1, got %v", ErrInvalidArgument, typ, scale)
	case length < 1:
		return fmt.Errorf("%w: length %d", ErrInvalidArgument, length)
	}

	family := typ.family()

	if family != fftypes.FamilyFFT && length%2 != 0 {
		return fmt.Errorf("%w: %s length %d is odd", ErrInvalidArgument, typ, length)
	}

	if flags&InPlace != 0 && family != fftypes.FamilyFFT {
		return fmt.Errorf("%w: %s does not support InPlace", ErrInvalidArgument, typ)
	}

	if flags&FullIMDCT != 0 && (family != fftypes.FamilyMDCT || !inverse) {
		return fmt.Errorf("%w: FullIMDCT needs an inverse MDCT, got %s", ErrInvalidArgument, typ)
	}

	return nil
}

// selectStrategy picks the highest-priority codelet the CPU and flags allow
// and returns its strategy for the context's type.
func (c *Context) selectStrategy(o options) (strategy, error) {
	features := cpu.DetectFeatures()
	if o.features != nil {
		features = *o.features
	}

	features.ForceGeneric = features.ForceGeneric || o.forceGeneric

	q := kernels.Query{
		Family:    c.typ.family(),
		Precision: c.typ.precision(),
		N:         c.n,
		M:         c.m,
		Unaligned: c.flags&Unaligned != 0,
		Features:  features,
	}

	if c.flags&InPlace != 0 {
		q.Need |= kernels.CapInPlace
	}

	if c.flags&FullIMDCT != 0 {
		q.Need |= kernels.CapFullIMDCT
	}

	registry := o.registry
	if registry == nil {
		registry = defaultRegistry
	}

	entry, ok := registry.Select(q)
	if !ok {
		return strategy{}, fmt.Errorf("%w: no strategy for %s of length %d", ErrInvalidArgument, c.typ, c.length)
	}

	if entry.Impl == nil || entry.Impl[c.typ].exec == nil {
		return strategy{}, fmt.Errorf("%w: codelet %s does not implement %s", ErrInvalidArgument, entry.Name, c.typ)
	}

	c.codelet = entry.Name

	return entry.Impl[c.typ], nil
}

func (c *Context) kernelSpec() kernels.Spec {
	return kernels.Spec{
		Family:        c.typ.family(),
		N:             c.n,
		M:             c.m,
		Inverse:       c.inverse,
		InPlace:       c.flags&InPlace != 0,
		FullIMDCT:     c.flags&FullIMDCT != 0,
		Scale:         c.scale,
		PooledScratch: c.flags&ConcurrentScratch != 0,
	}
}

// Transform runs the context's transform; see Func.
func (c *Context) Transform(out, in any, stride int) {
	c.fn(c, out, in, stride)
}

// Len returns the length the context was built with.
func (c *Context) Len() int { return c.length }

// Type returns the transform type.
func (c *Context) Type() Type { return c.typ }

// Inverse reports whether the context computes the inverse transform.
func (c *Context) Inverse() bool { return c.inverse }

// Flags returns the flags the context was built with.
func (c *Context) Flags() Flags { return c.flags }

// Scale returns the output scale, 1 when New was given zero.
func (c *Context) Scale() float64 { return c.scale }

// Factors returns the odd factor and the power-of-two factor of the
// complex transform at the core of the context.
func (c *Context) Factors() (n, m int) { return c.n, c.m }

// Codelet returns the name of the selected execution strategy.
func (c *Context) Codelet() string { return c.codelet }

// ScratchLen returns the number of complex scratch elements one execution uses.
func (c *Context) ScratchLen() int { return c.plan.ScratchLen() }

// Destroy releases every table held by *c and sets *c to nil. It does
// nothing when c or *c is nil.
func Destroy(c **Context) {
	if c == nil || *c == nil {
		return
	}

	(*c).plan.Release()
	*c = nil
}
