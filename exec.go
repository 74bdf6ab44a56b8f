package tx

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	"github.com/cwbudde/algo-tx/internal/kernels"
	"github.com/cwbudde/algo-tx/internal/memory"
)

type (
	f32 = kernels.FloatArith[float32]
	f64 = kernels.FloatArith[float64]
	fma = kernels.FusedArith
	q31 = kernels.FixedArith
)

// strategy is the implementation of one codelet for one transform type:
// build fills the context's plan and exec is the Func New returns.
type strategy struct {
	build func(*Context, *memory.Allocator) error
	exec  Func
}

// strategyTable holds a codelet's strategy per type; types the codelet
// does not serve have a zero entry.
type strategyTable [numTypes]strategy

var genericStrategies = strategyTable{
	FloatFFT:   {build[float32, f32], execFFT[complex64, float32, f32]},
	DoubleFFT:  {build[float64, f64], execFFT[complex128, float64, f64]},
	Int32FFT:   {build[int32, q31], execFFT[ComplexInt32, int32, q31]},
	FloatMDCT:  {build[float32, f32], execMDCT[float32, f32]},
	DoubleMDCT: {build[float64, f64], execMDCT[float64, f64]},
	Int32MDCT:  {build[int32, q31], execMDCT[int32, q31]},
	FloatRDFT:  {build[float32, f32], execRDFT[complex64, float32, f32]},
	DoubleRDFT: {build[float64, f64], execRDFT[complex128, float64, f64]},
}

var fusedStrategies = strategyTable{
	DoubleFFT:  {build[float64, fma], execFFT[complex128, float64, fma]},
	DoubleMDCT: {build[float64, fma], execMDCT[float64, fma]},
	DoubleRDFT: {build[float64, fma], execRDFT[complex128, float64, fma]},
}

var defaultRegistry = kernels.NewRegistry(
	kernels.Entry[*strategyTable]{Codelet: kernels.SplitRadixFFT, Impl: &genericStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.CompoundFFT, Impl: &genericStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.CompoundMDCT, Impl: &genericStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.HalfRDFT, Impl: &genericStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.FusedSplitRadixFFT, Impl: &fusedStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.FusedCompoundFFT, Impl: &fusedStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.FusedMDCT, Impl: &fusedStrategies},
	kernels.Entry[*strategyTable]{Codelet: kernels.FusedRDFT, Impl: &fusedStrategies},
)

func build[S fftypes.Scalar, A kernels.Arith[S]](c *Context, alloc *memory.Allocator) error {
	p, err := kernels.NewPlan[S, A](alloc, c.kernelSpec())
	if err != nil {
		return err
	}

	c.plan = p

	if c.flags&ConcurrentScratch != 0 {
		size := p.ScratchLen()
		c.pool = &sync.Pool{New: func() any {
			buf := make([]fftypes.Complex[S], size)
			return &buf
		}}
	}

	return nil
}

func execFFT[B any, S fftypes.Scalar, A kernels.Arith[S]](c *Context, out, in any, stride int) {
	p := planOf[S, A](c)
	tmp, h := scratchFor(c, p)

	p.FFT(complexView[S](buffer[B](c, out)), complexView[S](buffer[B](c, in)), stride, tmp)
	putScratch(c, h)
}

func execMDCT[S fftypes.Scalar, A kernels.Arith[S]](c *Context, out, in any, stride int) {
	p := planOf[S, A](c)
	tmp, h := scratchFor(c, p)

	if c.inverse {
		p.IMDCT(buffer[S](c, out), buffer[S](c, in), stride, tmp)
	} else {
		p.MDCT(buffer[S](c, out), buffer[S](c, in), stride, tmp)
	}

	putScratch(c, h)
}

func execRDFT[B any, S fftypes.Scalar, A kernels.Arith[S]](c *Context, out, in any, stride int) {
	p := planOf[S, A](c)
	tmp, h := scratchFor(c, p)

	if c.inverse {
		p.RealInverse(buffer[S](c, out), complexView[S](buffer[B](c, in)), stride, tmp)
	} else {
		p.RealForward(complexView[S](buffer[B](c, out)), buffer[S](c, in), stride, tmp)
	}

	putScratch(c, h)
}

func planOf[S fftypes.Scalar, A kernels.Arith[S]](c *Context) *kernels.Plan[S, A] {
	p, ok := c.plan.(*kernels.Plan[S, A])
	if !ok {
		panic(fmt.Sprintf("tx: executor does not match %s context", c.typ))
	}

	return p
}

// scratchFor returns the scratch buffer for one execution, along with the
// pool handle to return afterwards (nil for context-owned scratch).
func scratchFor[S fftypes.Scalar, A kernels.Arith[S]](c *Context, p *kernels.Plan[S, A]) ([]fftypes.Complex[S], *[]fftypes.Complex[S]) {
	if c.pool == nil {
		return p.Tmp, nil
	}

	h := c.pool.Get().(*[]fftypes.Complex[S])

	return *h, h
}

func putScratch[S fftypes.Scalar](c *Context, h *[]fftypes.Complex[S]) {
	if h != nil {
		c.pool.Put(h)
	}
}

func buffer[B any](c *Context, v any) []B {
	b, ok := v.([]B)
	if !ok {
		panic(fmt.Sprintf("tx: %s buffer has type %T, want %T", c.typ, v, b))
	}

	return b
}

// complexView reinterprets a slice of two-word complex values, which share
// the layout of fftypes.Complex[S].
func complexView[S fftypes.Scalar, B any](b []B) []fftypes.Complex[S] {
	return unsafe.Slice((*fftypes.Complex[S])(unsafe.Pointer(unsafe.SliceData(b))), len(b))
}
