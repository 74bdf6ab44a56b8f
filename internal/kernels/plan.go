package kernels

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	txmath "github.com/cwbudde/algo-tx/internal/math"
	"github.com/cwbudde/algo-tx/internal/memory"
	"github.com/cwbudde/algo-tx/internal/perm"
)

// Spec describes the plan to build. N*M is the length of the complex
// transform at its core: the FFT length, half the MDCT coefficient count,
// or half the real transform length.
type Spec struct {
	Family    fftypes.Family
	N, M      int
	Inverse   bool
	InPlace   bool
	FullIMDCT bool
	// Scale multiplies the output; 0 is treated as 1.
	Scale float64
	// PooledScratch leaves scratch allocation to the caller.
	PooledScratch bool
}

// Plan owns the tables of one transform. All tables are written while the
// plan is built and read-only afterwards; only the scratch buffer is
// written by the executors.
type Plan[S fftypes.Scalar, A Arith[S]] struct {
	spec Spec
	bits int

	// Map is the compound input map followed by the output map (2*N*M).
	Map []int
	// RevTab gathers the M-point network input; RevTabC is its inverse.
	RevTab  []int
	RevTabC []int
	// Inplace lists one index per cycle of RevTabC, 0 last.
	Inplace []int
	// Exp holds the MDCT pre/post rotation, or the real-transform weights.
	Exp []Complex[S]
	// Tmp is the plan-owned scratch buffer, nil with PooledScratch.
	Tmp []Complex[S]

	inner  *Plan[S, A]
	tw     [][]Complex[S]
	k      consts[S]
	scale  S
	scaled bool

	alloc  *memory.Allocator
	blocks []memory.Block
}

// NewPlan builds a plan, allocating every table from alloc. On failure all
// tables allocated so far are released before the error is returned.
func NewPlan[S fftypes.Scalar, A Arith[S]](alloc *memory.Allocator, spec Spec) (*Plan[S, A], error) {
	if spec.Scale == 0 {
		spec.Scale = 1
	}

	if spec.N < 1 || !txmath.IsPowerOf2(spec.M) || (spec.N > 1 && txmath.GCD(spec.N, spec.M) != 1) {
		return nil, fmt.Errorf("kernels: invalid factorization %d x %d", spec.N, spec.M)
	}

	p := &Plan[S, A]{spec: spec, bits: txmath.Log2(spec.M), alloc: alloc}

	if err := p.build(); err != nil {
		p.Release()
		return nil, err
	}

	return p, nil
}

// Spec returns the spec the plan was built from, with the default scale applied.
func (p *Plan[S, A]) Spec() Spec { return p.spec }

// Len returns the length of the complex core transform.
func (p *Plan[S, A]) Len() int { return p.spec.N * p.spec.M }

// ScratchLen returns the number of scratch elements one execution needs.
// Power-of-two FFTs work in their output buffer and need none.
func (p *Plan[S, A]) ScratchLen() int {
	size := p.Len()

	switch p.spec.Family {
	case fftypes.FamilyRDFT:
		return size + p.inner.ScratchLen()
	case fftypes.FamilyFFT:
		if p.spec.N == 1 {
			return 0
		}
	}

	return size
}

// Release returns every table to the allocator. It is safe to call on a
// partially built plan and more than once.
func (p *Plan[S, A]) Release() {
	if p.inner != nil {
		p.inner.Release()
		p.inner = nil
	}

	for i := range p.blocks {
		p.blocks[i].Release()
	}

	p.blocks = nil
	p.Map, p.RevTab, p.RevTabC, p.Inplace = nil, nil, nil, nil
	p.Exp, p.Tmp = nil, nil
}

func allocTable[T any, S fftypes.Scalar, A Arith[S]](p *Plan[S, A], n int) ([]T, error) {
	s, b, err := memory.AllocAligned[T](p.alloc, n)
	if err != nil {
		return nil, err
	}

	if n > 0 {
		p.blocks = append(p.blocks, b)
	}

	return s, nil
}

func (p *Plan[S, A]) build() error {
	var (
		ar  A
		err error
	)

	n, m := p.spec.N, p.spec.M
	size := n * m

	p.k = newConsts[S, A]()
	p.tw = twiddleLevels[S, A](p.bits)

	if p.spec.Family == fftypes.FamilyRDFT {
		return p.buildReal()
	}

	if p.spec.Family == fftypes.FamilyFFT && p.spec.Scale != 1 {
		p.scaled = true
		p.scale = ar.FromFloat(p.spec.Scale)
	}

	if p.spec.Family == fftypes.FamilyMDCT || n > 1 {
		if p.Map, err = allocTable[int](p, 2*size); err != nil {
			return err
		}

		perm.Compound(p.Map, n, m, p.spec.Inverse, p.spec.Family == fftypes.FamilyMDCT)
	}

	if p.RevTab, err = allocTable[int](p, m); err != nil {
		return err
	}

	if p.RevTabC, err = allocTable[int](p, m); err != nil {
		return err
	}

	perm.RevTab(p.RevTab, p.RevTabC, p.spec.Inverse, false)

	if p.spec.InPlace && n == 1 {
		idx, err := allocTable[int](p, m)
		if err != nil {
			return err
		}

		p.Inplace = perm.InplaceIndex(idx, p.RevTabC)
	}

	if p.spec.Family == fftypes.FamilyMDCT {
		if p.Exp, err = allocTable[Complex[S]](p, size); err != nil {
			return err
		}

		p.fillMDCTRotation()
	}

	if !p.spec.PooledScratch {
		if p.Tmp, err = allocTable[Complex[S]](p, p.ScratchLen()); err != nil {
			return err
		}
	}

	return nil
}

// fillMDCTRotation writes sqrt(|scale|)·e^{iπ(t+θ)/L} for the L/2 rotations
// of an MDCT with L coefficients. A negative scale adds a quarter turn to
// each of the two rotations, negating the output.
func (p *Plan[S, A]) fillMDCTRotation() {
	var ar A

	len4 := p.Len()
	theta := 1.0 / 8

	if p.spec.Scale < 0 {
		theta += float64(len4)
	}

	mag := math.Sqrt(math.Abs(p.spec.Scale))

	for t := range p.Exp {
		alpha := math.Pi / 2 * (float64(t) + theta) / float64(len4)
		p.Exp[t] = Complex[S]{ar.FromFloat(math.Cos(alpha) * mag), ar.FromFloat(math.Sin(alpha) * mag)}
	}
}
