package kernels

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	txmath "github.com/cwbudde/algo-tx/internal/math"
)

// buildReal prepares a real transform of length 2*N*M: an inner complex plan
// of half the length plus the split weights
// U[k] = 0.5*(1 + sin θ) + 0.5i*cos θ, θ = 2πk/(2*N*M), for k <= N*M.
func (p *Plan[S, A]) buildReal() error {
	var ar A

	inner, err := NewPlan[S, A](p.alloc, Spec{
		Family:        fftypes.FamilyFFT,
		N:             p.spec.N,
		M:             p.spec.M,
		Inverse:       p.spec.Inverse,
		PooledScratch: true,
	})
	if err != nil {
		return err
	}

	p.inner = inner

	half := p.Len()
	if p.Exp, err = allocTable[Complex[S]](p, half+1); err != nil {
		return err
	}

	for k := range p.Exp {
		theta := txmath.TwoPi * float64(k) / float64(2*half)
		p.Exp[k] = Complex[S]{
			ar.FromFloat(0.5 * (1 + math.Sin(theta))),
			ar.FromFloat(0.5 * math.Cos(theta)),
		}
	}

	// The inner inverse transform is half as long as the real one, so the
	// synthesis carries a factor of two.
	switch {
	case p.spec.Inverse:
		p.scaled = true
		p.scale = ar.FromFloat(2 * p.spec.Scale)
	case p.spec.Scale != 1:
		p.scaled = true
		p.scale = ar.FromFloat(p.spec.Scale)
	}

	if !p.spec.PooledScratch {
		if p.Tmp, err = allocTable[Complex[S]](p, p.ScratchLen()); err != nil {
			return err
		}
	}

	return nil
}

// complexView reinterprets 2n reals as n complex samples.
func complexView[S fftypes.Scalar](x []S) []Complex[S] {
	if len(x) < 2 {
		return nil
	}

	return unsafe.Slice((*Complex[S])(unsafe.Pointer(unsafe.SliceData(x))), len(x)/2)
}

// RealForward computes bins 0..N*M of the 2*N*M real samples in src and
// writes bin k to dst[k*stride].
//
// Caller guarantees: src holds 2*N*M samples, dst holds N*M*stride+1
// elements, tmp holds ScratchLen elements.
func (p *Plan[S, A]) RealForward(dst []Complex[S], src []S, stride int, tmp []Complex[S]) {
	var ar A

	half := p.Len()
	buf := tmp[:half]

	p.inner.FFT(buf, complexView(src[:2*half]), 1, tmp[half:])

	y0 := buf[0]
	dst[0] = Complex[S]{y0.Re + y0.Im, 0}
	dst[half*stride] = Complex[S]{y0.Re - y0.Im, 0}

	for k := 1; k < half; k++ {
		a, b := buf[k], buf[half-k]
		c := ar.Mul(p.Exp[k], Complex[S]{a.Re - b.Re, a.Im + b.Im})
		dst[k*stride] = Complex[S]{a.Re - c.Re, a.Im - c.Im}
	}

	if p.scaled {
		for k := 0; k <= half; k++ {
			dst[k*stride] = ar.MulReal(dst[k*stride], p.scale)
		}
	}
}

// RealInverse synthesizes the 2*N*M real samples whose spectrum has bins
// 0..N*M read from src[k*stride], writing them to dst. The imaginary parts
// of bins 0 and N*M are ignored.
func (p *Plan[S, A]) RealInverse(dst []S, src []Complex[S], stride int, tmp []Complex[S]) {
	var ar A

	half := p.Len()
	buf := tmp[:half]
	one := ar.FromFloat(1)

	x0, xh := src[0].Re, src[half*stride].Re
	buf[0] = ar.MulReal(ar.MulReal(Complex[S]{x0 + xh, x0 - xh}, p.k.half), p.scale)

	for k := 1; k <= half/2; k++ {
		mk := half - k
		xk := src[k*stride]
		xm := Complex[S]{src[mk*stride].Re, -src[mk*stride].Im}

		u := p.Exp[k]
		omu := Complex[S]{one - u.Re, -u.Im}
		det := Complex[S]{one - u.Re - u.Re, -u.Im - u.Im}

		ka, kb := ar.Mul(xk, omu), ar.Mul(xm, u)
		a := ar.MulConj(Complex[S]{ka.Re - kb.Re, ka.Im - kb.Im}, det)
		buf[k] = ar.MulReal(a, p.scale)

		if mk != k {
			ma, mb := ar.Mul(xm, omu), ar.Mul(xk, u)
			b := ar.MulConj(Complex[S]{ma.Re - mb.Re, ma.Im - mb.Im}, det)
			buf[mk] = ar.MulReal(Complex[S]{b.Re, -b.Im}, p.scale)
		}
	}

	p.inner.FFT(complexView(dst[:2*half]), buf, 1, tmp[half:])
}
