package kernels

import (
	"math"

	"github.com/cwbudde/algo-tx/internal/fftypes"
)

// Complex is the sample type every kernel operates on.
type Complex[S fftypes.Scalar] = fftypes.Complex[S]

// Arith supplies the multiplications of one numeric domain. Additions and
// subtractions are plain Go arithmetic in every domain; for int32 they wrap.
type Arith[S fftypes.Scalar] interface {
	// Mul returns a*b.
	Mul(a, b Complex[S]) Complex[S]
	// MulConj returns a*conj(b).
	MulConj(a, b Complex[S]) Complex[S]
	// MulReal returns a scaled by the real coefficient s.
	MulReal(a Complex[S], s S) Complex[S]
	// Fold combines two input samples of an MDCT fold.
	Fold(a, b S) S
	// FromFloat converts a coefficient in [-1, 1] (any value for floats).
	FromFloat(f float64) S
}

// FloatArith is ordinary IEEE complex arithmetic.
type FloatArith[F fftypes.Float] struct{}

func (FloatArith[F]) Mul(a, b Complex[F]) Complex[F] {
	return Complex[F]{a.Re*b.Re - a.Im*b.Im, a.Re*b.Im + a.Im*b.Re}
}

func (FloatArith[F]) MulConj(a, b Complex[F]) Complex[F] {
	return Complex[F]{a.Re*b.Re + a.Im*b.Im, a.Im*b.Re - a.Re*b.Im}
}

func (FloatArith[F]) MulReal(a Complex[F], s F) Complex[F] {
	return Complex[F]{a.Re * s, a.Im * s}
}

func (FloatArith[F]) Fold(a, b F) F { return a + b }

func (FloatArith[F]) FromFloat(f float64) F { return F(f) }

// FixedArith is Q31 arithmetic: products accumulate in 64 bits and round
// to nearest by adding 2^30 before the arithmetic shift by 31.
type FixedArith struct{}

const q31Round = 0x40000000

func (FixedArith) Mul(a, b Complex[int32]) Complex[int32] {
	re := int64(a.Re)*int64(b.Re) - int64(a.Im)*int64(b.Im)
	im := int64(a.Re)*int64(b.Im) + int64(a.Im)*int64(b.Re)

	return Complex[int32]{int32((re + q31Round) >> 31), int32((im + q31Round) >> 31)}
}

func (FixedArith) MulConj(a, b Complex[int32]) Complex[int32] {
	re := int64(a.Re)*int64(b.Re) + int64(a.Im)*int64(b.Im)
	im := int64(a.Im)*int64(b.Re) - int64(a.Re)*int64(b.Im)

	return Complex[int32]{int32((re + q31Round) >> 31), int32((im + q31Round) >> 31)}
}

func (FixedArith) MulReal(a Complex[int32], s int32) Complex[int32] {
	return Complex[int32]{
		int32((int64(a.Re)*int64(s) + q31Round) >> 31),
		int32((int64(a.Im)*int64(s) + q31Round) >> 31),
	}
}

// Fold averages the pair down by 64 with rounding, leaving headroom for the
// transform's gain.
func (FixedArith) Fold(a, b int32) int32 {
	return int32((int64(a) + int64(b) + 32) >> 6)
}

// FromFloat rounds f*2^31 and clips it to ±MaxInt32. The symmetric range keeps
// every 64-bit product sum of Mul within range for full-scale inputs.
func (FixedArith) FromFloat(f float64) int32 {
	v := math.Round(f * (1 << 31))

	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < -math.MaxInt32:
		return -math.MaxInt32
	default:
		return int32(v)
	}
}

// FusedArith is float64 arithmetic whose complex products are formed with
// fused multiply-add, rounding once per component. It is only fast where the
// CPU has an FMA unit.
type FusedArith struct{}

func (FusedArith) Mul(a, b Complex[float64]) Complex[float64] {
	return Complex[float64]{math.FMA(a.Re, b.Re, -a.Im*b.Im), math.FMA(a.Re, b.Im, a.Im*b.Re)}
}

func (FusedArith) MulConj(a, b Complex[float64]) Complex[float64] {
	return Complex[float64]{math.FMA(a.Re, b.Re, a.Im*b.Im), math.FMA(a.Im, b.Re, -a.Re*b.Im)}
}

func (FusedArith) MulReal(a Complex[float64], s float64) Complex[float64] {
	return Complex[float64]{a.Re * s, a.Im * s}
}

func (FusedArith) Fold(a, b float64) float64 { return a + b }

func (FusedArith) FromFloat(f float64) float64 { return f }
