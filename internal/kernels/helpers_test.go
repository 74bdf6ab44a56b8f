package kernels

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	"github.com/cwbudde/algo-tx/internal/memory"
)

type (
	plan32  = Plan[float32, FloatArith[float32]]
	plan64  = Plan[float64, FloatArith[float64]]
	planQ31 = Plan[int32, FixedArith]
)

func mustPlan[S fftypes.Scalar, A Arith[S]](t testing.TB, spec Spec) *Plan[S, A] {
	t.Helper()

	p, err := NewPlan[S, A](memory.NewAllocator(0), spec)
	if err != nil {
		t.Fatalf("NewPlan(%+v): %v", spec, err)
	}

	return p
}

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)

	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomFloat64(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func toComplex[S fftypes.Scalar](x []complex128) []Complex[S] {
	out := make([]Complex[S], len(x))
	for i, v := range x {
		out[i] = Complex[S]{S(real(v)), S(imag(v))}
	}

	return out
}

func fromComplex[S fftypes.Scalar](x []Complex[S]) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(float64(v.Re), float64(v.Im))
	}

	return out
}

// maxAbs returns the largest magnitude in x, at least 1.
func maxAbs(x []complex128) float64 {
	m := 1.0
	for _, v := range x {
		m = max(m, cmplx.Abs(v))
	}

	return m
}

func assertComplexClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := cmplx.Abs(got[i] - want[i]); d > tol || math.IsNaN(d) {
			t.Fatalf("index %d: got %v, want %v (|diff| = %g > %g)", i, got[i], want[i], d, tol)
		}
	}
}

func assertRealClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > tol || math.IsNaN(d) {
			t.Fatalf("index %d: got %g, want %g (|diff| = %g > %g)", i, got[i], want[i], d, tol)
		}
	}
}
