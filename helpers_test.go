package tx

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-tx/internal/cpu"
	"github.com/cwbudde/algo-tx/internal/kernels"
)

// withRegistry selects codelets from r instead of the built-in registry.
func withRegistry(r *kernels.Registry[*strategyTable]) Option {
	return func(o *options) {
		o.registry = r
	}
}

// withFeatures selects codelets as if the CPU reported f.
func withFeatures(f cpu.Features) Option {
	return func(o *options) {
		o.features = &f
	}
}

func mustNew(t testing.TB, typ Type, inverse bool, length int, scale float64, flags Flags, opts ...Option) (*Context, Func) {
	t.Helper()

	c, fn, err := New(typ, inverse, length, scale, flags, opts...)
	if err != nil {
		t.Fatalf("New(%s, inverse=%v, %d): %v", typ, inverse, length, err)
	}

	t.Cleanup(func() { Destroy(&c) })

	return c, fn
}

func randomComplex(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)

	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomReal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func to64(x []complex128) []complex64 {
	out := make([]complex64, len(x))
	for i, v := range x {
		out[i] = complex64(v)
	}

	return out
}

func from64(x []complex64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex128(v)
	}

	return out
}

func peak(x []complex128) float64 {
	m := 1.0
	for _, v := range x {
		m = max(m, cmplx.Abs(v))
	}

	return m
}

func peakReal(x []float64) float64 {
	m := 1.0
	for _, v := range x {
		m = max(m, math.Abs(v))
	}

	return m
}

func assertComplexNear(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := cmplx.Abs(got[i] - want[i]); d > tol || math.IsNaN(d) {
			t.Fatalf("index %d: got %v want %v (diff=%g, tol=%g)", i, got[i], want[i], d, tol)
		}
	}
}

func assertRealNear(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > tol || math.IsNaN(d) {
			t.Fatalf("index %d: got %g want %g (diff=%g, tol=%g)", i, got[i], want[i], d, tol)
		}
	}
}
