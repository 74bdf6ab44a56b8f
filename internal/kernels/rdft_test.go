package kernels

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	"github.com/cwbudde/algo-tx/internal/reference"
)

func TestRealForwardMatchesDFT(t *testing.T) {
	t.Parallel()

	for _, tc := range fftLengths {
		length := 2 * tc.n * tc.m

		t.Run(fmt.Sprintf("n=%d", length), func(t *testing.T) {
			t.Parallel()

			p := mustPlan[float64, FloatArith[float64]](t, Spec{Family: fftypes.FamilyRDFT, N: tc.n, M: tc.m})
			defer p.Release()

			x := randomFloat64(length, int64(length))
			out := make([]Complex[float64], length/2+1)

			p.RealForward(out, x, 1, p.Tmp)

			want := reference.NaiveRealDFT(x)
			assertComplexClose(t, fromComplex(out), want, 1e-9*maxAbs(want))
		})
	}
}

func TestRealInverseMatchesDFT(t *testing.T) {
	t.Parallel()

	for _, tc := range fftLengths {
		length := 2 * tc.n * tc.m

		t.Run(fmt.Sprintf("n=%d", length), func(t *testing.T) {
			t.Parallel()

			p := mustPlan[float64, FloatArith[float64]](t, Spec{
				Family: fftypes.FamilyRDFT, N: tc.n, M: tc.m, Inverse: true, Scale: 0.5,
			})
			defer p.Release()

			bins := randomComplex128(length/2+1, int64(length))
			out := make([]float64, length)

			p.RealInverse(out, toComplex[float64](bins), 1, p.Tmp)

			want := reference.NaiveRealIDFT(bins, length)
			for i := range want {
				want[i] *= 0.5
			}

			assertRealClose(t, out, want, 1e-9*maxAbsReal(want))
		})
	}
}

func TestRealKnownSmall(t *testing.T) {
	t.Parallel()

	p := mustPlan[float64, FloatArith[float64]](t, Spec{Family: fftypes.FamilyRDFT, N: 1, M: 2})
	defer p.Release()

	out := make([]Complex[float64], 3)
	p.RealForward(out, []float64{1, 0, 0, 0}, 1, p.Tmp)

	for k, v := range out {
		if v != (Complex[float64]{1, 0}) {
			t.Errorf("bin %d = %v, want 1", k, v)
		}
	}
}

func TestRealStride(t *testing.T) {
	t.Parallel()

	const stride = 4

	fwd := mustPlan[float64, FloatArith[float64]](t, Spec{Family: fftypes.FamilyRDFT, N: 3, M: 8})
	defer fwd.Release()

	inv := mustPlan[float64, FloatArith[float64]](t, Spec{Family: fftypes.FamilyRDFT, N: 3, M: 8, Inverse: true})
	defer inv.Release()

	const length = 48

	x := randomFloat64(length, 1)
	bins := make([]Complex[float64], (length/2)*stride+1)
	fwd.RealForward(bins, x, stride, fwd.Tmp)

	back := make([]float64, length)
	inv.RealInverse(back, bins, stride, inv.Tmp)

	for i := range x {
		x[i] *= length
	}

	assertRealClose(t, back, x, 1e-9*length)
}
