package tx

import (
	"fmt"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

var fftSizes = []int{1, 2, 3, 4, 5, 6, 8, 10, 12, 15, 16, 20, 30, 32, 40, 60, 64, 80, 120, 128, 240, 256, 480, 512, 960, 1024, 1920, 4096}

func TestDoubleFFTMatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range fftSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			c, fn := mustNew(t, DoubleFFT, false, n, 0, 0)

			src := randomComplex(n, int64(n))
			out := make([]complex128, n)
			fn(c, out, src, 1)

			want := fourier.NewCmplxFFT(n).Coefficients(nil, src)
			assertComplexNear(t, out, want, 1e-9*peak(want))
		})
	}
}

func TestDoubleFFTMatchesGoDSP(t *testing.T) {
	for _, n := range fftSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := randomComplex(n, int64(3*n))

			fwd, fwdFn := mustNew(t, DoubleFFT, false, n, 0, 0)
			out := make([]complex128, n)
			fwdFn(fwd, out, src, 1)

			want := fft.FFT(src)
			assertComplexNear(t, out, want, 1e-8*peak(want))

			inv, invFn := mustNew(t, DoubleFFT, true, n, 0, 0)
			invFn(inv, out, src, 1)

			// go-dsp normalizes its inverse by 1/n.
			want = fft.IFFT(src)
			for i := range want {
				want[i] *= complex(float64(n), 0)
			}

			assertComplexNear(t, out, want, 1e-8*peak(want))
		})
	}
}

func TestFloatFFTMatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range fftSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			c, fn := mustNew(t, FloatFFT, false, n, 0, 0)

			src := to64(randomComplex(n, 11))
			out := make([]complex64, n)
			fn(c, out, src, 1)

			want := fourier.NewCmplxFFT(n).Coefficients(nil, from64(src))
			assertComplexNear(t, from64(out), want, 2e-5*peak(want))
		})
	}
}

func TestInt32FFTMatchesGoDSP(t *testing.T) {
	for _, n := range []int{2, 8, 15, 60, 256, 480, 1024} {
		for _, inverse := range []bool{false, true} {
			t.Run(fmt.Sprintf("n=%d/inv=%v", n, inverse), func(t *testing.T) {
				c, fn := mustNew(t, Int32FFT, inverse, n, 0, 0)

				ref := randomComplex(n, int64(n))
				src := make([]ComplexInt32, n)

				for i, v := range ref {
					src[i] = ComplexInt32{Re: int32(real(v) * (1 << 20)), Im: int32(imag(v) * (1 << 20))}
					ref[i] = complex(float64(src[i].Re), float64(src[i].Im))
				}

				out := make([]ComplexInt32, n)
				fn(c, out, src, 1)

				var want []complex128
				if inverse {
					want = fft.IFFT(ref)
					for i := range want {
						want[i] *= complex(float64(n), 0)
					}
				} else {
					want = fft.FFT(ref)
				}

				got := make([]complex128, n)
				for i, v := range out {
					got[i] = complex(float64(v.Re), float64(v.Im))
				}

				assertComplexNear(t, got, want, 4*float64(n)+4)
			})
		}
	}
}

func TestFFTRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range fftSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			fwd, fwdFn := mustNew(t, DoubleFFT, false, n, 0, 0)
			inv, invFn := mustNew(t, DoubleFFT, true, n, 1/float64(n), 0)

			src := randomComplex(n, 5)
			freq := make([]complex128, n)
			back := make([]complex128, n)

			fwdFn(fwd, freq, src, 1)
			invFn(inv, back, freq, 1)

			assertComplexNear(t, back, src, 1e-12*float64(n))
		})
	}
}

func TestFFTInPlace(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 64, 1024, 3, 15, 60, 480} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			c, fn := mustNew(t, DoubleFFT, false, n, 0, InPlace)

			src := randomComplex(n, 17)
			want := fourier.NewCmplxFFT(n).Coefficients(nil, src)

			buf := append([]complex128(nil), src...)
			fn(c, buf, buf, 1)

			assertComplexNear(t, buf, want, 1e-9*peak(want))
		})
	}
}

func TestFFTStrided(t *testing.T) {
	t.Parallel()

	const (
		n      = 240
		stride = 3
	)

	c, fn := mustNew(t, DoubleFFT, false, n, 0, 0)

	src := randomComplex(n, 23)
	in := make([]complex128, (n-1)*stride+1)

	for i, v := range src {
		in[i*stride] = v
	}

	out := make([]complex128, len(in))
	fn(c, out, in, stride)

	got := make([]complex128, n)
	for i := range got {
		got[i] = out[i*stride]
	}

	want := fourier.NewCmplxFFT(n).Coefficients(nil, src)
	assertComplexNear(t, got, want, 1e-9*peak(want))
}

func TestFFTKnownValues(t *testing.T) {
	t.Parallel()

	c, fn := mustNew(t, DoubleFFT, false, 2, 0, 0)

	out := make([]complex128, 2)
	fn(c, out, []complex128{1, -1}, 1)

	if out[0] != 0 || out[1] != 2 {
		t.Errorf("FFT2([1 -1]) = %v, want [0 2]", out)
	}

	c4, fn4 := mustNew(t, FloatFFT, false, 4, 0, 0)

	out4 := make([]complex64, 4)
	fn4(c4, out4, []complex64{1, 0, 0, 0}, 1)

	for k, v := range out4 {
		if v != 1 {
			t.Errorf("FFT4 impulse bin %d = %v, want 1", k, v)
		}
	}
}

func BenchmarkDoubleFFT(b *testing.B) {
	for _, n := range []int{256, 480, 1024, 1920, 4096} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c, fn := mustNew(b, DoubleFFT, false, n, 0, 0)

			src := randomComplex(n, 1)
			out := make([]complex128, n)

			b.SetBytes(int64(n * 16))
			b.ReportAllocs()

			for b.Loop() {
				fn(c, out, src, 1)
			}
		})
	}
}
