// Package reference holds direct O(N²) definitions of the transforms, used
// as oracles by the tests.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes the unnormalized DFT of x, with e^{+2πi jk/N} when inverse.
func NaiveDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	sign := -1.0
	if inverse {
		sign = 1
	}

	for k := range n {
		var sum complex128

		for j, v := range x {
			angle := sign * 2 * math.Pi * float64((j*k)%n) / float64(n)
			sum += v * cmplx.Rect(1, angle)
		}

		out[k] = sum
	}

	return out
}

// NaiveRealDFT returns bins 0..N/2 of the DFT of the real sequence x.
func NaiveRealDFT(x []float64) []complex128 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(v, 0)
	}

	return NaiveDFT(c, false)[:len(x)/2+1]
}

// NaiveRealIDFT synthesizes n real samples from bins 0..n/2 of a Hermitian
// spectrum, unnormalized. Imaginary parts of bins 0 and n/2 are ignored.
func NaiveRealIDFT(bins []complex128, n int) []float64 {
	full := make([]complex128, n)
	for k := range n {
		switch {
		case k == 0 || k == n/2:
			full[k] = complex(real(bins[k]), 0)
		case k < n/2:
			full[k] = bins[k]
		default:
			full[k] = cmplx.Conj(bins[n-k])
		}
	}

	c := NaiveDFT(full, true)
	out := make([]float64, n)

	for i, v := range c {
		out[i] = real(v)
	}

	return out
}

// mdctKernel is cos(π/L (j + 1/2 + L/2)(k + 1/2)).
func mdctKernel(j, k, l int) float64 {
	return math.Cos(math.Pi / float64(l) * (float64(j) + 0.5 + float64(l)/2) * (float64(k) + 0.5))
}

// NaiveMDCT maps 2L samples to L coefficients.
func NaiveMDCT(x []float64) []float64 {
	l := len(x) / 2
	out := make([]float64, l)

	for k := range l {
		var sum float64
		for j, v := range x {
			sum += v * mdctKernel(j, k, l)
		}

		out[k] = sum
	}

	return out
}

// NaiveIMDCT maps L coefficients to the full 2L-sample inverse.
func NaiveIMDCT(coeffs []float64) []float64 {
	l := len(coeffs)
	out := make([]float64, 2*l)

	for j := range out {
		var sum float64
		for k, v := range coeffs {
			sum += v * mdctKernel(j, k, l)
		}

		out[j] = sum
	}

	return out
}
