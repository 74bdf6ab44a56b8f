package kernels

import "github.com/cwbudde/algo-tx/internal/fftypes"

// splitRadix transforms the 2^bits points of z in place. z must already be
// in split-radix order (gathered through the reverse table); the direction
// is carried entirely by that order.
func splitRadix[S fftypes.Scalar, A Arith[S]](z []Complex[S], bits int, tw [][]Complex[S], k *consts[S]) {
	switch bits {
	case 0:
	case 1:
		fft2(z)
	case 2:
		fft4(z)
	case 3:
		fft8[S, A](z, k.sqrt1_2)
	default:
		h := 1 << (bits - 1)
		q := h >> 1

		splitRadix[S, A](z[:h], bits-1, tw, k)
		splitRadix[S, A](z[h:h+q], bits-2, tw, k)
		splitRadix[S, A](z[h+q:], bits-2, tw, k)
		combine[S, A](z, tw[bits])
	}
}

// combine merges the half-size transform in z[:N/2] with the quarter-size
// transforms in z[N/2:3N/4] and z[3N/4:].
func combine[S fftypes.Scalar, A Arith[S]](z []Complex[S], w []Complex[S]) {
	var ar A

	q := len(z) >> 2

	butterfly(z, 0, q, z[2*q], z[3*q])

	for k := 1; k < q; k++ {
		butterfly(z, k, q, ar.Mul(z[2*q+k], w[k]), ar.MulConj(z[3*q+k], w[k]))
	}
}

// butterfly writes the four outputs of column k from the rotated quarter
// samples a = w^k·Z[k] and b = w^-k·Z'[k].
func butterfly[S fftypes.Scalar](z []Complex[S], k, q int, a, b Complex[S]) {
	sRe, sIm := a.Re+b.Re, a.Im+b.Im
	dRe, dIm := a.Re-b.Re, a.Im-b.Im
	u0, u1 := z[k], z[q+k]

	z[k] = Complex[S]{u0.Re + sRe, u0.Im + sIm}
	z[2*q+k] = Complex[S]{u0.Re - sRe, u0.Im - sIm}
	z[q+k] = Complex[S]{u1.Re + dIm, u1.Im - dRe}
	z[3*q+k] = Complex[S]{u1.Re - dIm, u1.Im + dRe}
}

func fft2[S fftypes.Scalar](z []Complex[S]) {
	a, b := z[0], z[1]
	z[0] = Complex[S]{a.Re + b.Re, a.Im + b.Im}
	z[1] = Complex[S]{a.Re - b.Re, a.Im - b.Im}
}

func fft4[S fftypes.Scalar](z []Complex[S]) {
	fft2(z[:2])
	butterfly(z, 0, 1, z[2], z[3])
}

func fft8[S fftypes.Scalar, A Arith[S]](z []Complex[S], sqrt1_2 S) {
	var ar A

	fft4(z[:4])
	fft2(z[4:6])
	fft2(z[6:8])

	w := Complex[S]{sqrt1_2, -sqrt1_2}

	butterfly(z, 0, 2, z[4], z[6])
	butterfly(z, 1, 2, ar.Mul(z[5], w), ar.MulConj(z[7], w))
}
