package kernels

import "github.com/cwbudde/algo-tx/internal/fftypes"

// pfa15Out maps output k of the 15-point kernel to its slot 5*(k%3) + k%5
// in the 3x5 intermediate.
var pfa15Out = func() (t [15]int) {
	for k := range t {
		t[k] = 5*(k%3) + k%5
	}

	return t
}()

// rowFFT computes the forward n-point DFT (n in {1, 3, 5, 15}) of in and
// writes output k to out[k*stride].
func rowFFT[S fftypes.Scalar, A Arith[S]](out, in []Complex[S], n, stride int, k *consts[S]) {
	switch n {
	case 1:
		out[0] = in[0]
	case 3:
		fft3[S, A](out, in, stride, k)
	case 5:
		fft5[S, A](out, in, stride, k)
	case 15:
		fft15[S, A](out, in, stride, k)
	default:
		panic("kernels: unsupported row length")
	}
}

func fft3[S fftypes.Scalar, A Arith[S]](out, in []Complex[S], stride int, k *consts[S]) {
	var ar A

	a, b, c := in[0], in[1], in[2]
	s := Complex[S]{b.Re + c.Re, b.Im + c.Im}
	d := ar.MulReal(Complex[S]{b.Re - c.Re, b.Im - c.Im}, k.sin3)
	h := ar.MulReal(s, k.half)
	t := Complex[S]{a.Re - h.Re, a.Im - h.Im}

	out[0] = Complex[S]{a.Re + s.Re, a.Im + s.Im}
	out[stride] = Complex[S]{t.Re + d.Im, t.Im - d.Re}
	out[2*stride] = Complex[S]{t.Re - d.Im, t.Im + d.Re}
}

func fft5[S fftypes.Scalar, A Arith[S]](out, in []Complex[S], stride int, k *consts[S]) {
	var ar A

	x0 := in[0]
	s1 := Complex[S]{in[1].Re + in[4].Re, in[1].Im + in[4].Im}
	d1 := Complex[S]{in[1].Re - in[4].Re, in[1].Im - in[4].Im}
	s2 := Complex[S]{in[2].Re + in[3].Re, in[2].Im + in[3].Im}
	d2 := Complex[S]{in[2].Re - in[3].Re, in[2].Im - in[3].Im}

	c1s1, c2s1 := ar.MulReal(s1, k.cos5[0]), ar.MulReal(s1, k.cos5[1])
	c1s2, c2s2 := ar.MulReal(s2, k.cos5[0]), ar.MulReal(s2, k.cos5[1])
	s1d1, s2d1 := ar.MulReal(d1, k.sin5[0]), ar.MulReal(d1, k.sin5[1])
	s1d2, s2d2 := ar.MulReal(d2, k.sin5[0]), ar.MulReal(d2, k.sin5[1])

	t1 := Complex[S]{x0.Re + c1s1.Re + c2s2.Re, x0.Im + c1s1.Im + c2s2.Im}
	t2 := Complex[S]{x0.Re + c2s1.Re + c1s2.Re, x0.Im + c2s1.Im + c1s2.Im}
	r1 := Complex[S]{s1d1.Re + s2d2.Re, s1d1.Im + s2d2.Im}
	r2 := Complex[S]{s2d1.Re - s1d2.Re, s2d1.Im - s1d2.Im}

	out[0] = Complex[S]{x0.Re + s1.Re + s2.Re, x0.Im + s1.Im + s2.Im}
	out[stride] = Complex[S]{t1.Re + r1.Im, t1.Im - r1.Re}
	out[4*stride] = Complex[S]{t1.Re - r1.Im, t1.Im + r1.Re}
	out[2*stride] = Complex[S]{t2.Re + r2.Im, t2.Im - r2.Re}
	out[3*stride] = Complex[S]{t2.Re - r2.Im, t2.Im + r2.Re}
}

// fft15 expects its input in the 3x5 layout produced by the compound map:
// in[3*i+j] is the row element at (3*i + 5*j) mod 15.
func fft15[S fftypes.Scalar, A Arith[S]](out, in []Complex[S], stride int, k *consts[S]) {
	var mid, res [15]Complex[S]

	for i := range 5 {
		fft3[S, A](mid[i:], in[3*i:], 5, k)
	}

	for k1 := range 3 {
		fft5[S, A](res[5*k1:], mid[5*k1:], 1, k)
	}

	for j, slot := range pfa15Out {
		out[j*stride] = res[slot]
	}
}
