package kernels

// FFT transforms N*M complex samples from in to out, reading and writing
// every stride-th element. tmp must hold ScratchLen elements; power-of-two
// plans need none.
//
// The scale is applied to each sample as it is read, so a fixed-point
// transform with |scale| <= 1/(N*M) cannot overflow on full-scale input.
//
// Caller guarantees: buffers hold (N*M-1)*stride+1 elements; out and in
// are distinct unless the plan is in place or compound; for in-place plans
// stride is 1.
func (p *Plan[S, A]) FFT(out, in []Complex[S], stride int, tmp []Complex[S]) {
	m := p.spec.M

	switch {
	case p.spec.N > 1:
		p.compound(out, in, stride, tmp)
	case p.spec.InPlace:
		p.permuteInPlace(out)

		if p.scaled {
			for i := range m {
				out[i] = p.load(out[i])
			}
		}

		splitRadix[S, A](out[:m], p.bits, p.tw, &p.k)
	default:
		// Transform densely in the head of out, then spread it backwards
		// so no sample is overwritten before it has been moved.
		for i, src := range p.RevTab {
			out[i] = p.load(in[src*stride])
		}

		splitRadix[S, A](out[:m], p.bits, p.tw, &p.k)

		if stride != 1 {
			for i := m - 1; i > 0; i-- {
				out[i*stride] = out[i]
			}
		}
	}
}

// load returns an input sample multiplied by the plan's scale.
func (p *Plan[S, A]) load(v Complex[S]) Complex[S] {
	if !p.scaled {
		return v
	}

	var ar A

	return ar.MulReal(v, p.scale)
}

// permuteInPlace moves sample j to position RevTabC[j] by rotating each
// cycle once, starting from its recorded representative.
func (p *Plan[S, A]) permuteInPlace(z []Complex[S]) {
	revC := p.RevTabC

	for _, src := range p.Inplace {
		t := z[src]
		for dst := revC[src]; dst != src; dst = revC[dst] {
			t, z[dst] = z[dst], t
		}

		z[src] = t
	}
}

// compound runs the n-point row transforms, the n M-point split-radix
// transforms, and the CRT output scatter. Every input sample is read before
// the first output is written, so out may alias in.
func (p *Plan[S, A]) compound(out, in []Complex[S], stride int, tmp []Complex[S]) {
	n, m := p.spec.N, p.spec.M
	size := n * m
	inMap, outMap := p.Map[:size], p.Map[size:]

	var row [15]Complex[S]

	for i := range m {
		for j := range n {
			row[j] = p.load(in[inMap[i*n+j]*stride])
		}

		rowFFT[S, A](tmp[p.RevTabC[i]:], row[:n], n, m, &p.k)
	}

	for i := range n {
		splitRadix[S, A](tmp[i*m:(i+1)*m], p.bits, p.tw, &p.k)
	}

	for i, src := range outMap {
		out[i*stride] = tmp[src]
	}
}
