package kernels

// MDCT computes the L = 2*N*M coefficients of the 2L real samples in,
// writing coefficient k to out[k*stride]. The int32 domain scales the
// result by 1/64 while folding.
func (p *Plan[S, A]) MDCT(out, in []S, stride int, tmp []Complex[S]) {
	var (
		ar  A
		row [15]Complex[S]
	)

	n, m := p.spec.N, p.spec.M
	size := n * m
	l := 2 * size
	inMap, outMap := p.Map[:size], p.Map[size:]

	for i := range m {
		for j := range n {
			k := inMap[i*n+j]
			v := Complex[S]{p.fold(in, k, l), p.fold(in, l-1-k, l)}
			row[j] = ar.MulConj(v, p.Exp[k>>1])
		}

		rowFFT[S, A](tmp[p.RevTabC[i]:], row[:n], n, m, &p.k)
	}

	for i := range n {
		splitRadix[S, A](tmp[i*m:(i+1)*m], p.bits, p.tw, &p.k)
	}

	for k, src := range outMap {
		y := ar.MulConj(tmp[src], p.Exp[k])
		out[2*k*stride] = y.Re
		out[(l-1-2*k)*stride] = -y.Im
	}
}

// fold returns element idx of the length-l sequence obtained by folding
// the four quarters (a, b, c, d) of the 2l input samples into (-c_r-d, a-b_r),
// where _r denotes a reversed quarter. In the int32 domain negating
// math.MinInt32 wraps to itself.
func (p *Plan[S, A]) fold(x []S, idx, l int) S {
	var ar A

	h := l >> 1
	if idx < h {
		return ar.Fold(-x[3*h-1-idx], -x[3*h+idx])
	}

	return ar.Fold(x[idx-h], -x[3*h-1-idx])
}

// IMDCT computes the inverse of the L = 2*N*M coefficients read from
// in[k*stride]. out receives the L samples of the middle half of the
// inverse, or all 2L samples for plans built with FullIMDCT.
func (p *Plan[S, A]) IMDCT(out, in []S, stride int, tmp []Complex[S]) {
	var (
		ar  A
		row [15]Complex[S]
	)

	n, m := p.spec.N, p.spec.M
	size := n * m
	l := 2 * size
	inMap, outMap := p.Map[:size], p.Map[size:]

	half := out
	if p.spec.FullIMDCT {
		half = out[l/2 : 3*l/2]
	}

	for i := range m {
		for j := range n {
			k := inMap[i*n+j]
			v := Complex[S]{in[(l-1-k)*stride], in[k*stride]}
			row[j] = ar.Mul(v, p.Exp[k>>1])
		}

		rowFFT[S, A](tmp[p.RevTabC[i]:], row[:n], n, m, &p.k)
	}

	for i := range n {
		splitRadix[S, A](tmp[i*m:(i+1)*m], p.bits, p.tw, &p.k)
	}

	for k, src := range outMap {
		r := ar.Mul(tmp[src], p.Exp[k])
		half[2*k] = r.Re
		half[l-1-2*k] = -r.Im
	}

	if !p.spec.FullIMDCT {
		return
	}

	for j := range l / 2 {
		out[j] = -out[l-1-j]
		out[2*l-1-j] = out[l+j]
	}
}
