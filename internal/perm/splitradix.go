package perm

// SplitRadix returns the split-radix position of index i in a block of n
// points (n a power of two). The inverse direction flips the sign of the
// contribution of the odd quarter blocks.
func SplitRadix(i, n int, inverse bool) int {
	if n <= 2 {
		return i & 1
	}

	m := n >> 1
	if i&m == 0 {
		return SplitRadix(i, m, inverse) * 2
	}

	m >>= 1
	if inverse == (i&m == 0) {
		return SplitRadix(i, m, inverse)*4 + 1
	}

	return SplitRadix(i, m, inverse)*4 - 1
}

// revIndex is the gather index of position i in an n-point split-radix network.
func revIndex(i, n int, inverse bool) int {
	return -SplitRadix(i, n, inverse) & (n - 1)
}

// RevTab fills rev and revC (both of the power-of-two length m) with the
// split-radix reverse table and its exact inverse.
//
// Without invertLookup, rev is the gather table: position p of the network
// input takes sample rev[p], and revC scatters sample j to position revC[j].
// invertLookup swaps the two roles. In both cases rev[revC[i]] == i and
// revC[rev[i]] == i.
func RevTab(rev, revC []int, inverse, invertLookup bool) {
	m := len(rev)
	if len(revC) != m {
		panic("perm: reverse tables differ in length")
	}

	for i := range m {
		k := revIndex(i, m, inverse)
		if invertLookup {
			rev[k], revC[i] = i, k
		} else {
			rev[i], revC[k] = k, i
		}
	}
}

// ParityRevTab fills dst with the split-radix reverse table laid out for
// SIMD codelets that process the even half and the two odd quarters of
// each recursion level together.
//
// Recursion stops once a half block is no larger than basis/2; each dense
// base block stores the even and odd samples of index pairs in separate
// runs. A non-zero dualStride interleaves the runs of the two odd quarter
// blocks every dualStride entries. gather selects a gather table (dst[pos]
// is a sample index) over a scatter table (dst[sample] is a position).
//
// len(dst) must be a power of two no smaller than basis/2, and dualStride
// must be zero or a power of two no larger than basis/2; ParityRevTab
// panics otherwise.
func ParityRevTab(dst []int, inverse bool, basis, dualStride int, gather bool) {
	n := len(dst)
	basis >>= 1

	switch {
	case n == 0 || n&(n-1) != 0:
		panic("perm: parity table length is not a power of two")
	case n < basis:
		panic("perm: parity table shorter than its basis")
	case dualStride < 0 || dualStride&(dualStride-1) != 0:
		panic("perm: dual stride is not a power of two")
	case dualStride > basis:
		panic("perm: dual stride exceeds half the basis")
	}

	g := parityGen{dst: dst, n: n, inverse: inverse, basis: basis, dualStride: dualStride, gather: gather}
	g.fill(0, n, false, false)
}

type parityGen struct {
	dst        []int
	n          int
	inverse    bool
	basis      int
	dualStride int
	gather     bool
}

// fill covers the length indices starting at offset.
func (g *parityGen) fill(offset, length int, dual, high bool) {
	half := length >> 1
	if half > g.basis {
		q := half >> 1
		g.fill(offset, half, false, false)
		g.fill(offset+half, q, true, false)
		g.fill(offset+half+q, q, true, true)

		return
	}

	dual = dual && g.dualStride != 0
	high = dual && high

	stride := 0
	if dual {
		stride = min(g.dualStride, half)
	}

	even := offset
	if high {
		even += stride - 2*half
	}

	odd := even + half
	if dual {
		odd += half
	}

	for i := range half {
		k1 := revIndex(offset+2*i, g.n, g.inverse)
		k2 := revIndex(offset+2*i+1, g.n, g.inverse)

		if g.gather {
			g.dst[even], g.dst[odd] = k1, k2
		} else {
			g.dst[k1], g.dst[k2] = even, odd
		}

		even++
		odd++

		if stride != 0 && (i+1)%stride == 0 {
			even += stride
			odd += stride
		}
	}
}
