package perm

// InplaceIndex fills dst with one representative per cycle of the
// permutation rev and returns the filled prefix. Representatives are the
// smallest index of their cycle, in increasing order, fixed points included;
// index 0, which must be a fixed point, is always last. dst needs len(rev)
// entries.
//
// Cycles already walked are recorded in a bitmap, so construction is linear
// in len(rev).
func InplaceIndex(dst, rev []int) []int {
	m := len(rev)
	if m == 0 {
		return dst[:0]
	}

	if rev[0] != 0 {
		panic("perm: index 0 is not a fixed point")
	}

	seen := make([]uint64, (m+63)>>6)
	count := 0

	for src := 1; src < m; src++ {
		if seen[src>>6]&(1<<(src&63)) != 0 {
			continue
		}

		dst[count] = src
		count++

		for j := src; seen[j>>6]&(1<<(j&63)) == 0; j = rev[j] {
			seen[j>>6] |= 1 << (j & 63)
		}
	}

	dst[count] = 0

	return dst[:count+1]
}
