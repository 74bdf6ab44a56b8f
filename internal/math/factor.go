package math

// Factor splits length into n * m where n is one of the odd factors
// (or 1) and m is a power of two no larger than 2^MaxPow2Bits.
// ok is false for lengths the engine cannot build.
func Factor(length int) (n, m int, ok bool) {
	if length < 1 {
		return 0, 0, false
	}

	n, m = 1, length
	for _, f := range OddFactors {
		if m%f == 0 {
			n, m = f, m/f
			break
		}
	}

	if !IsPowerOf2(m) || Log2(m) > MaxPow2Bits {
		return 0, 0, false
	}

	return n, m, true
}
