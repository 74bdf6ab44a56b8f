package math

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	if a < 0 {
		return -a
	}

	return a
}

// ModInverse returns x in [0, mod) with (a*x) % mod == 1, found by brute force.
// The search is linear in mod and only runs while a context is being built.
// Every value is congruent to 1 modulo 1, so ModInverse(a, 1) is 0.
// It panics when a and mod are not co-prime.
func ModInverse(a, mod int) int {
	if mod == 1 {
		return 0
	}

	a %= mod
	for x := 1; x < mod; x++ {
		if (a*x)%mod == 1 {
			return x
		}
	}

	panic("math: ModInverse of non co-prime values")
}
