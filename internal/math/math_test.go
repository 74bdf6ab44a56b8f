package math

import (
	"fmt"
	"testing"
)

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 17} {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false, want true", n)
		}
	}

	for _, n := range []int{-4, 0, 3, 6, 12, 1000} {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true, want false", n)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for bits := range MaxPow2Bits + 1 {
		if got := Log2(1 << bits); got != bits {
			t.Errorf("Log2(%d) = %d, want %d", 1<<bits, got, bits)
		}
	}
}

func TestGCD(t *testing.T) {
	t.Parallel()

	tests := []struct{ a, b, want int }{
		{15, 64, 1},
		{12, 18, 6},
		{7, 0, 7},
		{0, 9, 9},
		{-4, 6, 2},
	}

	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestModInverseCoprimePairs(t *testing.T) {
	t.Parallel()

	for _, n := range OddFactors {
		for bits := 1; bits <= MaxPow2Bits; bits++ {
			m := 1 << bits

			t.Run(fmt.Sprintf("n=%d/m=%d", n, m), func(t *testing.T) {
				t.Parallel()

				mInv := ModInverse(m, n)
				if (m*mInv)%n != 1 {
					t.Errorf("(m * m^-1) mod n = %d, want 1 (m^-1 = %d)", (m*mInv)%n, mInv)
				}

				nInv := ModInverse(n, m)
				if m > 1 && (n*nInv)%m != 1 {
					t.Errorf("(n * n^-1) mod m = %d, want 1 (n^-1 = %d)", (n*nInv)%m, nInv)
				}
			})
		}
	}
}

func TestModInverseModOne(t *testing.T) {
	t.Parallel()

	if got := ModInverse(15, 1); got != 0 {
		t.Errorf("ModInverse(15, 1) = %d, want 0", got)
	}
}

func TestModInversePanicsOnCommonFactor(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("ModInverse(6, 9) did not panic")
		}
	}()

	ModInverse(6, 9)
}

func TestFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length, n, m int
		ok           bool
	}{
		{1, 1, 1, true},
		{2, 1, 2, true},
		{3, 3, 1, true},
		{5, 5, 1, true},
		{15, 15, 1, true},
		{30, 15, 2, true},
		{60, 15, 4, true},
		{120, 15, 8, true},
		{480, 15, 32, true},
		{10, 5, 2, true},
		{40, 5, 8, true},
		{24, 3, 8, true},
		{1024, 1, 1024, true},
		{1 << 17, 1, 1 << 17, true},
		{15 << 17, 15, 1 << 17, true},
		{0, 0, 0, false},
		{-8, 0, 0, false},
		{7, 0, 0, false},
		{9, 0, 0, false},
		{45, 0, 0, false},
		{100, 0, 0, false},
		{1 << 18, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("len=%d", tt.length), func(t *testing.T) {
			t.Parallel()

			n, m, ok := Factor(tt.length)
			if ok != tt.ok || n != tt.n || m != tt.m {
				t.Errorf("Factor(%d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.length, n, m, ok, tt.n, tt.m, tt.ok)
			}

			if ok && GCD(n, m) != 1 {
				t.Errorf("Factor(%d) returned non co-prime factors %d, %d", tt.length, n, m)
			}
		})
	}
}
