package perm

import txmath "github.com/cwbudde/algo-tx/internal/math"

// Compound fills dst (length 2*n*m) with the index maps of a compound
// transform of length N = n*m, where gcd(n, m) == 1.
//
// The first half is the input map in row-major order: row j holds the n
// samples feeding the j-th n-point transform, entry j*n+i being the
// Ruritanian index (i*m + j*n) mod N. For MDCT kinds every input index is
// doubled, addressing the even slot of a folded sample pair. The second half
// is the CRT output map: slot (i*m*m⁻¹ + j*n*n⁻¹) mod N holds i*m + j, the
// position of that frequency in the scratch buffer.
//
// In the inverse direction the n-1 AC entries of each row are reversed,
// which turns every forward n-point row transform into an inverse one.
// For n == 15 each row is reordered once more into the 3x5 layout expected
// by the 15-point kernel, entry 3*i+j taking row element (3*i + 5*j) mod 15.
//
// Co-primality is not checked; violating it yields meaningless tables.
func Compound(dst []int, n, m int, inverse, mdct bool) {
	length := n * m
	if len(dst) != 2*length {
		panic("perm: compound map has the wrong length")
	}

	in, out := dst[:length], dst[length:]

	mInv := txmath.ModInverse(m, n)
	nInv := txmath.ModInverse(n, m)

	shift := 0
	if mdct {
		shift = 1
	}

	for i := range n {
		for j := range m {
			in[j*n+i] = ((i*m + j*n) % length) << shift
			out[(i*m*mInv+j*n*nInv)%length] = i*m + j
		}
	}

	if inverse {
		for j := range m {
			row := in[j*n+1 : (j+1)*n]
			for k := range (n - 1) / 2 {
				row[k], row[n-2-k] = row[n-2-k], row[k]
			}
		}
	}

	if n == 15 {
		var tmp [15]int

		for j := range m {
			row := in[j*15 : (j+1)*15]
			copy(tmp[:], row)

			for i := range 5 {
				for k := range 3 {
					row[i*3+k] = tmp[(i*3+k*5)%15]
				}
			}
		}
	}
}
