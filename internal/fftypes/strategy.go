package fftypes

// Family is the transform family a strategy implements.
type Family uint8

const (
	FamilyFFT Family = iota
	FamilyMDCT
	FamilyRDFT
)

// String returns a short name for the family.
func (f Family) String() string {
	switch f {
	case FamilyFFT:
		return "fft"
	case FamilyMDCT:
		return "mdct"
	case FamilyRDFT:
		return "rdft"
	default:
		return "unknown"
	}
}

// Precision is a set of numeric domains.
type Precision uint8

const (
	PrecisionFloat32 Precision = 1 << iota
	PrecisionFloat64
	PrecisionQ31

	AnyPrecision = PrecisionFloat32 | PrecisionFloat64 | PrecisionQ31
)

// SIMDLevel describes the minimum required CPU features for a strategy.
type SIMDLevel uint8

const (
	SIMDNone   SIMDLevel = iota // Pure Go implementation
	SIMDSSE2                    // Requires SSE2 (x86_64 baseline)
	SIMDSSE3                    // Requires SSE3
	SIMDAVX2                    // Requires AVX2
	SIMDAVX512                  // Requires AVX-512
	SIMDNEON                    // Requires ARM NEON
	SIMDFMA                     // Requires fused multiply-add
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDSSE3:
		return "sse3"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	case SIMDFMA:
		return "fma"
	default:
		return "unknown"
	}
}
