package fftypes

// Scalar is the element type of a numeric domain: float32, float64, or Q31 fixed point.
type Scalar interface {
	~float32 | ~float64 | ~int32
}

// Float is the subset of Scalar with IEEE semantics.
type Float interface {
	~float32 | ~float64
}

// Complex is the storage form of a complex sample in any domain.
// Complex[float32] and Complex[float64] share the memory layout of complex64
// and complex128, so public buffers are reinterpreted without copying.
type Complex[S Scalar] struct {
	Re, Im S
}
