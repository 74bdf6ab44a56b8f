package tx

import (
	"fmt"

	"github.com/cwbudde/algo-tx/internal/fftypes"
)

// Type selects the numeric domain and the transform family of a context.
type Type uint8

const (
	// FloatFFT is a complex FFT over []complex64.
	FloatFFT Type = iota
	// DoubleFFT is a complex FFT over []complex128.
	DoubleFFT
	// Int32FFT is a Q31 fixed-point complex FFT over []ComplexInt32. The
	// butterflies do not normalize, so the output grows by up to the length;
	// the scale is applied as samples are read, and a scale of at most
	// 1/length keeps full-scale input from wrapping.
	Int32FFT
	// FloatMDCT is an MDCT over []float32.
	FloatMDCT
	// DoubleMDCT is an MDCT over []float64.
	DoubleMDCT
	// Int32MDCT is a Q31 fixed-point MDCT over []int32. The forward
	// direction scales its output by 1/64. Its fold negates input samples,
	// so a sample equal to math.MinInt32 wraps to itself.
	Int32MDCT
	// FloatRDFT is a real FFT between []float32 and []complex64.
	FloatRDFT
	// DoubleRDFT is a real FFT between []float64 and []complex128.
	DoubleRDFT

	numTypes
)

var typeNames = [numTypes]string{
	FloatFFT:   "float_fft",
	DoubleFFT:  "double_fft",
	Int32FFT:   "int32_fft",
	FloatMDCT:  "float_mdct",
	DoubleMDCT: "double_mdct",
	Int32MDCT:  "int32_mdct",
	FloatRDFT:  "float_rdft",
	DoubleRDFT: "double_rdft",
}

// String returns the name of the type, as accepted by ParseType.
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}

	return typeNames[t]
}

// ParseType returns the type with the given name.
func ParseType(name string) (Type, error) {
	for t, s := range typeNames {
		if s == name {
			return Type(t), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown transform type %q", ErrInvalidArgument, name)
}

// Types returns every supported transform type.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}

	return out
}

func (t Type) valid() bool { return t < numTypes }

func (t Type) family() fftypes.Family {
	switch t {
	case FloatMDCT, DoubleMDCT, Int32MDCT:
		return fftypes.FamilyMDCT
	case FloatRDFT, DoubleRDFT:
		return fftypes.FamilyRDFT
	default:
		return fftypes.FamilyFFT
	}
}

func (t Type) precision() fftypes.Precision {
	switch t {
	case FloatFFT, FloatMDCT, FloatRDFT:
		return fftypes.PrecisionFloat32
	case DoubleFFT, DoubleMDCT, DoubleRDFT:
		return fftypes.PrecisionFloat64
	default:
		return fftypes.PrecisionQ31
	}
}

func (t Type) fixed() bool { return t == Int32FFT || t == Int32MDCT }

// Flags modify how a context is built and executed.
type Flags uint64

const (
	// Unaligned declares that buffers may not be aligned, excluding
	// strategies that require aligned memory.
	Unaligned Flags = 1 << iota
	// InPlace declares that out and in are always the same slice. FFT only.
	InPlace
	// FullIMDCT makes an inverse MDCT write all 2*len samples instead of
	// the middle half.
	FullIMDCT
	// ConcurrentScratch takes scratch memory per call instead of from the
	// context, so one context may be executed from several goroutines.
	ConcurrentScratch

	knownFlags = Unaligned | InPlace | FullIMDCT | ConcurrentScratch
)

// ComplexInt32 is a Q31 fixed-point complex sample.
type ComplexInt32 = fftypes.Complex[int32]
