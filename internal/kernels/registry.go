package kernels

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-tx/internal/cpu"
	"github.com/cwbudde/algo-tx/internal/fftypes"
	txmath "github.com/cwbudde/algo-tx/internal/math"
)

// Capability is a feature a codelet may support beyond the plain transform.
type Capability uint8

const (
	CapInPlace Capability = 1 << iota
	CapFullIMDCT
)

// Codelet describes one execution strategy.
type Codelet struct {
	Name   string
	Family fftypes.Family
	// Precisions is the set of numeric domains the codelet runs in.
	Precisions fftypes.Precision
	// Factors lists the odd factors n the codelet accepts (1 for pure powers of two).
	Factors []int
	// MaxPow2Bits bounds the power-of-two part of the length.
	MaxPow2Bits int
	Level       fftypes.SIMDLevel
	// Aligned codelets require Alignment-aligned buffers.
	Aligned  bool
	Caps     Capability
	Priority int
}

// The shipped codelets. The fused variants run the float64 transforms with
// FusedArith and are preferred when the CPU has an FMA unit.
var (
	SplitRadixFFT = Codelet{
		Name: "fft_sr", Family: fftypes.FamilyFFT, Precisions: fftypes.AnyPrecision, Factors: []int{1},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDNone, Caps: CapInPlace, Priority: 100,
	}
	CompoundFFT = Codelet{
		Name: "fft_pfa", Family: fftypes.FamilyFFT, Precisions: fftypes.AnyPrecision, Factors: []int{3, 5, 15},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDNone, Caps: CapInPlace, Priority: 90,
	}
	CompoundMDCT = Codelet{
		Name: "mdct_pfa", Family: fftypes.FamilyMDCT, Precisions: fftypes.AnyPrecision, Factors: []int{1, 3, 5, 15},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDNone, Caps: CapFullIMDCT, Priority: 90,
	}
	HalfRDFT = Codelet{
		Name: "rdft_half", Family: fftypes.FamilyRDFT, Precisions: fftypes.AnyPrecision, Factors: []int{1, 3, 5, 15},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDNone, Priority: 90,
	}

	FusedSplitRadixFFT = Codelet{
		Name: "fft_sr_fma", Family: fftypes.FamilyFFT, Precisions: fftypes.PrecisionFloat64, Factors: []int{1},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDFMA, Caps: CapInPlace, Priority: 110,
	}
	FusedCompoundFFT = Codelet{
		Name: "fft_pfa_fma", Family: fftypes.FamilyFFT, Precisions: fftypes.PrecisionFloat64, Factors: []int{3, 5, 15},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDFMA, Caps: CapInPlace, Priority: 100,
	}
	FusedMDCT = Codelet{
		Name: "mdct_pfa_fma", Family: fftypes.FamilyMDCT, Precisions: fftypes.PrecisionFloat64, Factors: []int{1, 3, 5, 15},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDFMA, Caps: CapFullIMDCT, Priority: 100,
	}
	FusedRDFT = Codelet{
		Name: "rdft_half_fma", Family: fftypes.FamilyRDFT, Precisions: fftypes.PrecisionFloat64, Factors: []int{1, 3, 5, 15},
		MaxPow2Bits: txmath.MaxPow2Bits, Level: fftypes.SIMDFMA, Priority: 100,
	}
)

// Query is the request a codelet is selected for.
type Query struct {
	Family    fftypes.Family
	Precision fftypes.Precision
	N, M      int
	Need      Capability
	Unaligned bool
	Features  cpu.Features
}

// Entry pairs a codelet with the implementation the caller binds to it.
type Entry[I any] struct {
	Codelet
	Impl I
}

// Registry holds the available codelets and their implementations.
type Registry[I any] struct {
	mu      sync.RWMutex
	entries []Entry[I]
}

// NewRegistry returns a registry holding entries.
func NewRegistry[I any](entries ...Entry[I]) *Registry[I] {
	r := &Registry[I]{}
	for _, e := range entries {
		r.Register(e.Codelet, e.Impl)
	}

	return r
}

// Register adds a codelet implemented by impl.
func (r *Registry[I]) Register(c Codelet, impl I) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, Entry[I]{Codelet: c, Impl: impl})
}

// Codelets returns the registered codelets in registration order.
func (r *Registry[I]) Codelets() []Codelet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Codelet, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Codelet
	}

	return out
}

// Select returns the highest-priority entry matching q. Ties go to the
// entry registered first.
func (r *Registry[I]) Select(q Query) (Entry[I], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		best  Entry[I]
		found bool
	)

	for _, e := range r.entries {
		if !e.matches(q) {
			continue
		}

		if !found || e.Priority > best.Priority {
			best, found = e, true
		}
	}

	return best, found
}

func (c *Codelet) matches(q Query) bool {
	switch {
	case c.Family != q.Family:
		return false
	case c.Precisions&q.Precision == 0:
		return false
	case !slices.Contains(c.Factors, q.N):
		return false
	case txmath.Log2(q.M) > c.MaxPow2Bits:
		return false
	case c.Caps&q.Need != q.Need:
		return false
	case c.Aligned && q.Unaligned:
		return false
	default:
		return q.Features.Supports(c.Level)
	}
}
