// Package cpu reports the runtime CPU features that decide which transform
// strategies may be selected.
package cpu

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities relevant to strategy selection.
type Features struct {
	HasSSE2   bool
	HasSSE3   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
	HasNEON   bool

	// ForceGeneric restricts selection to pure Go strategies.
	ForceGeneric bool

	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures reports the available CPU features for the current process.
// Detection runs once; later calls return the cached result.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = Features{
			HasSSE2:      cpu.X86.HasSSE2,
			HasSSE3:      cpu.X86.HasSSE3,
			HasAVX:       cpu.X86.HasAVX,
			HasAVX2:      cpu.X86.HasAVX2,
			HasAVX512:    cpu.X86.HasAVX512F,
			HasFMA:       cpu.X86.HasFMA,
			HasNEON:      cpu.ARM64.HasASIMD,
			Architecture: runtime.GOARCH,
		}
	})

	return detected
}

// Supports reports whether a strategy built for level can run with these features.
func (f Features) Supports(level fftypes.SIMDLevel) bool {
	if level == fftypes.SIMDNone {
		return true
	}

	if f.ForceGeneric {
		return false
	}

	switch level {
	case fftypes.SIMDSSE2:
		return f.HasSSE2
	case fftypes.SIMDSSE3:
		return f.HasSSE3
	case fftypes.SIMDAVX2:
		return f.HasAVX2 && f.HasFMA
	case fftypes.SIMDAVX512:
		return f.HasAVX512
	case fftypes.SIMDNEON:
		return f.HasNEON
	case fftypes.SIMDFMA:
		// Every ASIMD core implements the fused multiply-add instructions.
		return f.HasFMA || f.HasNEON
	default:
		return false
	}
}
