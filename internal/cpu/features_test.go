package cpu

import (
	"runtime"
	"testing"

	"github.com/cwbudde/algo-tx/internal/fftypes"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if f.ForceGeneric {
		t.Error("DetectFeatures must not set ForceGeneric")
	}

	if DetectFeatures() != f {
		t.Error("DetectFeatures is not stable across calls")
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	all := Features{
		HasSSE2: true, HasSSE3: true, HasAVX: true, HasAVX2: true,
		HasAVX512: true, HasFMA: true, HasNEON: true,
	}

	levels := []fftypes.SIMDLevel{
		fftypes.SIMDNone, fftypes.SIMDSSE2, fftypes.SIMDSSE3,
		fftypes.SIMDAVX2, fftypes.SIMDAVX512, fftypes.SIMDNEON, fftypes.SIMDFMA,
	}

	for _, level := range levels {
		if !all.Supports(level) {
			t.Errorf("full feature set does not support %v", level)
		}

		if level != fftypes.SIMDNone && (Features{}).Supports(level) {
			t.Errorf("empty feature set supports %v", level)
		}

		forced := all
		forced.ForceGeneric = true

		if got := forced.Supports(level); got != (level == fftypes.SIMDNone) {
			t.Errorf("ForceGeneric Supports(%v) = %v", level, got)
		}
	}

	if (Features{HasAVX2: true}).Supports(fftypes.SIMDAVX2) {
		t.Error("AVX2 strategies require FMA as well")
	}

	if !(Features{HasNEON: true}).Supports(fftypes.SIMDFMA) {
		t.Error("NEON cores must support fused strategies")
	}

	if (Features{HasAVX2: true}).Supports(fftypes.SIMDFMA) {
		t.Error("fused strategies require FMA")
	}
}
