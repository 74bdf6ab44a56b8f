package kernels

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-tx/internal/fftypes"
	txmath "github.com/cwbudde/algo-tx/internal/math"
)

// twiddleSet holds the split-radix combine twiddles of one numeric domain.
// Level b holds e^{-2πik/2^b} for k < 2^b/4. Each level is built on first
// use and read-only afterwards, so contexts share it without locking.
type twiddleSet[S fftypes.Scalar] struct {
	once   [txmath.MaxPow2Bits + 1]sync.Once
	levels [txmath.MaxPow2Bits + 1][]Complex[S]
}

var (
	twiddles32  twiddleSet[float32]
	twiddles64  twiddleSet[float64]
	twiddlesQ31 twiddleSet[int32]
)

func (t *twiddleSet[S]) level(bits int, conv func(float64) S) []Complex[S] {
	t.once[bits].Do(func() {
		n := 1 << bits
		w := make([]Complex[S], n>>2)

		for k := range w {
			angle := txmath.TwoPi * float64(k) / float64(n)
			w[k] = Complex[S]{conv(math.Cos(angle)), conv(-math.Sin(angle))}
		}

		t.levels[bits] = w
	})

	return t.levels[bits]
}

func twiddlesFor[S fftypes.Scalar]() *twiddleSet[S] {
	var zero S

	switch any(zero).(type) {
	case float32:
		return any(&twiddles32).(*twiddleSet[S])
	case float64:
		return any(&twiddles64).(*twiddleSet[S])
	case int32:
		return any(&twiddlesQ31).(*twiddleSet[S])
	default:
		panic("kernels: unsupported scalar type")
	}
}

// twiddleLevels returns the combine twiddles for every network level up to
// 2^bits points, building the missing ones.
func twiddleLevels[S fftypes.Scalar, A Arith[S]](bits int) [][]Complex[S] {
	var ar A

	set := twiddlesFor[S]()
	levels := make([][]Complex[S], bits+1)

	for b := 4; b <= bits; b++ {
		levels[b] = set.level(b, ar.FromFloat)
	}

	return levels
}

// consts are the fixed coefficients of the closed-form kernels.
type consts[S fftypes.Scalar] struct {
	half    S
	sqrt1_2 S
	sin3    S    // sin(2π/3)
	cos5    [2]S // cos(2π/5), cos(4π/5)
	sin5    [2]S // sin(2π/5), sin(4π/5)
}

func newConsts[S fftypes.Scalar, A Arith[S]]() consts[S] {
	var ar A

	return consts[S]{
		half:    ar.FromFloat(0.5),
		sqrt1_2: ar.FromFloat(math.Sqrt2 / 2),
		sin3:    ar.FromFloat(math.Sqrt(3) / 2),
		cos5:    [2]S{ar.FromFloat(math.Cos(txmath.TwoPi / 5)), ar.FromFloat(math.Cos(2 * txmath.TwoPi / 5))},
		sin5:    [2]S{ar.FromFloat(math.Sin(txmath.TwoPi / 5)), ar.FromFloat(math.Sin(2 * txmath.TwoPi / 5))},
	}
}
