package math

import "math"

// Mathematical constants for transform table generation.

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// MaxPow2Bits bounds the power-of-two part of a transform length (2^17 points).
const MaxPow2Bits = 17

// OddFactors lists the non-power-of-two factors the engine can compose with
// a power-of-two transform, largest first.
var OddFactors = [...]int{15, 5, 3}
