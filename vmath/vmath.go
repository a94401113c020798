package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 Fixed Point constants
const (
	Shift   = 32
	Scale   = 1 << Shift
	ScaleF  = float64(Scale)
	Mask    = Scale - 1
	Half    = 1 << (Shift - 1)
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// Sqrt2 is √2 rounded toward zero, so Mul(x, Sqrt2) never exceeds x·√2
// Computed at init; the constant product has a fraction and cannot convert to int64
var (
	sqrt2F = math.Sqrt2
	Sqrt2  = int64(sqrt2F * ScaleF)
)

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * ScaleF) }
func ToFloat(f int64) float64   { return float64(f) / ScaleF }

// Mul multiplies two Q32.32 values with a 128-bit intermediate
// The product is truncated toward zero; results outside ±2^31 units wrap (two's complement)
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div divides two Q32.32 values, saturating on overflow; division by zero returns 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient does not fit in 64 bits
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)

	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// MulDiv computes (a * b) / c with 128-bit intermediate
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uint64(c))
	r := int64(q)
	if neg {
		return -r
	}
	return r
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sqrt returns Q32.32 square root using Newton-Raphson
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}

	guess := x
	if guess > Scale {
		guess = Scale
		for guess < x>>1 {
			guess <<= 1
		}
	} else {
		guess = x >> 1
		if guess == 0 {
			guess = 1
		}
	}

	for i := 0; i < 12; i++ {
		if guess == 0 {
			return 0
		}
		guess = (guess + Div(x, guess)) >> 1
	}
	return guess
}

// --- Angles ---
// Angles are Q32.32 turns: Scale is one full rotation (2π)

// FromRadians converts a radian literal to Q32.32 turns
func FromRadians(rad float64) int64 {
	return int64(rad / (2 * math.Pi) * ScaleF)
}

// ToRadians converts Q32.32 turns to radians
func ToRadians(angle int64) float64 {
	return ToFloat(angle) * 2 * math.Pi
}

// WrapAngle folds an angle into [0, Scale)
func WrapAngle(angle int64) int64 {
	return angle & Mask
}

// AngleDiff returns the signed shortest rotation from a to b, in [-Scale/2, Scale/2)
func AngleDiff(a, b int64) int64 {
	d := (b - a) & Mask
	if d >= Half {
		d -= Scale
	}
	return d
}

// Sin returns sine of an angle where angle 0..Scale maps to 0..2pi
func Sin(angle int64) int64 {
	return SinLUT[(angle>>(Shift-10))&LUTMask]
}

func Cos(angle int64) int64 {
	return CosLUT[(angle>>(Shift-10))&LUTMask]
}

// SinCos returns both components; angle 0 yields exactly (0, Scale)
func SinCos(angle int64) (sin, cos int64) {
	if angle == 0 {
		return 0, Scale
	}
	return Sin(angle), Cos(angle)
}

// --- Randomness ---

// FastRand is a xorshift64 generator; identical seeds give identical sequences
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Unit returns a Q32.32 value in [0, 1)
func (r *FastRand) Unit() int64 {
	return int64(r.Next() >> Shift)
}

// Signed returns a Q32.32 value in [-1, 1)
func (r *FastRand) Signed() int64 {
	return int64(r.Next()>>(Shift-1)) - Scale
}

// State exposes the generator state for checksums
func (r *FastRand) State() uint64 {
	return r.state
}
