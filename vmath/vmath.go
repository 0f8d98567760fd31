package vmath

import "math/bits"

// Q32.32 Fixed Point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// Trunc drops the fractional part, rounding toward zero
// ToInt floors instead, which differs for negative values
func Trunc(f int64) int {
	if f < 0 {
		return -int((-f) >> Shift)
	}
	return int(f >> Shift)
}

// Frac returns the magnitude Trunc discards, always in [0, Scale)
func Frac(f int64) int64 {
	return Abs(f - FromInt(Trunc(f)))
}

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

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int64) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// --- Integer grid helpers ---

// AbsInt returns absolute value of an integer pixel quantity
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SignInt returns -1, 0, or 1
func SignInt(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Wrap maps v into [0, period) for any v, period > 0
func Wrap(v, period int) int {
	v %= period
	if v < 0 {
		v += period
	}
	return v
}

// WrapDelta maps a displacement into [-period/2, period/2) so that crossing
// the seam of a toroidal axis takes the short way round
func WrapDelta(d, period int) int {
	if period <= 0 {
		return d
	}
	half := period / 2
	return Wrap(d+half, period) - half
}

// FloorTo rounds v down to a multiple of step
func FloorTo(v, step int) int {
	q := v / step
	if v%step != 0 && v < 0 {
		q--
	}
	return q * step
}
