// Package fx is the Q24.8 fixed-point scalar used by every QuarkWire layer.
//
// A Fixed stores value×256 in an int32. Arithmetic never panics: overflow wraps
// the way int32 does, division by zero saturates, and square roots of
// non-positive values are 0.
package fx

import "math"

// Fixed is a signed Q24.8 fixed-point number.
type Fixed int32

const (
	Shift       = 8
	One   Fixed = 1 << Shift
	Half  Fixed = One >> 1

	Max Fixed = math.MaxInt32
	Min Fixed = math.MinInt32
)

// sqrtIterations is the fixed Newton-Raphson budget. There is no convergence
// check; large inputs are not fully converged after it.
const sqrtIterations = 10

// FromFloat converts f, truncating toward zero.
func FromFloat(f float64) Fixed { return Fixed(int32(f * float64(One))) }

// ToFloat converts x to float64. Exact for every Fixed.
func ToFloat(x Fixed) float64 { return float64(x) / float64(One) }

// FromInt converts an integer. Values outside ±2^23 wrap.
func FromInt(i int32) Fixed { return Fixed(i << Shift) }

// ToInt drops the fraction with an arithmetic shift, so negatives floor.
func ToInt(x Fixed) int32 { return int32(x) >> Shift }

// FromRatio returns num/den without going through floats.
func FromRatio(num, den int32) Fixed { return Div(FromInt(num), FromInt(den)) }

func Add(a, b Fixed) Fixed { return a + b }
func Sub(a, b Fixed) Fixed { return a - b }

// Mul multiplies in 64 bits and narrows after the shift. Narrowing wraps.
func Mul(a, b Fixed) Fixed {
	return Fixed(int32((int64(a) * int64(b)) >> Shift))
}

// Div pre-shifts the dividend into 64 bits before dividing.
//
// Division by zero returns Max for a non-negative dividend and Min for a
// negative one.
func Div(a, b Fixed) Fixed {
	if b == 0 {
		if a < 0 {
			return Min
		}
		return Max
	}
	return Fixed(int32((int64(a) << Shift) / int64(b)))
}

// Sqrt runs sqrtIterations Newton-Raphson steps starting from x itself.
func Sqrt(x Fixed) Fixed {
	if x <= 0 {
		return 0
	}
	g := x
	for i := 0; i < sqrtIterations; i++ {
		if g == 0 {
			return 0
		}
		g = (g + Div(x, g)) >> 1
	}
	return g
}

// Pow raises base to exp for base >= 0.
//
// Rounding policy: exp is split into n = exp>>8 and f = exp&0xFF. base^n is
// built by square-and-multiply with Mul, so every product truncates through the
// arithmetic shift. The result is base^n + ((base^(n+1) - base^n) * f) >> 8, a
// linear blend toward the next integral power. A negative exp returns
// Div(One, Pow(base, -exp)). A negative base returns 0 and exp == 0 returns One.
func Pow(base, exp Fixed) Fixed {
	if exp == 0 {
		return One
	}
	if base < 0 {
		return 0
	}
	if exp < 0 {
		return Div(One, Pow(base, -exp))
	}
	n := int32(exp) >> Shift
	f := int64(exp) & int64(One-1)

	lo := powInt(base, n)
	if f == 0 {
		return lo
	}
	hi := Mul(lo, base)
	return lo + Fixed(((int64(hi)-int64(lo))*f)>>Shift)
}

func powInt(base Fixed, n int32) Fixed {
	r := One
	for n > 0 {
		if n&1 != 0 {
			r = Mul(r, base)
		}
		base = Mul(base, base)
		n >>= 1
	}
	return r
}

func Abs(x Fixed) Fixed {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp(x, lo, hi Fixed) Fixed {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 clamps to [0, One].
func Clamp01(x Fixed) Fixed { return Clamp(x, 0, One) }

// Lerp returns a + (b-a)*t with t in Q24.8.
func Lerp(a, b, t Fixed) Fixed { return a + Mul(b-a, t) }

// Sum64 narrows a Q16-scaled int64 accumulator back to Q24.8 with one shift.
// Vector and matrix code accumulates raw products and calls this once.
func Sum64(acc int64) Fixed { return Fixed(int32(acc >> Shift)) }
