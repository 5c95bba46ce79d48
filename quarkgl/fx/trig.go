package fx

// Angles are radians in Q24.8, range-reduced to [-Pi, Pi]. Every package uses
// this representation; there is no integer angle wheel.
const (
	Pi     Fixed = 804
	TwoPi  Fixed = 1608
	HalfPi Fixed = 402
)

// Reference coefficients for Acos (1.5707288, -0.2121144, 0.0742610,
// -0.0187293), truncated toward zero. They must not be "improved".
const (
	acosC0 Fixed = 402
	acosC1 Fixed = -54
	acosC2 Fixed = 19
	acosC3 Fixed = -4
)

// Degrees converts whole degrees to canonical radians.
func Degrees(d int32) Fixed {
	return Fixed(int32((int64(d) * int64(Pi)) / 180))
}

// ToDegrees converts radians to whole degrees, truncating toward zero.
func ToDegrees(a Fixed) int32 {
	return int32((int64(a) * 180) / int64(Pi))
}

// Reduce wraps a into [-Pi, Pi].
func Reduce(a Fixed) Fixed {
	a %= TwoPi
	if a < 0 {
		a += TwoPi
	}
	if a > Pi {
		a -= TwoPi
	}
	return a
}

// Sin folds into the first quadrant and evaluates x - x³/3! + x⁵/5! - x⁷/7!.
func Sin(a Fixed) Fixed {
	a = Reduce(a)
	neg := false
	if a < 0 {
		a = -a
		neg = true
	}
	if a > HalfPi {
		a = Pi - a
	}
	r := sinPoly(a)
	if neg {
		return -r
	}
	return r
}

// Cos folds like Sin and flips the sign when reflected past HalfPi.
func Cos(a Fixed) Fixed {
	a = Abs(Reduce(a))
	flip := false
	if a > HalfPi {
		a = Pi - a
		flip = true
	}
	r := cosPoly(a)
	if flip {
		return -r
	}
	return r
}

// Tan saturates to Max/Min (by the sign of Sin) when Cos is exactly zero.
func Tan(a Fixed) Fixed { return Div(Sin(a), Cos(a)) }

// Acos clamps x to [-One, One] and returns radians in [0, Pi].
func Acos(x Fixed) Fixed {
	x = Clamp(x, -One, One)
	if x < 0 {
		return Pi - Acos(-x)
	}
	p := acosC3
	p = Mul(p, x) + acosC2
	p = Mul(p, x) + acosC1
	p = Mul(p, x) + acosC0
	return Mul(Sqrt(One-x), p)
}

func sinPoly(x Fixed) Fixed {
	x2 := Mul(x, x)
	t := One - Div(x2, 42*One)
	t = One - Mul(Div(x2, 20*One), t)
	t = One - Mul(Div(x2, 6*One), t)
	return Mul(x, t)
}

func cosPoly(x Fixed) Fixed {
	x2 := Mul(x, x)
	t := One - Div(x2, 30*One)
	t = One - Mul(Div(x2, 12*One), t)
	return One - Mul(Div(x2, 2*One), t)
}
