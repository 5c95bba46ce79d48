package fx

import "testing"

func TestSinCosKnownAngles(t *testing.T) {
	tests := []struct {
		name       string
		a          Fixed
		sin, cos   Fixed
		tolerances Fixed
	}{
		{"zero", 0, 0, One, 0},
		{"30deg", Degrees(30), Half, 222, 2},
		{"90deg", HalfPi, One, 0, 2},
		{"180deg", Pi, 0, -One, 1},
		{"-90deg", -HalfPi, -One, 0, 2},
		{"wrapped 450deg", TwoPi + HalfPi, One, 0, 2},
	}
	for _, tt := range tests {
		if got := Sin(tt.a); Abs(got-tt.sin) > tt.tolerances {
			t.Errorf("%s: Sin(%d) = %d, want %d±%d", tt.name, tt.a, got, tt.sin, tt.tolerances)
		}
		if got := Cos(tt.a); Abs(got-tt.cos) > tt.tolerances {
			t.Errorf("%s: Cos(%d) = %d, want %d±%d", tt.name, tt.a, got, tt.cos, tt.tolerances)
		}
	}
}

func TestPythagoreanIdentitySweep(t *testing.T) {
	const eps = 4
	for a := Fixed(-3 * TwoPi); a <= 3*TwoPi; a++ {
		s, c := Sin(a), Cos(a)
		if d := Abs(Mul(s, s) + Mul(c, c) - One); d > eps {
			t.Fatalf("a=%d: sin²+cos²-1 = %d (sin=%d cos=%d)", a, d, s, c)
		}
	}
}

func TestSinOddCosEven(t *testing.T) {
	for a := Fixed(0); a <= Pi; a += 7 {
		if Sin(-a) != -Sin(a) {
			t.Fatalf("Sin(-%d) = %d, want %d", a, Sin(-a), -Sin(a))
		}
		if Cos(-a) != Cos(a) {
			t.Fatalf("Cos(-%d) = %d, want %d", a, Cos(-a), Cos(a))
		}
	}
}

func TestTanSaturatesWhenCosIsZero(t *testing.T) {
	if Cos(401) != 0 {
		t.Fatalf("Cos(401) = %d, test angle no longer hits exact zero", Cos(401))
	}
	if got := Tan(401); got != Max {
		t.Fatalf("Tan(401) = %d, want Max", got)
	}
	if got := Tan(-401); got != Min {
		t.Fatalf("Tan(-401) = %d, want Min", got)
	}
	if got := Tan(Degrees(45)); Abs(got-One) > 3 {
		t.Fatalf("Tan(45deg) = %d, want ~%d", got, One)
	}
}

func TestAcosEndpoints(t *testing.T) {
	if got := Acos(One); got != 0 {
		t.Errorf("Acos(1) = %d, want 0", got)
	}
	if got := Acos(0); got != HalfPi {
		t.Errorf("Acos(0) = %d, want %d", got, HalfPi)
	}
	if got := Acos(-One); got != Pi {
		t.Errorf("Acos(-1) = %d, want %d", got, Pi)
	}
	if got := Acos(5 * One); got != 0 {
		t.Errorf("Acos(5) = %d, want clamp to 0", got)
	}
	if got := Acos(-5 * One); got != Pi {
		t.Errorf("Acos(-5) = %d, want clamp to Pi", got)
	}
}

func TestAcosInvertsCos(t *testing.T) {
	// cos is flat near 0 and Pi, so Q24.8 loses the angle there.
	for a := Fixed(64); a <= Pi-64; a++ {
		if d := Abs(Acos(Cos(a)) - a); d > 8 {
			t.Fatalf("Acos(Cos(%d)) off by %d", a, d)
		}
	}
	for a := Fixed(0); a <= Pi; a++ {
		if d := Abs(Acos(Cos(a)) - a); d > 24 {
			t.Fatalf("Acos(Cos(%d)) off by %d near the poles", a, d)
		}
	}
}

func TestDegrees(t *testing.T) {
	if got := Degrees(180); got != Pi {
		t.Fatalf("Degrees(180) = %d", got)
	}
	if got := Degrees(-90); got != -HalfPi {
		t.Fatalf("Degrees(-90) = %d", got)
	}
	if got := ToDegrees(Degrees(60)); got != 59 && got != 60 {
		t.Fatalf("ToDegrees(Degrees(60)) = %d", got)
	}
}

func TestReduce(t *testing.T) {
	tests := []struct{ in, want Fixed }{
		{0, 0},
		{Pi, Pi},
		{Pi + 1, -Pi + 1},
		{-Pi - 1, Pi - 1},
		{3 * TwoPi, 0},
	}
	for _, tt := range tests {
		if got := Reduce(tt.in); got != tt.want {
			t.Errorf("Reduce(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
