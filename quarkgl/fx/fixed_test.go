package fx

import "testing"

func TestFloatRoundTrip(t *testing.T) {
	for x := Fixed(-1 << 23); x < 1<<23; x += 997 {
		if got := FromFloat(ToFloat(x)); got != x {
			t.Fatalf("FromFloat(ToFloat(%d)) = %d", x, got)
		}
	}
	if got := FromFloat(ToFloat(1<<23 - 1)); got != 1<<23-1 {
		t.Fatalf("upper bound round trip = %d", got)
	}
}

func TestFromFloatTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		in   float64
		want Fixed
	}{
		{1.999, 511},
		{-1.999, -511},
		{0.001, 0},
		{-0.001, 0},
		{3.5, 896},
	}
	for _, tt := range tests {
		if got := FromFloat(tt.in); got != tt.want {
			t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToIntFloorsNegatives(t *testing.T) {
	if got := ToInt(FromFloat(2.75)); got != 2 {
		t.Fatalf("ToInt(2.75) = %d, want 2", got)
	}
	if got := ToInt(FromFloat(-2.25)); got != -3 {
		t.Fatalf("ToInt(-2.25) = %d, want -3", got)
	}
	if got := ToInt(-1); got != -1 {
		t.Fatalf("ToInt(-1 raw) = %d, want -1", got)
	}
}

func TestAddWraps(t *testing.T) {
	if got := Add(Max, 1); got != Min {
		t.Fatalf("Add(Max, 1) = %d, want Min", got)
	}
	if got := Sub(Min, 1); got != Max {
		t.Fatalf("Sub(Min, 1) = %d, want Max", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want Fixed
	}{
		{One, One, One},
		{2 * One, 3 * One, 6 * One},
		{-One, Half, -Half},
		{-1, 1, -1}, // floor of -1/256
		{Max, 2 * One, -2},
	}
	for _, tt := range tests {
		if got := Mul(tt.a, tt.b); got != tt.want {
			t.Errorf("Mul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b, want Fixed
	}{
		{One, 3 * One, 85},
		{6 * One, 2 * One, 3 * One},
		{One, 3, 21845},
		{-One, 3, -21845},
		{1 << 30, 1, 0}, // 2^38 narrows to 0
	}
	for _, tt := range tests {
		if got := Div(tt.a, tt.b); got != tt.want {
			t.Errorf("Div(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivByZeroSaturates(t *testing.T) {
	if got := Div(5*One, 0); got != Max {
		t.Fatalf("Div(5, 0) = %d, want Max", got)
	}
	if got := Div(-5*One, 0); got != Min {
		t.Fatalf("Div(-5, 0) = %d, want Min", got)
	}
	if got := Div(0, 0); got != Max {
		t.Fatalf("Div(0, 0) = %d, want Max", got)
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want Fixed
	}{
		{0, 0},
		{-One, 0},
		{One / 4, One / 2},
		{One, One},
		{2 * One, 362},
		{4 * One, 2 * One},
		{9 * One, 3 * One},
		{100 * One, 10 * One},
		{10000 * One, 100 * One},
	}
	for _, tt := range tests {
		if got := Sqrt(tt.in); got != tt.want {
			t.Errorf("Sqrt(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSqrtFixedBudgetDoesNotConvergeForHugeInput(t *testing.T) {
	// Ten iterations from guess = x cannot reach sqrt(Max) ≈ 2896.
	got := Sqrt(Max)
	if got <= 2897*One {
		t.Fatalf("Sqrt(Max) = %d, expected an unconverged estimate", got)
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		name            string
		base, exp, want Fixed
	}{
		{"zero exponent", 3 * One, 0, One},
		{"integral", Half, 2 * One, One / 4},
		{"identity", Half, One, Half},
		{"halfway blend", Half, One + Half, 96},
		{"one to any", One, 2*One + Half, One},
		{"zero base", 0, One, 0},
		{"cubic", 192, 3 * One, 108},
		{"negative exponent", Half, -One, 2 * One},
		{"fractional only", One / 4, Half, 160},
		{"negative base", -One, 2 * One, 0},
	}
	for _, tt := range tests {
		if got := Pow(tt.base, tt.exp); got != tt.want {
			t.Errorf("%s: Pow(%d, %d) = %d, want %d", tt.name, tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestPowMonotoneInFraction(t *testing.T) {
	prev := Pow(200, One)
	for f := Fixed(1); f < One; f++ {
		got := Pow(200, One+f)
		if got > prev {
			t.Fatalf("Pow(200, %d) = %d rose above %d", One+f, got, prev)
		}
		prev = got
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(0, 10*One, Half); got != 5*One {
		t.Fatalf("Lerp = %d, want %d", got, 5*One)
	}
	if got := Clamp01(-3); got != 0 {
		t.Fatalf("Clamp01(-3) = %d", got)
	}
	if got := Clamp01(One + 1); got != One {
		t.Fatalf("Clamp01(One+1) = %d", got)
	}
}
