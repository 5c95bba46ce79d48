package raster

import "quarkwire/quarkgl/fx"

// Fade maps a view depth to a colour and alpha.
//
// Colour runs from NearColor to FarColor along ((z-near)/(far-near))^Exponent.
// Alpha is 0 outside [near+NearMargin, far-FarMargin], ramps up from each
// edge of that band over FadeDistance, and never drops below MinAlpha inside
// it. The alpha channels of NearColor and FarColor are ignored.
type Fade struct {
	NearColor    Color
	FarColor     Color
	Exponent     fx.Fixed
	NearMargin   fx.Fixed
	FarMargin    fx.Fixed
	FadeDistance fx.Fixed
	MinAlpha     uint8
}

// Shade returns the faded colour for depth z within the near/far clip range.
func (f Fade) Shade(z, near, far fx.Fixed) Color {
	a := f.Alpha(z, near, far)
	if a == 0 {
		return 0
	}
	return f.Tint(z, near, far).WithAlpha(a)
}

// Tint is the interpolated RGB at z, fully opaque.
func (f Fade) Tint(z, near, far fx.Fixed) Color {
	t := fx.Clamp01(fx.Div(z-near, far-near))
	if far <= near {
		t = 0
	}
	p := fx.Clamp01(fx.Pow(t, f.Exponent))
	ch := func(a, b uint8) uint8 {
		return uint8(int32(a) + fx.ToInt(fx.Fixed(int32(b)-int32(a))*p))
	}
	n, fc := f.NearColor, f.FarColor
	return RGB(ch(n.R(), fc.R()), ch(n.G(), fc.G()), ch(n.B(), fc.B()))
}

// Alpha is the visibility of depth z.
func (f Fade) Alpha(z, near, far fx.Fixed) uint8 {
	lo := near + f.NearMargin
	hi := far - f.FarMargin
	if z < lo || z > hi {
		return 0
	}
	edge := z - lo
	if d := hi - z; d < edge {
		edge = d
	}
	a := fx.FromInt(255)
	if f.FadeDistance > 0 && edge < f.FadeDistance {
		a = fx.Mul(fx.FromInt(255), fx.Div(edge, f.FadeDistance))
	}
	v := fx.ToInt(a)
	if v < int32(f.MinAlpha) {
		v = int32(f.MinAlpha)
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
