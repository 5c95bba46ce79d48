package raster

// Blend composites src onto dst additively.
//
// A dst equal to bg is overwritten by src. Otherwise channels are summed;
// when the summed alpha exceeds alphaCap the alpha is pinned to alphaCap and
// RGB is rescaled by alphaCap/alpha. RGB saturates at 255.
func Blend(dst, src, bg Color, alphaCap uint8) Color {
	if dst == bg {
		return src
	}
	a := uint32(dst.A()) + uint32(src.A())
	r := uint32(dst.R()) + uint32(src.R())
	g := uint32(dst.G()) + uint32(src.G())
	b := uint32(dst.B()) + uint32(src.B())
	if limit := uint32(alphaCap); a > limit {
		r = r * limit / a
		g = g * limit / a
		b = b * limit / a
		a = limit
	}
	return ARGB(uint8(a), sat8(r), sat8(g), sat8(b))
}

func sat8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
