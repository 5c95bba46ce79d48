package raster

// Color is a packed 0xAARRGGBB pixel.
type Color uint32

func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func RGB(r, g, b uint8) Color { return ARGB(0xFF, r, g, b) }

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

func (c Color) WithAlpha(a uint8) Color { return c&0x00FFFFFF | Color(a)<<24 }

// Premultiply scales RGB by the colour's own alpha.
func (c Color) Premultiply() Color {
	a := uint32(c.A())
	mul := func(ch uint8) uint8 { return uint8(uint32(ch) * a / 255) }
	return ARGB(c.A(), mul(c.R()), mul(c.G()), mul(c.B()))
}

// RGB565 packs the colour for 16-bit panels. Alpha is dropped.
func (c Color) RGB565() uint16 {
	return uint16(c.R()>>3)<<11 | uint16(c.G()>>2)<<5 | uint16(c.B()>>3)
}
