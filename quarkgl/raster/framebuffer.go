// Package raster draws dithered, additively blended lines and points into a
// packed ARGB framebuffer. All arithmetic is integer or Q24.8.
package raster

// Framebuffer is a row-major packed ARGB pixel buffer.
//
// Background doubles as the "empty" marker: a pixel still equal to it is
// overwritten instead of blended.
type Framebuffer struct {
	Pix        []uint32
	Width      int
	Height     int
	Background Color
	AlphaCap   uint8
	Dither     Dither
}

// NewFramebuffer allocates a w×h buffer cleared to bg with no alpha cap
// below 255 and dithering off.
func NewFramebuffer(w, h int, bg Color) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	fb := &Framebuffer{
		Pix:        make([]uint32, w*h),
		Width:      w,
		Height:     h,
		Background: bg,
		AlphaCap:   0xFF,
	}
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Clear() {
	bg := uint32(fb.Background)
	for i := range fb.Pix {
		fb.Pix[i] = bg
	}
}

// At returns the pixel at (x, y), or Background when out of bounds.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return fb.Background
	}
	return Color(fb.Pix[y*fb.Width+x])
}

// Set writes c without blending or dithering.
func (fb *Framebuffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = uint32(c)
}

// Plot dithers and blends c into (x, y). Transparent and out-of-bounds
// pixels are skipped. It reports whether the pixel was written.
func (fb *Framebuffer) Plot(x, y int, c Color) bool {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return false
	}
	a := c.A()
	if a == 0 || !fb.Dither.Plot(a, x, y) {
		return false
	}
	i := y*fb.Width + x
	fb.Pix[i] = uint32(Blend(Color(fb.Pix[i]), c, fb.Background, fb.AlphaCap))
	return true
}

// Drawn counts pixels that differ from Background.
func (fb *Framebuffer) Drawn() int {
	n := 0
	bg := uint32(fb.Background)
	for _, p := range fb.Pix {
		if p != bg {
			n++
		}
	}
	return n
}
