package raster

// Bresenham visits every pixel of the segment from (x0, y0) to (x1, y1)
// inclusive. i counts steps from the start; n is the total step count.
func Bresenham(x0, y0, x1, y1 int, visit func(x, y, i, n int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	n := dx
	if -dy > n {
		n = -dy
	}
	err := dx + dy
	for i := 0; ; i++ {
		visit(x0, y0, i, n)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Line draws a clipped single-colour segment.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, c Color) {
	fb.GradientLine(x0, y0, x1, y1, c, c, 1)
}

// GradientLine draws a clipped segment, interpolating straight ARGB from c0
// to c1 and premultiplying each pixel before it is blended. width > 1 adds
// parallel copies offset along the minor axis.
func (fb *Framebuffer) GradientLine(x0, y0, x1, y1 int, c0, c1 Color, width int) {
	if c0.A() == 0 && c1.A() == 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	steep := absInt(y1-y0) > absInt(x1-x0)
	lo := -(width - 1) / 2
	for k := lo; k < lo+width; k++ {
		ox, oy := 0, k
		if steep {
			ox, oy = k, 0
		}
		fb.gradientSegment(x0+ox, y0+oy, x1+ox, y1+oy, c0, c1)
	}
}

func (fb *Framebuffer) gradientSegment(x0, y0, x1, y1 int, c0, c1 Color) {
	cx0, cy0, cx1, cy1, ok := ClipLine(x0, y0, x1, y1, fb.Width, fb.Height)
	if !ok {
		return
	}
	if c0 == c1 {
		pc := c0.Premultiply()
		Bresenham(cx0, cy0, cx1, cy1, func(x, y, _, _ int) { fb.Plot(x, y, pc) })
		return
	}
	// Colours at the clipped ends, measured along the major axis.
	span := absInt(x1 - x0)
	from, to := cx0-x0, cx1-x0
	if s := absInt(y1 - y0); s > span {
		span = s
		from, to = cy0-y0, cy1-y0
	}
	a, b := c0, c1
	if span > 0 {
		a = LerpColor(c0, c1, absInt(from), span)
		b = LerpColor(c0, c1, absInt(to), span)
	}
	Bresenham(cx0, cy0, cx1, cy1, func(x, y, i, n int) {
		c := a
		if n > 0 {
			c = LerpColor(a, b, i, n)
		}
		fb.Plot(x, y, c.Premultiply())
	})
}

// LerpColor interpolates each ARGB channel by num/den.
func LerpColor(a, b Color, num, den int) Color {
	if den <= 0 || num <= 0 {
		return a
	}
	if num >= den {
		return b
	}
	ch := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*num/den)
	}
	return ARGB(ch(a.A(), b.A()), ch(a.R(), b.R()), ch(a.G(), b.G()), ch(a.B(), b.B()))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
