package raster

const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outCode(x, y, w, h int) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x >= w {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y >= h {
		code |= outBottom
	}
	return code
}

// ClipLine clips a segment to [0, w) × [0, h) with Cohen–Sutherland.
// ok is false when nothing of the segment is inside.
func ClipLine(x0, y0, x1, y1, w, h int) (cx0, cy0, cx1, cy1 int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	c0 := outCode(x0, y0, w, h)
	c1 := outCode(x1, y1, w, h)
	for {
		if c0|c1 == 0 {
			return x0, y0, x1, y1, true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y int
		dx, dy := int64(x1-x0), int64(y1-y0)
		switch {
		case out&outBottom != 0:
			y = h - 1
			x = x0 + int(dx*int64(y-y0)/dy)
		case out&outTop != 0:
			y = 0
			x = x0 + int(dx*int64(y-y0)/dy)
		case out&outRight != 0:
			x = w - 1
			y = y0 + int(dy*int64(x-x0)/dx)
		default:
			x = 0
			y = y0 + int(dy*int64(x-x0)/dx)
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outCode(x0, y0, w, h)
		} else {
			x1, y1 = x, y
			c1 = outCode(x1, y1, w, h)
		}
	}
}
