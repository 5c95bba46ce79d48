package present

import (
	"quarkwire/quarkgl/raster"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Terminal draws frames onto a tcell screen with upper half-block cells, so
// each cell shows two framebuffer rows. The frame is sampled to fit the
// screen, leaving the bottom line free for a status string.
type Terminal struct {
	Screen tcell.Screen
}

// Draw renders fb and status and shows the result.
func (t *Terminal) Draw(fb *raster.Framebuffer, status string) {
	s := t.Screen
	cols, rows := s.Size()
	if cols <= 0 || rows <= 1 || fb.Width <= 0 || fb.Height <= 0 {
		return
	}
	rows--

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := cellColors(fb, cx, cy, cols, rows)
			style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bottom))
			s.SetContent(cx, cy, halfBlock, nil, style)
		}
	}

	for cx := 0; cx < cols; cx++ {
		r := ' '
		if cx < len(status) {
			r = rune(status[cx])
		}
		s.SetContent(cx, rows, r, nil, tcell.StyleDefault)
	}
	s.Show()
}

// cellColors samples the two framebuffer pixels behind cell (cx, cy) of a
// cols×rows grid.
func cellColors(fb *raster.Framebuffer, cx, cy, cols, rows int) (top, bottom raster.Color) {
	x := cx * fb.Width / cols
	y0 := (2 * cy) * fb.Height / (2 * rows)
	y1 := (2*cy + 1) * fb.Height / (2 * rows)
	return fb.At(x, y0), fb.At(x, y1)
}

func termColor(c raster.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
