package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"quarkwire/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// showPanic logs a recovered panic with its stack and paints it on the
// panel, black on white.
func showPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"QuarkWire panic:", fmt.Sprintf("%v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	for _, line := range lines {
		logLine(h.Logger(), line)
	}
	paintLines(h, color.RGBA{A: 0xFF}, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, lines)
}

// showMessage paints a short status screen, white on black.
func showMessage(h hal.HAL, lines ...string) {
	paintLines(h, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, color.RGBA{A: 0xFF}, lines)
}

// paintLines clears the panel to bg and word-wraps lines in fg until the
// panel is full, then presents it.
func paintLines(h hal.HAL, fg, bg color.RGBA, lines []string) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(bg.R, bg.G, bg.B)

	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	charW := int16(outbox)
	if charW <= 0 {
		charW = 6
	}
	cols := int16(fb.Width()) / charW
	if cols <= 0 {
		cols = 1
	}

	d := panelDisplay{fb: fb}
	y := int16(hudLineHeight)
	for _, line := range lines {
		for len(line) > 0 {
			if y > int16(fb.Height()) {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

// panelDisplay draws tinyfont glyphs into an RGB565 HAL framebuffer.
type panelDisplay struct {
	fb hal.Framebuffer
}

func (d panelDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panelDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panelDisplay) Display() error { return nil }

// takeRunes splits s after n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i := 0
	for count := int16(0); i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
