package app

import (
	"fmt"
	"image/color"

	"quarkwire/quarkgl"
	"quarkwire/quarkgl/fx"
	"quarkwire/quarkgl/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const hudLineHeight = 10

var hudColor = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}

// hud writes frame statistics into the top-left corner of the frame.
type hud struct {
	font tinyfont.Fonter
}

func newHUD() *hud { return &hud{font: &proggy.TinySZ8pt7b} }

// DrawHUD writes the lens and frame statistics over the rendered frame.
func (w *World) DrawHUD(st quarkgl.Stats) {
	if w.hud == nil {
		w.hud = newHUD()
	}
	w.hud.draw(w.Renderer.FB, w, st)
}

func (h *hud) draw(fb *raster.Framebuffer, w *World, st quarkgl.Stats) {
	d := &fbDisplayer{fb: fb}
	lens := w.Scene.Lens()
	lines := [...]string{
		fmt.Sprintf("fov %d  frame %d", fx.ToDegrees(lens.Fov), w.Frames()),
		fmt.Sprintf("vis %d/%d  prims %d", st.Visible, st.Objects, st.Primitives),
	}
	for i, s := range lines {
		tinyfont.WriteLine(d, h.font, 4, int16(hudLineHeight*(i+1)), s, hudColor)
	}
}

// fbDisplayer lets tinyfont draw straight into a raster framebuffer. Text
// overwrites pixels without blending or dithering.
type fbDisplayer struct {
	fb *raster.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width), int16(d.fb.Height)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.Set(int(x), int(y), raster.ARGB(c.A, c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error { return nil }
