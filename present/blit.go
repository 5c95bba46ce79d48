// Package present moves finished frames out of a raster.Framebuffer: onto a
// HAL panel, into an image, a snapshot file or a terminal.
package present

import (
	"errors"
	"image"

	"quarkwire/hal"
	"quarkwire/quarkgl/raster"
)

var ErrPixelFormat = errors.New("present: unsupported pixel format")

// BlitRGB565 copies src into dst's buffer, clipped to the smaller of the two
// sizes. Alpha is dropped. It does not call Present.
func BlitRGB565(dst hal.Framebuffer, src *raster.Framebuffer) error {
	if dst == nil || src == nil {
		return nil
	}
	if dst.Format() != hal.PixelFormatRGB565 {
		return ErrPixelFormat
	}
	buf := dst.Buffer()
	stride := dst.StrideBytes()
	w := min(dst.Width(), src.Width)
	h := min(dst.Height(), src.Height)
	for y := 0; y < h; y++ {
		row := buf[y*stride:]
		pix := src.Pix[y*src.Width:]
		for x := 0; x < w; x++ {
			p := raster.Color(pix[x]).RGB565()
			row[x*2] = byte(p)
			row[x*2+1] = byte(p >> 8)
		}
	}
	return nil
}

// ToNRGBA converts fb to an opaque image.
func ToNRGBA(fb *raster.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, p := range fb.Pix {
		c := raster.Color(p)
		img.Pix[i*4+0] = c.R()
		img.Pix[i*4+1] = c.G()
		img.Pix[i*4+2] = c.B()
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
