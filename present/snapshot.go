package present

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quarkwire/quarkgl/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

var ErrSnapshotFormat = errors.New("present: unknown snapshot format")

// Snapshot converts fb to an image enlarged by an integer factor with
// nearest-neighbour sampling, keeping single-pixel lines crisp. Factors
// below 2 return the unscaled image.
func Snapshot(fb *raster.Framebuffer, scale int) image.Image {
	src := ToNRGBA(fb)
	if scale < 2 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WriteWebP encodes a lossless WebP snapshot.
func WriteWebP(w io.Writer, fb *raster.Framebuffer, scale int) error {
	if err := nativewebp.Encode(w, Snapshot(fb, scale), nil); err != nil {
		return fmt.Errorf("present: webp encode: %w", err)
	}
	return nil
}

// WriteTGA encodes an uncompressed TGA snapshot.
func WriteTGA(w io.Writer, fb *raster.Framebuffer, scale int) error {
	if err := tga.Encode(w, Snapshot(fb, scale)); err != nil {
		return fmt.Errorf("present: tga encode: %w", err)
	}
	return nil
}

// WriteFile picks the encoder from the extension of path (.webp or .tga).
func WriteFile(path string, fb *raster.Framebuffer, scale int) error {
	var enc func(io.Writer, *raster.Framebuffer, int) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		enc = WriteWebP
	case ".tga":
		enc = WriteTGA
	default:
		return fmt.Errorf("%s: %w", path, ErrSnapshotFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("present: create snapshot: %w", err)
	}
	if err := enc(f, fb, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
