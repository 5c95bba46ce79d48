package raster

// Dither selects an ordered-dither matrix size. DitherOff plots every pixel
// that reaches the blender.
type Dither uint8

const (
	DitherOff Dither = 0
	Dither2   Dither = 2
	Dither4   Dither = 4
	Dither8   Dither = 8
)

var bayer2 = [2][2]uint8{
	{0, 2},
	{3, 1},
}

var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

var bayer8 = [8][8]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// Valid reports whether d names a supported matrix or DitherOff.
func (d Dither) Valid() bool {
	switch d {
	case DitherOff, Dither2, Dither4, Dither8:
		return true
	}
	return false
}

// Coverage reduces alpha to [0, N²-1] by shifting out 8 - log2(N²) bits.
func (d Dither) Coverage(alpha uint8) uint8 {
	switch d {
	case Dither2:
		return alpha >> 6
	case Dither4:
		return alpha >> 4
	case Dither8:
		return alpha >> 2
	}
	return alpha
}

// Threshold returns the matrix entry at (y mod N, x mod N).
func (d Dither) Threshold(x, y int) uint8 {
	switch d {
	case Dither2:
		return bayer2[y&1][x&1]
	case Dither4:
		return bayer4[y&3][x&3]
	case Dither8:
		return bayer8[y&7][x&7]
	}
	return 0
}

// Plot reports whether a pixel of the given alpha survives dithering at
// (x, y). Fully opaque pixels always do, as do all pixels with DitherOff.
func (d Dither) Plot(alpha uint8, x, y int) bool {
	if d == DitherOff || alpha == 0xFF {
		return true
	}
	return d.Coverage(alpha) > d.Threshold(x, y)
}
