package hal

// RGB565 packs an 8-bit colour, dropping the low bits of each channel.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// ExpandRGB565 widens p back to 8 bits per channel. The high bits are
// replicated into the low ones so full intensity stays 255.
func ExpandRGB565(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// fillRGB565 writes p little-endian into every pixel of buf.
func fillRGB565(buf []byte, p uint16) {
	lo, hi := byte(p), byte(p>>8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// expandRGB565Into converts little-endian RGB565 pixels to opaque RGBA,
// stopping at whichever buffer runs out first.
func expandRGB565Into(dst, src []byte) {
	for i, j := 0, 0; i+1 < len(src) && j+3 < len(dst); i, j = i+2, j+4 {
		dst[j], dst[j+1], dst[j+2] = ExpandRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		dst[j+3] = 0xFF
	}
}
