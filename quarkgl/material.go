package quarkgl

import (
	"quarkwire/quarkgl/fx"
	"quarkwire/quarkgl/raster"
)

// RenderType selects which primitives of a model are drawn.
type RenderType uint8

const (
	RenderEdges RenderType = iota
	RenderVertices
)

func (t RenderType) String() string {
	if t == RenderVertices {
		return "vertices"
	}
	return "edges"
}

// Material describes how an object fades with depth and how wide its
// primitives are. For RenderVertices, PrimitiveWidth is the point radius in
// pixels and PointFalloff the template exponent.
type Material struct {
	raster.Fade

	Type           RenderType
	PrimitiveWidth int
	PointFalloff   fx.Fixed
}

// DefaultMaterial is a white-to-blue edge material with a short fade-in.
func DefaultMaterial() Material {
	return Material{
		Fade: raster.Fade{
			NearColor:    raster.RGB(0xFF, 0xFF, 0xFF),
			FarColor:     raster.RGB(0x20, 0x40, 0xC0),
			Exponent:     fx.One,
			FadeDistance: fx.One,
			MinAlpha:     0x20,
		},
		Type:           RenderEdges,
		PrimitiveWidth: 1,
		PointFalloff:   fx.One,
	}
}
