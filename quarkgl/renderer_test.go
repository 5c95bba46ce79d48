package quarkgl

import (
	"testing"

	"quarkwire/quarkgl/fx"
	"quarkwire/quarkgl/raster"
)

const testBG = raster.Color(0xFF000000)

func lineModel() *Model {
	return MustModel([]Vec3{V3(-fx.One, 0, 0), V3(fx.One, 0, 0)}, []Edge{{0, 1}}, 0)
}

func TestRenderDrawsVisibleEdge(t *testing.T) {
	fb := raster.NewFramebuffer(64, 64, testBG)
	r := NewRenderer(fb)
	s := NewScene(NewCamera(Vec3{}), testLens())
	s.Add(&SceneObject{Model: lineModel(), Position: V3(0, 0, -5*fx.One), Material: DefaultMaterial()})

	st := r.Render(s)
	if st.Objects != 1 || st.Visible != 1 || st.Primitives != 1 {
		t.Fatalf("stats = %+v", st)
	}
	// x = ±1 at depth 5 projects to columns 21..42 on the centre row.
	if got := fb.Drawn(); got != 22 {
		t.Fatalf("drawn = %d, want 22", got)
	}
	if fb.At(21, 32) == testBG || fb.At(42, 32) == testBG {
		t.Fatalf("line endpoints missing")
	}
	if fb.At(20, 32) != testBG || fb.At(43, 32) != testBG {
		t.Fatalf("line overshoots its endpoints")
	}
	if total, busy := r.Arena().Slots(); total != 1 || busy != 0 {
		t.Fatalf("arena slots = %d, busy = %d", total, busy)
	}
}

func TestRenderSkipsCulledObjects(t *testing.T) {
	fb := raster.NewFramebuffer(32, 32, testBG)
	r := NewRenderer(fb)
	s := NewScene(NewCamera(Vec3{}), testLens())
	s.Add(&SceneObject{Model: lineModel(), Position: V3(0, 0, -40*fx.One), Material: DefaultMaterial()})

	st := r.Render(s)
	if st.Visible != 0 || st.Primitives != 0 || fb.Drawn() != 0 {
		t.Fatalf("culled object drawn: %+v, %d pixels", st, fb.Drawn())
	}
}

func TestRenderClearsBetweenFrames(t *testing.T) {
	fb := raster.NewFramebuffer(64, 64, testBG)
	r := NewRenderer(fb)
	s := NewScene(NewCamera(Vec3{}), testLens())
	o := s.Add(&SceneObject{Model: lineModel(), Position: V3(0, 0, -5*fx.One), Material: DefaultMaterial()})
	r.Render(s)
	o.Hidden = true
	r.Render(s)
	if fb.Drawn() != 0 {
		t.Fatalf("stale pixels after hiding the only object: %d", fb.Drawn())
	}
}

func TestRenderVertices(t *testing.T) {
	fb := raster.NewFramebuffer(64, 64, testBG)
	r := NewRenderer(fb)
	s := NewScene(NewCamera(Vec3{}), testLens())
	mat := DefaultMaterial()
	mat.Type = RenderVertices
	mat.PrimitiveWidth = 0
	s.Add(&SceneObject{Model: lineModel(), Position: V3(0, 0, -5*fx.One), Material: mat})

	st := r.Render(s)
	if st.Primitives != 2 {
		t.Fatalf("points drawn = %d, want 2", st.Primitives)
	}
	if fb.Drawn() != 2 || fb.At(21, 32) == testBG || fb.At(42, 32) == testBG {
		t.Fatalf("point pixels wrong: drawn %d", fb.Drawn())
	}
}

func TestRenderClipsEdgeCrossingNearPlane(t *testing.T) {
	fb := raster.NewFramebuffer(64, 64, testBG)
	r := NewRenderer(fb)
	s := NewScene(NewCamera(Vec3{}), testLens())
	// One end in front of the camera, one behind it.
	m := MustModel([]Vec3{V3(0, -fx.One, -4*fx.One), V3(0, -fx.One, 4*fx.One)}, []Edge{{0, 1}}, 0)
	mat := DefaultMaterial()
	mat.MinAlpha = 0xFF
	s.Add(&SceneObject{Model: m, Material: mat})

	st := r.Render(s)
	if st.Primitives != 1 || fb.Drawn() == 0 {
		t.Fatalf("near-crossing edge not drawn: %+v", st)
	}
}

func TestClipNear(t *testing.T) {
	a := Vec4{Z: -fx.One, W: 2 * fx.One} // inside: z+w = 1
	b := Vec4{Z: -3 * fx.One, W: fx.One} // outside: z+w = -2
	ca, cb, ok := clipNear(a, b)
	if !ok || ca != a {
		t.Fatalf("inside end moved: %+v", ca)
	}
	if cb.Z+cb.W < -1 || cb.Z+cb.W > 1 {
		t.Fatalf("clipped end not on the near plane: %+v", cb)
	}
	if _, _, ok := clipNear(b, b); ok {
		t.Fatalf("fully clipped segment accepted")
	}
}

// brightestOnRow returns the largest red channel on row y.
func brightestOnRow(fb *raster.Framebuffer, y int) uint8 {
	var m uint8
	for x := 0; x < fb.Width; x++ {
		if r := fb.At(x, y).R(); r > m {
			m = r
		}
	}
	return m
}

func TestRenderFarEdgeIsDimmerWithoutDither(t *testing.T) {
	mat := DefaultMaterial()
	mat.NearColor = raster.RGB(0xFF, 0xFF, 0xFF)
	mat.FarColor = raster.RGB(0xFF, 0xFF, 0xFF)
	mat.FadeDistance = 4 * fx.One
	mat.MinAlpha = 0x20

	render := func(depth fx.Fixed) uint8 {
		fb := raster.NewFramebuffer(64, 64, testBG)
		if fb.Dither != raster.DitherOff {
			t.Fatalf("framebuffer dither = %d, want off", fb.Dither)
		}
		r := NewRenderer(fb)
		s := NewScene(NewCamera(Vec3{}), testLens())
		s.Add(&SceneObject{Model: lineModel(), Position: V3(0, 0, -depth), Material: mat})
		if st := r.Render(s); st.Primitives != 1 {
			t.Fatalf("depth %d: primitives = %d, want 1", depth, st.Primitives)
		}
		return brightestOnRow(fb, 32)
	}

	// Depth 5 sits deep inside the band; 9.5 is half a unit from the far
	// plane, so its alpha falls to MinAlpha.
	mid := render(5 * fx.One)
	far := render(fx.FromFloat(9.5))
	if mid != 0xFF {
		t.Fatalf("mid-band edge red = %d, want 255", mid)
	}
	if far != 0x20 {
		t.Fatalf("far-band edge red = %d, want %d", far, 0x20)
	}
}
