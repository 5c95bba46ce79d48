package quarkgl

import (
	"quarkwire/quarkgl/fx"
	"quarkwire/quarkgl/raster"
)

// ndcLimit bounds projected coordinates so far off-screen points stay inside
// int32 range after the viewport transform. Screen clipping trims the rest.
const ndcLimit = 64 * fx.One

// Stats describes the last rendered frame.
type Stats struct {
	Objects    int // objects in the scene
	Visible    int // objects that survived culling
	Primitives int // edges or points handed to the rasterizer
}

// Renderer draws scenes into a framebuffer it owns for the duration of each
// Render call. Create it once and reuse it to avoid allocations.
type Renderer struct {
	FB *raster.Framebuffer

	arena     TransformArena
	templates raster.TemplateCache
	stats     Stats
}

func NewRenderer(fb *raster.Framebuffer) *Renderer {
	return &Renderer{FB: fb}
}

func (r *Renderer) Stats() Stats { return r.stats }

// Arena exposes the transform slab for inspection.
func (r *Renderer) Arena() *TransformArena { return &r.arena }

// Render clears the framebuffer and draws every visible object in insertion
// order. The scene must not change until Render returns.
func (r *Renderer) Render(s *Scene) Stats {
	if r == nil || r.FB == nil || s == nil {
		return Stats{}
	}
	r.stats = Stats{}
	r.FB.Clear()
	vp, _, visible := s.Frame()
	r.stats.Objects = len(s.Objects())
	r.stats.Visible = len(visible)
	lens := s.Lens()
	for _, o := range visible {
		t := r.arena.Acquire(o.Model.NumVertices())
		t.Model = o.ModelMatrix()
		t.MVP = vp.Multiply(t.Model)
		for i := range t.Clip {
			t.Clip[i] = t.MVP.TransformPoint(o.Model.Vertex(i))
		}
		switch o.Material.Type {
		case RenderVertices:
			r.drawPoints(t, &o.Material, lens)
		default:
			r.drawEdges(t, o.Model, &o.Material, lens)
		}
		r.arena.Release(t)
	}
	return r.stats
}

func (r *Renderer) drawEdges(t *Transform, m *Model, mat *Material, lens Lens) {
	for i := 0; i < m.NumEdges(); i++ {
		e := m.Edge(i)
		a, b, ok := clipNear(t.Clip[e[0]], t.Clip[e[1]])
		if !ok {
			continue
		}
		c0 := mat.Shade(a.W, lens.Near, lens.Far)
		c1 := mat.Shade(b.W, lens.Near, lens.Far)
		if c0.A() == 0 && c1.A() == 0 {
			continue
		}
		x0, y0 := r.toScreen(a)
		x1, y1 := r.toScreen(b)
		r.FB.GradientLine(x0, y0, x1, y1, c0, c1, mat.PrimitiveWidth)
		r.stats.Primitives++
	}
}

func (r *Renderer) drawPoints(t *Transform, mat *Material, lens Lens) {
	tpl := r.templates.Get(mat.PrimitiveWidth, mat.PointFalloff)
	for _, p := range t.Clip {
		if p.W <= 0 || p.Z < -p.W {
			continue
		}
		c := mat.Shade(p.W, lens.Near, lens.Far)
		if c.A() == 0 {
			continue
		}
		x, y := r.toScreen(p)
		r.FB.Stamp(x, y, tpl, c)
		r.stats.Primitives++
	}
}

// clipNear trims a clip-space segment to the near plane (z >= -w).
func clipNear(a, b Vec4) (Vec4, Vec4, bool) {
	da, db := a.Z+a.W, b.Z+b.W
	if da < 0 && db < 0 {
		return a, b, false
	}
	if da >= 0 && db >= 0 {
		return a, b, a.W > 0 && b.W > 0
	}
	t := fx.Div(da, da-db)
	p := Vec4{
		X: a.X + fx.Mul(b.X-a.X, t),
		Y: a.Y + fx.Mul(b.Y-a.Y, t),
		Z: a.Z + fx.Mul(b.Z-a.Z, t),
		W: a.W + fx.Mul(b.W-a.W, t),
	}
	if da < 0 {
		a = p
	} else {
		b = p
	}
	return a, b, a.W > 0 && b.W > 0
}

// toScreen divides by w and maps NDC to pixel centres with +Y up.
func (r *Renderer) toScreen(p Vec4) (int, int) {
	nx := fx.Clamp(fx.Div(p.X, p.W), -ndcLimit, ndcLimit)
	ny := fx.Clamp(fx.Div(p.Y, p.W), -ndcLimit, ndcLimit)
	w := fx.FromInt(int32(r.FB.Width - 1))
	h := fx.FromInt(int32(r.FB.Height - 1))
	x := fx.Mul(nx+fx.One, w)/2 + fx.Half
	y := fx.Mul(fx.One-ny, h)/2 + fx.Half
	return int(fx.ToInt(x)), int(fx.ToInt(y))
}
