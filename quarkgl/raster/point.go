package raster

import "quarkwire/quarkgl/fx"

// Template is a square (2r+1)² alpha falloff stamp centred on a point.
type Template struct {
	Radius int
	Alpha  []uint8
}

// NewTemplate fills alpha = 255·(1 - d/r)^exp, clamped to [0, 255], where d is
// the distance from the centre. A zero radius is a single opaque pixel.
func NewTemplate(radius int, exp fx.Fixed) *Template {
	if radius < 0 {
		radius = 0
	}
	size := 2*radius + 1
	t := &Template{Radius: radius, Alpha: make([]uint8, size*size)}
	if radius == 0 {
		t.Alpha[0] = 0xFF
		return t
	}
	r := fx.FromInt(int32(radius))
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			d := fx.Sqrt(fx.FromInt(int32(x*x + y*y)))
			falloff := fx.One - fx.Div(d, r)
			var a int32
			if falloff > 0 {
				a = fx.ToInt(fx.Mul(fx.FromInt(255), fx.Pow(falloff, exp)))
			}
			t.Alpha[(y+radius)*size+(x+radius)] = uint8(fx.Clamp(fx.Fixed(a), 0, 255))
		}
	}
	return t
}

// Size is the template edge length.
func (t *Template) Size() int { return 2*t.Radius + 1 }

// TemplateCache memoizes templates per (radius, exponent).
type TemplateCache struct {
	m map[templateKey]*Template
}

type templateKey struct {
	radius int
	exp    fx.Fixed
}

func (c *TemplateCache) Get(radius int, exp fx.Fixed) *Template {
	k := templateKey{radius, exp}
	if t, ok := c.m[k]; ok {
		return t
	}
	if c.m == nil {
		c.m = make(map[templateKey]*Template)
	}
	t := NewTemplate(radius, exp)
	c.m[k] = t
	return t
}

// Len reports the number of cached templates.
func (c *TemplateCache) Len() int { return len(c.m) }

// Stamp draws t centred at (cx, cy). Each cell's alpha is the template alpha
// scaled by c's alpha, and RGB is premultiplied by the result.
func (fb *Framebuffer) Stamp(cx, cy int, t *Template, c Color) int {
	ca := uint32(c.A())
	if ca == 0 || t == nil {
		return 0
	}
	size := t.Size()
	n := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			ta := uint32(t.Alpha[y*size+x])
			if ta == 0 {
				continue
			}
			a := uint8(ta * ca / 255)
			if fb.Plot(cx+x-t.Radius, cy+y-t.Radius, c.WithAlpha(a).Premultiply()) {
				n++
			}
		}
	}
	return n
}
