package quarkgl

import "quarkwire/quarkgl/fx"

// cullPlanes caches the side-plane slopes for the current lens. A side plane
// through the eye is |x| = depth·tan; a sphere is outside it when
// |x| - depth·tan > radius·sqrt(1 + tan²).
type cullPlanes struct {
	tanH, secH fx.Fixed
	tanV, secV fx.Fixed
	near, far  fx.Fixed
}

func newCullPlanes(l Lens) cullPlanes {
	tanV := fx.Tan(l.Fov / 2)
	tanH := fx.Mul(tanV, l.Aspect)
	return cullPlanes{
		tanH: tanH,
		secH: fx.Sqrt(fx.One + fx.Mul(tanH, tanH)),
		tanV: tanV,
		secV: fx.Sqrt(fx.One + fx.Mul(tanV, tanV)),
		near: l.Near,
		far:  l.Far,
	}
}

// Visible runs the sphere-frustum test for o against the camera view.
// An object whose sphere contains the camera is always visible.
func (s *Scene) Visible(o *SceneObject, view Mat4) bool {
	r := o.Radius()
	if Length(o.Position.Sub(s.Camera.Position)) <= r {
		return true
	}
	p := &s.planes
	c := view.TransformPoint(o.Position)
	depth := -c.Z
	if depth+r < p.near || depth-r > p.far {
		return false
	}
	if fx.Abs(c.X)-fx.Mul(depth, p.tanH) > fx.Mul(r, p.secH) {
		return false
	}
	if fx.Abs(c.Y)-fx.Mul(depth, p.tanV) > fx.Mul(r, p.secV) {
		return false
	}
	return true
}
