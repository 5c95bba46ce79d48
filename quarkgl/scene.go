package quarkgl

import "quarkwire/quarkgl/fx"

// SceneObject places a shared Model in the world.
type SceneObject struct {
	Name     string
	Model    *Model
	Position Vec3
	Rotation Vec3 // radians about X, Y and Z, applied in that order
	Scale    fx.Fixed
	Material Material
	Hidden   bool
}

// ModelMatrix is T × Rz × Ry × Rx × S.
func (o *SceneObject) ModelMatrix() Mat4 {
	s := o.Scale
	if s == 0 {
		s = fx.One
	}
	m := Translation(o.Position)
	m = m.Multiply(RotationZ(o.Rotation.Z))
	m = m.Multiply(RotationY(o.Rotation.Y))
	m = m.Multiply(RotationX(o.Rotation.X))
	return m.Multiply(UniformScaling(s))
}

// Radius is the model's bounding radius times the object's scale.
func (o *SceneObject) Radius() fx.Fixed {
	s := o.Scale
	if s == 0 {
		s = fx.One
	}
	return fx.Mul(o.Model.Radius(), fx.Abs(s))
}

// Lens holds the perspective parameters. Fov is vertical, in radians.
type Lens struct {
	Fov    fx.Fixed
	Aspect fx.Fixed
	Near   fx.Fixed
	Far    fx.Fixed
}

// Scene owns its objects and camera. It is not safe for concurrent use.
type Scene struct {
	Camera *Camera

	objects    []*SceneObject
	visible    []*SceneObject
	lens       Lens
	proj       Mat4
	projBuilds int
	planes     cullPlanes
}

// NewScene creates an empty scene viewed by cam.
func NewScene(cam *Camera, p Lens) *Scene {
	if cam == nil {
		cam = NewCamera(Vec3{})
	}
	s := &Scene{Camera: cam}
	s.SetPerspective(p)
	return s
}

// Add appends obj and returns it. Objects are drawn in insertion order.
func (s *Scene) Add(obj *SceneObject) *SceneObject {
	if obj == nil || obj.Model == nil {
		return obj
	}
	if obj.Scale == 0 {
		obj.Scale = fx.One
	}
	s.objects = append(s.objects, obj)
	return obj
}

// Remove drops obj, keeping the order of the rest.
func (s *Scene) Remove(obj *SceneObject) bool {
	for i, o := range s.objects {
		if o == obj {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) Objects() []*SceneObject { return s.objects }

func (s *Scene) Lens() Lens { return s.lens }

// SetPerspective rebuilds the projection matrix.
func (s *Scene) SetPerspective(p Lens) {
	if p.Aspect <= 0 {
		p.Aspect = fx.One
	}
	if p.Near <= 0 {
		p.Near = fx.One / 10
	}
	if p.Far <= p.Near {
		p.Far = p.Near + fx.One
	}
	s.lens = p
	s.proj = Perspective(p.Fov, p.Aspect, p.Near, p.Far)
	s.planes = newCullPlanes(p)
	s.projBuilds++
}

// SetFov changes only the field of view. An unchanged value is a no-op.
func (s *Scene) SetFov(fov fx.Fixed) {
	if fov == s.lens.Fov {
		return
	}
	p := s.lens
	p.Fov = fov
	s.SetPerspective(p)
}

func (s *Scene) Projection() Mat4 { return s.proj }

// Frame composes projection × view once and returns it with the objects that
// survive culling, in insertion order. The returned slice is reused by the
// next call.
func (s *Scene) Frame() (viewProj Mat4, view Mat4, visible []*SceneObject) {
	view = s.Camera.View()
	viewProj = s.proj.Multiply(view)
	s.visible = s.visible[:0]
	for _, o := range s.objects {
		if o.Hidden {
			continue
		}
		if s.Visible(o, view) {
			s.visible = append(s.visible, o)
		}
	}
	return viewProj, view, s.visible
}
