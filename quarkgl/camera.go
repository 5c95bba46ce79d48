package quarkgl

import "quarkwire/quarkgl/fx"

var (
	axisX = Vec3{X: fx.One}
	axisY = Vec3{Y: fx.One}
)

// Camera is a position and orientation. The view matrix is derived from them
// on every call and never stored.
type Camera struct {
	Position    Vec3
	Orientation Quat

	homePosition    Vec3
	homeOrientation Quat
}

// NewCamera places a camera at pos looking down -Z. Reset returns here.
func NewCamera(pos Vec3) *Camera {
	c := &Camera{homePosition: pos, homeOrientation: QuatIdentity()}
	c.Reset()
	return c
}

// SetHome replaces the pose Reset restores.
func (c *Camera) SetHome(pos Vec3, orientation Quat) {
	c.homePosition = pos
	c.homeOrientation = orientation.Normalize()
}

func (c *Camera) Reset() {
	c.Position = c.homePosition
	c.Orientation = c.homeOrientation
	if c.Orientation == (Quat{}) {
		c.Orientation = QuatIdentity()
	}
}

// View is transpose(R) × translation(-position).
func (c *Camera) View() Mat4 {
	return c.Orientation.RotationMatrix().Transpose().Multiply(Translation(c.Position.Neg()))
}

// Forward, Right and Up are the camera's local axes in world space.
func (c *Camera) Forward() Vec3 { return c.Orientation.Rotate(Vec3{Z: -fx.One}) }
func (c *Camera) Right() Vec3   { return c.Orientation.Rotate(axisX) }
func (c *Camera) Up() Vec3      { return c.Orientation.Rotate(axisY) }

func (c *Camera) MoveForward(d fx.Fixed) { c.Position = c.Position.Add(c.Forward().Scale(d)) }
func (c *Camera) MoveRight(d fx.Fixed)   { c.Position = c.Position.Add(c.Right().Scale(d)) }
func (c *Camera) MoveUp(d fx.Fixed)      { c.Position = c.Position.Add(c.Up().Scale(d)) }

// Pitch turns about the camera's own X axis. Positive looks up.
func (c *Camera) Pitch(a fx.Fixed) {
	c.Orientation = c.Orientation.Mul(QuatFromAxisAngle(axisX, a)).Normalize()
}

// Yaw turns about world Y so the horizon stays level. Positive turns left.
func (c *Camera) Yaw(a fx.Fixed) {
	c.Orientation = QuatFromAxisAngle(axisY, a).Mul(c.Orientation).Normalize()
}
