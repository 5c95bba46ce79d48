package quarkgl

import "quarkwire/quarkgl/fx"

// Quat is a rotation quaternion stored as [x, y, z, w].
type Quat struct {
	X, Y, Z, W fx.Fixed
}

func QuatIdentity() Quat { return Quat{W: fx.One} }

// QuatFromAxisAngle normalizes axis before use. A zero axis yields identity.
func QuatFromAxisAngle(axis Vec3, angle fx.Fixed) Quat {
	a := Normalize(axis)
	if a == (Vec3{}) {
		return QuatIdentity()
	}
	half := angle / 2
	s := fx.Sin(half)
	return Quat{
		X: fx.Mul(a.X, s),
		Y: fx.Mul(a.Y, s),
		Z: fx.Mul(a.Z, s),
		W: fx.Cos(half),
	}
}

// Mul returns the Hamilton product q·r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	w1, x1, y1, z1 := int64(q.W), int64(q.X), int64(q.Y), int64(q.Z)
	w2, x2, y2, z2 := int64(r.W), int64(r.X), int64(r.Y), int64(r.Z)
	return Quat{
		W: fx.Sum64(w1*w2 - x1*x2 - y1*y2 - z1*z2),
		X: fx.Sum64(w1*x2 + x1*w2 + y1*z2 - z1*y2),
		Y: fx.Sum64(w1*y2 - x1*z2 + y1*w2 + z1*x2),
		Z: fx.Sum64(w1*z2 + x1*y2 - y1*x2 + z1*w2),
	}
}

// Normalize maps a zero quaternion to identity, unlike vector Normalize.
func (q Quat) Normalize() Quat {
	sum := (int64(q.X)*int64(q.X) + int64(q.Y)*int64(q.Y) +
		int64(q.Z)*int64(q.Z) + int64(q.W)*int64(q.W)) >> fx.Shift
	if sum > int64(fx.Max) {
		sum = int64(fx.Max)
	}
	n := fx.Sqrt(fx.Fixed(sum))
	if n == 0 {
		return QuatIdentity()
	}
	return Quat{
		X: fx.Div(q.X, n),
		Y: fx.Div(q.Y, n),
		Z: fx.Div(q.Z, n),
		W: fx.Div(q.W, n),
	}
}

// Conjugate is the inverse rotation for a unit quaternion.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// RotationMatrix expands q into a pure rotation with m[15] = One.
func (q Quat) RotationMatrix() Mat4 {
	xx, yy, zz := fx.Mul(q.X, q.X), fx.Mul(q.Y, q.Y), fx.Mul(q.Z, q.Z)
	xy, xz, yz := fx.Mul(q.X, q.Y), fx.Mul(q.X, q.Z), fx.Mul(q.Y, q.Z)
	wx, wy, wz := fx.Mul(q.W, q.X), fx.Mul(q.W, q.Y), fx.Mul(q.W, q.Z)
	one := fx.One
	return Mat4{
		one - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0,
		2 * (xy + wz), one - 2*(xx+zz), 2 * (yz - wx), 0,
		2 * (xz - wy), 2 * (yz + wx), one - 2*(xx+yy), 0,
		0, 0, 0, one,
	}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 { return q.RotationMatrix().TransformVector(v) }
