package quarkgl

import (
	"math"

	"quarkwire/quarkgl/fx"
)

// Mat4 is a row-major 4x4 matrix: m[row*4+col].
//
// Vectors are columns (p' = M·p), so translation lives in m[3], m[7], m[11]
// and M.Multiply(N) applies N first.
type Mat4 [16]fx.Fixed

func Identity() Mat4 {
	return Mat4{
		fx.One, 0, 0, 0,
		0, fx.One, 0, 0,
		0, 0, fx.One, 0,
		0, 0, 0, fx.One,
	}
}

func Translation(v Vec3) Mat4 {
	m := Identity()
	m[3] = v.X
	m[7] = v.Y
	m[11] = v.Z
	return m
}

func Scaling(v Vec3) Mat4 {
	m := Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

// UniformScaling scales all three axes by s.
func UniformScaling(s fx.Fixed) Mat4 { return Scaling(Vec3{s, s, s}) }

// RotationX is right-handed: +90° maps +Y onto +Z.
func RotationX(a fx.Fixed) Mat4 {
	c, s := fx.Cos(a), fx.Sin(a)
	return Mat4{
		fx.One, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, fx.One,
	}
}

// RotationY is right-handed: +90° maps +Z onto +X.
func RotationY(a fx.Fixed) Mat4 {
	c, s := fx.Cos(a), fx.Sin(a)
	return Mat4{
		c, 0, s, 0,
		0, fx.One, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, fx.One,
	}
}

// RotationZ is right-handed: +90° maps +X onto +Y.
func RotationZ(a fx.Fixed) Mat4 {
	c, s := fx.Cos(a), fx.Sin(a)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, fx.One, 0,
		0, 0, 0, fx.One,
	}
}

// Multiply returns m·n. Each element is one 64-bit dot product shifted once.
func (m Mat4) Multiply(n Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = fx.Sum64(
				int64(m[row*4+0])*int64(n[0*4+col]) +
					int64(m[row*4+1])*int64(n[1*4+col]) +
					int64(m[row*4+2])*int64(n[2*4+col]) +
					int64(m[row*4+3])*int64(n[3*4+col]))
		}
	}
	return out
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// TransformPoint treats p as (x, y, z, 1) and keeps the resulting w for the
// perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec4 {
	one := int64(fx.One)
	x, y, z := int64(p.X), int64(p.Y), int64(p.Z)
	return Vec4{
		X: fx.Sum64(int64(m[0])*x + int64(m[1])*y + int64(m[2])*z + int64(m[3])*one),
		Y: fx.Sum64(int64(m[4])*x + int64(m[5])*y + int64(m[6])*z + int64(m[7])*one),
		Z: fx.Sum64(int64(m[8])*x + int64(m[9])*y + int64(m[10])*z + int64(m[11])*one),
		W: fx.Sum64(int64(m[12])*x + int64(m[13])*y + int64(m[14])*z + int64(m[15])*one),
	}
}

// TransformVector applies only the upper-left 3x3 block.
func (m Mat4) TransformVector(v Vec3) Vec3 {
	x, y, z := int64(v.X), int64(v.Y), int64(v.Z)
	return Vec3{
		X: fx.Sum64(int64(m[0])*x + int64(m[1])*y + int64(m[2])*z),
		Y: fx.Sum64(int64(m[4])*x + int64(m[5])*y + int64(m[6])*z),
		Z: fx.Sum64(int64(m[8])*x + int64(m[9])*y + int64(m[10])*z),
	}
}

// LookAt builds a view matrix. The camera looks down its local -Z.
func LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(eye.Sub(target))
	r := Normalize(Cross(up, f))
	u := Cross(f, r)
	return Mat4{
		r.X, r.Y, r.Z, -Dot(r, eye),
		u.X, u.Y, u.Z, -Dot(u, eye),
		f.X, f.Y, f.Z, -Dot(f, eye),
		0, 0, 0, fx.One,
	}
}

// Frustum builds an off-centre perspective projection.
//
// The plane algebra runs in float64 and is quantized once at the end; it is
// only called when the projection changes, never per vertex.
func Frustum(left, right, bottom, top, near, far fx.Fixed) Mat4 {
	l, r := fx.ToFloat(left), fx.ToFloat(right)
	b, t := fx.ToFloat(bottom), fx.ToFloat(top)
	n, f := fx.ToFloat(near), fx.ToFloat(far)
	if r == l || t == b || f == n {
		return Identity()
	}
	q := fx.FromFloat
	return Mat4{
		q(2 * n / (r - l)), 0, q((r + l) / (r - l)), 0,
		0, q(2 * n / (t - b)), q((t + b) / (t - b)), 0,
		0, 0, q(-(f + n) / (f - n)), q(-2 * f * n / (f - n)),
		0, 0, -fx.One, 0,
	}
}

// Perspective builds a symmetric projection from a vertical FOV in radians.
func Perspective(fovY, aspect, near, far fx.Fixed) Mat4 {
	if aspect == 0 {
		aspect = fx.One
	}
	top := fx.FromFloat(fx.ToFloat(near) * math.Tan(fx.ToFloat(fovY)/2))
	right := fx.FromFloat(fx.ToFloat(top) * fx.ToFloat(aspect))
	return Frustum(-right, right, -top, top, near, far)
}
