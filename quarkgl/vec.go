package quarkgl

import "quarkwire/quarkgl/fx"

// Vec3 is a 3D vector of Q24.8 scalars.
type Vec3 struct {
	X, Y, Z fx.Fixed
}

// Vec4 is a homogeneous vector of Q24.8 scalars.
type Vec4 struct {
	X, Y, Z, W fx.Fixed
}

func V3(x, y, z fx.Fixed) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V3f builds a vector from floats. Meant for constants and configuration.
func V3f(x, y, z float64) Vec3 {
	return Vec3{X: fx.FromFloat(x), Y: fx.FromFloat(y), Z: fx.FromFloat(z)}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Scale(s fx.Fixed) Vec3 {
	return Vec3{fx.Mul(v.X, s), fx.Mul(v.Y, s), fx.Mul(v.Z, s)}
}

// DivScalar divides every component by s. A zero s saturates each component
// toward the extreme of its own sign.
func (v Vec3) DivScalar(s fx.Fixed) Vec3 {
	return Vec3{fx.Div(v.X, s), fx.Div(v.Y, s), fx.Div(v.Z, s)}
}

func Dot(a, b Vec3) fx.Fixed {
	return fx.Sum64(int64(a.X)*int64(b.X) + int64(a.Y)*int64(b.Y) + int64(a.Z)*int64(b.Z))
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: fx.Sum64(int64(a.Y)*int64(b.Z) - int64(a.Z)*int64(b.Y)),
		Y: fx.Sum64(int64(a.Z)*int64(b.X) - int64(a.X)*int64(b.Z)),
		Z: fx.Sum64(int64(a.X)*int64(b.Y) - int64(a.Y)*int64(b.X)),
	}
}

// Length clamps the squared sum to fx.Max before the square root.
func Length(v Vec3) fx.Fixed {
	sum := (int64(v.X)*int64(v.X) + int64(v.Y)*int64(v.Y) + int64(v.Z)*int64(v.Z)) >> fx.Shift
	if sum > int64(fx.Max) {
		sum = int64(fx.Max)
	}
	return fx.Sqrt(fx.Fixed(sum))
}

// Normalize returns the zero vector for zero-length input.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l == 0 {
		return Vec3{}
	}
	return v.DivScalar(l)
}

// AngleBetween returns the angle between a and b in radians.
//
// If either vector has zero length the result is 0. That does not mean the
// vectors are parallel; check lengths when it matters.
func AngleBetween(a, b Vec3) fx.Fixed {
	la, lb := Length(a), Length(b)
	if la == 0 || lb == 0 {
		return 0
	}
	c := fx.Div(Dot(a, b), fx.Mul(la, lb))
	return fx.Acos(fx.Clamp(c, -fx.One, fx.One))
}

// XYZ drops W.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }
