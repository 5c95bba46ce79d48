package quarkgl

import (
	"testing"

	"quarkwire/quarkgl/fx"
)

func near3(a, b Vec3, eps fx.Fixed) bool {
	return fx.Abs(a.X-b.X) <= eps && fx.Abs(a.Y-b.Y) <= eps && fx.Abs(a.Z-b.Z) <= eps
}

func TestQuatNormalizeZeroIsIdentity(t *testing.T) {
	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Fatalf("Normalize(zero quat) = %+v, want identity", got)
	}
	// Vectors use a different sentinel.
	if got := Normalize(Vec3{}); got != (Vec3{}) {
		t.Fatalf("Normalize(zero vec) = %+v, want zero", got)
	}
	if got := (Quat{W: 2 * fx.One}).Normalize(); got != QuatIdentity() {
		t.Fatalf("Normalize(2w) = %+v", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(V3(0, 0, 5*fx.One), fx.HalfPi)
	if q.X != 0 || q.Y != 0 || fx.Abs(q.Z-181) > 1 || fx.Abs(q.W-181) > 1 {
		t.Fatalf("Z90 = %+v, want ~(0,0,181,181)", q)
	}
	if got := q.Rotate(V3(fx.One, 0, 0)); !near3(got, V3(0, fx.One, 0), 3) {
		t.Fatalf("Z90·X = %+v, want ~Y", got)
	}
	if got := QuatFromAxisAngle(Vec3{}, fx.HalfPi); got != QuatIdentity() {
		t.Fatalf("zero axis = %+v, want identity", got)
	}
}

func TestQuatMulAppliesRightOperandFirst(t *testing.T) {
	qz := QuatFromAxisAngle(V3(0, 0, fx.One), fx.HalfPi)
	qx := QuatFromAxisAngle(V3(fx.One, 0, 0), fx.HalfPi)
	y := V3(0, fx.One, 0)

	// X90 sends Y to Z, and Z90 leaves Z alone.
	if got := qz.Mul(qx).Rotate(y); !near3(got, V3(0, 0, fx.One), 3) {
		t.Fatalf("(qz·qx)·Y = %+v, want ~Z", got)
	}
	// Z90 sends Y to -X, and X90 leaves X alone.
	if got := qx.Mul(qz).Rotate(y); !near3(got, V3(-fx.One, 0, 0), 3) {
		t.Fatalf("(qx·qz)·Y = %+v, want ~-X", got)
	}
}

func TestQuatIdentityMul(t *testing.T) {
	q := QuatFromAxisAngle(V3(fx.One, fx.One, 0), fx.Degrees(40))
	if got := QuatIdentity().Mul(q); got != q {
		t.Fatalf("I·q = %+v, want %+v", got, q)
	}
	if got := q.Mul(QuatIdentity()); got != q {
		t.Fatalf("q·I = %+v, want %+v", got, q)
	}
}

func TestQuatRotationMatrixShape(t *testing.T) {
	m := QuatFromAxisAngle(V3(0, fx.One, 0), fx.Degrees(30)).RotationMatrix()
	if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != fx.One {
		t.Fatalf("rotation matrix carries translation or w: %v", m)
	}
	if got := QuatIdentity().RotationMatrix(); got != Identity() {
		t.Fatalf("identity quat matrix = %v", got)
	}
}

func TestQuatConjugateUndoesRotation(t *testing.T) {
	q := QuatFromAxisAngle(V3(0, fx.One, 0), fx.Degrees(50))
	v := V3(fx.One, 0, 0)
	if got := q.Conjugate().Rotate(q.Rotate(v)); !near3(got, v, 4) {
		t.Fatalf("q*·q·v = %+v, want ~%+v", got, v)
	}
}
