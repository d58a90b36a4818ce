package math

import (
	gomath "math"
	"testing"
)

func approxVec3(a, b Vec3, eps float32) bool {
	return absf(a.X-b.X) < eps && absf(a.Y-b.Y) < eps && absf(a.Z-b.Z) < eps
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := QuatIdentity().Rotate(v)
	if !approxVec3(got, v, 1e-5) {
		t.Errorf("identity rotation moved vector: got %v, want %v", got, v)
	}
}

func TestQuatRotateAroundY(t *testing.T) {
	// 90 degrees around Y maps +X onto -Z.
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(gomath.Pi/2))
	got := q.Rotate(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !approxVec3(got, want, 1e-5) {
		t.Errorf("Rotate() = %v, want %v", got, want)
	}
}

func TestQuatMulComposes(t *testing.T) {
	// Two 45-degree rotations around X equal one 90-degree rotation.
	half := QuatFromAxisAngle(Vec3{1, 0, 0}, float32(gomath.Pi/4))
	full := QuatFromAxisAngle(Vec3{1, 0, 0}, float32(gomath.Pi/2))

	v := Vec3{0, 1, 0}
	got := half.Mul(half).Rotate(v)
	want := full.Rotate(v)
	if !approxVec3(got, want, 1e-5) {
		t.Errorf("composed rotation = %v, want %v", got, want)
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0.577, 0.577, 0.577}, 1.3).Normalize()
	v := Vec3{3, -4, 12}
	got := q.Rotate(v).Length()
	want := v.Length()
	if absf(got-want) > 1e-3 {
		t.Errorf("rotation changed length: got %v, want %v", got, want)
	}
}
