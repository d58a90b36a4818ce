package math

import (
	gomath "math"
	"testing"
)

func TestTranslate(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{11, 21, 31}
	if got != want {
		t.Errorf("Translate().TransformPoint() = %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Scale().TransformPoint() = %v, want %v", got, want)
	}
}

func TestRotateAxisQuarterTurn(t *testing.T) {
	m := RotateAxis(Vec3{0, 1, 0}, float32(gomath.Pi/2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !approxVec3(got, want, 1e-5) {
		t.Errorf("RotateAxis(Y, pi/2).TransformPoint() = %v, want %v", got, want)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale: scale applies to the translated point.
	m := Scale(2, 2, 2).Mul(Translate(1, 0, 0))
	got := m.TransformPoint(Vec3{0, 0, 0})
	want := Vec3{2, 0, 0}
	if !approxVec3(got, want, 1e-5) {
		t.Errorf("Mul order: got %v, want %v", got, want)
	}
}

func TestRotateAxisMatchesQuat(t *testing.T) {
	// Matrix and quaternion rotations must agree on the same axis-angle.
	axis := Vec3{0.267, 0.535, 0.802}
	angle := float32(0.7)
	m := RotateAxis(axis, angle)
	q := QuatFromAxisAngle(axis, angle)
	p := Vec3{1, 2, 3}
	if !approxVec3(m.TransformPoint(p), q.Rotate(p), 1e-4) {
		t.Errorf("RotateAxis disagrees with quaternion rotation")
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 10}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	got := m.TransformPoint(eye)
	if !approxVec3(got, Vec3{}, 1e-5) {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
}
