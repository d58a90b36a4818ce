// Package camera provides the chase camera following the flight body.
package camera

import (
	gomath "math"

	"github.com/Faultbox/skyglide/pkg/math"
)

// ChaseCamera sits behind and above a moving target, oriented by the
// target's own yaw and pitch.
type ChaseCamera struct {
	Distance  float32 // Distance behind the target
	Height    float32 // Lift above the target
	LookAhead float32 // How far in front of the target to aim
}

// NewChaseCamera creates a chase camera with flight-friendly defaults.
func NewChaseCamera() *ChaseCamera {
	return &ChaseCamera{
		Distance:  14,
		Height:    5,
		LookAhead: 20,
	}
}

// Position returns the camera position for a target at pos heading
// along yaw.
func (c *ChaseCamera) Position(pos math.Vec3, yaw float32) math.Vec3 {
	back := headingXZ(yaw).Scale(-c.Distance)
	return pos.Add(back).Add(math.Vec3{Y: c.Height})
}

// ViewMatrix returns the view matrix looking past the target along its
// heading.
func (c *ChaseCamera) ViewMatrix(pos math.Vec3, yaw float32) math.Mat4 {
	eye := c.Position(pos, yaw)
	target := pos.Add(headingXZ(yaw).Scale(c.LookAhead))
	up := math.Vec3{Y: 1}
	return math.LookAt(eye, target, up)
}

// headingXZ is the horizontal travel direction for a yaw angle,
// matching the flight model's forward convention.
func headingXZ(yaw float32) math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Sin(float64(yaw))),
		Z: -float32(gomath.Cos(float64(yaw))),
	}
}
