// Package flight implements the banked-turn flight model and its
// collision floor against the terrain.
package flight

import (
	gomath "math"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/internal/gen/terrain"
	"github.com/Faultbox/skyglide/pkg/math"
)

// State holds the flying body. One State is created per session and
// mutated in place every tick; collision resets it in place too.
type State struct {
	Position math.Vec3
	Pitch    float32
	Yaw      float32
	Roll     float32
	Speed    float32
}

// Model advances a State against a height field.
type Model struct {
	cfg   config.FlightConfig
	field *terrain.Field
}

// New creates a flight model over the given field.
func New(cfg config.FlightConfig, field *terrain.Field) *Model {
	return &Model{cfg: cfg, field: field}
}

// NewState returns a State at a safe starting altitude above the field.
func (m *Model) NewState(x, z float32) *State {
	return &State{
		Position: math.Vec3{X: x, Y: m.field.MaxElevation() + 10, Z: z},
		Speed:    m.cfg.BaseSpeed,
	}
}

// Update advances the state by dt seconds. inputX and inputY are the
// normalized pointer position in [-1, 1]. Ground contact is resolved as
// a normal state correction, never an error.
func (m *Model) Update(s *State, inputX, inputY, dt float32) {
	// Attitude eases exponentially toward the pointer-derived targets
	targetPitch := inputY * m.cfg.PitchGain
	targetRoll := -inputX * m.cfg.RollGain

	blend := 1 - expf(-m.cfg.Smoothing*dt)
	s.Pitch += (targetPitch - s.Pitch) * blend
	s.Roll += (targetRoll - s.Roll) * blend

	// Banking turns the heading; roll itself never enters the
	// forward vector
	s.Yaw += -s.Roll * m.cfg.YawFactor * dt

	// Diving trades altitude for speed, climbing bleeds it off
	s.Speed = clampf(m.cfg.BaseSpeed+s.Pitch*m.cfg.SpeedGain, m.cfg.MinSpeed, m.cfg.MaxSpeed)

	forward := m.forward(s)
	s.Position = s.Position.Add(forward.Scale(s.Speed * dt))

	m.resolveFloor(s)
}

// forward derives the travel direction from yaw then pitch.
func (m *Model) forward(s *State) math.Vec3 {
	cp := cosf(s.Pitch)
	return math.Vec3{
		X: sinf(s.Yaw) * cp,
		Y: -sinf(s.Pitch),
		Z: -cosf(s.Yaw) * cp,
	}
}

// resolveFloor clamps the body above terrain or water and pitches it
// into a climb so the next tick moves away from the ground.
func (m *Model) resolveFloor(s *State) {
	ground := m.field.HeightAt(s.Position.X, s.Position.Z)
	if w := m.field.WaterLevel(); ground < w {
		ground = w
	}

	floor := ground + m.cfg.Clearance
	if s.Position.Y < floor {
		s.Position.Y = floor
		if s.Pitch > -m.cfg.ClimbRecovery {
			s.Pitch = -m.cfg.ClimbRecovery
		}
	}
}

// Forward exposes the travel direction for the camera.
func (m *Model) Forward(s *State) math.Vec3 {
	return m.forward(s)
}

func sinf(x float32) float32 { return float32(gomath.Sin(float64(x))) }
func cosf(x float32) float32 { return float32(gomath.Cos(float64(x))) }
func expf(x float32) float32 { return float32(gomath.Exp(float64(x))) }

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
