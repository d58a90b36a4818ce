package flight

import (
	"testing"

	"github.com/Faultbox/skyglide/internal/config"
	"github.com/Faultbox/skyglide/internal/gen/terrain"
)

func testModel() *Model {
	cfg := config.Default()
	field := terrain.NewField(cfg.World, cfg.Terrain)
	return New(cfg.Flight, field)
}

func TestNewStateStartsAboveTerrain(t *testing.T) {
	m := testModel()
	s := m.NewState(0, 0)

	ground := m.field.HeightAt(0, 0)
	if s.Position.Y <= ground {
		t.Errorf("start height %g not above terrain %g", s.Position.Y, ground)
	}
	if s.Speed != m.cfg.BaseSpeed {
		t.Errorf("start speed %g, want base speed %g", s.Speed, m.cfg.BaseSpeed)
	}
}

func TestUpdateBelowGroundResolvedInOneTick(t *testing.T) {
	m := testModel()
	s := m.NewState(100, 100)

	// Force the body underground
	s.Position.Y = -50

	m.Update(s, 0, 0, 1.0/60)

	ground := m.field.HeightAt(s.Position.X, s.Position.Z)
	if w := m.field.WaterLevel(); ground < w {
		ground = w
	}
	floor := ground + m.cfg.Clearance

	if s.Position.Y < floor {
		t.Errorf("one tick left body below floor: %g < %g", s.Position.Y, floor)
	}
	// Recovery pitches the body into a climb
	if s.Pitch > -m.cfg.ClimbRecovery {
		t.Errorf("expected climb-out pitch at most %g, got %g", -m.cfg.ClimbRecovery, s.Pitch)
	}
}

func TestUpdateCollisionIsNotSticky(t *testing.T) {
	m := testModel()
	s := m.NewState(100, 100)
	s.Position.Y = -50

	// Every subsequent tick keeps the body at or above its local floor
	for i := 0; i < 120; i++ {
		m.Update(s, 0, 0, 1.0/60)

		ground := m.field.HeightAt(s.Position.X, s.Position.Z)
		if w := m.field.WaterLevel(); ground < w {
			ground = w
		}
		if s.Position.Y < ground+m.cfg.Clearance-0.001 {
			t.Fatalf("tick %d left body below floor: %g < %g", i, s.Position.Y, ground+m.cfg.Clearance)
		}
	}
}

func TestUpdateSpeedClamped(t *testing.T) {
	m := testModel()
	s := m.NewState(0, 0)

	// Full dive for a long time
	for i := 0; i < 600; i++ {
		m.Update(s, 0, 1, 1.0/60)
		if s.Speed > m.cfg.MaxSpeed {
			t.Fatalf("speed %g exceeded max %g", s.Speed, m.cfg.MaxSpeed)
		}
	}

	// Full climb for a long time
	for i := 0; i < 600; i++ {
		m.Update(s, 0, -1, 1.0/60)
		if s.Speed < m.cfg.MinSpeed {
			t.Fatalf("speed %g fell below min %g", s.Speed, m.cfg.MinSpeed)
		}
	}
}

func TestUpdateAttitudeConverges(t *testing.T) {
	m := testModel()
	s := m.NewState(0, 0)
	s.Position.Y = 500 // Keep clear of the floor

	target := m.cfg.PitchGain * 0.5
	for i := 0; i < 300; i++ {
		m.Update(s, 0, 0.5, 1.0/60)
	}

	if diff := s.Pitch - target; diff > 0.01 || diff < -0.01 {
		t.Errorf("pitch %g did not converge to target %g", s.Pitch, target)
	}
}

func TestUpdateBankedTurn(t *testing.T) {
	m := testModel()
	s := m.NewState(0, 0)
	s.Position.Y = 500

	yaw0 := s.Yaw
	for i := 0; i < 60; i++ {
		m.Update(s, 1, 0, 1.0/60)
	}

	// Pointer right rolls negative, which must turn the heading
	if s.Roll >= 0 {
		t.Errorf("expected negative roll for rightward input, got %g", s.Roll)
	}
	if s.Yaw == yaw0 {
		t.Error("roll produced no yaw change")
	}
}

func TestUpdateRollExcludedFromHeading(t *testing.T) {
	m := testModel()
	s := m.NewState(0, 0)
	s.Roll = 1.2 // Heavy bank, level pitch, fixed yaw

	f := m.Forward(s)
	if f.Y != 0 {
		t.Errorf("roll leaked into vertical travel: forward.Y = %g", f.Y)
	}
	if l := f.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("forward vector not unit length: %g", l)
	}
}

func TestUpdateDeterministic(t *testing.T) {
	m := testModel()
	a := m.NewState(10, 20)
	b := m.NewState(10, 20)

	for i := 0; i < 120; i++ {
		in := float32(i%7)/7 - 0.5
		m.Update(a, in, -in, 1.0/60)
		m.Update(b, in, -in, 1.0/60)
	}

	if *a != *b {
		t.Errorf("identical input sequences diverged: %+v vs %+v", a, b)
	}
}
