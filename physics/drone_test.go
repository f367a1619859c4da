package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/drone-runner/components"
)

func TestApplyGravityIsPerTick(t *testing.T) {
	d := components.NewDrone()
	startY := d.Y

	ApplyGravity(&d)
	if math.Abs(d.VelY-0.45) > 1e-9 {
		t.Errorf("Expected velocity 0.45 after one tick, got %f", d.VelY)
	}
	if math.Abs(d.Y-(startY+0.45)) > 1e-9 {
		t.Errorf("Expected y %f after one tick, got %f", startY+0.45, d.Y)
	}

	ApplyGravity(&d)
	if math.Abs(d.VelY-0.9) > 1e-9 {
		t.Errorf("Expected velocity 0.9 after two ticks, got %f", d.VelY)
	}
	if math.Abs(d.Y-(startY+1.35)) > 1e-9 {
		t.Errorf("Expected y %f after two ticks, got %f", startY+1.35, d.Y)
	}
}

func TestFlapOverridesVelocity(t *testing.T) {
	d := components.NewDrone()

	d.VelY = 12
	Flap(&d)
	if d.VelY != -9 {
		t.Errorf("Expected flap to set velocity to -9, got %f", d.VelY)
	}

	// Not additive
	Flap(&d)
	if d.VelY != -9 {
		t.Errorf("Expected repeated flap to keep velocity at -9, got %f", d.VelY)
	}

	if d.X != 80 {
		t.Errorf("Flap must not move X, got %f", d.X)
	}
}

func TestTilt(t *testing.T) {
	tests := []struct {
		vy   float64
		want float64
	}{
		{0, 0},
		{10, 0.3},
		{-9, -0.27},
		{-100, -0.6},
		{100, 0.9},
	}
	for _, tt := range tests {
		if got := Tilt(tt.vy); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Tilt(%f): expected %f, got %f", tt.vy, tt.want, got)
		}
	}
}
