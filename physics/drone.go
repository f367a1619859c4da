package physics

import (
	"github.com/lixenwraith/drone-runner/components"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/vmath"
)

// ApplyGravity advances the drone by one tick: v = v + g; y = y + v
// The increment is per tick, not scaled by elapsed time
func ApplyGravity(d *components.DroneComponent) {
	d.VelY += constants.Gravity
	d.Y += d.VelY
}

// Flap overrides vertical velocity with the lift impulse (not additive)
func Flap(d *components.DroneComponent) {
	d.VelY = constants.Lift
}

// Tilt maps vertical velocity to a display rotation in radians
func Tilt(velY float64) float64 {
	return vmath.Clamp(velY*constants.TiltFactor, constants.TiltMin, constants.TiltMax)
}
