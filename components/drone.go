package components

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/vmath"
)

// DroneComponent is the player-controlled entity
// X never changes during a run; leaving the field ends the run instead of clamping Y
type DroneComponent struct {
	X, Y          float64
	Width, Height float64
	VelY          float64
}

// NewDrone returns a drone at its start position with zero velocity
func NewDrone() DroneComponent {
	return DroneComponent{
		X:      constants.DroneX,
		Y:      constants.DroneStartY,
		Width:  constants.DroneWidth,
		Height: constants.DroneHeight,
	}
}

// Bounds returns the drone's bounding rectangle
func (d DroneComponent) Bounds() vmath.Rect {
	return vmath.Rect{X: d.X, Y: d.Y, W: d.Width, H: d.Height}
}
