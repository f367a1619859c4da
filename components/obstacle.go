package components

import "github.com/lixenwraith/drone-runner/vmath"

// ObstacleComponent is a pair of building rectangles sharing one horizontal position
// Top + gap + Bottom equals the field height
type ObstacleComponent struct {
	ID     uint64
	X      float64
	Width  float64
	Top    float64 // Height of the upper rectangle, anchored at y=0
	Bottom float64 // Height of the lower rectangle, anchored at the field floor
	Passed bool    // Set once, when the trailing edge crosses the drone
}

// TrailingEdge returns the x-coordinate of the obstacle's right side
func (o ObstacleComponent) TrailingEdge() float64 {
	return o.X + o.Width
}

// TopRect returns the upper blocking rectangle
func (o ObstacleComponent) TopRect() vmath.Rect {
	return vmath.Rect{X: o.X, Y: 0, W: o.Width, H: o.Top}
}

// BottomRect returns the lower blocking rectangle for a field of the given height
func (o ObstacleComponent) BottomRect(fieldHeight float64) vmath.Rect {
	return vmath.Rect{X: o.X, Y: fieldHeight - o.Bottom, W: o.Width, H: o.Bottom}
}

// GapTop returns the y-coordinate where the gap begins
func (o ObstacleComponent) GapTop() float64 {
	return o.Top
}
