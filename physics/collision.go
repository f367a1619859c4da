package physics

import "github.com/lixenwraith/drone-runner/components"

// OutOfBounds reports whether the drone touches or leaves the ceiling or floor
func OutOfBounds(d components.DroneComponent, fieldHeight float64) bool {
	return d.Y <= 0 || d.Y+d.Height >= fieldHeight
}

// HitsObstacle reports whether the drone overlaps either rectangle of the obstacle
func HitsObstacle(d components.DroneComponent, o components.ObstacleComponent, fieldHeight float64) bool {
	b := d.Bounds()
	return b.Intersects(o.TopRect()) || b.Intersects(o.BottomRect(fieldHeight))
}

// CheckCollisions tests field bounds, then every active obstacle
// No spatial pruning: obstacle counts stay in single digits
func CheckCollisions(d components.DroneComponent, obstacles []components.ObstacleComponent, fieldHeight float64) bool {
	if OutOfBounds(d, fieldHeight) {
		return true
	}
	for i := range obstacles {
		if HitsObstacle(d, obstacles[i], fieldHeight) {
			return true
		}
	}
	return false
}
