package systems

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/physics"
)

// CollisionSystem ends the run when the drone leaves the field or touches an obstacle
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (c *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update checks all obstacles; a hit ends the run and skips the remaining systems
func (c *CollisionSystem) Update(s *engine.GameSession, _ float64) {
	if physics.CheckCollisions(s.Drone, s.Obstacles, constants.FieldHeight) {
		s.End()
	}
}
