package systems

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/physics"
)

// GravitySystem integrates the drone once per tick; dt is ignored
type GravitySystem struct{}

// NewGravitySystem creates a new gravity system
func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

// Priority returns the system's priority
func (g *GravitySystem) Priority() int {
	return constants.PriorityGravity
}

// Update applies one gravity step
func (g *GravitySystem) Update(s *engine.GameSession, _ float64) {
	physics.ApplyGravity(&s.Drone)
}
