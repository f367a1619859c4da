package systems

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
)

// CullSystem drops obstacles whose trailing edge has left the field
type CullSystem struct{}

// NewCullSystem creates a new cull system
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority
func (c *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update filters the obstacle slice in place, preserving spawn order
func (c *CullSystem) Update(s *engine.GameSession, _ float64) {
	kept := s.Obstacles[:0]
	for _, ob := range s.Obstacles {
		if ob.TrailingEdge() > constants.ObstacleCullX {
			kept = append(kept, ob)
		}
	}
	s.Obstacles = kept
}
