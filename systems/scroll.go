package systems

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
)

// ScrollSystem moves obstacles left at the current speed and scores passes
type ScrollSystem struct{}

// NewScrollSystem creates a new scroll system
func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

// Priority returns the system's priority
func (sc *ScrollSystem) Priority() int {
	return constants.PriorityScroll
}

// Update scrolls every obstacle and records the first tick its trailing edge is behind the drone
func (sc *ScrollSystem) Update(s *engine.GameSession, _ float64) {
	speed := s.Run.Speed()
	for i := range s.Obstacles {
		ob := &s.Obstacles[i]
		ob.X -= speed
		if !ob.Passed && ob.TrailingEdge() < s.Drone.X {
			s.RecordPass(i)
		}
	}
}
