package systems

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
)

// SpawnSystem is the obstacle generator
// It accumulates elapsed time and spawns one obstacle pair each time the interval is reached
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (sp *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update advances the spawn timer and spawns when due
func (sp *SpawnSystem) Update(s *engine.GameSession, dtMs float64) {
	s.Run.SpawnTimer += dtMs
	if s.Run.SpawnTimer < s.Run.SpawnInterval {
		return
	}
	s.Run.SpawnTimer = 0
	s.SpawnObstacle(RandomTop(s.Rand()))
}

// RandomTop draws a top height uniformly from [ObstacleMinTop, ObstacleMaxTop]
func RandomTop(r engine.RandomSource) int {
	return r.Intn(constants.ObstacleMaxTop-constants.ObstacleMinTop+1) + constants.ObstacleMinTop
}
