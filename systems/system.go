package systems

import (
	"sort"

	"github.com/lixenwraith/drone-runner/engine"
)

// PrioritizedSystem is a tick system with a fixed position in the pipeline
type PrioritizedSystem interface {
	engine.System
	// Priority returns the system's priority (highest value = runs last)
	Priority() int
}

// Default returns the full game ruleset in tick order
func Default() []PrioritizedSystem {
	list := []PrioritizedSystem{
		NewGravitySystem(),
		NewSpawnSystem(),
		NewScrollSystem(),
		NewCullSystem(),
		NewDifficultySystem(),
		NewCollisionSystem(),
		NewScoreSystem(),
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority() < list[j].Priority()
	})
	return list
}

// Register installs the default ruleset on a session
func Register(s *engine.GameSession) {
	for _, sys := range Default() {
		s.AddSystem(sys)
	}
}
