package systems

import (
	"math"

	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
)

// SpeedMultiplier returns 1 + min(1.6, passed*0.035)
func SpeedMultiplier(passed int) float64 {
	return 1 + math.Min(constants.SpeedMultiplierCap, float64(passed)*constants.SpeedMultiplierStep)
}

// SpawnInterval returns 1400 - min(600, passed*18) in milliseconds
func SpawnInterval(passed int) float64 {
	return constants.SpawnIntervalBaseMs - math.Min(constants.SpawnIntervalCapMs, float64(passed)*constants.SpawnIntervalStepMs)
}

// DifficultySystem recomputes the ramp from the pass count every tick
type DifficultySystem struct{}

// NewDifficultySystem creates a new difficulty system
func NewDifficultySystem() *DifficultySystem {
	return &DifficultySystem{}
}

// Priority returns the system's priority
func (d *DifficultySystem) Priority() int {
	return constants.PriorityDifficulty
}

// Update
func (d *DifficultySystem) Update(s *engine.GameSession, _ float64) {
	s.Run.SpeedMultiplier = SpeedMultiplier(s.Run.PassedCount)
	s.Run.SpawnInterval = SpawnInterval(s.Run.PassedCount)
}
