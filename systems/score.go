package systems

import (
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
)

// ScoreSystem accrues continuous score from elapsed time
type ScoreSystem struct{}

// NewScoreSystem creates a new score system
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// Priority returns the system's priority (runs last)
func (sc *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

// Update adds dt*0.01 to the score and tracks elapsed run time
func (sc *ScoreSystem) Update(s *engine.GameSession, dtMs float64) {
	s.Run.Score += dtMs * constants.ScorePerMs
	s.Run.ElapsedMs += dtMs
}
