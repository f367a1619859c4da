package systems

import (
	"testing"

	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/persistence"
)

// scriptedRand returns queued values in order, repeating the last one
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

func newSession(t *testing.T, rng engine.RandomSource, store persistence.Store, list ...engine.System) *engine.GameSession {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{}
	}
	if store == nil {
		store = persistence.NewMemoryStore()
	}
	s := engine.NewGameSession(engine.SessionConfig{
		Scores: persistence.NewScoreboard(store, constants.BestScoreKey),
		Rand:   rng,
	})
	for _, sys := range list {
		s.AddSystem(sys)
	}
	return s
}
