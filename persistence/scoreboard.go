package persistence

import (
	"log"
	"math"
)

// Scoreboard tracks the best score and mirrors improvements to a durable store
// Store failures never propagate: a failed read behaves as best 0, a failed
// write leaves the best unchanged
type Scoreboard struct {
	store Store
	key   string
	best  int
}

// NewScoreboard loads the best score for key from store; nil store keeps scores in memory only
func NewScoreboard(store Store, key string) *Scoreboard {
	sb := &Scoreboard{store: store, key: key}
	if store == nil {
		return sb
	}

	v, ok, err := store.Get(key)
	switch {
	case err != nil:
		log.Printf("Best score unavailable, starting from 0: %v", err)
	case ok && v > 0:
		sb.best = v
	}
	return sb
}

// Best returns the highest floored final score seen
func (sb *Scoreboard) Best() int {
	return sb.best
}

// Finalize floors a running score into a final score
func Finalize(score float64) int {
	if score <= 0 {
		return 0
	}
	return int(math.Floor(score))
}

// Submit records a final score and returns true if it beat the best and was stored
func (sb *Scoreboard) Submit(final int) bool {
	if final <= sb.best {
		return false
	}
	if sb.store != nil {
		if err := sb.store.Set(sb.key, final); err != nil {
			log.Printf("Failed to persist best score %d: %v", final, err)
			return false
		}
	}
	sb.best = final
	return true
}
