package systems

import (
	"testing"

	"github.com/lixenwraith/drone-runner/constants"
)

func TestDifficultyBoundsAndMonotonicity(t *testing.T) {
	prevMult := SpeedMultiplier(0)
	prevInterval := SpawnInterval(0)
	if prevMult != 1 || prevInterval != 1400 {
		t.Fatalf("Expected base 1 / 1400, got %v / %v", prevMult, prevInterval)
	}

	for passed := 1; passed <= 500; passed++ {
		mult := SpeedMultiplier(passed)
		interval := SpawnInterval(passed)

		if mult < 1 || mult > constants.SpeedMultiplierMax {
			t.Errorf("passed=%d: multiplier %v out of [1, 2.6]", passed, mult)
		}
		if interval < constants.SpawnIntervalMinMs || interval > constants.SpawnIntervalBaseMs {
			t.Errorf("passed=%d: interval %v out of [800, 1400]", passed, interval)
		}
		if mult < prevMult {
			t.Errorf("passed=%d: multiplier decreased %v -> %v", passed, prevMult, mult)
		}
		if interval > prevInterval {
			t.Errorf("passed=%d: interval increased %v -> %v", passed, prevInterval, interval)
		}
		prevMult, prevInterval = mult, interval
	}
}

func TestDifficultyAtHundredPasses(t *testing.T) {
	if got := SpeedMultiplier(100); got != 2.6 {
		t.Errorf("Expected multiplier 2.6, got %v", got)
	}
	if got := SpawnInterval(100); got != 800 {
		t.Errorf("Expected interval 800, got %v", got)
	}
}

func TestDifficultySystemRecomputesEveryTick(t *testing.T) {
	s := newSession(t, nil, nil, NewDifficultySystem())
	s.Start()

	s.Run.PassedCount = 10
	s.Tick(16)
	if s.Run.SpeedMultiplier != SpeedMultiplier(10) || s.Run.SpawnInterval != 1220 {
		t.Errorf("Expected ramp for 10 passes, got %v / %v", s.Run.SpeedMultiplier, s.Run.SpawnInterval)
	}
}
