package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/drone-runner/constants"
)

func TestRandomTopRange(t *testing.T) {
	r := &scriptedRand{values: []int{0}}
	if got := RandomTop(r); got != constants.ObstacleMinTop {
		t.Errorf("Expected min top %d, got %d", constants.ObstacleMinTop, got)
	}
	if r.calls[0] != 231 {
		t.Errorf("Expected Intn(231) for [40, 270], got Intn(%d)", r.calls[0])
	}

	r = &scriptedRand{values: []int{230}}
	if got := RandomTop(r); got != 270 {
		t.Errorf("Expected max top 270, got %d", got)
	}
}

func TestSpawnedObstacleGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := newSession(t, rng, nil)
	s.Start()

	for i := 0; i < 500; i++ {
		s.SpawnObstacle(RandomTop(rng))
	}
	for _, ob := range s.Obstacles {
		if ob.Top < constants.ObstacleMinTop || ob.Top > float64(constants.ObstacleMaxTop) {
			t.Errorf("Top %v out of [40, 270]", ob.Top)
		}
		if ob.Top+constants.ObstacleGap+ob.Bottom != constants.FieldHeight {
			t.Errorf("Expected top+gap+bottom == 450, got %v", ob.Top+constants.ObstacleGap+ob.Bottom)
		}
	}
}

func TestSpawnTimer(t *testing.T) {
	s := newSession(t, &scriptedRand{values: []int{60}}, nil, NewSpawnSystem())
	s.Start()

	for i := 0; i < 34; i++ {
		s.Tick(40)
	}
	if len(s.Obstacles) != 0 {
		t.Fatalf("Expected no obstacle before 1400ms, got %d", len(s.Obstacles))
	}

	s.Tick(40)
	if len(s.Obstacles) != 1 {
		t.Fatalf("Expected one obstacle at 1400ms, got %d", len(s.Obstacles))
	}
	if s.Run.SpawnTimer != 0 {
		t.Errorf("Expected timer reset to 0, got %v", s.Run.SpawnTimer)
	}
	if s.Obstacles[0].Top != 100 {
		t.Errorf("Expected top 100, got %v", s.Obstacles[0].Top)
	}
}

func TestSpawnUsesCurrentInterval(t *testing.T) {
	s := newSession(t, nil, nil, NewSpawnSystem())
	s.Start()
	s.Run.SpawnInterval = 800

	for i := 0; i < 20; i++ {
		s.Tick(40)
	}
	if len(s.Obstacles) != 1 {
		t.Errorf("Expected spawn at 800ms, got %d obstacles", len(s.Obstacles))
	}
}
