package engine

import (
	"github.com/lixenwraith/drone-runner/components"
	"github.com/lixenwraith/drone-runner/physics"
)

// Snapshot is a read-only copy of the session for render surfaces
type Snapshot struct {
	Phase     Phase
	Drone     components.DroneComponent
	Obstacles []components.ObstacleComponent
	Run       RunState
	Best      int
	Tilt      float64
}

// Snapshot returns a fresh copy of the observable session state
func (s *GameSession) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto copies session state into snap, reusing its obstacle slice
func (s *GameSession) SnapshotInto(snap *Snapshot) {
	snap.Phase = s.phase
	snap.Drone = s.Drone
	snap.Obstacles = append(snap.Obstacles[:0], s.Obstacles...)
	snap.Run = s.Run
	snap.Best = s.scores.Best()
	snap.Tilt = physics.Tilt(s.Drone.VelY)
}

// DisplayScore returns the score shown to the player: final when ended, floored running otherwise
func (snap *Snapshot) DisplayScore() int {
	if snap.Phase == PhaseEnded {
		return snap.Run.FinalScore
	}
	if snap.Run.Score <= 0 {
		return 0
	}
	return int(snap.Run.Score)
}
