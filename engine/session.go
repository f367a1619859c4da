package engine

import (
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/drone-runner/components"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/persistence"
	"github.com/lixenwraith/drone-runner/physics"
	"github.com/lixenwraith/drone-runner/status"
)

// RandomSource supplies obstacle placement randomness; *rand.Rand satisfies it
type RandomSource interface {
	Intn(n int) int
}

// PhaseListener observes lifecycle transitions
type PhaseListener func(from, to Phase)

// RunState holds the per-run counters, reset on every start
type RunState struct {
	SpawnTimer      float64 // ms accumulated since the last spawn
	SpawnInterval   float64 // ms
	BaseSpeed       float64 // field units per tick
	SpeedMultiplier float64
	PassedCount     int
	Score           float64
	FinalScore      int
	Ticks           uint64
	ElapsedMs       float64 // sum of dt over completed ticks
}

// NewRunState returns the counters of a fresh run
func NewRunState() RunState {
	return RunState{
		SpawnInterval:   constants.SpawnIntervalBaseMs,
		BaseSpeed:       constants.BaseSpeed,
		SpeedMultiplier: 1,
	}
}

// Speed returns the current horizontal scroll per tick
func (r RunState) Speed() float64 {
	return r.BaseSpeed * r.SpeedMultiplier
}

// SessionConfig carries the session collaborators; zero fields get defaults
type SessionConfig struct {
	Scores *persistence.Scoreboard
	Sound  SoundTrigger
	Rand   RandomSource
	Status *status.Registry
}

// GameSession owns every entity and counter of the game
// Single-threaded: all methods must be called from the loop goroutine
type GameSession struct {
	Drone     components.DroneComponent
	Obstacles []components.ObstacleComponent
	Run       RunState

	phase     Phase
	scores    *persistence.Scoreboard
	sound     SoundTrigger
	rng       RandomSource
	status    *status.Registry
	systems   []System
	listeners []PhaseListener
	nextID    uint64

	statRuns    *atomic.Int64
	statSpawned *atomic.Int64
	statPassed  *atomic.Int64
	statActive  *atomic.Int64
}

// NewGameSession creates an idle session
func NewGameSession(cfg SessionConfig) *GameSession {
	if cfg.Scores == nil {
		cfg.Scores = persistence.NewScoreboard(nil, constants.BestScoreKey)
	}
	if cfg.Sound == nil {
		cfg.Sound = silentSound{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	s := &GameSession{
		Drone:       components.NewDrone(),
		Obstacles:   make([]components.ObstacleComponent, 0, 8),
		Run:         NewRunState(),
		phase:       PhaseIdle,
		scores:      cfg.Scores,
		sound:       cfg.Sound,
		rng:         cfg.Rand,
		status:      cfg.Status,
		statRuns:    cfg.Status.Ints.Get(status.KeyRuns),
		statSpawned: cfg.Status.Ints.Get(status.KeySpawned),
		statPassed:  cfg.Status.Ints.Get(status.KeyPassed),
		statActive:  cfg.Status.Ints.Get(status.KeyObstaclesActive),
	}
	return s
}

// AddSystem appends a system to the tick pipeline
func (s *GameSession) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// OnPhaseChange registers a lifecycle listener
func (s *GameSession) OnPhaseChange(l PhaseListener) {
	s.listeners = append(s.listeners, l)
}

// Phase returns the lifecycle state
func (s *GameSession) Phase() Phase { return s.phase }

// Running reports whether ticks advance the simulation
func (s *GameSession) Running() bool { return s.phase == PhaseRunning }

// Paused reports whether the run is frozen
func (s *GameSession) Paused() bool { return s.phase == PhasePaused }

// Active reports whether a run is in progress (running or paused)
func (s *GameSession) Active() bool {
	return s.phase == PhaseRunning || s.phase == PhasePaused
}

// Best returns the best score
func (s *GameSession) Best() int { return s.scores.Best() }

// Sound returns the tone trigger
func (s *GameSession) Sound() SoundTrigger { return s.sound }

// Rand returns the obstacle randomness source
func (s *GameSession) Rand() RandomSource { return s.rng }

// Status returns the metric registry
func (s *GameSession) Status() *status.Registry { return s.status }

// Start resets the run state and enters Running; no-op while a run is active
func (s *GameSession) Start() bool {
	if s.Active() {
		return false
	}
	s.reset()
	s.statRuns.Add(1)
	s.transition(PhaseRunning)
	log.Printf("Run started (best %d)", s.Best())
	return true
}

// Flap applies lift while running, starts a run when idle or ended, and is ignored while paused
func (s *GameSession) Flap() {
	switch s.phase {
	case PhaseIdle, PhaseEnded:
		s.Start()
	case PhaseRunning:
		physics.Flap(&s.Drone)
		s.sound.Play(FlapTone())
	}
}

// TogglePause switches between Running and Paused; no-op in other phases
func (s *GameSession) TogglePause() bool {
	switch s.phase {
	case PhaseRunning:
		s.transition(PhasePaused)
		return true
	case PhasePaused:
		s.transition(PhaseRunning)
		return true
	}
	return false
}

// Tick runs one simulation step of dtMs milliseconds; returns false if not running
func (s *GameSession) Tick(dtMs float64) bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.Run.Ticks++

	for _, sys := range s.systems {
		sys.Update(s, dtMs)
		if s.phase != PhaseRunning {
			break
		}
	}

	s.statActive.Store(int64(len(s.Obstacles)))
	return true
}

// End finalizes and persists the score and enters Ended; no-op without an active run
func (s *GameSession) End() {
	if s.phase != PhaseRunning && s.phase != PhasePaused {
		return
	}

	s.Run.FinalScore = persistence.Finalize(s.Run.Score)
	improved := s.scores.Submit(s.Run.FinalScore)
	s.sound.Play(CrashTone())

	s.transition(PhaseEnded)

	log.Printf("Run ended: score %d, passed %d, ticks %d, elapsed %.0fms, new best %v",
		s.Run.FinalScore, s.Run.PassedCount, s.Run.Ticks, s.Run.ElapsedMs, improved)
}

// SpawnObstacle appends an obstacle at the spawn edge with the given top height
// Bottom height is derived so top + gap + bottom equals the field height
func (s *GameSession) SpawnObstacle(top int) {
	s.nextID++
	s.Obstacles = append(s.Obstacles, components.ObstacleComponent{
		ID:     s.nextID,
		X:      constants.ObstacleSpawnX,
		Width:  constants.ObstacleWidth,
		Top:    float64(top),
		Bottom: constants.FieldHeight - float64(top) - constants.ObstacleGap,
	})
	s.statSpawned.Add(1)
}

// RecordPass marks obstacle i passed and awards the bonus; repeated calls are ignored
func (s *GameSession) RecordPass(i int) bool {
	ob := &s.Obstacles[i]
	if ob.Passed {
		return false
	}
	ob.Passed = true
	s.Run.PassedCount++
	s.Run.Score += constants.PassBonus
	s.statPassed.Add(1)
	s.sound.Play(PassTone(s.Run.PassedCount))
	return true
}

func (s *GameSession) reset() {
	s.Drone = components.NewDrone()
	s.Obstacles = s.Obstacles[:0]
	s.Run = NewRunState()
	s.statActive.Store(0)
}

func (s *GameSession) transition(to Phase) {
	from := s.phase
	if !CanTransition(from, to) {
		// Programming defect: lifecycle methods guard every call site
		panic("engine: illegal phase transition " + from.String() + " -> " + to.String())
	}
	s.phase = to
	for _, l := range s.listeners {
		l(from, to)
	}
}
