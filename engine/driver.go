package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/status"
)

// Frame describes one driver step
type Frame struct {
	Now    time.Time     // Game time of the frame, used for cosmetic phases
	Dt     time.Duration // Clamped elapsed game time since the previous frame
	Ticked bool          // True if the session advanced one tick
}

// Driver feeds clamped elapsed time from a pausable clock into the session, one tick per frame
// The clock is kept in step with the session phase so paused time never reaches the simulation
type Driver struct {
	session *GameSession
	clock   *PausableClock

	last    time.Time
	started bool

	statTicks *atomic.Int64
	statDt    *status.AtomicFloat
}

// NewDriver binds a session to a clock; nil clock uses the system clock
func NewDriver(session *GameSession, clock *PausableClock) *Driver {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	reg := session.Status()
	return &Driver{
		session:   session,
		clock:     clock,
		statTicks: reg.Ints.Get(status.KeyTicks),
		statDt:    reg.Floats.Get(status.KeyFrameDt),
	}
}

// Session returns the driven session
func (d *Driver) Session() *GameSession { return d.session }

// Clock returns the game clock
func (d *Driver) Clock() *PausableClock { return d.clock }

// Step runs one frame: reads the clock, clamps dt, and ticks while running
// The baseline moves every call, so idle or paused frames never accumulate into a spike
func (d *Driver) Step() Frame {
	d.syncClock()

	now := d.clock.Now()
	var dt time.Duration
	if d.started {
		dt = now.Sub(d.last)
		if dt < 0 {
			dt = 0
		}
		if dt > constants.MaxFrameStep {
			dt = constants.MaxFrameStep
		}
	}
	d.last = now
	d.started = true

	frame := Frame{Now: now, Dt: dt}
	dtMs := float64(dt) / float64(time.Millisecond)
	d.statDt.Set(dtMs)

	if d.session.Running() {
		frame.Ticked = d.session.Tick(dtMs)
		if frame.Ticked {
			d.statTicks.Add(1)
		}
	}
	return frame
}

// Flap forwards a flap action; a start resets the baseline so the first tick has no backlog
func (d *Driver) Flap() {
	wasActive := d.session.Active()
	d.session.Flap()
	if !wasActive && d.session.Running() {
		d.rebase()
	}
	d.syncClock()
}

// Start forwards an explicit start or restart
func (d *Driver) Start() bool {
	if !d.session.Start() {
		return false
	}
	d.rebase()
	d.syncClock()
	return true
}

// TogglePause forwards a pause toggle and freezes or resumes the clock
func (d *Driver) TogglePause() bool {
	ok := d.session.TogglePause()
	d.syncClock()
	return ok
}

func (d *Driver) rebase() {
	d.last = d.clock.Now()
	d.started = true
}

func (d *Driver) syncClock() {
	if d.session.Paused() {
		d.clock.Pause()
	} else {
		d.clock.Resume()
	}
}
