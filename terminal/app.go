package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/core"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/input"
	"github.com/lixenwraith/drone-runner/render"
	"github.com/lixenwraith/drone-runner/render/renderers"
	"github.com/lixenwraith/drone-runner/status"
)

// AudioControl is the subset of the sound manager the UI toggles
type AudioControl interface {
	ToggleMute() bool
	Muted() bool
	ToggleMusic() bool
	MusicEnabled() bool
	PlayMusic()
	StopMusic()
}

// Options configures an App
type Options struct {
	FrameInterval time.Duration
	Keys          *input.KeyTable // nil uses the default bindings
	Audio         AudioControl    // nil disables mute and music toggles
}

// App is the terminal frontend: one goroutine applies input and steps the driver between frames
type App struct {
	screen       tcell.Screen
	driver       *engine.Driver
	mapper       *input.Mapper
	orchestrator *render.RenderOrchestrator
	audio        AudioControl
	interval     time.Duration

	showHelp  bool
	showDebug bool
	snap      engine.Snapshot

	// FPS over real time
	frames    int
	fpsWindow time.Time
	statFPS   *status.AtomicFloat
	registry  *status.Registry
}

// NewApp wires a screen to a driver with the default render pipeline
func NewApp(screen tcell.Screen, driver *engine.Driver, opts Options) *App {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}

	o := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(o)

	reg := driver.Session().Status()
	a := &App{
		screen:       screen,
		driver:       driver,
		mapper:       input.NewMapper(opts.Keys),
		orchestrator: o,
		audio:        opts.Audio,
		interval:     opts.FrameInterval,
		statFPS:      reg.Floats.Get(status.KeyFPS),
		registry:     reg,
	}

	if a.audio != nil {
		driver.Session().OnPhaseChange(a.followPhase)
		a.audio.PlayMusic()
	}
	return a
}

// followPhase plays menu music on idle screens only
func (a *App) followPhase(from, to engine.Phase) {
	switch to {
	case engine.PhaseRunning, engine.PhasePaused:
		a.audio.StopMusic()
	case engine.PhaseIdle, engine.PhaseEnded:
		a.audio.PlayMusic()
	}
}

// Run blocks until quit or ctx cancellation
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	a.fpsWindow = time.Now()
	a.Frame()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Frame()
		}
	}
}

// HandleEvent applies one tcell event; returns false on quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	if rs, ok := ev.(*tcell.EventResize); ok {
		w, h := rs.Size()
		a.orchestrator.Resize(w, h)
		return true
	}
	return a.HandleAction(a.mapper.FromEvent(ev))
}

// HandleAction applies a player action; returns false on quit
func (a *App) HandleAction(action input.Action) bool {
	session := a.driver.Session()

	switch action {
	case input.ActionQuit:
		return false
	case input.ActionFlap:
		a.showHelp = false
		a.driver.Flap()
	case input.ActionTogglePause:
		if a.driver.TogglePause() {
			log.Printf("Pause toggled: %s", session.Phase())
		}
	case input.ActionRestart:
		a.showHelp = false
		a.driver.Start()
	case input.ActionHelp:
		if !session.Active() {
			a.showHelp = !a.showHelp
		}
	case input.ActionDebug:
		a.showDebug = !a.showDebug
	case input.ActionMute:
		if a.audio != nil {
			log.Printf("Muted: %v", a.audio.ToggleMute())
		}
	case input.ActionMusic:
		if a.audio != nil {
			if a.audio.ToggleMusic() && !session.Active() {
				a.audio.PlayMusic()
			}
		}
	}
	return true
}

// Frame steps the driver once and draws the result
func (a *App) Frame() engine.Frame {
	frame := a.driver.Step()
	a.driver.Session().SnapshotInto(&a.snap)

	w, h := a.screen.Size()
	if bw, bh := a.orchestrator.Buffer().Size(); bw != w || bh != h {
		a.orchestrator.Resize(w, h)
	}
	ctx := render.RenderContext{
		GameTime:     frame.Now,
		Delta:        frame.Dt,
		State:        &a.snap,
		Canvas:       render.NewCanvas(w, h),
		ScreenWidth:  w,
		ScreenHeight: h,
		ShowHelp:     a.showHelp,
		ShowDebug:    a.showDebug,
	}
	if a.audio != nil {
		ctx.Muted = a.audio.Muted()
		ctx.MusicOn = a.audio.MusicEnabled()
	}
	if a.showDebug {
		ctx.Stats = a.registry.Lines()
	}

	a.orchestrator.RenderFrame(ctx)
	a.countFrame()
	return frame
}

func (a *App) countFrame() {
	a.frames++
	now := time.Now()
	if elapsed := now.Sub(a.fpsWindow); elapsed >= time.Second {
		a.statFPS.Set(float64(a.frames) / elapsed.Seconds())
		a.frames = 0
		a.fpsWindow = now
	}
}
