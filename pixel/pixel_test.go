package pixel

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/input"
	"github.com/lixenwraith/drone-runner/render"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want input.Action
	}{
		{ebiten.KeySpace, input.ActionFlap},
		{ebiten.KeyArrowUp, input.ActionFlap},
		{ebiten.KeyP, input.ActionTogglePause},
		{ebiten.KeyEnter, input.ActionRestart},
		{ebiten.KeyEscape, input.ActionQuit},
		{ebiten.KeyZ, input.ActionNone},
	}
	for _, tt := range tests {
		if got := ActionForKey(tt.key); got != tt.want {
			t.Errorf("Expected %s for key %v, got %s", tt.want, tt.key, got)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(render.RgbWindowLit)
	if c.R != 255 || c.G != 214 || c.B != 102 || c.A != 0xff {
		t.Errorf("Expected opaque (255,214,102), got %v", c)
	}
}

func TestGameApply(t *testing.T) {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	session := engine.NewGameSession(engine.SessionConfig{})
	g := NewGame(engine.NewDriver(session, engine.NewPausableClock(mock)), nil)

	g.Apply(input.ActionHelp)
	if !g.showHelp {
		t.Error("Expected help on idle screen")
	}
	g.Apply(input.ActionFlap)
	if session.Phase() != engine.PhaseRunning || g.showHelp {
		t.Errorf("Expected running without help, got %s help=%v", session.Phase(), g.showHelp)
	}
	g.Apply(input.ActionTogglePause)
	if session.Phase() != engine.PhasePaused {
		t.Errorf("Expected Paused, got %s", session.Phase())
	}
	if g.Apply(input.ActionQuit) {
		t.Error("Expected quit to return false")
	}
}
