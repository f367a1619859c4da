package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/drone-runner/input"
)

// keyActions maps ebiten keys to the same actions the terminal binds by default
var keyActions = map[ebiten.Key]input.Action{
	ebiten.KeySpace:   input.ActionFlap,
	ebiten.KeyArrowUp: input.ActionFlap,
	ebiten.KeyW:       input.ActionFlap,
	ebiten.KeyK:       input.ActionFlap,
	ebiten.KeyP:       input.ActionTogglePause,
	ebiten.KeyR:       input.ActionRestart,
	ebiten.KeyEnter:   input.ActionRestart,
	ebiten.KeyH:       input.ActionHelp,
	ebiten.KeyM:       input.ActionMute,
	ebiten.KeyD:       input.ActionDebug,
	ebiten.KeyEscape:  input.ActionQuit,
	ebiten.KeyQ:       input.ActionQuit,
}

// ActionForKey returns the bound action or ActionNone
func ActionForKey(k ebiten.Key) input.Action {
	if a, ok := keyActions[k]; ok {
		return a
	}
	return input.ActionNone
}
