// Package terminal owns the tcell screen and runs the single-threaded terminal game loop.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/render"
)

// NewScreen initializes a tcell screen with mouse reporting and a hidden cursor
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := Setup(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Setup prepares an allocated screen; used for real and simulation screens alike
func Setup(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(render.StyleBackground)
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.Clear()
	return nil
}
