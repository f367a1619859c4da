package render

import (
	"time"

	"github.com/lixenwraith/drone-runner/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Frame timestamp from the game clock; every cosmetic phase derives from it
	GameTime time.Time
	Delta    time.Duration

	State *engine.Snapshot

	Canvas       Canvas
	ScreenWidth  int
	ScreenHeight int

	// UI toggles owned by the frontend
	ShowHelp  bool
	ShowDebug bool
	Muted     bool
	MusicOn   bool

	// Debug lines from the status registry
	Stats []string
}

// Millis returns the frame timestamp in milliseconds as a float for phase math
func (rc *RenderContext) Millis() float64 {
	return float64(rc.GameTime.UnixNano()) / float64(time.Millisecond)
}

// TooSmall reports whether the screen cannot fit the field
func (rc *RenderContext) TooSmall(minW, minH int) bool {
	return rc.ScreenWidth < minW || rc.ScreenHeight < minH
}
