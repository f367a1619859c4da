package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the frame callback interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameStep caps the elapsed time handed to one tick after a stall
	MaxFrameStep = 40 * time.Millisecond

	// MaxFrameStepMs is MaxFrameStep in milliseconds
	MaxFrameStepMs = 40.0
)

// Field Constants (in field units, the coordinate space of the simulation)
const (
	FieldWidth  = 800.0
	FieldHeight = 450.0
)
