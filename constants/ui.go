package constants

import "time"

// HUD Layout Constants (terminal cells)
const (
	// HUDRows is the number of rows reserved above the field
	HUDRows = 1

	// SpeedBarWidth is the width of the speed multiplier bar
	SpeedBarWidth = 16

	// MinScreenWidth and MinScreenHeight below which only a resize hint is drawn
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// HUDHeightPx is the HUD strip height in the windowed frontend (pixels)
const HUDHeightPx = 20

// Decoration Constants
const (
	StarCount = 120

	// StarSpeedMin and StarSpeedRange give star drift in field units per frame
	StarSpeedMin   = 0.2
	StarSpeedRange = 0.6

	// PoliceBarPeriod is the blue/red alternation cycle of the drone light bar
	PoliceBarPeriod = 600 * time.Millisecond

	// LED pulse angular rates (radians per millisecond)
	LEDFrontRate = 0.006
	LEDRearRate  = 0.008
	LEDSideRate  = 0.0075

	// WindowFlickerPeriod is how often lit building windows may change
	WindowFlickerPeriod = 500 * time.Millisecond

	// PropellerRate is propeller spin in radians per millisecond
	PropellerRate = 0.9
)

// Overlay Text
const (
	TitleText    = "DRONE RUNNER"
	StartHint    = "SPACE / click to start"
	PausedText   = "PAUSED"
	ResumeHint   = "P to resume"
	GameOverText = "GAME OVER"
	RestartHint  = "ENTER / SPACE to restart"
	ResizeHint   = "enlarge terminal"
)

// HelpLines is the help panel content on the idle screen
var HelpLines = []string{
	"SPACE / UP / click  flap",
	"P                   pause",
	"M                   mute tones",
	"N                   menu music",
	"D                   debug info",
	"H                   close help",
	"Q / ESC             quit",
}
