package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the night city palette
var (
	RgbBackground = tcell.NewRGBColor(8, 10, 24)     // Night sky
	RgbStarDim    = tcell.NewRGBColor(90, 90, 120)   // Far stars
	RgbStarBright = tcell.NewRGBColor(220, 220, 255) // Near stars

	RgbBuilding       = tcell.NewRGBColor(34, 38, 58)    // Tower body
	RgbBuildingEdge   = tcell.NewRGBColor(70, 78, 110)   // Tower outline
	RgbWindowLit      = tcell.NewRGBColor(255, 214, 102) // Warm lit window
	RgbWindowDark     = tcell.NewRGBColor(24, 26, 40)    // Unlit window
	RgbBuildingPassed = tcell.NewRGBColor(28, 30, 46)    // Tower already behind the drone

	RgbDroneBody  = tcell.NewRGBColor(200, 205, 215) // Hull
	RgbDroneFrame = tcell.NewRGBColor(110, 115, 130) // Arms
	RgbPropeller  = tcell.NewRGBColor(160, 160, 170) // Rotor blur
	RgbLEDFront   = tcell.NewRGBColor(80, 255, 120)  // Green nav light
	RgbLEDRear    = tcell.NewRGBColor(255, 60, 60)   // Red nav light
	RgbPoliceBlue = tcell.NewRGBColor(40, 90, 255)   // Light bar
	RgbPoliceRed  = tcell.NewRGBColor(255, 40, 40)   // Light bar

	RgbHUDText  = tcell.NewRGBColor(235, 235, 235) // HUD labels
	RgbHUDBg    = tcell.NewRGBColor(20, 22, 40)    // HUD strip
	RgbHUDBest  = tcell.NewRGBColor(255, 214, 102) // Best score
	RgbSpeedBar = tcell.NewRGBColor(80, 200, 255)  // Speed fill
	RgbSpeedMax = tcell.NewRGBColor(255, 80, 80)   // Speed at cap

	RgbOverlayTitle = tcell.NewRGBColor(120, 220, 255) // Title text
	RgbOverlayText  = tcell.NewRGBColor(220, 220, 220) // Body text
	RgbOverlayAlert = tcell.NewRGBColor(255, 90, 90)   // Game over
	RgbDebugText    = tcell.NewRGBColor(140, 255, 140) // Debug overlay
)

// Base styles
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBackground)
	StyleHUD        = tcell.StyleDefault.Background(RgbHUDBg).Foreground(RgbHUDText)
)

// Blend interpolates a -> b by t in [0, 1] in Lab space
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, cb := toColorful(a), toColorful(b)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// Dim scales a color towards the background by 1-t
func Dim(c tcell.Color, t float64) tcell.Color {
	return Blend(RgbBackground, c, t)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
