package pixel

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/render"
)

// RGBA converts a palette color to an opaque image color
func RGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

var (
	colorBackground = RGBA(render.RgbBackground)
	colorBuilding   = RGBA(render.RgbBuilding)
	colorPassed     = RGBA(render.RgbBuildingPassed)
	colorEdge       = RGBA(render.RgbBuildingEdge)
	colorWindow     = RGBA(render.RgbWindowLit)
	colorDrone      = RGBA(render.RgbDroneBody)
	colorFrame      = RGBA(render.RgbDroneFrame)
	colorLEDFront   = RGBA(render.RgbLEDFront)
	colorLEDRear    = RGBA(render.RgbLEDRear)
	colorHUD        = RGBA(render.RgbHUDBg)
	colorPanel      = color.RGBA{R: 20, G: 22, B: 40, A: 0xd0}
)
