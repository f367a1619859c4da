package renderers

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/render"
)

var propellerFrames = []rune{'─', '╲', '│', '╱'}

// DroneRenderer draws the drone hull tilted by its vertical velocity, with rotors and lights
type DroneRenderer struct{}

// NewDroneRenderer creates a drone renderer
func NewDroneRenderer() *DroneRenderer {
	return &DroneRenderer{}
}

// pulse returns (sin(t*rate)+1)/2
func pulse(ms, rate float64) float64 {
	return (math.Sin(ms*rate) + 1) / 2
}

// Render
func (r *DroneRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.State == nil {
		return
	}
	c := ctx.Canvas
	d := ctx.State.Drone
	x0, y0, x1, y1 := c.CellRect(d.Bounds())
	if x1-x0 < 3 || y1-y0 < 2 {
		x1, y1 = max(x1, x0+3), max(y1, y0+2)
	}

	ms := ctx.Millis()
	sinTilt := math.Sin(ctx.State.Tilt)
	centerX := d.X + d.Width/2
	bg := render.RgbBackground

	// Row shift for a column so the hull leans with the tilt, nose to the right
	shift := func(col int) int {
		fieldX := (float64(col) + 0.5) / c.ScaleX
		return int(math.Round((fieldX - centerX) * sinTilt * c.ScaleY))
	}

	set := func(x, y int, ch rune, style tcell.Style) {
		if c.Contains(x, y) {
			buf.Set(x, y, ch, style)
		}
	}

	// Rotors on the top row above the outer arms
	frame := propellerFrames[int(ms*constants.PropellerRate/(math.Pi/2))%len(propellerFrames)]
	rotorStyle := tcell.StyleDefault.Background(bg).Foreground(render.RgbPropeller)
	for _, x := range []int{x0, x0 + 1, x1 - 2, x1 - 1} {
		set(x, y0+shift(x), frame, rotorStyle)
	}

	// Light bar between the rotors alternates blue and red
	barColor := render.RgbPoliceBlue
	if (time.Duration(ms*float64(time.Millisecond))/(constants.PoliceBarPeriod/2))%2 == 1 {
		barColor = render.RgbPoliceRed
	}
	barStyle := tcell.StyleDefault.Background(bg).Foreground(barColor)
	for x := x0 + 2; x < x1-2; x++ {
		set(x, y0+shift(x), '▄', barStyle)
	}

	// Hull
	hullStyle := tcell.StyleDefault.Background(render.RgbDroneBody).Foreground(render.RgbDroneFrame)
	for y := y0 + 1; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := ' '
			if y == y1-1 && (x == x0 || x == x1-1) {
				ch = '▀'
			}
			set(x, y+shift(x), ch, hullStyle)
		}
	}

	// Navigation lights: green nose, red tail, amber belly
	mid := y0 + (y1-y0)/2
	front := render.Blend(render.Dim(render.RgbLEDFront, 0.3), render.RgbLEDFront, pulse(ms, constants.LEDFrontRate))
	rear := render.Blend(render.Dim(render.RgbLEDRear, 0.3), render.RgbLEDRear, pulse(ms, constants.LEDRearRate))
	side := render.Blend(render.RgbDroneBody, render.RgbWindowLit, pulse(ms, constants.LEDSideRate))

	set(x1-1, mid+shift(x1-1), '●', hullStyle.Foreground(front))
	set(x0, mid+shift(x0), '●', hullStyle.Foreground(rear))
	cx := (x0 + x1) / 2
	set(cx, y1-1+shift(cx), '▂', hullStyle.Foreground(side))
}
