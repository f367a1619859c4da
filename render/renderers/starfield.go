package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/render"
)

// StarfieldRenderer draws parallax stars drifting left with the frame clock
type StarfieldRenderer struct {
	Enabled bool
}

// NewStarfieldRenderer creates an enabled starfield
func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{Enabled: true}
}

// IsVisible implements render.VisibilityToggle
func (r *StarfieldRenderer) IsVisible() bool {
	return r.Enabled
}

// Render places each star at a position derived only from its index and the frame time
func (r *StarfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := ctx.Canvas
	frames := ctx.Millis() / float64(constants.FrameUpdateInterval.Milliseconds())

	for i := 0; i < constants.StarCount; i++ {
		h := hash(uint64(i))
		depth := unit(hash(h, 1))
		speed := constants.StarSpeedMin + depth*constants.StarSpeedRange

		x := math.Mod(unit(h)*constants.FieldWidth-frames*speed, constants.FieldWidth)
		if x < 0 {
			x += constants.FieldWidth
		}
		y := unit(hash(h, 2)) * constants.FieldHeight

		col, row := c.Col(x), c.Row(y)
		if !c.Contains(col, row) {
			continue
		}

		glyph := '.'
		if depth > 0.75 {
			glyph = '*'
		}
		fg := render.Blend(render.RgbStarDim, render.RgbStarBright, depth)
		buf.Set(col, row, glyph, tcell.StyleDefault.Background(render.RgbBackground).Foreground(fg))
	}
}
