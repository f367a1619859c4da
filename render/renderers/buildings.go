package renderers

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/render"
	"github.com/lixenwraith/drone-runner/vmath"
)

const (
	windowLitRatio     = 0.45 // share of windows lit
	windowFlickerRatio = 0.04 // share of windows toggled in one flicker period
)

// BuildingsRenderer draws obstacle pairs as towers with lit windows
type BuildingsRenderer struct{}

// NewBuildingsRenderer creates a buildings renderer
func NewBuildingsRenderer() *BuildingsRenderer {
	return &BuildingsRenderer{}
}

// Render draws the top and bottom rectangle of every obstacle
func (r *BuildingsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.State == nil {
		return
	}
	flicker := uint64(ctx.GameTime.UnixNano() / int64(constants.WindowFlickerPeriod/time.Nanosecond))

	for _, ob := range ctx.State.Obstacles {
		body := render.RgbBuilding
		if ob.Passed {
			body = render.RgbBuildingPassed
		}
		r.tower(ctx, buf, ob.TopRect(), ob.ID, 0, body, flicker)
		r.tower(ctx, buf, ob.BottomRect(constants.FieldHeight), ob.ID, 1, body, flicker)
	}
}

func (r *BuildingsRenderer) tower(ctx render.RenderContext, buf *render.RenderBuffer, rect vmath.Rect, id, part uint64, body tcell.Color, flicker uint64) {
	if rect.H <= 0 {
		return
	}
	c := ctx.Canvas
	x0, y0, x1, y1 := c.CellRect(rect)

	bodyStyle := tcell.StyleDefault.Background(body).Foreground(render.RgbBuildingEdge)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !c.Contains(x, y) {
				continue
			}
			switch {
			case x == x0 || x == x1-1:
				buf.Set(x, y, '│', bodyStyle)
			case (y-y0)%2 == 1:
				// Windows sit on alternate rows, lit state keyed by tower and cell offset
				cell := hash(id, part, uint64(x-x0), uint64(y-y0))
				lit := unit(cell) < windowLitRatio
				if unit(hash(cell, flicker)) < windowFlickerRatio {
					lit = !lit
				}
				fg := render.RgbWindowDark
				if lit {
					fg = render.RgbWindowLit
				}
				buf.Set(x, y, '▪', bodyStyle.Foreground(fg))
			default:
				buf.Set(x, y, ' ', bodyStyle)
			}
		}
	}
}
