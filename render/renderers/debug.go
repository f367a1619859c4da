package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/render"
)

// DebugRenderer lists status registry metrics in the top-left of the field
type DebugRenderer struct{}

// NewDebugRenderer creates a debug renderer
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// Render
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.ShowDebug {
		return
	}
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbDebugText)
	for i, line := range ctx.Stats {
		y := constants.HUDRows + i
		if y >= ctx.ScreenHeight {
			return
		}
		buf.SetString(1, y, line, style)
	}
}
