package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/render"
)

// OverlayRenderer draws the title, help, pause and game over panels
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Lines returns the centered panel text for the current frame; nil while running
func (r *OverlayRenderer) Lines(ctx render.RenderContext) []string {
	if ctx.State == nil {
		return nil
	}
	switch ctx.State.Phase {
	case engine.PhaseIdle:
		if ctx.ShowHelp {
			return append([]string{constants.TitleText, ""}, constants.HelpLines...)
		}
		return []string{constants.TitleText, "", constants.StartHint, "H for help"}
	case engine.PhasePaused:
		return []string{constants.PausedText, "", constants.ResumeHint}
	case engine.PhaseEnded:
		return []string{
			constants.GameOverText,
			"",
			fmt.Sprintf("SCORE %d", ctx.State.Run.FinalScore),
			fmt.Sprintf("BEST  %d", ctx.State.Best),
			"",
			constants.RestartHint,
		}
	}
	return nil
}

// Render draws a framed panel in the middle of the field
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := r.Lines(ctx)
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x0 := (ctx.ScreenWidth - width) / 2
	y0 := constants.HUDRows + (ctx.ScreenHeight-constants.HUDRows-height)/2

	panel := tcell.StyleDefault.Background(render.RgbHUDBg).Foreground(render.RgbOverlayText)
	buf.Fill(x0, y0, x0+width, y0+height, ' ', panel)

	titleColor := render.RgbOverlayTitle
	if ctx.State.Phase == engine.PhaseEnded {
		titleColor = render.RgbOverlayAlert
	}
	for i, l := range lines {
		style := panel
		if i == 0 {
			style = panel.Foreground(titleColor).Bold(true)
		}
		buf.SetStringCentered(y0+1+i, l, style)
	}
}
