package renderers

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/render"
)

// HUDRenderer draws score, best, speed bar and audio state on the top row
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// SpeedFill returns the bar fill in [0, 1] for a speed multiplier
func SpeedFill(multiplier float64) float64 {
	return math.Max(0, math.Min(1, (multiplier-1)/constants.SpeedMultiplierCap))
}

// Render
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.State == nil {
		return
	}
	snap := ctx.State
	style := render.StyleHUD
	buf.Fill(0, 0, ctx.ScreenWidth, constants.HUDRows, ' ', style)

	x := buf.SetString(1, 0, fmt.Sprintf("SCORE %d", snap.DisplayScore()), style.Bold(true))
	x = buf.SetString(x+3, 0, fmt.Sprintf("BEST %d", snap.Best), style.Foreground(render.RgbHUDBest))

	x = buf.SetString(x+3, 0, "SPEED ", style)
	fill := SpeedFill(snap.Run.SpeedMultiplier)
	filled := int(math.Round(fill * constants.SpeedBarWidth))
	barColor := render.Blend(render.RgbSpeedBar, render.RgbSpeedMax, fill)
	x = buf.SetString(x, 0, strings.Repeat("█", filled), style.Foreground(barColor))
	x = buf.SetString(x, 0, strings.Repeat("░", constants.SpeedBarWidth-filled), style.Foreground(render.RgbBuildingEdge))

	var flags []string
	if ctx.Muted {
		flags = append(flags, "MUTED")
	}
	if ctx.MusicOn {
		flags = append(flags, "♪")
	}
	if len(flags) > 0 {
		label := strings.Join(flags, " ")
		buf.SetString(max(x+2, ctx.ScreenWidth-len([]rune(label))-1), 0, label, style.Foreground(tcell.ColorGray))
	}
}
