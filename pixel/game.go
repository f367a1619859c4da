// Package pixel is the windowed frontend: the same session and driver drawn with ebiten
package pixel

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/drone-runner/components"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/engine"
	"github.com/lixenwraith/drone-runner/input"
	"github.com/lixenwraith/drone-runner/render"
	"github.com/lixenwraith/drone-runner/render/renderers"
)

const (
	windowSpacing = 14
	windowSize    = 6
	glyphW        = 6 // ebitenutil debug font cell
	glyphH        = 16
)

// Game implements ebiten.Game on top of the shared driver
type Game struct {
	driver  *engine.Driver
	sound   *TonePlayer
	overlay *renderers.OverlayRenderer

	snap      engine.Snapshot
	now       time.Time
	showHelp  bool
	showDebug bool
	keys      []ebiten.Key
}

// NewGame wraps a driver; sound may be nil
func NewGame(driver *engine.Driver, sound *TonePlayer) *Game {
	g := &Game{
		driver:  driver,
		sound:   sound,
		overlay: renderers.NewOverlayRenderer(),
	}
	driver.Session().SnapshotInto(&g.snap)
	return g
}

// Apply runs one action; returns false on quit
func (g *Game) Apply(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionFlap:
		g.showHelp = false
		g.driver.Flap()
	case input.ActionTogglePause:
		g.driver.TogglePause()
	case input.ActionRestart:
		g.showHelp = false
		g.driver.Start()
	case input.ActionHelp:
		if !g.driver.Session().Active() {
			g.showHelp = !g.showHelp
		}
	case input.ActionDebug:
		g.showDebug = !g.showDebug
	case input.ActionMute:
		if g.sound != nil {
			g.sound.ToggleMute()
		}
	}
	return true
}

// Update applies pressed keys and clicks, then steps the driver once
func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if !g.Apply(ActionForKey(k)) {
			return ebiten.Termination
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.Apply(input.ActionFlap)
	}

	frame := g.driver.Step()
	g.now = frame.Now
	g.driver.Session().SnapshotInto(&g.snap)
	return nil
}

// Draw paints the field in simulation coordinates
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for i := range g.snap.Obstacles {
		g.drawObstacle(screen, &g.snap.Obstacles[i])
	}
	g.drawDrone(screen)
	g.drawHUD(screen)

	ctx := render.RenderContext{GameTime: g.now, State: &g.snap, ShowHelp: g.showHelp}
	if lines := g.overlay.Lines(ctx); len(lines) > 0 {
		drawPanel(screen, lines)
	}

	if g.showDebug {
		for i, line := range g.driver.Session().Status().Lines() {
			ebitenutil.DebugPrintAt(screen, line, 8, constants.HUDHeightPx+8+i*glyphH)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			8, int(constants.FieldHeight)-glyphH-4)
	}
}

// Layout fixes the logical screen to the field
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(constants.FieldWidth), int(constants.FieldHeight)
}

func (g *Game) drawObstacle(screen *ebiten.Image, o *components.ObstacleComponent) {
	body := colorBuilding
	if o.Passed {
		body = colorPassed
	}
	for _, r := range []struct{ y, h float64 }{
		{0, o.Top},
		{constants.FieldHeight - o.Bottom, o.Bottom},
	} {
		x, y, w, h := float32(o.X), float32(r.y), float32(o.Width), float32(r.h)
		vector.DrawFilledRect(screen, x, y, w, h, body, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorEdge, false)

		row := 0
		for wy := r.y + windowSpacing/2; wy+windowSize < r.y+r.h; wy += windowSpacing {
			col := 0
			for wx := o.X + 6; wx+windowSize < o.X+o.Width-4; wx += windowSpacing {
				if (o.ID*7+uint64(row*3+col))%4 != 0 {
					vector.DrawFilledRect(screen, float32(wx), float32(wy), windowSize, windowSize, colorWindow, false)
				}
				col++
			}
			row++
		}
	}
}

func (g *Game) drawDrone(screen *ebiten.Image) {
	d := g.snap.Drone
	cx := float32(d.X + d.Width/2)
	cy := float32(d.Y + d.Height/2)
	half := float32(d.Width / 2)

	// Tilt raises the nose when climbing
	dy := half * float32(math.Sin(g.snap.Tilt))
	frontX, frontY := cx+half*0.9, cy+dy
	rearX, rearY := cx-half*0.9, cy-dy

	vector.StrokeLine(screen, rearX, rearY, frontX, frontY, 4, colorFrame, true)
	vector.DrawFilledRect(screen, cx-half/2, cy-float32(d.Height/6), half, float32(d.Height/3), colorDrone, true)

	spin := float32(6 + 2*math.Sin(float64(g.now.UnixMilli())/40))
	vector.StrokeLine(screen, frontX-spin, frontY-6, frontX+spin, frontY-6, 2, colorDrone, true)
	vector.StrokeLine(screen, rearX-spin, rearY-6, rearX+spin, rearY-6, 2, colorDrone, true)

	vector.DrawFilledCircle(screen, frontX, frontY, 3, colorLEDFront, true)
	vector.DrawFilledCircle(screen, rearX, rearY, 3, colorLEDRear, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(constants.FieldWidth), constants.HUDHeightPx, colorHUD, false)
	hud := fmt.Sprintf("SCORE %d   BEST %d   SPEED x%.2f",
		g.snap.DisplayScore(), g.snap.Best, g.snap.Run.SpeedMultiplier)
	if g.sound != nil && g.sound.Muted() {
		hud += "   MUTED"
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 2)
}

func drawPanel(screen *ebiten.Image, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	pw := float32(width*glyphW + 32)
	ph := float32(len(lines)*glyphH + 16)
	x0 := (float32(constants.FieldWidth) - pw) / 2
	y0 := (float32(constants.FieldHeight) - ph) / 2

	vector.DrawFilledRect(screen, x0, y0, pw, ph, colorPanel, false)
	for i, l := range lines {
		lx := int(constants.FieldWidth)/2 - len([]rune(l))*glyphW/2
		ebitenutil.DebugPrintAt(screen, l, lx, int(y0)+8+i*glyphH)
	}
}
