package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/vmath"
)

func TestRenderBufferBounds(t *testing.T) {
	buf := NewRenderBuffer(10, 4)
	buf.Set(-1, 0, 'x', StyleHUD)
	buf.Set(10, 0, 'x', StyleHUD)
	buf.Set(3, 2, 'x', StyleHUD)

	c, ok := buf.Get(3, 2)
	if !ok || c.Rune != 'x' {
		t.Errorf("Expected 'x' at (3,2), got %q", c.Rune)
	}
	if _, ok := buf.Get(10, 0); ok {
		t.Error("Expected out-of-bounds Get to fail")
	}

	buf.Clear()
	if c, _ := buf.Get(3, 2); c.Rune != ' ' {
		t.Errorf("Expected cleared cell, got %q", c.Rune)
	}
}

func TestRenderBufferStrings(t *testing.T) {
	buf := NewRenderBuffer(20, 2)
	end := buf.SetString(2, 0, "abc", StyleHUD)
	if end != 5 {
		t.Errorf("Expected end column 5, got %d", end)
	}

	buf.SetStringCentered(1, "abcd", StyleHUD)
	if c, _ := buf.Get(8, 1); c.Rune != 'a' {
		t.Errorf("Expected centered start at 8, got %q", c.Rune)
	}
}

func TestCanvasMapping(t *testing.T) {
	c := NewCanvas(80, 24)
	if c.Rows != 23 || c.OffsetY != constants.HUDRows {
		t.Fatalf("Expected 23 field rows below HUD, got %+v", c)
	}
	if c.Col(0) != 0 || c.Col(constants.FieldWidth-1) != 79 {
		t.Errorf("Expected field to span columns 0..79, got %d..%d", c.Col(0), c.Col(constants.FieldWidth-1))
	}
	if c.Row(0) != 1 || c.Row(constants.FieldHeight-1) != 23 {
		t.Errorf("Expected field to span rows 1..23, got %d..%d", c.Row(0), c.Row(constants.FieldHeight-1))
	}

	x0, y0, x1, y1 := c.CellRect(vmath.Rect{X: 80, Y: 201, W: 64, H: 48})
	if x0 != 8 || x1 != 15 || y0 >= y1 {
		t.Errorf("Unexpected drone cell rect %d,%d %d,%d", x0, y0, x1, y1)
	}

	// Tiny rectangles still cover one cell
	x0, _, x1, _ = c.CellRect(vmath.Rect{X: 1, Y: 1, W: 0.5, H: 0.5})
	if x1-x0 != 1 {
		t.Errorf("Expected one-cell minimum, got %d", x1-x0)
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := tcell.NewRGBColor(0, 0, 0)
	b := tcell.NewRGBColor(255, 255, 255)
	if got := Blend(a, b, 0); got != a {
		t.Errorf("Expected a at t=0, got %v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Expected b at t=1, got %v", got)
	}
	if got := Blend(a, b, 2); got != b {
		t.Errorf("Expected clamp at t>1, got %v", got)
	}
}

type recordingRenderer struct {
	name  string
	order *[]string
}

func (r recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.order = append(*r.order, r.name)
}

type hiddenRenderer struct{ recordingRenderer }

func (hiddenRenderer) IsVisible() bool { return false }

func TestOrchestratorOrderAndVisibility(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	var order []string
	o := NewRenderOrchestrator(screen)
	o.Register(recordingRenderer{"ui", &order}, PriorityUI)
	o.Register(recordingRenderer{"bg", &order}, PriorityBackground)
	o.Register(recordingRenderer{"ui2", &order}, PriorityUI)
	o.Register(hiddenRenderer{recordingRenderer{"hidden", &order}}, PriorityDebug)

	o.RenderFrame(RenderContext{GameTime: time.Unix(0, 0), ScreenWidth: 80, ScreenHeight: 24, Canvas: NewCanvas(80, 24)})

	want := []string{"bg", "ui", "ui2"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Index %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestOrchestratorTooSmall(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.Init()
	defer screen.Fini()
	screen.SetSize(20, 5)

	var order []string
	o := NewRenderOrchestrator(screen)
	o.Register(recordingRenderer{"bg", &order}, PriorityBackground)
	o.RenderFrame(RenderContext{ScreenWidth: 20, ScreenHeight: 5})

	if len(order) != 0 {
		t.Errorf("Expected no renderers on a tiny screen, got %v", order)
	}
	mainc, _, _, _ := screen.GetContent(2, 2)
	if mainc != 'e' {
		t.Errorf("Expected resize hint on the middle row, got %q", mainc)
	}
}
