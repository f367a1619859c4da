package render

import (
	"math"

	"github.com/lixenwraith/drone-runner/constants"
	"github.com/lixenwraith/drone-runner/vmath"
)

// Canvas maps field units onto the terminal cells below the HUD
type Canvas struct {
	OffsetY int // First field row on screen
	Cols    int
	Rows    int
	ScaleX  float64 // Cells per field unit
	ScaleY  float64
}

// NewCanvas fits the whole field into a screen of width x height cells
func NewCanvas(width, height int) Canvas {
	rows := max(0, height-constants.HUDRows)
	cols := max(0, width)
	return Canvas{
		OffsetY: constants.HUDRows,
		Cols:    cols,
		Rows:    rows,
		ScaleX:  float64(cols) / constants.FieldWidth,
		ScaleY:  float64(rows) / constants.FieldHeight,
	}
}

// Col maps a field x to a screen column
func (c Canvas) Col(x float64) int {
	return int(math.Floor(x * c.ScaleX))
}

// Row maps a field y to a screen row
func (c Canvas) Row(y float64) int {
	return c.OffsetY + int(math.Floor(y*c.ScaleY))
}

// CellRect returns the half-open screen cell range covered by a field rectangle
// Non-empty rectangles cover at least one cell
func (c Canvas) CellRect(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = c.Col(r.X)
	y0 = c.Row(r.Y)
	x1 = int(math.Ceil(r.Right() * c.ScaleX))
	y1 = c.OffsetY + int(math.Ceil(r.Bottom()*c.ScaleY))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

// Contains reports whether a screen cell is inside the field area
func (c Canvas) Contains(col, row int) bool {
	return col >= 0 && col < c.Cols && row >= c.OffsetY && row < c.OffsetY+c.Rows
}
