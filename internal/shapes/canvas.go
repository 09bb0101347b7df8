package shapes

import (
	"math"

	"github.com/vovakirdan/shapematch/internal/core"
)

// FillRune is the character used for filled shape cells.
const FillRune = '█'

// Viewport maps a logical canvas onto a grid of terminal cells.
type Viewport struct {
	CanvasW, CanvasH int // Logical canvas size
	Cols, Rows       int // Terminal size in cells
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.CanvasW <= 0 || v.CanvasH <= 0 || v.Cols <= 0 || v.Rows <= 0
}

// ToCanvas returns the canvas point at the center of cell (col, row).
func (v Viewport) ToCanvas(col, row int) core.Point {
	if v.Empty() {
		return core.Point{}
	}
	x := (float64(col) + 0.5) * float64(v.CanvasW) / float64(v.Cols)
	y := (float64(row) + 0.5) * float64(v.CanvasH) / float64(v.Rows)
	return core.Pt(int(x), int(y))
}

// ToCell returns the cell containing canvas point p. The result may lie
// outside the grid.
func (v Viewport) ToCell(p core.Point) (col, row int) {
	if v.Empty() {
		return 0, 0
	}
	col = int(math.Floor(float64(p.X) * float64(v.Cols) / float64(v.CanvasW)))
	row = int(math.Floor(float64(p.Y) * float64(v.Rows) / float64(v.CanvasH)))
	return col, row
}

// cellCenter returns the canvas coordinates of a cell center without
// rounding, so thin edges rasterize consistently.
func (v Viewport) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(v.CanvasW) / float64(v.Cols),
		(float64(row) + 0.5) * float64(v.CanvasH) / float64(v.Rows)
}

// Canvas is a Surface backed by a core.Screen.
type Canvas struct {
	view   Viewport
	screen *core.Screen
}

// NewCanvas wraps screen as a canvasW×canvasH drawing surface.
func NewCanvas(screen *core.Screen, canvasW, canvasH int) *Canvas {
	return &Canvas{
		view: Viewport{
			CanvasW: canvasW,
			CanvasH: canvasH,
			Cols:    screen.Width(),
			Rows:    screen.Height(),
		},
		screen: screen,
	}
}

// Viewport returns the mapping used by this canvas.
func (c *Canvas) Viewport() Viewport {
	return c.view
}

// Screen returns the underlying screen buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Fill paints every cell whose center lies inside r.
func (c *Canvas) Fill(r Region, col core.Color) {
	if c.view.Empty() {
		return
	}
	lo, hi := r.Bounds()
	minCol, minRow := c.view.ToCell(core.Pt(int(math.Floor(lo.X)), int(math.Floor(lo.Y))))
	maxCol, maxRow := c.view.ToCell(core.Pt(int(math.Ceil(hi.X)), int(math.Ceil(hi.Y))))
	minCol = core.Clamp(minCol, 0, c.view.Cols-1)
	maxCol = core.Clamp(maxCol, 0, c.view.Cols-1)
	minRow = core.Clamp(minRow, 0, c.view.Rows-1)
	maxRow = core.Clamp(maxRow, 0, c.view.Rows-1)

	for row := minRow; row <= maxRow; row++ {
		for cl := minCol; cl <= maxCol; cl++ {
			x, y := c.view.cellCenter(cl, row)
			if r.Contains(x, y) {
				c.screen.Set(cl, row, FillRune, col)
			}
		}
	}
}

// Text draws text with its first character in the cell containing at.
func (c *Canvas) Text(at core.Point, text string, style TextStyle) {
	if c.view.Empty() {
		return
	}
	col, row := c.view.ToCell(at)
	c.screen.DrawText(col, row, text, style.Color, style.Size >= 1.0)
}

// TextCentered draws text centered horizontally on the row containing y.
func (c *Canvas) TextCentered(y int, text string, style TextStyle) {
	if c.view.Empty() {
		return
	}
	_, row := c.view.ToCell(core.Pt(0, y))
	c.screen.DrawTextCentered(row, text, style.Color, style.Size >= 1.0)
}
