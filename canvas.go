package textmode

import (
	"errors"
	"image"
	"strings"
)

var ErrCanvasSize = errors.New("textmode: invalid canvas size")

// Canvas is a grid of character cells.
type Canvas struct {
	w, h  int
	cells []Cell
}

// New creates a blank canvas of the given size in cells.
func New(w, h int) (*Canvas, error) {
	if w < 0 || h < 0 {
		return nil, ErrCanvasSize
	}
	c := &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
	c.Clear()
	return c, nil
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// CellAt returns the cell at (x, y), or false when the coordinate is
// outside the canvas.
func (c *Canvas) CellAt(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Cell{}, false
	}
	return c.cells[y*c.w+x], true
}

// SetCell writes the cell at (x, y). Writes outside the canvas are
// skipped and report false.
func (c *Canvas) SetCell(x, y int, cell Cell) bool {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return false
	}
	c.cells[y*c.w+x] = cell
	return true
}

// Clear resets every cell to Blank.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Blank
	}
}

// Fill sets every cell inside r, clipped to the canvas.
func (c *Canvas) Fill(r image.Rectangle, cell Cell) {
	r = r.Intersect(image.Rect(0, 0, c.w, c.h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.cells[y*c.w+x] = cell
		}
	}
}

// Resize sets the canvas size. Content is preserved to the extent of
// the new size; newly allocated cells are blank.
func (c *Canvas) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return ErrCanvasSize
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Blank
	}
	for y := 0; y < h && y < c.h; y++ {
		for x := 0; x < w && x < c.w; x++ {
			cells[y*w+x] = c.cells[y*c.w+x]
		}
	}
	c.w, c.h, c.cells = w, h, cells
	return nil
}

// String renders the canvas glyphs row by row, without colour.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			sb.WriteRune(c.cells[y*c.w+x].Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
