package render

import (
	"image"
	"image/color"

	"pulse-life/internal/core"
	"pulse-life/internal/theme"
)

// Surface is the drawing target the board is painted onto.
type Surface interface {
	// Clear blanks the whole surface.
	Clear()
	// FillCell paints a size×size square at the top-left corner of cell
	// (row, col) on a lattice of size+1 pixel cells.
	FillCell(row, col, size int, c color.RGBA)
}

// DrawGrid clears s and fills every cell of g once with its theme color. Each
// cell is cellSize-1 pixels wide so a one pixel gap separates neighbors.
func DrawGrid(s Surface, g *core.Grid, p theme.Palette, cellSize int) {
	s.Clear()
	if cellSize <= 0 {
		return
	}
	size := cellSize - 1
	if size <= 0 {
		size = 1
	}
	cells := g.Cells()
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			col := p.Dead
			if cells[r*g.N+c] != core.Dead {
				col = p.Live
			}
			s.FillCell(r, c, size, col)
		}
	}
}

// Canvas is a Surface backed by an RGBA image.
type Canvas struct {
	img        *image.RGBA
	cellSize   int
	background color.RGBA
}

// NewCanvas allocates a canvas for an n×n board at cellSize pixels per cell.
func NewCanvas(n, cellSize int) *Canvas {
	if cellSize <= 0 {
		cellSize = 1
	}
	side := n * cellSize
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, side, side)), cellSize: cellSize}
}

// SetBackground chooses the color Clear fills with.
func (c *Canvas) SetBackground(bg color.RGBA) { c.background = bg }

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pix exposes the raw RGBA bytes.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// CellSize returns the lattice pitch in pixels.
func (c *Canvas) CellSize() int { return c.cellSize }

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	fillRGBA(c.img.Pix, c.background)
}

// FillCell paints a square at the origin of cell (row, col), clipped to the
// canvas bounds.
func (c *Canvas) FillCell(row, col, size int, fill color.RGBA) {
	rect := image.Rect(col*c.cellSize, row*c.cellSize, col*c.cellSize+size, row*c.cellSize+size)
	rect = rect.Intersect(c.img.Rect)
	if rect.Empty() {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		start := c.img.PixOffset(rect.Min.X, y)
		fillRGBA(c.img.Pix[start:start+4*rect.Dx()], fill)
	}
}

// fillRGBA writes col into every pixel of buf.
func fillRGBA(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
