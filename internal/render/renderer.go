//go:build ebiten

package render

import (
	"pulse-life/internal/core"
	"pulse-life/internal/theme"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter paints the board into a Canvas and uploads it to a GPU image.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
	dirty  bool
}

// NewGridPainter allocates a painter for an n×n board drawn at cellSize pixels
// per cell.
func NewGridPainter(n, cellSize int) *GridPainter {
	canvas := NewCanvas(n, cellSize)
	bounds := canvas.Image().Bounds()
	return &GridPainter{
		canvas: canvas,
		img:    ebiten.NewImage(bounds.Dx(), bounds.Dy()),
		dirty:  true,
	}
}

// Invalidate forces the next Blit to repaint.
func (gp *GridPainter) Invalidate() { gp.dirty = true }

// Blit repaints the board if it changed and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, th theme.Theme) {
	if gp.dirty {
		p := th.Palette()
		gp.canvas.SetBackground(p.Background)
		DrawGrid(gp.canvas, g, p, gp.canvas.CellSize())
		gp.img.WritePixels(gp.canvas.Pix())
		gp.dirty = false
	}
	dst.DrawImage(gp.img, nil)
}

// Size returns the pixel dimensions of the painted board.
func (gp *GridPainter) Size() (int, int) {
	b := gp.canvas.Image().Bounds()
	return b.Dx(), b.Dy()
}

// CellSize returns the pixel pitch of one cell.
func (gp *GridPainter) CellSize() int { return gp.canvas.CellSize() }
