//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// beatFlashFrames is how long the beat marker stays lit.
const beatFlashFrames = 6

// Overlay draws the key help and a beat marker on top of the board.
type Overlay struct {
	width, height int
	showHelp      bool
	flash         int
	pixel         *ebiten.Image
}

// NewOverlay constructs an overlay covering a width×height board.
func NewOverlay(width, height int) *Overlay {
	o := &Overlay{width: width, height: height}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the help text and decays the beat marker.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if o.flash > 0 {
		o.flash--
	}
}

// Beat lights the beat marker.
func (o *Overlay) Beat() { o.flash = beatFlashFrames }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.flash > 0 {
		alpha := uint8(255 * o.flash / beatFlashFrames)
		o.drawRect(screen, float64(o.width-14), 6, 8, 8, color.RGBA{R: alpha, G: alpha / 2, B: 0, A: alpha})
	}
	if !o.showHelp {
		return
	}
	lines := HelpLines()
	boxH := float64(len(lines)*16 + 2*panelPadding)
	o.drawRect(screen, 0, 0, float64(o.width), boxH, color.RGBA{A: 200})
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(screen, line, face, panelPadding, panelPadding+13+i*16, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
