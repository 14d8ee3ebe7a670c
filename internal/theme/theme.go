// Package theme holds the color schemes used to paint the board.
package theme

import (
	"fmt"
	"image/color"
)

// Theme enumerates the available color schemes.
type Theme uint8

const (
	Nord Theme = iota
	Dark
	BlackYellow

	count
)

// Palette pairs the colors of live and dead cells. Background shows through
// the gap between cells.
type Palette struct {
	Live       color.RGBA
	Dead       color.RGBA
	Background color.RGBA
}

var palettes = [count]Palette{
	Nord: {
		Live:       color.RGBA{R: 0x88, G: 0xC0, B: 0xD0, A: 0xFF},
		Dead:       color.RGBA{R: 0x3B, G: 0x42, B: 0x52, A: 0xFF},
		Background: color.RGBA{R: 0x2E, G: 0x34, B: 0x40, A: 0xFF},
	},
	Dark: {
		Live:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Dead:       color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF},
		Background: color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
	},
	BlackYellow: {
		Live:       color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
		Dead:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
		Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	},
}

var names = [count]string{
	Nord:        "nord",
	Dark:        "dark",
	BlackYellow: "black-yellow",
}

// Palette returns the colors of t. Unknown values fall back to Nord.
func (t Theme) Palette() Palette {
	if t >= count {
		return palettes[Nord]
	}
	return palettes[t]
}

// Color returns the fill color for a cell state.
func (t Theme) Color(alive bool) color.RGBA {
	p := t.Palette()
	if alive {
		return p.Live
	}
	return p.Dead
}

// Next returns the theme following t, wrapping after the last one.
func (t Theme) Next() Theme {
	return (t + 1) % count
}

func (t Theme) String() string {
	if t >= count {
		return fmt.Sprintf("theme(%d)", uint8(t))
	}
	return names[t]
}

// Parse resolves a theme by name.
func Parse(name string) (Theme, error) {
	for i, n := range names {
		if n == name {
			return Theme(i), nil
		}
	}
	return Nord, fmt.Errorf("unknown theme %q", name)
}

// All lists every theme in cycling order.
func All() []Theme {
	out := make([]Theme, count)
	for i := range out {
		out[i] = Theme(i)
	}
	return out
}
