package life

import "pulse-life/internal/core"

// Names of the built-in patterns.
const (
	PatternGliderGun = "glider-gun"
	PatternGlider    = "glider"
	PatternBlinker   = "blinker"
	PatternBlock     = "block"
)

// GliderGun is the Gosper glider gun placed at (10, 10).
var GliderGun = core.Pattern{
	Name: PatternGliderGun,
	Row:  10,
	Col:  10,
	Cells: parseRows(
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	),
}

var (
	glider  = core.Pattern{Name: PatternGlider, Row: 1, Col: 1, Cells: parseRows(".O.", "..O", "OOO")}
	blinker = core.Pattern{Name: PatternBlinker, Row: 10, Col: 10, Cells: parseRows("OOO")}
	block   = core.Pattern{Name: PatternBlock, Row: 10, Col: 10, Cells: parseRows("OO", "OO")}
)

// parseRows converts plaintext rows ('O' alive, anything else dead).
func parseRows(rows ...string) [][]uint8 {
	out := make([][]uint8, len(rows))
	for i, row := range rows {
		out[i] = make([]uint8, len(row))
		for j := 0; j < len(row); j++ {
			if row[j] == 'O' {
				out[i][j] = core.Alive
			}
		}
	}
	return out
}

func init() {
	core.RegisterPattern(GliderGun)
	core.RegisterPattern(glider)
	core.RegisterPattern(blinker)
	core.RegisterPattern(block)
}
