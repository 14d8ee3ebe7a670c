package core

import "sort"

// Pattern is a fixed seed layout stamped onto an empty grid at (Row, Col).
type Pattern struct {
	Name string
	Row  int
	Col  int
	// Cells holds the layout rows; any non-zero value is a live cell.
	Cells [][]uint8
}

// Stamp writes the pattern onto g at its offset, clipped to the board.
func (p Pattern) Stamp(g *Grid) {
	for i, row := range p.Cells {
		for j, v := range row {
			r, c := p.Row+i, p.Col+j
			if !g.InBounds(r, c) {
				continue
			}
			g.Set(r, c, v)
		}
	}
}

// At returns a copy of the pattern placed at (row, col).
func (p Pattern) At(row, col int) Pattern {
	p.Row, p.Col = row, col
	return p
}

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern under its name.
func RegisterPattern(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
