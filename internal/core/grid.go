package core

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid stores a square N×N board of binary cells in row-major order.
type Grid struct {
	N    int
	data []uint8
}

// NewGrid allocates an all-dead grid with n rows and n columns.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{N: n, data: make([]uint8, n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (r, c).
func (g *Grid) Index(r, c int) int { return r*g.N + c }

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.N && c >= 0 && c < g.N
}

// At returns the state of (r, c). Coordinates off the board read as dead.
func (g *Grid) At(r, c int) uint8 {
	if !g.InBounds(r, c) {
		return Dead
	}
	return g.data[g.Index(r, c)]
}

// Set writes a state to (r, c). Writes off the board are dropped.
func (g *Grid) Set(r, c int, v uint8) {
	if !g.InBounds(r, c) {
		return
	}
	if v != Dead {
		v = Alive
	}
	g.data[g.Index(r, c)] = v
}

// Toggle flips (r, c) and reports whether the coordinate was on the board.
func (g *Grid) Toggle(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}
	idx := g.Index(r, c)
	g.data[idx] ^= Alive
	return true
}

// Neighbors counts the live cells in the Moore neighborhood of (r, c).
// Positions beyond the edge are dead; the board does not wrap.
func (g *Grid) Neighbors(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		nr := r + dr
		if nr < 0 || nr >= g.N {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc := c + dc
			if nc < 0 || nc >= g.N {
				continue
			}
			n += int(g.data[nr*g.N+nc])
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	total := 0
	for _, v := range g.data {
		total += int(v)
	}
	return total
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{N: g.N, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.N != o.N {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
