package core

// Next computes the following generation of g into a freshly allocated grid.
// g is left untouched.
func Next(g *Grid) *Grid {
	out := NewGrid(g.N)
	StepInto(out, g)
	return out
}

// StepInto writes the generation after src into dst. Both grids must have the
// same size and must not share a backing buffer.
func StepInto(dst, src *Grid) {
	n := src.N
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			neighbors := src.Neighbors(r, c)
			alive := src.data[idx] == Alive
			dst.data[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				dst.data[idx] = Alive
			}
		}
	}
}
