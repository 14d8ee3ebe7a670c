package life

import (
	"time"

	"pulse-life/internal/core"
)

// Life implements Conway's Game of Life on a bounded square board. It owns the
// grid, the pacing state and the random source used by Randomize.
type Life struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	pacer      *core.Pacer
	rng        *core.RNG
	generation int
}

// New returns a Life simulation with an empty board.
func New(cfg Config) *Life {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		cfg.Density = def.Density
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = def.MaxDelay
	}
	if cfg.MaxSpeed <= 0 {
		cfg.MaxSpeed = def.MaxSpeed
	}
	if cfg.Pattern == "" {
		cfg.Pattern = def.Pattern
	}
	return &Life{
		cfg:   cfg,
		cur:   core.NewGrid(cfg.Size),
		nxt:   core.NewGrid(cfg.Size),
		pacer: core.NewPacer(cfg.MaxDelay, cfg.MaxSpeed, cfg.Speed),
		rng:   core.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the board edge length.
func (l *Life) Size() int { return l.cur.N }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Population() }

// Density returns the live-cell probability used by Randomize.
func (l *Life) Density() float64 { return l.cfg.Density }

// Pacer exposes the scheduler gating Tick.
func (l *Life) Pacer() *core.Pacer { return l.pacer }

// Running reports whether ticks currently advance the board.
func (l *Life) Running() bool { return l.pacer.Running() }

// Start begins accepting ticks, marking now as the last update.
func (l *Life) Start(now time.Duration) { l.pacer.Start(now) }

// Stop halts the simulation. The board is kept.
func (l *Life) Stop() { l.pacer.Stop() }

// Tick advances one generation when the pacer says one is due and reports
// whether it did.
func (l *Life) Tick(now time.Duration) bool {
	if !l.pacer.Tick(now) {
		return false
	}
	l.Step()
	return true
}

// Step advances the simulation by one generation regardless of pacing.
func (l *Life) Step() {
	core.StepInto(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Clear stops the simulation and kills every cell.
func (l *Life) Clear() {
	l.Stop()
	l.cur.Clear()
	l.generation = 0
}

// Randomize stops the simulation and sets each cell alive with the configured
// density. Successive calls keep drawing from the same seeded stream.
func (l *Life) Randomize() {
	l.Stop()
	core.FillDensity(l.rng, l.cur.Cells(), l.cfg.Density)
	l.generation = 0
}

// Reset reseeds the random source and randomizes the board.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed)
	l.Randomize()
}

// SpawnPattern stops the simulation, clears the board and stamps p at its
// offset. Cells falling off the board are dropped.
func (l *Life) SpawnPattern(p core.Pattern) {
	l.Clear()
	p.Stamp(l.cur)
}

// SpawnDefault spawns the configured pattern, falling back to the glider gun.
func (l *Life) SpawnDefault() {
	p, ok := core.LookupPattern(l.cfg.Pattern)
	if !ok {
		p = GliderGun
	}
	l.SpawnPattern(p)
}

// Toggle flips the cell at (r, c). It may be called while running.
func (l *Life) Toggle(r, c int) bool { return l.cur.Toggle(r, c) }

// ToggleAt flips the cell under the surface-relative pixel (x, y) for a board
// drawn with cellSize pixels per cell.
func (l *Life) ToggleAt(x, y, cellSize int) bool {
	if cellSize <= 0 || x < 0 || y < 0 {
		return false
	}
	return l.Toggle(y/cellSize, x/cellSize)
}
