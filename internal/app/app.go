//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"pulse-life/internal/audio"
	"pulse-life/internal/render"
	"pulse-life/internal/sims/life"
	"pulse-life/internal/theme"
	"pulse-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth  = 220
	speedStep = 25
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	life    *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *slog.Logger

	player  *audio.Player
	monitor *audio.Monitor

	theme theme.Theme
	start time.Time
}

// New constructs a Game for l. player may be nil when no soundtrack is loaded.
func New(l *life.Life, cellSize int, th theme.Theme, player *audio.Player, detector *audio.BeatDetector, logger *slog.Logger) *Game {
	g := &Game{
		life:    l,
		painter: render.NewGridPainter(l.Size(), cellSize),
		logger:  logger,
		player:  player,
		theme:   th,
		start:   time.Now(),
	}
	w, h := g.painter.Size()
	g.overlay = ui.NewOverlay(w, h)

	var volume VolumeControl
	if player != nil {
		volume = player
		g.monitor = audio.NewMonitor(player, detector)
	}
	panel := NewPanel(l, volume, func() theme.Theme { return g.theme })
	g.hud = ui.NewHUD(panel, panel.Title(), hudWidth)
	return g
}

// now returns the logical clock fed to the pacer.
func (g *Game) now() time.Duration { return time.Since(g.start) }

// Update handles per-frame logic and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := g.now()
	g.handleKeys(now)
	g.handleClick()

	boardW, _ := g.painter.Size()
	g.hud.Update(boardW)
	g.overlay.Update()

	if g.life.Tick(now) {
		g.painter.Invalidate()
	}
	if g.monitor.Poll(now) {
		g.nextTheme("beat")
		g.overlay.Beat()
	}
	return nil
}

func (g *Game) handleKeys(now time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.life.Running() {
			g.life.Stop()
			g.logger.Debug("stopped", "generation", g.life.Generation())
		} else {
			g.life.Start(now)
			g.logger.Debug("started", "generation", g.life.Generation(), "delay", g.life.Pacer().Delay())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.life.Running() {
		g.life.Step()
		g.painter.Invalidate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.life.Clear()
		g.painter.Invalidate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.life.Randomize()
		g.painter.Invalidate()
		g.logger.Debug("randomized", "population", g.life.Population())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.life.SpawnDefault()
		g.painter.Invalidate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.nextTheme("key")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.life.SetIntParameter("speed", g.life.Pacer().Speed()+speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.life.SetIntParameter("speed", g.life.Pacer().Speed()-speedStep)
	}
	if g.player == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.player.Toggle()
		g.logger.Debug("music", "playing", g.player.Playing())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if err := g.player.Rewind(); err != nil {
			g.logger.Warn("rewind failed", "error", err)
		}
	}
}

func (g *Game) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.life.ToggleAt(x, y, g.painter.CellSize()) {
		g.painter.Invalidate()
	}
}

func (g *Game) nextTheme(reason string) {
	g.theme = g.theme.Next()
	g.painter.Invalidate()
	g.logger.Debug("theme changed", "theme", g.theme.String(), "reason", reason)
}

// Draw renders the board, the HUD and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Palette().Background)
	g.painter.Blit(screen, g.life.Grid(), g.theme)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
