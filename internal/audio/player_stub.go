//go:build !ebiten

package audio

import "log/slog"

// Player is a placeholder used when the ebiten build tag is absent.
type Player struct{}

// Open always fails without the ebiten build tag.
func Open(string, int, *slog.Logger) (*Player, error) { return nil, ErrUnsupported }

// Play is a no-op in headless builds.
func (p *Player) Play() {}

// Pause is a no-op in headless builds.
func (p *Player) Pause() {}

// Toggle is a no-op in headless builds.
func (p *Player) Toggle() {}

// Playing always reports false in headless builds.
func (p *Player) Playing() bool { return false }

// SetVolume is a no-op in headless builds.
func (p *Player) SetVolume(float64) {}

// Volume returns zero in headless builds.
func (p *Player) Volume() float64 { return 0 }

// Rewind is a no-op in headless builds.
func (p *Player) Rewind() error { return nil }

// Energy returns zero in headless builds.
func (p *Player) Energy() float64 { return 0 }

// Close is a no-op in headless builds.
func (p *Player) Close() error { return nil }
