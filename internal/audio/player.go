//go:build ebiten

package audio

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// analysisWindow is the number of mono samples handed to LowBandEnergy.
const analysisWindow = 2048

// Player plays a music file and exposes its low-band energy.
type Player struct {
	file       *os.File
	player     *ebaudio.Player
	tap        *Tap
	sampleRate int
	cutoffHz   float64
	scratch    []float32
}

// Open decodes path (WAV or MP3) and prepares it for playback. The ebiten
// audio context is process-wide, so Open must be called at most once.
func Open(path string, sampleRate int, logger *slog.Logger) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}
	stream, err := decode(f, sampleRate, filepath.Ext(path))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	tap := NewTap(stream, analysisWindow*2)
	ctx := ebaudio.NewContext(sampleRate)
	player, err := ctx.NewPlayer(tap)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("new player: %w", err)
	}
	if logger != nil {
		logger.Info("audio loaded", "path", path, "sample_rate", sampleRate)
	}
	return &Player{
		file:       f,
		player:     player,
		tap:        tap,
		sampleRate: sampleRate,
		cutoffHz:   DefaultCutoffHz,
		scratch:    make([]float32, analysisWindow),
	}, nil
}

func decode(r io.ReadSeeker, sampleRate int, ext string) (io.ReadSeeker, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Play starts or resumes playback.
func (p *Player) Play() { p.player.Play() }

// Pause halts playback, keeping the position.
func (p *Player) Pause() { p.player.Pause() }

// Toggle switches between playing and paused.
func (p *Player) Toggle() {
	if p.player.IsPlaying() {
		p.Pause()
		return
	}
	p.Play()
}

// Playing reports whether audio is currently playing.
func (p *Player) Playing() bool { return p.player.IsPlaying() }

// SetVolume sets the volume in [0, 1].
func (p *Player) SetVolume(v float64) {
	p.player.SetVolume(clampUnit(v))
}

// Volume returns the current volume.
func (p *Player) Volume() float64 { return p.player.Volume() }

// Rewind moves playback back to the start.
func (p *Player) Rewind() error {
	if err := p.player.SetPosition(0); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}
	p.tap.Reset()
	return nil
}

// Energy analyses the most recently decoded samples.
func (p *Player) Energy() float64 {
	n := p.tap.Snapshot(p.scratch)
	if n < len(p.scratch) {
		return 0
	}
	return LowBandEnergy(p.scratch, p.sampleRate, p.cutoffHz)
}

// Close stops playback and releases the file.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		p.file.Close()
		return err
	}
	return p.file.Close()
}
