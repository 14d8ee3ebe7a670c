package core

import "time"

// Default pacing bounds. A speed of 0 waits DefaultMaxDelay between
// generations; DefaultMaxSpeed waits DefaultMaxDelay-DefaultMaxSpeed.
const (
	DefaultMaxDelay = 550 * time.Millisecond
	DefaultMaxSpeed = 500
	DefaultSpeed    = 250
)

// Pacer gates generation advances against a user-controlled speed. It polls:
// callers feed it timestamps from whatever clock drives them and it reports
// whether a generation is due. Timestamps are offsets on a logical clock so the
// pacer never reads wall time itself.
type Pacer struct {
	maxDelay time.Duration
	maxSpeed int
	speed    int

	running bool
	last    time.Duration
}

// NewPacer constructs a stopped Pacer. Speeds are in milliseconds subtracted
// from maxDelay and are clamped to [0, maxSpeed].
func NewPacer(maxDelay time.Duration, maxSpeed, speed int) *Pacer {
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}
	if maxSpeed < 0 {
		maxSpeed = 0
	}
	p := &Pacer{maxDelay: maxDelay, maxSpeed: maxSpeed}
	p.SetSpeed(speed)
	return p
}

// Start switches to running and marks now as the last update. Starting an
// already running pacer keeps the existing mark.
func (p *Pacer) Start(now time.Duration) {
	if p.running {
		return
	}
	p.running = true
	p.last = now
}

// Stop switches to stopped. The next Tick reports false.
func (p *Pacer) Stop() { p.running = false }

// Running reports whether the pacer is accepting ticks.
func (p *Pacer) Running() bool { return p.running }

// SetSpeed changes the speed. It is safe to call from the main loop.
func (p *Pacer) SetSpeed(v int) {
	if v < 0 {
		v = 0
	}
	if v > p.maxSpeed {
		v = p.maxSpeed
	}
	p.speed = v
}

// Speed returns the current speed value.
func (p *Pacer) Speed() int { return p.speed }

// MaxSpeed returns the upper speed bound.
func (p *Pacer) MaxSpeed() int { return p.maxSpeed }

// Delay returns the minimum time between two generations at the current speed.
func (p *Pacer) Delay() time.Duration {
	d := p.maxDelay - time.Duration(p.speed)*time.Millisecond
	if d < 0 {
		return 0
	}
	return d
}

// Tick reports whether a generation should advance at now. At most one
// advance is granted per call; a late poll does not accumulate a backlog.
func (p *Pacer) Tick(now time.Duration) bool {
	if !p.running {
		return false
	}
	if now-p.last < p.Delay() {
		return false
	}
	p.last = now
	return true
}
