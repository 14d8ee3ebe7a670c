package audio

import "time"

// Beat detection defaults.
const (
	DefaultThreshold = 0.6
	DefaultCooldown  = 150 * time.Millisecond
)

// BeatDetector reports peaks in a stream of low-band energy readings. A peak
// is a reading above Threshold at least Cooldown after the previous peak.
type BeatDetector struct {
	Threshold float64
	Cooldown  time.Duration

	last  time.Duration
	fired bool
}

// NewBeatDetector returns a detector with the given threshold and cooldown.
// Non-positive values fall back to the defaults.
func NewBeatDetector(threshold float64, cooldown time.Duration) *BeatDetector {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &BeatDetector{Threshold: threshold, Cooldown: cooldown}
}

// Observe feeds one reading taken at now and reports whether it is a peak.
func (d *BeatDetector) Observe(now time.Duration, energy float64) bool {
	if energy <= d.Threshold {
		return false
	}
	if d.fired && now-d.last < d.Cooldown {
		return false
	}
	d.last = now
	d.fired = true
	return true
}

// Reset forgets the previous peak.
func (d *BeatDetector) Reset() {
	d.fired = false
	d.last = 0
}

// EnergySource is anything that can report current low-band energy.
type EnergySource interface {
	Playing() bool
	Energy() float64
}

// Monitor polls an EnergySource once per frame and feeds a BeatDetector.
type Monitor struct {
	src      EnergySource
	detector *BeatDetector
}

// NewMonitor ties src to detector.
func NewMonitor(src EnergySource, detector *BeatDetector) *Monitor {
	return &Monitor{src: src, detector: detector}
}

// Poll reads the source at now and reports a beat. Silent or paused sources
// never beat.
func (m *Monitor) Poll(now time.Duration) bool {
	if m == nil || m.src == nil || !m.src.Playing() {
		return false
	}
	return m.detector.Observe(now, m.src.Energy())
}
