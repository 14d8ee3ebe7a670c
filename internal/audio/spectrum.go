package audio

import "math"

// DefaultCutoffHz bounds the band LowBandEnergy listens to.
const DefaultCutoffHz = 150

// LowBandEnergy returns the strongest spectral magnitude of samples between
// the first non-DC bin and cutoffHz, normalized to [0, 1]. A full-scale sine
// centered on a bin in the band yields 1. Windows too short to resolve the band
// return 0.
func LowBandEnergy(samples []float32, sampleRate int, cutoffHz float64) float64 {
	n := len(samples)
	if n < 2 || sampleRate <= 0 || cutoffHz <= 0 {
		return 0
	}
	binHz := float64(sampleRate) / float64(n)
	maxBin := int(cutoffHz / binHz)
	if maxBin > n/2 {
		maxBin = n / 2
	}
	if maxBin < 1 {
		return 0
	}

	// Hann window; its coherent gain of 0.5 is undone in the normalization.
	windowed := make([]float64, n)
	for i, s := range samples {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		windowed[i] = float64(s) * w
	}

	peak := 0.0
	for k := 1; k <= maxBin; k++ {
		var re, im float64
		step := 2 * math.Pi * float64(k) / float64(n)
		for i, v := range windowed {
			re += v * math.Cos(step*float64(i))
			im -= v * math.Sin(step*float64(i))
		}
		mag := math.Hypot(re, im) / (float64(n) / 4)
		if mag > peak {
			peak = mag
		}
	}
	if peak > 1 {
		peak = 1
	}
	return peak
}
