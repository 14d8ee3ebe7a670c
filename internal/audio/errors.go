// Package audio plays the optional soundtrack and turns its low-frequency
// energy into beat events.
package audio

import "errors"

// ErrUnsupported reports an audio file or build that cannot be played.
var ErrUnsupported = errors.New("audio unsupported")

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
