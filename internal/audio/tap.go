package audio

import (
	"encoding/binary"
	"io"
	"sync"
)

// bytesPerFrame is the size of one 16-bit little-endian stereo frame, the
// format ebiten's decoders produce.
const bytesPerFrame = 4

// Tap passes a PCM stream through unchanged while keeping the most recent
// samples, down-mixed to mono, for analysis. Read runs on the audio goroutine
// and Snapshot on the game loop, so the ring is guarded by a mutex.
type Tap struct {
	src io.ReadSeeker

	mu      sync.Mutex
	ring    []float32
	pos     int
	filled  bool
	partial []byte
}

// NewTap wraps src keeping the last window mono samples.
func NewTap(src io.ReadSeeker, window int) *Tap {
	if window <= 0 {
		window = 1024
	}
	return &Tap{src: src, ring: make([]float32, window)}
}

// Read implements io.Reader.
func (t *Tap) Read(p []byte) (int, error) {
	n, err := t.src.Read(p)
	if n > 0 {
		t.push(p[:n])
	}
	return n, err
}

// Seek implements io.Seeker and forgets captured samples.
func (t *Tap) Seek(offset int64, whence int) (int64, error) {
	pos, err := t.src.Seek(offset, whence)
	if err != nil {
		return pos, err
	}
	t.mu.Lock()
	t.reset()
	t.mu.Unlock()
	return pos, nil
}

// Reset drops captured samples.
func (t *Tap) Reset() {
	t.mu.Lock()
	t.reset()
	t.mu.Unlock()
}

func (t *Tap) reset() {
	for i := range t.ring {
		t.ring[i] = 0
	}
	t.pos = 0
	t.filled = false
	t.partial = t.partial[:0]
}

func (t *Tap) push(buf []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.partial) > 0 {
		need := bytesPerFrame - len(t.partial)
		if len(buf) < need {
			t.partial = append(t.partial, buf...)
			return
		}
		t.partial = append(t.partial, buf[:need]...)
		t.write(frameSample(t.partial))
		t.partial = t.partial[:0]
		buf = buf[need:]
	}
	for len(buf) >= bytesPerFrame {
		t.write(frameSample(buf[:bytesPerFrame]))
		buf = buf[bytesPerFrame:]
	}
	t.partial = append(t.partial, buf...)
}

func (t *Tap) write(v float32) {
	t.ring[t.pos] = v
	t.pos++
	if t.pos == len(t.ring) {
		t.pos = 0
		t.filled = true
	}
}

// Snapshot copies the most recent samples, oldest first, into dst and returns
// how many were written.
func (t *Tap) Snapshot(dst []float32) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	avail := t.pos
	if t.filled {
		avail = len(t.ring)
	}
	n := len(dst)
	if n > avail {
		n = avail
	}
	start := t.pos - n
	if start < 0 {
		start += len(t.ring)
	}
	for i := 0; i < n; i++ {
		dst[i] = t.ring[(start+i)%len(t.ring)]
	}
	return n
}

// frameSample averages the two channels of a frame into [-1, 1].
func frameSample(frame []byte) float32 {
	l := int16(binary.LittleEndian.Uint16(frame[0:2]))
	r := int16(binary.LittleEndian.Uint16(frame[2:4]))
	return (float32(l) + float32(r)) / 2 / 32768
}
