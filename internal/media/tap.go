package media

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// tapStreamer sits between the pause control and the volume effect. It passes
// audio through untouched and, while an analyzer is attached, copies a mono
// mix of every sample into a ring buffer.
type tapStreamer struct {
	mu    sync.Mutex
	inner beep.Streamer
	buf   []float64
	pos   int
}

func (t *tapStreamer) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	inner := t.inner
	t.mu.Unlock()
	if inner == nil {
		return 0, false
	}

	n, ok := inner.Stream(samples)

	t.mu.Lock()
	if size := len(t.buf); size > 0 {
		for i := range n {
			t.buf[t.pos] = (samples[i][0] + samples[i][1]) / 2
			t.pos = (t.pos + 1) % size
		}
	}
	t.mu.Unlock()
	return n, ok
}

func (t *tapStreamer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inner == nil {
		return nil
	}
	return t.inner.Err()
}

func (t *tapStreamer) setInner(s beep.Streamer) {
	t.mu.Lock()
	t.inner = s
	t.mu.Unlock()
}

// attach starts capturing into a fresh ring buffer of size samples.
func (t *tapStreamer) attach(size int) {
	t.mu.Lock()
	t.buf = make([]float64, size)
	t.pos = 0
	t.mu.Unlock()
}

// detach stops capturing and drops the buffer.
func (t *tapStreamer) detach() {
	t.mu.Lock()
	t.buf = nil
	t.pos = 0
	t.mu.Unlock()
}

// samples returns the last n captured samples in chronological order.
// Returns zeros when nothing is attached.
func (t *tapStreamer) samples(n int) []float64 {
	out := make([]float64, n)
	t.mu.Lock()
	defer t.mu.Unlock()
	size := len(t.buf)
	if size == 0 {
		return out
	}
	k := min(n, size)
	start := (t.pos - k + size) % size
	// Left-pad with zeros when more samples are requested than buffered.
	for i := range k {
		out[n-k+i] = t.buf[(start+i)%size]
	}
	return out
}

// tapHandle is the Tap handed to the analyzer; closing it detaches.
type tapHandle struct {
	tap    *tapStreamer
	detach func()
	once   sync.Once
}

func (h *tapHandle) Samples(n int) []float64 {
	return h.tap.samples(n)
}

func (h *tapHandle) Close() error {
	h.once.Do(h.detach)
	return nil
}
