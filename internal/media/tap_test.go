package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// rampStreamer emits 1, 2, 3, ... on both channels.
type rampStreamer struct{ next float64 }

func (r *rampStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		r.next++
		samples[i] = [2]float64{r.next, r.next}
	}
	return len(samples), true
}

func (r *rampStreamer) Err() error { return nil }

func TestTapStreamer_PassesThroughWhenDetached(t *testing.T) {
	tap := &tapStreamer{}
	tap.setInner(&rampStreamer{})

	buf := make([][2]float64, 4)
	n, ok := tap.Stream(buf)

	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{4, 4}, buf[3])
	assert.Equal(t, []float64{0, 0}, tap.samples(2))
}

func TestTapStreamer_NoInnerEnds(t *testing.T) {
	tap := &tapStreamer{}
	n, ok := tap.Stream(make([][2]float64, 8))
	assert.Zero(t, n)
	assert.False(t, ok)
	assert.NoError(t, tap.Err())
}

func TestTapStreamer_RingBuffer(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		streamed int
		request  int
		want     []float64
	}{
		{"partial fill left-pads zeros", 8, 3, 5, []float64{0, 0, 1, 2, 3}},
		{"wraps keeps newest", 4, 10, 4, []float64{7, 8, 9, 10}},
		{"request fewer than size", 8, 6, 2, []float64{5, 6}},
		{"request more than size", 2, 5, 4, []float64{0, 0, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tap := &tapStreamer{}
			tap.setInner(&rampStreamer{})
			tap.attach(tt.size)
			tap.Stream(make([][2]float64, tt.streamed))
			assert.Equal(t, tt.want, tap.samples(tt.request))
		})
	}
}

func TestTapStreamer_MonoMix(t *testing.T) {
	tap := &tapStreamer{}
	tap.setInner(streamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, -0.5}
		}
		return len(samples), true
	}))
	tap.attach(2)
	tap.Stream(make([][2]float64, 2))
	assert.Equal(t, []float64{0.25, 0.25}, tap.samples(2))
}

func TestTapHandle_CloseDetachesOnce(t *testing.T) {
	tap := &tapStreamer{}
	tap.attach(4)
	calls := 0
	h := &tapHandle{tap: tap, detach: func() {
		calls++
		tap.detach()
	}}

	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
	assert.Equal(t, 1, calls)
	assert.Equal(t, []float64{0, 0}, h.Samples(2))
}

type streamerFunc func([][2]float64) (int, bool)

func (f streamerFunc) Stream(samples [][2]float64) (int, bool) { return f(samples) }
func (f streamerFunc) Err() error                              { return nil }
