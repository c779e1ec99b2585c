package media

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// memOutput is an output whose clock is driven by the test through pull.
type memOutput struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	initErr   error
	streamers []beep.Streamer
	inits     int
}

func (o *memOutput) Init(sr beep.SampleRate) error {
	o.inits++
	if o.initErr != nil {
		return o.initErr
	}
	if o.rate == 0 {
		o.rate = sr
	}
	return nil
}

func (o *memOutput) SampleRate() beep.SampleRate { return o.rate }

func (o *memOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	o.streamers = append(o.streamers, s)
	o.mu.Unlock()
}

func (o *memOutput) Clear() {
	o.mu.Lock()
	o.streamers = nil
	o.mu.Unlock()
}

func (o *memOutput) Lock()   { o.mu.Lock() }
func (o *memOutput) Unlock() { o.mu.Unlock() }

// pull streams n samples from every playing streamer, dropping finished ones,
// and returns the mixed output.
func (o *memOutput) pull(n int) [][2]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	mix := make([][2]float64, n)
	buf := make([][2]float64, n)
	kept := o.streamers[:0]
	for _, s := range o.streamers {
		got := 0
		for got < n {
			k, ok := s.Stream(buf[got:])
			for i := got; i < got+k; i++ {
				mix[i][0] += buf[i][0]
				mix[i][1] += buf[i][1]
			}
			got += k
			if !ok {
				break
			}
		}
		if got == n {
			kept = append(kept, s)
		}
	}
	o.streamers = kept
	return mix
}

func (o *memOutput) active() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.streamers)
}
