//go:build (linux && cgo) || windows || darwin

package media

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether this build can produce sound.
const AudioAvailable = true

// speakerOutput drives beep's process-wide speaker.
type speakerOutput struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
}

var sharedSpeaker = &speakerOutput{}

func defaultOutput() output { return sharedSpeaker }

func (o *speakerOutput) Init(sr beep.SampleRate) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sampleRate != 0 {
		return nil
	}
	// 100ms buffer: small enough for responsive pause and seek.
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	o.sampleRate = sr
	return nil
}

func (o *speakerOutput) SampleRate() beep.SampleRate {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sampleRate
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (o *speakerOutput) Clear()               { speaker.Clear() }
func (o *speakerOutput) Lock()                { speaker.Lock() }
func (o *speakerOutput) Unlock()              { speaker.Unlock() }
