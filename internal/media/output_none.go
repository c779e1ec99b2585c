//go:build !((linux && cgo) || windows || darwin)

package media

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// AudioAvailable indicates whether this build can produce sound.
const AudioAvailable = false

// noOutput backs builds without a speaker: every Play is rejected with
// ErrAudioUnavailable, loading and seeking still work.
type noOutput struct {
	mu sync.Mutex
}

func defaultOutput() output { return &noOutput{} }

func (o *noOutput) Init(beep.SampleRate) error  { return ErrAudioUnavailable }
func (o *noOutput) SampleRate() beep.SampleRate { return 0 }
func (o *noOutput) Play(beep.Streamer)          {}
func (o *noOutput) Clear()                      {}
func (o *noOutput) Lock()                       { o.mu.Lock() }
func (o *noOutput) Unlock()                     { o.mu.Unlock() }
