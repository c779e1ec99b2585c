package media

import "github.com/gopxl/beep/v2"

// output is the audio sink a Player streams into. The process has a single
// hardware output; Lock/Unlock guard every mutation of streamers it is
// currently pulling from.
type output interface {
	// Init opens the output, using sr if it was not open yet. Idempotent.
	Init(sr beep.SampleRate) error
	// SampleRate is the rate the output was opened with, or 0.
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}
