// internal/transport/state.go
package transport

import (
	"errors"
	"math"

	"github.com/llehouerou/spectra/internal/errmsg"
	"github.com/llehouerou/spectra/internal/media"
)

// ErrNoSource is returned for operations that need a loaded source.
var ErrNoSource = errors.New("no audio loaded")

// State is the transport state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePaused
	StatePlaying
	StateEnded
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// HasSource returns true if a source is set and did not fail to load.
func (s State) HasSource() bool {
	return s == StateLoading || s == StatePaused || s == StatePlaying || s == StateEnded
}

// Ready returns true once the source duration is known.
func (s State) Ready() bool {
	return s == StatePaused || s == StatePlaying || s == StateEnded
}

// Session is the displayed playback state of one mounted player.
type Session struct {
	SourceURL    string
	IsPlaying    bool
	Duration     float64 // NaN until known
	CurrentTime  float64
	Volume       float64
	IsMuted      bool
	PlaybackRate float64
}

// DurationKnown reports whether Duration holds a real value.
func (s Session) DurationKnown() bool {
	return !math.IsNaN(s.Duration)
}

// Progress returns CurrentTime/Duration in [0, 1], or 0 when unknown.
func (s Session) Progress() float64 {
	if !s.DurationKnown() || s.Duration <= 0 {
		return 0
	}
	return min(max(s.CurrentTime/s.Duration, 0), 1)
}

// Snapshot is a copy of the controller state.
type Snapshot struct {
	Session
	State State
	Info  media.TrackInfo
	Err   error
}

// Message returns the one-line inline message for the current state, or ""
// when there is nothing to report.
func (s Snapshot) Message() string {
	switch {
	case s.State == StateError:
		return "No audio loaded"
	case s.Err != nil:
		return errmsg.Format(errmsg.OpPlaybackStart, s.Err)
	}
	return ""
}

// Effect tells the host what the visualizer must do after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectStartVisualizer
	EffectStopVisualizer
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectStartVisualizer:
		return "StartVisualizer"
	case EffectStopVisualizer:
		return "StopVisualizer"
	default:
		return "Unknown"
	}
}
