// Package media adapts a playable audio resource to the transport layer.
//
// A Session owns one audio resource. Commands (Load, Play, Pause, Seek, ...)
// are requests: their outcome is reported asynchronously as Events on every
// Subscription, in the order they happen. Each Load starts a new generation
// and every event carries the generation it belongs to, so consumers can
// drop late events from a source that has since been replaced.
package media

import (
	"errors"

	"github.com/samber/lo"
)

var (
	// ErrNotLoaded is reported when playback is requested without a loaded source.
	ErrNotLoaded = errors.New("no audio loaded")
	// ErrRateNotAllowed is returned for playback rates outside PlaybackRates.
	ErrRateNotAllowed = errors.New("playback rate not allowed")
	// ErrTapAttached is returned when a second analyzer tap is requested.
	ErrTapAttached = errors.New("analyzer tap already attached")
	// ErrAudioUnavailable is reported when no audio output exists in this build.
	ErrAudioUnavailable = errors.New("audio output unavailable")
	// ErrUnsupportedFormat is reported for files no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrInvalidSource is reported for empty, malformed or non-local sources.
	ErrInvalidSource = errors.New("invalid audio source")
)

// PlaybackRates is the fixed set of allowed playback rates, in ascending order.
var PlaybackRates = []float64{0.5, 1, 1.5, 2}

// DefaultRate is the rate every newly loaded source starts at.
const DefaultRate = 1.0

// RateAllowed reports whether r is one of PlaybackRates.
func RateAllowed(r float64) bool {
	return lo.Contains(PlaybackRates, r)
}

// Session is the contract of a playable audio resource.
type Session interface {
	// Load replaces the source. Previously known duration and position are
	// invalidated; MetadataReady or LoadFailed follows.
	Load(url string)
	// Play requests playback. PlayStarted or PlayFailed follows.
	Play()
	// Pause requests a pause. A TimeUpdate with the paused position follows.
	Pause()
	// Seek moves to seconds, clamped to [0, duration] once duration is known.
	Seek(seconds float64)
	// SetVolume sets the output level in [0, 1].
	SetVolume(level float64)
	// SetMuted silences or restores output without touching the level.
	SetMuted(muted bool)
	// SetPlaybackRate changes speed. Rates outside PlaybackRates are rejected.
	SetPlaybackRate(rate float64) error
	// AttachTap connects an analyzer tap holding the last size samples.
	// At most one tap may be attached at a time.
	AttachTap(size int) (Tap, error)
	// Subscribe registers a new event subscriber.
	Subscribe() *Subscription
	// Close releases the resource and ends all subscriptions.
	Close() error
}

// Tap exposes the most recent mono samples flowing to the output.
type Tap interface {
	// Samples returns the last n samples in chronological order.
	Samples(n int) []float64
	// Close disconnects the tap. Safe to call more than once.
	Close() error
}
