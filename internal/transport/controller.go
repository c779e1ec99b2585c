// Package transport implements the playback state machine sitting between
// user intent (keys, sliders, remote commands) and a media.Session.
//
// The controller is not safe for concurrent use: it is driven from the UI
// update loop only. Session events are fed back through HandleEvent.
package transport

import (
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/spectra/internal/media"
)

// DefaultVolume is the volume of a new controller and the level restored
// when unmuting from zero.
const DefaultVolume = 0.7

// Options configures a Controller.
type Options struct {
	// Volume is the initial volume. Zero means DefaultVolume; use Muted for
	// a silent start.
	Volume float64
	Muted  bool
}

// Controller owns the displayed playback state and issues commands to the
// media session.
type Controller struct {
	media media.Session

	gen   uint64
	state State
	sess  Session
	info  media.TrackInfo
	err   error

	lastVolume float64
	unmounted  bool

	onChange func(Snapshot)
}

// New creates a controller over m in the Idle state and pushes the initial
// volume to the session.
func New(m media.Session, opts Options) *Controller {
	vol := opts.Volume
	if vol <= 0 || vol > 1 || math.IsNaN(vol) {
		vol = DefaultVolume
	}
	c := &Controller{
		media:      m,
		lastVolume: vol,
		sess: Session{
			Duration:     math.NaN(),
			Volume:       vol,
			IsMuted:      opts.Muted,
			PlaybackRate: media.DefaultRate,
		},
	}
	m.SetVolume(vol)
	m.SetMuted(opts.Muted)
	return c
}

// OnStateChange registers fn to be called with a snapshot after every state
// change. Only one observer is kept.
func (c *Controller) OnStateChange(fn func(Snapshot)) {
	c.onChange = fn
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Session: c.sess, State: c.state, Info: c.info, Err: c.err}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Load replaces the source. Position, duration, play state and errors are
// reset and the rate goes back to 1; volume and mute carry over.
func (c *Controller) Load(url string) Effect {
	if c.unmounted {
		return EffectNone
	}
	wasPlaying := c.state == StatePlaying

	c.gen++
	c.state = StateLoading
	c.info = media.TrackInfo{}
	c.err = nil
	c.sess.SourceURL = url
	c.sess.IsPlaying = false
	c.sess.Duration = math.NaN()
	c.sess.CurrentTime = 0
	c.sess.PlaybackRate = media.DefaultRate

	log.Debug().Uint64("gen", c.gen).Str("url", url).Msg("transport: load")
	c.media.Load(url)
	c.changed()

	if wasPlaying {
		return EffectStopVisualizer
	}
	return EffectNone
}

// Play requests playback. The state turns Playing right away and reverts
// if the session reports a failure. From Ended, playback restarts at 0.
// Without a ready source Play does nothing.
func (c *Controller) Play() Effect {
	if c.unmounted {
		return EffectNone
	}
	switch c.state {
	case StatePaused, StateEnded:
	default:
		return EffectNone
	}
	if c.state == StateEnded {
		c.sess.CurrentTime = 0
	}
	c.state = StatePlaying
	c.sess.IsPlaying = true
	c.err = nil

	log.Debug().Uint64("gen", c.gen).Msg("transport: play")
	c.media.Play()
	c.changed()
	return EffectNone
}

// Pause pauses playback and cancels the visualizer loop.
func (c *Controller) Pause() Effect {
	if c.unmounted || c.state != StatePlaying {
		return EffectNone
	}
	c.state = StatePaused
	c.sess.IsPlaying = false

	log.Debug().Uint64("gen", c.gen).Msg("transport: pause")
	c.media.Pause()
	c.changed()
	return EffectStopVisualizer
}

// Toggle pauses when playing and plays otherwise.
func (c *Controller) Toggle() Effect {
	if c.state == StatePlaying {
		return c.Pause()
	}
	return c.Play()
}

// Seek moves to seconds. Once the duration is known the target is clamped
// to [0, duration]; before that it is passed through and applied when the
// metadata arrives. Seeking never changes play/pause, except that a seek
// from Ended leaves the player Paused at the new position.
func (c *Controller) Seek(seconds float64) {
	if c.unmounted || !c.state.HasSource() || math.IsNaN(seconds) {
		return
	}
	if c.sess.DurationKnown() {
		seconds = c.clamp(seconds)
	}
	c.sess.CurrentTime = seconds
	if c.state == StateEnded {
		c.state = StatePaused
	}

	log.Debug().Uint64("gen", c.gen).Float64("seconds", seconds).Msg("transport: seek")
	c.media.Seek(seconds)
	c.changed()
}

// Skip seeks by delta seconds from the current position, clamped to
// [0, duration]. It does nothing until the duration is known.
func (c *Controller) Skip(delta float64) {
	if !c.sess.DurationKnown() {
		return
	}
	c.Seek(c.sess.CurrentTime + delta)
}

// SetVolume sets the volume, clamped to [0, 1]. Zero mutes; any non-zero
// value unmutes.
func (c *Controller) SetVolume(v float64) {
	if c.unmounted || math.IsNaN(v) {
		return
	}
	v = min(max(v, 0), 1)
	c.sess.Volume = v
	if v == 0 {
		c.sess.IsMuted = true
	} else {
		c.sess.IsMuted = false
		c.lastVolume = v
	}
	c.media.SetVolume(v)
	c.media.SetMuted(c.sess.IsMuted)
	c.changed()
}

// SetMuted mutes or unmutes. Unmuting at volume 0 restores the last
// non-zero volume.
func (c *Controller) SetMuted(muted bool) {
	if c.unmounted {
		return
	}
	if !muted && c.sess.Volume == 0 {
		c.sess.Volume = c.lastVolume
		c.media.SetVolume(c.sess.Volume)
	}
	c.sess.IsMuted = muted
	c.media.SetMuted(muted)
	c.changed()
}

// ToggleMute flips the mute state.
func (c *Controller) ToggleMute() {
	c.SetMuted(!c.sess.IsMuted)
}

// SetPlaybackRate changes the rate. Rates outside media.PlaybackRates are
// rejected and the current rate is kept.
func (c *Controller) SetPlaybackRate(r float64) error {
	if c.unmounted || !c.state.HasSource() {
		return ErrNoSource
	}
	if !media.RateAllowed(r) {
		return fmt.Errorf("%w: %g", media.ErrRateNotAllowed, r)
	}
	if err := c.media.SetPlaybackRate(r); err != nil {
		return err
	}
	c.sess.PlaybackRate = r
	c.changed()
	return nil
}

// CycleRate moves to the next allowed rate, wrapping to the slowest.
func (c *Controller) CycleRate() error {
	i := slices.Index(media.PlaybackRates, c.sess.PlaybackRate)
	next := media.PlaybackRates[(i+1)%len(media.PlaybackRates)]
	return c.SetPlaybackRate(next)
}

// StepRate moves steps positions through the allowed rates, stopping at
// either end.
func (c *Controller) StepRate(steps int) error {
	i := slices.Index(media.PlaybackRates, c.sess.PlaybackRate)
	if i < 0 {
		i = slices.Index(media.PlaybackRates, media.DefaultRate)
	}
	i = min(max(i+steps, 0), len(media.PlaybackRates)-1)
	if media.PlaybackRates[i] == c.sess.PlaybackRate {
		return nil
	}
	return c.SetPlaybackRate(media.PlaybackRates[i])
}

// HandleEvent applies a session event. Events from a superseded source are
// dropped.
func (c *Controller) HandleEvent(e media.Event) Effect {
	if c.unmounted || e.Generation() != c.gen {
		return EffectNone
	}

	effect := EffectNone
	switch e := e.(type) {
	case media.MetadataReady:
		if c.state != StateLoading {
			return EffectNone
		}
		c.sess.Duration = e.Duration
		c.info = e.Info
		c.state = StatePaused
		// Apply a seek requested before the duration was known.
		if c.sess.CurrentTime != 0 {
			c.sess.CurrentTime = c.clamp(c.sess.CurrentTime)
			c.media.Seek(c.sess.CurrentTime)
		}

	case media.TimeUpdate:
		if c.state != StatePlaying && c.state != StatePaused {
			return EffectNone
		}
		t := e.Time
		if c.sess.DurationKnown() {
			t = c.clamp(t)
		}
		if t == c.sess.CurrentTime {
			return EffectNone
		}
		c.sess.CurrentTime = t

	case media.PlayStarted:
		if c.state != StatePlaying {
			// Paused again before playback began.
			c.media.Pause()
			return EffectNone
		}
		return EffectStartVisualizer

	case media.PlayFailed:
		if c.state != StatePlaying {
			return EffectNone
		}
		log.Debug().Err(e.Err).Msg("transport: play failed")
		c.state = StatePaused
		c.sess.IsPlaying = false
		c.err = e.Err
		effect = EffectStopVisualizer

	case media.Ended:
		if c.state != StatePlaying {
			return EffectNone
		}
		c.state = StateEnded
		c.sess.IsPlaying = false
		c.sess.CurrentTime = 0
		effect = EffectStopVisualizer

	case media.LoadFailed:
		log.Debug().Err(e.Err).Msg("transport: load failed")
		wasPlaying := c.state == StatePlaying
		c.state = StateError
		c.err = e.Err
		c.sess.IsPlaying = false
		c.sess.Duration = math.NaN()
		c.sess.CurrentTime = 0
		if wasPlaying {
			effect = EffectStopVisualizer
		}

	default:
		return EffectNone
	}

	c.changed()
	return effect
}

// Unmount releases the session. The controller ignores every call
// afterwards.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.unmounted = true
	c.state = StateIdle
	c.sess.IsPlaying = false
	if err := c.media.Close(); err != nil {
		log.Debug().Err(err).Msg("transport: close session")
	}
	c.changed()
}

func (c *Controller) clamp(t float64) float64 {
	return min(max(t, 0), c.sess.Duration)
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c.Snapshot())
	}
}
