// internal/app/player.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/ui/slider"
	"github.com/llehouerou/spectra/internal/visualizer"
)

const (
	seekSliderID   = "seek"
	volumeSliderID = "volume"

	// volumeStep is the volume change per key press.
	volumeStep = 0.05
)

// PlayerOptions configures a mounted player.
type PlayerOptions struct {
	Volume     float64
	Muted      bool
	SeekStep   float64 // seconds, arrow keys
	SkipStep   float64 // seconds, shift+arrows
	Autoplay   bool
	Visualizer visualizer.Options
	Accent     lipgloss.Color
}

// Player is one mounted control surface: a media session, the transport
// controller driving it, the visualizer tapping it and the keyboard
// listener bound for it. Everything it owns is released by Unmount.
type Player struct {
	id       string
	opts     PlayerOptions
	session  media.Session
	ctrl     *transport.Controller
	vis      *visualizer.Model
	sub      *media.Subscription
	release  func()
	seek     slider.Model
	volume   slider.Model
	mounted  bool
	onChange func(transport.Snapshot)
}

// MountPlayer creates a player over session and binds its shortcuts.
// onChange, when set, receives a snapshot after every transport change.
func MountPlayer(session media.Session, opts PlayerOptions, onChange func(transport.Snapshot)) *Player {
	id := uuid.NewString()
	p := &Player{
		id:       id,
		opts:     opts,
		session:  session,
		sub:      session.Subscribe(),
		vis:      visualizer.New(id, opts.Visualizer),
		seek:     slider.New(seekSliderID, 0, 0, opts.SeekStep),
		volume:   slider.New(volumeSliderID, 0, 1, volumeStep),
		mounted:  true,
		onChange: onChange,
	}
	p.ctrl = transport.New(session, transport.Options{Volume: opts.Volume, Muted: opts.Muted})
	p.ctrl.OnStateChange(p.stateChanged)
	p.release = keymap.Bind(id, p.handleAction)
	p.SetAccent(opts.Accent)
	p.syncSliders(p.ctrl.Snapshot())

	log.Debug().Str("player", id).Msg("app: player mounted")
	return p
}

// ID returns the player id.
func (p *Player) ID() string { return p.id }

// Mounted reports whether Unmount has not run yet.
func (p *Player) Mounted() bool { return p.mounted }

// Snapshot returns the transport state.
func (p *Player) Snapshot() transport.Snapshot { return p.ctrl.Snapshot() }

// Visualizer returns the player's visualizer.
func (p *Player) Visualizer() *visualizer.Model { return p.vis }

// Unmount tears the player down: the keyboard listener is released, the
// render loop cancelled, the tap detached and the session closed. It is
// safe to call more than once.
func (p *Player) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.release()
	p.vis.Close()
	p.ctrl.Unmount()
	log.Debug().Str("player", p.id).Msg("app: player unmounted")
}

// Load replaces the source. The visualizer is cleared; a running loop is
// cancelled before the new source loads.
func (p *Player) Load(url string) tea.Cmd {
	if !p.mounted {
		return nil
	}
	p.vis.Stop()
	p.vis.Reset()
	return p.apply(p.ctrl.Load(url))
}

// HandleEvent feeds a media event to the controller.
func (p *Player) HandleEvent(e media.Event) tea.Cmd {
	if !p.mounted {
		return nil
	}
	cmd := p.apply(p.ctrl.HandleEvent(e))
	if _, ok := e.(media.MetadataReady); ok && p.opts.Autoplay && p.ctrl.State() == transport.StatePaused {
		return tea.Batch(cmd, p.apply(p.ctrl.Play()))
	}
	return cmd
}

// WaitEvent waits for the next media event of this player.
func (p *Player) WaitEvent() tea.Cmd {
	sub, id := p.sub, p.id
	return func() tea.Msg {
		select {
		case e := <-sub.Events:
			return MediaEventMsg{PlayerID: id, Event: e}
		case <-sub.Done:
			return MediaClosedMsg{PlayerID: id}
		}
	}
}

// Frame advances the render loop.
func (p *Player) Frame(msg visualizer.FrameMsg) tea.Cmd {
	return p.vis.Update(msg)
}

func (p *Player) apply(e transport.Effect) tea.Cmd {
	switch e {
	case transport.EffectStartVisualizer:
		return p.vis.Start(p.session)
	case transport.EffectStopVisualizer:
		p.vis.Stop()
	case transport.EffectNone:
	}
	return nil
}

// handleAction runs a playback shortcut. It is the player's keyboard
// listener and only ever runs inside the program's Update.
func (p *Player) handleAction(a keymap.Action) tea.Cmd {
	if !p.mounted {
		return nil
	}
	snap := p.ctrl.Snapshot()
	switch a {
	case keymap.ActionPlayPause:
		return p.apply(p.ctrl.Toggle())
	case keymap.ActionSeekBack:
		p.ctrl.Skip(-p.opts.SeekStep)
	case keymap.ActionSeekForward:
		p.ctrl.Skip(p.opts.SeekStep)
	case keymap.ActionSkipBack:
		p.ctrl.Skip(-p.opts.SkipStep)
	case keymap.ActionSkipForward:
		p.ctrl.Skip(p.opts.SkipStep)
	case keymap.ActionToggleMute:
		p.ctrl.ToggleMute()
	case keymap.ActionVolumeUp:
		p.ctrl.SetVolume(effectiveVolume(snap.Session) + volumeStep)
	case keymap.ActionVolumeDown:
		p.ctrl.SetVolume(effectiveVolume(snap.Session) - volumeStep)
	case keymap.ActionRateUp:
		p.logRateErr(p.ctrl.StepRate(1))
	case keymap.ActionRateDown:
		p.logRateErr(p.ctrl.StepRate(-1))
	case keymap.ActionCycleRate:
		p.logRateErr(p.ctrl.CycleRate())
	}
	return nil
}

func (p *Player) logRateErr(err error) {
	if err != nil {
		log.Debug().Err(err).Str("player", p.id).Msg("app: rate change ignored")
	}
}

func effectiveVolume(s transport.Session) float64 {
	if s.IsMuted {
		return 0
	}
	return s.Volume
}

// Play, Pause, Toggle, Seek and SetVolume are the remote-control entry
// points; keyboard shortcuts go through handleAction.

func (p *Player) Play() tea.Cmd   { return p.apply(p.ctrl.Play()) }
func (p *Player) Pause() tea.Cmd  { return p.apply(p.ctrl.Pause()) }
func (p *Player) Toggle() tea.Cmd { return p.apply(p.ctrl.Toggle()) }

func (p *Player) Seek(seconds float64) { p.ctrl.Seek(seconds) }
func (p *Player) SetVolume(v float64)  { p.ctrl.SetVolume(v) }

// SetPlaybackRate changes the rate; disallowed rates are rejected.
func (p *Player) SetPlaybackRate(r float64) error { return p.ctrl.SetPlaybackRate(r) }

// SliderChanged applies a slider move.
func (p *Player) SliderChanged(c slider.Changed) {
	switch c.ID {
	case seekSliderID:
		p.ctrl.Seek(c.Value)
	case volumeSliderID:
		p.ctrl.SetVolume(c.Value)
	}
}

// SetAccent tints the visualizer bars and slider fills.
func (p *Player) SetAccent(c lipgloss.Color) {
	p.opts.Accent = c
	p.vis.SetColor(c)
	p.seek.SetAccent(c)
	p.volume.SetAccent(c)
}

// Accent returns the current accent color.
func (p *Player) Accent() lipgloss.Color { return p.opts.Accent }

// Slider returns the slider with id, or nil.
func (p *Player) Slider(id string) *slider.Model {
	switch id {
	case seekSliderID:
		return &p.seek
	case volumeSliderID:
		return &p.volume
	}
	return nil
}

func (p *Player) stateChanged(s transport.Snapshot) {
	p.syncSliders(s)
	if p.onChange != nil {
		p.onChange(s)
	}
}

func (p *Player) syncSliders(s transport.Snapshot) {
	if s.DurationKnown() {
		p.seek.SetRange(0, s.Duration)
	} else {
		p.seek.SetRange(0, 0)
	}
	p.seek.SetValue(s.CurrentTime)
	p.volume.SetValue(effectiveVolume(s.Session))
}
