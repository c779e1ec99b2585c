//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"net/url"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/transport"
)

// Adapter connects the transport to MPRIS over D-Bus.
type Adapter struct {
	*relay
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New() (*Adapter, error) {
	r := &relay{}
	a := &Adapter{
		relay:  r,
		server: server.NewServer("spectra", &rootAdapter{}, &playerAdapter{relay: r}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil
}

func (r *rootAdapter) Quit() error {
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Spectra", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/wav", "audio/x-wav", "audio/flac"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	*relay
}

func (p *playerAdapter) Next() error {
	return nil
}

func (p *playerAdapter) Previous() error {
	return nil
}

func (p *playerAdapter) Pause() error {
	p.send(CommandMsg{Cmd: CmdPause})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.send(CommandMsg{Cmd: CmdToggle})
	return nil
}

func (p *playerAdapter) Stop() error {
	p.send(CommandMsg{Cmd: CmdStop})
	return nil
}

func (p *playerAdapter) Play() error {
	p.send(CommandMsg{Cmd: CmdPlay})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.send(CommandMsg{Cmd: CmdSeekBy, Seconds: microsToSeconds(int64(offset))})
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	s, ok := p.snapshot()
	if !ok || trackID != formatTrackID(s.SourceURL) {
		return nil // stale track id, ignored per MPRIS
	}
	p.send(CommandMsg{Cmd: CmdSeekTo, Seconds: microsToSeconds(int64(position))})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(uri string) error {
	if _, err := media.ResolveSource(uri); err != nil {
		return err
	}
	p.send(CommandMsg{Cmd: CmdOpenURI, URI: uri})
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s, _ := p.snapshot()
	return playbackStatus(s.State), nil
}

func playbackStatus(st transport.State) types.PlaybackStatus {
	switch st {
	case transport.StatePlaying:
		return types.PlaybackStatusPlaying
	case transport.StatePaused, transport.StateLoading:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	s, ok := p.snapshot()
	if !ok || s.PlaybackRate == 0 {
		return media.DefaultRate, nil
	}
	return s.PlaybackRate, nil
}

func (p *playerAdapter) SetRate(rate float64) error {
	p.send(CommandMsg{Cmd: CmdRate, Value: rate})
	return nil
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s, ok := p.snapshot()
	if !ok || !s.State.HasSource() {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.SourceURL)),
		Title:   s.Info.Title,
		Album:   s.Info.Album,
	}
	if s.Info.Artist != "" {
		meta.Artist = []string{s.Info.Artist}
	}
	if s.DurationKnown() {
		meta.Length = types.Microseconds(secondsToMicros(s.Duration))
	}
	if s.Info.Path != "" {
		if art := FindArt(s.Info.Path); art != "" {
			meta.ArtUrl = (&url.URL{Scheme: "file", Path: art}).String()
		}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	s, ok := p.snapshot()
	if !ok || s.IsMuted {
		return 0, nil
	}
	return s.Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.send(CommandMsg{Cmd: CmdVolume, Value: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	s, _ := p.snapshot()
	return secondsToMicros(s.CurrentTime), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return media.PlaybackRates[0], nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return media.PlaybackRates[len(media.PlaybackRates)-1], nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	s, _ := p.snapshot()
	return s.State.Ready(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	s, _ := p.snapshot()
	return s.State.Ready(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	s, ok := p.snapshot()
	return ok && s.State.Ready() && s.DurationKnown(), nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

func secondsToMicros(s float64) int64 {
	return int64(s * 1e6)
}

func microsToSeconds(us int64) float64 {
	return float64(us) / 1e6
}
