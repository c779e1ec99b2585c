//go:build linux

package mpris

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/transport"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) commands() []CommandMsg {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CommandMsg, 0, len(r.msgs))
	for _, m := range r.msgs {
		out = append(out, m.(CommandMsg))
	}
	return out
}

func newTestAdapter() (*playerAdapter, *recordingSender) {
	s := &recordingSender{}
	p := &playerAdapter{relay: &relay{}}
	p.Attach(s)
	return p, s
}

func playingSnapshot() transport.Snapshot {
	return transport.Snapshot{
		Session: transport.Session{
			SourceURL:    "file:///music/clip.mp3",
			IsPlaying:    true,
			Duration:     180,
			CurrentTime:  30.5,
			Volume:       0.7,
			PlaybackRate: 1.5,
		},
		State: transport.StatePlaying,
		Info:  media.TrackInfo{Title: "Clip", Artist: "Someone"},
	}
}

func TestPlayerAdapter_CommandsAreSent(t *testing.T) {
	p, s := newTestAdapter()

	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Seek(types.Microseconds(-5_000_000)))
	require.NoError(t, p.SetVolume(0.25))
	require.NoError(t, p.SetRate(2))

	assert.Equal(t, []CommandMsg{
		{Cmd: CmdPlay},
		{Cmd: CmdPause},
		{Cmd: CmdToggle},
		{Cmd: CmdStop},
		{Cmd: CmdSeekBy, Seconds: -5},
		{Cmd: CmdVolume, Value: 0.25},
		{Cmd: CmdRate, Value: 2},
	}, s.commands())
}

func TestPlayerAdapter_DropsCommandsBeforeAttach(t *testing.T) {
	p := &playerAdapter{relay: &relay{}}
	assert.NotPanics(t, func() { _ = p.Play() })
}

func TestPlayerAdapter_SetPositionChecksTrack(t *testing.T) {
	p, s := newTestAdapter()
	snap := playingSnapshot()
	p.Publish(snap)

	require.NoError(t, p.SetPosition("/org/mpris/MediaPlayer2/Track/0", 10_000_000))
	require.NoError(t, p.SetPosition(formatTrackID(snap.SourceURL), 10_000_000))

	assert.Equal(t, []CommandMsg{{Cmd: CmdSeekTo, Seconds: 10}}, s.commands())
}

func TestPlayerAdapter_OpenURI(t *testing.T) {
	p, s := newTestAdapter()

	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o600))
	uri := media.FileURL(path)

	assert.Error(t, p.OpenUri("https://example.com/a.mp3"))
	assert.Error(t, p.OpenUri("file:///does/not/exist.mp3"))
	require.NoError(t, p.OpenUri(uri))

	assert.Equal(t, []CommandMsg{{Cmd: CmdOpenURI, URI: uri}}, s.commands())
}

func TestPlayerAdapter_Properties(t *testing.T) {
	p, _ := newTestAdapter()

	status, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusStopped, status, "nothing published yet")
	meta, _ := p.Metadata()
	assert.Equal(t, types.Metadata{}, meta)

	snap := playingSnapshot()
	p.Publish(snap)

	status, _ = p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPlaying, status)
	pos, _ := p.Position()
	assert.Equal(t, int64(30_500_000), pos)
	rate, _ := p.Rate()
	assert.Equal(t, 1.5, rate)
	vol, _ := p.Volume()
	assert.Equal(t, 0.7, vol)
	canSeek, _ := p.CanSeek()
	assert.True(t, canSeek)

	meta, _ = p.Metadata()
	assert.Equal(t, dbus.ObjectPath(formatTrackID(snap.SourceURL)), meta.TrackId)
	assert.Equal(t, types.Microseconds(180_000_000), meta.Length)
	assert.Equal(t, "Clip", meta.Title)
	assert.Equal(t, []string{"Someone"}, meta.Artist)
}

func TestPlayerAdapter_MutedAndLoading(t *testing.T) {
	p, _ := newTestAdapter()
	snap := playingSnapshot()
	snap.IsMuted = true
	snap.State = transport.StateLoading
	snap.Duration = math.NaN()
	p.Publish(snap)

	vol, _ := p.Volume()
	assert.Zero(t, vol)
	status, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, status)
	canSeek, _ := p.CanSeek()
	assert.False(t, canSeek)
	meta, _ := p.Metadata()
	assert.Zero(t, meta.Length)
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		state transport.State
		want  types.PlaybackStatus
	}{
		{transport.StateIdle, types.PlaybackStatusStopped},
		{transport.StateLoading, types.PlaybackStatusPaused},
		{transport.StatePaused, types.PlaybackStatusPaused},
		{transport.StatePlaying, types.PlaybackStatusPlaying},
		{transport.StateEnded, types.PlaybackStatusStopped},
		{transport.StateError, types.PlaybackStatusStopped},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, playbackStatus(tt.state))
		})
	}
}
