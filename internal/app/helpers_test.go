package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spectra/internal/config"
	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/visualizer"
)

var wavHeader = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00")

// recordingScheduler records scheduled frames instead of waiting.
type recordingScheduler struct {
	scheduled []visualizer.FrameMsg
}

func (r *recordingScheduler) Next(msg visualizer.FrameMsg) tea.Cmd {
	r.scheduled = append(r.scheduled, msg)
	return func() tea.Msg { return msg }
}

type recordingRemote struct {
	published []transport.Snapshot
}

func (r *recordingRemote) Publish(s transport.Snapshot) {
	r.published = append(r.published, s)
}

func (r *recordingRemote) last() transport.Snapshot {
	if len(r.published) == 0 {
		return transport.Snapshot{}
	}
	return r.published[len(r.published)-1]
}

// testEnv drives a Model through Update and keeps the latest copy.
type testEnv struct {
	t        *testing.T
	m        Model
	sessions []*media.Mock
	sched    *recordingScheduler
	remote   *recordingRemote
	tapErr   error // set on every new session
}

func newTestEnv(t *testing.T, mutate ...func(*Options)) *testEnv {
	t.Helper()
	env := &testEnv{t: t, sched: &recordingScheduler{}, remote: &recordingRemote{}}
	opts := Options{
		Config: config.Default(),
		NewSession: func() media.Session {
			s := media.NewMock()
			if env.tapErr != nil {
				s.SetTapError(env.tapErr)
			}
			env.sessions = append(env.sessions, s)
			return s
		},
		Scheduler: env.sched,
		Remote:    env.remote,
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	env.m = New(opts)
	env.update(tea.WindowSizeMsg{Width: 100, Height: 40})
	t.Cleanup(func() {
		if env.m.player != nil {
			env.m.player.Unmount()
		}
		require.Zero(t, keymap.Bound(), "listeners leaked")
	})
	return env
}

func (e *testEnv) update(msg tea.Msg) tea.Cmd {
	e.t.Helper()
	next, cmd := e.m.Update(msg)
	m, ok := next.(Model)
	require.True(e.t, ok, "Update should return Model")
	e.m = m
	return cmd
}

func (e *testEnv) key(k string) tea.Cmd {
	e.t.Helper()
	return e.update(keyMsg(k))
}

// session returns the session of the mounted player.
func (e *testEnv) session() *media.Mock {
	e.t.Helper()
	require.NotEmpty(e.t, e.sessions)
	return e.sessions[len(e.sessions)-1]
}

// open mounts a player for a fresh WAV file and reports its metadata.
func (e *testEnv) open(duration float64) *Player {
	e.t.Helper()
	path := writeWAV(e.t, "song.wav")
	e.update(OpenFileMsg{Path: path})
	p := e.m.Player()
	require.NotNil(e.t, p)
	e.emit(media.MetadataReady{Gen: e.session().Gen(), Duration: duration})
	return p
}

// emit delivers a media event of the mounted player.
func (e *testEnv) emit(ev media.Event) tea.Cmd {
	e.t.Helper()
	return e.update(MediaEventMsg{PlayerID: e.m.Player().ID(), Event: ev})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func writeWAV(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, append(wavHeader, make([]byte, 600)...), 0o600))
	return path
}
