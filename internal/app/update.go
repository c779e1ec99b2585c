// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/spectra/internal/errmsg"
	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/media"
	"github.com/llehouerou/spectra/internal/mpris"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/ui/action"
	"github.com/llehouerou/spectra/internal/ui/prompt"
	"github.com/llehouerou/spectra/internal/ui/slider"
	"github.com/llehouerou/spectra/internal/upload"
	"github.com/llehouerou/spectra/internal/visualizer"
)

// globalKeys resolves the keys the app handles itself.
var globalKeys = keymap.NewResolver(keymap.ByContext("global"))

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.prompt.SetSize(msg.Width, 3)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		return m.handleAction(msg)

	case OpenFileMsg:
		return m.openFile(msg.Path)

	case MediaEventMsg:
		if m.player == nil || msg.PlayerID != m.player.ID() {
			return m, nil // event of an unmounted player
		}
		cmd := m.player.HandleEvent(msg.Event)
		return m, tea.Batch(cmd, m.player.WaitEvent())

	case MediaClosedMsg:
		return m, nil

	case visualizer.FrameMsg:
		if m.player == nil {
			return m, nil
		}
		return m, m.player.Frame(msg)

	case ClassifyResultMsg:
		return m.handleClassifyResult(msg)

	case StderrMsg:
		cmd := m.setMessage(msg.Line)
		return m, tea.Batch(cmd, WatchStderr())

	case ClearMessageMsg:
		if msg.Version == m.msgVersion {
			m.message = ""
		}
		return m, nil

	case mpris.CommandMsg:
		return m.handleRemote(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m.quit()
	}
	if m.focus == FocusPrompt {
		return m, m.prompt.Update(msg)
	}

	if m.focus == FocusSeek || m.focus == FocusVolume {
		if key == "esc" {
			m.setFocus(FocusNone)
			return m, nil
		}
		if cmd := m.focusedSlider().Update(msg); cmd != nil {
			return m, cmd
		}
	}

	switch globalKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case keymap.ActionOpen:
		m.setFocus(FocusPrompt)
		return m, m.prompt.Start("Open audio file (WAV or MP3)", m.source)
	case keymap.ActionEject:
		m.unmount()
		return m, nil
	case keymap.ActionFocus:
		m.cycleFocus()
		return m, nil
	}

	return m, keymap.Dispatch(key, m.focus.keymapFocus())
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.unmount()
	return *m, tea.Quit
}

func (m *Model) setFocus(f FocusTarget) {
	if m.player == nil && (f == FocusSeek || f == FocusVolume) {
		f = FocusNone
	}
	if m.focus == FocusPrompt && f != FocusPrompt {
		m.prompt.Stop()
	}
	m.focus = f
	if m.player != nil {
		m.player.Slider(seekSliderID).SetFocused(f == FocusSeek)
		m.player.Slider(volumeSliderID).SetFocused(f == FocusVolume)
	}
}

// cycleFocus moves focus none -> seek -> volume -> none.
func (m *Model) cycleFocus() {
	switch m.focus {
	case FocusNone:
		m.setFocus(FocusSeek)
	case FocusSeek:
		m.setFocus(FocusVolume)
	default:
		m.setFocus(FocusNone)
	}
}

func (m *Model) focusedSlider() *slider.Model {
	if m.player == nil {
		return &slider.Model{}
	}
	if m.focus == FocusVolume {
		return m.player.Slider(volumeSliderID)
	}
	return m.player.Slider(seekSliderID)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	log.Debug().Str("source", msg.Source).Str("action", msg.Action.ActionType()).Msg("app: action")
	switch a := msg.Action.(type) {
	case prompt.Result:
		if a.Canceled {
			m.setFocus(FocusNone)
			return m, nil
		}
		return m.openFile(a.Text)
	case slider.Changed:
		if m.player != nil {
			m.player.SliderChanged(a)
		}
	}
	return m, nil
}

// openFile validates path and mounts a fresh player for it. Validation
// errors keep the prompt open when it is the source of the request.
func (m Model) openFile(path string) (tea.Model, tea.Cmd) {
	f, err := upload.Open(path)
	if err != nil {
		text := errmsg.Format(errmsg.OpFileValidate, err)
		log.Debug().Err(err).Str("path", path).Msg("app: file rejected")
		if m.focus == FocusPrompt {
			m.prompt.SetError(text)
			return m, nil
		}
		return m, m.setMessage(text)
	}

	m.setFocus(FocusNone)
	m.source, m.sourceSize = f.Path, f.Size
	m.result = nil
	m.message = ""
	return m, m.mount(f.URL(), f.Path)
}

// mount replaces the mounted player with a new one loading url. The old
// player is fully torn down first.
func (m *Model) mount(url, path string) tea.Cmd {
	opts := m.playerOptions()
	m.unmount()

	remote := m.remote
	m.player = MountPlayer(m.newSession(), opts, func(s transport.Snapshot) {
		if remote != nil {
			remote.Publish(s)
		}
	})

	cmds := []tea.Cmd{m.player.Load(url), m.player.WaitEvent()}
	if m.classifier != nil {
		cmds = append(cmds, ClassifyCmd(m.classifier, m.player.ID(), path))
	}
	return tea.Batch(cmds...)
}

func (m *Model) unmount() {
	if m.player == nil {
		return
	}
	if m.focus == FocusSeek || m.focus == FocusVolume {
		m.setFocus(FocusNone)
	}
	m.player.Unmount()
	m.player = nil
	m.publish(m.idleSnapshot())
}

func (m Model) handleClassifyResult(msg ClassifyResultMsg) (tea.Model, tea.Cmd) {
	if m.player == nil || msg.PlayerID != m.player.ID() {
		return m, nil
	}
	if msg.Err != nil {
		return m, m.setMessage(errmsg.Format(errmsg.OpClassify, msg.Err))
	}
	m.result = msg.Result
	m.setGenre(msg.Result.Genre)
	return m, nil
}

func (m Model) handleRemote(msg mpris.CommandMsg) (tea.Model, tea.Cmd) {
	if msg.Cmd == mpris.CmdOpenURI {
		path, err := media.ResolveSource(msg.URI)
		if err != nil {
			return m, m.setMessage(errmsg.FormatWith(errmsg.OpFileLoad, msg.URI, err))
		}
		return m.openFile(path)
	}

	p := m.player
	if p == nil {
		return m, nil
	}
	switch msg.Cmd {
	case mpris.CmdPlay:
		return m, p.Play()
	case mpris.CmdPause:
		return m, p.Pause()
	case mpris.CmdToggle:
		return m, p.Toggle()
	case mpris.CmdStop:
		cmd := p.Pause()
		p.Seek(0)
		return m, cmd
	case mpris.CmdSeekBy:
		p.Seek(p.Snapshot().CurrentTime + msg.Seconds)
	case mpris.CmdSeekTo:
		p.Seek(msg.Seconds)
	case mpris.CmdVolume:
		p.SetVolume(msg.Value)
	case mpris.CmdRate:
		if err := p.SetPlaybackRate(msg.Value); err != nil {
			return m, m.setMessage(errmsg.Format(errmsg.OpPlaybackRate, err))
		}
	}
	return m, nil
}

// setMessage shows text on the inline message line for messageTTL.
func (m *Model) setMessage(text string) tea.Cmd {
	m.message = text
	m.msgVersion++
	return ClearMessageCmd(m.msgVersion)
}
