// internal/app/view.go
package app

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/keymap"
	"github.com/llehouerou/spectra/internal/transport"
	"github.com/llehouerou/spectra/internal/ui"
	"github.com/llehouerou/spectra/internal/ui/headerbar"
	"github.com/llehouerou/spectra/internal/ui/layout"
	"github.com/llehouerou/spectra/internal/ui/playerbar"
	"github.com/llehouerou/spectra/internal/ui/render"
	"github.com/llehouerou/spectra/internal/ui/styles"
	"github.com/llehouerou/spectra/internal/upload"
)

// rankedScores is the number of genre scores listed under the player.
const rankedScores = 3

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sections := []string{m.viewHeader()}
	if vis := m.viewVisualizer(); vis != "" {
		sections = append(sections, vis)
	}
	sections = append(sections, playerbar.Render(m.playerBarState(), m.width))
	if scores := m.viewScores(); scores != "" {
		sections = append(sections, scores)
	}
	if m.prompt.Active() {
		sections = append(sections, m.prompt.View())
	}
	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	file := ""
	if m.player != nil && m.source != "" {
		file = filepath.Base(m.source) + " · " + upload.HumanSize(m.sourceSize)
	}
	return headerbar.Render(file, m.accent, m.width)
}

func (m Model) viewVisualizer() string {
	rows := m.visualizerRows()
	if m.player == nil || rows == 0 {
		return ""
	}
	// An unavailable analyzer leaves the panel empty.
	body := ""
	if vis := m.player.Visualizer(); !vis.Unavailable() {
		vis.SetSize(max(m.width-ui.BorderWidth, ui.MinVisualizerWidth), rows)
		body = vis.View()
	}
	return styles.PanelStyle(false, m.accent).
		Padding(0, 1).
		Width(max(m.width-2, 0)).
		Height(rows).
		Render(body)
}

// visualizerRows returns the bar rows that fit around the other sections.
func (m Model) visualizerRows() int {
	opts := layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: playerbar.Height(),
		HelpHeight:      lipgloss.Height(m.viewHelp()),
	}
	if m.viewScores() != "" {
		opts.ScoresHeight = 1
	}
	if m.prompt.Active() {
		opts.PromptHeight = lipgloss.Height(m.prompt.View())
	}
	content := layout.ContentHeight(m.height, opts)
	return layout.VisualizerHeight(content, m.cfg.Visualizer.Height, ui.BorderHeight)
}

func (m Model) playerBarState() playerbar.State {
	s := playerbar.State{
		Snapshot: m.idleSnapshot(),
		Accent:   m.accent,
		Genre:    m.genre,
		Message:  m.message,
		OpenKeys: globalKeys.KeysFor(keymap.ActionOpen),
	}
	if m.player != nil {
		s.Snapshot = m.player.Snapshot()
	}
	if m.result != nil {
		s.Confidence = m.result.Top()
	}
	switch m.focus {
	case FocusSeek:
		s.Focus, s.Focused = playerbar.FocusSeek, true
	case FocusVolume:
		s.Focus, s.Focused = playerbar.FocusVolume, true
	case FocusNone, FocusPrompt:
	}
	return s
}

// idleSnapshot is what the player bar shows with no player mounted.
func (m Model) idleSnapshot() transport.Snapshot {
	return transport.Snapshot{
		Session: transport.Session{
			Duration:     math.NaN(),
			Volume:       m.cfg.DefaultVolume,
			PlaybackRate: 1,
		},
	}
}

func (m Model) viewScores() string {
	if m.result == nil || layout.IsNarrowMode(m.width) {
		return ""
	}
	ranked := m.result.Ranked()
	parts := make([]string, 0, rankedScores)
	for i, sc := range ranked {
		if i == rankedScores {
			break
		}
		color := styles.AccentColor(m.palette.Color(sc.Genre))
		parts = append(parts, playerbar.GenreBadge(sc.Genre, sc.Confidence, color))
	}
	line := strings.Join(parts, styles.T().S().Subtle.Render("  ·  "))
	return render.Fit(" "+line, m.width)
}

func (m Model) viewHelp() string {
	global := keymap.HelpKeys(keymap.ByContext("global"))
	playback := keymap.HelpKeys(keymap.ByContext("playback"))
	if m.showHelp {
		return m.help.FullHelpView([][]key.Binding{global, playback})
	}
	return m.help.ShortHelpView(global)
}
