// Package prompt provides the single-line input used to open audio files.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/ui"
	"github.com/llehouerou/spectra/internal/ui/action"
	"github.com/llehouerou/spectra/internal/ui/render"
	"github.com/llehouerou/spectra/internal/ui/styles"
)

// Result is emitted when the prompt is confirmed or canceled.
type Result struct {
	Text     string
	Canceled bool // True if user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "prompt.result" }

// ActionMsg creates an action.Msg for a prompt action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.SourcePrompt, Action: a}
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

// Model wraps a bubbles text input with a title and an error line.
type Model struct {
	ui.Base
	title string
	err   string
	input textinput.Model
}

// New creates a new prompt model.
func New() Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "path/to/clip.mp3"
	in.CharLimit = 4096
	return Model{input: in}
}

// Start opens the prompt with initial text and focuses it.
func (m *Model) Start(title, initial string) tea.Cmd {
	m.title = title
	m.err = ""
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.SetFocused(true)
	return m.input.Focus()
}

// Stop closes the prompt.
func (m *Model) Stop() {
	m.SetFocused(false)
	m.input.Blur()
	m.err = ""
}

// Active returns true while the prompt has focus.
func (m *Model) Active() bool {
	return m.IsFocused()
}

// SetError shows msg under the input until the next edit.
func (m *Model) SetError(msg string) {
	m.err = msg
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetSize sets the prompt width.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-4, 1)
}

// Update handles key input while the prompt is active.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.Active() {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Stop()
			return func() tea.Msg {
				return ActionMsg(Result{Canceled: true})
			}
		case "enter":
			text := unquote(strings.TrimSpace(m.input.Value()))
			return func() tea.Msg {
				return ActionMsg(Result{Text: text})
			}
		}
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// unquote strips the quotes terminals add around dropped file paths.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// View renders the prompt, or "" when inactive.
func (m *Model) View() string {
	if !m.Active() {
		return ""
	}
	lines := []string{titleStyle().Render(m.title), m.input.View()}
	if m.err != "" {
		lines = append(lines, styles.T().S().Error.Render(render.Truncate(m.err, max(m.Width(), 10))))
	} else {
		lines = append(lines, styles.T().S().Subtle.Render("Enter: open, Esc: cancel"))
	}
	return strings.Join(lines, "\n")
}
