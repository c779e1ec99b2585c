// Package slider provides a focusable horizontal range control.
package slider

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/spectra/internal/ui"
	"github.com/llehouerou/spectra/internal/ui/action"
	"github.com/llehouerou/spectra/internal/ui/styles"
)

// Changed is emitted when the user moves the slider.
type Changed struct {
	ID    string
	Value float64
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "slider.changed" }

// ActionMsg creates an action.Msg for a slider action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: action.SourceSlider, Action: a}
}

const (
	fillGlyph  = "━"
	trackGlyph = "─"
	knobGlyph  = "●"
)

// Model is a range control over [min, max]. While focused it owns the
// arrow keys, so the global shortcuts must not see them.
type Model struct {
	ui.Base
	id       string
	min, max float64
	step     float64
	value    float64
	accent   lipgloss.Color
}

// New creates a slider. step is the amount moved per arrow press.
func New(id string, lo, hi, step float64) Model {
	return Model{id: id, min: lo, max: hi, step: step}
}

// ID returns the slider id.
func (m *Model) ID() string { return m.id }

// Value returns the current value.
func (m *Model) Value() float64 { return m.value }

// SetAccent sets the fill color.
func (m *Model) SetAccent(c lipgloss.Color) { m.accent = c }

// SetRange updates the bounds and re-clamps the value. An empty range
// (hi <= lo) disables the slider.
func (m *Model) SetRange(lo, hi float64) {
	m.min, m.max = lo, hi
	m.value = m.clamp(m.value)
}

// SetValue sets the value without emitting Changed.
func (m *Model) SetValue(v float64) {
	m.value = m.clamp(v)
}

// Enabled reports whether the range is usable.
func (m *Model) Enabled() bool {
	return m.max > m.min
}

// Ratio returns the value position in [0, 1].
func (m *Model) Ratio() float64 {
	if !m.Enabled() {
		return 0
	}
	return (m.value - m.min) / (m.max - m.min)
}

func (m *Model) clamp(v float64) float64 {
	if !m.Enabled() {
		return m.min
	}
	return min(max(v, m.min), m.max)
}

// Update moves the slider on arrow, page and home/end keys while focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() || !m.Enabled() {
		return nil
	}

	v := m.value
	switch key.String() {
	case "left", "h":
		v -= m.step
	case "right", "l":
		v += m.step
	case "pgdown", "shift+left":
		v -= m.step * 10
	case "pgup", "shift+right":
		v += m.step * 10
	case "home":
		v = m.min
	case "end":
		v = m.max
	default:
		return nil
	}

	v = m.clamp(v)
	if v == m.value {
		return nil
	}
	m.value = v
	id := m.id
	return func() tea.Msg {
		return ActionMsg(Changed{ID: id, Value: v})
	}
}

// View renders the slider track at the model width.
func (m *Model) View() string {
	return Track(m.Ratio(), m.Width(), m.accent, m.IsFocused())
}

// Track renders a track of width cells filled to ratio. A focused track
// shows a knob at the fill edge.
func Track(ratio float64, width int, accent lipgloss.Color, focused bool) string {
	if width <= 0 {
		return ""
	}
	ratio = min(max(ratio, 0), 1)
	filled := min(int(float64(width)*ratio+0.5), width)

	t := styles.T()
	fill := lipgloss.NewStyle().Foreground(t.AccentOr(accent))
	rest := lipgloss.NewStyle().Foreground(t.BgTrack)

	if !focused {
		return fill.Render(strings.Repeat(fillGlyph, filled)) +
			rest.Render(strings.Repeat(trackGlyph, width-filled))
	}

	knob := min(filled, width-1)
	return fill.Render(strings.Repeat(fillGlyph, knob)) +
		fill.Bold(true).Render(knobGlyph) +
		rest.Render(strings.Repeat(trackGlyph, width-knob-1))
}
