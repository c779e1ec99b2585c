package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a UI element updated in place.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Harness wraps a component for testing, providing helpers to simulate
// key presses and collect the resulting commands.
type Harness struct {
	c    Component
	cmds []tea.Cmd
}

// NewHarness creates a test harness for c.
func NewHarness(c Component) *Harness {
	return &Harness{c: c}
}

// View returns the component's rendered content.
func (h *Harness) View() string {
	return h.c.View()
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	cmd := h.c.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Commands returns all commands collected so far.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
