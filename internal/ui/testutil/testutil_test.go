package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with truecolor", "\x1b[38;2;225;29;72m█\x1b[0m", "█"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLine(t *testing.T) {
	out := "first\n\x1b[1msecond line\x1b[0m\nthird"
	if got := FindLine(out, "second"); got != "second line" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(out, "missing"); got != "" {
		t.Errorf("FindLine = %q, want empty", got)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines = %q", got)
	}
}

type keyRecorder struct {
	keys []string
}

func (k *keyRecorder) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	k.keys = append(k.keys, key.String())
	if key.Type == tea.KeyEnter {
		return func() tea.Msg { return "enter-pressed" }
	}
	return nil
}

func (k *keyRecorder) View() string { return "recorder" }

func TestHarness(t *testing.T) {
	rec := &keyRecorder{}
	h := NewHarness(rec)

	h.SendKey("a")
	h.SendSpecialKey(tea.KeyLeft)
	cmd := h.SendSpecialKey(tea.KeyEnter)

	if len(rec.keys) != 3 || rec.keys[0] != "a" || rec.keys[1] != "left" {
		t.Errorf("keys = %q", rec.keys)
	}
	if len(h.Commands()) != 1 {
		t.Errorf("expected 1 command, got %d", len(h.Commands()))
	}
	if ExecuteCmd(cmd) != "enter-pressed" || ExecuteCmd(h.LastCommand()) != "enter-pressed" {
		t.Error("enter command not collected")
	}
	if ExecuteCmd(nil) != nil {
		t.Error("nil command should yield nil")
	}
	if h.View() != "recorder" {
		t.Error("View should delegate")
	}
}
