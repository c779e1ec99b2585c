// Package keymap defines key bindings for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding maps keys to an action and documents it.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "playback"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionOpen, []string{"o"}, "Open file", "global"},
	{ActionEject, []string{"x"}, "Close player", "global"},
	{ActionFocus, []string{"tab"}, "Focus slider", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek forward", "playback"},
	{ActionSkipBack, []string{"shift+left"}, "Skip back", "playback"},
	{ActionSkipForward, []string{"shift+right"}, "Skip forward", "playback"},
	{ActionToggleMute, []string{"m"}, "Mute", "playback"},
	{ActionVolumeUp, []string{"up"}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"down"}, "Volume down", "playback"},
	{ActionRateUp, []string{"]"}, "Faster", "playback"},
	{ActionRateDown, []string{"["}, "Slower", "playback"},
	{ActionCycleRate, []string{"r"}, "Cycle speed", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpKeys converts bindings to bubbles key bindings for the help view.
// The help label is the last key of each binding, the most readable one.
func HelpKeys(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		label := b.Keys[len(b.Keys)-1]
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(label, b.Description),
		))
	}
	return out
}
