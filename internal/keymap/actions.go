// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit  Action = "quit"
	ActionHelp  Action = "help"
	ActionOpen  Action = "open"  // o - open file prompt
	ActionEject Action = "eject" // x - unmount the player
	ActionFocus Action = "focus" // tab - cycle seek/volume slider focus

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionSkipForward Action = "skip_forward"
	ActionSkipBack    Action = "skip_back"
	ActionToggleMute  Action = "toggle_mute"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionRateUp      Action = "rate_up"
	ActionRateDown    Action = "rate_down"
	ActionCycleRate   Action = "cycle_rate"
)
