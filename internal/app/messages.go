// Package app contains the root bubbletea model of the player.
package app

import (
	"github.com/llehouerou/spectra/internal/genre"
	"github.com/llehouerou/spectra/internal/media"
)

// MediaEventMsg carries a media session event of the player with PlayerID.
type MediaEventMsg struct {
	PlayerID string
	Event    media.Event
}

// MediaClosedMsg is sent once a player's session subscription ends.
type MediaClosedMsg struct {
	PlayerID string
}

// OpenFileMsg asks the app to validate and play a file.
type OpenFileMsg struct {
	Path string
}

// ClassifyResultMsg carries a classification result for the player that
// requested it.
type ClassifyResultMsg struct {
	PlayerID string
	Result   *genre.Result
	Err      error
}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg struct {
	Line string
}

// ClearMessageMsg clears the inline message if it is still the one with
// Version.
type ClearMessageMsg struct {
	Version int
}
