// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/spectra/internal/classify"
	"github.com/llehouerou/spectra/internal/stderr"
)

// messageTTL is how long an inline message stays up.
const messageTTL = 5 * time.Second

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchStderr returns a command that waits for stderr output from C libraries.
func WatchStderr() tea.Cmd {
	return waitForChannel(stderr.Messages(), func(line string, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return StderrMsg{Line: line}
	})
}

// ClearMessageCmd returns a command that clears message version after messageTTL.
func ClearMessageCmd(version int) tea.Cmd {
	return tea.Tick(messageTTL, func(_ time.Time) tea.Msg {
		return ClearMessageMsg{Version: version}
	})
}

// OpenFileCmd returns a command that asks the app to open path.
func OpenFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return OpenFileMsg{Path: path}
	}
}

// ClassifyCmd uploads path to the classifier on behalf of playerID.
func ClassifyCmd(client *classify.Client, playerID, path string) tea.Cmd {
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		log.Debug().Str("player", playerID).Str("path", path).Msg("app: classify")
		res, err := client.Classify(context.Background(), path)
		if err != nil {
			log.Debug().Err(err).Str("player", playerID).Msg("app: classify failed")
		} else {
			log.Debug().Str("player", playerID).Str("genre", res.Genre).Float64("confidence", res.Top()).Msg("app: classified")
		}
		return ClassifyResultMsg{PlayerID: playerID, Result: res, Err: err}
	}
}
