package visualizer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the default render loop rate.
const DefaultFPS = 30

// FrameMsg is delivered once per scheduled frame. ID names the visualizer
// instance and Token the loop that scheduled it; a message whose token is
// no longer live is dropped.
type FrameMsg struct {
	ID    string
	Token uint64
}

// Scheduler schedules the next frame of a render loop.
type Scheduler interface {
	Next(msg FrameMsg) tea.Cmd
}

// TickScheduler schedules frames with tea.Tick at a fixed interval.
type TickScheduler struct {
	Interval time.Duration
}

// NewTickScheduler returns a scheduler running at fps frames per second.
func NewTickScheduler(fps int) TickScheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return TickScheduler{Interval: time.Second / time.Duration(fps)}
}

func (s TickScheduler) Next(msg FrameMsg) tea.Cmd {
	return tea.Tick(s.Interval, func(time.Time) tea.Msg {
		return msg
	})
}
