// Package mpris exposes the mounted player over the MPRIS D-Bus interface
// so desktop media keys and applets can control it.
package mpris

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spectra/internal/transport"
)

// Command is a remote control request.
type Command int

const (
	CmdPlay Command = iota
	CmdPause
	CmdToggle
	CmdStop
	CmdSeekBy  // Seconds is a relative offset
	CmdSeekTo  // Seconds is an absolute position
	CmdVolume  // Value is the new volume
	CmdRate    // Value is the new playback rate
	CmdOpenURI // URI is the source to load
)

// CommandMsg carries a remote command into the bubbletea program. Remote
// calls arrive on D-Bus goroutines; they only ever reach the transport
// through the program's message loop.
type CommandMsg struct {
	Cmd     Command
	Seconds float64
	Value   float64
	URI     string
}

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// relay holds the published snapshot and the program commands go to.
type relay struct {
	snap atomic.Pointer[transport.Snapshot]

	mu     sync.Mutex
	sender Sender
}

// Publish stores the snapshot property reads are answered from.
func (r *relay) Publish(s transport.Snapshot) {
	r.snap.Store(&s)
}

// Attach sets the program commands are sent to. Commands received before
// Attach are dropped.
func (r *relay) Attach(s Sender) {
	r.mu.Lock()
	r.sender = s
	r.mu.Unlock()
}

func (r *relay) snapshot() (transport.Snapshot, bool) {
	s := r.snap.Load()
	if s == nil {
		return transport.Snapshot{}, false
	}
	return *s, true
}

func (r *relay) send(msg CommandMsg) {
	r.mu.Lock()
	s := r.sender
	r.mu.Unlock()
	if s != nil {
		s.Send(msg)
	}
}
