//go:build unix

// Package stderr captures output that C libraries (ALSA below the audio
// output) write directly to file descriptor 2, bypassing os.Stderr.
// Raw writes would corrupt the TUI layout; captured lines are shown as
// the player's inline message instead.
package stderr

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	mu        sync.Mutex
	origFd    = -1
	pipeRead  *os.File
	pipeWrite *os.File
)

// Start begins capturing stderr output. It must run before the audio
// output is initialized. On error the program continues uncaptured.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if origFd >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origFd, pipeRead, pipeWrite = orig, r, w
	go pump(r, messages)
	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origFd
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(fd, []byte(msg))
}

// Stop restores the original stderr.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if origFd < 0 {
		return
	}

	_ = unix.Dup2(origFd, int(os.Stderr.Fd()))
	_ = unix.Close(origFd)
	pipeWrite.Close()
	pipeRead.Close()
	origFd = -1
}
