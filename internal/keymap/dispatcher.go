package keymap

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Focus describes where keyboard focus is when a key arrives.
type Focus int

const (
	FocusNone  Focus = iota
	FocusText        // a text input owns the keys
	FocusRange       // a slider owns the keys
)

// Listener receives the actions of dispatched keys.
type Listener func(Action) tea.Cmd

type listenerEntry struct {
	id uint64
	fn Listener
}

// registry is the process-wide listener set. Owners are mounted players;
// at most one listener exists per owner.
var registry = struct {
	mu        sync.Mutex
	nextID    uint64
	order     []string
	listeners map[string]listenerEntry
	resolver  *Resolver
}{
	listeners: make(map[string]listenerEntry),
	resolver:  NewResolver(ByContext("playback")),
}

// Bind registers l for owner and returns its release function. Binding an
// owner again replaces its listener. Release is idempotent and never
// removes a listener bound after it.
func Bind(owner string, l Listener) (release func()) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.nextID++
	id := registry.nextID
	if _, ok := registry.listeners[owner]; !ok {
		registry.order = append(registry.order, owner)
	}
	registry.listeners[owner] = listenerEntry{id: id, fn: l}

	var once sync.Once
	return func() {
		once.Do(func() { unbind(owner, id) })
	}
}

func unbind(owner string, id uint64) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	e, ok := registry.listeners[owner]
	if !ok || e.id != id {
		return
	}
	delete(registry.listeners, owner)
	for i, o := range registry.order {
		if o == owner {
			registry.order = append(registry.order[:i], registry.order[i+1:]...)
			break
		}
	}
}

// Bound returns the number of registered listeners.
func Bound() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.listeners)
}

// Dispatch resolves a playback key and hands the action to every listener
// in bind order. Keys are ignored while a text input or slider has focus,
// and unbound keys return nil.
func Dispatch(key string, focus Focus) tea.Cmd {
	if focus == FocusText || focus == FocusRange {
		return nil
	}

	registry.mu.Lock()
	action := registry.resolver.Resolve(key)
	var fns []Listener
	if action != "" {
		for _, owner := range registry.order {
			fns = append(fns, registry.listeners[owner].fn)
		}
	}
	registry.mu.Unlock()

	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0](action)
	}
	cmds := make([]tea.Cmd, 0, len(fns))
	for _, fn := range fns {
		cmds = append(cmds, fn(action))
	}
	return tea.Batch(cmds...)
}
