package media

import "sync"

const eventBufferSize = 64

// Subscription delivers session events in emission order.
//
// All event kinds share one channel: a TimeUpdate emitted before Ended must
// be observed before it.
type Subscription struct {
	Events <-chan Event
	Done   <-chan struct{}

	eventCh   chan Event
	doneCh    chan struct{}
	closeOnce sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		eventCh: make(chan Event, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.Events = s.eventCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.doneCh) })
}

// send delivers e, waiting for buffer space unless the subscription closes.
func (s *Subscription) send(e Event) {
	select {
	case s.eventCh <- e:
	case <-s.doneCh:
	}
}

// sendLossy delivers e only if buffer space is available.
// Progress updates are superseded by the next one, so dropping is harmless.
func (s *Subscription) sendLossy(e Event) {
	select {
	case s.eventCh <- e:
	default:
	}
}

// subscribers is the fan-out list shared by Session implementations.
type subscribers struct {
	mu   sync.RWMutex
	subs []*Subscription
}

func (l *subscribers) add() *Subscription {
	sub := newSubscription()
	l.mu.Lock()
	l.subs = append(l.subs, sub)
	l.mu.Unlock()
	return sub
}

func (l *subscribers) emit(e Event) {
	l.mu.RLock()
	subs := l.subs
	l.mu.RUnlock()
	for _, sub := range subs {
		if _, ok := e.(TimeUpdate); ok {
			sub.sendLossy(e)
			continue
		}
		sub.send(e)
	}
}

func (l *subscribers) closeAll() {
	l.mu.Lock()
	subs := l.subs
	l.subs = nil
	l.mu.Unlock()
	for _, sub := range subs {
		sub.close()
	}
}
