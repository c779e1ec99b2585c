// internal/media/mock.go
package media

import "sync"

// Mock is a test double for Session. It records commands and lets tests
// inject events with Emit.
type Mock struct {
	mu sync.Mutex

	subs subscribers

	gen      uint64
	loads    []string
	plays    int
	pauses   int
	seeks    []float64
	volumes  []float64
	mutes    []bool
	rates    []float64
	tapErr   error
	tap      *MockTap
	tapCalls int
	closed   bool
}

// NewMock creates a mock session.
func NewMock() *Mock {
	return &Mock{}
}

// Verify Mock implements Session at compile time.
var _ Session = (*Mock)(nil)

func (m *Mock) Load(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	m.loads = append(m.loads, url)
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plays++
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauses++
}

func (m *Mock) Seek(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, seconds)
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volumes = append(m.volumes, level)
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutes = append(m.mutes, muted)
}

func (m *Mock) SetPlaybackRate(rate float64) error {
	if !RateAllowed(rate) {
		return ErrRateNotAllowed
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates = append(m.rates, rate)
	return nil
}

func (m *Mock) AttachTap(size int) (Tap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tapCalls++
	if m.tapErr != nil {
		return nil, m.tapErr
	}
	if m.tap != nil && !m.tap.Closed() {
		return nil, ErrTapAttached
	}
	m.tap = &MockTap{size: size}
	return m.tap, nil
}

func (m *Mock) Subscribe() *Subscription {
	return m.subs.add()
}

func (m *Mock) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.subs.closeAll()
	return nil
}

// Test helpers

// Gen returns the generation of the latest Load.
func (m *Mock) Gen() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Emit delivers e to all subscribers.
func (m *Mock) Emit(e Event) { m.subs.emit(e) }

// SetTapError makes AttachTap fail with err.
func (m *Mock) SetTapError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tapErr = err
}

func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plays
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

func (m *Mock) Seeks() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seeks...)
}

func (m *Mock) Volumes() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volumes...)
}

func (m *Mock) Mutes() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.mutes...)
}

func (m *Mock) Rates() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.rates...)
}

// TapCalls returns how many times AttachTap was called.
func (m *Mock) TapCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tapCalls
}

// LastTap returns the most recently attached tap, or nil.
func (m *Mock) LastTap() *MockTap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tap
}

func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// MockTap is the Tap returned by Mock. Samples returns the configured signal.
type MockTap struct {
	mu     sync.Mutex
	size   int
	signal []float64
	reads  int
	closed bool
}

func (t *MockTap) Samples(n int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reads++
	out := make([]float64, n)
	copy(out, t.signal)
	return out
}

func (t *MockTap) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// SetSignal sets the samples returned by Samples.
func (t *MockTap) SetSignal(s []float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.signal = s
}

func (t *MockTap) Size() int { return t.size }

func (t *MockTap) Reads() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reads
}

func (t *MockTap) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
