package media

import (
	"context"
	"sync"
	"time"
)

// Mock is a test double for Element. Nothing happens on its own: tests
// drive the lifecycle with the Fire helpers, which deliver synchronously.
type Mock struct {
	events Emitter

	mu       sync.Mutex
	src      string
	paused   bool
	current  time.Duration
	duration time.Duration
	volume   float64
	ready    ReadyState
	playErr  error
	released int
	loads    []string
	gen      uint64

	// Loaded receives the source of every Load with a non-empty source.
	Loaded chan string
}

// NewMock creates a mock element.
func NewMock() *Mock {
	return &Mock{
		paused: true,
		volume: 1,
		Loaded: make(chan string, 16),
	}
}

func (m *Mock) SetSource(src string) {
	m.mu.Lock()
	m.src = src
	m.mu.Unlock()
}

func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.src
}

func (m *Mock) Load() uint64 {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.paused = true
	m.current = 0
	m.duration = 0
	m.ready = HaveNothing
	src := m.src
	if src != "" {
		m.loads = append(m.loads, src)
	}
	m.mu.Unlock()

	if src != "" {
		select {
		case m.Loaded <- src:
		default:
		}
	}
	return gen
}

func (m *Mock) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return ErrAborted
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playErr != nil {
		return m.playErr
	}
	m.paused = false
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
}

func (m *Mock) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Mock) CurrentTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Mock) SetCurrentTime(d time.Duration) {
	m.mu.Lock()
	m.current = d
	m.mu.Unlock()
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	m.volume = level
	m.mu.Unlock()
}

func (m *Mock) ReadyState() ReadyState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

func (m *Mock) AddListener(kind EventKind, fn func(Event)) func() {
	return m.events.AddListener(kind, fn)
}

func (m *Mock) Release() {
	m.mu.Lock()
	m.released++
	m.gen++
	m.src = ""
	m.paused = true
	m.current = 0
	m.duration = 0
	m.ready = HaveNothing
	m.mu.Unlock()
}

// Test helpers

// SetPlayError makes Play fail with err until cleared with nil.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	m.playErr = err
	m.mu.Unlock()
}

// SetReadyState overrides the ready state without firing events.
func (m *Mock) SetReadyState(r ReadyState) {
	m.mu.Lock()
	m.ready = r
	m.mu.Unlock()
}

// Releases returns how many times Release was called.
func (m *Mock) Releases() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.released
}

// LoadToken returns the token of the most recent Load.
func (m *Mock) LoadToken() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Loads returns the sources passed to Load, in order.
func (m *Mock) Loads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loads...)
}

// FireReady simulates metadata arriving with duration d followed by the
// can-play-through signal.
func (m *Mock) FireReady(d time.Duration) {
	m.mu.Lock()
	m.duration = d
	m.ready = HaveEnoughData
	src, gen := m.src, m.gen
	m.mu.Unlock()

	m.events.Dispatch(Event{Kind: EventLoadedMetadata, Src: src, Load: gen})
	m.events.Dispatch(Event{Kind: EventCanPlayThrough, Src: src, Load: gen})
}

// FireEvent delivers ev as is.
func (m *Mock) FireEvent(ev Event) {
	m.events.Dispatch(ev)
}

// FireCanPlayThrough delivers a can-play-through event for the current
// load without changing the ready state.
func (m *Mock) FireCanPlayThrough() {
	m.FireCanPlayThroughFor(m.LoadToken())
}

// FireCanPlayThroughFor delivers a can-play-through event for the load
// with the given token, as a late event from an earlier load would be.
// The event carries the current source.
func (m *Mock) FireCanPlayThroughFor(load uint64) {
	m.events.Dispatch(Event{Kind: EventCanPlayThrough, Src: m.Source(), Load: load})
}

// FireError simulates a pipeline failure.
func (m *Mock) FireError(code ErrorCode) {
	m.mu.Lock()
	m.ready = HaveNothing
	src, gen := m.src, m.gen
	m.mu.Unlock()

	m.events.Dispatch(Event{Kind: EventError, Src: src, Load: gen, Err: &Error{Code: code}})
}

// FireTimeUpdate moves the position to current and delivers a time update.
func (m *Mock) FireTimeUpdate(current time.Duration) {
	m.mu.Lock()
	m.current = current
	src, gen := m.src, m.gen
	m.mu.Unlock()

	m.events.Dispatch(Event{Kind: EventTimeUpdate, Src: src, Load: gen})
}

// FireEnded simulates the resource playing to its end.
func (m *Mock) FireEnded() {
	m.mu.Lock()
	m.paused = true
	m.current = m.duration
	src, gen := m.src, m.gen
	m.mu.Unlock()

	m.events.Dispatch(Event{Kind: EventEnded, Src: src, Load: gen})
}

// Verify Mock implements Element at compile time.
var _ Element = (*Mock)(nil)
