package media

import (
	"sync"
	"sync/atomic"
)

type listener struct {
	kind    EventKind
	fn      func(Event)
	removed atomic.Bool
}

// Emitter keeps listener registrations and delivers events to them.
// The zero value is ready to use.
type Emitter struct {
	mu        sync.Mutex
	listeners []*listener
	pending   []Event
	draining  bool
}

// AddListener registers fn for events of kind.
func (e *Emitter) AddListener(kind EventKind, fn func(Event)) func() {
	l := &listener{kind: kind, fn: fn}

	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.removed.Store(true)
			e.mu.Lock()
			for i, cur := range e.listeners {
				if cur == l {
					e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
					break
				}
			}
			e.mu.Unlock()
		})
	}
}

// Emit queues ev for asynchronous, ordered delivery.
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()
	e.pending = append(e.pending, ev)
	if e.draining {
		e.mu.Unlock()
		return
	}
	e.draining = true
	e.mu.Unlock()

	go e.drain()
}

// Dispatch delivers ev synchronously on the calling goroutine.
func (e *Emitter) Dispatch(ev Event) {
	for _, l := range e.snapshot(ev.Kind) {
		l.call(ev)
	}
}

func (e *Emitter) drain() {
	for {
		e.mu.Lock()
		if len(e.pending) == 0 {
			e.draining = false
			e.mu.Unlock()
			return
		}
		ev := e.pending[0]
		e.pending = e.pending[1:]
		e.mu.Unlock()

		e.Dispatch(ev)
	}
}

func (e *Emitter) snapshot(kind EventKind) []*listener {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []*listener
	for _, l := range e.listeners {
		if l.kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func (l *listener) call(ev Event) {
	if l.removed.Load() {
		return
	}
	l.fn(ev)
}
