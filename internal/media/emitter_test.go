package media

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_DispatchReachesMatchingKindOnly(t *testing.T) {
	var e Emitter
	var got []EventKind

	e.AddListener(EventEnded, func(ev Event) { got = append(got, ev.Kind) })
	e.AddListener(EventError, func(ev Event) { got = append(got, ev.Kind) })

	e.Dispatch(Event{Kind: EventEnded})
	e.Dispatch(Event{Kind: EventTimeUpdate})

	assert.Equal(t, []EventKind{EventEnded}, got)
}

func TestEmitter_RemoveStopsDelivery(t *testing.T) {
	var e Emitter
	calls := 0

	remove := e.AddListener(EventTimeUpdate, func(Event) { calls++ })
	e.Dispatch(Event{Kind: EventTimeUpdate})
	remove()
	remove() // second call is a no-op
	e.Dispatch(Event{Kind: EventTimeUpdate})

	assert.Equal(t, 1, calls)
}

func TestEmitter_EmitPreservesOrder(t *testing.T) {
	var e Emitter
	var mu sync.Mutex
	var got []EventKind
	done := make(chan struct{})

	record := func(ev Event) {
		mu.Lock()
		got = append(got, ev.Kind)
		n := len(got)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	}
	e.AddListener(EventLoadedMetadata, record)
	e.AddListener(EventLoadedData, record)
	e.AddListener(EventCanPlayThrough, record)

	e.Emit(Event{Kind: EventLoadedMetadata})
	e.Emit(Event{Kind: EventLoadedData})
	e.Emit(Event{Kind: EventCanPlayThrough})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("events not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.Equal(t, []EventKind{EventLoadedMetadata, EventLoadedData, EventCanPlayThrough}, got)
}

func TestEmitter_EmitIsAsynchronous(t *testing.T) {
	var e Emitter
	var mu sync.Mutex
	delivered := make(chan struct{})

	e.AddListener(EventEnded, func(Event) {
		// Blocks until the emitting goroutine releases mu, which it only
		// does after Emit returned.
		mu.Lock()
		mu.Unlock() //nolint:staticcheck // empty critical section is the point
		close(delivered)
	})

	mu.Lock()
	e.Emit(Event{Kind: EventEnded})
	mu.Unlock()

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}
