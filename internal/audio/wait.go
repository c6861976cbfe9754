package audio

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/llehouerou/serein/internal/media"
)

var errWaitTimeout = errors.New("wait timed out")

// waiter is a one-shot subscription to element events of one load.
// Register it before triggering the load so nothing is missed; events are
// queued until wait learns the load token and picks the first match.
type waiter struct {
	mu      sync.Mutex
	pending []media.Event
	notify  chan struct{}
	removes []func()
}

func listen(el media.Element, kinds ...media.EventKind) *waiter {
	w := &waiter{notify: make(chan struct{}, 1)}
	for _, kind := range kinds {
		w.removes = append(w.removes, el.AddListener(kind, func(ev media.Event) {
			w.mu.Lock()
			w.pending = append(w.pending, ev)
			w.mu.Unlock()
			select {
			case w.notify <- struct{}{}:
			default:
			}
		}))
	}
	return w
}

// next pops the first queued event of the given load, discarding events
// of other loads.
func (w *waiter) next(load uint64) (media.Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.pending) > 0 {
		ev := w.pending[0]
		w.pending = w.pending[1:]
		if ev.Load == load {
			return ev, true
		}
	}
	return media.Event{}, false
}

// wait blocks until the first of an event of the given load, the timeout,
// or ctx being done. The listeners are removed before it returns.
func (w *waiter) wait(ctx context.Context, timeout time.Duration, load uint64) (media.Event, error) {
	defer w.stop()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		if ev, ok := w.next(load); ok {
			return ev, nil
		}
		select {
		case <-w.notify:
		case <-timer.C:
			return media.Event{}, errWaitTimeout
		case <-ctx.Done():
			return media.Event{}, ctx.Err()
		}
	}
}

func (w *waiter) stop() {
	for _, remove := range w.removes {
		remove()
	}
}

// withSession derives a context that is also cancelled when session is.
func withSession(ctx, session context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(session, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
