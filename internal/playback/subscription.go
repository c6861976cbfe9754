package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateChanged <-chan StateChange
	Ended        <-chan Ended
	Error        <-chan ErrorEvent
	Done         <-chan struct{}

	// Internal write channels
	stateCh chan StateChange
	endedCh chan Ended
	errorCh chan ErrorEvent
	doneCh  chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stateCh: make(chan StateChange, eventBufferSize),
		endedCh: make(chan Ended, eventBufferSize),
		errorCh: make(chan ErrorEvent, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.Ended = s.endedCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendState sends a state change, dropping the oldest queued one when the
// buffer is full so the latest snapshot always gets through.
func (s *Subscription) sendState(e StateChange) {
	for {
		select {
		case s.stateCh <- e:
			return
		default:
		}
		select {
		case <-s.stateCh:
		default:
		}
	}
}

// sendEnded sends an end event (non-blocking).
func (s *Subscription) sendEnded(e Ended) {
	select {
	case s.endedCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
