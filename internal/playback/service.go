// Package playback binds an audio manager to the presentation layer: it
// keeps the State snapshot up to date and fans it out to subscribers.
package playback

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/media"
)

// Controller owns one audio manager for the lifetime of a player view.
// Operation failures are recorded in the snapshot and also returned.
type Controller struct {
	mgr *audio.Manager
	log hclog.Logger

	mu     sync.Mutex
	state  State
	subs   []*Subscription
	closed bool
}

// New creates a controller around mgr and takes over its callbacks.
func New(mgr *audio.Manager, logger hclog.Logger) *Controller {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c := &Controller{
		mgr:   mgr,
		log:   logger,
		state: State{Volume: mgr.Volume()},
	}
	mgr.OnProgress(c.handleProgress)
	mgr.OnEnd(c.handleEnd)
	mgr.OnError(c.handleError)
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LoadAudio loads url as resource id. A load superseded by a newer one
// leaves the snapshot to the newer load.
func (c *Controller) LoadAudio(ctx context.Context, id, url string) error {
	c.update(func(s *State) {
		s.ID = id
		s.IsLoading = true
		s.IsPlaying = false
		s.Progress = 0
		s.CurrentTime = 0
		s.Duration = 0
		s.clearError()
	})

	err := c.mgr.Load(ctx, id, url)
	if audio.IsSuperseded(err) {
		return err
	}
	if err != nil {
		c.log.Warn("load failed", "id", id, "url", url, "error", err)
		c.update(func(s *State) {
			s.IsLoading = false
			s.setError(err)
		})
		c.broadcastError(ErrorEvent{Operation: "load", ID: id, Err: err})
		return err
	}

	dur := c.mgr.Duration()
	c.update(func(s *State) {
		s.IsLoading = false
		s.Duration = dur
	})
	return nil
}

// Play starts or resumes playback.
func (c *Controller) Play(ctx context.Context) error {
	err := c.mgr.Play(ctx)
	if audio.IsSuperseded(err) {
		return err
	}
	if err != nil {
		c.log.Warn("play failed", "id", c.mgr.ID(), "error", err)
		c.update(func(s *State) {
			s.IsPlaying = false
			s.setError(err)
		})
		c.broadcastError(ErrorEvent{Operation: "play", ID: c.mgr.ID(), Err: err})
		return err
	}
	c.update(func(s *State) {
		s.IsPlaying = true
		s.clearError()
	})
	return nil
}

func (c *Controller) Pause() {
	c.mgr.Pause()
	c.update(func(s *State) { s.IsPlaying = false })
}

// Stop rewinds to the start and keeps the resource loaded.
func (c *Controller) Stop() {
	c.mgr.Stop()
	c.update(func(s *State) {
		s.IsPlaying = false
		s.Progress = 0
		s.CurrentTime = 0
	})
}

// Toggle pauses when playing and plays otherwise.
func (c *Controller) Toggle(ctx context.Context) error {
	if c.mgr.IsPlaying() {
		c.Pause()
		return nil
	}
	return c.Play(ctx)
}

// Seek moves the position by delta.
func (c *Controller) Seek(delta time.Duration) {
	c.mgr.Seek(delta)
	cur, dur := c.mgr.CurrentTime(), c.mgr.Duration()
	c.update(func(s *State) {
		s.CurrentTime = cur
		s.Duration = dur
		s.Progress = audio.Percent(cur, dur)
	})
}

func (c *Controller) SetVolume(level float64) {
	c.mgr.SetVolume(level)
	v := c.mgr.Volume()
	c.update(func(s *State) { s.Volume = v })
}

func (c *Controller) ClearError() {
	c.update(func(s *State) { s.clearError() })
}

// TrackInfo returns tag metadata of the loaded resource, if any.
func (c *Controller) TrackInfo() *media.TrackInfo {
	return c.mgr.TrackInfo()
}

// Subscribe creates a new event subscription. Subscribing after Close
// returns a subscription whose Done channel is already closed.
func (c *Controller) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close releases the audio resources and ends all subscriptions.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	c.mgr.OnProgress(nil)
	c.mgr.OnEnd(nil)
	c.mgr.OnError(nil)
	c.mgr.Destroy()

	for _, sub := range subs {
		sub.close()
	}
}

func (c *Controller) handleProgress(p audio.Progress) {
	c.update(func(s *State) {
		s.Progress = p.Percent
		s.CurrentTime = p.Current
		s.Duration = p.Duration
	})
}

func (c *Controller) handleEnd() {
	var id string
	c.update(func(s *State) {
		id = s.ID
		s.IsPlaying = false
		s.Progress = 0
		s.CurrentTime = 0
	})

	for _, sub := range c.subscribers() {
		sub.sendEnded(Ended{ID: id})
	}
}

func (c *Controller) handleError(err *audio.Error) {
	var id string
	c.update(func(s *State) {
		id = s.ID
		s.IsLoading = false
		s.IsPlaying = false
		s.setError(err)
	})
	c.broadcastError(ErrorEvent{Operation: "playback", ID: id, Err: err})
}

// update applies fn to the snapshot and notifies subscribers of a change.
func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	prev := c.state
	fn(&c.state)
	cur := c.state
	subs := append([]*Subscription(nil), c.subs...)
	c.mu.Unlock()

	if prev == cur {
		return
	}
	for _, sub := range subs {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	}
}

func (c *Controller) broadcastError(e ErrorEvent) {
	for _, sub := range c.subscribers() {
		sub.sendError(e)
	}
}

func (c *Controller) subscribers() []*Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Subscription(nil), c.subs...)
}
