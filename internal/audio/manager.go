// Package audio manages one playable audio resource at a time: loading
// with an existence probe and readiness waits, transport controls, progress
// reporting and classification of every failure into a user-facing Error.
package audio

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/llehouerou/serein/internal/media"
)

const (
	DefaultLoadTimeout  = 10 * time.Second
	DefaultReadyTimeout = 5 * time.Second
	DefaultProbeTimeout = 5 * time.Second
)

// Options configures a Manager. Zero values use the defaults.
type Options struct {
	Client       *http.Client
	Logger       hclog.Logger
	LoadTimeout  time.Duration
	ReadyTimeout time.Duration
	ProbeTimeout time.Duration
}

// Manager owns one media element and the session loaded into it.
//
// OnProgress, OnEnd and OnError each hold a single handler: registering a
// new one replaces the previous one (last writer wins). Handlers run on the
// element's event goroutine, never with the manager's lock held, so they
// may call back into the manager.
//
// Failures of Load and Play are returned to the caller only. OnError
// reports element failures that happen after a resource became ready.
type Manager struct {
	el           media.Element
	client       *http.Client
	log          hclog.Logger
	loadTimeout  time.Duration
	readyTimeout time.Duration
	probeTimeout time.Duration

	mu      sync.Mutex
	id      string
	url     string
	state   SessionState
	gen     uint64
	load    uint64 // token of the element's current load
	session context.Context
	cancel  context.CancelFunc
	volume  float64

	onProgress func(Progress)
	onEnd      func()
	onError    func(*Error)
}

// New creates a manager driving el.
func New(el media.Element, opts Options) *Manager {
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = DefaultLoadTimeout
	}
	if opts.ReadyTimeout <= 0 {
		opts.ReadyTimeout = DefaultReadyTimeout
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = DefaultProbeTimeout
	}

	m := &Manager{
		el:           el,
		client:       opts.Client,
		log:          opts.Logger,
		loadTimeout:  opts.LoadTimeout,
		readyTimeout: opts.ReadyTimeout,
		probeTimeout: opts.ProbeTimeout,
		volume:       clampVolume(el.Volume()),
	}
	el.AddListener(media.EventTimeUpdate, m.handleTimeUpdate)
	el.AddListener(media.EventEnded, m.handleEnded)
	el.AddListener(media.EventError, m.handleError)
	return m
}

// CheckResourceExists reports whether url can be retrieved.
func (m *Manager) CheckResourceExists(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	if err := probe(ctx, m.client, url); err != nil {
		m.log.Debug("resource probe failed", "url", url, "error", err)
		return false
	}
	return true
}

// Load tears down the current session and loads url as resource id. It
// returns once the element can play through, or with an *Error.
func (m *Manager) Load(ctx context.Context, id, url string) error {
	m.mu.Lock()
	m.teardownLocked()
	m.state = Loading
	gen, session := m.gen, m.session
	m.mu.Unlock()

	ctx, cancel := withSession(ctx, session)
	defer cancel()

	m.log.Info("loading", "id", id, "url", url)

	probeCtx, probeCancel := context.WithTimeout(ctx, m.probeTimeout)
	probeErr := probe(probeCtx, m.client, url)
	probeCancel()

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return supersededError(url)
	}
	if probeErr != nil {
		if ctx.Err() != nil {
			m.abandonLocked()
			m.mu.Unlock()
			return abortedError(url, ctx.Err())
		}
		m.state = Empty
		m.mu.Unlock()
		m.log.Warn("resource not found", "url", url, "error", probeErr)
		return notFoundError(url, probeErr)
	}

	w := listen(m.el, media.EventCanPlayThrough, media.EventError)
	m.url = url
	m.el.SetSource(url)
	m.load = m.el.Load()
	token := m.load
	m.mu.Unlock()

	ev, waitErr := w.wait(ctx, m.loadTimeout, token)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return supersededError(url)
	}
	switch {
	case errors.Is(waitErr, errWaitTimeout):
		m.state = Failed
		m.log.Warn("load timed out", "url", url, "timeout", m.loadTimeout)
		return timeoutError(url)
	case waitErr != nil:
		m.abandonLocked()
		return abortedError(url, waitErr)
	case ev.Kind == media.EventError:
		m.state = Failed
		m.log.Warn("load failed", "url", url, "error", ev.Err)
		return elementError(url, ev.Err)
	}

	m.id = id
	// A concurrent Play may already have started the resource.
	if m.state == Loading {
		m.state = Ready
	}
	m.log.Info("loaded", "id", id, "duration", m.el.Duration())
	return nil
}

// Play starts or resumes the loaded resource, waiting for it to buffer
// first when needed.
func (m *Manager) Play(ctx context.Context) error {
	m.mu.Lock()
	url := m.url
	switch m.state {
	case Empty, Failed:
		m.mu.Unlock()
		return notReadyError(url, errors.New("nothing loaded"))
	case Playing:
		m.mu.Unlock()
		return nil
	}
	gen, token, session := m.gen, m.load, m.session

	if m.el.ReadyState() < media.HaveCurrentData {
		w := listen(m.el, media.EventCanPlayThrough)
		m.mu.Unlock()

		var waitErr error
		// Readiness may have been reached before the listener was added.
		if m.el.ReadyState() < media.HaveCurrentData {
			m.log.Debug("waiting for resource to buffer", "url", url)
			waitCtx, cancel := withSession(ctx, session)
			_, waitErr = w.wait(waitCtx, m.readyTimeout, token)
			cancel()
		} else {
			w.stop()
		}

		m.mu.Lock()
		if gen != m.gen {
			m.mu.Unlock()
			return supersededError(url)
		}
		if errors.Is(waitErr, errWaitTimeout) {
			m.mu.Unlock()
			return notReadyError(url, waitErr)
		}
		if waitErr != nil {
			m.mu.Unlock()
			return abortedError(url, waitErr)
		}
	}
	defer m.mu.Unlock()

	if err := m.el.Play(ctx); err != nil {
		perr := playError(url, err)
		if perr.Kind == FormatUnsupported || perr.Kind == PlaybackError {
			m.state = Failed
		}
		m.log.Warn("play rejected", "url", url, "kind", perr.Kind, "error", err)
		return perr
	}
	m.state = Playing
	return nil
}

// Pause pauses playback. It does nothing unless playing.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Playing {
		return
	}
	m.el.Pause()
	m.state = Paused
}

// Stop pauses and rewinds to the start. The resource stays loaded.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.Loaded() {
		return
	}
	m.el.Pause()
	m.el.SetCurrentTime(0)
	m.state = Stopped
}

// Seek moves the position by delta, clamped to the resource. It does
// nothing while the duration is unknown.
func (m *Manager) Seek(delta time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.el.Duration()
	if d <= 0 {
		return
	}
	m.el.SetCurrentTime(clampPosition(m.el.CurrentTime()+delta, d))
}

// SetVolume sets the level clamped to [0, 1]. The level is kept across
// sessions, so it may be set before anything is loaded.
func (m *Manager) SetVolume(level float64) {
	level = clampVolume(level)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.volume = level
	m.el.SetVolume(level)
}

// Volume returns the current level.
func (m *Manager) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// CurrentTime returns the playback position, 0 when nothing is loaded.
func (m *Manager) CurrentTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Empty {
		return 0
	}
	return max(0, m.el.CurrentTime())
}

// Duration returns the resource length, 0 while unknown.
func (m *Manager) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Empty {
		return 0
	}
	return max(0, m.el.Duration())
}

// ID returns the identifier of the loaded resource, empty if none.
func (m *Manager) ID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

func (m *Manager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) IsPlaying() bool {
	return m.State() == Playing
}

// TrackInfo returns tag metadata of the loaded resource when the element
// provides it.
func (m *Manager) TrackInfo() *media.TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.el.(media.InfoProvider)
	if !ok || !m.state.Loaded() {
		return nil
	}
	return p.TrackInfo()
}

func (m *Manager) OnProgress(fn func(Progress)) {
	m.mu.Lock()
	m.onProgress = fn
	m.mu.Unlock()
}

func (m *Manager) OnEnd(fn func()) {
	m.mu.Lock()
	m.onEnd = fn
	m.mu.Unlock()
}

func (m *Manager) OnError(fn func(*Error)) {
	m.mu.Lock()
	m.onError = fn
	m.mu.Unlock()
}

// Destroy releases the element's resources and abandons the session. It is
// safe to call more than once; a later Load starts a new session.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
	m.el.Pause()
	m.el.Release()
	m.id = ""
	m.url = ""
	m.state = Empty
}

// teardownLocked abandons the current session and starts a new one with an
// empty element.
func (m *Manager) teardownLocked() {
	if m.cancel != nil {
		m.cancel()
	}
	m.session, m.cancel = context.WithCancel(context.Background())
	m.gen++

	m.el.Pause()
	m.el.SetSource("")
	m.load = m.el.Load()
	m.id = ""
	m.url = ""
	m.state = Empty
}

// abandonLocked resets after the caller gave up on a load, so the element's
// late events are ignored.
func (m *Manager) abandonLocked() {
	m.gen++
	m.el.SetSource("")
	m.load = m.el.Load()
	m.url = ""
	m.state = Empty
}

// currentLocked reports whether ev belongs to the loaded session. Events
// of an earlier load of the same url carry an older token.
func (m *Manager) currentLocked(ev media.Event) bool {
	return m.url != "" && ev.Load == m.load && m.state.Loaded()
}

func (m *Manager) handleTimeUpdate(ev media.Event) {
	m.mu.Lock()
	if !m.currentLocked(ev) || m.onProgress == nil {
		m.mu.Unlock()
		return
	}
	cur, dur := m.el.CurrentTime(), m.el.Duration()
	fn := m.onProgress
	m.mu.Unlock()

	fn(Progress{Percent: Percent(cur, dur), Current: cur, Duration: dur})
}

func (m *Manager) handleEnded(ev media.Event) {
	m.mu.Lock()
	if !m.currentLocked(ev) {
		m.mu.Unlock()
		return
	}
	m.el.Pause()
	m.el.SetCurrentTime(0)
	m.state = Stopped
	fn := m.onEnd
	m.mu.Unlock()

	m.log.Info("playback ended", "url", ev.Src)
	if fn != nil {
		fn()
	}
}

func (m *Manager) handleError(ev media.Event) {
	m.mu.Lock()
	if !m.currentLocked(ev) {
		m.mu.Unlock()
		return
	}
	m.el.Pause()
	m.state = Failed
	err := elementError(m.url, ev.Err)
	fn := m.onError
	m.mu.Unlock()

	m.log.Warn("playback failed", "url", ev.Src, "error", ev.Err)
	if fn != nil {
		fn(err)
	}
}
