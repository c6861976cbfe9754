package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink stands in for the speaker; tests pull samples with drain.
type fakeSink struct {
	lock sync.Mutex // exposed through Lock/Unlock

	mu        sync.Mutex
	rate      beep.SampleRate
	initErr   error
	streamers []beep.Streamer
	cleared   int
}

func (s *fakeSink) Init(rate beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initErr != nil {
		return s.initErr
	}
	if s.rate == 0 {
		s.rate = rate
	}
	return nil
}

func (s *fakeSink) SampleRate() beep.SampleRate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

func (s *fakeSink) Play(st beep.Streamer) {
	s.mu.Lock()
	s.streamers = append(s.streamers, st)
	s.mu.Unlock()
}

func (s *fakeSink) Clear() {
	s.mu.Lock()
	s.streamers = nil
	s.cleared++
	s.mu.Unlock()
}

func (s *fakeSink) Lock()   { s.lock.Lock() }
func (s *fakeSink) Unlock() { s.lock.Unlock() }

// drain streams every queued streamer to completion, like the speaker
// mixer would.
func (s *fakeSink) drain() {
	s.mu.Lock()
	streamers := s.streamers
	s.streamers = nil
	s.mu.Unlock()

	buf := make([][2]float64, 512)
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, st := range streamers {
		for {
			if _, ok := st.Stream(buf); !ok {
				break
			}
		}
	}
}

func (s *fakeSink) queued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.streamers)
}

// writeSilence writes a stereo 16-bit WAV of the given length.
func writeSilence(t *testing.T, d time.Duration) string {
	t.Helper()
	format := beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}
	path := filepath.Join(t.TempDir(), "silence.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, wav.Encode(f, beep.Silence(format.SampleRate.N(d)), format))
	require.NoError(t, f.Close())
	return path
}

func listen(el Element, kinds ...EventKind) (<-chan Event, func()) {
	ch := make(chan Event, 16)
	var removes []func()
	for _, k := range kinds {
		removes = append(removes, el.AddListener(k, func(ev Event) { ch <- ev }))
	}
	return ch, func() {
		for _, r := range removes {
			r()
		}
	}
}

func waitEvent(t *testing.T, ch <-chan Event, kind EventKind) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-ch:
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", kind)
			return Event{}
		}
	}
}

func TestBeep_LoadLocalFile(t *testing.T) {
	path := writeSilence(t, 2*time.Second)
	sink := &fakeSink{}
	el := NewBeep(Options{Sink: sink})
	ch, stop := listen(el, EventLoadStart, EventLoadedMetadata, EventCanPlayThrough)
	defer stop()

	el.SetSource(path)
	el.Load()

	waitEvent(t, ch, EventLoadStart)
	waitEvent(t, ch, EventLoadedMetadata)
	ev := waitEvent(t, ch, EventCanPlayThrough)

	assert.Equal(t, path, ev.Src)
	assert.Equal(t, HaveEnoughData, el.ReadyState())
	assert.Equal(t, 2*time.Second, el.Duration())
	assert.Equal(t, time.Duration(0), el.CurrentTime())
	require.NotNil(t, el.TrackInfo())
	assert.Equal(t, formatWAV, el.TrackInfo().Format)
}

func TestBeep_ReloadTagsEventsWithNewToken(t *testing.T) {
	path := writeSilence(t, time.Second)
	el := NewBeep(Options{Sink: &fakeSink{}})
	ch, stop := listen(el, EventCanPlayThrough)
	defer stop()

	el.SetSource(path)
	first := el.Load()
	ev := waitEvent(t, ch, EventCanPlayThrough)
	assert.Equal(t, first, ev.Load)

	second := el.Load()
	assert.Greater(t, second, first)
	ev = waitEvent(t, ch, EventCanPlayThrough)
	assert.Equal(t, path, ev.Src)
	assert.Equal(t, second, ev.Load)
}

func TestBeep_LoadOverHTTP(t *testing.T) {
	path := writeSilence(t, time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/Breathe.wav" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}))
	defer srv.Close()

	el := NewBeep(Options{Sink: &fakeSink{}, Client: srv.Client()})
	ch, stop := listen(el, EventCanPlayThrough, EventError)
	defer stop()

	el.SetSource(srv.URL + "/audio/Breathe.wav")
	el.Load()
	waitEvent(t, ch, EventCanPlayThrough)
	assert.Equal(t, time.Second, el.Duration())

	el.SetSource(srv.URL + "/audio/Missing.wav")
	el.Load()
	ev := waitEvent(t, ch, EventError)
	require.NotNil(t, ev.Err)
	assert.Equal(t, CodeNetwork, ev.Err.Code)
	assert.Equal(t, HaveNothing, el.ReadyState())
}

func TestBeep_LoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))

	el := NewBeep(Options{Sink: &fakeSink{}})
	ch, stop := listen(el, EventError)
	defer stop()

	el.SetSource(path)
	el.Load()

	ev := waitEvent(t, ch, EventError)
	assert.Equal(t, CodeSrcNotSupported, ev.Err.Code)
}

func TestBeep_PlayToEnd(t *testing.T) {
	path := writeSilence(t, 500*time.Millisecond)
	sink := &fakeSink{}
	el := NewBeep(Options{Sink: sink, TickInterval: time.Hour})
	ch, stop := listen(el, EventCanPlayThrough, EventEnded)
	defer stop()

	el.SetSource(path)
	el.Load()
	waitEvent(t, ch, EventCanPlayThrough)

	require.NoError(t, el.Play(context.Background()))
	assert.False(t, el.Paused())
	assert.Equal(t, 1, sink.queued())

	sink.drain()
	waitEvent(t, ch, EventEnded)
	assert.True(t, el.Paused())
	assert.Equal(t, 500*time.Millisecond, el.CurrentTime())

	// Rewinding and playing again queues a fresh stream.
	el.SetCurrentTime(0)
	require.NoError(t, el.Play(context.Background()))
	assert.Equal(t, 1, sink.queued())
}

func TestBeep_PauseAndSeek(t *testing.T) {
	path := writeSilence(t, 2*time.Second)
	el := NewBeep(Options{Sink: &fakeSink{}, TickInterval: time.Hour})
	ch, stop := listen(el, EventCanPlayThrough)
	defer stop()

	el.SetSource(path)
	el.Load()
	waitEvent(t, ch, EventCanPlayThrough)
	require.NoError(t, el.Play(context.Background()))

	el.Pause()
	el.Pause()
	assert.True(t, el.Paused())

	el.SetCurrentTime(time.Second)
	assert.Equal(t, time.Second, el.CurrentTime())

	el.SetCurrentTime(10 * time.Second)
	assert.Equal(t, 2*time.Second, el.CurrentTime())
}

func TestBeep_PlayRejections(t *testing.T) {
	el := NewBeep(Options{Sink: &fakeSink{}})
	assert.ErrorIs(t, el.Play(context.Background()), ErrNotSupported)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, el.Play(ctx), ErrAborted)

	path := writeSilence(t, time.Second)
	sink := &fakeSink{initErr: errors.New("device busy")}
	el = NewBeep(Options{Sink: sink})
	ch, stop := listen(el, EventCanPlayThrough)
	defer stop()
	el.SetSource(path)
	el.Load()
	waitEvent(t, ch, EventCanPlayThrough)

	assert.ErrorIs(t, el.Play(context.Background()), ErrNotAllowed)
}

func TestBeep_VolumeClamped(t *testing.T) {
	el := NewBeep(Options{Sink: &fakeSink{}})
	el.SetVolume(1.7)
	assert.InDelta(t, 1.0, el.Volume(), 1e-9)
	el.SetVolume(-1)
	assert.InDelta(t, 0.0, el.Volume(), 1e-9)
}

func TestBeep_ReleaseDropsTrack(t *testing.T) {
	path := writeSilence(t, time.Second)
	sink := &fakeSink{}
	el := NewBeep(Options{Sink: sink, TickInterval: time.Hour})
	ch, stop := listen(el, EventCanPlayThrough)
	defer stop()

	el.SetSource(path)
	el.Load()
	waitEvent(t, ch, EventCanPlayThrough)
	require.NoError(t, el.Play(context.Background()))

	el.Release()
	el.Release()

	assert.Equal(t, "", el.Source())
	assert.Equal(t, HaveNothing, el.ReadyState())
	assert.Equal(t, time.Duration(0), el.Duration())
	assert.Equal(t, 1, sink.cleared)
	assert.Nil(t, el.TrackInfo())
}
