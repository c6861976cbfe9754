package playback

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/media"
)

func newTestController(t *testing.T) (*Controller, *media.Mock) {
	t.Helper()
	el := media.NewMock()
	c := New(audio.New(el, audio.Options{}), nil)
	t.Cleanup(c.Close)
	return c, el
}

func audioFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

// startLoad runs LoadAudio in the background and returns once the element
// has been asked to load.
func startLoad(t *testing.T, c *Controller, el *media.Mock, id, path string) <-chan error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() { errCh <- c.LoadAudio(context.Background(), id, path) }()
	select {
	case src := <-el.Loaded:
		require.Equal(t, path, src)
	case <-time.After(5 * time.Second):
		t.Fatal("element was never loaded")
	}
	return errCh
}

func loadAndPlay(t *testing.T, c *Controller, el *media.Mock, d time.Duration) {
	t.Helper()
	errCh := startLoad(t, c, el, "calm", audioFile(t, "calm.mp3"))
	el.FireReady(d)
	require.NoError(t, <-errCh)
	require.NoError(t, c.Play(context.Background()))
}

func TestController_LoadingState(t *testing.T) {
	c, el := newTestController(t)
	errCh := startLoad(t, c, el, "calm", audioFile(t, "calm.mp3"))

	s := c.State()
	assert.True(t, s.IsLoading)
	assert.Equal(t, "calm", s.ID)
	assert.False(t, s.HasError())

	el.FireReady(3 * time.Minute)
	require.NoError(t, <-errCh)

	s = c.State()
	assert.False(t, s.IsLoading)
	assert.Equal(t, 3*time.Minute, s.Duration)
	assert.True(t, s.Loaded())
}

func TestController_LoadMissingSetsError(t *testing.T) {
	c, _ := newTestController(t)
	sub := c.Subscribe()
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	err := c.LoadAudio(context.Background(), "x", missing)

	require.Error(t, err)
	s := c.State()
	assert.False(t, s.IsLoading)
	assert.Contains(t, s.Error, missing)
	assert.Equal(t, audio.ResourceNotFound, s.ErrorKind)

	ev := <-sub.Error
	assert.Equal(t, "load", ev.Operation)
	assert.Equal(t, "x", ev.ID)

	c.ClearError()
	assert.False(t, c.State().HasError())
}

func TestController_PlaySetsPlaying(t *testing.T) {
	c, el := newTestController(t)
	loadAndPlay(t, c, el, time.Minute)

	s := c.State()
	assert.True(t, s.IsPlaying)
	assert.Empty(t, s.Error)
}

func TestController_PlayPermissionError(t *testing.T) {
	c, el := newTestController(t)
	errCh := startLoad(t, c, el, "calm", audioFile(t, "calm.mp3"))
	el.FireReady(time.Minute)
	require.NoError(t, <-errCh)
	el.SetPlayError(media.ErrNotAllowed)

	err := c.Play(context.Background())

	require.Error(t, err)
	s := c.State()
	assert.False(t, s.IsPlaying)
	assert.Equal(t, audio.PermissionRequired, s.ErrorKind)
	assert.Contains(t, s.Error, "Interact with the player first")

	// A successful retry clears the error.
	el.SetPlayError(nil)
	require.NoError(t, c.Play(context.Background()))
	assert.False(t, c.State().HasError())
}

func TestController_ProgressUpdates(t *testing.T) {
	c, el := newTestController(t)
	loadAndPlay(t, c, el, 300*time.Second)

	el.FireTimeUpdate(30 * time.Second)

	s := c.State()
	assert.InDelta(t, 10.0, s.Progress, 1e-9)
	assert.Equal(t, 30*time.Second, s.CurrentTime)
	assert.Equal(t, 300*time.Second, s.Duration)
}

func TestController_EndResetsProgress(t *testing.T) {
	c, el := newTestController(t)
	sub := c.Subscribe()
	loadAndPlay(t, c, el, 300*time.Second)
	el.FireTimeUpdate(150 * time.Second)

	el.FireEnded()

	s := c.State()
	assert.False(t, s.IsPlaying)
	assert.InDelta(t, 0.0, s.Progress, 1e-9)

	select {
	case e := <-sub.Ended:
		assert.Equal(t, "calm", e.ID)
	default:
		t.Fatal("no Ended event")
	}
}

func TestController_StopZerosPosition(t *testing.T) {
	c, el := newTestController(t)
	loadAndPlay(t, c, el, 300*time.Second)
	el.FireTimeUpdate(60 * time.Second)

	c.Stop()

	s := c.State()
	assert.False(t, s.IsPlaying)
	assert.InDelta(t, 0.0, s.Progress, 1e-9)
	assert.Equal(t, time.Duration(0), s.CurrentTime)
	assert.Equal(t, 300*time.Second, s.Duration)
}

func TestController_Toggle(t *testing.T) {
	c, el := newTestController(t)
	loadAndPlay(t, c, el, time.Minute)

	require.NoError(t, c.Toggle(context.Background()))
	assert.False(t, c.State().IsPlaying)

	require.NoError(t, c.Toggle(context.Background()))
	assert.True(t, c.State().IsPlaying)
}

func TestController_SeekUpdatesSnapshot(t *testing.T) {
	c, el := newTestController(t)
	loadAndPlay(t, c, el, 100*time.Second)

	c.Seek(25 * time.Second)

	s := c.State()
	assert.Equal(t, 25*time.Second, s.CurrentTime)
	assert.InDelta(t, 25.0, s.Progress, 1e-9)
}

func TestController_SetVolume(t *testing.T) {
	c, el := newTestController(t)
	c.SetVolume(2)
	assert.InDelta(t, 1.0, c.State().Volume, 1e-9)
	c.SetVolume(0.25)
	assert.InDelta(t, 0.25, c.State().Volume, 1e-9)
	assert.InDelta(t, 0.25, el.Volume(), 1e-9)
}

func TestController_ErrorWhilePlaying(t *testing.T) {
	c, el := newTestController(t)
	sub := c.Subscribe()
	loadAndPlay(t, c, el, time.Minute)

	el.FireError(media.CodeNetwork)

	s := c.State()
	assert.False(t, s.IsPlaying)
	assert.False(t, s.IsLoading)
	assert.Equal(t, audio.LoadError, s.ErrorKind)

	ev := <-sub.Error
	assert.Equal(t, "playback", ev.Operation)
}

func TestController_SupersededLoadLeavesState(t *testing.T) {
	c, el := newTestController(t)
	sub := c.Subscribe()

	firstErr := startLoad(t, c, el, "first", audioFile(t, "first.mp3"))
	secondErr := startLoad(t, c, el, "second", audioFile(t, "second.mp3"))

	err := <-firstErr
	assert.True(t, audio.IsSuperseded(err))

	s := c.State()
	assert.Equal(t, "second", s.ID)
	assert.True(t, s.IsLoading)
	assert.False(t, s.HasError())

	el.FireReady(time.Minute)
	require.NoError(t, <-secondErr)
	assert.Equal(t, "second", c.State().ID)
	assert.False(t, c.State().IsLoading)

	select {
	case ev := <-sub.Error:
		t.Fatalf("unexpected error event: %+v", ev)
	default:
	}
}

func TestController_SubscribeReceivesChanges(t *testing.T) {
	c, el := newTestController(t)
	sub := c.Subscribe()
	loadAndPlay(t, c, el, time.Minute)

	var last StateChange
	for {
		select {
		case e := <-sub.StateChanged:
			last = e
			continue
		default:
		}
		break
	}
	assert.True(t, last.Current.IsPlaying)
	assert.False(t, last.Previous.IsPlaying)
}

func TestController_Close(t *testing.T) {
	c, el := newTestController(t)
	sub := c.Subscribe()
	loadAndPlay(t, c, el, time.Minute)

	c.Close()
	c.Close()

	<-sub.Done
	assert.Equal(t, 1, el.Releases())

	late := c.Subscribe()
	<-late.Done
}
