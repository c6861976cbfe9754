// Package mpris exposes the meditation player on the session bus so media
// keys and desktop widgets can control it.
package mpris

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/media"
	"github.com/llehouerou/serein/internal/playback"
)

// Player is the part of playback.Controller the bus adapter drives.
type Player interface {
	State() playback.State
	Play(ctx context.Context) error
	Pause()
	Stop()
	Toggle(ctx context.Context) error
	Seek(delta time.Duration)
	SetVolume(level float64)
	TrackInfo() *media.TrackInfo
}

var _ Player = (*playback.Controller)(nil)

// Lookup resolves a loaded resource id to its meditation.
type Lookup func(id string) (catalog.Meditation, bool)

type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

func statusOf(s playback.State) Status {
	switch {
	case s.IsPlaying:
		return StatusPlaying
	case s.Loaded() && s.CurrentTime > 0:
		return StatusPaused
	default:
		return StatusStopped
	}
}

// Track is the metadata published for the loaded meditation.
type Track struct {
	ID     string // D-Bus object path
	Title  string
	Artist string
	Album  string
	Length time.Duration
	ArtURL string
}

func trackOf(p Player, lookup Lookup) (Track, bool) {
	s := p.State()
	if s.ID == "" {
		return Track{}, false
	}

	t := Track{
		ID:     formatTrackID(s.ID),
		Title:  s.ID,
		Album:  "Serein",
		Length: s.Duration,
	}
	if info := p.TrackInfo(); info != nil {
		if info.Title != "" {
			t.Title = info.Title
		}
		t.Artist = info.Artist
		if info.Album != "" {
			t.Album = info.Album
		}
	}
	if lookup != nil {
		if m, ok := lookup(s.ID); ok {
			t.Title = m.Title
			t.ArtURL = artURL(m)
			if t.Length == 0 {
				t.Length = time.Duration(m.DurationMinutes) * time.Minute
			}
		}
	}
	return t, true
}

// seekTarget converts an absolute position request into the relative seek
// the player supports.
func seekTarget(current, position time.Duration) time.Duration {
	return position - current
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
