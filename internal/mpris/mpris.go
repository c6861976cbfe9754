//go:build linux

package mpris

import (
	"context"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// commandTimeout bounds a Play issued from the bus, which may wait for the
// resource to become ready.
const commandTimeout = 10 * time.Second

// Adapter serves a Player as org.mpris.MediaPlayer2.serein.
type Adapter struct {
	server *server.Server
}

// New starts serving p on the session bus.
func New(p Player, lookup Lookup, logger hclog.Logger) *Adapter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	a := &Adapter{
		server: server.NewServer("serein", rootAdapter{}, &playerAdapter{player: p, lookup: lookup}),
	}
	go func() {
		if err := a.server.Listen(); err != nil {
			logger.Debug("mpris unavailable", "error", err)
		}
	}()
	return a
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

type rootAdapter struct{}

func (rootAdapter) Raise() error            { return nil }
func (rootAdapter) Quit() error             { return nil }
func (rootAdapter) CanQuit() (bool, error)  { return false, nil }
func (rootAdapter) CanRaise() (bool, error) { return false, nil }

func (rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (rootAdapter) Identity() (string, error) { return "Serein", nil }

//nolint:revive // Method name required by interface.
func (rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav"}, nil
}

type playerAdapter struct {
	player Player
	lookup Lookup
}

func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error {
	p.player.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return p.player.Toggle(ctx)
}

func (p *playerAdapter) Stop() error {
	p.player.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	return p.player.Play(ctx)
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.player.Seek(time.Duration(offset) * time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	cur := p.player.State().CurrentTime
	p.player.Seek(seekTarget(cur, time.Duration(position)*time.Microsecond))
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch statusOf(p.player.State()) {
	case StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case StatusPaused:
		return types.PlaybackStatusPaused, nil
	case StatusStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	t, ok := trackOf(p.player, p.lookup)
	if !ok {
		return types.Metadata{}, nil
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(t.ID),
		Length:  types.Microseconds(t.Length.Microseconds()),
		Title:   t.Title,
		Album:   t.Album,
		ArtUrl:  t.ArtURL,
	}
	if t.Artist != "" {
		meta.Artist = []string{t.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.player.State().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.player.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.player.State().CurrentTime.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error)     { return false, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return false, nil }

func (p *playerAdapter) CanPlay() (bool, error) {
	s := p.player.State()
	return s.ID != "" && !s.IsLoading, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.player.State().Loaded(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.player.State().Duration > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }
