package media

import (
	"bytes"

	"github.com/dhowden/tag"
)

// readTrackInfo extracts tags from a buffered resource. Missing or
// unreadable tags leave the text fields empty.
func readTrackInfo(data []byte, format string) *TrackInfo {
	info := &TrackInfo{Format: format}

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return info
	}

	info.Title = m.Title()
	info.Artist = m.Artist()
	if info.Artist == "" {
		info.Artist = m.AlbumArtist()
	}
	info.Album = m.Album()
	return info
}
