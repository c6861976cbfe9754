package media

import (
	"bytes"
	"errors"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
	"github.com/hashicorp/go-hclog"
)

const (
	formatMP3  = "MP3"
	formatFLAC = "FLAC"
	formatWAV  = "WAV"
	formatOgg  = "Ogg Vorbis"
)

// ErrUnsupportedFormat is returned when a resource is none of the
// decodable formats.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// bufferedSource is a fully downloaded resource. Decoders need a seekable
// reader to support SetCurrentTime.
type bufferedSource struct {
	*bytes.Reader
}

func newBufferedSource(data []byte) *bufferedSource {
	return &bufferedSource{Reader: bytes.NewReader(data)}
}

func (*bufferedSource) Close() error { return nil }

// detectFormat identifies the container from magic bytes first, then the
// Content-Type header, then the URL extension.
func detectFormat(src, contentType string, data []byte) string {
	body := data[min(id3Size(data), len(data)):]
	switch {
	case bytes.HasPrefix(body, []byte("fLaC")):
		return formatFLAC
	case len(body) >= 12 && bytes.HasPrefix(body, []byte("RIFF")) && string(body[8:12]) == "WAVE":
		return formatWAV
	case bytes.HasPrefix(body, []byte("OggS")):
		return formatOgg
	case id3Size(data) > 0, len(body) >= 2 && body[0] == 0xFF && body[1]&0xE0 == 0xE0:
		return formatMP3
	}

	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "audio/mpeg", "audio/mp3":
			return formatMP3
		case "audio/flac", "audio/x-flac":
			return formatFLAC
		case "audio/wav", "audio/x-wav", "audio/wave":
			return formatWAV
		case "audio/ogg", "audio/vorbis", "application/ogg":
			return formatOgg
		}
	}

	p := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".mp3":
		return formatMP3
	case ".flac":
		return formatFLAC
	case ".wav":
		return formatWAV
	case ".ogg", ".oga":
		return formatOgg
	}
	return ""
}

// id3Size returns the length of a leading ID3v2 tag, 0 if there is none.
// The size is a syncsafe integer: 7 bits per byte.
func id3Size(data []byte) int {
	if len(data) < 10 || string(data[0:3]) != "ID3" {
		return 0
	}
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	return 10 + size
}

// decode opens a stream for data. Errors hit while streaming are reported
// to log.
func decode(data []byte, format string, log hclog.Logger) (beep.StreamSeekCloser, beep.Format, error) {
	switch format {
	case formatMP3:
		return decodeMP3(data, log)
	case formatFLAC:
		// Some taggers prepend ID3v2 to FLAC, which the decoder rejects.
		return flac.Decode(newBufferedSource(data[min(id3Size(data), len(data)):]))
	case formatWAV:
		return wav.Decode(newBufferedSource(data))
	case formatOgg:
		return decodeVorbis(data)
	default:
		return nil, beep.Format{}, ErrUnsupportedFormat
	}
}
