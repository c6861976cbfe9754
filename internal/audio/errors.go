package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/llehouerou/serein/internal/media"
)

// Kind classifies a playback failure.
type Kind int

const (
	KindUnknown Kind = iota
	ResourceNotFound
	LoadTimeout
	LoadError
	NotReady
	PermissionRequired
	FormatUnsupported
	Aborted
	PlaybackError
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case ResourceNotFound:
		return "ResourceNotFound"
	case LoadTimeout:
		return "LoadTimeout"
	case LoadError:
		return "LoadError"
	case NotReady:
		return "NotReady"
	case PermissionRequired:
		return "PermissionRequired"
	case FormatUnsupported:
		return "FormatUnsupported"
	case Aborted:
		return "Aborted"
	case PlaybackError:
		return "PlaybackError"
	default:
		return "Unknown"
	}
}

// ErrSuperseded is wrapped by the Aborted error a Load or Play returns when
// a newer Load or a Destroy replaced its session.
var ErrSuperseded = errors.New("audio: superseded by a newer session")

// Error is the only error type the manager reports. Message is meant for
// the user; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	URL     string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsSuperseded reports whether err comes from an abandoned session.
func IsSuperseded(err error) bool {
	return errors.Is(err, ErrSuperseded)
}

const (
	msgNotFound    = "Audio file not found: %s. Add it to the audio directory (audio_base in config.toml)."
	msgTimeout     = "Audio loading timed out. Check that the file exists and is reachable."
	msgStopped     = "Audio loading was stopped."
	msgNetwork     = "Audio file could not be fetched. Check that it exists in the audio directory."
	msgDecode      = "Audio file format issue. Make sure the file is a valid MP3, FLAC or WAV."
	msgUnsupported = "Audio file is not in a supported format."
	msgNotReady    = "Audio is not ready to play yet. Check that the file is in the audio directory."
	msgPermission  = "Audio output is blocked. Interact with the player first (press space) to enable sound."
	msgFormat      = "Audio format not supported by your system."
	msgInterrupted = "Audio playback was interrupted."
	msgPlayback    = "Could not play audio. Make sure the file is in the audio directory."
)

func notFoundError(url string, cause error) *Error {
	return &Error{
		Kind:    ResourceNotFound,
		Message: fmt.Sprintf(msgNotFound, url),
		URL:     url,
		Err:     cause,
	}
}

func timeoutError(url string) *Error {
	return &Error{Kind: LoadTimeout, Message: msgTimeout, URL: url, Err: context.DeadlineExceeded}
}

func notReadyError(url string, cause error) *Error {
	return &Error{Kind: NotReady, Message: msgNotReady, URL: url, Err: cause}
}

func abortedError(url string, cause error) *Error {
	return &Error{Kind: Aborted, Message: msgInterrupted, URL: url, Err: cause}
}

func supersededError(url string) *Error {
	return abortedError(url, ErrSuperseded)
}

// elementError turns an element pipeline failure into a LoadError with a
// message for its code.
func elementError(url string, merr *media.Error) *Error {
	e := &Error{Kind: LoadError, URL: url}
	if merr == nil {
		e.Message = msgNetwork
		return e
	}
	e.Err = merr
	switch merr.Code {
	case media.CodeAborted:
		e.Message = msgStopped
	case media.CodeNetwork:
		e.Message = msgNetwork
	case media.CodeDecode:
		e.Message = msgDecode
	case media.CodeSrcNotSupported:
		e.Message = msgUnsupported
	default:
		e.Message = msgNetwork
	}
	return e
}

// playError classifies a rejected element Play.
func playError(url string, err error) *Error {
	switch {
	case errors.Is(err, media.ErrNotAllowed):
		return &Error{Kind: PermissionRequired, Message: msgPermission, URL: url, Err: err}
	case errors.Is(err, media.ErrNotSupported):
		return &Error{Kind: FormatUnsupported, Message: msgFormat, URL: url, Err: err}
	case errors.Is(err, media.ErrAborted), errors.Is(err, context.Canceled):
		return abortedError(url, err)
	default:
		return &Error{Kind: PlaybackError, Message: msgPlayback, URL: url, Err: err}
	}
}
