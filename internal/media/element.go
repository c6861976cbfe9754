// Package media provides a playable media element: one audio resource with
// asynchronous lifecycle events, ready-state levels and transport controls.
package media

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ReadyState reports how much of the resource is available for playback.
type ReadyState int

const (
	HaveNothing ReadyState = iota
	HaveMetadata
	HaveCurrentData
	HaveFutureData
	HaveEnoughData
)

// String returns the ready state name.
func (r ReadyState) String() string {
	switch r {
	case HaveNothing:
		return "HaveNothing"
	case HaveMetadata:
		return "HaveMetadata"
	case HaveCurrentData:
		return "HaveCurrentData"
	case HaveFutureData:
		return "HaveFutureData"
	case HaveEnoughData:
		return "HaveEnoughData"
	default:
		return "Unknown"
	}
}

// EventKind identifies a lifecycle event.
type EventKind int

const (
	EventLoadStart EventKind = iota
	EventLoadedMetadata
	EventLoadedData
	EventCanPlayThrough
	EventTimeUpdate
	EventEnded
	EventError
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLoadStart:
		return "loadstart"
	case EventLoadedMetadata:
		return "loadedmetadata"
	case EventLoadedData:
		return "loadeddata"
	case EventCanPlayThrough:
		return "canplaythrough"
	case EventTimeUpdate:
		return "timeupdate"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners registered with AddListener.
type Event struct {
	Kind EventKind
	Src  string // source the element had when the event was queued
	Load uint64 // token of the Load the event belongs to
	Err  *Error // set for EventError
}

// ErrorCode classifies a failure of the loading pipeline.
type ErrorCode int

const (
	CodeAborted ErrorCode = iota + 1
	CodeNetwork
	CodeDecode
	CodeSrcNotSupported
)

// String returns the code name.
func (c ErrorCode) String() string {
	switch c {
	case CodeAborted:
		return "aborted"
	case CodeNetwork:
		return "network"
	case CodeDecode:
		return "decode"
	case CodeSrcNotSupported:
		return "src not supported"
	default:
		return "unknown"
	}
}

// Error is the element's own error, carried by EventError.
type Error struct {
	Code ErrorCode
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "media: " + e.Code.String()
	}
	return fmt.Sprintf("media: %s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Play rejections, matched with errors.Is.
var (
	ErrNotAllowed   = errors.New("media: playback not allowed")
	ErrNotSupported = errors.New("media: source not supported")
	ErrAborted      = errors.New("media: playback aborted")
)

// Element is a single playable media resource.
//
// Events are queued and dispatched asynchronously in the order they were
// raised, never from inside a method call, so callers may hold their own
// locks while invoking Element methods.
type Element interface {
	// SetSource assigns the resource address. It takes effect on Load.
	SetSource(src string)
	Source() string
	// Load drops any current resource and starts fetching the source.
	// An empty source only resets the element. The returned token is
	// carried by every event raised for this load, so events of an earlier
	// load of the same source can be told apart.
	Load() uint64
	// Play starts or resumes playback. Rejections wrap ErrNotAllowed,
	// ErrNotSupported or ErrAborted when they match those conditions.
	Play(ctx context.Context) error
	Pause()
	Paused() bool
	CurrentTime() time.Duration
	SetCurrentTime(d time.Duration)
	// Duration is 0 while unknown.
	Duration() time.Duration
	Volume() float64
	SetVolume(level float64)
	ReadyState() ReadyState
	// AddListener registers fn for kind. The returned func removes it; no
	// delivery starts after it returns.
	AddListener(kind EventKind, fn func(Event)) (remove func())
	// Release frees decoded audio and output resources and invalidates the
	// current load token. Safe to repeat.
	Release()
}

// TrackInfo holds tag metadata read from a loaded resource.
type TrackInfo struct {
	Title  string
	Artist string
	Album  string
	Format string
}

// InfoProvider is implemented by elements that can report tag metadata.
type InfoProvider interface {
	TrackInfo() *TrackInfo
}
