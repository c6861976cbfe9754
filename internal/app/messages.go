// Package app contains the root bubbletea model and its messages.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/journal"
	"github.com/llehouerou/serein/internal/playback"
	"github.com/llehouerou/serein/internal/state"
)

// Message category interfaces for type-based routing in Update().

// PlaybackMessage is implemented by messages related to audio playback.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// AffirmationMessage is implemented by messages of the home view.
type AffirmationMessage interface {
	tea.Msg
	affirmationMessage()
}

// JournalMessage is implemented by messages of the journal view.
type JournalMessage interface {
	tea.Msg
	journalMessage()
}

// PlayResultMsg reports the outcome of a load-and-play or resume. Op names
// the step that failed.
type PlayResultMsg struct {
	ID  string
	Op  errmsg.Op
	Err error
}

func (PlayResultMsg) playbackMessage() {}

// PlaybackStateMsg wraps a controller state change.
type PlaybackStateMsg playback.StateChange

func (PlaybackStateMsg) playbackMessage() {}

// PlaybackEndedMsg is sent when a meditation plays to its end.
type PlaybackEndedMsg playback.Ended

func (PlaybackEndedMsg) playbackMessage() {}

// PlaybackErrorMsg wraps a controller error event.
type PlaybackErrorMsg playback.ErrorEvent

func (PlaybackErrorMsg) playbackMessage() {}

// PlaybackClosedMsg is sent when the controller subscription ends.
type PlaybackClosedMsg struct{}

func (PlaybackClosedMsg) playbackMessage() {}

// AffirmationReadyMsg delivers a freshly drawn affirmation.
type AffirmationReadyMsg struct {
	Affirmation catalog.Affirmation
	OK          bool
}

func (AffirmationReadyMsg) affirmationMessage() {}

// AffirmationSavedMsg reports a save. Added is false for a duplicate.
type AffirmationSavedMsg struct {
	Text  string
	Added bool
	Err   error
}

func (AffirmationSavedMsg) affirmationMessage() {}

// SavedAffirmationsMsg delivers the saved list.
type SavedAffirmationsMsg struct {
	Items []state.SavedAffirmation
	Err   error
}

func (SavedAffirmationsMsg) affirmationMessage() {}

// AffirmationDeletedMsg reports a delete.
type AffirmationDeletedMsg struct {
	ID  int64
	Err error
}

func (AffirmationDeletedMsg) affirmationMessage() {}

// JournalReplyMsg delivers the response to a submitted entry.
type JournalReplyMsg struct {
	Entry string
	Reply journal.Reply
	Err   error
}

func (JournalReplyMsg) journalMessage() {}

// JournalSavedMsg reports that an entry was stored.
type JournalSavedMsg struct {
	ID  int64
	Err error
}

func (JournalSavedMsg) journalMessage() {}

// JournalHistoryMsg delivers past entries, newest first.
type JournalHistoryMsg struct {
	Entries []state.JournalEntry
	Err     error
}

func (JournalHistoryMsg) journalMessage() {}

// StatusTimeoutMsg clears the status line unless a newer status replaced it.
type StatusTimeoutMsg struct {
	Version int
}
