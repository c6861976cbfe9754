package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/journal"
	"github.com/llehouerou/serein/internal/notify"
	"github.com/llehouerou/serein/internal/state"
)

const (
	statusDuration = 3 * time.Second
	// A reply makes up to two remote requests.
	respondTimeout = 60 * time.Second
	historyLimit   = 50
)

// WatchPlayback waits for the next controller event and converts it to a
// message. It is re-issued after every playback message.
func (m Model) WatchPlayback() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return PlaybackStateMsg(e)
		case e := <-sub.Ended:
			return PlaybackEndedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return PlaybackClosedMsg{}
		}
	}
}

// playMeditationCmd loads the meditation audio then starts it.
func (m Model) playMeditationCmd(med catalog.Meditation) tea.Cmd {
	ctrl := m.player
	return func() tea.Msg {
		ctx := context.Background()
		if err := ctrl.LoadAudio(ctx, med.ID, med.AudioURL); err != nil {
			return PlayResultMsg{ID: med.ID, Op: errmsg.OpAudioLoad, Err: err}
		}
		return PlayResultMsg{ID: med.ID, Op: errmsg.OpAudioPlay, Err: ctrl.Play(ctx)}
	}
}

// toggleCmd pauses or resumes. Resuming may wait for readiness.
func (m Model) toggleCmd(id string) tea.Cmd {
	ctrl := m.player
	return func() tea.Msg {
		return PlayResultMsg{ID: id, Op: errmsg.OpAudioPlay, Err: ctrl.Toggle(context.Background())}
	}
}

func (m Model) drawAffirmationCmd() tea.Cmd {
	cat, rng := m.catalog, m.rng
	return tea.Tick(m.affirmationDelay, func(time.Time) tea.Msg {
		a, ok := cat.RandomAffirmation(rng)
		return AffirmationReadyMsg{Affirmation: a, OK: ok}
	})
}

func (m Model) saveAffirmationCmd(a catalog.Affirmation) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		added, err := st.SaveAffirmation(context.Background(), a.Theme, a.Text)
		return AffirmationSavedMsg{Text: a.Text, Added: added, Err: err}
	}
}

func (m Model) loadSavedCmd() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		items, err := st.ListAffirmations(context.Background())
		return SavedAffirmationsMsg{Items: items, Err: err}
	}
}

func (m Model) deleteAffirmationCmd(id int64) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		return AffirmationDeletedMsg{ID: id, Err: st.DeleteAffirmation(context.Background(), id)}
	}
}

func (m Model) respondCmd(entry string) tea.Cmd {
	svc := m.journal
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), respondTimeout)
		defer cancel()
		reply, err := svc.Respond(ctx, entry)
		return JournalReplyMsg{Entry: entry, Reply: reply, Err: err}
	}
}

func (m Model) saveJournalCmd(entry string, r journal.Reply) tea.Cmd {
	st := m.state
	return func() tea.Msg {
		id, err := st.SaveJournalEntry(context.Background(), state.JournalEntry{
			Text:      entry,
			Response:  r.Text,
			FollowUps: r.FollowUps,
			Source:    string(r.Source),
		})
		return JournalSavedMsg{ID: id, Err: err}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		entries, err := st.ListJournalEntries(context.Background(), historyLimit)
		return JournalHistoryMsg{Entries: entries, Err: err}
	}
}

// notifyCmd sends a desktop notification without blocking the UI.
func (m Model) notifyCmd(n notify.Notification) tea.Cmd {
	notifier, log := m.notifier, m.log
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		if _, err := notifier.Notify(n); err != nil {
			log.Debug("notification failed", "error", err)
		}
		return nil
	}
}

func statusTimeoutCmd(version int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return StatusTimeoutMsg{Version: version}
	})
}
