package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/serein/internal/app/handler"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/journal"
	"github.com/llehouerou/serein/internal/keymap"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

func (m *Model) handleJournalAction(a keymap.Action) handler.Result {
	if m.view != ViewJournal {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionSelect:
		if m.jrnl.pending {
			return handler.HandledNoCmd
		}
		m.jrnl.showHistory = false
		return handler.Handled(m.focusEditor())

	case keymap.ActionNewEntry:
		if m.jrnl.pending {
			return handler.HandledNoCmd
		}
		m.jrnl.editor.Reset()
		m.jrnl.entry = ""
		m.jrnl.reply = nil
		m.jrnl.showQuestions = false
		m.jrnl.showHistory = false
		return handler.Handled(m.focusEditor())

	case keymap.ActionQuestions:
		if m.jrnl.reply != nil && len(m.jrnl.reply.FollowUps) > 0 {
			m.jrnl.showQuestions = !m.jrnl.showQuestions
		}
		return handler.HandledNoCmd

	case keymap.ActionHistory:
		m.jrnl.showHistory = !m.jrnl.showHistory
		if m.jrnl.showHistory {
			m.jrnl.cursor.Reset()
			return handler.Handled(m.loadHistoryCmd())
		}
		return handler.HandledNoCmd

	case keymap.ActionMoveUp:
		if m.jrnl.showHistory {
			m.jrnl.cursor.Move(-1, len(m.jrnl.history))
		}
		return handler.HandledNoCmd

	case keymap.ActionMoveDown:
		if m.jrnl.showHistory {
			m.jrnl.cursor.Move(1, len(m.jrnl.history))
		}
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handleEditorAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionBlur:
		m.jrnl.editing = false
		m.jrnl.editor.Blur()
		return handler.HandledNoCmd

	case keymap.ActionSubmit:
		text := strings.TrimSpace(m.jrnl.editor.Value())
		if text == "" {
			return handler.Handled(m.setStatus("Write a few words first", false))
		}
		if m.jrnl.pending {
			return handler.HandledNoCmd
		}
		m.jrnl.pending = true
		m.jrnl.editing = false
		m.jrnl.editor.Blur()
		m.jrnl.entry = text
		m.jrnl.reply = nil
		m.jrnl.showQuestions = false
		return handler.Handled(tea.Batch(m.respondCmd(text), m.spinner.Tick))
	}
	return handler.NotHandled
}

func (m *Model) focusEditor() tea.Cmd {
	m.jrnl.editing = true
	return m.jrnl.editor.Focus()
}

func (m Model) handleJournalMsg(msg JournalMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case JournalReplyMsg:
		m.jrnl.pending = false
		if msg.Err != nil {
			if errors.Is(msg.Err, journal.ErrEmptyEntry) {
				return m, m.setStatus("Write a few words first", false)
			}
			m.showError(errmsg.OpJournalRespond, msg.Err)
			return m, nil
		}
		reply := msg.Reply
		m.jrnl.reply = &reply
		if reply.Err != nil && !errors.Is(reply.Err, journal.ErrNotConfigured) {
			m.log.Warn("journal reply fell back to local text", "error", reply.Err)
		}
		return m, m.saveJournalCmd(msg.Entry, reply)

	case JournalSavedMsg:
		if msg.Err != nil {
			m.showError(errmsg.OpJournalSave, msg.Err)
			return m, nil
		}
		return m, m.setStatus("Entry saved to your journal", false)

	case JournalHistoryMsg:
		if msg.Err != nil {
			m.showError(errmsg.OpJournalLoad, msg.Err)
			return m, nil
		}
		m.jrnl.history = msg.Entries
		m.jrnl.cursor.Clamp(len(msg.Entries))
		return m, nil
	}
	return m, nil
}

func (m Model) renderJournal(width, height int) string {
	if m.jrnl.showHistory {
		return m.renderHistory(width, height)
	}
	s := styles.T().S()
	inner := width - 4

	var b strings.Builder
	b.WriteString(styles.Heading("Journal"))
	b.WriteString("  ")
	b.WriteString(s.Subtle.Render("a quiet place for your thoughts"))
	b.WriteString("\n\n")

	switch {
	case m.jrnl.editing:
		b.WriteString(styles.PanelStyle(true).Render(m.jrnl.editor.View()))
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render("ctrl+s to share · esc to pause writing"))
	case m.jrnl.entry != "":
		b.WriteString(s.Muted.Render(render.Wrap(m.jrnl.entry, inner)))
	case m.jrnl.editor.Value() != "":
		b.WriteString(styles.PanelStyle(false).Render(m.jrnl.editor.View()))
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render("enter to keep writing"))
	default:
		b.WriteString(s.Muted.Render("Press enter to start writing. Whatever you feel is welcome here."))
	}
	b.WriteString("\n\n")

	switch {
	case m.jrnl.pending:
		b.WriteString(m.spinner.View() + " " + s.Italic.Render("Reflecting on your words…"))
	case m.jrnl.reply != nil:
		b.WriteString(m.renderReply(*m.jrnl.reply, inner))
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(width).MaxHeight(height).Render(b.String())
}

func (m Model) renderReply(r journal.Reply, width int) string {
	t := styles.T()
	s := t.S()

	var b strings.Builder
	if notice := replyNotice(r); notice != "" {
		b.WriteString(s.Warning.Render(render.Wrap(notice, width)))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.Lavender).Render(render.Wrap(r.Text, width)))

	if len(r.FollowUps) > 0 {
		b.WriteString("\n\n")
		if m.jrnl.showQuestions {
			b.WriteString(s.Title.Render("Questions to explore"))
			for i, q := range r.FollowUps {
				b.WriteString("\n")
				b.WriteString(s.Base.Render(render.Wrap(fmt.Sprintf("%d. %s", i+1, q), width)))
			}
		} else {
			b.WriteString(s.Subtle.Render(fmt.Sprintf("f to explore %d follow-up questions · n for a new entry", len(r.FollowUps))))
		}
	}
	return b.String()
}

// replyNotice explains why a reply came from local text.
func replyNotice(r journal.Reply) string {
	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, journal.ErrNotConfigured):
		return "Personalized reflections are off. Set GEMINI_API_KEY to enable them."
	default:
		return "Couldn't reach the reflection service, so here is a gentle thought instead."
	}
}

func (m Model) renderHistory(width, height int) string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(styles.Heading("Past entries"))
	b.WriteString("\n\n")
	if len(m.jrnl.history) == 0 {
		b.WriteString(s.Subtle.Render("No entries yet. Press n to write your first one."))
		return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(b.String())
	}

	listHeight := min(len(m.jrnl.history), max(height/3, 3))
	start, end := m.jrnl.cursor.Window(len(m.jrnl.history), listHeight)
	now := time.Now()
	inner := width - 4
	for i := start; i < end; i++ {
		e := m.jrnl.history[i]
		when := humanize.RelTime(e.CreatedAt, now, "ago", "from now")
		first, _, _ := strings.Cut(e.Text, "\n")
		line := render.Row(render.Truncate(first, inner-lipgloss.Width(when)-4), when, inner-2)
		if i == m.jrnl.cursor.Pos() {
			b.WriteString(s.Cursor.Render("› " + line))
		} else {
			b.WriteString("  " + s.Base.Render(line))
		}
		b.WriteString("\n")
	}

	e := m.jrnl.history[m.jrnl.cursor.Pos()]
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(render.Wrap(e.Text, inner)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(styles.T().Lavender).Render(render.Wrap(e.Response, inner)))
	for i, q := range e.FollowUps {
		b.WriteString("\n")
		b.WriteString(s.Subtle.Render(render.Wrap(fmt.Sprintf("%d. %s", i+1, q), inner)))
	}
	return lipgloss.NewStyle().Padding(0, 2).Width(width).MaxHeight(height).Render(b.String())
}
