package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/serein/internal/app/handler"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/keymap"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

func (m *Model) handleHomeAction(a keymap.Action) handler.Result {
	if m.view != ViewHome {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionNewAffirmation:
		if m.home.generating {
			return handler.HandledNoCmd
		}
		m.home.generating = true
		m.home.saved = false
		return handler.Handled(tea.Batch(m.drawAffirmationCmd(), m.spinner.Tick))

	case keymap.ActionSaveAffirmation:
		if !m.home.has || m.home.generating {
			return handler.Handled(m.setStatus("Draw an affirmation first", false))
		}
		return handler.Handled(m.saveAffirmationCmd(m.home.current))

	case keymap.ActionShowSaved:
		m.home.showSaved = !m.home.showSaved
		if m.home.showSaved {
			return handler.Handled(m.loadSavedCmd())
		}
		return handler.HandledNoCmd

	case keymap.ActionMoveUp:
		if m.home.showSaved {
			m.home.cursor.Move(-1, len(m.home.items))
		}
		return handler.HandledNoCmd

	case keymap.ActionMoveDown:
		if m.home.showSaved {
			m.home.cursor.Move(1, len(m.home.items))
		}
		return handler.HandledNoCmd

	case keymap.ActionDelete:
		if !m.home.showSaved || len(m.home.items) == 0 {
			return handler.HandledNoCmd
		}
		item := m.home.items[m.home.cursor.Pos()]
		m.popups.ShowConfirm("Delete affirmation", "“"+item.Text+"”\n\nRemove it from your saved affirmations?", item.ID)
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m Model) handleAffirmationMsg(msg AffirmationMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AffirmationReadyMsg:
		m.home.generating = false
		if !msg.OK {
			return m, m.setStatus("No affirmations in the catalog", true)
		}
		m.home.current = msg.Affirmation
		m.home.has = true
		m.home.saved = m.isSaved(msg.Affirmation.Text)
		return m, nil

	case AffirmationSavedMsg:
		if msg.Err != nil {
			m.showError(errmsg.OpAffirmationSave, msg.Err)
			return m, nil
		}
		if msg.Text == m.home.current.Text {
			m.home.saved = true
		}
		status := "Affirmation saved"
		if !msg.Added {
			status = "Already in your saved affirmations"
		}
		cmds := []tea.Cmd{m.setStatus(status, false)}
		if m.home.showSaved {
			cmds = append(cmds, m.loadSavedCmd())
		}
		return m, tea.Batch(cmds...)

	case SavedAffirmationsMsg:
		if msg.Err != nil {
			m.showError(errmsg.OpAffirmationLoad, msg.Err)
			return m, nil
		}
		m.home.items = msg.Items
		m.home.cursor.Clamp(len(msg.Items))
		if m.home.has {
			m.home.saved = m.isSaved(m.home.current.Text)
		}
		return m, nil

	case AffirmationDeletedMsg:
		if msg.Err != nil {
			m.showError(errmsg.OpAffirmationDelete, msg.Err)
			return m, nil
		}
		return m, tea.Batch(m.setStatus("Affirmation removed", false), m.loadSavedCmd())
	}
	return m, nil
}

// isSaved checks the loaded saved list; it is only as fresh as the last load.
func (m Model) isSaved(text string) bool {
	for _, it := range m.home.items {
		if it.Text == text {
			return true
		}
	}
	return false
}

func (m Model) renderHome(width, height int) string {
	t := styles.T()
	s := t.S()
	cardWidth := min(max(width-8, 20), 64)

	var card strings.Builder
	card.WriteString(render.Center(styles.Heading("Daily Affirmation"), cardWidth))
	card.WriteString("\n\n")
	switch {
	case m.home.generating:
		card.WriteString(render.Center(m.spinner.View()+" "+s.Italic.Render("Listening to the stars…"), cardWidth))
	case m.home.has:
		text := render.Wrap("“"+m.home.current.Text+"”", cardWidth-4)
		card.WriteString(render.Center(styles.Gradient(text, true, t.Lavender, t.Blush, t.Indigo), cardWidth))
		card.WriteString("\n\n")
		meta := s.Muted.Render("✦ " + m.home.current.Theme)
		if m.home.saved {
			meta += s.Muted.Render("  ·  ") + s.Success.Render("♥ saved")
		}
		card.WriteString(render.Center(meta, cardWidth))
	default:
		card.WriteString(render.Center(s.Muted.Render("Take a breath. When you're ready,"), cardWidth))
		card.WriteString("\n")
		card.WriteString(render.Center(s.Muted.Render("press enter to receive today's affirmation."), cardWidth))
	}

	box := styles.PanelStyle(true).Padding(1, 2).Render(card.String())
	parts := []string{box}
	if m.home.showSaved {
		parts = append(parts, "", m.renderSaved(cardWidth+6, max(height-lipgloss.Height(box)-1, 3)))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderSaved(width, height int) string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Saved affirmations"))
	b.WriteString("\n")
	if len(m.home.items) == 0 {
		b.WriteString(s.Subtle.Render("Nothing saved yet. Press ctrl+s on an affirmation you love."))
		return b.String()
	}

	visible := max(height-2, 1)
	start, end := m.home.cursor.Window(len(m.home.items), visible)
	now := time.Now()
	for i := start; i < end; i++ {
		it := m.home.items[i]
		when := humanize.RelTime(it.SavedAt, now, "ago", "from now")
		line := render.Row(render.Truncate(it.Text, width-lipgloss.Width(when)-4), s.Subtle.Render(when), width-2)
		if i == m.home.cursor.Pos() {
			b.WriteString(s.Cursor.Render("› " + line))
		} else {
			b.WriteString("  " + s.Base.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
