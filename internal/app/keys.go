package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/app/handler"
	"github.com/llehouerou/serein/internal/keymap"
)

// contexts returns the key contexts active in the current view, most
// specific first.
func (m Model) contexts() []string {
	switch m.view {
	case ViewMeditations:
		return []string{"player", "meditations", "global"}
	case ViewJournal:
		if m.jrnl.editing {
			return []string{"editor"}
		}
		return []string{"journal", "global"}
	case ViewHome:
	}
	return []string{"home", "global"}
}

// helpContexts lists what the help popup documents for the current view.
func (m Model) helpContexts() []string {
	switch m.view {
	case ViewMeditations:
		return []string{"global", "meditations", "player"}
	case ViewJournal:
		return []string{"global", "journal", "editor"}
	case ViewHome:
	}
	return []string{"global", "home"}
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if handled, cmd := m.popups.HandleKey(msg); handled {
		return m, cmd
	}

	action := m.keys.Resolve(msg.String(), m.contexts()...)

	if m.view == ViewJournal && m.jrnl.editing {
		if handled, cmd := handler.Chain(action, m.handleEditorAction); handled {
			return m, cmd
		}
		var cmd tea.Cmd
		m.jrnl.editor, cmd = m.jrnl.editor.Update(msg)
		return m, cmd
	}

	_, cmd := handler.Chain(action,
		m.handleGlobalAction,
		m.handleHomeAction,
		m.handleMeditationAction,
		m.handlePlayerAction,
		m.handleJournalAction,
	)
	return m, cmd
}

func (m *Model) handleGlobalAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionQuit:
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.popups.ShowHelp(m.helpContexts()...)
		return handler.HandledNoCmd
	case keymap.ActionNextView:
		return handler.Handled(m.setView((m.view + 1) % viewCount))
	case keymap.ActionViewHome:
		return handler.Handled(m.setView(ViewHome))
	case keymap.ActionViewMedit:
		return handler.Handled(m.setView(ViewMeditations))
	case keymap.ActionViewJrnl:
		return handler.Handled(m.setView(ViewJournal))
	}
	return handler.NotHandled
}

func (m *Model) setView(v View) tea.Cmd {
	if m.view == ViewJournal && v != ViewJournal {
		m.jrnl.editing = false
		m.jrnl.editor.Blur()
	}
	m.view = v
	return nil
}
