package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/app/popupctl"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpbindings.CloseMsg:
		m.popups.Hide(popupctl.Help)
		return m, nil

	case popupctl.ConfirmResultMsg:
		return m.handleConfirmResult(msg)

	case StatusTimeoutMsg:
		if msg.Version == m.statusVersion {
			m.status = ""
			m.statusIsError = false
		}
		return m, nil

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case AffirmationMessage:
		return m.handleAffirmationMsg(msg)

	case JournalMessage:
		return m.handleJournalMsg(msg)
	}

	// Cursor blink and other editor internals.
	if m.jrnl.editing {
		var cmd tea.Cmd
		m.jrnl.editor, cmd = m.jrnl.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.popups.SetSize(msg.Width, msg.Height)
	m.jrnl.editor.SetWidth(m.contentWidth() - 4)
	return m, nil
}

func (m Model) handleConfirmResult(msg popupctl.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	id, ok := msg.Context.(int64)
	if !msg.Confirmed || !ok {
		return m, nil
	}
	return m, m.deleteAffirmationCmd(id)
}

// showError opens the error popup for a failed operation.
func (m *Model) showError(op errmsg.Op, err error) {
	m.log.Error("operation failed", "op", string(op), "error", err)
	m.popups.ShowError(errmsg.Format(op, err))
}
