package app

import (
	"fmt"
	"path"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/app/handler"
	"github.com/llehouerou/serein/internal/app/popupctl"
	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/keymap"
	"github.com/llehouerou/serein/internal/notify"
	"github.com/llehouerou/serein/internal/ui/playerbar"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

const (
	seekStep   = 10 * time.Second
	volumeStep = 0.1
)

func (m Model) cursorMeditation() (catalog.Meditation, bool) {
	i := m.med.cursor.Pos()
	if i >= len(m.catalog.Meditations) {
		return catalog.Meditation{}, false
	}
	return m.catalog.Meditations[i], true
}

func (m *Model) handleMeditationAction(a keymap.Action) handler.Result {
	if m.view != ViewMeditations {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionMoveUp:
		m.med.cursor.Move(-1, len(m.catalog.Meditations))
		return handler.HandledNoCmd

	case keymap.ActionMoveDown:
		m.med.cursor.Move(1, len(m.catalog.Meditations))
		return handler.HandledNoCmd

	case keymap.ActionSelect:
		med, ok := m.cursorMeditation()
		if !ok {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.startMeditation(med))

	case keymap.ActionReadScript:
		med, ok := m.cursorMeditation()
		if !ok {
			return handler.HandledNoCmd
		}
		if m.med.selected != "" {
			m.player.Stop()
		}
		m.med.selected = med.ID
		m.med.textMode = true
		m.popups.ShowText(popupctl.Script, med.Title, scriptText(med))
		return handler.HandledNoCmd

	case keymap.ActionSetupHelp:
		m.popups.ShowText(popupctl.SetupHelp, "Audio Setup Help", m.setupHelpText())
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

// startMeditation selects med and loads and plays its audio. A meditation
// without audio opens straight in text mode.
func (m *Model) startMeditation(med catalog.Meditation) tea.Cmd {
	m.med.selected = med.ID
	m.med.textMode = false
	m.player.ClearError()
	if !med.HasAudio() {
		m.med.textMode = true
		return nil
	}
	return tea.Batch(m.playMeditationCmd(med), m.spinner.Tick)
}

func (m *Model) handlePlayerAction(a keymap.Action) handler.Result {
	if m.view != ViewMeditations {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionVolumeUp, keymap.ActionVolumeDown:
		step := volumeStep
		if a == keymap.ActionVolumeDown {
			step = -step
		}
		m.player.SetVolume(m.player.State().Volume + step)
		v := m.player.State().Volume
		m.state.SaveVolume(v)
		return handler.Handled(m.setStatus(fmt.Sprintf("Volume %d%%", int(v*100+0.5)), false))
	}

	if m.med.selected == "" {
		// Transport keys do nothing until a meditation is selected.
		switch a {
		case keymap.ActionPlayPause, keymap.ActionStop, keymap.ActionSeekBack,
			keymap.ActionSeekForward, keymap.ActionRetry:
			return handler.HandledNoCmd
		}
		return handler.NotHandled
	}

	st := m.player.State()
	switch a {
	case keymap.ActionPlayPause:
		if st.IsLoading {
			return handler.HandledNoCmd
		}
		if st.ID != m.med.selected {
			// Selected for reading only; load it now.
			med, ok := m.catalog.Meditation(m.med.selected)
			if !ok {
				return handler.HandledNoCmd
			}
			return handler.Handled(m.startMeditation(med))
		}
		m.player.ClearError()
		return handler.Handled(m.toggleCmd(st.ID))

	case keymap.ActionStop:
		m.player.Stop()
		m.med.selected = ""
		m.med.textMode = false
		return handler.HandledNoCmd

	case keymap.ActionSeekBack:
		m.player.Seek(-seekStep)
		return handler.HandledNoCmd

	case keymap.ActionSeekForward:
		m.player.Seek(seekStep)
		return handler.HandledNoCmd

	case keymap.ActionRetry:
		med, ok := m.catalog.Meditation(m.med.selected)
		if !ok {
			return handler.HandledNoCmd
		}
		return handler.Handled(m.startMeditation(med))
	}
	return handler.NotHandled
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlayResultMsg:
		if msg.Err == nil || audio.IsSuperseded(msg.Err) {
			return m, nil
		}
		m.log.Info("meditation audio unavailable", "id", msg.ID, "op", string(msg.Op), "kind", audio.KindOf(msg.Err).String(), "error", msg.Err)
		if msg.ID != m.med.selected {
			return m, nil
		}
		m.med.textMode = true
		var title string
		if med, ok := m.catalog.Meditation(msg.ID); ok {
			title = med.Title
		}
		return m, m.setStatus(errmsg.FormatWith(msg.Op, title, msg.Err), true)

	case PlaybackStateMsg:
		var cmd tea.Cmd
		if msg.Current.IsLoading && !msg.Previous.IsLoading {
			cmd = m.spinner.Tick
		}
		return m, tea.Batch(cmd, m.WatchPlayback())

	case PlaybackEndedMsg:
		var cmds []tea.Cmd
		if med, ok := m.catalog.Meditation(msg.ID); ok {
			listened := m.player.State().Duration
			cmds = append(cmds,
				m.notifyCmd(notify.SessionComplete(med.Title, listened)),
				m.setStatus("Session complete. Well done.", false),
			)
		}
		cmds = append(cmds, m.WatchPlayback())
		return m, tea.Batch(cmds...)

	case PlaybackErrorMsg:
		m.log.Debug("playback error", "op", msg.Operation, "id", msg.ID, "error", msg.Err)
		// Load and play failures come back as PlayResultMsg too.
		if msg.Operation != "playback" {
			return m, m.WatchPlayback()
		}
		var cmd tea.Cmd
		if med, ok := m.catalog.Meditation(msg.ID); ok {
			cmd = m.notifyCmd(notify.SessionInterrupted(med.Title))
		}
		return m, tea.Batch(cmd, m.WatchPlayback())

	case PlaybackClosedMsg:
		m.sub = nil
		return m, nil
	}
	return m, nil
}

func scriptText(med catalog.Meditation) string {
	if med.Script == "" {
		return "No script is available for this meditation."
	}
	return med.Script
}

func (m Model) setupHelpText() string {
	var b strings.Builder
	b.WriteString("To enable audio playback, add the meditation audio files to:\n\n")
	b.WriteString("  " + m.audioBase + "\n\n")
	b.WriteString("Expected files:\n")
	for _, med := range m.catalog.Meditations {
		if !med.HasAudio() {
			continue
		}
		fmt.Fprintf(&b, "  • %s  (%s)\n", path.Base(med.AudioURL), med.Title)
	}
	b.WriteString("\nSet audio_base in config.toml (or SEREIN_AUDIO_BASE) to use another folder or an http(s) URL. ")
	b.WriteString("Until then, press r on any meditation to read its guided script.")
	return b.String()
}

// playerBarState returns what the player bar shows. Nothing is shown
// without a selection or while only reading a script.
func (m Model) playerBarState() playerbar.State {
	if m.med.selected == "" || m.player == nil {
		return playerbar.State{}
	}
	st := m.player.State()
	if st.ID != m.med.selected {
		return playerbar.State{}
	}
	title := st.ID
	if med, ok := m.catalog.Meditation(st.ID); ok {
		title = med.Title
	}
	return playerbar.State{Title: title, Playback: st, Spinner: m.spinner.View()}
}

func (m Model) renderMeditations(width, height int) string {
	listWidth := min(max(width/3, 24), 40)
	detailWidth := max(width-listWidth, 20)
	list := styles.PanelStyle(true).
		Width(listWidth - 2).
		Height(height - 2).
		Render(m.renderMeditationList(listWidth-4, height-2))
	detail := styles.PanelStyle(false).
		Width(detailWidth - 2).
		Height(height - 2).
		Render(m.renderMeditationDetail(detailWidth-4, height-2))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

func (m Model) renderMeditationList(width, height int) string {
	s := styles.T().S()
	current := m.player.State()
	lines := make([]string, 0, len(m.catalog.Meditations))
	for i, med := range m.catalog.Meditations {
		marker := "  "
		if med.ID == m.med.selected {
			marker = "♪ "
			if current.ID == med.ID && current.IsPlaying {
				marker = "▶ "
			}
		}
		dur := fmt.Sprintf("%d min", med.DurationMinutes)
		title := render.Truncate(med.Title, width-lipgloss.Width(dur)-3)
		line := render.Row(marker+title, dur, width)
		switch {
		case i == m.med.cursor.Pos():
			lines = append(lines, s.Cursor.Render(render.Pad(line, width)))
		case med.ID == m.med.selected:
			lines = append(lines, s.Selected.Render(line))
		default:
			lines = append(lines, s.Base.Render(line))
		}
	}
	start, end := m.med.cursor.Window(len(lines), height)
	lines = lines[start:end]
	return strings.Join(lines, "\n")
}

func (m Model) renderMeditationDetail(width, height int) string {
	s := styles.T().S()
	med, ok := m.cursorMeditation()
	if !ok {
		return s.Subtle.Render("No meditations in the catalog.")
	}

	var b strings.Builder
	b.WriteString(styles.Heading(render.Truncate(med.Title, width)))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d minutes", med.DurationMinutes)))
	b.WriteString("\n\n")
	b.WriteString(s.Base.Render(render.Wrap(med.Description, width)))
	b.WriteString("\n\n")

	if m.med.textMode && med.ID == m.med.selected {
		b.WriteString(s.Title.Render("Guided script"))
		b.WriteString("  ")
		b.WriteString(s.Subtle.Render("r to read in full"))
		b.WriteString("\n")
		b.WriteString(s.Italic.Render(render.Wrap(scriptText(med), width)))
	} else if med.ID != m.med.selected {
		b.WriteString(s.Subtle.Render("enter to listen · r to read the script"))
	}

	lines := strings.Split(b.String(), "\n")
	if height > 1 && len(lines) > height {
		lines = append(lines[:height-1], s.Subtle.Render("…"))
	}
	return strings.Join(lines, "\n")
}

// playerBarHeight returns the space the bar takes for st.
func playerBarHeight(st playerbar.State) int {
	if st.Playback.ID == "" {
		return 0
	}
	return playerbar.Height(st)
}
