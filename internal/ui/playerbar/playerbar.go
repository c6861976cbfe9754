// Package playerbar renders the playback status bar under the meditation list.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/playback"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	errorSymbol = "✕"
)

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Playback playback.State
	// Spinner is the current spinner frame shown while loading.
	Spinner string
}

// Height returns the total height of the bar, borders included.
func Height(s State) int {
	if s.Playback.HasError() {
		return 4
	}
	return 3
}

// Render returns the player bar for the given width. It is empty when no
// meditation is selected.
func Render(s State, width int) string {
	if s.Playback.ID == "" {
		return ""
	}
	inner := max(width-6, 0)

	var content string
	switch {
	case s.Playback.HasError():
		content = renderError(s, inner)
	case s.Playback.IsLoading:
		content = renderLoading(s, inner)
	default:
		content = renderPlaying(s, inner)
	}
	return barStyle().Width(max(width-2, 0)).Render(content)
}

func renderLoading(s State, width int) string {
	spin := s.Spinner
	if spin == "" {
		spin = "…"
	}
	line := spin + " Loading " + title(s)
	return timeStyle().Render(render.Truncate(line, width))
}

func renderPlaying(s State, width int) string {
	p := s.Playback
	status := pauseSymbol
	if p.IsPlaying {
		status = playSymbol
	}

	times := FormatDuration(p.CurrentTime) + " / " + FormatDuration(p.Duration)
	volume := fmt.Sprintf("vol %3d%%", int(p.Volume*100+0.5))
	sep := "   "

	fixed := lipgloss.Width(status) + 2 + len(sep)*3 + lipgloss.Width(times) + lipgloss.Width(volume)
	minBar := 10
	titleWidth := min(lipgloss.Width(title(s)), max(width-fixed-minBar, 8))
	barWidth := max(width-fixed-titleWidth, 3)

	var b strings.Builder
	b.WriteString(titleStyle().Render(render.Truncate(title(s), titleWidth)))
	b.WriteString(sep)
	b.WriteString(status + "  ")
	b.WriteString(progressBar(p.Progress, barWidth))
	b.WriteString(sep)
	b.WriteString(timeStyle().Render(times))
	b.WriteString(sep)
	b.WriteString(timeStyle().Render(volume))
	return b.String()
}

func renderError(s State, width int) string {
	st := styles.T().S()
	head := st.Error.Render(errorSymbol) + " " + titleStyle().Render(render.Truncate(title(s), max(width-2, 1)))
	msg := render.Truncate(s.Playback.Error, width)
	hints := Hints(s.Playback.ErrorKind)
	if hints != "" {
		msg = render.Row(st.Error.Render(render.Truncate(s.Playback.Error, max(width-lipgloss.Width(hints)-3, 10))),
			st.Subtle.Render(hints), width)
	} else {
		msg = st.Error.Render(msg)
	}
	return head + "\n" + msg
}

// Hints returns the recovery keys offered for an error kind.
func Hints(kind audio.Kind) string {
	switch kind {
	case audio.PermissionRequired, audio.NotReady:
		return "space play · R retry"
	case audio.ResourceNotFound, audio.FormatUnsupported:
		return "h setup help · r read script"
	case audio.KindUnknown:
		return ""
	default:
		return "R retry · r read script"
	}
}

func title(s State) string {
	if s.Title == "" {
		return s.Playback.ID
	}
	return s.Title
}
