package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/ui"
	"github.com/llehouerou/serein/internal/ui/headerbar"
	"github.com/llehouerou/serein/internal/ui/playerbar"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

const footerHeight = 1

var footerHints = map[View]string{
	ViewHome:        "enter new · ctrl+s save · v saved · ? help · q quit",
	ViewMeditations: "enter play · space pause · ←/→ seek · +/- volume · r script · ? help",
	ViewJournal:     "enter write · n new · f questions · H history · ? help",
}

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerbar.Render(m.view.String(), m.width)
	footer := m.renderFooter()

	bar := ""
	barHeight := 0
	if m.view == ViewMeditations {
		st := m.playerBarState()
		bar = playerbar.Render(st, m.width)
		barHeight = playerBarHeight(st)
	}

	bodyHeight := max(m.height-headerbar.Height-footerHeight-barHeight, 1)
	var body string
	switch m.view {
	case ViewHome:
		body = m.renderHome(m.width, bodyHeight)
	case ViewMeditations:
		body = m.renderMeditations(m.width, bodyHeight)
	case ViewJournal:
		body = m.renderJournal(m.contentWidth(), bodyHeight)
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	body = fitHeight(body, bodyHeight)

	parts := []string{header, body}
	if bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, footer)
	screen := strings.Join(parts, "\n")

	return m.popups.Render(screen)
}

// contentWidth is the width of text-centered views.
func (m Model) contentWidth() int {
	return min(max(m.width-4, ui.MinContentWidth), ui.MaxContentWidth)
}

func (m Model) renderFooter() string {
	s := styles.T().S()
	hints := footerHints[m.view]
	if m.view == ViewJournal && m.jrnl.editing {
		hints = "ctrl+s share · esc stop writing · ctrl+c quit"
	}
	if m.status == "" {
		return " " + s.Subtle.Render(render.Truncate(hints, m.width-2))
	}
	status := s.Success.Render(m.status)
	if m.statusIsError {
		status = s.Error.Render(m.status)
	}
	room := m.width - lipgloss.Width(m.status) - 4
	if room < 10 {
		return " " + status
	}
	return render.Row(" "+status, s.Subtle.Render(render.Truncate(hints, room))+" ", m.width)
}

// fitHeight pads or cuts s to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
