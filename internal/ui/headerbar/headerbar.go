// Package headerbar renders the brand and view tabs at the top of the screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

// Height is the header line plus the separator under it.
const Height = 2

type tab struct {
	key  string
	name string
	view string
}

var tabs = []tab{
	{"1", "Home", "home"},
	{"2", "Meditations", "meditations"},
	{"3", "Journal", "journal"},
}

const brand = "✧ serein"

// Render returns the header for the given width. current is "home",
// "meditations" or "journal".
func Render(current string, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()
	activeKey := lipgloss.NewStyle().Foreground(t.Blush).Bold(true)
	activeName := lipgloss.NewStyle().Foreground(t.Lavender).Bold(true).Underline(true)
	inactiveKey := lipgloss.NewStyle().Foreground(t.FgSubtle)
	inactiveName := lipgloss.NewStyle().Foreground(t.FgMuted)

	parts := make([]string, 0, len(tabs))
	for _, tb := range tabs {
		keyStyle, nameStyle := inactiveKey, inactiveName
		if tb.view == current {
			keyStyle, nameStyle = activeKey, activeName
		}
		parts = append(parts, keyStyle.Render(tb.key)+" "+nameStyle.Render(tb.name))
	}
	content := strings.Join(parts, t.S().Subtle.Render(" │ "))

	left := styles.Heading(brand)
	gap := width - lipgloss.Width(left) - lipgloss.Width(content) - 2
	var line string
	if gap < 2 {
		line = lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
	} else {
		line = " " + left + strings.Repeat(" ", gap) + content + " "
	}
	return line + "\n" + t.S().Subtle.Render(render.Separator(width))
}
