// Package popup renders bordered dialogs centered over the current view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/ui/overlay"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

// Dialog is a centered box with a title, wrapped content, and a footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	// Width is the content width; 0 fits the content up to the screen.
	Width int
	// Offset scrolls the content by this many lines.
	Offset int
	// Accent colors the border. Empty uses the focused border color.
	Accent lipgloss.Color
}

// Box renders the dialog for a screen of the given size.
func (d Dialog) Box(screenW, screenH int) string {
	t := styles.T()
	maxW := max(screenW-6, 10)

	width := d.Width
	if width == 0 {
		width = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	width = min(width, maxW)

	lines := strings.Split(render.Wrap(d.Content, width), "\n")
	// Border, title and footer rows.
	visible := max(screenH-8, 1)
	offset := min(max(d.Offset, 0), max(len(lines)-visible, 0))
	lines = lines[offset:min(offset+visible, len(lines))]

	var b strings.Builder
	if d.Title != "" {
		b.WriteString(render.Center(styles.Heading(d.Title), width))
		b.WriteString("\n\n")
	}
	b.WriteString(strings.Join(lines, "\n"))
	if d.Footer != "" {
		b.WriteString("\n\n")
		b.WriteString(render.Center(t.S().Subtle.Render(d.Footer), width))
	}

	accent := d.Accent
	if accent == "" {
		accent = t.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(width + 2).
		Render(b.String())
}

// Over renders the dialog centered on top of base.
func (d Dialog) Over(base string, screenW, screenH int) string {
	return overlay.Center(base, d.Box(screenW, screenH), screenW, screenH)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
