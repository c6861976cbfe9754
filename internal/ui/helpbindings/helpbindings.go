// Package helpbindings renders a scrollable key reference.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/keymap"
	"github.com/llehouerou/serein/internal/ui"
	"github.com/llehouerou/serein/internal/ui/popup"
	"github.com/llehouerou/serein/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "home", "meditations", "player", "journal", "editor"}

var categoryLabels = map[string]string{
	"global":      "Global",
	"home":        "Home",
	"meditations": "Meditations",
	"player":      "Player",
	"journal":     "Journal",
	"editor":      "While writing",
}

// dialogChrome is the number of screen lines around the scrolled body:
// margins, border, title and footer.
const dialogChrome = 8

// CloseMsg is sent when the user dismisses the help.
type CloseMsg struct{}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	offset   int
}

// New creates a help model listing the given contexts.
func New(contexts ...string) Model {
	var m Model
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	return m
}

// Update scrolls on j/k and closes on ?, esc or q.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		m.offset = min(m.offset+1, m.maxOffset())
	case "k", "up":
		m.offset = max(m.offset-1, 0)
	}
	return m, nil
}

// View renders the help dialog over base.
func (m Model) View(base string) string {
	d := popup.Dialog{
		Title:   "Help",
		Content: m.content(),
		Footer:  "j/k scroll · esc close",
		Offset:  m.offset,
	}
	return d.Over(base, m.Width(), m.Height())
}

func (m Model) maxOffset() int {
	lines := strings.Count(m.content(), "\n") + 1
	return max(lines-m.BodyHeight(dialogChrome), 0)
}

func (m Model) content() string {
	s := styles.T().S()
	header := lipgloss.NewStyle().Foreground(styles.T().Blush).Bold(true)

	keyWidth := 0
	keys := make([]string, len(m.bindings))
	for i, b := range m.bindings {
		shown := make([]string, len(b.Keys))
		for j, k := range b.Keys {
			shown[j] = keymap.DisplayKey(k)
		}
		keys[i] = strings.Join(shown, ", ")
		keyWidth = max(keyWidth, lipgloss.Width(keys[i]))
	}

	var sb strings.Builder
	current := ""
	for i, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(header.Render(categoryLabels[b.Context]))
			sb.WriteString("\n")
			current = b.Context
		}
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(keys[i]))
		sb.WriteString(s.Key.Render(keys[i]) + pad + "  " + s.Base.Render(b.Description) + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
