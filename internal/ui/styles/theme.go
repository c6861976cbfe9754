// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Gradient stops used for headings and the affirmation card
	Lavender lipgloss.Color
	Blush    lipgloss.Color
	Indigo   lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Italic   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Key      lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Panel    lipgloss.Style
	Focused  lipgloss.Style
}

var defaultTheme = Theme{
	Lavender: lipgloss.Color("#c4b5fd"),
	Blush:    lipgloss.Color("#fbcfe8"),
	Indigo:   lipgloss.Color("#a5b4fc"),

	FgBase:   lipgloss.Color("#e9e4f5"),
	FgMuted:  lipgloss.Color("#a79fbd"),
	FgSubtle: lipgloss.Color("#6b6480"),

	BgCursor: lipgloss.Color("#2e2640"),

	Border:      lipgloss.Color("#4c4366"),
	BorderFocus: lipgloss.Color("#c4b5fd"),

	Success: lipgloss.Color("#86efac"),
	Error:   lipgloss.Color("#fca5a5"),
	Warning: lipgloss.Color("#fcd34d"),
	Info:    lipgloss.Color("#93c5fd"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return &Styles{
		Base:     base,
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:   lipgloss.NewStyle().Foreground(t.FgSubtle),
		Italic:   lipgloss.NewStyle().Foreground(t.Lavender).Italic(true),
		Title:    base.Bold(true),
		Selected: lipgloss.NewStyle().Foreground(t.Lavender).Bold(true),
		Cursor:   lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
		Key:      lipgloss.NewStyle().Foreground(t.Lavender).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		Info:     lipgloss.NewStyle().Foreground(t.Info),
		Panel:    panel,
		Focused:  panel.BorderForeground(t.BorderFocus),
	}
}

// PanelStyle returns the panel style for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return T().S().Focused
	}
	return T().S().Panel
}
