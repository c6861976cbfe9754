package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/serein/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 2)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgBase).Bold(true)
}

func filledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Lavender)
}

func emptyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Border)
}

func timeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgMuted)
}
