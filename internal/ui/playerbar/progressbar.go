package playerbar

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// progressBar renders a line-style bar for a percentage in [0, 100].
func progressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if math.IsNaN(percent) {
		percent = 0
	}
	percent = min(max(percent, 0), 100)
	filled := min(int(float64(width)*percent/100), width)
	return filledStyle().Render(strings.Repeat("━", filled)) +
		emptyStyle().Render(strings.Repeat("─", width-filled))
}

// FormatDuration formats d as m:ss, or h:mm:ss past an hour.
func FormatDuration(d time.Duration) string {
	d = max(d, 0).Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
