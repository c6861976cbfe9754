package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient through stops.
// Multi-line text restarts the gradient on every line so wrapped
// paragraphs read as one block.
func Gradient(text string, bold bool, stops ...lipgloss.Color) string {
	if len(stops) == 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = gradientLine(line, bold, stops)
	}
	return strings.Join(lines, "\n")
}

// Heading renders a bold lavender-to-blush title.
func Heading(text string) string {
	t := T()
	return Gradient(text, true, t.Lavender, t.Blush)
}

func gradientLine(text string, bold bool, stops []lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	colors := blend(len(clusters), stops)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex()))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// blend spreads size colors across the stops, interpolating in HCL space
// for perceptually even steps.
func blend(size int, stops []lipgloss.Color) []colorful.Color {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cs[i] = toColorful(s)
	}

	out := make([]colorful.Color, size)
	if size == 1 || len(cs) == 1 {
		for i := range out {
			out[i] = cs[0]
		}
		return out
	}

	segments := float64(len(cs) - 1)
	for i := range size {
		pos := float64(i) / float64(size-1) * segments
		seg := min(int(pos), len(cs)-2)
		switch frac := pos - float64(seg); frac {
		case 0:
			out[i] = cs[seg]
		case 1:
			out[i] = cs[seg+1]
		default:
			out[i] = cs[seg].BlendHcl(cs[seg+1], frac).Clamped()
		}
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	// ANSI palette indexes have no fixed RGB value.
	col, _ := colorful.MakeColor(color.Gray{Y: 128})
	return col
}
