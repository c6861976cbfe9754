// Package overlay composes a box on top of an already rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws box over base with its top-left corner at (x, y). Both
// strings may carry ANSI styling; base lines shorter than width are padded.
func Compose(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	for i, line := range boxLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}

		under := baseLines[row]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		end := x + ansi.StringWidth(line)

		composed := ansi.Cut(under, 0, x) + line
		if end < width {
			composed += ansi.Cut(under, end, width)
		}
		baseLines[row] = composed
	}

	return strings.Join(baseLines, "\n")
}

// Center draws box in the middle of a width x height base.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, l := range boxLines {
		boxW = max(boxW, ansi.StringWidth(l))
	}
	x := max((width-boxW)/2, 0)
	y := max((height-len(boxLines))/2, 0)
	return Compose(base, box, x, y, width)
}
