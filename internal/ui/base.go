package ui

// Base tracks the screen area a component draws into. Embed it in models
// that render as overlays so the parent can pass resizes down.
type Base struct {
	width, height int
}

func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }

// BodyHeight is the number of lines left once chrome lines are taken out.
// It never drops below one.
func (b Base) BodyHeight(chrome int) int {
	return max(b.height-chrome, 1)
}
