// Package cursor tracks a selection in a list whose length changes under it.
package cursor

// Cursor is a position in a list. The list length is passed to each call
// rather than stored, since the list is reloaded independently.
type Cursor struct {
	pos int
}

func (c Cursor) Pos() int { return c.pos }

// Move shifts the cursor by delta, clamped to [0, n). A no-op when n is 0.
func (c *Cursor) Move(delta, n int) {
	if n == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, n-1)
}

// Clamp pulls the cursor back inside a list that shrank to n items.
func (c *Cursor) Clamp(n int) {
	c.pos = clamp(c.pos, max(n-1, 0))
}

func (c *Cursor) Reset() { c.pos = 0 }

// Window returns the range [start, end) of a list of n items shown in
// height lines, centered on the cursor where the list allows it.
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start = clamp(c.pos-height/2, n-height)
	return start, start + height
}

func clamp(v, hi int) int {
	return min(max(v, 0), hi)
}
