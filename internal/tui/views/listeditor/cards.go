package listeditor

import tea "github.com/charmbracelet/bubbletea"

// cardCursor is the focus region over the rendered item cards. pos indexes
// the display order, not the list.
type cardCursor struct {
	pos     int
	focused bool
}

func (c *cardCursor) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *cardCursor) Blur()         { c.focused = false }
func (c *cardCursor) Focused() bool { return c.focused }

func (c *cardCursor) move(delta, n int) {
	c.pos += delta
	c.clamp(n)
}

func (c *cardCursor) clamp(n int) {
	c.pos = max(min(c.pos, n-1), 0)
}
