package designer

import "github.com/user/breakstudio/pkg/widget"

// Clipboard is the in-memory cut/copy/paste buffer for widget data. It
// is independent of the OS clipboard and holds only snapshots, never
// live widgets.
type Clipboard struct {
	items []widget.Data
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Put replaces the clipboard contents with deep copies of the given
// snapshots. Copying never touches undo history.
func (c *Clipboard) Put(items []widget.Data) {
	c.items = c.items[:0]
	for _, it := range items {
		c.items = append(c.items, it.Clone())
	}
}

// Items returns deep copies of the buffered snapshots.
func (c *Clipboard) Items() []widget.Data {
	out := make([]widget.Data, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

// IsEmpty reports whether the clipboard holds anything.
func (c *Clipboard) IsEmpty() bool { return len(c.items) == 0 }

// Clear empties the buffer.
func (c *Clipboard) Clear() { c.items = nil }
