package summarizer

import (
	"sort"
	"time"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/widget"
)

// Summary contains the data reported about a stored design.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Document information
	Document DocumentInfo

	// Canvas dimensions and background
	Canvas CanvasInfo

	// Widget counts per type
	Counts map[widget.Type]int

	// Widgets in paint order (ascending z, ties by id)
	Widgets []WidgetInfo
}

// DocumentInfo identifies the summarized design.
type DocumentInfo struct {
	ID        string
	Name      string
	UpdatedAt time.Time
}

// CanvasInfo describes the design's canvas.
type CanvasInfo struct {
	Width      int
	Height     int
	Background string
}

// WidgetInfo is one widget row in the summary.
type WidgetInfo struct {
	ID     string
	Type   widget.Type
	X      int
	Y      int
	Width  int
	Height int
	ZIndex int
	Label  string
}

// FromDesign builds a Summary from a design document.
func FromDesign(d design.Design) *Summary {
	s := &Summary{
		GeneratedAt: time.Now(),
		Document: DocumentInfo{
			ID:        d.ID,
			Name:      d.Name,
			UpdatedAt: d.UpdatedAt,
		},
		Canvas: CanvasInfo{
			Width:      int(d.Width),
			Height:     int(d.Height),
			Background: d.Background,
		},
		Counts: make(map[widget.Type]int),
	}

	for _, w := range d.Widgets {
		s.Counts[w.Type]++
		s.Widgets = append(s.Widgets, WidgetInfo{
			ID:     w.ID,
			Type:   w.Type,
			X:      int(w.Position.X),
			Y:      int(w.Position.Y),
			Width:  int(w.Size.Width),
			Height: int(w.Size.Height),
			ZIndex: w.ZIndex,
			Label:  widgetLabel(w),
		})
	}

	sort.Slice(s.Widgets, func(i, j int) bool {
		if s.Widgets[i].ZIndex != s.Widgets[j].ZIndex {
			return s.Widgets[i].ZIndex < s.Widgets[j].ZIndex
		}
		return s.Widgets[i].ID < s.Widgets[j].ID
	})

	return s
}

// Total returns the number of widgets in the design.
func (s *Summary) Total() int {
	return len(s.Widgets)
}

// widgetLabel extracts a short human-readable label for a widget.
func widgetLabel(w widget.Data) string {
	switch {
	case w.Text != nil && w.Text.Text != "":
		return truncate(w.Text.Text, 40)
	case w.Image != nil && w.Image.ImageURL != "":
		return truncate(w.Image.ImageURL, 40)
	case w.Content != "":
		return truncate(w.Content, 40)
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
