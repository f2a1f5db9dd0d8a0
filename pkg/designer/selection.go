package designer

import (
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/widget"
)

// MarqueeClickThreshold is the drag distance in canvas pixels below
// which a rubber-band gesture counts as a plain background click.
const MarqueeClickThreshold = 5.0

// SelectionManager owns the selected-widget set, the single reference
// widget among them, and the marquee selection box. It never mutates
// widget geometry.
type SelectionManager struct {
	lookup func(string) (widget.Widget, bool)
	bus    *events.Bus

	// order preserves selection order; the first element is the
	// automatic reference.
	order       []string
	referenceID string

	marqueeActive bool
	marqueeOrigin geometry.Point
	marqueeRect   geometry.Rect
}

// NewSelectionManager creates a selection manager resolving widget ids
// through lookup and publishing changes on bus.
func NewSelectionManager(lookup func(string) (widget.Widget, bool), bus *events.Bus) *SelectionManager {
	return &SelectionManager{lookup: lookup, bus: bus}
}

// Select adds the widget to the selection. When additive is false the
// prior selection is cleared first. The first widget selected into an
// empty selection becomes the reference automatically.
func (s *SelectionManager) Select(id string, additive bool) {
	w, ok := s.lookup(id)
	if !ok {
		return
	}
	if !additive {
		s.clearFlags()
		s.order = nil
		s.referenceID = ""
	}
	if s.indexOf(id) >= 0 {
		s.publishState()
		return
	}
	wasEmpty := len(s.order) == 0
	s.order = append(s.order, id)
	w.SetSelected(true)
	if wasEmpty {
		s.referenceID = id
		w.SetReference(true)
	}
	s.publishState()
}

// Deselect removes the widget from the selection. Removing the
// reference leaves the reference unset; alignment operations then need
// an explicit new anchor before they can run again.
func (s *SelectionManager) Deselect(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	if w, ok := s.lookup(id); ok {
		w.SetSelected(false)
	}
	if s.referenceID == id {
		s.referenceID = ""
	}
	s.publishState()
}

// Toggle flips selection membership without touching the rest of the
// selection.
func (s *SelectionManager) Toggle(id string) {
	if s.indexOf(id) >= 0 {
		s.Deselect(id)
		return
	}
	s.Select(id, true)
}

// PromoteReference makes an already-selected widget the reference (the
// "set alignment anchor" gesture). Widgets outside the selection are
// ignored.
func (s *SelectionManager) PromoteReference(id string) {
	if s.indexOf(id) < 0 {
		return
	}
	if prev, ok := s.lookup(s.referenceID); ok {
		prev.SetReference(false)
	}
	s.referenceID = id
	if w, ok := s.lookup(id); ok {
		w.SetReference(true)
	}
	s.publishState()
}

// Clear empties the selection and the reference.
func (s *SelectionManager) Clear() {
	if len(s.order) == 0 && s.referenceID == "" {
		return
	}
	s.clearFlags()
	s.order = nil
	s.referenceID = ""
	s.publishState()
}

// Drop removes a widget from selection bookkeeping without touching
// its flags; used when the widget is being destroyed.
func (s *SelectionManager) Drop(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	if s.referenceID == id {
		s.referenceID = ""
	}
	s.publishState()
}

// Selected returns the selected ids in selection order.
func (s *SelectionManager) Selected() []string {
	return append([]string(nil), s.order...)
}

// IsSelected reports selection membership.
func (s *SelectionManager) IsSelected(id string) bool {
	return s.indexOf(id) >= 0
}

// Count returns the selection size.
func (s *SelectionManager) Count() int { return len(s.order) }

// ReferenceID returns the current reference widget id, or "".
func (s *SelectionManager) ReferenceID() string { return s.referenceID }

// Reference resolves the reference widget. The second result is false
// when no reference is set.
func (s *SelectionManager) Reference() (widget.Widget, bool) {
	if s.referenceID == "" {
		return nil, false
	}
	return s.lookup(s.referenceID)
}

// StartSelectionBox begins a marquee gesture at origin.
func (s *SelectionManager) StartSelectionBox(origin geometry.Point) {
	s.marqueeActive = true
	s.marqueeOrigin = origin
	s.marqueeRect = geometry.RectBetween(origin, origin)
}

// UpdateSelectionBox stretches the marquee to the current pointer.
func (s *SelectionManager) UpdateSelectionBox(current geometry.Point) {
	if !s.marqueeActive {
		return
	}
	s.marqueeRect = geometry.RectBetween(s.marqueeOrigin, current)
}

// EndSelectionBox finishes the marquee gesture and returns the final
// rectangle so the caller can apply the click-vs-drag threshold.
func (s *SelectionManager) EndSelectionBox() geometry.Rect {
	s.marqueeActive = false
	return s.marqueeRect
}

// MarqueeActive reports whether a rubber-band box is being dragged.
func (s *SelectionManager) MarqueeActive() bool { return s.marqueeActive }

// MarqueeRect returns the current rubber-band rectangle for rendering.
func (s *SelectionManager) MarqueeRect() geometry.Rect { return s.marqueeRect }

// SelectIntersecting selects every candidate whose bounding rectangle
// overlaps rect. Partial overlap counts; full containment is not
// required.
func (s *SelectionManager) SelectIntersecting(rect geometry.Rect, candidates []widget.Widget, additive bool) {
	if !additive {
		s.clearFlags()
		s.order = nil
		s.referenceID = ""
	}
	for _, w := range candidates {
		if rect.Intersects(w.Rect()) {
			s.Select(w.ID(), true)
		}
	}
	s.publishState()
}

func (s *SelectionManager) indexOf(id string) int {
	for i, sel := range s.order {
		if sel == id {
			return i
		}
	}
	return -1
}

func (s *SelectionManager) clearFlags() {
	for _, id := range s.order {
		if w, ok := s.lookup(id); ok {
			w.SetSelected(false)
		}
	}
}

func (s *SelectionManager) publishState() {
	s.bus.Publish(events.SelectionChanged{
		Selected:    s.Selected(),
		ReferenceID: s.referenceID,
	})
}
