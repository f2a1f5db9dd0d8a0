package designer

import (
	"sort"

	"github.com/user/breakstudio/pkg/widget"
)

// AlignMode selects which edge or center an align operation matches
// against the reference widget.
type AlignMode int

const (
	AlignLeft AlignMode = iota
	AlignRight
	AlignTop
	AlignBottom
	AlignCenterH
	AlignCenterV
)

// String returns the align mode's label.
func (m AlignMode) String() string {
	switch m {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignCenterH:
		return "center horizontal"
	case AlignCenterV:
		return "center vertical"
	default:
		return "unknown"
	}
}

// Axis selects the distribution direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// SizeMode selects which dimensions make-same-size copies from the
// reference.
type SizeMode int

const (
	SameWidth SizeMode = iota
	SameHeight
	SameSize
)

// AlignmentService computes align, distribute and same-size commands
// anchored on the reference widget. All results are pure before/after
// state pairs; applying them is the command layer's job.
type AlignmentService struct{}

// NewAlignmentService creates the service; it is stateless.
func NewAlignmentService() *AlignmentService {
	return &AlignmentService{}
}

// Align computes the before/after states for aligning widgets against
// the reference. The reference itself never moves; only the relevant
// axis of each other widget changes. Returns false when fewer than two
// widgets are involved or the reference is missing.
func (a *AlignmentService) Align(mode AlignMode, ref widget.Widget, selected []widget.Widget) (before, after []WidgetState, ok bool) {
	if ref == nil || len(selected) < 2 {
		return nil, nil, false
	}
	refRect := ref.Rect()
	for _, w := range selected {
		if w.ID() == ref.ID() {
			continue
		}
		r := w.Rect()
		to := r.Position()
		switch mode {
		case AlignLeft:
			to.X = refRect.X
		case AlignRight:
			to.X = refRect.X + refRect.Width - r.Width
		case AlignTop:
			to.Y = refRect.Y
		case AlignBottom:
			to.Y = refRect.Y + refRect.Height - r.Height
		case AlignCenterH:
			to.X = refRect.X + (refRect.Width-r.Width)/2
		case AlignCenterV:
			to.Y = refRect.Y + (refRect.Height-r.Height)/2
		}
		before = append(before, WidgetState{ID: w.ID(), Position: r.Position(), Size: r.Size()})
		after = append(after, WidgetState{ID: w.ID(), Position: to, Size: r.Size()})
	}
	return before, after, len(after) > 0
}

// Distribute computes gap-based distribution along the axis. Widgets
// are sorted by current position; the extremes anchor the span and do
// not move; the remaining gap is divided evenly so consecutive edges
// end up equally spaced. Requires at least three widgets.
func (a *AlignmentService) Distribute(axis Axis, selected []widget.Widget) (before, after []WidgetState, ok bool) {
	if len(selected) < 3 {
		return nil, nil, false
	}

	sorted := append([]widget.Widget(nil), selected...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if axis == AxisHorizontal {
			return sorted[i].Rect().X < sorted[j].Rect().X
		}
		return sorted[i].Rect().Y < sorted[j].Rect().Y
	})

	first := sorted[0].Rect()
	last := sorted[len(sorted)-1].Rect()

	var span, extents float64
	if axis == AxisHorizontal {
		span = last.Right() - first.X
	} else {
		span = last.Bottom() - first.Y
	}
	for _, w := range sorted {
		if axis == AxisHorizontal {
			extents += w.Rect().Width
		} else {
			extents += w.Rect().Height
		}
	}
	spacing := (span - extents) / float64(len(sorted)-1)

	// Walk the sorted order placing each widget's near edge after the
	// previous widget's far edge.
	var cursor float64
	if axis == AxisHorizontal {
		cursor = first.Right()
	} else {
		cursor = first.Bottom()
	}
	for i, w := range sorted {
		r := w.Rect()
		if i == 0 || i == len(sorted)-1 {
			continue // extremes are anchors
		}
		to := r.Position()
		if axis == AxisHorizontal {
			to.X = cursor + spacing
			cursor = to.X + r.Width
		} else {
			to.Y = cursor + spacing
			cursor = to.Y + r.Height
		}
		before = append(before, WidgetState{ID: w.ID(), Position: r.Position(), Size: r.Size()})
		after = append(after, WidgetState{ID: w.ID(), Position: to, Size: r.Size()})
	}
	return before, after, len(after) > 0
}

// MakeSameSize copies the requested dimensions from the reference onto
// every other selected widget; positions are untouched. Returns false
// without a reference or with fewer than two widgets.
func (a *AlignmentService) MakeSameSize(mode SizeMode, ref widget.Widget, selected []widget.Widget) (before, after []WidgetState, ok bool) {
	if ref == nil || len(selected) < 2 {
		return nil, nil, false
	}
	refSize := ref.Rect().Size()
	for _, w := range selected {
		if w.ID() == ref.ID() {
			continue
		}
		r := w.Rect()
		to := r.Size()
		switch mode {
		case SameWidth:
			to.Width = refSize.Width
		case SameHeight:
			to.Height = refSize.Height
		case SameSize:
			to = refSize
		}
		before = append(before, WidgetState{ID: w.ID(), Position: r.Position(), Size: r.Size()})
		after = append(after, WidgetState{ID: w.ID(), Position: r.Position(), Size: to})
	}
	return before, after, len(after) > 0
}

// sortByZ returns the widgets ordered by ascending z-index, with map
// iteration nondeterminism removed by the id tie-break.
func sortByZ(ws []widget.Widget) []widget.Widget {
	sorted := append([]widget.Widget(nil), ws...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ZIndex() != sorted[j].ZIndex() {
			return sorted[i].ZIndex() < sorted[j].ZIndex()
		}
		return sorted[i].ID() < sorted[j].ID()
	})
	return sorted
}
