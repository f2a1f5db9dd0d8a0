package designer

import (
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/widget"
)

// MoveClickThreshold is the net displacement in canvas pixels below
// which a pointer-down/up on a widget counts as a click rather than a
// committed move. The same pointer-down handler serves both gestures.
const MoveClickThreshold = 3.0

// DragController runs the Idle -> {Move, Resize, Select} -> Idle
// gesture state machine. Each gesture snapshots its original geometry
// at pointer-down and recomputes original + (current - start) on every
// pointer-move, so rounding never accumulates across frames.
type DragController struct {
	d *Designer

	kind     geometry.DragKind
	start    geometry.Point
	additive bool

	// Move gesture: original positions of every affected widget,
	// including group children dragged with their frame.
	moveOrigins []WidgetMove

	// Resize gesture: exactly one widget per drag.
	resizeID   string
	handle     geometry.Handle
	resizeOrig geometry.Rect
}

// NewDragController creates a controller bound to the designer.
func NewDragController(d *Designer) *DragController {
	return &DragController{d: d}
}

// Kind returns the active gesture, or DragNone while idle.
func (c *DragController) Kind() geometry.DragKind { return c.kind }

// PointerDown is the sole gesture entry point. Only one drag may be
// active at a time; a stray second press while in-flight is ignored.
func (c *DragController) PointerDown(p geometry.Point, additive bool) {
	if c.kind != geometry.DragNone {
		return
	}
	c.start = p
	c.additive = additive

	// Corner handles take priority over widget bodies; they only
	// exist on selected widgets.
	if w, h := c.d.handleAt(p); h != geometry.HandleNone {
		c.kind = geometry.DragResize
		c.resizeID = w.ID()
		c.handle = h
		c.resizeOrig = w.Rect()
		return
	}

	if w, ok := c.d.topWidgetAt(p); ok {
		c.beginMove(w, additive)
		return
	}

	// Empty canvas: rubber-band selection.
	c.kind = geometry.DragSelect
	c.d.selection.StartSelectionBox(p)
}

func (c *DragController) beginMove(w widget.Widget, additive bool) {
	sel := c.d.selection
	switch {
	case additive && sel.IsSelected(w.ID()):
		// Modifier click on a selected widget sets the alignment
		// anchor without changing the selection set.
		sel.PromoteReference(w.ID())
	case additive:
		sel.Select(w.ID(), true)
	case !sel.IsSelected(w.ID()):
		sel.Select(w.ID(), false)
	}
	// Already-selected without modifier: selection is preserved so a
	// multi-selection can be dragged.

	c.kind = geometry.DragMove
	affected := c.d.expandWithChildren(sel.Selected())
	c.moveOrigins = c.moveOrigins[:0]
	for _, id := range affected {
		if aw, ok := c.d.widget(id); ok {
			c.moveOrigins = append(c.moveOrigins, WidgetMove{ID: id, From: aw.Rect().Position()})
		}
	}

	// The dragged set renders above everything for the duration of
	// the gesture. Applied directly, not through history.
	c.d.applyZOrderChanges(c.d.zorder.BringToFront(c.d.resolve(affected), c.d.allWidgets()))
}

// PointerMove advances the active gesture. Geometry is always derived
// from the drag-start snapshot, never chained frame to frame.
func (c *DragController) PointerMove(p geometry.Point) {
	dx, dy := p.Sub(c.start)
	switch c.kind {
	case geometry.DragMove:
		for _, m := range c.moveOrigins {
			if w, ok := c.d.widget(m.ID); ok {
				w.SetPosition(m.From.Add(dx, dy))
			}
		}
	case geometry.DragResize:
		if w, ok := c.d.widget(c.resizeID); ok {
			r := resizeRect(c.resizeOrig, c.handle, dx, dy)
			w.SetPosition(r.Position())
			w.SetSize(r.Size())
		}
	case geometry.DragSelect:
		c.d.selection.UpdateSelectionBox(p)
	}
}

// PointerUp terminates the gesture: move and resize commit through the
// command manager (move only past the click threshold), marquee
// selection applies the intersection or falls back to a background
// click.
func (c *DragController) PointerUp(p geometry.Point) {
	kind := c.kind
	c.kind = geometry.DragNone

	switch kind {
	case geometry.DragMove:
		c.finishMove(p)
	case geometry.DragResize:
		c.finishResize()
	case geometry.DragSelect:
		c.finishSelect(p)
	}
}

func (c *DragController) finishMove(p geometry.Point) {
	if c.start.DistanceTo(p) <= MoveClickThreshold {
		// A click, not a drag: roll back the sub-threshold nudge so
		// no spurious history entry or displacement survives.
		for _, m := range c.moveOrigins {
			if w, ok := c.d.widget(m.ID); ok {
				w.SetPosition(m.From)
			}
		}
		return
	}
	moves := make([]WidgetMove, 0, len(c.moveOrigins))
	for _, m := range c.moveOrigins {
		if w, ok := c.d.widget(m.ID); ok {
			moves = append(moves, WidgetMove{ID: m.ID, From: m.From, To: w.Rect().Position()})
		}
	}
	if len(moves) > 0 {
		c.d.history.Execute(newMoveCommand(c.d, moves))
	}
}

func (c *DragController) finishResize() {
	w, ok := c.d.widget(c.resizeID)
	if !ok {
		return
	}
	newRect := w.Rect()
	if newRect == c.resizeOrig {
		return
	}
	c.d.history.Execute(newResizeCommand(c.d, c.resizeID, c.resizeOrig, newRect))
}

func (c *DragController) finishSelect(p geometry.Point) {
	rect := c.d.selection.EndSelectionBox()
	if c.start.DistanceTo(p) <= MarqueeClickThreshold {
		c.d.selection.Clear()
		return
	}
	c.d.selection.SelectIntersecting(rect, c.d.allWidgets(), c.additive)
}

// resizeRect applies a handle-specific delta to the original rectangle
// and clamps to the widget floor. Corners that move the origin keep
// the opposite edge fixed while clamping, so the rectangle never
// drifts; the SE handle never moves the origin at all.
func resizeRect(orig geometry.Rect, h geometry.Handle, dx, dy float64) geometry.Rect {
	r := orig
	switch h {
	case geometry.HandleNW:
		r.X = orig.X + dx
		r.Y = orig.Y + dy
		r.Width = orig.Width - dx
		r.Height = orig.Height - dy
	case geometry.HandleNE:
		r.Y = orig.Y + dy
		r.Width = orig.Width + dx
		r.Height = orig.Height - dy
	case geometry.HandleSW:
		r.X = orig.X + dx
		r.Width = orig.Width - dx
		r.Height = orig.Height + dy
	case geometry.HandleSE:
		r.Width = orig.Width + dx
		r.Height = orig.Height + dy
	}

	if r.Width < geometry.MinWidgetWidth {
		if h == geometry.HandleNW || h == geometry.HandleSW {
			r.X = orig.Right() - geometry.MinWidgetWidth
		}
		r.Width = geometry.MinWidgetWidth
	}
	if r.Height < geometry.MinWidgetHeight {
		if h == geometry.HandleNW || h == geometry.HandleNE {
			r.Y = orig.Bottom() - geometry.MinWidgetHeight
		}
		r.Height = geometry.MinWidgetHeight
	}
	return r
}
