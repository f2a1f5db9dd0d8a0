package designer

import (
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/widget"
)

// WidgetMove records one widget's position before and after a move.
type WidgetMove struct {
	ID   string
	From geometry.Point
	To   geometry.Point
}

// WidgetState records one widget's full geometry for computed
// operations (align, distribute, same-size).
type WidgetState struct {
	ID       string
	Position geometry.Point
	Size     geometry.Size
}

// ZOrderChange records one widget's z-index before and after an order
// operation.
type ZOrderChange struct {
	ID   string
	From int
	To   int
}

// createWidgetsCommand inserts widgets from full data snapshots. The
// snapshots keep their ids across execute/undo/redo so later history
// entries referencing them stay valid.
type createWidgetsCommand struct {
	d         *Designer
	snapshots []widget.Data
	desc      string
}

func newCreateCommand(d *Designer, snapshots []widget.Data, desc string) *createWidgetsCommand {
	clones := make([]widget.Data, len(snapshots))
	for i, s := range snapshots {
		clones[i] = s.Clone()
	}
	return &createWidgetsCommand{d: d, snapshots: clones, desc: desc}
}

func (c *createWidgetsCommand) Execute() {
	for _, s := range c.snapshots {
		c.d.insertData(s)
	}
}

func (c *createWidgetsCommand) Undo() {
	for _, s := range c.snapshots {
		c.d.removeByID(s.ID)
	}
}

func (c *createWidgetsCommand) Description() string { return c.desc }

// deleteWidgetsCommand removes widgets, restoring them from snapshots
// (original id and z-index included) on undo.
type deleteWidgetsCommand struct {
	d         *Designer
	snapshots []widget.Data
}

func newDeleteCommand(d *Designer, snapshots []widget.Data) *deleteWidgetsCommand {
	clones := make([]widget.Data, len(snapshots))
	for i, s := range snapshots {
		clones[i] = s.Clone()
	}
	return &deleteWidgetsCommand{d: d, snapshots: clones}
}

func (c *deleteWidgetsCommand) Execute() {
	for _, s := range c.snapshots {
		c.d.removeByID(s.ID)
	}
}

func (c *deleteWidgetsCommand) Undo() {
	for _, s := range c.snapshots {
		c.d.insertData(s)
	}
}

func (c *deleteWidgetsCommand) Description() string { return "Delete widgets" }

// moveWidgetsCommand repositions one or more widgets atomically.
// Group drags move many widgets as a single history entry.
type moveWidgetsCommand struct {
	d     *Designer
	moves []WidgetMove
}

func newMoveCommand(d *Designer, moves []WidgetMove) *moveWidgetsCommand {
	return &moveWidgetsCommand{d: d, moves: append([]WidgetMove(nil), moves...)}
}

func (c *moveWidgetsCommand) Execute() {
	for _, m := range c.moves {
		if w, ok := c.d.widget(m.ID); ok {
			w.SetPosition(m.To)
		}
	}
}

func (c *moveWidgetsCommand) Undo() {
	for _, m := range c.moves {
		if w, ok := c.d.widget(m.ID); ok {
			w.SetPosition(m.From)
		}
	}
}

func (c *moveWidgetsCommand) Description() string { return "Move widgets" }

// resizeWidgetCommand records the before/after geometry of exactly one
// widget; multi-widget resize only exists as the same-size command.
type resizeWidgetCommand struct {
	d       *Designer
	id      string
	oldRect geometry.Rect
	newRect geometry.Rect
}

func newResizeCommand(d *Designer, id string, oldRect, newRect geometry.Rect) *resizeWidgetCommand {
	return &resizeWidgetCommand{d: d, id: id, oldRect: oldRect, newRect: newRect}
}

func (c *resizeWidgetCommand) Execute() { c.apply(c.newRect) }
func (c *resizeWidgetCommand) Undo()    { c.apply(c.oldRect) }

func (c *resizeWidgetCommand) apply(r geometry.Rect) {
	if w, ok := c.d.widget(c.id); ok {
		w.SetPosition(r.Position())
		w.SetSize(r.Size())
	}
}

func (c *resizeWidgetCommand) Description() string { return "Resize widget" }

// transformWidgetsCommand captures full before/after geometry arrays
// once at construction time. Align, distribute and make-same-size all
// reduce to this shape with different descriptions.
type transformWidgetsCommand struct {
	d      *Designer
	before []WidgetState
	after  []WidgetState
	desc   string
}

func newTransformCommand(d *Designer, before, after []WidgetState, desc string) *transformWidgetsCommand {
	return &transformWidgetsCommand{
		d:      d,
		before: append([]WidgetState(nil), before...),
		after:  append([]WidgetState(nil), after...),
		desc:   desc,
	}
}

func (c *transformWidgetsCommand) Execute() { c.apply(c.after) }
func (c *transformWidgetsCommand) Undo()    { c.apply(c.before) }

func (c *transformWidgetsCommand) apply(states []WidgetState) {
	for _, st := range states {
		if w, ok := c.d.widget(st.ID); ok {
			w.SetPosition(st.Position)
			w.SetSize(st.Size)
		}
	}
}

func (c *transformWidgetsCommand) Description() string { return c.desc }

// changeZOrderCommand reassigns z-indices.
type changeZOrderCommand struct {
	d       *Designer
	changes []ZOrderChange
	desc    string
}

func newZOrderCommand(d *Designer, changes []ZOrderChange, desc string) *changeZOrderCommand {
	return &changeZOrderCommand{d: d, changes: append([]ZOrderChange(nil), changes...), desc: desc}
}

func (c *changeZOrderCommand) Execute() {
	for _, ch := range c.changes {
		if w, ok := c.d.widget(ch.ID); ok {
			w.SetZIndex(ch.To)
		}
	}
}

func (c *changeZOrderCommand) Undo() {
	for _, ch := range c.changes {
		if w, ok := c.d.widget(ch.ID); ok {
			w.SetZIndex(ch.From)
		}
	}
}

func (c *changeZOrderCommand) Description() string { return c.desc }
