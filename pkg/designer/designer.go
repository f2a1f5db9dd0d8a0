// Package designer implements the break-screen layout engine: the
// widget map, selection and reference-widget protocol, command-based
// undo/redo, drag/resize/marquee gestures, alignment, distribution and
// z-order. The package is headless; frontends drive it with pointer
// and key events and observe it through the event bus.
package designer

import (
	"sort"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/ports"
	"github.com/user/breakstudio/pkg/widget"
)

// PasteOffset is the displacement applied to pasted widgets so they
// do not land exactly on their sources.
var PasteOffset = geometry.Point{X: 20, Y: 20}

// Designer owns the id->widget map and composes the services that
// operate on it. All collaborators arrive by injection; the designer
// holds no global state.
type Designer struct {
	log ports.Logger
	bus *events.Bus

	factory   *widget.Factory
	widgets   map[string]widget.Widget
	selection *SelectionManager
	history   *CommandManager
	align     *AlignmentService
	zorder    *ZOrderService
	drag      *DragController
	clipboard *Clipboard

	preview bool
}

// New creates an empty designer. The bus and logger must not be nil;
// pass events.NewBus() and a noop logger for headless use.
func New(bus *events.Bus, log ports.Logger) *Designer {
	d := &Designer{
		log:     log.WithComponent("designer"),
		bus:     bus,
		factory: widget.NewFactory(bus),
		widgets: make(map[string]widget.Widget),
		align:   NewAlignmentService(),
		zorder:  NewZOrderService(),
	}
	d.selection = NewSelectionManager(d.widget, bus)
	d.history = NewCommandManager(bus)
	d.drag = NewDragController(d)
	d.clipboard = NewClipboard()
	return d
}

// Bus returns the designer's event bus for subscribers.
func (d *Designer) Bus() *events.Bus { return d.bus }

// Selection exposes the selection manager to frontends.
func (d *Designer) Selection() *SelectionManager { return d.selection }

// History exposes the command manager to frontends.
func (d *Designer) History() *CommandManager { return d.history }

// Clipboard exposes the in-memory clipboard.
func (d *Designer) Clipboard() *Clipboard { return d.clipboard }

// ============================================================
// Widget map
// ============================================================

// AddWidget creates a new widget of the given type as an undoable
// action and returns its id.
func (d *Designer) AddWidget(t widget.Type, pos geometry.Point, size geometry.Size) (string, error) {
	w, err := d.factory.Create(t, pos, size)
	if err != nil {
		return "", err
	}
	data := w.Data()
	data.ZIndex = d.zorder.Take()
	d.history.Execute(newCreateCommand(d, []widget.Data{data}, "Create "+string(t)+" widget"))
	return data.ID, nil
}

// AddWidgetWithID rehydrates a widget from persisted data, preserving
// its id and z-index. Not undoable: rehydration is not a user edit.
// Duplicate ids are logged and skipped; the existing widget wins.
func (d *Designer) AddWidgetWithID(data widget.Data) error {
	if _, exists := d.widgets[data.ID]; exists {
		d.log.Warn("Skipping duplicate widget id %s", data.ID)
		return nil
	}
	w, err := d.factory.FromData(data)
	if err != nil {
		return err
	}
	d.widgets[data.ID] = w
	d.zorder.Observe(data.ZIndex)
	w.SetPreviewMode(d.preview)
	d.bus.Publish(events.WidgetAdded{ID: data.ID})
	return nil
}

// Widget returns the live widget for an id.
func (d *Designer) Widget(id string) (widget.Widget, bool) {
	return d.widget(id)
}

// WidgetsByZ returns all widgets in ascending paint order.
func (d *Designer) WidgetsByZ() []widget.Widget {
	return sortByZ(d.allWidgets())
}

// Count returns the number of widgets in the design.
func (d *Designer) Count() int { return len(d.widgets) }

// Snapshot serializes the widget map ordered by id, the shape the
// persistence collaborator expects.
func (d *Designer) Snapshot() []widget.Data {
	ids := make([]string, 0, len(d.widgets))
	for id := range d.widgets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]widget.Data, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.widgets[id].Data())
	}
	return out
}

// LoadDesign clears the current session and rehydrates the design's
// widgets. History does not survive a reload.
func (d *Designer) LoadDesign(doc design.Design) {
	d.Clear()
	for _, data := range doc.Widgets {
		if err := d.AddWidgetWithID(data); err != nil {
			d.log.Warn("Dropping invalid widget %s: %v", data.ID, err)
		}
	}
}

// Clear destroys every widget and resets selection, history and the
// z-order counter.
func (d *Designer) Clear() {
	for id, w := range d.widgets {
		w.Destroy()
		delete(d.widgets, id)
		d.bus.Publish(events.WidgetRemoved{ID: id})
	}
	d.selection.Clear()
	d.history.Reset()
	d.zorder.Reset()
}

// DeleteSelection removes every selected widget as one undoable
// action.
func (d *Designer) DeleteSelection() {
	snapshots := d.selectedData()
	if len(snapshots) == 0 {
		return
	}
	d.history.Execute(newDeleteCommand(d, snapshots))
}

// ============================================================
// Pointer and gesture surface
// ============================================================

// PointerDown begins a gesture at p; additive marks the platform
// multi-select modifier.
func (d *Designer) PointerDown(p geometry.Point, additive bool) {
	d.drag.PointerDown(p, additive)
}

// PointerMove advances the active gesture.
func (d *Designer) PointerMove(p geometry.Point) {
	d.drag.PointerMove(p)
}

// PointerUp ends the active gesture, committing through history where
// the gesture calls for it.
func (d *Designer) PointerUp(p geometry.Point) {
	d.drag.PointerUp(p)
}

// DragKind reports the gesture in flight, for frontends that render
// drag affordances.
func (d *Designer) DragKind() geometry.DragKind { return d.drag.Kind() }

// DoubleClick re-triggers the external change-image flow when the
// point hits an image or QR widget.
func (d *Designer) DoubleClick(p geometry.Point) {
	w, ok := d.topWidgetAt(p)
	if !ok {
		return
	}
	switch t := w.(type) {
	case *widget.Image:
		t.RequestImageChange()
	case *widget.QR:
		t.RequestImageChange()
	}
}

// ============================================================
// Undo / redo
// ============================================================

// Undo reverses the most recent committed action.
func (d *Designer) Undo() { d.history.Undo() }

// Redo re-applies the most recently undone action.
func (d *Designer) Redo() { d.history.Redo() }

// ============================================================
// Alignment, distribution, sizing
// ============================================================

// AlignSelection aligns the selected widgets against the reference.
// Without a reference or with fewer than two selected widgets it is a
// silent no-op; callers keep the action disabled via UIState.
func (d *Designer) AlignSelection(mode AlignMode) {
	ref, ok := d.selection.Reference()
	if !ok {
		return
	}
	before, after, ok := d.align.Align(mode, ref, d.selectedWidgets())
	if !ok {
		return
	}
	d.history.Execute(newTransformCommand(d, before, after, "Align "+mode.String()))
}

// DistributeSelection distributes the selected widgets with equal gaps
// along the axis. Requires at least three selected widgets.
func (d *Designer) DistributeSelection(axis Axis) {
	before, after, ok := d.align.Distribute(axis, d.selectedWidgets())
	if !ok {
		return
	}
	desc := "Distribute horizontally"
	if axis == AxisVertical {
		desc = "Distribute vertically"
	}
	d.history.Execute(newTransformCommand(d, before, after, desc))
}

// MakeSameSize copies dimensions from the reference onto the rest of
// the selection.
func (d *Designer) MakeSameSize(mode SizeMode) {
	ref, ok := d.selection.Reference()
	if !ok {
		return
	}
	before, after, ok := d.align.MakeSameSize(mode, ref, d.selectedWidgets())
	if !ok {
		return
	}
	d.history.Execute(newTransformCommand(d, before, after, "Make same size"))
}

// ============================================================
// Z-order
// ============================================================

// BringSelectionToFront raises the selection above everything else,
// preserving its internal order, as an undoable action.
func (d *Designer) BringSelectionToFront() {
	changes := d.zorder.BringToFront(d.selectedWidgets(), d.allWidgets())
	if len(changes) == 0 {
		return
	}
	d.history.Execute(newZOrderCommand(d, changes, "Bring to front"))
}

// SendSelectionToBack lowers the selection below everything else,
// preserving its internal order, as an undoable action.
func (d *Designer) SendSelectionToBack() {
	changes := d.zorder.SendToBack(d.selectedWidgets(), d.allWidgets())
	if len(changes) == 0 {
		return
	}
	d.history.Execute(newZOrderCommand(d, changes, "Send to back"))
}

// ============================================================
// Grouping
// ============================================================

// GroupSelection wraps the selected widgets in a new group frame: the
// padded union of their bounding boxes at this moment. The frame is
// static; it does not re-fit afterwards.
func (d *Designer) GroupSelection() (string, error) {
	selected := d.selectedWidgets()
	if len(selected) < 2 {
		return "", nil
	}
	rects := make([]geometry.Rect, len(selected))
	ids := make([]string, len(selected))
	for i, w := range selected {
		rects[i] = w.Rect()
		ids[i] = w.ID()
	}
	frame, _ := widget.GroupFrame(rects)

	w, err := d.factory.Create(widget.TypeGroup, frame.Position(), frame.Size())
	if err != nil {
		return "", err
	}
	data := w.Data()
	data.Group = &widget.GroupProps{ChildIDs: ids}
	data.ZIndex = d.zorder.Take()
	d.history.Execute(newCreateCommand(d, []widget.Data{data}, "Group widgets"))
	d.selection.Select(data.ID, false)
	return data.ID, nil
}

// UngroupSelection deletes the selected group frames, leaving their
// children in place.
func (d *Designer) UngroupSelection() {
	var snapshots []widget.Data
	for _, w := range d.selectedWidgets() {
		if w.Type() == widget.TypeGroup {
			snapshots = append(snapshots, w.Data())
		}
	}
	if len(snapshots) == 0 {
		return
	}
	d.history.Execute(newDeleteCommand(d, snapshots))
}

// ============================================================
// Clipboard
// ============================================================

// CopySelection buffers snapshots of the selected widgets. History is
// untouched.
func (d *Designer) CopySelection() {
	items := d.selectedData()
	if len(items) == 0 {
		return
	}
	d.clipboard.Put(items)
}

// CutSelection is copy plus an undoable delete.
func (d *Designer) CutSelection() {
	d.CopySelection()
	d.DeleteSelection()
}

// Paste creates fresh-id copies of the buffered snapshots at the paste
// offset as one undoable action, and selects them.
func (d *Designer) Paste() {
	items := d.clipboard.Items()
	if len(items) == 0 {
		return
	}
	snapshots := make([]widget.Data, 0, len(items))
	for _, item := range items {
		w, err := d.factory.Duplicate(item, PasteOffset)
		if err != nil {
			d.log.Warn("Skipping unpastable widget %s: %v", item.ID, err)
			continue
		}
		data := w.Data()
		data.ZIndex = d.zorder.Take()
		snapshots = append(snapshots, data)
	}
	if len(snapshots) == 0 {
		return
	}
	d.history.Execute(newCreateCommand(d, snapshots, "Paste widgets"))
	d.selection.Clear()
	for _, s := range snapshots {
		d.selection.Select(s.ID, true)
	}
}

// SelectAll selects every widget in paint order.
func (d *Designer) SelectAll() {
	d.selection.Clear()
	for _, w := range d.WidgetsByZ() {
		d.selection.Select(w.ID(), true)
	}
}

// ============================================================
// Preview mode
// ============================================================

// SetPreviewMode strips or restores editing chrome across the design.
func (d *Designer) SetPreviewMode(preview bool) {
	if d.preview == preview {
		return
	}
	d.preview = preview
	for _, w := range d.widgets {
		w.SetPreviewMode(preview)
	}
	d.bus.Publish(events.PreviewModeChanged{Preview: preview})
}

// PreviewMode reports whether editing chrome is hidden.
func (d *Designer) PreviewMode() bool { return d.preview }

// ============================================================
// UI affordances
// ============================================================

// UIState captures button enablement after a mutation. Frontends
// refresh it on every SelectionChanged/HistoryChanged event.
type UIState struct {
	CanUndo       bool
	CanRedo       bool
	CanDelete     bool
	CanCopy       bool
	CanPaste      bool
	CanAlign      bool
	CanDistribute bool
	CanSameSize   bool
	CanGroup      bool
	CanZOrder     bool
}

// UIState derives the current affordances from selection, reference
// and history state.
func (d *Designer) UIState() UIState {
	n := d.selection.Count()
	_, hasRef := d.selection.Reference()
	return UIState{
		CanUndo:       d.history.CanUndo(),
		CanRedo:       d.history.CanRedo(),
		CanDelete:     n > 0,
		CanCopy:       n > 0,
		CanPaste:      !d.clipboard.IsEmpty(),
		CanAlign:      n >= 2 && hasRef,
		CanDistribute: n >= 3,
		CanSameSize:   n >= 2 && hasRef,
		CanGroup:      n >= 2,
		CanZOrder:     n > 0,
	}
}

// ============================================================
// Internals shared with the command and drag layers
// ============================================================

func (d *Designer) widget(id string) (widget.Widget, bool) {
	w, ok := d.widgets[id]
	return w, ok
}

func (d *Designer) allWidgets() []widget.Widget {
	out := make([]widget.Widget, 0, len(d.widgets))
	for _, w := range d.widgets {
		out = append(out, w)
	}
	return out
}

func (d *Designer) selectedWidgets() []widget.Widget {
	return d.resolve(d.selection.Selected())
}

func (d *Designer) selectedData() []widget.Data {
	ws := d.selectedWidgets()
	out := make([]widget.Data, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Data())
	}
	return out
}

func (d *Designer) resolve(ids []string) []widget.Widget {
	out := make([]widget.Widget, 0, len(ids))
	for _, id := range ids {
		if w, ok := d.widgets[id]; ok {
			out = append(out, w)
		}
	}
	return out
}

// insertData rehydrates a widget preserving id and z-index; the
// command layer uses it for create/undo-delete.
func (d *Designer) insertData(data widget.Data) {
	w, err := d.factory.FromData(data)
	if err != nil {
		d.log.Error("Cannot restore widget %s: %v", data.ID, err)
		return
	}
	d.widgets[data.ID] = w
	d.zorder.Observe(data.ZIndex)
	w.SetPreviewMode(d.preview)
	d.bus.Publish(events.WidgetAdded{ID: data.ID})
}

// removeByID destroys a widget and drops every weak reference to it.
func (d *Designer) removeByID(id string) {
	w, ok := d.widgets[id]
	if !ok {
		return
	}
	d.selection.Drop(id)
	w.Destroy()
	delete(d.widgets, id)
	d.bus.Publish(events.WidgetRemoved{ID: id})
}

// topWidgetAt returns the widget with the highest z-index containing
// the point.
func (d *Designer) topWidgetAt(p geometry.Point) (widget.Widget, bool) {
	var best widget.Widget
	for _, w := range sortByZ(d.allWidgets()) {
		if w.ContainsPoint(p) {
			best = w
		}
	}
	return best, best != nil
}

// handleAt finds a corner resize handle under the point among selected
// widgets, front-most first.
func (d *Designer) handleAt(p geometry.Point) (widget.Widget, geometry.Handle) {
	sorted := sortByZ(d.allWidgets())
	for i := len(sorted) - 1; i >= 0; i-- {
		w := sorted[i]
		if h := w.HandleAt(p); h != geometry.HandleNone {
			return w, h
		}
	}
	return nil, geometry.HandleNone
}

// expandWithChildren returns ids plus the children of any group among
// them, recursively, deduplicated. Dangling child ids are tolerated.
func (d *Designer) expandWithChildren(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	var walk func(id string)
	walk = func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		w, ok := d.widgets[id]
		if !ok {
			return
		}
		out = append(out, id)
		if g, isGroup := w.(*widget.Group); isGroup {
			for _, child := range g.ChildIDs() {
				walk(child)
			}
		}
	}
	for _, id := range ids {
		walk(id)
	}
	return out
}

// applyZOrderChanges applies order changes directly, outside history.
// The drag controller uses it for the bring-forward-while-dragging
// behavior.
func (d *Designer) applyZOrderChanges(changes []ZOrderChange) {
	for _, ch := range changes {
		if w, ok := d.widgets[ch.ID]; ok {
			w.SetZIndex(ch.To)
		}
	}
}
