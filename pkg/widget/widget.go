package widget

import (
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
)

// HandleSize is the edge length in canvas pixels of a corner resize
// handle's hit area.
const HandleSize = 8.0

// Widget is the live form of one design element. Implementations keep
// their Data and any frontend representation synchronized and publish
// change events on the injected bus.
type Widget interface {
	ID() string
	Type() Type

	// Data returns a deep copy of the widget's canonical state.
	Data() Data

	// ApplyData restores a snapshot, clamping geometry. Used by undo.
	ApplyData(Data)

	// Rect returns the authoritative data rectangle, never a measured
	// one, so drag math stays deterministic.
	Rect() geometry.Rect
	ZIndex() int

	SetPosition(geometry.Point)
	SetSize(geometry.Size)
	SetZIndex(int)
	SetContent(string)

	SetSelected(bool)
	Selected() bool
	SetReference(bool)
	Reference() bool
	SetPreviewMode(bool)
	PreviewMode() bool

	ContainsPoint(geometry.Point) bool
	HandleAt(geometry.Point) geometry.Handle

	// Destroy releases the widget: detaches it from the event bus and
	// clears transient state. Every subtype must preserve this
	// cleanup contract.
	Destroy()
}

// Base carries the state and behavior shared by all widget subtypes.
// Subtypes embed it and override only type-specific pieces.
type Base struct {
	data      Data
	bus       *events.Bus
	selected  bool
	reference bool
	preview   bool
	destroyed bool
}

func newBase(data Data, bus *events.Bus) Base {
	data.Size = data.Size.Clamped()
	return Base{data: data, bus: bus}
}

// ID returns the widget's immutable id.
func (b *Base) ID() string { return b.data.ID }

// Type returns the widget's immutable type.
func (b *Base) Type() Type { return b.data.Type }

// Data returns a deep copy of the widget state.
func (b *Base) Data() Data { return b.data.Clone() }

// ApplyData restores a snapshot. The id and type of the snapshot win;
// callers are expected to restore snapshots onto the widget they came
// from.
func (b *Base) ApplyData(d Data) {
	d.Size = d.Size.Clamped()
	b.data = d.Clone()
	b.publish(events.WidgetMoved{ID: b.data.ID, Position: b.data.Position})
	b.publish(events.WidgetResized{ID: b.data.ID, Size: b.data.Size})
}

// Rect returns the authoritative rectangle from data.
func (b *Base) Rect() geometry.Rect { return b.data.Rect() }

// ZIndex returns the widget's paint order value.
func (b *Base) ZIndex() int { return b.data.ZIndex }

// SetPosition moves the widget and publishes the position update.
func (b *Base) SetPosition(p geometry.Point) {
	if b.data.Position == p {
		return
	}
	b.data.Position = p
	b.publish(events.WidgetMoved{ID: b.data.ID, Position: p})
}

// SetSize resizes the widget, enforcing the 10x10 floor before the
// size event fires.
func (b *Base) SetSize(s geometry.Size) {
	s = s.Clamped()
	if b.data.Size == s {
		return
	}
	b.data.Size = s
	b.publish(events.WidgetResized{ID: b.data.ID, Size: s})
}

// SetZIndex assigns the paint order value.
func (b *Base) SetZIndex(z int) { b.data.ZIndex = z }

// SetContent replaces the raw HTML content of legacy widgets.
func (b *Base) SetContent(c string) { b.data.Content = c }

// SetSelected toggles the selected state. Deselecting always clears
// the reference flag; a widget outside the selection can never be the
// reference.
func (b *Base) SetSelected(sel bool) {
	b.selected = sel
	if !sel {
		b.reference = false
	}
}

// Selected reports whether the widget is in the current selection.
func (b *Base) Selected() bool { return b.selected }

// SetReference toggles the reference flag. It is purely a state layer
// over selection and does not change selection membership.
func (b *Base) SetReference(ref bool) { b.reference = ref }

// Reference reports whether the widget is the alignment anchor.
func (b *Base) Reference() bool { return b.reference }

// SetPreviewMode strips or restores editing chrome. The flag itself is
// all the headless core tracks; renderers compensate spacing so
// content does not shift when chrome disappears.
func (b *Base) SetPreviewMode(preview bool) { b.preview = preview }

// PreviewMode reports whether editing chrome is hidden.
func (b *Base) PreviewMode() bool { return b.preview }

// ContainsPoint hit-tests against the data rectangle.
func (b *Base) ContainsPoint(p geometry.Point) bool {
	return b.data.Rect().Contains(p)
}

// HandleAt returns which corner resize handle covers the point, or
// HandleNone. Handles only exist while the widget is selected.
func (b *Base) HandleAt(p geometry.Point) geometry.Handle {
	if !b.selected {
		return geometry.HandleNone
	}
	r := b.data.Rect()
	corners := []struct {
		h geometry.Handle
		c geometry.Point
	}{
		{geometry.HandleNW, geometry.Point{X: r.X, Y: r.Y}},
		{geometry.HandleNE, geometry.Point{X: r.Right(), Y: r.Y}},
		{geometry.HandleSW, geometry.Point{X: r.X, Y: r.Bottom()}},
		{geometry.HandleSE, geometry.Point{X: r.Right(), Y: r.Bottom()}},
	}
	for _, corner := range corners {
		hit := geometry.Rect{
			X:      corner.c.X - HandleSize/2,
			Y:      corner.c.Y - HandleSize/2,
			Width:  HandleSize,
			Height: HandleSize,
		}
		if hit.Contains(p) {
			return corner.h
		}
	}
	return geometry.HandleNone
}

// Destroy detaches the widget from the bus and clears transient flags.
func (b *Base) Destroy() {
	b.selected = false
	b.reference = false
	b.bus = nil
	b.destroyed = true
}

// Destroyed reports whether Destroy has run, for tests verifying the
// cleanup contract.
func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) publish(e events.Event) {
	b.bus.Publish(e)
}
