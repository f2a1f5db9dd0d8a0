package widget

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
)

// Factory constructs the correct widget subtype from serialized data
// or creation parameters. Every widget it builds shares the injected
// event bus.
type Factory struct {
	bus *events.Bus
}

// NewFactory creates a factory publishing on the given bus. A nil bus
// yields silent widgets, which is what headless tests want.
func NewFactory(bus *events.Bus) *Factory {
	return &Factory{bus: bus}
}

// FromData rehydrates a widget from its serialized state. The data's
// id and z-index are preserved verbatim so ids referenced elsewhere in
// history stay valid.
func (f *Factory) FromData(data Data) (Widget, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	switch data.Type {
	case TypeBox:
		return NewBox(data, f.bus), nil
	case TypeText:
		return NewText(data, f.bus), nil
	case TypeQR:
		return NewQR(data, f.bus), nil
	case TypeImage:
		return NewImage(data, f.bus), nil
	case TypeGroup:
		return NewGroup(data, f.bus), nil
	default:
		return nil, fmt.Errorf("unknown widget type %q", data.Type)
	}
}

// Create builds a brand-new widget of the given type with a fresh id.
// The zero z-index is a placeholder; the designer assigns the real one
// when the widget enters the map.
func (f *Factory) Create(t Type, position geometry.Point, size geometry.Size) (Widget, error) {
	data := Data{
		ID:       uuid.NewString(),
		Type:     t,
		Position: position,
		Size:     size.Clamped(),
	}
	if t == TypeGroup {
		// A frame starts empty; the caller attaches children.
		data.Group = &GroupProps{}
	}
	return f.FromData(data)
}

// Duplicate builds a copy of the given data under a fresh id, offset
// by the paste displacement. Group child references are carried over
// verbatim; remapping them is the caller's concern.
func (f *Factory) Duplicate(data Data, offset geometry.Point) (Widget, error) {
	clone := data.Clone()
	clone.ID = uuid.NewString()
	clone.Position = clone.Position.Add(offset.X, offset.Y)
	return f.FromData(clone)
}
