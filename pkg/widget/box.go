package widget

import "github.com/user/breakstudio/pkg/events"

// DefaultBoxColor is the fill assigned to boxes created without an
// explicit color.
const DefaultBoxColor = "#cccccc"

// Box is a plain colored rectangle.
type Box struct {
	Base
}

// NewBox wraps box data in a live widget.
func NewBox(data Data, bus *events.Bus) *Box {
	b := &Box{Base: newBase(data, bus)}
	if b.data.Box == nil {
		b.data.Box = &BoxProps{BackgroundColor: DefaultBoxColor}
	}
	return b
}

// SetBackgroundColor changes the box fill color (hex string).
func (b *Box) SetBackgroundColor(hex string) {
	b.data.Box.BackgroundColor = hex
}

// SetBorderRadius changes the corner rounding in pixels. Negative
// values are treated as zero.
func (b *Box) SetBorderRadius(radius float64) {
	if radius < 0 {
		radius = 0
	}
	b.data.Box.BorderRadius = radius
}

// Props returns a copy of the box style bag.
func (b *Box) Props() BoxProps { return *b.data.Box }
