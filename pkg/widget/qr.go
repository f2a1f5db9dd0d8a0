package widget

import (
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
)

// QR displays a QR code. QR widgets are always square: whichever
// dimension a resize changes drives the other one.
type QR struct {
	Base
	loadFailed bool
}

// NewQR wraps QR data in a live widget, squaring its initial size.
func NewQR(data Data, bus *events.Bus) *QR {
	q := &QR{Base: newBase(data, bus)}
	if q.data.Image == nil {
		q.data.Image = &ImageProps{}
	}
	q.data.Size = squared(q.data.Size)
	return q
}

// SetSize resizes the QR widget, keeping it square. The dimension that
// changed relative to the current size wins; a uniform request uses
// the width.
func (q *QR) SetSize(s geometry.Size) {
	s = s.Clamped()
	side := s.Width
	if s.Width == q.data.Size.Width && s.Height != q.data.Size.Height {
		side = s.Height
	}
	next := geometry.Size{Width: side, Height: side}
	if q.data.Size == next {
		return
	}
	q.data.Size = next
	q.publish(events.WidgetResized{ID: q.data.ID, Size: next})
	q.publish(events.QRWidgetResized{ID: q.data.ID, Side: side})
}

// ApplyData restores a snapshot, re-squaring the stored size.
func (q *QR) ApplyData(d Data) {
	d.Size = squared(d.Size.Clamped())
	q.Base.ApplyData(d)
}

// SetImage updates the encoded image reference.
func (q *QR) SetImage(url, name string) {
	q.data.Image.ImageURL = url
	q.data.Image.ImageName = name
	q.loadFailed = false
}

// MarkLoadFailed records that the QR image could not be loaded. The
// widget stays interactive and renders a placeholder.
func (q *QR) MarkLoadFailed() { q.loadFailed = true }

// LoadFailed reports whether the widget is in the error-placeholder
// state.
func (q *QR) LoadFailed() bool { return q.loadFailed }

// RequestImageChange re-triggers the external change-image flow.
func (q *QR) RequestImageChange() {
	q.publish(events.ImageChangeRequested{ID: q.data.ID, CurrentURL: q.data.Image.ImageURL})
}

// Props returns a copy of the image reference bag.
func (q *QR) Props() ImageProps { return *q.data.Image }

func squared(s geometry.Size) geometry.Size {
	s = s.Clamped()
	return geometry.Size{Width: s.Width, Height: s.Width}
}
