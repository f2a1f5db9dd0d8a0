package widget

import "github.com/user/breakstudio/pkg/events"

// Image displays an externally hosted picture. The widget carries only
// the URL/name reference; bytes, thumbnails and storage belong to the
// upload collaborator.
type Image struct {
	Base
	loadFailed bool
}

// NewImage wraps image data in a live widget.
func NewImage(data Data, bus *events.Bus) *Image {
	i := &Image{Base: newBase(data, bus)}
	if i.data.Image == nil {
		i.data.Image = &ImageProps{}
	}
	return i
}

// SetImage updates the image reference and clears any error state.
func (i *Image) SetImage(url, name string) {
	i.data.Image.ImageURL = url
	i.data.Image.ImageName = name
	i.loadFailed = false
}

// MarkLoadFailed records a load failure. The widget shows an error
// placeholder but remains interactive so the user can re-trigger the
// change-image flow.
func (i *Image) MarkLoadFailed() { i.loadFailed = true }

// LoadFailed reports whether the widget is in the error-placeholder
// state.
func (i *Image) LoadFailed() bool { return i.loadFailed }

// RequestImageChange re-triggers the external change-image flow
// (double-click in the original UI).
func (i *Image) RequestImageChange() {
	i.publish(events.ImageChangeRequested{ID: i.data.ID, CurrentURL: i.data.Image.ImageURL})
}

// Props returns a copy of the image reference bag.
func (i *Image) Props() ImageProps { return *i.data.Image }
