package ports

import (
	"context"
	"image"
)

// HTMLCapturer renders an HTML fragment in a real browser and hands
// back the screenshot. The exporter uses it for widgets whose content
// the raster renderer cannot draw itself.
type HTMLCapturer interface {
	// CaptureHTML renders the markup and returns a screenshot cropped
	// to the document body.
	CaptureHTML(ctx context.Context, html string) (image.Image, error)

	// CaptureHTMLWithViewport renders the markup at a fixed viewport,
	// matching the widget frame it will be composited into.
	CaptureHTMLWithViewport(ctx context.Context, html string, width, height int) (image.Image, error)
}
