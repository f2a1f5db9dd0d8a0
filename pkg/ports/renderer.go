package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts the raster backend the exporter paints designs
// with.
type Renderer interface {
	// CreateCanvas creates a drawing canvas with the design's scaled
	// dimensions, filled with the background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes widget image bytes into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes the finished canvas image. Quality applies
	// to lossy formats only.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Canvas provides the drawing operations widgets paint with, in canvas
// pixel coordinates.
type Canvas interface {
	// DrawImage draws an image at its natural size.
	DrawImage(img image.Image, x, y int)

	// DrawImageScaled draws an image resampled into the widget bounds.
	DrawImageScaled(img image.Image, x, y, width, height int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// DrawText draws one line of text anchored per the style's
	// alignment, vertically centered on y.
	DrawText(text string, x, y int, style TextStyle)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string
	Color    color.Color
	Align    TextAlign
}

// TextAlign specifies text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)
