package mocks

import (
	"image"
	"image/color"

	"github.com/user/breakstudio/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{width: width, height: height}
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas.
type Canvas struct {
	width  int
	height int
	img    *image.RGBA

	// Track calls for assertions
	RectCalls []RectCall
	TextCalls []TextCall
	ImageCalls []ImageCall
}

// RectCall records one DrawRect/DrawRoundedRect call.
type RectCall struct {
	X, Y, W, H int
	Radius     int
	Color      color.Color
}

// TextCall records one DrawText call.
type TextCall struct {
	Text  string
	X, Y  int
	Style ports.TextStyle
}

// ImageCall records one DrawImage/DrawImageScaled call.
type ImageCall struct {
	X, Y, W, H int
	Scaled     bool
}

func (m *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	m.ImageCalls = append(m.ImageCalls, ImageCall{X: x, Y: y, W: b.Dx(), H: b.Dy()})
}

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	m.ImageCalls = append(m.ImageCalls, ImageCall{X: x, Y: y, W: width, H: height, Scaled: true})
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.RectCalls = append(m.RectCalls, RectCall{X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawRoundedRect(x, y, w, h, radius int, c color.Color) {
	m.RectCalls = append(m.RectCalls, RectCall{X: x, Y: y, W: w, H: h, Radius: radius, Color: c})
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.TextCalls = append(m.TextCalls, TextCall{Text: text, X: x, Y: y, Style: style})
}

func (m *Canvas) ToImage() image.Image {
	if m.img != nil {
		return m.img
	}
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
