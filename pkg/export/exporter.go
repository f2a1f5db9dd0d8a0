// Package export renders a persisted design into a PNG image. Widgets
// are painted in ascending z-index order onto a canvas the size of the
// design, so the export matches what the editor shows in preview mode.
package export

import (
	"context"
	"fmt"
	"image"
	"sort"

	"github.com/skip2/go-qrcode"

	"github.com/user/breakstudio/pkg/config"
	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/ports"
	"github.com/user/breakstudio/pkg/widget"
)

// placeholderColor fills the error placeholder shown where an image
// could not be loaded.
const placeholderColor = "#e0e0e0"

// ImageLoader resolves a widget's image reference into raw file bytes.
type ImageLoader interface {
	Load(ctx context.Context, url string) ([]byte, error)
}

// Options tune one export run.
type Options struct {
	// Scale multiplies the design's canvas dimensions. 0 means 1.
	Scale float64

	// FontPath is the font used for text widgets; empty falls back to
	// the renderer's built-in face.
	FontPath string
}

// Exporter paints designs with the injected renderer. The HTML
// capturer backs legacy free-content widgets; the loader backs image
// widgets. Either may be nil, in which case the affected widgets get
// the error placeholder.
type Exporter struct {
	renderer ports.Renderer
	capturer ports.HTMLCapturer
	loader   ImageLoader
	log      ports.Logger
}

// New creates an exporter.
func New(renderer ports.Renderer, capturer ports.HTMLCapturer, loader ImageLoader, log ports.Logger) *Exporter {
	return &Exporter{
		renderer: renderer,
		capturer: capturer,
		loader:   loader,
		log:      log.WithComponent("export"),
	}
}

// Export renders the design and returns PNG bytes.
func (e *Exporter) Export(ctx context.Context, d design.Design, opts Options) ([]byte, error) {
	img, err := e.Render(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	raw, err := e.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return nil, fmt.Errorf("encode design %s: %w", d.ID, err)
	}
	return raw, nil
}

// Render paints the design onto a fresh canvas and returns the image.
func (e *Exporter) Render(ctx context.Context, d design.Design, opts Options) (image.Image, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	width := int(d.Width * scale)
	height := int(d.Height * scale)
	bg := config.ParseColor(d.Background)
	if d.Background == "" {
		bg = config.ParseColor("#ffffff")
	}
	canvas := e.renderer.CreateCanvas(width, height, bg)

	for _, w := range paintOrder(d.Widgets) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.paintWidget(ctx, canvas, w, scale, opts.FontPath)
	}
	return canvas.ToImage(), nil
}

func (e *Exporter) paintWidget(ctx context.Context, canvas ports.Canvas, w widget.Data, scale float64, fontPath string) {
	x := int(w.Position.X * scale)
	y := int(w.Position.Y * scale)
	width := int(w.Size.Width * scale)
	height := int(w.Size.Height * scale)

	switch w.Type {
	case widget.TypeBox:
		e.paintBox(canvas, w, x, y, width, height, scale)
	case widget.TypeText:
		e.paintText(canvas, w, x, y, width, height, scale, fontPath)
	case widget.TypeQR:
		e.paintQR(canvas, w, x, y, width, height)
	case widget.TypeImage:
		e.paintImage(ctx, canvas, w, x, y, width, height)
	case widget.TypeGroup:
		// Group frames are editing chrome; they do not render.
	}

	// Text keeps its content in TextProps; QR uses Content as the
	// encoded payload. Neither carries legacy raw HTML.
	if w.Content != "" && w.Type != widget.TypeText && w.Type != widget.TypeQR {
		e.paintContent(ctx, canvas, w, x, y, width, height)
	}
}

func (e *Exporter) paintBox(canvas ports.Canvas, w widget.Data, x, y, width, height int, scale float64) {
	bg := widget.DefaultBoxColor
	radius := 0.0
	if w.Box != nil {
		if w.Box.BackgroundColor != "" {
			bg = w.Box.BackgroundColor
		}
		radius = w.Box.BorderRadius
	}
	if radius > 0 {
		canvas.DrawRoundedRect(x, y, width, height, int(radius*scale), config.ParseColor(bg))
		return
	}
	canvas.DrawRect(x, y, width, height, config.ParseColor(bg))
}

func (e *Exporter) paintText(canvas ports.Canvas, w widget.Data, x, y, width, height int, scale float64, fontPath string) {
	props := w.Text
	if props == nil {
		return
	}
	style := ports.TextStyle{
		FontSize: props.FontSize * scale,
		FontPath: fontPath,
		Color:    config.ParseColor(props.FontColor),
	}
	anchorX := x
	switch props.TextAlign {
	case "center":
		style.Align = ports.AlignCenter
		anchorX = x + width/2
	case "right":
		style.Align = ports.AlignRight
		anchorX = x + width
	default:
		style.Align = ports.AlignLeft
	}
	canvas.DrawText(props.Text, anchorX, y+height/2, style)
}

func (e *Exporter) paintQR(canvas ports.Canvas, w widget.Data, x, y, width, height int) {
	content := w.Content
	if content == "" && w.Image != nil {
		content = w.Image.ImageURL
	}
	if content == "" {
		e.paintPlaceholder(canvas, x, y, width, height)
		return
	}
	// Width and height are equal by the square invariant; render at
	// the final pixel size so modules stay crisp.
	raw, err := qrcode.Encode(content, qrcode.Medium, width)
	if err != nil {
		e.log.Warn("QR encode failed for widget %s: %v", w.ID, err)
		e.paintPlaceholder(canvas, x, y, width, height)
		return
	}
	img, err := e.renderer.DecodeImage(raw, ports.FormatPNG)
	if err != nil {
		e.log.Warn("QR decode failed for widget %s: %v", w.ID, err)
		e.paintPlaceholder(canvas, x, y, width, height)
		return
	}
	canvas.DrawImageScaled(img, x, y, width, height)
}

func (e *Exporter) paintImage(ctx context.Context, canvas ports.Canvas, w widget.Data, x, y, width, height int) {
	if e.loader == nil || w.Image == nil || w.Image.ImageURL == "" {
		e.paintPlaceholder(canvas, x, y, width, height)
		return
	}
	raw, err := e.loader.Load(ctx, w.Image.ImageURL)
	if err != nil {
		e.log.Warn("Image load failed for widget %s: %v", w.ID, err)
		e.paintPlaceholder(canvas, x, y, width, height)
		return
	}
	img, err := e.renderer.DecodeImage(raw, guessFormat(w.Image.ImageURL))
	if err != nil {
		e.log.Warn("Image decode failed for widget %s: %v", w.ID, err)
		e.paintPlaceholder(canvas, x, y, width, height)
		return
	}
	canvas.DrawImageScaled(img, x, y, width, height)
}

// paintContent renders legacy raw-HTML widgets through the headless
// browser capturer.
func (e *Exporter) paintContent(ctx context.Context, canvas ports.Canvas, w widget.Data, x, y, width, height int) {
	if e.capturer == nil {
		return
	}
	img, err := e.capturer.CaptureHTMLWithViewport(ctx, w.Content, width, height)
	if err != nil {
		e.log.Warn("HTML capture failed for widget %s: %v", w.ID, err)
		return
	}
	canvas.DrawImage(img, x, y)
}

// paintPlaceholder draws the gray box with a warning glyph shown where
// an image was expected but could not be produced.
func (e *Exporter) paintPlaceholder(canvas ports.Canvas, x, y, width, height int) {
	canvas.DrawRect(x, y, width, height, config.ParseColor(placeholderColor))
	canvas.DrawText("!", x+width/2, y+height/2, ports.TextStyle{
		FontSize: float64(height) / 2,
		Color:    config.ParseColor("#888888"),
		Align:    ports.AlignCenter,
	})
}

func guessFormat(url string) ports.ImageFormat {
	n := len(url)
	if n >= 4 && (url[n-4:] == ".jpg" || (n >= 5 && url[n-5:] == ".jpeg")) {
		return ports.FormatJPEG
	}
	return ports.FormatPNG
}

// paintOrder returns the widgets sorted by ascending z-index with the
// id tie-break.
func paintOrder(ws []widget.Data) []widget.Data {
	sorted := append([]widget.Data(nil), ws...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ZIndex != sorted[j].ZIndex {
			return sorted[i].ZIndex < sorted[j].ZIndex
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}
