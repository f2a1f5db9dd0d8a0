// Package capturehtml rasterizes HTML snippets with a headless
// browser. Widgets carrying raw HTML content are rendered here before
// being composited onto the exported canvas.
package capturehtml

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"

	"github.com/user/breakstudio/pkg/ports"
)

// Options configures the browser used for capture.
type Options struct {
	// Headless disables the visible browser window. Exports normally
	// run headless; turning it off helps when debugging HTML widgets.
	Headless bool

	// ChromePath is an explicit Chrome executable. Empty falls back to
	// the CHROME_PATH environment variable, then system defaults.
	ChromePath string
}

// Capturer renders HTML as images using chromedp.
type Capturer struct {
	opts Options
}

// New creates a capturer with default options (headless, system Chrome).
func New() *Capturer {
	return NewWithOptions(Options{Headless: true})
}

// NewWithOptions creates a capturer with explicit browser options.
func NewWithOptions(opts Options) *Capturer {
	return &Capturer{opts: opts}
}

var _ ports.HTMLCapturer = (*Capturer)(nil)

// CaptureHTML renders HTML content and returns a full screenshot.
func (c *Capturer) CaptureHTML(ctx context.Context, html string) (image.Image, error) {
	return c.capture(ctx, html, nil, nil)
}

// CaptureHTMLWithViewport renders HTML at a specific viewport size and
// crops the result to the body's rendered bounds.
func (c *Capturer) CaptureHTMLWithViewport(ctx context.Context, html string, width, height int) (image.Image, error) {
	var bodyWidth, bodyHeight float64

	img, err := c.capture(ctx, html,
		[]chromedp.Action{
			chromedp.EmulateViewport(int64(width), int64(height)),
		},
		[]chromedp.Action{
			chromedp.Evaluate(`document.body.getBoundingClientRect().width`, &bodyWidth),
			chromedp.Evaluate(`document.body.getBoundingClientRect().height`, &bodyHeight),
		},
	)
	if err != nil {
		return nil, err
	}

	return cropToBody(img, int(bodyWidth), int(bodyHeight)), nil
}

// capture writes the HTML to a temp file, navigates a fresh browser
// context to it, runs the extra actions and screenshots the page.
func (c *Capturer) capture(ctx context.Context, html string, before, after []chromedp.Action) (image.Image, error) {
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("breakstudio_capture_%d.html", os.Getpid()))
	if err := os.WriteFile(tmpFile, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	defer os.Remove(tmpFile)

	chromedpOpts := chromedp.DefaultExecAllocatorOptions[:]
	chromedpOpts = append(chromedpOpts,
		chromedp.Flag("hide-scrollbars", true),
	)
	if c.opts.Headless {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("headless", "new"))
	} else {
		chromedpOpts = append(chromedpOpts, chromedp.Flag("headless", false))
	}
	if path := ResolveChromePath(c.opts.ChromePath); path != "" {
		chromedpOpts = append(chromedpOpts, chromedp.ExecPath(path))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedpOpts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var buf []byte
	actions := append([]chromedp.Action{}, before...)
	actions = append(actions, chromedp.Navigate("file://"+tmpFile))
	actions = append(actions, after...)
	actions = append(actions, chromedp.FullScreenshot(&buf, 100))

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}

// cropToBody crops the screenshot to the body's rendered size. A zero
// or unknown body size returns the screenshot unchanged.
func cropToBody(img image.Image, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		return img
	}

	bounds := img.Bounds()
	if width > bounds.Dx() {
		width = bounds.Dx()
	}
	if height > bounds.Dy() {
		height = bounds.Dy()
	}

	cropped := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cropped.Set(x, y, img.At(x, y))
		}
	}
	return cropped
}
