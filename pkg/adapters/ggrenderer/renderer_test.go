package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/breakstudio/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_CreateCanvas_Background(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(10, 10, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
	img := canvas.ToImage()

	red, green, blue, _ := img.At(5, 5).RGBA()
	if red>>8 != 0x33 || green>>8 != 0x66 || blue>>8 != 0x99 {
		t.Errorf("expected background color, got %v", img.At(5, 5))
	}
}

func TestRenderer_EncodeDecodeJPEG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	decoded, err := r.DecodeImage(data, ports.FormatJPEG)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodePNG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := r.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 30 || bounds.Dy() != 30 {
		t.Errorf("expected 30x30, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.DrawRect(10, 10, 30, 30, color.RGBA{R: 255, A: 255})

	img := canvas.ToImage()

	c := img.At(20, 20)
	red, green, _, _ := c.RGBA()
	if red == 0 || green != 0 {
		t.Error("expected red pixel inside rectangle")
	}
}

func TestCanvas_DrawRoundedRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	canvas.DrawRoundedRect(10, 10, 60, 60, 20, color.Black)

	img := canvas.ToImage()

	// Center is filled
	_, _, _, a := img.At(40, 40).RGBA()
	if a == 0 {
		t.Error("expected filled center")
	}

	// The sharp corner is clipped by the radius and stays white
	red, green, blue, _ := img.At(11, 11).RGBA()
	if red != 65535 || green != 65535 || blue != 65535 {
		t.Error("expected corner pixel outside the rounding to stay white")
	}
}

func TestCanvas_DrawImage(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	small := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			small.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	canvas.DrawImage(small, 10, 10)

	img := canvas.ToImage()

	c := img.At(15, 15)
	red, _, _, _ := c.RGBA()
	if red == 0 {
		t.Error("expected red pixel from drawn image")
	}
}

func TestCanvas_DrawImageScaled(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 100, color.White)

	// A 10x10 source stretched into 50x50 bounds
	small := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			small.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	canvas.DrawImageScaled(small, 20, 20, 50, 50)

	img := canvas.ToImage()

	// A pixel well beyond the source's natural bounds is still blue
	_, _, blue, _ := img.At(60, 60).RGBA()
	if blue == 0 {
		t.Error("expected scaled image to cover the full widget bounds")
	}

	// Outside the widget bounds stays white
	red, green, blue2, _ := img.At(75, 75).RGBA()
	if red != 65535 || green != 65535 || blue2 != 65535 {
		t.Error("expected pixel outside widget bounds to stay white")
	}
}

func TestCanvas_DrawImageScaled_DegenerateBounds(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(50, 50, color.White)

	small := image.NewRGBA(image.Rect(0, 0, 10, 10))

	// Should not panic
	canvas.DrawImageScaled(small, 10, 10, 0, 0)
}

func TestCanvas_DrawText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(200, 50, color.White)

	style := ports.TextStyle{
		FontSize: 14,
		Color:    color.Black,
		Align:    ports.AlignLeft,
	}

	// Should not panic
	canvas.DrawText("Hello World", 10, 25, style)

	img := canvas.ToImage()
	if img == nil {
		t.Error("expected image to be created")
	}
}

func TestCanvas_DrawText_MissingFontFallsBack(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(200, 50, color.White)

	style := ports.TextStyle{
		FontSize: 14,
		FontPath: "/no/such/font.ttf",
		Color:    color.Black,
	}

	// Should not panic; the built-in face is used instead
	canvas.DrawText("Hello", 10, 25, style)
}
