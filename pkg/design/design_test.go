package design

import (
	"strings"
	"testing"

	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/widget"
)

func sampleDesign() Design {
	d := New("d1", "lunch break")
	d.Widgets = []widget.Data{
		{
			ID:       "w1",
			Type:     widget.TypeBox,
			Position: geometry.Point{X: 10, Y: 20},
			Size:     geometry.Size{Width: 100, Height: 50},
			ZIndex:   1,
			Box:      &widget.BoxProps{BackgroundColor: "#336699", BorderRadius: 4},
		},
		{
			ID:       "w2",
			Type:     widget.TypeText,
			Position: geometry.Point{X: 200, Y: 20},
			Size:     geometry.Size{Width: 300, Height: 40},
			ZIndex:   2,
			Content:  "Back at 13:00",
			Text:     &widget.TextProps{Text: "Back at 13:00", FontSize: 24, FontColor: "#ffffff", TextAlign: "center"},
		},
	}
	return d
}

func TestNewUsesDefaultCanvas(t *testing.T) {
	d := New("d1", "lunch break")
	if d.Width != 1920 || d.Height != 1080 {
		t.Errorf("canvas %vx%v, want 1920x1080", d.Width, d.Height)
	}
	if d.ID != "d1" || d.Name != "lunch break" {
		t.Errorf("identity not set: %+v", d)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := sampleDesign()
	raw, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.ID != d.ID || got.Name != d.Name || len(got.Widgets) != 2 {
		t.Errorf("round trip lost identity: %+v", got.Summary())
	}
	if got.Widgets[1].Text == nil || got.Widgets[1].Text.Text != "Back at 13:00" {
		t.Errorf("round trip lost widget props: %+v", got.Widgets[1])
	}
	if got.Widgets[0].Position != d.Widgets[0].Position {
		t.Errorf("round trip moved a widget: %+v", got.Widgets[0].Position)
	}
}

func TestDecodeRejectsDuplicateWidgetIDs(t *testing.T) {
	d := sampleDesign()
	d.Widgets[1].ID = "w1"
	raw, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := Decode(raw); err == nil || !strings.Contains(err.Error(), "duplicate widget id") {
		t.Errorf("expected duplicate id error, got %v", err)
	}
}

func TestDecodeRejectsInvalidWidget(t *testing.T) {
	d := sampleDesign()
	d.Widgets[0].Type = "blink"
	raw, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := Decode(raw); err == nil {
		t.Error("expected error for unknown widget type")
	}
}

func TestValidateRequiresID(t *testing.T) {
	d := sampleDesign()
	d.ID = ""
	if err := d.Validate(); err == nil {
		t.Error("expected error for design without id")
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := sampleDesign()
	c := d.Clone()
	c.Widgets[0].Position.X = 999
	c.Widgets[1].Text.Text = "changed"

	if d.Widgets[0].Position.X == 999 {
		t.Error("clone shares widget slice with the original")
	}
	if d.Widgets[1].Text.Text == "changed" {
		t.Error("clone shares widget props with the original")
	}
}

func TestSummaryCounts(t *testing.T) {
	d := sampleDesign()
	s := d.Summary()
	if s.ID != "d1" || s.Widgets != 2 {
		t.Errorf("summary %+v", s)
	}
}
