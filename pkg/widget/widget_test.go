package widget

import (
	"encoding/json"
	"testing"

	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
)

func newTestFactory() (*Factory, *events.Bus) {
	bus := events.NewBus()
	return NewFactory(bus), bus
}

func TestSetSizeEnforcesFloor(t *testing.T) {
	tests := []struct {
		name     string
		request  geometry.Size
		expected geometry.Size
	}{
		{"normal resize", geometry.Size{Width: 200, Height: 80}, geometry.Size{Width: 200, Height: 80}},
		{"negative width", geometry.Size{Width: -500, Height: 80}, geometry.Size{Width: 10, Height: 80}},
		{"zero size", geometry.Size{}, geometry.Size{Width: 10, Height: 10}},
		{"tiny size", geometry.Size{Width: 1, Height: 9.9}, geometry.Size{Width: 10, Height: 10}},
	}

	f, _ := newTestFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := f.Create(TypeBox, geometry.Point{X: 0, Y: 0}, geometry.Size{Width: 100, Height: 100})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			w.SetSize(tt.request)
			if got := w.Rect().Size(); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestSetSizeEmitsEventAfterClamping(t *testing.T) {
	f, bus := newTestFactory()
	w, _ := f.Create(TypeBox, geometry.Point{}, geometry.Size{Width: 100, Height: 100})

	var got []events.WidgetResized
	bus.Subscribe(func(e events.Event) {
		if r, ok := e.(events.WidgetResized); ok {
			got = append(got, r)
		}
	})

	w.SetSize(geometry.Size{Width: -5, Height: 40})

	if len(got) != 1 {
		t.Fatalf("expected 1 resize event, got %d", len(got))
	}
	if got[0].Size.Width != 10 || got[0].Size.Height != 40 {
		t.Errorf("event carried unclamped size: %+v", got[0].Size)
	}
}

func TestSetPositionEmitsEvent(t *testing.T) {
	f, bus := newTestFactory()
	w, _ := f.Create(TypeText, geometry.Point{X: 10, Y: 10}, geometry.Size{Width: 100, Height: 30})

	var moves int
	bus.Subscribe(func(e events.Event) {
		if _, ok := e.(events.WidgetMoved); ok {
			moves++
		}
	})

	w.SetPosition(geometry.Point{X: 50, Y: 60})
	w.SetPosition(geometry.Point{X: 50, Y: 60}) // no-op, same position

	if moves != 1 {
		t.Errorf("expected 1 move event, got %d", moves)
	}
	if got := w.Rect().Position(); got != (geometry.Point{X: 50, Y: 60}) {
		t.Errorf("position not applied: %+v", got)
	}
}

func TestDeselectClearsReference(t *testing.T) {
	f, _ := newTestFactory()
	w, _ := f.Create(TypeBox, geometry.Point{}, geometry.Size{Width: 50, Height: 50})

	w.SetSelected(true)
	w.SetReference(true)
	if !w.Reference() {
		t.Fatal("reference flag not set")
	}

	w.SetSelected(false)
	if w.Reference() {
		t.Error("deselecting must clear the reference flag")
	}
}

func TestQRForcedSquare(t *testing.T) {
	f, _ := newTestFactory()
	w, _ := f.Create(TypeQR, geometry.Point{}, geometry.Size{Width: 80, Height: 80})

	tests := []struct {
		name     string
		request  geometry.Size
		expected float64
	}{
		{"width change drives height", geometry.Size{Width: 120, Height: 80}, 120},
		{"height change drives width", geometry.Size{Width: 120, Height: 60}, 60},
		{"both change, width wins", geometry.Size{Width: 90, Height: 70}, 90},
		{"clamped below floor", geometry.Size{Width: 2, Height: 90}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w.SetSize(tt.request)
			got := w.Rect().Size()
			if got.Width != tt.expected || got.Height != tt.expected {
				t.Errorf("expected %vx%v, got %+v", tt.expected, tt.expected, got)
			}
		})
	}
}

func TestQRResizeEmitsQREvent(t *testing.T) {
	f, bus := newTestFactory()
	w, _ := f.Create(TypeQR, geometry.Point{}, geometry.Size{Width: 80, Height: 80})

	var sides []float64
	bus.Subscribe(func(e events.Event) {
		if q, ok := e.(events.QRWidgetResized); ok {
			sides = append(sides, q.Side)
		}
	})

	w.SetSize(geometry.Size{Width: 100, Height: 80})
	if len(sides) != 1 || sides[0] != 100 {
		t.Errorf("expected one qr-resize event with side 100, got %v", sides)
	}
}

func TestImageLoadFailureStaysInteractive(t *testing.T) {
	f, bus := newTestFactory()
	w, _ := f.Create(TypeImage, geometry.Point{X: 5, Y: 5}, geometry.Size{Width: 60, Height: 40})
	img := w.(*Image)

	img.SetImage("https://example.com/a.png", "a.png")
	img.MarkLoadFailed()
	if !img.LoadFailed() {
		t.Fatal("load failure not recorded")
	}

	// The widget must still hit-test and re-trigger the change flow.
	if !img.ContainsPoint(geometry.Point{X: 30, Y: 20}) {
		t.Error("failed image no longer hit-tests")
	}

	var requests []events.ImageChangeRequested
	bus.Subscribe(func(e events.Event) {
		if r, ok := e.(events.ImageChangeRequested); ok {
			requests = append(requests, r)
		}
	})
	img.RequestImageChange()
	if len(requests) != 1 || requests[0].CurrentURL != "https://example.com/a.png" {
		t.Errorf("unexpected change requests: %+v", requests)
	}

	// A fresh image reference clears the error state.
	img.SetImage("https://example.com/b.png", "b.png")
	if img.LoadFailed() {
		t.Error("SetImage must clear the error state")
	}
}

func TestGroupFrame(t *testing.T) {
	children := []geometry.Rect{
		{X: 40, Y: 40, Width: 100, Height: 50},
		{X: 200, Y: 30, Width: 60, Height: 120},
	}

	frame, ok := GroupFrame(children)
	if !ok {
		t.Fatal("expected a frame")
	}
	// Union is (40,30)-(260,150); padded by 20 on each side.
	expected := geometry.Rect{X: 20, Y: 10, Width: 260, Height: 160}
	if frame != expected {
		t.Errorf("expected %+v, got %+v", expected, frame)
	}

	if _, ok := GroupFrame(nil); ok {
		t.Error("empty child list must not produce a frame")
	}
}

func TestHandleAtRequiresSelection(t *testing.T) {
	f, _ := newTestFactory()
	w, _ := f.Create(TypeBox, geometry.Point{X: 100, Y: 100}, geometry.Size{Width: 50, Height: 50})

	corner := geometry.Point{X: 100, Y: 100}
	if h := w.HandleAt(corner); h != geometry.HandleNone {
		t.Errorf("unselected widget exposed handle %v", h)
	}

	w.SetSelected(true)
	tests := []struct {
		name     string
		p        geometry.Point
		expected geometry.Handle
	}{
		{"nw corner", geometry.Point{X: 100, Y: 100}, geometry.HandleNW},
		{"ne corner", geometry.Point{X: 150, Y: 100}, geometry.HandleNE},
		{"sw corner", geometry.Point{X: 100, Y: 150}, geometry.HandleSW},
		{"se corner", geometry.Point{X: 150, Y: 150}, geometry.HandleSE},
		{"near se within hit area", geometry.Point{X: 147, Y: 152}, geometry.HandleSE},
		{"center", geometry.Point{X: 125, Y: 125}, geometry.HandleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.HandleAt(tt.p); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDataCloneIsDeep(t *testing.T) {
	d := Data{
		ID:    "g1",
		Type:  TypeGroup,
		Group: &GroupProps{ChildIDs: []string{"a", "b"}},
	}

	clone := d.Clone()
	clone.Group.ChildIDs[0] = "mutated"
	if d.Group.ChildIDs[0] != "a" {
		t.Error("clone shares the child id slice with the original")
	}
}

func TestDataJSONRoundTrip(t *testing.T) {
	original := Data{
		ID:       "w1",
		Type:     TypeText,
		Position: geometry.Point{X: 12.5, Y: 30},
		Size:     geometry.Size{Width: 180, Height: 44},
		ZIndex:   7,
		Text: &TextProps{
			Text:      "Take a break",
			FontSize:  24,
			FontColor: "#ffffff",
			TextAlign: "center",
		},
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored Data
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.ID != original.ID || restored.Type != original.Type {
		t.Errorf("identity lost: %+v", restored)
	}
	if restored.Position != original.Position || restored.Size != original.Size || restored.ZIndex != original.ZIndex {
		t.Errorf("geometry lost: %+v", restored)
	}
	if restored.Text == nil || *restored.Text != *original.Text {
		t.Errorf("text properties lost: %+v", restored.Text)
	}
}

func TestFactoryDuplicateAssignsFreshID(t *testing.T) {
	f, _ := newTestFactory()
	src, _ := f.Create(TypeBox, geometry.Point{X: 10, Y: 10}, geometry.Size{Width: 40, Height: 40})

	dup, err := f.Duplicate(src.Data(), geometry.Point{X: 20, Y: 20})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.ID() == src.ID() {
		t.Error("duplicate reused the source id")
	}
	if got := dup.Rect().Position(); got != (geometry.Point{X: 30, Y: 30}) {
		t.Errorf("offset not applied: %+v", got)
	}
}

func TestFactoryCreateGroupHasChildList(t *testing.T) {
	f, _ := newTestFactory()

	w, err := f.Create(TypeGroup, geometry.Point{X: 5, Y: 5}, geometry.Size{Width: 100, Height: 80})
	if err != nil {
		t.Fatalf("create group frame: %v", err)
	}
	if w.Data().Group == nil {
		t.Fatal("group frame created without a child list")
	}
	if len(w.Data().Group.ChildIDs) != 0 {
		t.Errorf("fresh frame should start empty, got %v", w.Data().Group.ChildIDs)
	}
}

func TestFactoryRejectsInvalidData(t *testing.T) {
	f, _ := newTestFactory()

	if _, err := f.FromData(Data{Type: TypeBox}); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := f.FromData(Data{ID: "x", Type: Type("blob")}); err == nil {
		t.Error("expected error for unknown type")
	}
	if _, err := f.FromData(Data{ID: "g", Type: TypeGroup}); err == nil {
		t.Error("expected error for group without child list")
	}
}

func TestDestroyContract(t *testing.T) {
	f, bus := newTestFactory()
	w, _ := f.Create(TypeBox, geometry.Point{}, geometry.Size{Width: 50, Height: 50})
	w.SetSelected(true)
	w.SetReference(true)

	var eventsAfter int
	w.Destroy()
	bus.Subscribe(func(events.Event) { eventsAfter++ })

	if w.Selected() || w.Reference() {
		t.Error("destroy must clear selection state")
	}
	// A destroyed widget is detached from the bus.
	w.SetPosition(geometry.Point{X: 1, Y: 1})
	if eventsAfter != 0 {
		t.Errorf("destroyed widget still publishes events (%d)", eventsAfter)
	}
}
