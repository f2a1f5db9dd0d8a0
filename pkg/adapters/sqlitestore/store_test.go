package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/ports"
	"github.com/user/breakstudio/pkg/widget"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "designs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d := design.New("d1", "lunch break")
	d.Widgets = []widget.Data{{
		ID:       "w1",
		Type:     widget.TypeText,
		Position: geometry.Point{X: 200, Y: 100},
		Size:     geometry.Size{Width: 400, Height: 60},
		ZIndex:   1,
		Text:     &widget.TextProps{Text: "Back at 13:00", FontSize: 32},
	}}
	if err := s.Put(ctx, d); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "lunch break" || len(got.Widgets) != 1 {
		t.Errorf("round trip lost data: %+v", got.Summary())
	}
	if got.Widgets[0].Text == nil || got.Widgets[0].Text.Text != "Back at 13:00" {
		t.Errorf("round trip lost widget props: %+v", got.Widgets[0])
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be set on first put")
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ports.ErrDesignNotFound) {
		t.Errorf("expected ErrDesignNotFound, got %v", err)
	}
}

func TestPutReplacesKeepingCreatedAt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d := design.New("d1", "first")
	if err := s.Put(ctx, d); err != nil {
		t.Fatal(err)
	}
	first, err := s.Get(ctx, "d1")
	if err != nil {
		t.Fatal(err)
	}

	first.Name = "second"
	if err := s.Put(ctx, first); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "d1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "second" {
		t.Errorf("name = %q, want replacement", got.Name)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("replace changed created_at from %v to %v", first.CreatedAt, got.CreatedAt)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("replace should not duplicate, list has %d", len(list))
	}
}

func TestListCountsWidgets(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	d := design.New("d1", "lunch break")
	for _, id := range []string{"w1", "w2", "w3"} {
		d.Widgets = append(d.Widgets, widget.Data{
			ID:   id,
			Type: widget.TypeBox,
			Size: geometry.Size{Width: 50, Height: 50},
		})
	}
	if err := s.Put(ctx, d); err != nil {
		t.Fatal(err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Widgets != 3 {
		t.Errorf("list = %+v, want one design with 3 widgets", list)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := s.Put(ctx, design.New("d1", "x")); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete(ctx, "d1"); !errors.Is(err, ports.ErrDesignNotFound) {
		t.Errorf("double delete should report not found, got %v", err)
	}
}

func TestPutRejectsCorruptDesign(t *testing.T) {
	s := openTestStore(t)
	d := design.New("d1", "dup")
	d.Widgets = []widget.Data{
		{ID: "w1", Type: widget.TypeBox, Size: geometry.Size{Width: 50, Height: 50}},
		{ID: "w1", Type: widget.TypeBox, Size: geometry.Size{Width: 50, Height: 50}},
	}
	if err := s.Put(context.Background(), d); err == nil {
		t.Error("expected validation error for duplicate widget ids")
	}
}
