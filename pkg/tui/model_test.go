package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/breakstudio/pkg/adapters/logger"
	"github.com/user/breakstudio/pkg/adapters/memstore"
	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/designer"
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/mocks"
	"github.com/user/breakstudio/pkg/widget"
)

func newTestModel(t *testing.T) (Model, *designer.Designer) {
	t.Helper()
	d := designer.New(events.NewBus(), logger.NewNoop())
	doc := design.New("d1", "lunch break")
	fs := mocks.NewFileSystem()
	toolbox := designer.NewToolboxManager(fs, logger.NewNoop(), "toolbox.json",
		geometry.Rect{Width: doc.Width, Height: doc.Height})
	m := New(d, memstore.New(), doc, toolbox, logger.NewNoop())

	// 96x28 terminal over a 1920x1080 canvas: 20 px/cell horizontally,
	// 40 px/cell vertically (one row is the status bar).
	next, _ := m.Update(tea.WindowSizeMsg{Width: 96, Height: 28})
	return next.(Model), d
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "escape" {
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func mouse(t *testing.T, m Model, msg tea.MouseMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestCellScale(t *testing.T) {
	m, _ := newTestModel(t)
	sx, sy := m.cellScale()
	if sx != 20 || sy != 40 {
		t.Errorf("scale (%v,%v), want (20,40)", sx, sy)
	}
}

func TestPointerAtCellCenter(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursorX, m.cursorY = 10, 5
	p := m.pointer()
	if p.X != 210 || p.Y != 220 {
		t.Errorf("pointer %+v, want {210 220}", p)
	}
}

func TestCreateWidgetAtCursor(t *testing.T) {
	m, d := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10

	m = press(t, m, "b")
	if d.Count() != 1 {
		t.Fatalf("expected 1 widget, got %d", d.Count())
	}
	w := d.WidgetsByZ()[0]
	// Cursor cell (20,10) centers at (410,420); the widget centers
	// there with the 200x100 default size.
	if got := w.Rect().Position(); got != (geometry.Point{X: 310, Y: 370}) {
		t.Errorf("created at %+v, want {310 370}", got)
	}
	if !d.Selection().IsSelected(w.ID()) {
		t.Error("created widget should be selected")
	}
}

func TestEnterDragsWidget(t *testing.T) {
	m, d := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10
	m = press(t, m, "b")
	id := d.WidgetsByZ()[0].ID()
	origin := d.WidgetsByZ()[0].Rect().Position()

	// Press, drag 5 cells right and 2 down, release.
	m = press(t, m, "enter", "l", "l", "l", "l", "l", "j", "j", "enter")

	want := origin.Add(5*20, 2*40)
	w, _ := d.Widget(id)
	if got := w.Rect().Position(); got != want {
		t.Errorf("dragged to %+v, want %+v", got, want)
	}
	if !d.History().CanUndo() {
		t.Error("committed drag should be undoable")
	}
}

func TestEscapeReleasesWithoutCommit(t *testing.T) {
	m, d := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10
	m = press(t, m, "b")
	id := d.WidgetsByZ()[0].ID()
	origin := d.WidgetsByZ()[0].Rect().Position()
	undoDepthBefore := d.History().UndoDescription()

	m = press(t, m, "enter", "l", "l", "escape")

	// Escape releases at the press point, so the gesture resolves as
	// a sub-threshold click and the widget snaps back.
	w, _ := d.Widget(id)
	if got := w.Rect().Position(); got != origin {
		t.Errorf("widget at %+v after cancel, want %+v", got, origin)
	}
	if d.History().UndoDescription() != undoDepthBefore {
		t.Error("cancelled gesture must not enter history")
	}
}

func TestMarqueeFromEmptyCanvas(t *testing.T) {
	m, d := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10
	m = press(t, m, "b", "escape") // create then deselect

	// Start a marquee well away from the widget, sweep across it.
	m.cursorX, m.cursorY = 0, 0
	m = press(t, m, "enter")
	if d.DragKind() != geometry.DragSelect {
		t.Fatalf("drag kind %v, want select", d.DragKind())
	}
	for i := 0; i < 40; i++ {
		m = press(t, m, "l")
	}
	for i := 0; i < 20; i++ {
		m = press(t, m, "j")
	}
	m = press(t, m, "enter")

	if d.Selection().Count() != 1 {
		t.Errorf("marquee selected %d widgets, want 1", d.Selection().Count())
	}
}

func TestUndoRedoKeys(t *testing.T) {
	m, d := newTestModel(t)
	m = press(t, m, "b")
	if d.Count() != 1 {
		t.Fatal("create failed")
	}

	m = press(t, m, "u")
	if d.Count() != 0 {
		t.Error("u should undo")
	}
	m = press(t, m, "U")
	if d.Count() != 1 {
		t.Error("U should redo")
	}
}

func TestDeleteKey(t *testing.T) {
	m, d := newTestModel(t)
	m = press(t, m, "b", "d")
	if d.Count() != 0 {
		t.Errorf("d should delete the selection, count = %d", d.Count())
	}
}

func TestSaveWritesSnapshot(t *testing.T) {
	d := designer.New(events.NewBus(), logger.NewNoop())
	store := memstore.New()
	doc := design.New("d1", "lunch break")
	toolbox := designer.NewToolboxManager(mocks.NewFileSystem(), logger.NewNoop(), "toolbox.json",
		geometry.Rect{Width: doc.Width, Height: doc.Height})
	m := New(d, store, doc, toolbox, logger.NewNoop())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 96, Height: 28})
	m = next.(Model)

	m = press(t, m, "b", "s")

	got, err := store.Get(t.Context(), "d1")
	if err != nil {
		t.Fatalf("design not saved: %v", err)
	}
	if len(got.Widgets) != 1 {
		t.Errorf("saved %d widgets, want 1", len(got.Widgets))
	}
	if got.Widgets[0].Type != widget.TypeBox {
		t.Errorf("saved widget type %s", got.Widgets[0].Type)
	}
}

func TestViewShowsWidgetAndStatus(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10
	m = press(t, m, "b")

	out := m.View()
	if !strings.ContainsRune(out, '▒') {
		t.Error("view should render the box glyph")
	}
	if !strings.Contains(out, "1 widgets") {
		t.Error("status bar should show the widget count")
	}
	if !strings.Contains(out, "lunch break") {
		t.Error("status bar should show the design name")
	}
}

func TestViewSmallSelectedWidgetKeepsGlyph(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10
	m = press(t, m, "b")

	// The fresh box spans only 2 rows at this scale; the selection
	// chrome must shrink to corner markers instead of covering it.
	out := m.View()
	if !strings.ContainsRune(out, '▒') {
		t.Error("selection chrome covered the type glyph")
	}
	if !strings.ContainsRune(out, '@') {
		t.Error("reference corner markers missing")
	}
}

func TestToolboxToggleRendersPalette(t *testing.T) {
	m, _ := newTestModel(t)

	if strings.Contains(m.View(), "tools") {
		t.Error("palette should start hidden")
	}
	m = press(t, m, "T")
	if !strings.Contains(m.View(), "tools") {
		t.Error("T should open the palette")
	}
	m = press(t, m, "T")
	if strings.Contains(m.View(), "tools") {
		t.Error("T should close the palette again")
	}
}

func TestToolboxDragMovesAndPersists(t *testing.T) {
	m, d := newTestModel(t)
	fs := mocks.NewFileSystem()
	m.toolbox = designer.NewToolboxManager(fs, logger.NewNoop(), "toolbox.json",
		geometry.Rect{Width: m.doc.Width, Height: m.doc.Height})
	m = press(t, m, "T")

	// Grab the palette header at its default origin and drag it.
	m = mouse(t, m, tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = mouse(t, m, tea.MouseMsg{X: 10, Y: 8, Action: tea.MouseActionMotion})
	m = mouse(t, m, tea.MouseMsg{X: 10, Y: 8, Action: tea.MouseActionRelease})

	px, py := m.paletteOrigin()
	if px == 1 && py == 1 {
		t.Error("palette did not move")
	}
	if _, ok := fs.GetFile("toolbox.json"); !ok {
		t.Error("palette position was not persisted on release")
	}
	if d.Count() != 0 || len(d.Selection().Selected()) != 0 {
		t.Error("palette drag must not reach canvas hit-testing")
	}
}

func TestToolboxClickCreatesWidget(t *testing.T) {
	m, d := newTestModel(t)
	m = press(t, m, "T")

	// Default origin is cell (1,1); row 1 below the header is the box
	// button.
	m = mouse(t, m, tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = mouse(t, m, tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionRelease})

	if d.Count() != 1 {
		t.Fatalf("expected 1 widget after palette click, got %d", d.Count())
	}
	if got := d.WidgetsByZ()[0].Type(); got != widget.TypeBox {
		t.Errorf("palette box row created %s", got)
	}
}

func TestImageChangeKey(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursorX, m.cursorY = 20, 10
	m = press(t, m, "i", "o")

	if !strings.Contains(m.statusMsg, "change image") {
		t.Errorf("o over an image should surface the change request, status %q", m.statusMsg)
	}
}

func TestImageChangeKeyIgnoresEmptyCanvas(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursorX, m.cursorY = 40, 20
	m = press(t, m, "o")

	if strings.Contains(m.statusMsg, "change image") {
		t.Error("o over empty canvas must not request an image change")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "?")
	if !strings.Contains(m.View(), "breakstudio editor") {
		t.Error("? should open help")
	}
	m = press(t, m, "q")
	if strings.Contains(m.View(), "breakstudio editor") {
		t.Error("q should close help")
	}
}
