package designer

import (
	"testing"

	"github.com/user/breakstudio/pkg/geometry"
)

func TestHandleKeyShortcuts(t *testing.T) {
	d := newTestDesigner()
	a := addBox(t, d, 0, 0, 50, 50)
	b := addBox(t, d, 100, 0, 50, 50)

	if !d.HandleKey(KeyInput{Key: "a", Command: true}) {
		t.Fatal("cmd+a should be consumed")
	}
	if d.Selection().Count() != 2 {
		t.Errorf("cmd+a selected %d widgets, want 2", d.Selection().Count())
	}

	d.HandleKey(KeyInput{Key: "c", Command: true})
	if d.Clipboard().IsEmpty() {
		t.Error("cmd+c should fill the clipboard")
	}

	d.HandleKey(KeyInput{Key: "v", Command: true})
	if d.Count() != 4 {
		t.Errorf("cmd+v should paste copies, count = %d", d.Count())
	}

	d.HandleKey(KeyInput{Key: "z", Command: true})
	if d.Count() != 2 {
		t.Errorf("cmd+z should undo the paste, count = %d", d.Count())
	}

	d.HandleKey(KeyInput{Key: "z", Command: true, Shift: true})
	if d.Count() != 4 {
		t.Errorf("cmd+shift+z should redo, count = %d", d.Count())
	}

	d.HandleKey(KeyInput{Key: "z", Command: true})
	d.HandleKey(KeyInput{Key: "y", Command: true})
	if d.Count() != 4 {
		t.Errorf("cmd+y should also redo, count = %d", d.Count())
	}

	d.Selection().Select(a, false)
	d.HandleKey(KeyInput{Key: "]"})
	za, _ := d.Widget(a)
	zb, _ := d.Widget(b)
	if za.ZIndex() <= zb.ZIndex() {
		t.Error("] should bring the selection to front")
	}
	d.HandleKey(KeyInput{Key: "["})
	if za.ZIndex() >= zb.ZIndex() {
		t.Error("[ should send the selection to back")
	}

	d.HandleKey(KeyInput{Key: "escape"})
	if d.Selection().Count() != 0 {
		t.Error("escape should clear the selection")
	}
}

func TestDeleteKeySuppressedInTextField(t *testing.T) {
	d := newTestDesigner()
	id := addBox(t, d, 0, 0, 50, 50)
	d.Selection().Select(id, false)

	if d.HandleKey(KeyInput{Key: "backspace", InTextField: true}) {
		t.Error("backspace inside a text field must not be consumed")
	}
	if d.Count() != 1 {
		t.Error("widget deleted while editing text")
	}

	if !d.HandleKey(KeyInput{Key: "delete"}) {
		t.Error("delete outside a text field should be consumed")
	}
	if d.Count() != 0 {
		t.Error("delete key should remove the selection")
	}
}

func TestCutShortcut(t *testing.T) {
	d := newTestDesigner()
	id := addBox(t, d, 10, 10, 50, 50)
	d.Selection().Select(id, false)

	d.HandleKey(KeyInput{Key: "x", Command: true})
	if d.Count() != 0 {
		t.Error("cmd+x should remove the selection")
	}
	d.HandleKey(KeyInput{Key: "v", Command: true})
	if d.Count() != 1 {
		t.Error("cmd+v after cut should paste the widget back")
	}
	sel := d.Selection().Selected()
	if len(sel) != 1 {
		t.Fatal("pasted widget should be selected")
	}
	want := geometry.Point{X: 10 + PasteOffset.X, Y: 10 + PasteOffset.Y}
	if got := rectOf(t, d, sel[0]).Position(); got != want {
		t.Errorf("pasted at %+v, want %+v", got, want)
	}
}

func TestUnknownKeyNotConsumed(t *testing.T) {
	d := newTestDesigner()
	if d.HandleKey(KeyInput{Key: "q"}) {
		t.Error("unbound key should not be consumed")
	}
	if d.HandleKey(KeyInput{Key: "a"}) {
		t.Error("a without the command modifier should not be consumed")
	}
}
