package designer

import (
	"encoding/json"
	"fmt"

	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/ports"
)

// ToolboxManager positions floating tool palettes and persists their
// placement between sessions. It shares the drag start/move/up
// plumbing with widget dragging but is otherwise orthogonal to canvas
// state: toolbox gestures never reach canvas hit-testing.
type ToolboxManager struct {
	fs   ports.FileSystem
	log  ports.Logger
	path string

	positions map[string]geometry.Point
	bounds    geometry.Rect

	dragID     string
	dragStart  geometry.Point
	dragOrigin geometry.Point
}

// NewToolboxManager loads persisted palette positions from path via
// the filesystem port; a missing or unreadable file just starts empty.
// Bounds limit how far a palette can be dragged.
func NewToolboxManager(fs ports.FileSystem, log ports.Logger, path string, bounds geometry.Rect) *ToolboxManager {
	t := &ToolboxManager{
		fs:        fs,
		log:       log.WithComponent("toolbox"),
		path:      path,
		positions: make(map[string]geometry.Point),
		bounds:    bounds,
	}
	t.load()
	return t
}

// Position returns the stored position of a toolbox, or the fallback
// when it has never been moved.
func (t *ToolboxManager) Position(id string, fallback geometry.Point) geometry.Point {
	if p, ok := t.positions[id]; ok {
		return p
	}
	return fallback
}

// StartDrag begins dragging the named toolbox from the pointer origin.
func (t *ToolboxManager) StartDrag(id string, origin geometry.Point, current geometry.Point) {
	t.dragID = id
	t.dragStart = origin
	t.dragOrigin = t.Position(id, current)
}

// Drag recomputes the toolbox position from the drag-start snapshot,
// clamped into bounds.
func (t *ToolboxManager) Drag(p geometry.Point) {
	if t.dragID == "" {
		return
	}
	dx, dy := p.Sub(t.dragStart)
	next := t.dragOrigin.Add(dx, dy)
	if next.X < t.bounds.X {
		next.X = t.bounds.X
	}
	if next.Y < t.bounds.Y {
		next.Y = t.bounds.Y
	}
	if next.X > t.bounds.Right() {
		next.X = t.bounds.Right()
	}
	if next.Y > t.bounds.Bottom() {
		next.Y = t.bounds.Bottom()
	}
	t.positions[t.dragID] = next
}

// EndDrag finishes the gesture and persists the new placement.
func (t *ToolboxManager) EndDrag() {
	if t.dragID == "" {
		return
	}
	t.dragID = ""
	if err := t.save(); err != nil {
		t.log.Warn("Could not persist toolbox positions: %v", err)
	}
}

// Dragging reports whether a palette drag is in flight.
func (t *ToolboxManager) Dragging() bool { return t.dragID != "" }

func (t *ToolboxManager) load() {
	exists, err := t.fs.Exists(t.path)
	if err != nil || !exists {
		return
	}
	raw, err := t.fs.ReadFile(t.path)
	if err != nil {
		t.log.Warn("Could not read toolbox positions: %v", err)
		return
	}
	if err := json.Unmarshal(raw, &t.positions); err != nil {
		t.log.Warn("Ignoring malformed toolbox positions: %v", err)
		t.positions = make(map[string]geometry.Point)
	}
}

func (t *ToolboxManager) save() error {
	raw, err := json.Marshal(t.positions)
	if err != nil {
		return fmt.Errorf("encode toolbox positions: %w", err)
	}
	return t.fs.WriteFile(t.path, raw)
}
