// Package tui implements the terminal editor frontend. The terminal
// grid is a scaled viewport onto the design canvas; the cursor is a
// virtual pointer that drives the designer's gesture state machine, so
// move, resize and marquee behave exactly as they do in a pointer UI.
package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/designer"
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/ports"
	"github.com/user/breakstudio/pkg/widget"
)

// imageChangeSlot catches ImageChangeRequested events published by the
// designer so key handling can surface them in the status bar. A
// pointer slot survives the value copies bubbletea makes of the model.
type imageChangeSlot struct {
	pending bool
	id      string
	url     string
}

// chromeRows is the number of terminal rows reserved for the status
// bar below the canvas.
const chromeRows = 1

// defaultNewSize is the size widgets are created at from the keyboard,
// in canvas pixels.
var defaultNewSize = geometry.Size{Width: 200, Height: 100}

// Model is the bubbletea model wrapping one editing session.
type Model struct {
	d       *designer.Designer
	store   ports.DesignStore
	toolbox *designer.ToolboxManager
	log     ports.Logger

	doc design.Design

	width  int
	height int

	cursorX int
	cursorY int

	// pressed tracks the virtual pointer button between key presses;
	// while held, cursor movement feeds PointerMove.
	pressed    bool
	additive   bool
	pressPoint geometry.Point

	// toolboxPress remembers the cell a palette press landed on so a
	// release in place counts as a click rather than a drag.
	toolboxOpen  bool
	toolboxPress [2]int

	imgChange *imageChangeSlot

	help       bool
	statusMsg  string
	errMsg     string
	quitting   bool
	dirty      bool
}

// New creates a model editing doc through d, saving into store. The
// designer is expected to have the document already loaded. The
// toolbox manager persists the floating palette position between
// sessions; pass nil to run without a palette.
func New(d *designer.Designer, store ports.DesignStore, doc design.Design, toolbox *designer.ToolboxManager, log ports.Logger) Model {
	slot := &imageChangeSlot{}
	d.Bus().Subscribe(func(e events.Event) {
		if ev, ok := e.(events.ImageChangeRequested); ok {
			slot.pending, slot.id, slot.url = true, ev.ID, ev.CurrentURL
		}
	})
	return Model{
		d:         d,
		store:     store,
		toolbox:   toolbox,
		doc:       doc,
		imgChange: slot,
		log:       log.WithComponent("tui"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		switch msg.String() {
		case "esc", "escape", "q", "?":
			m.help = false
		}
		return m, nil
	}

	m.errMsg = ""
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.help = true

	// Cursor movement; Shift moves 5x faster. While the virtual
	// button is held this drags.
	case "h", "left":
		m.moveCursor(-1, 0)
	case "l", "right":
		m.moveCursor(1, 0)
	case "k", "up":
		m.moveCursor(0, -1)
	case "j", "down":
		m.moveCursor(0, 1)
	case "H", "shift+left":
		m.moveCursor(-5, 0)
	case "L", "shift+right":
		m.moveCursor(5, 0)
	case "K", "shift+up":
		m.moveCursor(0, -5)
	case "J", "shift+down":
		m.moveCursor(0, 5)

	// The virtual pointer button. Plain enter is a click or gesture
	// commit; "shift+enter" style additive press is on "a".
	case "enter", " ":
		m.togglePointer(false)
	case "a":
		m.togglePointer(true)

	// Widget creation at the cursor.
	case "b":
		m.createWidget(widget.TypeBox)
	case "t":
		m.createWidget(widget.TypeText)
	case "Q":
		m.createWidget(widget.TypeQR)
	case "i":
		m.createWidget(widget.TypeImage)

	case "g":
		if _, err := m.d.GroupSelection(); err != nil {
			m.errMsg = err.Error()
		} else {
			m.dirty = true
		}
	case "G":
		m.d.UngroupSelection()
		m.dirty = true

	case "u", "ctrl+z":
		m.d.Undo()
		m.dirty = true
	case "U", "ctrl+y":
		m.d.Redo()
		m.dirty = true

	case "ctrl+a":
		m.d.HandleKey(designer.KeyInput{Key: "a", Command: true})
	case "c", "ctrl+x":
		m.forwardCommand(msg.String())
	case "x":
		m.d.CutSelection()
		m.dirty = true
	case "v", "p":
		m.d.Paste()
		m.dirty = true

	case "]":
		m.d.BringSelectionToFront()
		m.dirty = true
	case "[":
		m.d.SendSelectionToBack()
		m.dirty = true

	case "delete", "backspace", "d":
		m.d.DeleteSelection()
		m.dirty = true

	case "esc", "escape":
		if m.pressed {
			// Release at the press point so an in-flight gesture
			// resolves as a click rather than a commit.
			m.pressed = false
			m.d.PointerUp(m.pressPoint)
		} else {
			m.d.HandleKey(designer.KeyInput{Key: "escape"})
		}

	case "P":
		m.d.SetPreviewMode(!m.d.PreviewMode())

	case "T":
		if m.toolbox != nil {
			m.toolboxOpen = !m.toolboxOpen
		}

	// Double-click stand-in: re-trigger the change-image flow on the
	// image or QR widget under the cursor.
	case "o":
		m.d.DoubleClick(m.pointer())
		if m.imgChange != nil && m.imgChange.pending {
			m.imgChange.pending = false
			m.statusMsg = fmt.Sprintf("change image for %s (current %q)", m.imgChange.id, m.imgChange.url)
		}

	case "s", "ctrl+s":
		m.save()

	case "y":
		m.yankToClipboard()

	case "q":
		if m.pressed {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse maps real mouse events onto the same pointer protocol
// the keyboard cursor drives. Palette gestures are routed to the
// toolbox manager and never reach canvas hit-testing.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.canvasRows() {
		return m, nil
	}
	m.cursorX, m.cursorY = msg.X, msg.Y

	if m.toolbox != nil && m.toolbox.Dragging() {
		return m.handleToolboxMouse(msg)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			if m.toolboxOpen && m.paletteHit(msg.X, msg.Y) {
				return m.handleToolboxMouse(msg)
			}
			m.pressed = true
			m.additive = msg.Shift
			m.pressPoint = m.pointer()
			m.d.PointerDown(m.pressPoint, msg.Shift)
		}
	case tea.MouseActionMotion:
		if m.pressed {
			m.d.PointerMove(m.pointer())
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.d.PointerUp(m.pointer())
			m.dirty = true
		}
	}
	return m, nil
}

// handleToolboxMouse drags the floating palette; a press released in
// place is a click on the row under the cursor instead.
func (m Model) handleToolboxMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		m.toolboxPress = [2]int{msg.X, msg.Y}
		px, py := m.paletteOrigin()
		m.toolbox.StartDrag(paletteID, m.pointer(), m.cellToPoint(px, py))
	case tea.MouseActionMotion:
		m.toolbox.Drag(m.pointer())
	case tea.MouseActionRelease:
		clicked := m.toolboxPress == [2]int{msg.X, msg.Y}
		m.toolbox.EndDrag()
		if clicked {
			_, py := m.paletteOrigin()
			if t, ok := paletteRowType(msg.Y - py); ok {
				m.createWidget(t)
			}
		}
	}
	return m, nil
}

func (m *Model) togglePointer(additive bool) {
	if m.pressed {
		m.pressed = false
		m.d.PointerUp(m.pointer())
		m.dirty = true
		return
	}
	m.pressed = true
	m.additive = additive
	m.pressPoint = m.pointer()
	m.d.PointerDown(m.pressPoint, additive)
}

func (m *Model) moveCursor(dx, dy int) {
	m.cursorX += dx
	m.cursorY += dy
	m.clampCursor()
	if m.pressed {
		m.d.PointerMove(m.pointer())
	}
}

func (m *Model) clampCursor() {
	maxX := m.width - 1
	maxY := m.canvasRows() - 1
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if maxX >= 0 && m.cursorX > maxX {
		m.cursorX = maxX
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if maxY >= 0 && m.cursorY > maxY {
		m.cursorY = maxY
	}
}

func (m *Model) createWidget(t widget.Type) {
	p := m.pointer()
	// Center the new widget on the cursor.
	p.X -= defaultNewSize.Width / 2
	p.Y -= defaultNewSize.Height / 2
	id, err := m.d.AddWidget(t, p, defaultNewSize)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.d.Selection().Select(id, false)
	m.dirty = true
	m.statusMsg = fmt.Sprintf("created %s widget", t)
}

func (m *Model) forwardCommand(key string) {
	switch key {
	case "c":
		m.d.CopySelection()
		m.statusMsg = "copied"
	case "ctrl+x":
		m.d.CutSelection()
		m.dirty = true
	}
}

func (m *Model) save() {
	m.doc.Widgets = m.d.Snapshot()
	if err := m.store.Put(context.Background(), m.doc); err != nil {
		m.log.Error("Save design %s failed: %v", m.doc.ID, err)
		m.errMsg = "save failed: " + err.Error()
		return
	}
	m.dirty = false
	m.statusMsg = fmt.Sprintf("saved %q (%d widgets)", m.doc.Name, len(m.doc.Widgets))
}

// yankToClipboard puts the design JSON on the OS clipboard so it can
// be pasted into the web editor or a ticket.
func (m *Model) yankToClipboard() {
	m.doc.Widgets = m.d.Snapshot()
	raw, err := m.doc.Encode()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	if err := clipboard.WriteAll(string(raw)); err != nil {
		m.errMsg = "clipboard unavailable: " + err.Error()
		return
	}
	m.statusMsg = "design JSON copied to clipboard"
}

// canvasRows is the terminal height available for the canvas.
func (m Model) canvasRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// pointer converts the cell cursor to canvas pixels at the cell
// center.
func (m Model) pointer() geometry.Point {
	sx, sy := m.cellScale()
	return geometry.Point{
		X: (float64(m.cursorX) + 0.5) * sx,
		Y: (float64(m.cursorY) + 0.5) * sy,
	}
}

// cellScale returns canvas pixels per terminal cell on each axis.
func (m Model) cellScale() (sx, sy float64) {
	cols := m.width
	if cols < 1 {
		cols = 80
	}
	rows := m.canvasRows()
	sx = m.doc.Width / float64(cols)
	sy = m.doc.Height / float64(rows)
	return sx, sy
}

// cellRect maps a canvas rectangle to cell coordinates, always
// covering at least one cell so tiny widgets stay visible.
func (m Model) cellRect(r geometry.Rect) (x0, y0, x1, y1 int) {
	sx, sy := m.cellScale()
	x0 = int(r.X / sx)
	y0 = int(r.Y / sy)
	x1 = int(r.Right() / sx)
	y1 = int(r.Bottom() / sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}
