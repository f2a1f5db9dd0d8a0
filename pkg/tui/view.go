package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/breakstudio/pkg/geometry"
	"github.com/user/breakstudio/pkg/widget"
)

var (
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("124")).
			Foreground(lipgloss.Color("231")).
			Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// glyphs per widget type; selection and reference override the style,
// not the glyph.
var typeGlyphs = map[widget.Type]rune{
	widget.TypeBox:   '▒',
	widget.TypeText:  'T',
	widget.TypeQR:    '#',
	widget.TypeImage: '◆',
	widget.TypeGroup: '·',
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	if m.help {
		return m.helpView()
	}

	rows := m.canvasRows()
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, m.width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	selected := make(map[string]bool)
	for _, id := range m.d.Selection().Selected() {
		selected[id] = true
	}
	refID := m.d.Selection().ReferenceID()

	// Paint order doubles as draw order on the grid.
	for _, w := range m.d.WidgetsByZ() {
		m.paintWidget(grid, w, selected[w.ID()], w.ID() == refID)
	}

	if m.d.Selection().MarqueeActive() {
		m.paintMarquee(grid, m.d.Selection().MarqueeRect())
	}

	if m.toolboxOpen && m.toolbox != nil {
		m.paintPalette(grid)
	}

	// Cursor on top of everything.
	if m.cursorY < rows && m.cursorX < m.width {
		grid[m.cursorY][m.cursorX] = '+'
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) paintWidget(grid [][]rune, w widget.Widget, selected, reference bool) {
	if m.d.PreviewMode() && w.Type() == widget.TypeGroup {
		return
	}
	x0, y0, x1, y1 := m.cellRect(w.Rect())
	glyph := typeGlyphs[w.Type()]

	for y := y0; y < y1 && y < len(grid); y++ {
		if y < 0 {
			continue
		}
		for x := x0; x < x1 && x < len(grid[y]); x++ {
			if x < 0 {
				continue
			}
			grid[y][x] = glyph
		}
	}

	// Editing chrome: a border of markers distinguishes selected and
	// reference widgets. Preview mode strips it.
	if m.d.PreviewMode() || !selected {
		return
	}
	marker := '*'
	if reference {
		marker = '@'
	}

	// A full border on a widget under 3 cells in either dimension
	// would cover every cell and hide the type glyph, so small
	// widgets get corner markers only.
	if x1-x0 < 3 || y1-y0 < 3 {
		for _, cell := range [][2]int{{x0, y0}, {x1 - 1, y0}, {x0, y1 - 1}, {x1 - 1, y1 - 1}} {
			x, y := cell[0], cell[1]
			if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
				grid[y][x] = marker
			}
		}
		return
	}

	for x := x0; x < x1 && x < m.width; x++ {
		if x < 0 {
			continue
		}
		if y0 >= 0 && y0 < len(grid) {
			grid[y0][x] = marker
		}
		if y1-1 >= 0 && y1-1 < len(grid) {
			grid[y1-1][x] = marker
		}
	}
	for y := y0; y < y1 && y < len(grid); y++ {
		if y < 0 {
			continue
		}
		if x0 >= 0 && x0 < len(grid[y]) {
			grid[y][x0] = marker
		}
		if x1-1 >= 0 && x1-1 < len(grid[y]) {
			grid[y][x1-1] = marker
		}
	}
}

// paletteID keys the floating palette's persisted position.
const paletteID = "palette"

// paletteRows is the palette body; the header row doubles as the drag
// handle and each other row is a widget-creation button.
var paletteRows = []string{
	"╶tools╴",
	" b box ",
	" t text",
	" Q qr  ",
	" i img ",
}

// paletteRowType maps a palette row (relative to the palette origin)
// to the widget type it creates.
func paletteRowType(row int) (widget.Type, bool) {
	switch row {
	case 1:
		return widget.TypeBox, true
	case 2:
		return widget.TypeText, true
	case 3:
		return widget.TypeQR, true
	case 4:
		return widget.TypeImage, true
	}
	return "", false
}

// paletteOrigin returns the palette's top-left cell, from the
// persisted canvas-pixel position.
func (m Model) paletteOrigin() (int, int) {
	sx, sy := m.cellScale()
	p := m.toolbox.Position(paletteID, m.cellToPoint(1, 1))
	return int(p.X / sx), int(p.Y / sy)
}

// cellToPoint converts a cell coordinate to canvas pixels at the cell
// origin.
func (m Model) cellToPoint(cx, cy int) geometry.Point {
	sx, sy := m.cellScale()
	return geometry.Point{X: float64(cx) * sx, Y: float64(cy) * sy}
}

// paletteHit reports whether a cell lies inside the open palette.
func (m Model) paletteHit(x, y int) bool {
	px, py := m.paletteOrigin()
	return y >= py && y < py+len(paletteRows) &&
		x >= px && x < px+len([]rune(paletteRows[0]))
}

func (m Model) paintPalette(grid [][]rune) {
	px, py := m.paletteOrigin()
	for dy, row := range paletteRows {
		y := py + dy
		if y < 0 || y >= len(grid) {
			continue
		}
		for dx, r := range []rune(row) {
			x := px + dx
			if x < 0 || x >= len(grid[y]) {
				continue
			}
			grid[y][x] = r
		}
	}
}

func (m Model) paintMarquee(grid [][]rune, r geometry.Rect) {
	x0, y0, x1, y1 := m.cellRect(r)
	for y := y0; y < y1 && y < len(grid); y++ {
		if y < 0 {
			continue
		}
		for x := x0; x < x1 && x < len(grid[y]); x++ {
			if x < 0 {
				continue
			}
			if grid[y][x] == ' ' {
				grid[y][x] = '░'
			}
		}
	}
}

func (m Model) statusBar() string {
	if m.errMsg != "" {
		return errorStyle.Width(m.width).Render(m.errMsg)
	}

	left := fmt.Sprintf("%s  %d widgets  %d selected",
		m.doc.Name, m.d.Count(), m.d.Selection().Count())
	if m.dirty {
		left += "  [+]"
	}
	if m.pressed {
		left += "  drag:" + m.d.DragKind().String()
		if m.additive {
			left += "+add"
		}
	}
	if m.d.PreviewMode() {
		left += "  PREVIEW"
	}
	if m.d.History().CanUndo() {
		left += "  undo:" + m.d.History().UndoDescription()
	}
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}
	right := "? help"

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) helpView() string {
	lines := []string{
		"breakstudio editor",
		"==================",
		"",
		"Cursor:",
		"  h/j/k/l or arrows   move the pointer",
		"  H/J/K/L             move 5 cells at a time",
		"",
		"Pointer:",
		"  enter or space      press/release the pointer button",
		"                      (click, drag, resize via corner, marquee)",
		"  a                   press with the multi-select modifier",
		"  escape              release without committing / clear selection",
		"",
		"Widgets:",
		"  b / t / Q / i       create box / text / QR / image at cursor",
		"  o                   change image under cursor",
		"  d, delete           delete selection",
		"  g / G               group / ungroup selection",
		"  ] / [               bring to front / send to back",
		"",
		"Clipboard:",
		"  c / x / v           copy / cut / paste",
		"  y                   copy design JSON to the OS clipboard",
		"",
		"History:",
		"  u / U               undo / redo",
		"",
		"Session:",
		"  s                   save design",
		"  P                   toggle preview mode",
		"  T                   toggle the tool palette (drag it with the mouse)",
		"  q, ctrl+c           quit",
		"",
		dimStyle.Render("press escape, q or ? to close help"),
	}
	return strings.Join(lines, "\n")
}
