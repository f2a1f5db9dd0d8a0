// Package geometry provides the shared value types for the designer:
// points, sizes, rectangles and the enums describing widget kinds,
// resize handles and drag gestures. It carries no behavior beyond
// rectangle math.
package geometry

import "math"

// MinWidgetWidth and MinWidgetHeight are the hard floor for widget
// dimensions. Resize requests below the floor are clamped, never
// rejected.
const (
	MinWidgetWidth  = 10.0
	MinWidgetHeight = 10.0
)

// Point is a position in canvas pixels, top-left origin.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by dx, dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the delta from q to p.
func (p Point) Sub(q Point) (dx, dy float64) {
	return p.X - q.X, p.Y - q.Y
}

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	dx, dy := p.Sub(q)
	return math.Hypot(dx, dy)
}

// Size is a width/height pair in canvas pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clamped returns the size raised to the widget minimum where needed.
func (s Size) Clamped() Size {
	if s.Width < MinWidgetWidth {
		s.Width = MinWidgetWidth
	}
	if s.Height < MinWidgetHeight {
		s.Height = MinWidgetHeight
	}
	return s
}

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFrom builds a Rect from a position and size.
func RectFrom(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectBetween builds the normalized rectangle spanned by two corner
// points, regardless of drag direction.
func RectBetween(a, b Point) Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	return Rect{X: x, Y: y, Width: math.Abs(a.X - b.X), Height: math.Abs(a.Y - b.Y)}
}

// Position returns the rectangle's top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle.
// Edges count as inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether two rectangles overlap. Touching edges
// count as overlap, which is what marquee selection wants.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X && r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Inflate returns the rectangle grown by the margin on every side.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + margin*2,
		Height: r.Height + margin*2,
	}
}

// Handle identifies one of the four corner resize handles.
type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleNE
	HandleSW
	HandleSE
)

// String returns the handle's compass name.
func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleNE:
		return "ne"
	case HandleSW:
		return "sw"
	case HandleSE:
		return "se"
	default:
		return "none"
	}
}

// DragKind identifies which gesture a pointer drag performs.
type DragKind int

const (
	DragNone DragKind = iota
	DragMove
	DragResize
	DragSelect
)

// String returns the drag kind name.
func (d DragKind) String() string {
	switch d {
	case DragMove:
		return "move"
	case DragResize:
		return "resize"
	case DragSelect:
		return "select"
	default:
		return "none"
	}
}
