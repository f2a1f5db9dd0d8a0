package widget

import (
	"github.com/user/breakstudio/pkg/events"
	"github.com/user/breakstudio/pkg/geometry"
)

// GroupPadding is the fixed margin a group frame adds beyond the union
// of its children's bounding boxes at creation time.
const GroupPadding = 20.0

// Group is a frame around a set of child widgets. Its geometry is
// captured once at creation and is independently mutable afterwards;
// it does not re-fit as children move.
type Group struct {
	Base
}

// NewGroup wraps group data in a live widget.
func NewGroup(data Data, bus *events.Bus) *Group {
	g := &Group{Base: newBase(data, bus)}
	if g.data.Group == nil {
		g.data.Group = &GroupProps{}
	}
	return g
}

// ChildIDs returns the ordered child references.
func (g *Group) ChildIDs() []string {
	return append([]string(nil), g.data.Group.ChildIDs...)
}

// GroupFrame computes the padded bounding rectangle for a new group
// around the given child rectangles. It returns false when there are
// no children to frame.
func GroupFrame(children []geometry.Rect) (geometry.Rect, bool) {
	if len(children) == 0 {
		return geometry.Rect{}, false
	}
	union := children[0]
	for _, r := range children[1:] {
		union = union.Union(r)
	}
	return union.Inflate(GroupPadding), true
}
