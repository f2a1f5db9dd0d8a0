package designer

import "github.com/user/breakstudio/pkg/widget"

// ZOrderService computes z-index reassignments. Indices come from an
// ever-increasing counter seeded at 1 and are never reused, so
// relative order stays stable under interleaved front/back operations.
type ZOrderService struct {
	next int
}

// NewZOrderService creates the service with the counter seeded at 1.
func NewZOrderService() *ZOrderService {
	return &ZOrderService{next: 1}
}

// Take returns the next fresh z-index and advances the counter. Used
// when a widget first enters the design.
func (z *ZOrderService) Take() int {
	v := z.next
	z.next++
	return v
}

// Observe bumps the counter past an externally assigned z-index, as
// happens when rehydrating persisted widgets.
func (z *ZOrderService) Observe(zIndex int) {
	if zIndex >= z.next {
		z.next = zIndex + 1
	}
}

// Reset reseeds the counter for a cleared design.
func (z *ZOrderService) Reset() { z.next = 1 }

// BringToFront computes fresh indices above everything else for the
// moved widgets, preserving their relative order. The counter is first
// bumped past the current maximum across all widgets.
func (z *ZOrderService) BringToFront(moved, all []widget.Widget) []ZOrderChange {
	if len(moved) == 0 {
		return nil
	}
	maxZ := 0
	for _, w := range all {
		if w.ZIndex() > maxZ {
			maxZ = w.ZIndex()
		}
	}
	z.Observe(maxZ)

	changes := make([]ZOrderChange, 0, len(moved))
	for _, w := range sortByZ(moved) {
		changes = append(changes, ZOrderChange{ID: w.ID(), From: w.ZIndex(), To: z.Take()})
	}
	return changes
}

// SendToBack computes indices below everything else: the floor is
// max(0, lowestExistingZIndex - count) and the moved widgets receive
// ascending indices from there, preserving their relative order.
func (z *ZOrderService) SendToBack(moved, all []widget.Widget) []ZOrderChange {
	if len(moved) == 0 {
		return nil
	}
	lowest := 0
	for i, w := range all {
		if i == 0 || w.ZIndex() < lowest {
			lowest = w.ZIndex()
		}
	}
	floor := lowest - len(moved)
	if floor < 0 {
		floor = 0
	}

	changes := make([]ZOrderChange, 0, len(moved))
	for i, w := range sortByZ(moved) {
		changes = append(changes, ZOrderChange{ID: w.ID(), From: w.ZIndex(), To: floor + i})
	}
	return changes
}
