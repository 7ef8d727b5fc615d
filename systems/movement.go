package systems

import (
	"github.com/automoto/volumeshift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// bodyMover moves a resolv object and slides it along solids.
type bodyMover struct {
	obj *resolv.Object
}

// MoveAndSlide moves the body by velocity*delta one axis at a time. A blocked
// axis stops flush against the solid and its velocity component is zeroed.
func (m bodyMover) MoveAndSlide(velocity math.Vec2, delta float64) math.Vec2 {
	if dx := velocity.X * delta; dx != 0 {
		moved, blocked := slideAxis(m.obj, dx, 0)
		m.obj.X += moved
		if blocked {
			velocity.X = 0
		}
	}

	if dy := velocity.Y * delta; dy != 0 {
		moved, blocked := slideAxis(m.obj, 0, dy)
		m.obj.Y += moved
		if blocked {
			velocity.Y = 0
		}
	}

	m.obj.Update()
	return velocity
}

// slideAxis returns how far obj can travel along the single non-zero axis of
// (dx, dy) and whether a solid cut the move short.
func slideAxis(obj *resolv.Object, dx, dy float64) (float64, bool) {
	want := dx + dy

	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return want, false
	}

	moved, blocked := want, false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		// The broadphase reports every solid sharing a cell; only solids
		// the moved body would actually overlap block it.
		if !overlapsAt(obj, solid, dx, dy) {
			continue
		}

		contact := check.ContactWithObject(solid)
		limit := contact.X()
		if dy != 0 {
			limit = contact.Y()
		}

		if (want > 0 && limit < moved) || (want < 0 && limit > moved) {
			moved = limit
			blocked = true
		}
	}

	// Never push backwards out of a solid we already overlap.
	if (want > 0 && moved < 0) || (want < 0 && moved > 0) {
		moved = 0
	}

	return moved, blocked
}

// overlapsAt reports whether a, offset by (dx, dy), overlaps b. Touching
// edges do not count.
func overlapsAt(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && ax+a.W > b.X && ay < b.Y+b.H && ay+a.H > b.Y
}
