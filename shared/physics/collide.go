package physics

import (
	"math"

	"github.com/automoto/gearshift/shared/gamemath"
	"github.com/solarlune/resolv"
)

// platformSnapTolerance is how far below a one-way platform's top the feet
// may already be and still land on it.
const platformSnapTolerance = 4

// MoveAndCollide moves obj by the body's velocity, resolving against solids
// and one-way platforms. Horizontal movement is resolved first. The space
// check is only a broadphase; contacts are measured against the candidates'
// rectangles.
func MoveAndCollide(b *Body, obj *resolv.Object, verticalClamp float64) {
	resolveHorizontal(b, obj)
	resolveVertical(b, obj, verticalClamp)
}

func resolveHorizontal(b *Body, obj *resolv.Object) {
	dx := b.SpeedX
	if dx == 0 {
		return
	}

	check := obj.Check(dx, 0, TagSolid)
	if check == nil {
		obj.X += dx
		return
	}

	allowed := dx
	blocked := false
	for _, solid := range check.ObjectsByTags(TagSolid) {
		if !overlapsY(obj, solid) {
			continue
		}
		var gap float64
		if dx > 0 {
			gap = solid.X - (obj.X + obj.W)
			if gap < 0 || gap >= allowed {
				continue
			}
		} else {
			gap = solid.X + solid.W - obj.X
			if gap > 0 || gap <= allowed {
				continue
			}
		}
		allowed = gap
		blocked = true
	}

	obj.X += allowed
	if blocked {
		// The controller rewrites SpeedX every tick, so this only affects
		// the current step.
		b.SpeedX = 0
	}
}

func resolveVertical(b *Body, obj *resolv.Object, verticalClamp float64) {
	b.OnGround = nil
	dy := b.SpeedY
	if verticalClamp > 0 {
		dy = gamemath.ClampSpeed(dy, verticalClamp)
	}

	if dy < 0 {
		obj.Y += moveUp(b, obj, dy)
		return
	}
	obj.Y += moveDown(b, obj, dy)
}

// moveUp stops the body against a ceiling. One-way platforms are passed
// through from below.
func moveUp(b *Body, obj *resolv.Object, dy float64) float64 {
	check := obj.Check(0, dy, TagSolid)
	if check == nil {
		return dy
	}

	allowed := dy
	for _, solid := range check.ObjectsByTags(TagSolid) {
		if !overlapsX(obj, solid) {
			continue
		}
		gap := solid.Y + solid.H - obj.Y
		if gap > 0 || gap <= allowed {
			continue
		}
		allowed = gap
		b.SpeedY = 0
	}
	return allowed
}

// moveDown lands the body on the nearest solid or one-way platform below.
// The check reaches one pixel further so a body at rest stays grounded.
func moveDown(b *Body, obj *resolv.Object, dy float64) float64 {
	check := obj.Check(0, dy+1, TagSolid, TagPlatform)
	if check == nil {
		return dy
	}

	bottom := obj.Y + obj.H
	best := math.Inf(1)
	var ground *resolv.Object

	for _, o := range check.ObjectsByTags(TagSolid, TagPlatform) {
		if !overlapsX(obj, o) {
			continue
		}
		gap := o.Y - bottom
		if gap > dy+1 {
			continue
		}
		if o.HasTags(TagPlatform) {
			if gap < -platformSnapTolerance {
				continue
			}
		} else if gap < 0 {
			continue
		}
		if gap < best {
			best = gap
			ground = o
		}
	}

	if ground == nil {
		return dy
	}
	b.OnGround = ground
	b.SpeedY = 0
	return best
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
