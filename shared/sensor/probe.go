// Package sensor answers ground overlap queries against a resolv space.
package sensor

import (
	"github.com/automoto/gearshift/shared/gamemath"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/solarlune/resolv"
)

// Tag marks sensor objects so other queries can ignore them.
const Tag = "sensor"

// SpaceProbe implements locomotion.GroundProbe. The sensor object provides the
// broadphase through the space's cells; the circle test is done here.
type SpaceProbe struct {
	Sensor *resolv.Object
}

// NewSpaceProbe creates a sensor object of the given radius and adds it to
// space.
func NewSpaceProbe(space *resolv.Space, radius float64) *SpaceProbe {
	obj := resolv.NewObject(0, 0, radius*2, radius*2, Tag)
	space.Add(obj)
	return &SpaceProbe{Sensor: obj}
}

// OverlapCircle reports whether the circle overlaps any object carrying one of
// the mask tags. An empty mask matches nothing.
func (p *SpaceProbe) OverlapCircle(x, y, radius float64, mask locomotion.LayerMask) bool {
	if len(mask) == 0 || radius <= 0 {
		return false
	}

	obj := p.Sensor
	obj.X = x - radius
	obj.Y = y - radius
	obj.W = radius * 2
	obj.H = radius * 2
	obj.Update()

	check := obj.Check(0, 0, mask...)
	if check == nil {
		return false
	}

	for _, o := range check.ObjectsByTags(mask...) {
		if o == obj {
			continue
		}
		if gamemath.CircleOverlapsRect(x, y, radius, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}
