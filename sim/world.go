// Package sim runs the locomotion controller without a window. It builds its
// own collision space from level data and steps it at a fixed tick rate.
package sim

import (
	"github.com/automoto/gearshift/shared/leveldata"
	"github.com/automoto/gearshift/shared/physics"
	"github.com/solarlune/resolv"
)

// cellSize is the resolv grid cell size in pixels.
const cellSize = 16

// World is a static collision space built from a level. Floating platforms
// are placed at their origin and do not move.
type World struct {
	Space *resolv.Space
	Level *leveldata.Level
}

// NewWorld builds a collision space from parsed level data.
func NewWorld(level *leveldata.Level) *World {
	space := resolv.NewSpace(level.Width, level.Height, cellSize, cellSize)

	add := func(r leveldata.Rect, tag string) {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
	}

	for _, r := range level.Solids {
		add(r, physics.TagSolid)
	}
	for _, r := range level.Platforms {
		add(r, physics.TagPlatform)
	}
	for _, fp := range level.FloatingPlatforms {
		add(fp.Rect, physics.TagPlatform)
	}

	return &World{Space: space, Level: level}
}
