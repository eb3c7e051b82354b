package systems

import (
	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances each platform's tween and moves its
// collision object. Platform movement runs before collision resolution so a
// body resting on a rising platform is pushed up rather than sinking in.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, done := tw.Update(dt)
		obj.Y = float64(y)
		if done {
			tw.Reset()
		}
	})
}
