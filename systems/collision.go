package systems

import (
	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/shared/physics"
	"github.com/automoto/gearshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every player by its velocity, resolving against
// solids and one-way platforms.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.MoveAndCollide(body, obj.Object, cfg.Physics.VerticalSpeedClamp)
	})
}
