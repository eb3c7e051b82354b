package systems

import (
	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity into every body. Horizontal speed is owned
// by the locomotion controller and left untouched.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Physics.Get(e)

		if cfg.Physics.ShapeJumpGravity && e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			body.SetVelocity(locomotion.ShapeJumpGravity(
				body.Velocity(),
				player.State.Input.Jump,
				body.Gravity,
				player.Params.FallMultiplier,
				player.Params.LowJumpMultiplier,
				1, // one tick
			))
		}

		body.ApplyGravity()
	})
}
