package factory

import (
	"github.com/automoto/gearshift/archetypes"
	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/automoto/gearshift/shared/physics"
	"github.com/automoto/gearshift/shared/sensor"
	"github.com/automoto/gearshift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player whose feet stand on (x, y). The collision
// object and the ground sensor are added to space.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	params := cfg.LocomotionParams()
	state := locomotion.NewState(params)
	probe := sensor.NewSpaceProbe(space, params.CheckGroundRadius)
	probe.Sensor.Data = player

	components.Player.SetValue(player, components.PlayerData{
		State:        &state,
		Params:       params,
		GroundSensor: probe.Sensor,
	})
	components.Physics.SetValue(player, physics.NewBody(cfg.PhysicsSettings()))

	return player
}
