package systems

import (
	"log"

	"github.com/automoto/gearshift/components"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/automoto/gearshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fallOutMargin is how far below the level a body may drop before it is
// respawned.
const fallOutMargin = 64

// UpdateLevelBounds respawns players that fell out of the level. The
// locomotion state starts over as if freshly spawned.
func UpdateLevelBounds(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || len(level.SpawnPoints) == 0 {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Y < float64(level.Height)+fallOutMargin {
			return
		}

		spawn := level.SpawnPoints[0]
		obj.PlaceFeet(spawn.X, spawn.Y)

		physics := components.Physics.Get(e)
		physics.SpeedX, physics.SpeedY = 0, 0

		player := components.Player.Get(e)
		*player.State = locomotion.NewState(player.Params)
		player.LastShift = locomotion.Shift{}
		player.ShiftFlash = 0

		log.Printf("Player fell out of %s, respawning at (%.0f, %.0f)", level.Name, spawn.X, spawn.Y)
	})
}
