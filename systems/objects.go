package systems

import (
	"github.com/automoto/gearshift/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every collision object after
// movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
