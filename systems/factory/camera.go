package factory

import (
	"github.com/automoto/gearshift/archetypes"
	"github.com/automoto/gearshift/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera singleton centred on (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	data := &components.CameraData{}
	data.Position.X = x
	data.Position.Y = y
	components.Camera.Set(camera, data)
}
