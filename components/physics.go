package components

import (
	"github.com/automoto/gearshift/shared/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData is the rigid body of a moving entity. It also serves as the
// locomotion controller's Body.
type PhysicsData = physics.Body

var Physics = donburi.NewComponentType[PhysicsData]()
