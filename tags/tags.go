package tags

import (
	"github.com/automoto/gearshift/shared/physics"
	"github.com/yohamta/donburi"
)

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Wall             = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = physics.TagSolid
	ResolvPlatform = physics.TagPlatform
	ResolvPlayer   = "Player"
)
