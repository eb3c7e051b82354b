package factory

import (
	"github.com/automoto/gearshift/archetypes"
	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a one-way platform that can be jumped through from
// below.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	obj := newPlatformObject(ecs, platform, x, y, w, h)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	return platform
}

// CreateFloatingPlatform adds a one-way platform that moves up by travel and
// back down, each leg taking duration seconds. Zero values fall back to the
// configured defaults.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel float64, duration float32) *donburi.Entry {
	if travel == 0 {
		travel = cfg.Platform.Travel
	}
	if duration <= 0 {
		duration = cfg.Platform.Duration
	}

	platform := archetypes.FloatingPlatform.Spawn(ecs)
	obj := newPlatformObject(ecs, platform, x, y, w, h)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.FloatingPlatform.SetValue(platform, components.FloatingPlatformData{
		OriginY: y,
		Travel:  travel,
	})

	// The floating platform moves using a *gween.Sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), duration, ease.InOutSine),
		gween.New(float32(y-travel), float32(y), duration, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}

func newPlatformObject(ecs *ecs.ECS, platform *donburi.Entry, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
