package systems

import (
	"time"

	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one tick. It must run before
// UpdatePlayer and be wrapped with WithGameplayChecks so paused time is not
// counted towards a dash.
func UpdateClock(ecs *ecs.ECS) {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = cfg.C.TPS
	}
	clock := GetOrCreateClock(ecs)
	clock.Advance(time.Second / time.Duration(tps))
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
