package factory

import (
	"github.com/automoto/gearshift/archetypes"
	"github.com/automoto/gearshift/assets"
	"github.com/automoto/gearshift/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex loads every embedded level and selects one. Out of range
// indices fall back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels := assets.MustLoadLevels()

	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: levels[levelIndex],
	})

	return level
}
