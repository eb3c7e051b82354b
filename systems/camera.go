package systems

import (
	"math"

	"github.com/automoto/gearshift/components"
	"github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with a look-ahead in the facing direction.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := player.State.Direction() * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX, targetY := playerObject.Center()
	targetX += camera.LookAheadX

	targetX = clampAxis(targetX, float64(config.C.Width), float64(levelData.CurrentLevel.Width))
	targetY = clampAxis(targetY, float64(config.C.Height), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside the level. Levels smaller than the screen
// are centred.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
