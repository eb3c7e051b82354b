package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/systems"
	"github.com/automoto/gearshift/systems/factory"

	"github.com/automoto/gearshift/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv grid cell size in pixels.
const collisionCellSize = 16

type PlatformerScene struct {
	ecs        *ecs.ECS
	levelIndex int
	once       sync.Once
}

// NewPlatformerScene creates the demo scene for the given level index.
func NewPlatformerScene(levelIndex int) *PlatformerScene {
	return &PlatformerScene{levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Gameplay systems, frozen while paused. The clock must tick before the
	// player step so every read within a tick sees the same time.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFloatingPlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelBounds))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevelAtIndex(ps.ecs, ps.levelIndex)
	current := components.Level.Get(level).CurrentLevel

	// Now create the space for collision detection using the level's dimensions.
	spaceEntry := factory.CreateSpace(ps.ecs,
		current.Width,
		current.Height,
		collisionCellSize, collisionCellSize,
	)
	space := components.Space.Get(spaceEntry)

	for _, r := range current.Solids {
		factory.CreateWall(ps.ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range current.Platforms {
		factory.CreatePlatform(ps.ecs, r.X, r.Y, r.W, r.H)
	}
	for _, fp := range current.FloatingPlatforms {
		factory.CreateFloatingPlatform(ps.ecs, fp.X, fp.Y, fp.W, fp.H, fp.Travel, float32(fp.Duration))
	}

	// The loader guarantees at least one spawn point.
	spawn := current.SpawnPoints[0]
	factory.CreatePlayer(ps.ecs, space, spawn.X, spawn.Y)

	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ps.ecs, spawn.X, spawn.Y)
}
