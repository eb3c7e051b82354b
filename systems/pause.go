package systems

import (
	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.UI.PauseOverlay,
		false,
	)

	title := "PAUSED"
	titleFace := fonts.Title.Get()
	titleWidth := text.BoundString(titleFace, title).Dx()
	text.Draw(screen, title, titleFace, int(width)/2-titleWidth/2, int(height)/2, cfg.UI.PauseTextColor)

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFace := fonts.Small.Get()
	hintWidth := text.BoundString(hintFace, hint).Dx()
	text.Draw(screen, hint, hintFace, int(width)/2-hintWidth/2, int(height)-12, cfg.UI.HUDTextColor)
}

// getPauseHint returns the resume hint for the active input device
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return "Esc: Resume   F1: Debug overlay   F11: Fullscreen"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
