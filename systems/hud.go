package systems

import (
	"fmt"

	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/fonts"
	"github.com/automoto/gearshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	gearPipWidth  = 14
	gearPipHeight = 6
	gearPipGap    = 3
)

// DrawHUD renders the gear indicator, dash timer and jump counter in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	state := player.State
	face := fonts.HUD.Get()

	margin := cfg.UI.HUDMargin
	line := cfg.UI.HUDLineHeight

	// One pip per gear, lit up to the current one
	for g := 1; g < len(cfg.Gear.Colors); g++ {
		c := cfg.Gear.Colors[g]
		if g > int(state.Gear) {
			c.A = 60
		}
		x := float32(margin + (g-1)*(gearPipWidth+gearPipGap))
		vector.FillRect(screen, x, float32(margin), gearPipWidth, gearPipHeight, c, false)
	}

	y := margin + gearPipHeight + line
	gearColor := cfg.UI.HUDTextColor
	if player.ShiftFlash > 0 {
		gearColor = cfg.Gear.Colors[state.Gear]
	}
	text.Draw(screen, fmt.Sprintf("GEAR %d %s", int(state.Gear), state.Gear), face, margin, y, gearColor)

	y += line
	text.Draw(screen, fmt.Sprintf("DASH %.2fs", state.GearTranTime.Seconds()), face, margin, y, cfg.UI.HUDTextColor)

	y += line
	text.Draw(screen, fmt.Sprintf("JUMPS %d", state.AdditionalJumps), face, margin, y, cfg.UI.HUDTextColor)
}
