package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/fonts"
	"github.com/automoto/gearshift/shared/sensor"
	"github.com/automoto/gearshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects, the ground sensor and platform paths
// when the overlay is enabled (F1).
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowOverlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := camera.Offset(float64(width), float64(height))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)

		viewX := camera.Position.X - float64(width)/2
		viewY := camera.Position.Y - float64(height)/2

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+float64(width) || obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
				continue
			}
			if obj.HasTags(sensor.Tag) {
				continue // drawn as a circle below
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}

			vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		fp := components.FloatingPlatform.Get(e)
		o := components.Object.Get(e)
		x := float32(o.X + o.W/2 + camX)
		vector.StrokeLine(screen, x, float32(fp.OriginY+camY), x, float32(fp.OriginY-fp.Travel+camY), 1, cfg.Cyan, false)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		sx, sy := GroundSensorPosition(o.Feet())

		c := cfg.Red
		if player.State.IsGrounded {
			c = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeCircle(screen, float32(sx+camX), float32(sy+camY), float32(player.Params.CheckGroundRadius), 1, c, false)
	})

	clock := GetOrCreateClock(ecs)
	msg := fmt.Sprintf("TPS %.0f  t=%.2fs  tick %d", ebiten.ActualTPS(), clock.Now().Seconds(), clock.Ticks)
	text.Draw(screen, msg, fonts.Small.Get(), cfg.UI.HUDMargin, height-cfg.UI.HUDMargin, cfg.UI.HUDTextColor)
}
