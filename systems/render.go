package systems

import (
	"image/color"

	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp      = &ebiten.DrawImageOptions{}
	playerImage *ebiten.Image
)

// cullPadding keeps objects from popping at the screen edges.
const cullPadding = 64.0

// DrawLevel fills the background and draws solids and platforms.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := camera.Offset(float64(width), float64(height))

	minX := camera.Position.X - float64(width)/2 - cullPadding
	maxX := camera.Position.X + float64(width)/2 + cullPadding

	drawRects := func(e *donburi.Entry, c color.Color) {
		o := components.Object.Get(e)
		if o.X+o.W < minX || o.X > maxX {
			return
		}
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), c, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) { drawRects(e, cfg.UI.SolidColor) })
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) { drawRects(e, cfg.UI.PlatformColor) })
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) { drawRects(e, cfg.UI.PlatformColor) })
}

// DrawPlayer renders each player as a block tinted by its gear, mirrored when
// facing left.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		img := getPlayerImage(int(o.W), int(o.H))

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so the feet line up with the collision box
		drawOp.GeoM.Translate(-o.W/2, -o.H)
		if player.State.Left {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(o.Feet())
		drawOp.GeoM.Translate(camera.Offset(float64(width), float64(height)))

		drawOp.ColorScale.ScaleWithColor(gearColor(player))
		if player.ShiftFlash > 0 && player.ShiftFlash%4 < 2 {
			drawOp.ColorScale.Scale(1.6, 1.6, 1.6, 1)
		}

		screen.DrawImage(img, drawOp)
	})
}

func gearColor(player *components.PlayerData) color.Color {
	g := int(player.State.Gear)
	if g < 1 || g >= len(cfg.Gear.Colors) {
		return cfg.White
	}
	return cfg.Gear.Colors[g]
}

// getPlayerImage lazily builds a white body with a visor on the right so the
// facing direction is visible once mirrored.
func getPlayerImage(w, h int) *ebiten.Image {
	if playerImage != nil && playerImage.Bounds().Dx() == w && playerImage.Bounds().Dy() == h {
		return playerImage
	}
	playerImage = ebiten.NewImage(w, h)
	playerImage.Fill(cfg.White)
	vector.FillRect(playerImage, float32(w)/2, float32(h)/6, float32(w)/2, float32(h)/6, cfg.Grey, false)
	return playerImage
}
