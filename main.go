package main

import (
	"flag"
	"log"

	"github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/fonts"
	"github.com/automoto/gearshift/scenes"
	"github.com/automoto/gearshift/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(levelIndex int) *Game {
	return &Game{
		scene: scenes.NewPlatformerScene(levelIndex),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "show the collision and ground sensor overlay")
	gearLog := flag.Bool("gearlog", false, "log every gear shift")
	shapeGravity := flag.Bool("shapegravity", false, "apply fall and low-jump gravity multipliers")
	tuning := flag.String("tuning", "", "YAML file overriding locomotion tuning")
	level := flag.Int("level", 0, "index of the level to load")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		}
	}
	if *debug {
		config.Debug.ShowOverlay = true
	}
	if *gearLog {
		config.Debug.LogGearShifts = true
	}
	if *shapeGravity {
		config.Physics.ShapeJumpGravity = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("gearshift")
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(*level)); err != nil {
		log.Fatal(err)
	}
}
