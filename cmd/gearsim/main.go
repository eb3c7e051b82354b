// Command gearsim runs the locomotion controller headless against an embedded
// level and prints the gear timeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/gearshift/assets"
	"github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/sim"
)

func main() {
	levelIndex := flag.Int("level", 0, "index of the embedded level")
	scriptPath := flag.String("script", "", "YAML input script (default: hold right + dash)")
	ticks := flag.Uint64("ticks", 600, "ticks to run with the default script")
	tuning := flag.String("tuning", "", "YAML file overriding locomotion tuning")
	realtime := flag.Bool("realtime", false, "pace the run at the tick rate")
	shapeGravity := flag.Bool("shapegravity", false, "apply fall and low-jump gravity multipliers")
	verbose := flag.Bool("v", false, "print every frame, not only gear shifts")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if *levelIndex < 0 || *levelIndex >= len(levels) {
		log.Fatalf("level %d out of range (have %d)", *levelIndex, len(levels))
	}

	script := sim.HoldDash(*ticks)
	if *scriptPath != "" {
		if script, err = sim.LoadScript(*scriptPath); err != nil {
			log.Fatal(err)
		}
	}

	world := sim.NewWorld(levels[*levelIndex])
	s := sim.New(world, sim.Options{
		Params:           config.LocomotionParams(),
		Physics:          config.PhysicsSettings(),
		TickRate:         config.C.TPS,
		ShapeJumpGravity: *shapeGravity || config.Physics.ShapeJumpGravity,
		ColliderWidth:    config.Player.CollisionWidth,
		ColliderHeight:   config.Player.CollisionHeight,
		SensorOffsetX:    config.Ground.OffsetX,
		SensorOffsetY:    config.Ground.OffsetY,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Simulating %s for %d ticks at %d/s", world.Level.Name, script.Ticks, config.C.TPS)

	var last sim.Frame
	n, err := sim.NewLoop(s, script, config.C.TPS, *realtime).Run(ctx, func(f sim.Frame) {
		last = f
		if *verbose || f.Shift.Changed() {
			printFrame(f)
		}
	})
	if err != nil {
		log.Printf("Stopped after %d ticks: %v", n, err)
	}

	fmt.Printf("final: tick %d  x=%.1f  gear %s  speed %.2f  dash %v\n",
		last.Tick, last.X, last.Gear, last.SpeedX, last.DashTime)
}

func printFrame(f sim.Frame) {
	shift := ""
	if f.Shift.Changed() {
		shift = fmt.Sprintf("  %s -> %s", f.Shift.From, f.Shift.To)
	}
	fmt.Printf("%5d %8.3fs  x=%7.1f y=%6.1f  vx=%5.2f vy=%6.2f  grounded=%-5v gear=%-9s dash=%v%s\n",
		f.Tick, f.Time.Seconds(), f.X, f.Y, f.SpeedX, f.SpeedY, f.Grounded, f.Gear, f.DashTime, shift)
}
