package systems

import (
	"log"

	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/automoto/gearshift/shared/sensor"
	"github.com/automoto/gearshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one locomotion step per player. Must run after
// UpdateInput and UpdateClock, and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	clock := GetOrCreateClock(ecs)
	in := LocomotionInput(input)

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry, in, clock)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry, in locomotion.Input, clock *components.ClockData) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Component storage may move between ticks, so the controller is rebuilt
	// around the current pointers every step.
	probe := &sensor.SpaceProbe{Sensor: player.GroundSensor}
	ctrl := locomotion.NewController(player.State, player.Params, physics, probe, clock)

	sensorX, sensorY := GroundSensorPosition(obj.Feet())
	sh := ctrl.Step(in, sensorX, sensorY)

	if player.ShiftFlash > 0 {
		player.ShiftFlash--
	}
	if !sh.Changed() {
		return
	}

	player.LastShift = sh
	if sh.Up() {
		player.ShiftFlash = cfg.UI.ShiftFlashTicks
	}
	if cfg.Debug.LogGearShifts {
		log.Printf("gear %s -> %s at %v (dash %v)", sh.From, sh.To, clock.Now(), player.State.GearTranTime)
	}
}

// GroundSensorPosition returns the centre of the ground sensor circle for a
// collider whose bottom-centre is at (feetX, feetY).
func GroundSensorPosition(feetX, feetY float64) (float64, float64) {
	return feetX + cfg.Ground.OffsetX, feetY + cfg.Ground.OffsetY
}
