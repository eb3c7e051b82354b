package sim

import (
	"time"

	"github.com/automoto/gearshift/shared/gear"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/automoto/gearshift/shared/physics"
	"github.com/automoto/gearshift/shared/sensor"
	"github.com/solarlune/resolv"
)

// TickClock is a simulation clock that advances by a fixed step.
type TickClock struct {
	Tick uint64
	Step time.Duration
}

// Now returns the elapsed simulation time.
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.Tick) * c.Step
}

// Options configure a Simulation.
type Options struct {
	Params           *locomotion.Params
	Physics          physics.Settings
	TickRate         int // ticks per second
	ShapeJumpGravity bool
	ColliderWidth    float64
	ColliderHeight   float64
	SensorOffsetX    float64
	SensorOffsetY    float64
}

// Frame is the observable result of one tick.
type Frame struct {
	Tick     uint64
	Time     time.Duration
	X, Y     float64 // collider top-left
	SpeedX   float64
	SpeedY   float64
	Grounded bool
	Dashing  bool
	Gear     gear.Gear
	DashTime time.Duration
	Left     bool
	Shift    locomotion.Shift
}

// Simulation is one player stepping through a World.
type Simulation struct {
	World  *World
	State  locomotion.State
	Body   physics.Body
	Object *resolv.Object
	Clock  TickClock

	opts       Options
	controller *locomotion.Controller
}

// New spawns a player with its feet on the level's first spawn point.
func New(world *World, opts Options) *Simulation {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	s := &Simulation{
		World: world,
		State: locomotion.NewState(opts.Params),
		Body:  physics.NewBody(opts.Physics),
		Clock: TickClock{Step: time.Second / time.Duration(opts.TickRate)},
		opts:  opts,
	}

	spawn := world.Level.SpawnPoints[0]
	w, h := opts.ColliderWidth, opts.ColliderHeight
	s.Object = resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, "Player")
	world.Space.Add(s.Object)

	probe := sensor.NewSpaceProbe(world.Space, opts.Params.CheckGroundRadius)
	s.controller = locomotion.NewController(&s.State, opts.Params, &s.Body, probe, &s.Clock)

	return s
}

// Step advances the simulation by one tick in the same order as the game:
// clock, controller, gravity, collision.
func (s *Simulation) Step(in locomotion.Input) Frame {
	s.Clock.Tick++

	obj := s.Object
	sx := obj.X + obj.W/2 + s.opts.SensorOffsetX
	sy := obj.Y + obj.H + s.opts.SensorOffsetY
	sh := s.controller.Step(in, sx, sy)

	if s.opts.ShapeJumpGravity {
		s.Body.SetVelocity(locomotion.ShapeJumpGravity(
			s.Body.Velocity(),
			in.Jump,
			s.Body.Gravity,
			s.opts.Params.FallMultiplier,
			s.opts.Params.LowJumpMultiplier,
			1,
		))
	}
	s.Body.ApplyGravity()
	physics.MoveAndCollide(&s.Body, obj, s.opts.Physics.VerticalSpeedClamp)
	obj.Update()

	return Frame{
		Tick:     s.Clock.Tick,
		Time:     s.Clock.Now(),
		X:        obj.X,
		Y:        obj.Y,
		SpeedX:   s.Body.SpeedX,
		SpeedY:   s.Body.SpeedY,
		Grounded: s.State.IsGrounded,
		Dashing:  s.State.Dashing,
		Gear:     s.State.Gear,
		DashTime: s.State.GearTranTime,
		Left:     s.State.Left,
		Shift:    sh,
	}
}
