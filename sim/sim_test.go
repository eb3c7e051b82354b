package sim

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/gearshift/shared/gear"
	"github.com/automoto/gearshift/shared/leveldata"
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/automoto/gearshift/shared/physics"
)

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "flat",
		Width:  6400,
		Height: 320,
		Solids: []leveldata.Rect{
			{X: 0, Y: 288, W: 6400, H: 32},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 64, Y: 288}},
	}
}

func testOptions() Options {
	return Options{
		Params: &locomotion.Params{
			WalkSpeed:              3,
			JumpForce:              6,
			DefaultAdditionalJumps: 1,
			FallMultiplier:         1.05,
			LowJumpMultiplier:      1.1,
			CheckGroundRadius:      2,
			GroundLayer:            locomotion.LayerMask{physics.TagSolid, physics.TagPlatform},
			RememberGroundedFor:    100 * time.Millisecond,
			Gear2Mult:              1.00,
			Gear3Mult:              1.75,
			Gear4Mult:              2.30,
			Gear5Mult:              3.00,
			Gear2Tran:              1200 * time.Millisecond,
			Gear3Tran:              2800 * time.Millisecond,
			Gear4Tran:              4000 * time.Millisecond,
		},
		Physics: physics.Settings{
			Gravity:            0.2,
			MaxFallSpeed:       10,
			VerticalSpeedClamp: 16,
		},
		TickRate:       60,
		ColliderWidth:  16,
		ColliderHeight: 32,
	}
}

func TestHoldDashClimbsEveryGear(t *testing.T) {
	s := New(NewWorld(testLevel()), testOptions())
	loop := NewLoop(s, HoldDash(600), 60, false)

	var shifts []locomotion.Shift
	var last Frame
	n, err := loop.Run(context.Background(), func(f Frame) {
		if f.Shift.Changed() {
			shifts = append(shifts, f.Shift)
			if f.Shift.To == gear.Cruise && f.DashTime <= 1200*time.Millisecond {
				t.Errorf("shifted to cruise after only %v", f.DashTime)
			}
		}
		if f.Dashing && !f.Grounded {
			t.Errorf("tick %d: dashing while airborne", f.Tick)
		}
		last = f
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 600 {
		t.Fatalf("ran %d ticks, want 600", n)
	}

	want := []gear.Gear{gear.Startup, gear.Cruise, gear.MaxSpeed, gear.Ludicrous}
	if len(shifts) != len(want) {
		t.Fatalf("shifts = %v, want %d upshifts", shifts, len(want))
	}
	for i, sh := range shifts {
		if sh.To != want[i] || !sh.Up() {
			t.Errorf("shift %d = %v -> %v, want up to %v", i, sh.From, sh.To, want[i])
		}
	}

	if last.Gear != gear.Ludicrous {
		t.Errorf("final gear = %v, want Ludicrous", last.Gear)
	}
	if last.SpeedX != 9 {
		t.Errorf("final SpeedX = %v, want 9", last.SpeedX)
	}
	if !last.Grounded {
		t.Error("player left the floor during a flat dash")
	}
}

func TestJumpDropsToNeutral(t *testing.T) {
	s := New(NewWorld(testLevel()), testOptions())
	script := &Script{
		Ticks: 200,
		Segments: []Segment{
			{From: 10, To: 200, Move: 1, Dash: true},
			{From: 150, To: 151, Move: 1, Dash: true, Jump: true},
		},
	}

	var beforeJump, afterJump Frame
	_, err := NewLoop(s, script, 60, false).Run(context.Background(), func(f Frame) {
		switch f.Tick {
		case 150:
			beforeJump = f
		case 152:
			afterJump = f
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if beforeJump.Gear != gear.Cruise {
		t.Fatalf("gear before jump = %v, want Cruise", beforeJump.Gear)
	}
	if afterJump.Gear != gear.Neutral || afterJump.Dashing {
		t.Errorf("after jump: gear %v dashing %v, want Neutral and not dashing", afterJump.Gear, afterJump.Dashing)
	}
	if afterJump.Grounded {
		t.Error("still grounded after jumping")
	}
	if afterJump.SpeedY >= 0 {
		t.Errorf("SpeedY = %v, want rising", afterJump.SpeedY)
	}
}

func TestLoopHonoursCancel(t *testing.T) {
	s := New(NewWorld(testLevel()), testOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := NewLoop(s, HoldDash(100), 60, false).Run(ctx, nil)
	if err == nil || n != 0 {
		t.Errorf("Run after cancel = (%d, %v), want (0, context.Canceled)", n, err)
	}
}
