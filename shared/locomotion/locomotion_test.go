package locomotion

import (
	"testing"
	"time"

	"github.com/automoto/gearshift/shared/gear"
	"github.com/yohamta/donburi/features/math"
)

type fakeBody struct {
	vel    math.Vec2
	writes int
}

func (b *fakeBody) Velocity() math.Vec2 { return b.vel }

func (b *fakeBody) SetVelocity(v math.Vec2) {
	b.vel = v
	b.writes++
}

type fakeProbe struct {
	ground bool

	lastX, lastY, lastRadius float64
	lastMask                 LayerMask
}

func (p *fakeProbe) OverlapCircle(x, y, radius float64, mask LayerMask) bool {
	p.lastX, p.lastY, p.lastRadius, p.lastMask = x, y, radius, mask
	return p.ground
}

type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration { return c.now }

func (c *manualClock) advance(d time.Duration) { c.now += d }

func testParams() *Params {
	return &Params{
		WalkSpeed:              3.0,
		JumpForce:              6.0,
		DefaultAdditionalJumps: 1,
		FallMultiplier:         1.05,
		LowJumpMultiplier:      1.1,
		CrouchMultiplier:       0.75,
		CheckGroundRadius:      2,
		GroundLayer:            LayerMask{"solid", "platform"},
		RememberGroundedFor:    100 * time.Millisecond,
		Gear2Mult:              1.00,
		Gear3Mult:              1.75,
		Gear4Mult:              2.30,
		Gear5Mult:              3.00,
		Gear2Tran:              1200 * time.Millisecond,
		Gear3Tran:              2800 * time.Millisecond,
		Gear4Tran:              4000 * time.Millisecond,
	}
}

func TestCheckGrounded(t *testing.T) {
	p := testParams()

	t.Run("hit_restores_jumps", func(t *testing.T) {
		s := NewState(p)
		s.IsGrounded = false
		s.AdditionalJumps = 0
		probe := &fakeProbe{ground: true}

		if !CheckGrounded(&s, p, probe, 10, 20, time.Second) {
			t.Fatalf("expected grounded")
		}
		if !s.IsGrounded || s.AdditionalJumps != p.DefaultAdditionalJumps {
			t.Fatalf("got grounded=%v jumps=%d", s.IsGrounded, s.AdditionalJumps)
		}
		if probe.lastX != 10 || probe.lastY != 20 || probe.lastRadius != p.CheckGroundRadius {
			t.Fatalf("probe queried at (%v,%v) r=%v", probe.lastX, probe.lastY, probe.lastRadius)
		}
		if len(probe.lastMask) != 2 {
			t.Fatalf("mask not forwarded: %v", probe.lastMask)
		}
	})

	t.Run("falling_edge_records_time", func(t *testing.T) {
		s := NewState(p)
		probe := &fakeProbe{ground: false}

		CheckGrounded(&s, p, probe, 0, 0, 3*time.Second)
		if s.IsGrounded {
			t.Fatalf("expected airborne")
		}
		if s.LastTimeGrounded != 3*time.Second {
			t.Fatalf("LastTimeGrounded = %v, want 3s", s.LastTimeGrounded)
		}

		CheckGrounded(&s, p, probe, 0, 0, 4*time.Second)
		if s.LastTimeGrounded != 3*time.Second {
			t.Fatalf("LastTimeGrounded moved while already airborne: %v", s.LastTimeGrounded)
		}
	})
}

func TestCoyoteWindow(t *testing.T) {
	p := testParams()
	s := NewState(p)
	CheckGrounded(&s, p, &fakeProbe{}, 0, 0, time.Second)

	if !s.WithinCoyoteTime(time.Second+50*time.Millisecond, p.RememberGroundedFor) {
		t.Errorf("expected inside grace window")
	}
	if s.WithinCoyoteTime(time.Second+150*time.Millisecond, p.RememberGroundedFor) {
		t.Errorf("expected outside grace window")
	}
}

func TestTryJump(t *testing.T) {
	p := testParams()

	cases := []struct {
		name      string
		jump      float64
		grounded  bool
		jumps     int
		wantFired bool
		wantJumps int
	}{
		{"pressed_grounded", 1, true, 1, true, 0},
		{"pressed_airborne", 1, false, 1, false, 1},
		{"released_grounded", 0, true, 1, false, 1},
		{"clamped_at_zero", 1, true, 0, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState(p)
			s.IsGrounded = c.grounded
			s.AdditionalJumps = c.jumps
			s.Input.Jump = c.jump
			body := &fakeBody{vel: math.Vec2{X: 2, Y: 1}}

			fired := TryJump(&s, p, body)
			if fired != c.wantFired {
				t.Fatalf("fired = %v, want %v", fired, c.wantFired)
			}
			if s.AdditionalJumps != c.wantJumps {
				t.Fatalf("jumps = %d, want %d", s.AdditionalJumps, c.wantJumps)
			}
			if !fired {
				if body.writes != 0 {
					t.Fatalf("velocity written without a jump")
				}
				return
			}
			if body.vel.Y != -p.JumpForce || body.vel.X != 2 {
				t.Fatalf("velocity = %+v, want (2, %v)", body.vel, -p.JumpForce)
			}
			if s.IsGrounded {
				t.Fatalf("grounded must clear after a jump")
			}
		})
	}
}

func TestShapeJumpGravity(t *testing.T) {
	const g, dt = 10.0, 0.5

	cases := []struct {
		name  string
		vel   math.Vec2
		jump  float64
		wantY float64
	}{
		{"falling", math.Vec2{X: 1, Y: 2}, 1, 2 + g*0.05*dt},
		{"rising_released", math.Vec2{X: 1, Y: -2}, 0, -2 + g*0.1*dt},
		{"rising_held", math.Vec2{X: 1, Y: -2}, 1, -2},
		{"at_rest", math.Vec2{X: 1, Y: 0}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ShapeJumpGravity(c.vel, c.jump, g, 1.05, 1.1, dt)
			if diff := got.Y - c.wantY; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("Y = %v, want %v", got.Y, c.wantY)
			}
			if got.X != c.vel.X {
				t.Fatalf("X changed: %v", got.X)
			}
		})
	}
}

func TestMove(t *testing.T) {
	p := testParams()

	t.Run("walk_left", func(t *testing.T) {
		s := NewState(p)
		s.Input.Move = -1
		body := &fakeBody{vel: math.Vec2{Y: 4}}

		Move(&s, p, body)
		if body.vel.X != -p.WalkSpeed || body.vel.Y != 4 {
			t.Fatalf("velocity = %+v", body.vel)
		}
		if !s.Left {
			t.Fatalf("expected facing left")
		}
	})

	t.Run("zero_keeps_facing", func(t *testing.T) {
		s := NewState(p)
		s.Left = true
		body := &fakeBody{vel: math.Vec2{X: 5}}

		Move(&s, p, body)
		if body.vel.X != 0 {
			t.Fatalf("X = %v, want 0", body.vel.X)
		}
		if !s.Left {
			t.Fatalf("facing flipped on zero input")
		}
	})

	t.Run("dashing_defers", func(t *testing.T) {
		s := NewState(p)
		s.Dashing = true
		s.Input.Move = -1
		body := &fakeBody{vel: math.Vec2{X: 7}}

		Move(&s, p, body)
		if body.writes != 0 || s.Left {
			t.Fatalf("Move must not touch velocity or facing while dashing")
		}
	})
}

func TestApplyGearVelocity(t *testing.T) {
	p := testParams()

	cases := []struct {
		name  string
		g     gear.Gear
		left  bool
		wantX float64
	}{
		{"neutral_noop", gear.Neutral, false, 9},
		{"startup_right", gear.Startup, false, 3.0},
		{"cruise_right", gear.Cruise, false, 5.25},
		{"max_left", gear.MaxSpeed, true, -6.9},
		{"ludicrous_left", gear.Ludicrous, true, -9.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState(p)
			s.Gear = c.g
			s.Left = c.left
			body := &fakeBody{vel: math.Vec2{X: 9, Y: -1}}

			ApplyGearVelocity(&s, p, body)
			if diff := body.vel.X - c.wantX; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("X = %v, want %v", body.vel.X, c.wantX)
			}
			if body.vel.Y != -1 {
				t.Fatalf("Y changed: %v", body.vel.Y)
			}
		})
	}
}
