package physics

import (
	"testing"

	"github.com/solarlune/resolv"
)

func newTestSpace(objs ...*resolv.Object) *resolv.Space {
	space := resolv.NewSpace(640, 320, 16, 16)
	space.Add(objs...)
	return space
}

func newPlayerObject(space *resolv.Space, x, y float64) *resolv.Object {
	obj := resolv.NewObject(x, y, 16, 32, "Player")
	space.Add(obj)
	return obj
}

func TestApplyGravity(t *testing.T) {
	b := NewBody(Settings{Gravity: 0.5, MaxFallSpeed: 1})

	b.ApplyGravity()
	if b.SpeedY != 0.5 {
		t.Fatalf("SpeedY = %v, want 0.5", b.SpeedY)
	}
	b.ApplyGravity()
	b.ApplyGravity()
	if b.SpeedY != 1 {
		t.Errorf("SpeedY = %v, want clamped to 1", b.SpeedY)
	}
}

func TestLandOnFloor(t *testing.T) {
	space := newTestSpace(resolv.NewObject(0, 288, 640, 32, TagSolid))
	obj := newPlayerObject(space, 100, 250) // feet at 282, 6px above the floor

	b := Body{SpeedY: 10}
	MoveAndCollide(&b, obj, 16)

	if obj.Y != 256 {
		t.Errorf("Y = %v, want 256 (standing on floor)", obj.Y)
	}
	if b.SpeedY != 0 || b.OnGround == nil {
		t.Errorf("SpeedY = %v, OnGround = %v; want 0 and the floor", b.SpeedY, b.OnGround)
	}

	// At rest the body stays grounded without sinking.
	obj.Update()
	b.SpeedY = 0
	MoveAndCollide(&b, obj, 16)
	if obj.Y != 256 || b.OnGround == nil {
		t.Errorf("resting: Y = %v, OnGround = %v", obj.Y, b.OnGround)
	}
}

func TestWallStopsHorizontal(t *testing.T) {
	space := newTestSpace(
		resolv.NewObject(0, 288, 640, 32, TagSolid),
		resolv.NewObject(200, 200, 16, 88, TagSolid),
	)
	obj := newPlayerObject(space, 180, 256)

	b := Body{SpeedX: 9}
	MoveAndCollide(&b, obj, 16)

	if obj.X != 184 {
		t.Errorf("X = %v, want 184 (flush with wall)", obj.X)
	}
	if b.SpeedX != 0 {
		t.Errorf("SpeedX = %v, want 0 after hitting the wall", b.SpeedX)
	}

	// Moving away is unobstructed.
	obj.Update()
	b.SpeedX = -3
	MoveAndCollide(&b, obj, 16)
	if obj.X != 181 {
		t.Errorf("X = %v, want 181", obj.X)
	}
}

func TestCeilingStopsJump(t *testing.T) {
	space := newTestSpace(resolv.NewObject(0, 100, 640, 16, TagSolid))
	obj := newPlayerObject(space, 100, 120)

	b := Body{SpeedY: -6}
	MoveAndCollide(&b, obj, 16)

	if obj.Y != 116 {
		t.Errorf("Y = %v, want 116 (head under ceiling)", obj.Y)
	}
	if b.SpeedY != 0 {
		t.Errorf("SpeedY = %v, want 0", b.SpeedY)
	}
}

func TestOneWayPlatform(t *testing.T) {
	space := newTestSpace(resolv.NewObject(80, 200, 96, 8, TagPlatform))

	t.Run("jump through from below", func(t *testing.T) {
		obj := newPlayerObject(space, 100, 205)
		b := Body{SpeedY: -6}
		MoveAndCollide(&b, obj, 16)
		if obj.Y != 199 {
			t.Errorf("Y = %v, want 199", obj.Y)
		}
	})

	t.Run("land from above", func(t *testing.T) {
		obj := newPlayerObject(space, 100, 165)
		b := Body{SpeedY: 4}
		MoveAndCollide(&b, obj, 16)
		if obj.Y != 168 || b.OnGround == nil {
			t.Errorf("Y = %v, OnGround = %v; want 168 on the platform", obj.Y, b.OnGround)
		}
	})

	t.Run("beside the platform falls freely", func(t *testing.T) {
		obj := newPlayerObject(space, 200, 165)
		b := Body{SpeedY: 4}
		MoveAndCollide(&b, obj, 16)
		if obj.Y != 169 || b.OnGround != nil {
			t.Errorf("Y = %v, OnGround = %v; want 169 airborne", obj.Y, b.OnGround)
		}
	})
}

func TestVerticalClamp(t *testing.T) {
	space := newTestSpace()
	obj := newPlayerObject(space, 100, 0)

	b := Body{SpeedY: 40}
	MoveAndCollide(&b, obj, 16)
	if obj.Y != 16 {
		t.Errorf("Y = %v, want 16", obj.Y)
	}
}
