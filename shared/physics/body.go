// Package physics moves axis-aligned bodies through a resolv space. It has no
// dependencies on ebiten so the game and the headless simulator share it.
package physics

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Resolv tags understood by the collision resolver.
const (
	TagSolid    = "solid"
	TagPlatform = "platform"
)

// Settings are the world-wide integration constants.
type Settings struct {
	Gravity            float64 // pixels per tick squared
	MaxFallSpeed       float64 // 0 disables the clamp
	VerticalSpeedClamp float64 // hard clamp applied before collision checks
}

// Body is a rigid body. Speeds are in pixels per tick with Y growing downward.
type Body struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object // set by MoveAndCollide, nil while airborne
}

// NewBody returns a body at rest using the world settings.
func NewBody(s Settings) Body {
	return Body{Gravity: s.Gravity, MaxFallSpeed: s.MaxFallSpeed}
}

// Velocity returns the current velocity.
func (b *Body) Velocity() math.Vec2 {
	return math.Vec2{X: b.SpeedX, Y: b.SpeedY}
}

// SetVelocity replaces both velocity components.
func (b *Body) SetVelocity(v math.Vec2) {
	b.SpeedX = v.X
	b.SpeedY = v.Y
}

// ApplyGravity integrates one tick of gravity and clamps the fall speed.
func (b *Body) ApplyGravity() {
	b.SpeedY += b.Gravity
	if b.MaxFallSpeed > 0 && b.SpeedY > b.MaxFallSpeed {
		b.SpeedY = b.MaxFallSpeed
	}
}
