// Package locomotion implements the player locomotion core: ground sensing,
// jumping, walking, and the gear-based dash. It must have zero dependencies on
// ebiten so it can be driven by tests and headless tools.
package locomotion

import (
	"time"

	"github.com/automoto/gearshift/shared/gear"
)

// LayerMask is the set of collision tags that count as ground.
type LayerMask []string

// Params is the tunable configuration surface. It is built once when the
// player is spawned and treated as read-only afterwards.
type Params struct {
	WalkSpeed              float64
	JumpForce              float64
	DefaultAdditionalJumps int

	FallMultiplier    float64
	LowJumpMultiplier float64
	CrouchMultiplier  float64 // reserved, no crouch movement yet

	CheckGroundRadius   float64
	GroundLayer         LayerMask
	RememberGroundedFor time.Duration

	Gear2Mult float64
	Gear3Mult float64
	Gear4Mult float64
	Gear5Mult float64

	Gear2Tran time.Duration
	Gear3Tran time.Duration
	Gear4Tran time.Duration
}

// Multiplier returns the walk speed multiplier for g. Neutral and unknown
// gears return 0.
func (p *Params) Multiplier(g gear.Gear) float64 {
	switch g {
	case gear.Startup:
		return p.Gear2Mult
	case gear.Cruise:
		return p.Gear3Mult
	case gear.MaxSpeed:
		return p.Gear4Mult
	case gear.Ludicrous:
		return p.Gear5Mult
	}
	return 0
}

// Threshold returns the accumulated dash time that must be exceeded to leave
// g for the next gear. ok is false for gears with no successor.
func (p *Params) Threshold(g gear.Gear) (d time.Duration, ok bool) {
	switch g {
	case gear.Startup:
		return p.Gear2Tran, true
	case gear.Cruise:
		return p.Gear3Tran, true
	case gear.MaxSpeed:
		return p.Gear4Tran, true
	}
	return 0, false
}
