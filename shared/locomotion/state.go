package locomotion

import (
	"time"

	"github.com/automoto/gearshift/shared/gear"
	"github.com/yohamta/donburi/features/math"
)

// Input is the normalised per-tick input sample.
type Input struct {
	Move float64 // [-1, 1]
	Jump float64 // > 0 while pressed
	Look float64 // [-1, 1], not used by the core
	Dash float64 // nonzero while held
}

// Body owns the rigid-body velocity. Y grows downward.
type Body interface {
	Velocity() math.Vec2
	SetVelocity(v math.Vec2)
}

// GroundProbe answers whether a circle overlaps any geometry carrying one of
// the mask tags.
type GroundProbe interface {
	OverlapCircle(x, y, radius float64, mask LayerMask) bool
}

// Clock is a monotonic simulation clock.
type Clock interface {
	Now() time.Duration
}

// State is the mutable per-player locomotion state.
type State struct {
	Input Input

	IsGrounded       bool
	LastTimeGrounded time.Duration
	AdditionalJumps  int

	Dashing          bool
	Gear             gear.Gear
	GearTranTime     time.Duration
	LastRecordedTime time.Duration

	Left bool
}

// NewState returns the spawn state: grounded, neutral gear, facing right.
func NewState(p *Params) State {
	return State{
		IsGrounded:      true,
		AdditionalJumps: p.DefaultAdditionalJumps,
		Gear:            gear.Neutral,
	}
}

// WithinCoyoteTime reports whether now is inside the grace window after the
// player last left the ground. Always true while grounded.
func (s *State) WithinCoyoteTime(now, rememberFor time.Duration) bool {
	if s.IsGrounded {
		return true
	}
	return now-s.LastTimeGrounded <= rememberFor
}

// Direction is -1 when facing left and 1 otherwise.
func (s *State) Direction() float64 {
	if s.Left {
		return -1
	}
	return 1
}

func (s *State) resetDash() {
	s.Dashing = false
	s.Gear = gear.Neutral
	s.GearTranTime = 0
}
