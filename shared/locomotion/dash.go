package locomotion

import (
	"time"

	"github.com/automoto/gearshift/shared/gear"
)

// Shift records a gear transition produced by a single AdvanceDash call.
// The zero value means the gear did not change.
type Shift struct {
	From gear.Gear
	To   gear.Gear
}

// Changed reports whether the tick moved the gear.
func (s Shift) Changed() bool {
	return s.From != s.To
}

// Up reports whether the gear increased.
func (s Shift) Up() bool {
	return s.To > s.From
}

// AdvanceDash runs one tick of the gear state machine.
//
// A dash episode lasts while the player is grounded and holding dash. Within
// an episode the accumulator only grows and each threshold check fires from
// its immediate predecessor gear, so gears never skip or regress. Releasing
// dash or leaving the ground ends the episode and resets to Neutral at once.
func AdvanceDash(s *State, p *Params, now time.Duration) Shift {
	from := s.Gear

	if !s.IsGrounded {
		if s.Dashing {
			s.resetDash()
		}
		return shift(from, s.Gear)
	}

	if s.Input.Dash == 0 {
		s.resetDash()
		return shift(from, s.Gear)
	}

	if !s.Dashing {
		s.Dashing = true
		s.Gear = gear.Startup
		s.GearTranTime = 0
		s.LastRecordedTime = now
	} else {
		if dt := now - s.LastRecordedTime; dt > 0 {
			s.GearTranTime += dt
		}
		s.LastRecordedTime = now
	}

	for {
		limit, ok := p.Threshold(s.Gear)
		if !ok || s.GearTranTime <= limit {
			break
		}
		s.Gear = s.Gear.Next()
	}

	return shift(from, s.Gear)
}

func shift(from, to gear.Gear) Shift {
	if from == to {
		return Shift{}
	}
	return Shift{From: from, To: to}
}
