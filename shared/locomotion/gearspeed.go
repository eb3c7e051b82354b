package locomotion

import "github.com/automoto/gearshift/shared/gear"

// ApplyGearVelocity overwrites horizontal velocity with the current gear's
// speed in the facing direction. Neutral leaves velocity to Move.
func ApplyGearVelocity(s *State, p *Params, body Body) {
	if s.Gear <= gear.Neutral {
		return
	}

	vel := body.Velocity()
	vel.X = s.Direction() * p.Multiplier(s.Gear) * p.WalkSpeed
	body.SetVelocity(vel)
}
