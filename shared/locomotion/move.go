package locomotion

// Move sets horizontal velocity from the move axis at walk speed and updates
// facing. While dashing the gear speed owns horizontal velocity, so nothing
// is written. Dashing here is the value left by the previous tick.
func Move(s *State, p *Params, body Body) {
	if s.Dashing {
		return
	}

	vel := body.Velocity()
	vel.X = s.Input.Move * p.WalkSpeed
	body.SetVelocity(vel)

	if s.Input.Move < 0 {
		s.Left = true
	} else if s.Input.Move > 0 {
		s.Left = false
	}
}
