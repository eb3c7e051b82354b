package locomotion

import "github.com/yohamta/donburi/features/math"

// TryJump applies the jump impulse when jump is pressed on the ground. The
// grounded flag is cleared so a second jump in the same tick is impossible.
func TryJump(s *State, p *Params, body Body) bool {
	if s.Input.Jump <= 0 || !s.IsGrounded {
		return false
	}

	vel := body.Velocity()
	vel.Y = -p.JumpForce
	body.SetVelocity(vel)

	if s.AdditionalJumps > 0 {
		s.AdditionalJumps--
	}
	s.IsGrounded = false
	return true
}

// ShapeJumpGravity adds extra gravity to make falls heavier and to cut a jump
// short when the button is released while rising. gravity is the downward
// acceleration per unit of dt. Velocity is only ever added to.
func ShapeJumpGravity(vel math.Vec2, jumpInput, gravity, fallMultiplier, lowJumpMultiplier, dt float64) math.Vec2 {
	switch {
	case vel.Y > 0:
		vel.Y += gravity * (fallMultiplier - 1) * dt
	case vel.Y < 0 && jumpInput <= 0:
		vel.Y += gravity * (lowJumpMultiplier - 1) * dt
	}
	return vel
}
