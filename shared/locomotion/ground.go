package locomotion

import "time"

// CheckGrounded runs the ground overlap query at the sensor point (x, y) and
// updates the grounded bookkeeping. A miss is a normal airborne result.
func CheckGrounded(s *State, p *Params, probe GroundProbe, x, y float64, now time.Duration) bool {
	if probe.OverlapCircle(x, y, p.CheckGroundRadius, p.GroundLayer) {
		s.IsGrounded = true
		s.AdditionalJumps = p.DefaultAdditionalJumps
		return true
	}

	if s.IsGrounded {
		s.LastTimeGrounded = now
	}
	s.IsGrounded = false
	return false
}
