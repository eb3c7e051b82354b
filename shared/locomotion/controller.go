package locomotion

// Controller drives one player's locomotion each tick.
type Controller struct {
	State  *State
	Params *Params
	Body   Body
	Probe  GroundProbe
	Clock  Clock
}

// NewController wires the collaborators. Missing collaborators are a setup
// bug and panic immediately rather than failing mid-session.
func NewController(state *State, params *Params, body Body, probe GroundProbe, clock Clock) *Controller {
	switch {
	case state == nil:
		panic("locomotion: nil state")
	case params == nil:
		panic("locomotion: nil params")
	case body == nil:
		panic("locomotion: nil body")
	case probe == nil:
		panic("locomotion: nil ground probe")
	case clock == nil:
		panic("locomotion: nil clock")
	}
	return &Controller{
		State:  state,
		Params: params,
		Body:   body,
		Probe:  probe,
		Clock:  clock,
	}
}

// Step runs one tick in a fixed order: input, ground, move, jump, dash, gear
// speed. Move runs before the dash machine and sees last tick's Dashing flag,
// so walk and gear speed lag the dash transition by one tick.
func (c *Controller) Step(in Input, sensorX, sensorY float64) Shift {
	now := c.Clock.Now()

	c.State.Input = in
	CheckGrounded(c.State, c.Params, c.Probe, sensorX, sensorY, now)
	Move(c.State, c.Params, c.Body)
	TryJump(c.State, c.Params, c.Body)
	sh := AdvanceDash(c.State, c.Params, now)
	ApplyGearVelocity(c.State, c.Params, c.Body)

	return sh
}
