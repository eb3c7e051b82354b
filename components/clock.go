package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the monotonic simulation clock. It only advances while
// gameplay systems run, so pausing does not leak into dash timing.
type ClockData struct {
	Elapsed time.Duration
	Ticks   uint64
}

// Now returns the elapsed simulation time.
func (c *ClockData) Now() time.Duration {
	return c.Elapsed
}

// Advance moves the clock forward by one tick of length dt.
func (c *ClockData) Advance(dt time.Duration) {
	c.Elapsed += dt
	c.Ticks++
}

var Clock = donburi.NewComponentType[ClockData]()
