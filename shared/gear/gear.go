// Package gear defines the discrete dash gears shared by the locomotion core,
// the HUD and the tuning loader. It must stay free of ebiten and ECS imports.
package gear

import "fmt"

// Gear is a stage of the dash acceleration state machine. The numeric values
// are part of the contract: thresholds and multipliers are indexed by them.
type Gear int

const (
	Neutral   Gear = iota + 1 // not dashing
	Startup                   // dash warming up
	Cruise                    // running speed
	MaxSpeed                  // super dash
	Ludicrous                 // faster than max, hard to control

	Count = int(Ludicrous)
)

var names = [...]string{
	Neutral:   "neutral",
	Startup:   "startup",
	Cruise:    "cruise",
	MaxSpeed:  "max",
	Ludicrous: "ludicrous",
}

func (g Gear) String() string {
	if !g.Valid() {
		return fmt.Sprintf("gear(%d)", int(g))
	}
	return names[g]
}

// Valid reports whether g is one of the five defined gears.
func (g Gear) Valid() bool {
	return g >= Neutral && g <= Ludicrous
}

// Next returns the gear one step above g. Ludicrous has no successor and is
// returned unchanged.
func (g Gear) Next() Gear {
	if g >= Ludicrous {
		return Ludicrous
	}
	return g + 1
}
