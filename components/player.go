package components

import (
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PlayerData holds the locomotion state of a player entity. State and Params
// are heap allocated so their addresses survive archetype storage moves.
type PlayerData struct {
	State  *locomotion.State
	Params *locomotion.Params

	// GroundSensor is the resolv object used as the broadphase for the
	// ground overlap test. It is repositioned every tick.
	GroundSensor *resolv.Object

	LastShift  locomotion.Shift
	ShiftFlash int // ticks remaining on the HUD shift highlight
}

var Player = donburi.NewComponentType[PlayerData]()
