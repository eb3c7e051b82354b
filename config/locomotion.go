package config

import (
	"github.com/automoto/gearshift/shared/locomotion"
	"github.com/automoto/gearshift/shared/physics"
)

// LocomotionParams builds a controller configuration from the current
// globals. Each call returns a fresh copy so one player's params can never be
// changed through another's.
func LocomotionParams() *locomotion.Params {
	return &locomotion.Params{
		WalkSpeed:              Player.WalkSpeed,
		JumpForce:              Player.JumpForce,
		DefaultAdditionalJumps: Player.DefaultAdditionalJumps,
		FallMultiplier:         Player.FallMultiplier,
		LowJumpMultiplier:      Player.LowJumpMultiplier,
		CrouchMultiplier:       Player.CrouchMultiplier,

		CheckGroundRadius:   Ground.CheckRadius,
		GroundLayer:         append(locomotion.LayerMask(nil), Ground.Layer...),
		RememberGroundedFor: Ground.RememberGroundedFor,

		Gear2Mult: Gear.Gear2Mult,
		Gear3Mult: Gear.Gear3Mult,
		Gear4Mult: Gear.Gear4Mult,
		Gear5Mult: Gear.Gear5Mult,

		Gear2Tran: Gear.Gear2Tran,
		Gear3Tran: Gear.Gear3Tran,
		Gear4Tran: Gear.Gear4Tran,
	}
}

// PhysicsSettings returns the world integration constants.
func PhysicsSettings() physics.Settings {
	return physics.Settings{
		Gravity:            Physics.Gravity,
		MaxFallSpeed:       Physics.MaxFallSpeed,
		VerticalSpeedClamp: Physics.VerticalSpeedClamp,
	}
}
