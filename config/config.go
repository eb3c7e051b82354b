package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains the locomotion tuning for the player character.
// Speeds are in pixels per tick.
type PlayerConfig struct {
	// Movement
	WalkSpeed float64
	JumpForce float64

	// Jumping
	DefaultAdditionalJumps int
	FallMultiplier         float64 // extra gravity while descending
	LowJumpMultiplier      float64 // extra gravity when jump is released while rising
	CrouchMultiplier       float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// GroundConfig describes the ground sensor circle under the player's feet.
type GroundConfig struct {
	CheckRadius         float64
	OffsetX             float64 // relative to the bottom-centre of the collider
	OffsetY             float64
	Layer               []string // resolv tags that count as ground
	RememberGroundedFor time.Duration
}

// GearConfig contains the dash gear multipliers and shift thresholds.
// A threshold is the accumulated dash time that must be exceeded to leave
// that gear.
type GearConfig struct {
	Gear2Mult float64
	Gear3Mult float64
	Gear4Mult float64
	Gear5Mult float64

	Gear2Tran time.Duration
	Gear3Tran time.Duration
	Gear4Tran time.Duration

	// Player tint per gear, index 1..5
	Colors [6]color.RGBA
}

// PhysicsConfig contains the demo rigid-body settings.
type PhysicsConfig struct {
	Gravity            float64 // pixels per tick squared
	MaxFallSpeed       float64
	VerticalSpeedClamp float64 // hard clamp used during collision resolution
	ShapeJumpGravity   bool    // apply fall / low-jump multipliers
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// PlatformConfig contains floating platform movement settings
type PlatformConfig struct {
	Travel   float64 // pixels
	Duration float32 // seconds per leg
}

// UIConfig contains HUD and overlay colors
type UIConfig struct {
	BackgroundColor color.RGBA
	SolidColor      color.RGBA
	PlatformColor   color.RGBA
	HUDTextColor    color.RGBA
	HUDMargin       int
	HUDLineHeight   int
	PauseOverlay    color.RGBA
	PauseTextColor  color.RGBA
	ShiftFlashTicks int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay   bool // collision objects and ground sensor
	LogGearShifts bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Ground GroundConfig
var Gear GearConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Platform PlatformConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		WalkSpeed: 3.0,
		JumpForce: 6.0,

		DefaultAdditionalJumps: 1,
		FallMultiplier:         1.05,
		LowJumpMultiplier:      1.1,
		CrouchMultiplier:       0.75,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	Ground = GroundConfig{
		CheckRadius:         2.0,
		OffsetX:             0,
		OffsetY:             0,
		Layer:               []string{"solid", "platform"},
		RememberGroundedFor: 100 * time.Millisecond,
	}

	Gear = GearConfig{
		Gear2Mult: 1.00,
		Gear3Mult: 1.75,
		Gear4Mult: 2.30,
		Gear5Mult: 3.00,

		Gear2Tran: 1200 * time.Millisecond,
		Gear3Tran: 2800 * time.Millisecond,
		Gear4Tran: 4000 * time.Millisecond,

		Colors: [6]color.RGBA{
			1: White,
			2: LightBlue,
			3: Yellow,
			4: Orange,
			5: Magenta,
		},
	}

	Physics = PhysicsConfig{
		Gravity:            0.2,
		MaxFallSpeed:       10.0,
		VerticalSpeedClamp: 16.0,
		ShapeJumpGravity:   false,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.1,
	}

	Platform = PlatformConfig{
		Travel:   96,
		Duration: 2,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		SolidColor:      Grey,
		PlatformColor:   color.RGBA{R: 60, G: 100, B: 160, A: 255},
		HUDTextColor:    White,
		HUDMargin:       8,
		HUDLineHeight:   14,
		PauseOverlay:    BlackOverlay,
		PauseTextColor:  Orange,
		ShiftFlashTicks: 20,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay:   false,
		LogGearShifts: false,
	}
}
