package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML view of the locomotion configuration surface. Only keys
// present in the document override the defaults.
type Tuning struct {
	WalkSpeed              *float64       `yaml:"walkSpeed"`
	JumpForce              *float64       `yaml:"jumpForce"`
	DefaultAdditionalJumps *int           `yaml:"defaultAdditionalJumps"`
	FallMultiplier         *float64       `yaml:"fallMultiplier"`
	LowJumpMultiplier      *float64       `yaml:"lowJumpMultiplier"`
	CrouchMultiplier       *float64       `yaml:"crouchMultiplier"`
	CheckGroundRadius      *float64       `yaml:"checkGroundRadius"`
	GroundLayer            []string       `yaml:"groundLayer"`
	RememberGroundedFor    *time.Duration `yaml:"rememberGroundedFor"`

	Gear2Mult *float64 `yaml:"gear2mult"`
	Gear3Mult *float64 `yaml:"gear3mult"`
	Gear4Mult *float64 `yaml:"gear4mult"`
	Gear5Mult *float64 `yaml:"gear5mult"`

	Gear2Tran *time.Duration `yaml:"gear2tran"`
	Gear3Tran *time.Duration `yaml:"gear3tran"`
	Gear4Tran *time.Duration `yaml:"gear4tran"`

	ShapeJumpGravity *bool `yaml:"shapeJumpGravity"`
}

// LoadTuning reads a tuning file and merges it into the global config. The
// globals are left untouched if the file cannot be read, parsed or fails
// validation. Must be called before any scene is built.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}

	var t Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return fmt.Errorf("parse tuning %s: %w", path, err)
	}

	player, ground, gear, physics := Player, Ground, Gear, Physics
	t.apply(&player, &ground, &gear, &physics)

	if err := Validate(player, ground, gear); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}

	Player, Ground, Gear, Physics = player, ground, gear, physics
	return nil
}

func (t *Tuning) apply(player *PlayerConfig, ground *GroundConfig, gear *GearConfig, physics *PhysicsConfig) {
	setFloat(&player.WalkSpeed, t.WalkSpeed)
	setFloat(&player.JumpForce, t.JumpForce)
	if t.DefaultAdditionalJumps != nil {
		player.DefaultAdditionalJumps = *t.DefaultAdditionalJumps
	}
	setFloat(&player.FallMultiplier, t.FallMultiplier)
	setFloat(&player.LowJumpMultiplier, t.LowJumpMultiplier)
	setFloat(&player.CrouchMultiplier, t.CrouchMultiplier)

	setFloat(&ground.CheckRadius, t.CheckGroundRadius)
	if len(t.GroundLayer) > 0 {
		ground.Layer = append([]string(nil), t.GroundLayer...)
	}
	setDuration(&ground.RememberGroundedFor, t.RememberGroundedFor)

	setFloat(&gear.Gear2Mult, t.Gear2Mult)
	setFloat(&gear.Gear3Mult, t.Gear3Mult)
	setFloat(&gear.Gear4Mult, t.Gear4Mult)
	setFloat(&gear.Gear5Mult, t.Gear5Mult)
	setDuration(&gear.Gear2Tran, t.Gear2Tran)
	setDuration(&gear.Gear3Tran, t.Gear3Tran)
	setDuration(&gear.Gear4Tran, t.Gear4Tran)

	if t.ShapeJumpGravity != nil {
		physics.ShapeJumpGravity = *t.ShapeJumpGravity
	}
}

// Validate checks the locomotion surface for values that would make gears
// unreachable or movement nonsensical. The runtime tolerates all of these;
// this only guards files loaded from disk.
func Validate(player PlayerConfig, ground GroundConfig, gear GearConfig) error {
	switch {
	case player.WalkSpeed < 0:
		return errors.New("walkSpeed must not be negative")
	case player.JumpForce < 0:
		return errors.New("jumpForce must not be negative")
	case player.DefaultAdditionalJumps < 0:
		return errors.New("defaultAdditionalJumps must not be negative")
	case ground.CheckRadius <= 0:
		return errors.New("checkGroundRadius must be positive")
	case len(ground.Layer) == 0:
		return errors.New("groundLayer must name at least one tag")
	case gear.Gear2Mult < 0 || gear.Gear3Mult < 0 || gear.Gear4Mult < 0 || gear.Gear5Mult < 0:
		return errors.New("gear multipliers must not be negative")
	case gear.Gear2Tran < 0:
		return errors.New("gear2tran must not be negative")
	case gear.Gear3Tran <= gear.Gear2Tran:
		return fmt.Errorf("gear3tran (%v) must exceed gear2tran (%v)", gear.Gear3Tran, gear.Gear2Tran)
	case gear.Gear4Tran <= gear.Gear3Tran:
		return fmt.Errorf("gear4tran (%v) must exceed gear3tran (%v)", gear.Gear4Tran, gear.Gear3Tran)
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *time.Duration) {
	if v != nil {
		*dst = *v
	}
}
