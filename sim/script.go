package sim

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/automoto/gearshift/shared/locomotion"
	"gopkg.in/yaml.v3"
)

// Script is a scripted input timeline. Segments cover the half-open tick
// range [From, To); ticks not covered by any segment get idle input. When
// segments overlap the later one wins.
type Script struct {
	Ticks    uint64    `yaml:"ticks"`
	Segments []Segment `yaml:"segments"`
}

// Segment holds one input sample for a range of ticks.
type Segment struct {
	From uint64  `yaml:"from"`
	To   uint64  `yaml:"to"`
	Move float64 `yaml:"move"`
	Look float64 `yaml:"look"`
	Jump bool    `yaml:"jump"`
	Dash bool    `yaml:"dash"`
}

// LoadScript reads a YAML script from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects empty scripts and inverted or out of range segments.
func (s *Script) Validate() error {
	if s.Ticks == 0 {
		return errors.New("ticks must be positive")
	}
	for i, seg := range s.Segments {
		if seg.To <= seg.From {
			return fmt.Errorf("segment %d: to (%d) must exceed from (%d)", i, seg.To, seg.From)
		}
		if seg.Move < -1 || seg.Move > 1 || seg.Look < -1 || seg.Look > 1 {
			return fmt.Errorf("segment %d: move and look must be within [-1, 1]", i)
		}
	}
	return nil
}

// InputAt returns the input for tick t (0-based).
func (s *Script) InputAt(t uint64) locomotion.Input {
	var in locomotion.Input
	for _, seg := range s.Segments {
		if t < seg.From || t >= seg.To {
			continue
		}
		in = locomotion.Input{
			Move: seg.Move,
			Look: seg.Look,
			Jump: locomotion.Button(seg.Jump),
			Dash: locomotion.Button(seg.Dash),
		}
	}
	return in
}

// HoldDash is the built-in script: stand still briefly, then hold right and
// dash for the rest of the run.
func HoldDash(ticks uint64) *Script {
	const settle = 10
	return &Script{
		Ticks: ticks,
		Segments: []Segment{
			{From: settle, To: ticks, Move: 1, Dash: true},
		},
	}
}
