// SPDX-License-Identifier: MIT

// Package config loads board scenarios from YAML: the board size, the
// entities placed on it, the swaps to replay, and the script to run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edbs/grid"
)

// DefaultScript is the script path used when a scenario does not name one.
const DefaultScript = "./game/entities/Archer.lua"

// ErrInvalidScenario is returned when a scenario fails validation.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Point is a YAML-friendly board coordinate.
type Point struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

// Position converts p to a grid.Position.
func (p Point) Position() grid.Position {
	return grid.Pos(p.X, p.Y)
}

// Placement puts Entity on the cell at (X, Y).
type Placement struct {
	X      uint32 `yaml:"x"`
	Y      uint32 `yaml:"y"`
	Entity uint32 `yaml:"entity"`
}

// Position returns the cell addressed by the placement.
func (p Placement) Position() grid.Position {
	return grid.Pos(p.X, p.Y)
}

// Swap exchanges the occupants of From and To.
type Swap struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Scenario describes a board and the moves applied to it.
type Scenario struct {
	Width      uint32      `yaml:"width"`
	Height     uint32      `yaml:"height"`
	Seed       uint64      `yaml:"seed"`   // 0 seeds from the clock
	Script     string      `yaml:"script"` // defaults to DefaultScript
	Placements []Placement `yaml:"placements"`
	Swaps      []Swap      `yaml:"swaps"`
}

// Default returns the built-in scenario: a 5×6 board with entity 1 placed at
// (4,5) and then moved to (3,5).
func Default() *Scenario {
	return &Scenario{
		Width:      5,
		Height:     6,
		Script:     DefaultScript,
		Placements: []Placement{{X: 4, Y: 5, Entity: 1}},
		Swaps:      []Swap{{From: Point{X: 4, Y: 5}, To: Point{X: 3, Y: 5}}},
	}
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a YAML scenario, applies defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	applyDefaults(&s)
	if err := validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

func applyDefaults(s *Scenario) {
	if s.Script == "" {
		s.Script = DefaultScript
	}
}

// validate checks the scenario shape. Coordinates are deliberately not
// bounds-checked here: the board reports those when the moves are applied.
func validate(s *Scenario) error {
	if s.Width == 0 || s.Height == 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidScenario, s.Width, s.Height)
	}
	for i, p := range s.Placements {
		if p.Entity == grid.Empty {
			return fmt.Errorf("%w: placement %d at %s: entity id must be non-zero", ErrInvalidScenario, i, p.Position())
		}
	}

	return nil
}
