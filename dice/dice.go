// SPDX-License-Identifier: MIT

// Package dice rolls uniform integers in [1, die] from an explicitly injected
// random source, so game logic that consumes rolls stays reproducible.
package dice

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidDie is returned when a die has fewer than one face.
var ErrInvalidDie = errors.New("dice: die must have at least one face")

// Roller produces a uniformly random integer in [1, die].
type Roller interface {
	Roll(die int) (int, error)
}

// RandRoller is a Roller backed by a math/rand/v2 generator.
// It is not safe for concurrent use.
type RandRoller struct {
	r *rand.Rand
}

var _ Roller = (*RandRoller)(nil)

// NewRoller wraps src. The caller owns src and decides how it is seeded.
func NewRoller(src rand.Source) *RandRoller {
	return &RandRoller{r: rand.New(src)}
}

// NewSeededRoller returns a RandRoller over a PCG source seeded with seed.
// Equal seeds produce equal roll sequences.
func NewSeededRoller(seed uint64) *RandRoller {
	return NewRoller(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Roll returns an integer in [1, die].
func (d *RandRoller) Roll(die int) (int, error) {
	if die < 1 {
		return 0, fmt.Errorf("roll d%d: %w", die, ErrInvalidDie)
	}

	return d.r.IntN(die) + 1, nil
}

// Fixed is a Roller that replays a fixed sequence of results, cycling when
// exhausted. Results larger than the die are clamped to die.
type Fixed []int

// Roll returns the next scripted result.
func (f *Fixed) Roll(die int) (int, error) {
	if die < 1 {
		return 0, fmt.Errorf("roll d%d: %w", die, ErrInvalidDie)
	}
	if len(*f) == 0 {
		return 1, nil
	}
	v := (*f)[0]
	*f = append((*f)[1:], v)
	if v > die {
		v = die
	}
	if v < 1 {
		v = 1
	}

	return v, nil
}
