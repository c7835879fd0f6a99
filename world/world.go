// SPDX-License-Identifier: MIT

// Package world owns a grid.Grid and serializes every access to it behind a
// single sync.RWMutex, so a board can be shared between goroutines.
//
// It is also the layer that decides what to do with board errors: Apply logs
// an out-of-bounds move and carries on, anything else aborts.
package world

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/katalvlaran/edbs/config"
	"github.com/katalvlaran/edbs/grid"
)

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used to report rejected moves.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// World is a mutex-guarded board.
//   - mu guards board; readers take RLock, writers Lock.
//   - The *grid.Grid is never handed out; Snapshot returns a copy.
type World struct {
	mu     sync.RWMutex
	board  *grid.Grid
	logger *log.Logger
}

// New creates a World over an empty width×height board.
func New(width, height uint32, opts ...Option) *World {
	w := &World{board: grid.New(width, height), logger: log.Default()}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// FromScenario builds a World sized by s and applies its moves.
func FromScenario(s *config.Scenario, opts ...Option) (*World, error) {
	w := New(s.Width, s.Height, opts...)
	if err := w.Apply(s); err != nil {
		return nil, err
	}

	return w, nil
}

// Place puts entity id on the cell at p.
func (w *World) Place(p grid.Position, id uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.board.Set(p, id)
}

// Clear empties the cell at p.
func (w *World) Clear(p grid.Position) error {
	return w.Place(p, grid.Empty)
}

// Move swaps the occupants of from and to.
func (w *World) Move(from, to grid.Position) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.board.Swap(from, to)
}

// At returns the occupant at p.
func (w *World) At(p grid.Position) (uint32, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.board.Get(p)
}

// Locate returns where entity id stands, if anywhere.
func (w *World) Locate(id uint32) (grid.Position, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.board.FindEntity(id)
}

// Snapshot returns a deep copy of the board.
func (w *World) Snapshot() *grid.Grid {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.board.Clone()
}

// String renders the board.
func (w *World) String() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.board.Display()
}

// Apply replays the placements and then the swaps of s.
// A move rejected with grid.ErrInvalidPosition is logged and skipped; any
// other error stops the replay and is returned.
func (w *World) Apply(s *config.Scenario) error {
	for i, p := range s.Placements {
		if err := w.tolerate(w.Place(p.Position(), p.Entity)); err != nil {
			return fmt.Errorf("placement %d: %w", i, err)
		}
	}
	for i, sw := range s.Swaps {
		if err := w.tolerate(w.Move(sw.From.Position(), sw.To.Position())); err != nil {
			return fmt.Errorf("swap %d: %w", i, err)
		}
	}

	return nil
}

// tolerate swallows invalid-position errors after logging the offending
// position, and passes every other error through.
func (w *World) tolerate(err error) error {
	var pe *grid.PositionError
	if errors.As(err, &pe) && errors.Is(err, grid.ErrInvalidPosition) {
		w.logger.Printf("world: skipping %s at %s: %v", pe.Op, pe.Pos, pe.Err)
		return nil
	}

	return err
}
