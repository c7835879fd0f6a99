// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: ". Public operations return the
// sentinels wrapped in *PositionError or *IndexError so callers can both match
// with errors.Is and recover the offending value with errors.As.
var (
	// ErrInvalidPosition is returned when a Position has x >= width or y >= height.
	ErrInvalidPosition = errors.New("grid: invalid position")

	// ErrInvalidIndex is returned when a flat index is outside [0, width*height).
	ErrInvalidIndex = errors.New("grid: index out of range")

	// ErrIndexConversion signals that index arithmetic overflowed the int range.
	// It indicates a defect (absurd dimensions), not a normal-path condition.
	ErrIndexConversion = errors.New("grid: index conversion overflow")
)

// PositionError records the operation and Position that failed validation.
type PositionError struct {
	Op  string   // operation tag, e.g. "Set"
	Pos Position // offending position
	Err error    // ErrInvalidPosition or ErrIndexConversion
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("Grid.%s%s: %v", e.Op, e.Pos, e.Err)
}

func (e *PositionError) Unwrap() error { return e.Err }

// IndexError records the operation and flat index that failed validation.
type IndexError struct {
	Op    string
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Grid.%s(%d): %v", e.Op, e.Index, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }
