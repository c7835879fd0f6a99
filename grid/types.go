// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Position is an (x,y) coordinate pair. It is not validated on construction;
// validity is checked only when it addresses a Grid.
type Position struct {
	X, Y uint32
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y uint32) Position {
	return Position{X: x, Y: y}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a fixed width×height board of occupant values.
//   - width, height never change after New.
//   - cells is row-major with len(cells) == width*height.
type Grid struct {
	width, height uint32
	cells         []uint32
}

// Empty is the occupant value of a cell that holds no entity.
const Empty uint32 = 0

// operation tags used in error wrappers
const (
	opToIndex    = "ToIndex"
	opToPosition = "ToPosition"
	opGet        = "Get"
	opSet        = "Set"
	opSwap       = "Swap"
)

var _ fmt.Stringer = (*Grid)(nil)
