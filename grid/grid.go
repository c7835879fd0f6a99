// SPDX-License-Identifier: MIT

package grid

import "math"

// New creates a width×height Grid with every cell set to Empty.
// Zero dimensions are legal and yield a Grid with no cells.
// Complexity: O(W×H) time and memory.
func New(width, height uint32) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint32, uint64(width)*uint64(height)),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.height }

// Len returns the number of cells, width*height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p addresses a cell of g.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X < g.width && p.Y < g.height
}

// ToIndex converts p to its row-major flat index y*width + x.
// Returns *PositionError wrapping ErrInvalidPosition when p is out of bounds.
// Complexity: O(1).
func (g *Grid) ToIndex(p Position) (int, error) {
	return g.indexOf(opToIndex, p)
}

// indexOf is the single bounds gate shared by every Position-taking method.
// Stage 1 (Validate): x < width && y < height.
// Stage 2 (Execute): compute y*width + x in 64 bits and narrow to int.
func (g *Grid) indexOf(op string, p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, &PositionError{Op: op, Pos: p, Err: ErrInvalidPosition}
	}
	idx := uint64(p.Y)*uint64(g.width) + uint64(p.X)
	if idx > math.MaxInt {
		return 0, &PositionError{Op: op, Pos: p, Err: ErrIndexConversion}
	}

	return int(idx), nil
}

// ToPosition converts a flat index back to (index % width, index / width).
// Returns *IndexError wrapping ErrInvalidIndex unless 0 <= index < Len().
// Complexity: O(1).
func (g *Grid) ToPosition(index int) (Position, error) {
	if index < 0 || index >= len(g.cells) {
		return Position{}, &IndexError{Op: opToPosition, Index: index, Err: ErrInvalidIndex}
	}

	return g.position(index), nil
}

// position decodes an index already known to be in range. A non-empty grid
// has width > 0, so the division is safe.
func (g *Grid) position(index int) Position {
	w := uint64(g.width)
	i := uint64(index)

	return Position{X: uint32(i % w), Y: uint32(i / w)}
}

// Get returns the occupant stored at p.
// Complexity: O(1).
func (g *Grid) Get(p Position) (uint32, error) {
	idx, err := g.indexOf(opGet, p)
	if err != nil {
		return 0, err
	}

	return g.cells[idx], nil
}

// Set writes value into the cell at p. On error the grid is left unchanged.
// Complexity: O(1).
func (g *Grid) Set(p Position, value uint32) error {
	idx, err := g.indexOf(opSet, p)
	if err != nil {
		return err
	}
	g.cells[idx] = value

	return nil
}

// Swap exchanges the occupants of from and to.
// Both positions are validated before either cell is written, so a failure
// never leaves the grid half-swapped. from == to is a no-op.
// Complexity: O(1).
func (g *Grid) Swap(from, to Position) error {
	i, err := g.indexOf(opSwap, from)
	if err != nil {
		return err
	}
	j, err := g.indexOf(opSwap, to)
	if err != nil {
		return err
	}
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]

	return nil
}

// FindEntity returns the position of the first cell, in row-major order,
// whose occupant equals id. The boolean is false when no cell matches.
// Complexity: O(W×H).
func (g *Grid) FindEntity(id uint32) (Position, bool) {
	for i, v := range g.cells {
		if v == id {
			return g.position(i), true
		}
	}

	return Position{}, false
}

// Cells returns a copy of the row-major occupant slice.
func (g *Grid) Cells() []uint32 {
	out := make([]uint32, len(g.cells))
	copy(out, g.cells)

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Cells()}
}
