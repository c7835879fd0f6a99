// SPDX-License-Identifier: MIT

// Package grid is a fixed-size 2D board of occupant values addressed either by
// (x,y) Position or by flat row-major index.
//
// What:
//
//   - Grid stores one uint32 occupant per cell; 0 means empty, any other value
//     is an entity identifier.
//   - Dimensions are fixed at construction. There is no resizing.
//   - Every Position-taking operation passes through a single bounds gate
//     (ToIndex) and reports ErrInvalidPosition instead of panicking.
//   - Display renders rows of space-terminated decimal values, one line per row.
//
// Layout:
//
//	index = y*width + x
//	x     = index % width
//	y     = index / width
//
// Errors:
//
//   - ErrInvalidPosition: x >= width or y >= height (wrapped in *PositionError).
//   - ErrInvalidIndex: flat index outside [0, width*height) (wrapped in *IndexError).
//   - ErrIndexConversion: y*width+x does not fit an int; only reachable with
//     pathological dimensions.
//
// FindEntity reports "not found" through its boolean result, never as an error.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. The owner serializes access
//	(see package world for a mutex-guarded owner).
//
// Complexity:
//
//   - New: O(W×H). Get/Set/Swap/ToIndex/ToPosition: O(1).
//   - FindEntity, Display, Clone: O(W×H).
package grid
