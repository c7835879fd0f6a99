// Package edbs is a small board engine for turn-based games: a fixed-size
// grid of entity ids plus a Lua host for game-logic scripts.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/      the board: positions, bounds checks, set/get/swap, entity lookup, rendering
//	dice/      seeded dice rollers injected into game logic
//	script/    Lua script host exposing roll(die)
//	config/    YAML scenarios (board size, placements, swaps, script)
//	world/     mutex-guarded owner of a board that replays scenarios
//	cmd/edbs/  command line entry point
//
// Quick example:
//
//	g := grid.New(5, 6)
//	_ = g.Set(grid.Pos(4, 5), 1)
//	_ = g.Swap(grid.Pos(4, 5), grid.Pos(3, 5))
//	fmt.Print(g)
package edbs
