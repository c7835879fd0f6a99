// SPDX-License-Identifier: MIT

package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/edbs/grid"
)

// ExampleGrid_Swap places an entity on a 5×6 board and moves it one cell left.
func ExampleGrid_Swap() {
	g := grid.New(5, 6)
	start, to := grid.Pos(4, 5), grid.Pos(3, 5)
	_ = g.Set(start, 1)
	_ = g.Swap(start, to)

	from, _ := g.Get(start)
	at, _ := g.Get(to)
	fmt.Println(from, at)
	fmt.Printf("%q\n", g.Display())
	// Output:
	// 0 1
	// "0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 0 0 \n0 0 0 1 0 \n"
}

// ExampleGrid_FindEntity looks up where entity 3 stands.
func ExampleGrid_FindEntity() {
	g := grid.New(3, 3)
	_ = g.Set(grid.Pos(2, 1), 3)

	if p, ok := g.FindEntity(3); ok {
		fmt.Println("entity 3 at", p)
	}
	if _, ok := g.FindEntity(4); !ok {
		fmt.Println("entity 4 not on the board")
	}
	// Output:
	// entity 3 at (2,1)
	// entity 4 not on the board
}

// ExampleGrid_Set_invalid shows how an out-of-bounds write is reported.
func ExampleGrid_Set_invalid() {
	g := grid.New(2, 2)
	err := g.Set(grid.Pos(2, 0), 1)

	var pe *grid.PositionError
	if errors.As(err, &pe) && errors.Is(err, grid.ErrInvalidPosition) {
		fmt.Println("rejected", pe.Pos)
	}
	// Output:
	// rejected (2,0)
}
