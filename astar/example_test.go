// Package astar_test examples, runnable via "go test -run Example".
package astar_test

import (
	"fmt"

	"github.com/pathlab/pathlab/astar"
	"github.com/pathlab/pathlab/core"
	"github.com/pathlab/pathlab/maze"
)

// ExampleRun routes across a 3×3 grid whose center is walled. The
// Euclidean heuristic pulls the search along the top edge, and the
// (f, h) tie-break makes the returned route reproducible.
func ExampleRun() {
	m, err := maze.New([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := astar.Run(m, m.Start(), m.Target())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, n := range path.Nodes {
		x, y := m.Coordinate(n.ID)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Printf("cost=%.0f\n", path.Cost)
	// Output: (0,0) (1,0) (2,0) (2,1) (2,2) cost=4
}

// ExampleRun_noPath shows the defensive failure mode: a target sealed
// off by walls yields core.ErrNoPath instead of a panic or an empty
// success.
func ExampleRun_noPath() {
	m, err := maze.New([][]bool{
		{false, false, false},
		{false, false, true},
		{false, true, false},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = astar.Run(m, m.Start(), m.Target())
	fmt.Println(err == core.ErrNoPath)
	// Output: true
}
