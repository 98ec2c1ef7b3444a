// Package maze_test examples, runnable via "go test -run Example".
package maze_test

import (
	"fmt"

	"github.com/pathlab/pathlab/astar"
	"github.com/pathlab/pathlab/dijkstra"
	"github.com/pathlab/pathlab/maze"
)

// ExampleNew demonstrates routing around an obstacle in a hand-built
// grid: the center of a 3×3 field is walled, so the shortest route
// hugs the top and right edges.
func ExampleNew() {
	// true = wall, false = open.
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

// ExampleGenerate carves a reproducible maze and solves it with both
// algorithms; being a perfect maze, the single corridor route gives
// both searches the same cost.
func ExampleGenerate() {
	m, err := maze.Generate(9, 9, maze.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	aPath, err := astar.Run(m, m.Start(), m.Target())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dPath, err := dijkstra.Run(m, m.Start(), m.Target())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("costs agree:", aPath.Cost == dPath.Cost)
	// Output: costs agree: true
}
