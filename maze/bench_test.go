package maze_test

import (
	"testing"

	"github.com/pathlab/pathlab/astar"
	"github.com/pathlab/pathlab/dijkstra"
	"github.com/pathlab/pathlab/maze"
)

// BenchmarkAStar_Generated measures A* on a carved 101×101 maze,
// corner to corner. Complexity: O(V log V + E) with V = W×H.
func BenchmarkAStar_Generated(b *testing.B) {
	m, err := maze.Generate(101, 101, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = astar.Run(m, m.Start(), m.Target()); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkDijkstra_Generated measures Dijkstra on the same 101×101 maze,
// corner to corner. Complexity: O(V log V + E) with V = W×H.
func BenchmarkDijkstra_Generated(b *testing.B) {
	m, err := maze.Generate(101, 101, maze.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dijkstra.Run(m, m.Start(), m.Target()); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
