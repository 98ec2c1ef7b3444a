package maze

import (
	"math/rand"
)

// defaultSeed is the fixed seed used when callers pass seed==0. The
// value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// latticeStep is the carving stride: rooms sit on even coordinates,
// separated by candidate wall cells on odd coordinates.
const latticeStep = 2

// carveDirs are the lattice moves (two cells per step) in N, E, S, W
// order, shuffled per cell during carving.
var carveDirs = [4][2]int{{0, -latticeStep}, {latticeStep, 0}, {0, latticeStep}, {-latticeStep, 0}}

// Generate carves a rows×cols maze with the recursive-backtracker
// algorithm. Rooms live on even (x, y) coordinates and the walls
// between them are knocked out as the carver visits every room, which
// yields a perfect maze: every room — the top-left entrance and
// bottom-right exit included — is connected to every other by exactly
// one corridor route. That is the connectivity guarantee searches rely
// on.
//
// rows and cols must be odd and ≥ 3 so the room lattice meets all four
// borders; anything else returns ErrBadDimensions.
//
// Determinism: identical (rows, cols, seed) triples produce identical
// mazes; seed 0 resolves to the fixed default seed.
//
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, opts ...Option) (*Maze, error) {
	// 1) Resolve configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate lattice-expressible dimensions (fail fast; no partial work).
	if rows < 3 || cols < 3 || rows%2 == 0 || cols%2 == 0 {
		return nil, ErrBadDimensions
	}

	// 3) Deterministic RNG; seed-0 policy keeps the zero value useful.
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// 4) Start from all walls; carving opens rooms and passages.
	cells := make([][]bool, rows)
	for y := range cells {
		cells[y] = make([]bool, cols)
		for x := range cells[y] {
			cells[y][x] = true
		}
	}

	// 5) Depth-first carving over the room lattice with an explicit
	//    stack. Each step opens the wall between the current room and a
	//    randomly chosen unvisited lattice neighbor.
	roomsX, roomsY := (cols+1)/2, (rows+1)/2
	visited := make([]bool, roomsX*roomsY)
	roomIdx := func(x, y int) int { return (y/latticeStep)*roomsX + x/latticeStep }

	stack := [][2]int{{0, 0}}
	cells[0][0] = false
	visited[roomIdx(0, 0)] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		x, y := cur[0], cur[1]

		// Collect unvisited lattice neighbors.
		var next [][2]int
		for _, d := range carveDirs {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
				continue
			}
			if !visited[roomIdx(nx, ny)] {
				next = append(next, [2]int{nx, ny})
			}
		}

		// Dead end: retreat.
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// Open the passage and the chosen room, then descend.
		choice := next[rng.Intn(len(next))]
		nx, ny := choice[0], choice[1]
		cells[(y+ny)/2][(x+nx)/2] = false
		cells[ny][nx] = false
		visited[roomIdx(nx, ny)] = true
		stack = append(stack, choice)
	}

	return New(cells)
}
