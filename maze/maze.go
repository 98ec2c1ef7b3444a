// Package maze treats a rectangular wall/open grid as a search
// topology. It supports:
//
//   - Construction from an explicit wall mask (New)
//   - Deterministic random generation with a corner-to-corner
//     connectivity guarantee (Generate)
//   - The core.Topology contract: 4-directional unit-cost adjacency
//     over open cells, with wall cells excluded from the node store's
//     traversable view
//
// Cells are addressed either by (x, y) coordinates or by their
// row-major index y*Width + x; both views name the same node.
package maze

import (
	"github.com/pathlab/pathlab/core"
)

// neighborOffsets enumerates the 4-directional moves in a fixed N, E,
// S, W order. The order is part of the determinism contract: neighbor
// arcs are always emitted in this sequence.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Maze is a rectangular grid of open and wall cells. Dimensions and
// walls are immutable once built; only the per-node search scratch
// mutates, and only under a search run. The maze exclusively owns its
// nodes — arcs and parent fields reference them by index only.
type Maze struct {
	width, height int
	wall          []bool      // row-major wall mask
	nodes         []core.Node // row-major node store, walls included
}

// New constructs a Maze from a non-empty, rectangular wall mask:
// cells[y][x] == true marks a wall. The mask is copied, so later
// mutation of the input does not affect the maze.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(W×H).
func New(cells [][]bool) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m := &Maze{
		width:  w,
		height: h,
		wall:   make([]bool, w*h),
		nodes:  make([]core.Node, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := m.Index(x, y)
			m.wall[id] = cells[y][x]
			m.nodes[id] = core.Node{ID: id, X: float64(x), Y: float64(y)}
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether (x, y) lies within the grid boundaries.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps (x, y) to its row-major index y*Width + x.
func (m *Maze) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major index back to (x, y).
func (m *Maze) Coordinate(id int) (x, y int) {
	return id % m.width, id / m.width
}

// IsWall reports whether the cell at (x, y) is a wall. Out-of-bounds
// coordinates count as walls, which lets renderers iterate without
// separate bounds checks.
func (m *Maze) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}

	return m.wall[m.Index(x, y)]
}

// Start returns the row-major index of the top-left cell (0, 0), the
// conventional maze entrance.
func (m *Maze) Start() int { return m.Index(0, 0) }

// Target returns the row-major index of the bottom-right cell, the
// conventional maze exit.
func (m *Maze) Target() int { return m.Index(m.width-1, m.height-1) }

// Order returns the size of the node store (walls included); valid
// indices are [0, Order).
func (m *Maze) Order() int { return len(m.nodes) }

// Node returns the node at a row-major index, or nil when the index is
// out of range or names a wall — walls are addressable cells but never
// traversable members of the topology.
func (m *Maze) Node(id int) *core.Node {
	if id < 0 || id >= len(m.nodes) || m.wall[id] {
		return nil
	}

	return &m.nodes[id]
}

// Neighbors returns the open 4-directionally adjacent cells of an open
// cell, each at unit cost, in N, E, S, W order. Adjacency is computed
// on demand from the grid; nothing is precomputed or cached.
// Complexity: O(1).
func (m *Maze) Neighbors(id int) []core.Arc {
	if m.Node(id) == nil {
		return nil
	}
	x, y := m.Coordinate(id)

	arcs := make([]core.Arc, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !m.InBounds(nx, ny) || m.wall[m.Index(nx, ny)] {
			continue
		}
		arcs = append(arcs, core.Arc{To: m.Index(nx, ny), Cost: 1})
	}

	return arcs
}

// Reachable reports whether open cell b can be reached from open cell a
// through open cells, via BFS flood fill. Non-traversable endpoints are
// never reachable.
//
// Time: O(W×H), Memory: O(W×H).
func (m *Maze) Reachable(a, b int) bool {
	if m.Node(a) == nil || m.Node(b) == nil {
		return false
	}
	if a == b {
		return true
	}

	seen := make([]bool, len(m.nodes))
	queue := []int{a}
	seen[a] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, arc := range m.Neighbors(queue[qi]) {
			if seen[arc.To] {
				continue
			}
			if arc.To == b {
				return true
			}
			seen[arc.To] = true
			queue = append(queue, arc.To)
		}
	}

	return false
}
