// Package spatial treats a set of positioned nodes with explicit
// neighbor lists as a search topology. Arc costs are planar Euclidean
// distances, which also makes core.Euclidean an admissible A*
// heuristic on these graphs.
package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/pathlab/pathlab/core"
)

// R-tree tuning: 2-D entries, branching factors as used for the
// point-index workloads this package serves.
const (
	rtreeDim = 2
	rtreeMin = 25
	rtreeMax = 50

	// pointTolerance pads point bounding boxes; rtreego requires
	// non-degenerate rectangles.
	pointTolerance = 1e-9
)

// nodeEntry adapts one graph node to rtreego.Spatial for indexing.
type nodeEntry struct {
	id  int
	loc rtreego.Point
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.loc.ToRect(pointTolerance)
}

// Graph is an ordered collection of positioned nodes with precomputed
// neighbor lists. The graph exclusively owns its nodes; arcs and the
// search scratch's parent field reference them by index only, so the
// whole structure can be discarded as a unit and replaced by the next
// "generate" call.
type Graph struct {
	nodes []core.Node
	pts   []orb.Point
	adj   [][]core.Arc
	tree  *rtreego.Rtree
}

// New builds a graph over the given points with no connections yet.
// Node IDs follow the input order; wire arcs with Connect.
// Complexity: O(n log n) for the index build.
func New(points []orb.Point) *Graph {
	g := &Graph{
		nodes: make([]core.Node, len(points)),
		pts:   make([]orb.Point, len(points)),
		adj:   make([][]core.Arc, len(points)),
		tree:  rtreego.NewTree(rtreeDim, rtreeMin, rtreeMax),
	}
	for i, p := range points {
		g.nodes[i] = core.Node{ID: i, X: p.X(), Y: p.Y()}
		g.pts[i] = p
		g.tree.Insert(&nodeEntry{id: i, loc: rtreego.Point{p.X(), p.Y()}})
	}

	return g
}

// Connect links nodes i and j with a symmetric arc whose cost is their
// Euclidean distance. Reconnecting an existing pair is a no-op, so
// generators can connect liberally without bookkeeping.
// Returns ErrNodeIndex or ErrSelfEdge on invalid arguments.
func (g *Graph) Connect(i, j int) error {
	if i < 0 || i >= len(g.nodes) || j < 0 || j >= len(g.nodes) {
		return ErrNodeIndex
	}
	if i == j {
		return ErrSelfEdge
	}
	if g.linked(i, j) {
		return nil
	}

	cost := planar.Distance(g.pts[i], g.pts[j])
	g.adj[i] = append(g.adj[i], core.Arc{To: j, Cost: cost})
	g.adj[j] = append(g.adj[j], core.Arc{To: i, Cost: cost})

	return nil
}

// linked reports whether an arc i→j already exists.
func (g *Graph) linked(i, j int) bool {
	for _, a := range g.adj[i] {
		if a.To == j {
			return true
		}
	}

	return false
}

// Point returns the position of node i. Panics on out-of-range i the
// way slice indexing does; callers hold indices they obtained from the
// graph itself.
func (g *Graph) Point(i int) orb.Point { return g.pts[i] }

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Node returns the node at an index, or nil when out of range. Every
// spatial node is traversable.
func (g *Graph) Node(id int) *core.Node {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}

	return &g.nodes[id]
}

// Neighbors returns the precomputed arcs of node id, in the order the
// connections were made.
func (g *Graph) Neighbors(id int) []core.Arc {
	if id < 0 || id >= len(g.adj) {
		return nil
	}

	return g.adj[id]
}

// Nearest returns the index of the node closest to p, or -1 for an
// empty graph. Used to anchor route endpoints at arbitrary positions —
// e.g. the node nearest the top-left corner as a start.
// Complexity: O(log n) via the R-tree.
func (g *Graph) Nearest(p orb.Point) int {
	if len(g.nodes) == 0 {
		return -1
	}
	found := g.tree.NearestNeighbor(rtreego.Point{p.X(), p.Y()})
	if found == nil {
		return -1
	}

	return found.(*nodeEntry).id
}

// within returns the indices of all nodes inside radius r of node i,
// excluding i itself, sorted ascending for deterministic wiring.
func (g *Graph) within(i int, r float64) []int {
	center := rtreego.Point{g.pts[i].X(), g.pts[i].Y()}
	box, err := rtreego.NewRect(
		rtreego.Point{center[0] - r, center[1] - r},
		[]float64{2 * r, 2 * r},
	)
	if err != nil {
		return nil
	}

	var ids []int
	for _, item := range g.tree.SearchIntersect(box) {
		id := item.(*nodeEntry).id
		if id == i {
			continue
		}
		if planar.Distance(g.pts[i], g.pts[id]) <= r {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return ids
}

// components groups node indices into connected components via BFS,
// each component sorted ascending, components ordered by their lowest
// member.
func (g *Graph) components() [][]int {
	seen := make([]bool, len(g.nodes))
	var comps [][]int
	for i := range g.nodes {
		if seen[i] {
			continue
		}
		queue := []int{i}
		seen[i] = true
		var comp []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, a := range g.adj[u] {
				if !seen[a.To] {
					seen[a.To] = true
					queue = append(queue, a.To)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
