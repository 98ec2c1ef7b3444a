// Package core declares the Node, State, Arc, Topology and Path types,
// the shared sentinel errors, and the heuristic function contract.
package core

import (
	"errors"
	"math"
)

// Sentinel errors shared by all pathlab search operations.
var (
	// ErrNilTopology indicates a nil Topology was passed to a search.
	ErrNilTopology = errors.New("core: topology is nil")

	// ErrNotInTopology indicates that a start or target index does not
	// name a traversable node of the supplied topology.
	ErrNotInTopology = errors.New("core: node is not part of the topology")

	// ErrNoPath indicates the search frontier emptied before the target
	// was reached. The condition is deterministic: re-running the same
	// search on the same inputs yields the same result, so no retry is
	// meaningful.
	ErrNoPath = errors.New("core: no path between start and target")

	// ErrBrokenChain indicates a parent backtrace encountered an unset
	// parent (or a parent cycle) before reaching the start node. It marks
	// a state-lifecycle bug, never a legitimate runtime outcome.
	ErrBrokenChain = errors.New("core: parent chain broken before reaching start")

	// ErrNegativeCost indicates a topology emitted an arc with negative
	// cost, which neither A* nor Dijkstra supports.
	ErrNegativeCost = errors.New("core: negative arc cost encountered")
)

// Infinity is the initial value of every node's G and Cost scratch
// fields: "no path known yet".
var Infinity = math.Inf(1)

// NoParent marks a node without a predecessor on any discovered path.
const NoParent = -1

// State is the mutable per-node search scratch record. It is owned by
// the node but scoped to a single search run: ResetSearch restores it
// before every run, and both algorithms treat its fields as
// run-internal output.
//
// G and H are A*'s accumulated and estimated costs; Cost is Dijkstra's
// tentative/finalized distance; Parent is the index of the predecessor
// on the best known path, or NoParent.
type State struct {
	G      float64
	H      float64
	Cost   float64
	Parent int
}

// Node is one traversable position: a maze cell or a spatial vertex.
// ID and the (X, Y) position are immutable after construction; State is
// reset-and-mutated by each search run.
type Node struct {
	ID    int
	X, Y  float64
	State State
}

// F returns the A* priority key g + h for the node's current scratch.
func (n *Node) F() float64 { return n.State.G + n.State.H }

// Arc is a single outgoing connection: the neighbor's index and the
// non-negative cost of moving there.
type Arc struct {
	To   int
	Cost float64
}

// Topology is the capability interface both search algorithms depend
// on. A topology owns its nodes exclusively; nodes reference each other
// only through indices (arcs, parents), never through owning handles.
//
// Contract:
//
//   - Order returns the size of the node store; valid indices are
//     [0, Order).
//   - Node returns the node at an index, or nil when the index is out
//     of range or names a non-traversable position (e.g. a wall cell).
//   - Neighbors returns the traversable arcs out of a node, in a
//     deterministic order, with non-negative costs. For a
//     non-traversable index it returns nil.
type Topology interface {
	Order() int
	Node(id int) *Node
	Neighbors(id int) []Arc
}

// Path is an ordered route from start to target inclusive, plus its
// total cost. Nodes are borrowed from the topology's store; the path
// does not own them.
type Path struct {
	Nodes []*Node
	Cost  float64
}

// IDs returns the node indices along the path, in order. Convenience
// for assertions and rendering layers that key by index.
func (p Path) IDs() []int {
	ids := make([]int, len(p.Nodes))
	for i, n := range p.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// Heuristic estimates the remaining cost from a node to the target.
// A* requires an admissible estimate (never above the true remaining
// cost) for optimality.
type Heuristic func(n, target *Node) float64

// Euclidean is the default heuristic: straight-line distance between
// node positions. It is admissible on unit-cost grids and on graphs
// whose edge costs are Euclidean distances.
func Euclidean(n, target *Node) float64 {
	return math.Hypot(target.X-n.X, target.Y-n.Y)
}

// Zero estimates nothing. Plugging it into A* degrades the search to
// uniform-cost order, which is useful as a test oracle against Dijkstra.
func Zero(_, _ *Node) float64 { return 0 }
