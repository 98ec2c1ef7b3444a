// Package dijkstra implements single-source shortest-path search over
// any core.Topology, halting early once the target is finalized.
//
// Dijkstra processes traversable nodes in order of increasing tentative
// distance, relaxing arcs as it goes. Ties on distance are broken by
// node index (insertion order), so among several equal-cost frontiers
// the same node is always finalized first and the returned path is
// deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V extractions.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Space: O(V + E) under the lazy decrease-key strategy.
//
// Notes on implementation choices:
//
//   - The conceptual "unvisited set of all nodes" is realized lazily:
//     nodes enter the heap only when first reached. Nodes that would
//     remain at +Inf in the set version can never be finalized before
//     the target with a finite distance, and once only +Inf entries
//     would remain the frontier is empty — the same moment the set
//     version stops making progress — so both formulations finalize
//     nodes in the identical order and fail identically.
//   - Early termination: the run stops the moment the target is
//     selected, leaving the shortest-path tree complete only up to that
//     distance. Every relaxed node's Parent field still encodes its
//     optimal predecessor, which callers may read as a partial tree.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/pathlab/pathlab/core"
)

// Run computes the cost-optimal route from start to target.
//
// Side effects: every reached node's scratch record (Cost, Parent) is
// rewritten; callers must treat those fields as run-scoped output. The
// scratch is explicitly reset before the run begins.
//
// Returns:
//
//   - the path [start, ..., target] with its total cost, or
//   - core.ErrNilTopology / core.ErrNotInTopology for invalid inputs,
//   - core.ErrNoPath if the frontier empties before the target,
//   - core.ErrNegativeCost if t emits a negative arc cost.
func Run(t core.Topology, start, target int, opts ...Option) (core.Path, error) {
	// 1) Build and validate configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Reject invalid endpoints before touching any state.
	if err := core.ValidateEndpoints(t, start, target); err != nil {
		return core.Path{}, err
	}

	// 3) Fresh scratch state, then seed the frontier: start at cost 0.
	core.ResetSearch(t)
	t.Node(start).State.Cost = 0

	r := &runner{
		t:       t,
		cfg:     cfg,
		start:   start,
		target:  target,
		visited: make([]bool, t.Order()),
		pq:      make(frontier, 0, t.Order()/4+1),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{id: start, cost: 0})

	return r.process()
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	t       core.Topology
	cfg     Options
	start   int
	target  int
	visited []bool   // finalized nodes
	pq      frontier // lazy min-heap keyed by (cost, id)
}

// process repeatedly finalizes the cheapest unvisited node and relaxes
// its arcs, stopping when the target is selected (the shortest-path
// tree beyond it is not needed) or when the frontier empties.
func (r *runner) process() (core.Path, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest (cost, id) candidate.
		it := heap.Pop(&r.pq).(*entry)

		// 2) Skip entries already finalized or made stale by a later
		//    relaxation.
		if r.visited[it.id] {
			continue
		}
		n := r.t.Node(it.id)
		if it.cost > n.State.Cost {
			continue
		}

		// 3) Distance bound: all remaining candidates cost at least as
		//    much, so anything past this point — target included — is
		//    out of budget.
		if it.cost > r.cfg.MaxCost {
			break
		}

		// 4) Target selected: its distance is final, stop building the
		//    tree and reconstruct the single requested path.
		if it.id == r.target {
			path, err := core.Retrace(r.t, r.start, r.target)
			if err != nil {
				return core.Path{}, err
			}
			path.Cost = n.State.Cost

			return path, nil
		}

		// 5) Finalize and relax.
		r.visited[it.id] = true
		if err := r.relax(it.id, n); err != nil {
			return core.Path{}, err
		}
	}

	// Frontier exhausted without finalizing the target.
	return core.Path{}, core.ErrNoPath
}

// relax attempts to improve each neighbor of the just-finalized node:
// adopt candidate = cost(n) + arc cost whenever it is strictly below
// the neighbor's tentative distance, repointing its parent.
func (r *runner) relax(id int, n *core.Node) error {
	for _, arc := range r.t.Neighbors(id) {
		if arc.Cost < 0 {
			return fmt.Errorf("%w: arc %d→%d cost=%v", core.ErrNegativeCost, id, arc.To, arc.Cost)
		}

		m := r.t.Node(arc.To)
		candidate := n.State.Cost + arc.Cost
		if candidate < m.State.Cost {
			m.State.Cost = candidate
			m.State.Parent = id
			heap.Push(&r.pq, &entry{id: arc.To, cost: candidate})
		}
	}

	return nil
}

// entry is one frontier element: a node index and its tentative
// distance at push time.
type entry struct {
	id   int
	cost float64
}

// frontier is a min-heap of *entry ordered by (cost, id) ascending:
// minimal distance first, minimal index on distance ties.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}
