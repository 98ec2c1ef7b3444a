// Package astar implements A* best-first search over any core.Topology.
//
// A* expands nodes in order of f = g + h, where g is the best known
// cost from the start and h is an admissible estimate of the remaining
// cost to the target. Ties on f are broken by minimal h (greedier
// toward the goal), then by node index, so the returned path among
// several equal-cost alternatives is fully deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized (moved to the closed set) at most once.
//   - Each relaxation may push one entry under lazy decrease-key.
//   - Space: O(V + E) for the frontier and per-node flags.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/pathlab/pathlab/core"
)

// Run searches t for the cost-optimal route from start to target.
//
// Side effects: every discovered node's scratch record (G, H, Parent)
// is rewritten; callers must treat those fields as run-scoped output.
// The scratch is explicitly reset before the run begins, so prior
// searches on the same topology never leak state into this one.
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

	// 3) Fresh scratch state for this run.
	core.ResetSearch(t)

	// 4) Seed the frontier with the start node: g=0, h estimated lazily
	//    for all other nodes on first discovery.
	goal := t.Node(target)
	sn := t.Node(start)
	sn.State.G = 0
	sn.State.H = cfg.Heuristic(sn, goal)

	r := &runner{
		t:      t,
		cfg:    cfg,
		start:  start,
		target: target,
		closed: make([]bool, t.Order()),
		inOpen: make([]bool, t.Order()),
		pq:     make(frontier, 0, t.Order()/4+1),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{id: start, g: sn.State.G, h: sn.State.H})
	r.inOpen[start] = true

	return r.process()
}

// runner holds the mutable state of one A* execution.
type runner struct {
	t      core.Topology
	cfg    Options
	start  int
	target int
	closed []bool   // finalized nodes
	inOpen []bool   // discovered but not finalized
	pq     frontier // lazy min-heap keyed by (f, h, id)
}

// process drives the main loop: select the open node minimizing (f, h),
// finalize it, and relax its neighbors, until the target is selected or
// the frontier empties.
func (r *runner) process() (core.Path, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the candidate with minimal (f, h, id).
		it := heap.Pop(&r.pq).(*entry)

		// 2) Skip entries finalized earlier or made stale by a later
		//    g improvement (lazy decrease-key).
		if r.closed[it.id] {
			continue
		}
		n := r.t.Node(it.id)
		if it.g > n.State.G {
			continue
		}

		// 3) Cost bound: an over-budget g ends the search — with an
		//    admissible heuristic every remaining route, target included,
		//    costs at least this much.
		if it.g > r.cfg.MaxCost {
			break
		}

		// 4) Target selected: the invariant of A* under an admissible,
		//    consistent heuristic makes its g final — reconstruct.
		if it.id == r.target {
			path, err := core.Retrace(r.t, r.start, r.target)
			if err != nil {
				return core.Path{}, err
			}
			path.Cost = n.State.G

			return path, nil
		}

		// 5) Move the node from open to closed and relax its neighbors.
		r.closed[it.id] = true
		r.inOpen[it.id] = false
		if err := r.relax(it.id, n); err != nil {
			return core.Path{}, err
		}
	}

	// Frontier exhausted without selecting the target.
	return core.Path{}, core.ErrNoPath
}

// relax applies the A* update rule to every neighbor of the node being
// finalized: adopt the tentative g when it is strictly better, or when
// the neighbor has not been opened yet; recompute h against the target
// and repoint the parent in either case.
func (r *runner) relax(id int, n *core.Node) error {
	goal := r.t.Node(r.target)
	for _, arc := range r.t.Neighbors(id) {
		if r.closed[arc.To] {
			continue
		}
		if arc.Cost < 0 {
			return fmt.Errorf("%w: arc %d→%d cost=%v", core.ErrNegativeCost, id, arc.To, arc.Cost)
		}

		m := r.t.Node(arc.To)
		tentative := n.State.G + arc.Cost
		if tentative < m.State.G || !r.inOpen[arc.To] {
			m.State.G = tentative
			m.State.H = r.cfg.Heuristic(m, goal)
			m.State.Parent = id
			r.inOpen[arc.To] = true
			heap.Push(&r.pq, &entry{id: arc.To, g: tentative, h: m.State.H})
		}
	}

	return nil
}

// entry is one frontier element: a node index plus snapshots of its g
// and h at push time. A snapshot older than the node's current g marks
// the entry stale.
type entry struct {
	id   int
	g, h float64
}

// frontier is a min-heap of *entry ordered by (g+h, h, id) ascending —
// the exact selection rule of the engine: minimal f first, minimal h on
// f ties, minimal index thereafter for determinism.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi, fj := f[i].g+f[i].h, f[j].g+f[j].h
	if fi != fj {
		return fi < fj
	}
	if f[i].h != f[j].h {
		return f[i].h < f[j].h
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
