// Package dijkstra provides uniform-cost shortest-path search over any
// core.Topology: the baseline against which the heuristic-guided astar
// package is measured.
//
// Overview:
//
//   - Starting from a single source at distance 0, the algorithm
//     repeatedly finalizes the cheapest unvisited node and relaxes its
//     outgoing arcs. It is A* with a zero heuristic, but without a
//     directed heuristic it explores the frontier evenly in all
//     directions.
//   - The run stops early the moment the target is finalized; the
//     shortest-path tree encoded in each reached node's State.Parent is
//     complete up to the target's distance and can be read directly by
//     callers that want to visualize the tree rather than one path.
//   - Distance ties are broken by node index (insertion order), making
//     the finalization order — and therefore the returned path among
//     equal-cost alternatives — deterministic.
//
// Guarantee: the returned path is cost-optimal for non-negative arc
// costs; its total cost always equals the cost of the path astar.Run
// finds on the same inputs.
//
// Errors:
//
//   - core.ErrNilTopology, core.ErrNotInTopology — invalid inputs,
//     rejected before any state mutation.
//   - core.ErrNoPath — frontier exhausted before the target;
//     deterministic and recoverable.
//   - core.ErrNegativeCost — the topology emitted a negative arc.
//   - ErrBadMaxCost — panic raised by WithMaxCost on a negative bound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package dijkstra
