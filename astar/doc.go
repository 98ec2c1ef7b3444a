// Package astar provides A* best-first search over any core.Topology,
// with a pluggable admissible heuristic and deterministic tie-breaking.
//
// Overview:
//
//   - A* maintains an open frontier of discovered nodes and a closed set
//     of finalized ones, always expanding the open node with minimal
//     f = g + h. With an admissible, consistent heuristic the first
//     selection of the target carries the optimal cost.
//   - Tie-breaking is part of the contract, not an accident of the heap:
//     equal f resolves to minimal h (greedier toward the goal), and
//     equal (f, h) resolves to minimal node index. Among several
//     equal-cost routes, the same one is therefore returned on every
//     run.
//   - The frontier uses the lazy decrease-key pattern: a g improvement
//     pushes a fresh entry, and entries whose snapshot is older than the
//     node's current g are skipped when popped.
//
// When to use:
//
//   - Point-to-point routing where a geometric lower bound on the
//     remaining cost exists: grids with unit steps, graphs weighted by
//     Euclidean distance.
//   - Prefer dijkstra.Run when no admissible estimate is available or
//     when the full shortest-path tree matters.
//
// Errors:
//
//   - core.ErrNilTopology, core.ErrNotInTopology — invalid inputs,
//     rejected before any state mutation.
//   - core.ErrNoPath — frontier exhausted; deterministic, recoverable.
//   - core.ErrNegativeCost — the topology emitted a negative arc.
//   - ErrBadHeuristic, ErrBadMaxCost — panics raised by option
//     constructors on invalid configuration.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
package astar
