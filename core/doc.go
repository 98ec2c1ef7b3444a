// Package core defines the shared node model, the Topology capability
// interface, and the search-state lifecycle primitives used by every
// pathlab search algorithm.
//
// Overview:
//
//   - A Node couples an immutable identity (index + position) with a
//     mutable search scratch record (State). The scratch record is the
//     only thing an algorithm ever mutates; the topology that owns the
//     node never changes shape during a search.
//   - A Topology exposes nodes by index and answers neighbor queries as
//     (neighbor, cost) arcs. Two implementations ship with pathlab:
//     maze.Maze (grid adjacency computed on demand) and spatial.Graph
//     (precomputed neighbor lists). Algorithms depend only on the
//     interface.
//   - ResetSearch restores every node's scratch record to its initial
//     values. Both search packages call it on entry, so re-running A*
//     after Dijkstra (or vice versa) on the same topology can never
//     observe stale costs or parents.
//   - Retrace walks parent indices backward from the target to the
//     start and returns the forward path. A parent index is a
//     non-owning reference into the topology's node store, never a
//     second ownership handle; the topology remains the sole owner of
//     all nodes.
//
// Error handling (sentinel errors, branch with errors.Is):
//
//   - ErrNilTopology   — a nil Topology was supplied.
//   - ErrNotInTopology — start or target is not a traversable member of
//     the topology (out of range, or a wall cell).
//   - ErrNoPath        — the search frontier was exhausted before the
//     target was reached. Recoverable; callers treat it as an explicit
//     empty result.
//   - ErrBrokenChain   — a parent backtrace hit an unset parent (or a
//     cycle) before reaching the start. This signals an invariant
//     violation in state lifecycle, not a recoverable condition.
//   - ErrNegativeCost  — a topology produced an arc with negative cost.
//
// Complexity:
//
//   - ResetSearch: O(V).
//   - Retrace:     O(path length), cycle-guarded at |V| steps.
package core
