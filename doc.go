// Package pathlab is a small, focused pathfinding toolkit: generate a
// maze or a random spatial graph, then route through it with A* or
// Dijkstra and inspect the resulting shortest-path tree.
//
// 🚀 What is pathlab?
//
//	A pure-Go library built around one capability interface and two
//	search algorithms:
//		• core/     — Node store, search scratch state, Topology interface,
//		              path retrace & reset primitives
//		• astar/    — A* best-first search (f = g + h, admissible heuristic)
//		• dijkstra/ — uniform-cost shortest-path tree with early target stop
//		• maze/     — 4-connected wall/open grid topology + deterministic
//		              recursive-backtracker generator
//		• spatial/  — Euclidean graph topology + R-tree-backed random
//		              generator producing a single connected component
//
// ✨ Why choose pathlab?
//
//   - Deterministic – fixed seeds and total tie-break orders make every
//     search reproducible, path for path
//   - Explicit lifecycle – per-node search state is reset by a dedicated
//     operation, never reused implicitly between runs
//   - Interchangeable topologies – both algorithms see only
//     core.Topology, never grid or graph specifics
//
// Quick ASCII example (1×3 corridor, unit steps):
//
//	[S]──[·]──[T]        A* path: S → · → T, cost 2
//
// Both algorithms return the cost-optimal path; A* simply reaches the
// target with fewer expansions thanks to its Euclidean heuristic.
//
// See each subpackage's doc.go for contracts, complexity and errors.
package pathlab
