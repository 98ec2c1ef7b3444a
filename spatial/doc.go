// Package spatial provides the sparse planar topology for pathlab
// searches: arbitrarily positioned nodes with precomputed neighbor
// lists and Euclidean arc costs.
//
// Two construction routes:
//
//   - New(points) + Connect(i, j) wires an explicit graph — useful for
//     tests and imported data. Arcs are symmetric and their cost is
//     always the straight-line distance between the endpoints, which
//     keeps core.Euclidean admissible as an A* heuristic.
//   - Generate(n, width, height, ...) samples n nodes uniformly in a
//     rectangle, links every pair within a connection radius (derived
//     from density unless pinned with WithRadius), and bridges any
//     leftover fragments at their closest points. The result is always
//     a single connected component.
//
// The node set is indexed by an R-tree: Generate uses it for radius
// queries while wiring, and Nearest exposes it to callers that anchor
// route endpoints at arbitrary positions (e.g. "the node closest to
// the top-left corner").
//
// Lifecycle: a graph is built once and replaced wholesale by the next
// generation; only per-node search scratch mutates in between, and
// only under a search run.
//
// Determinism: fixed seeds, insertion-ordered node IDs, and sorted
// radius-query results make generation and subsequent searches fully
// reproducible.
//
// Errors:
//
//   - ErrNodeIndex, ErrSelfEdge — invalid Connect arguments.
//   - ErrTooFewNodes, ErrBadBounds — invalid Generate parameters.
//   - ErrConstructFailed — the separation constraint left no room for
//     the requested node count.
//   - ErrBadRadius, ErrBadSeparation — panics raised by option
//     constructors on invalid configuration.
package spatial
