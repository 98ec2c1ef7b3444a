// Package maze provides the dense grid topology for pathlab searches:
// a rectangular field of open and wall cells with 4-directional
// unit-cost movement, plus a deterministic maze generator.
//
// Two construction routes:
//
//   - New(cells) wraps an explicit wall mask — useful for tests,
//     imported maps, and hand-crafted scenarios.
//   - Generate(rows, cols, ...) carves a random perfect maze with the
//     recursive-backtracker algorithm. Every room is reachable from
//     every other, so the conventional Start (top-left) and Target
//     (bottom-right) corners are always connected.
//
// Topology semantics:
//
//   - Neighbor queries return only in-bounds, non-wall, 4-directionally
//     adjacent cells; diagonal moves do not exist and every step costs
//     exactly 1.
//   - Wall cells remain addressable through IsWall/Coordinate for
//     rendering layers, but Node returns nil for them: they are not
//     members of the search topology, and using one as a search
//     endpoint yields core.ErrNotInTopology.
//   - Neighbor order is fixed (N, E, S, W) as part of the library's
//     determinism contract.
//
// Indexing: cells are identified by row-major index y*Width + x;
// Index and Coordinate convert between the index and (x, y) views.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular — malformed wall masks.
//   - ErrBadDimensions — Generate dimensions the room lattice cannot
//     express (rows/cols must be odd and ≥ 3).
package maze
