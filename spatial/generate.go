package spatial

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// sampleAttemptsFactor bounds rejection sampling: up to this many
// attempts per requested node before giving up.
const sampleAttemptsFactor = 10

// radiusDensityFactor scales the derived connection radius relative to
// the mean nearest-neighbor spacing sqrt(area/n). The factor keeps a
// uniform random sample connected with high probability while leaving
// the graph sparse enough to be interesting to search.
const radiusDensityFactor = 2.0

// Generate samples n nodes uniformly inside the [0,width]×[0,height]
// rectangle, links every pair within the connection radius, and then
// bridges any remaining fragments at their closest points so the
// result is always a single connected component — the guarantee
// searches rely on when routing between arbitrary nodes.
//
// Determinism: identical (n, width, height, options) inputs produce
// identical graphs; seed 0 resolves to the fixed default seed.
//
// Errors:
//
//   - ErrTooFewNodes for n < 2; ErrBadBounds for non-positive extents.
//   - ErrConstructFailed when MinSeparation leaves no room for n nodes
//     within the sampling attempt budget.
//
// Complexity: O(n log n) sampling and linking via the R-tree, plus
// O(k·n²) bridging for k initial fragments (k is tiny in practice).
func Generate(n int, width, height float64, opts ...Option) (*Graph, error) {
	// 1) Resolve configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate parameters early (fail fast; no partial work).
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadBounds
	}

	// 3) Deterministic RNG; seed-0 policy keeps the zero value useful.
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	// 4) Derive the connection radius from sampling density unless the
	//    caller pinned one.
	radius := cfg.Radius
	if radius == 0 {
		radius = radiusDensityFactor * math.Sqrt(width*height/float64(n))
	}

	// 5) Rejection-sample node positions. The separation constraint is
	//    checked against already accepted points only, so acceptance
	//    order (and therefore node IDs) is reproducible.
	points := make([]orb.Point, 0, n)
	attempts := 0
	maxAttempts := n * sampleAttemptsFactor
	for len(points) < n && attempts < maxAttempts {
		attempts++
		p := orb.Point{rng.Float64() * width, rng.Float64() * height}
		if cfg.MinSeparation > 0 && tooClose(points, p, cfg.MinSeparation) {
			continue
		}
		points = append(points, p)
	}
	if len(points) < n {
		return nil, ErrConstructFailed
	}

	// 6) Build the graph and link all pairs within the radius. The
	//    R-tree narrows each query to the radius box; ids come back
	//    sorted, so arc emission order is stable.
	g := New(points)
	for i := 0; i < g.Order(); i++ {
		for _, j := range g.within(i, radius) {
			_ = g.Connect(i, j) // never ErrNodeIndex/ErrSelfEdge here
		}
	}

	// 7) Bridge fragments: while more than one component remains, link
	//    the closest (base, outside) node pair, where base is the
	//    component containing node 0. Each bridge strictly shrinks the
	//    component count, so this terminates in < n iterations.
	for {
		comps := g.components()
		if len(comps) == 1 {
			break
		}

		inBase := make([]bool, g.Order())
		for _, u := range comps[0] {
			inBase[u] = true
		}

		bu, bv := -1, -1
		best := math.Inf(1)
		for _, u := range comps[0] {
			for v := 0; v < g.Order(); v++ {
				if inBase[v] {
					continue
				}
				if d := planar.Distance(g.pts[u], g.pts[v]); d < best {
					best, bu, bv = d, u, v
				}
			}
		}
		_ = g.Connect(bu, bv)
	}

	return g, nil
}

// tooClose reports whether p lies within sep of any accepted point.
// Linear scan: the candidate set is still being built, and sampling is
// a one-time construction cost.
func tooClose(accepted []orb.Point, p orb.Point, sep float64) bool {
	for _, q := range accepted {
		if planar.Distance(p, q) < sep {
			return true
		}
	}

	return false
}
