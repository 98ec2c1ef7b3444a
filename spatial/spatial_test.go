// Package spatial_test verifies the explicit-graph surface: wiring
// validation, Euclidean arc costs, nearest-node queries, and the
// two-node routing scenario through both algorithms.
package spatial_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlab/pathlab/astar"
	"github.com/pathlab/pathlab/core"
	"github.com/pathlab/pathlab/dijkstra"
	"github.com/pathlab/pathlab/spatial"
)

//----------------------------------------------------------------------------//
// Wiring
//----------------------------------------------------------------------------//

func TestConnect_Validation(t *testing.T) {
	g := spatial.New([]orb.Point{{0, 0}, {3, 4}})

	assert.ErrorIs(t, g.Connect(0, 2), spatial.ErrNodeIndex)
	assert.ErrorIs(t, g.Connect(-1, 1), spatial.ErrNodeIndex)
	assert.ErrorIs(t, g.Connect(1, 1), spatial.ErrSelfEdge)
	assert.NoError(t, g.Connect(0, 1))
}

func TestConnect_EuclideanCostBothDirections(t *testing.T) {
	g := spatial.New([]orb.Point{{0, 0}, {3, 4}})
	require.NoError(t, g.Connect(0, 1))

	fwd := g.Neighbors(0)
	back := g.Neighbors(1)
	require.Len(t, fwd, 1)
	require.Len(t, back, 1)
	assert.Equal(t, 1, fwd[0].To)
	assert.Equal(t, 0, back[0].To)
	assert.InDelta(t, 5.0, fwd[0].Cost, 1e-12)
	assert.InDelta(t, 5.0, back[0].Cost, 1e-12)
}

func TestConnect_Idempotent(t *testing.T) {
	g := spatial.New([]orb.Point{{0, 0}, {1, 0}})
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(1, 0), "reconnecting an existing pair is a no-op")

	assert.Len(t, g.Neighbors(0), 1)
	assert.Len(t, g.Neighbors(1), 1)
}

func TestNode_OutOfRange(t *testing.T) {
	g := spatial.New([]orb.Point{{0, 0}})

	assert.Nil(t, g.Node(-1))
	assert.Nil(t, g.Node(1))
	assert.NotNil(t, g.Node(0))
}

//----------------------------------------------------------------------------//
// Nearest-node queries
//----------------------------------------------------------------------------//

func TestNearest(t *testing.T) {
	g := spatial.New([]orb.Point{{0, 0}, {10, 0}, {5, 5}})

	assert.Equal(t, 0, g.Nearest(orb.Point{1, 1}))
	assert.Equal(t, 1, g.Nearest(orb.Point{9, -1}))
	assert.Equal(t, 2, g.Nearest(orb.Point{5, 4}))
}

func TestNearest_EmptyGraph(t *testing.T) {
	g := spatial.New(nil)
	assert.Equal(t, -1, g.Nearest(orb.Point{0, 0}))
}

//----------------------------------------------------------------------------//
// Routing scenarios
//----------------------------------------------------------------------------//

func TestTwoNodeRoute_BothAlgorithms(t *testing.T) {
	// Two nodes five apart, directly connected: path [0 1], cost 5.
	g := spatial.New([]orb.Point{{0, 0}, {3, 4}})
	require.NoError(t, g.Connect(0, 1))

	aPath, err := astar.Run(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, aPath.IDs())
	assert.InDelta(t, 5.0, aPath.Cost, 1e-12)

	dPath, err := dijkstra.Run(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, dPath.IDs())
	assert.InDelta(t, 5.0, dPath.Cost, 1e-12)
}

func TestDisconnectedPair_NoPath(t *testing.T) {
	g := spatial.New([]orb.Point{{0, 0}, {1, 0}, {50, 50}})
	require.NoError(t, g.Connect(0, 1))

	_, err := astar.Run(g, 0, 2)
	assert.ErrorIs(t, err, core.ErrNoPath)

	_, err = dijkstra.Run(g, 0, 2)
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestTriangleDetour(t *testing.T) {
	// Right triangle: the two legs (3 + 4) lose to the hypotenuse (5),
	// so the direct arc wins even though the leg route exists.
	g := spatial.New([]orb.Point{{0, 0}, {3, 0}, {3, 4}})
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(1, 2))
	require.NoError(t, g.Connect(0, 2))

	path, err := astar.Run(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, path.IDs())
	assert.InDelta(t, 5.0, path.Cost, 1e-12)
}
