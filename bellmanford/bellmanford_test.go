// Package bellmanford_test contains unit tests for the dense-matrix
// shortest-path implementation: validation, the canonical three-edge
// scenario, unreachable targets, negative weights, and cycle detection.
package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/bellmanford"
)

// inf aliases the package sentinel for compact matrix literals.
const inf = bellmanford.Inf

// triangle returns the canonical 4-vertex fixture:
// 0→1=1, 1→2=2, 0→2=5; vertex 3 is isolated.
func triangle() []int64 {
	return []int64{
		inf, 1, 5, inf,
		inf, inf, 2, inf,
		inf, inf, inf, inf,
		inf, inf, inf, inf,
	}
}

// mustRun builds the solver and runs it, requiring feasibility.
func mustRun(t *testing.T, matrix []int64, size, source int) *bellmanford.BellmanFord {
	t.Helper()
	bf, err := bellmanford.New(matrix, size)
	require.NoError(t, err)
	ok, err := bf.Run(source)
	require.NoError(t, err)
	require.True(t, ok, "fixture must have no negative cycle")

	return bf
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := bellmanford.New(nil, -1)
	assert.ErrorIs(t, err, bellmanford.ErrBadSize)

	_, err = bellmanford.New([]int64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, bellmanford.ErrMatrixSize)

	bf, err := bellmanford.New(nil, 0)
	require.NoError(t, err)
	ok, err := bf.Run(0)
	assert.NoError(t, err)
	assert.True(t, ok, "empty graph trivially succeeds")
}

func TestRun_SourceRange(t *testing.T) {
	bf, err := bellmanford.New(triangle(), 4)
	require.NoError(t, err)

	_, err = bf.Run(-1)
	assert.ErrorIs(t, err, bellmanford.ErrSourceRange)
	_, err = bf.Run(4)
	assert.ErrorIs(t, err, bellmanford.ErrSourceRange)
}

func TestResults_BeforeRun(t *testing.T) {
	bf, err := bellmanford.New(triangle(), 4)
	require.NoError(t, err)

	_, err = bf.Distance(0)
	assert.ErrorIs(t, err, bellmanford.ErrNotRun)
	_, err = bf.PathTo(2)
	assert.ErrorIs(t, err, bellmanford.ErrNotRun)
	_, err = bf.RouteTo(2)
	assert.ErrorIs(t, err, bellmanford.ErrNotRun)
}

func TestPathTo_VertexRange(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)
	_, err := bf.PathTo(99)
	assert.ErrorIs(t, err, bellmanford.ErrVertexRange)
	_, err = bf.Distance(-1)
	assert.ErrorIs(t, err, bellmanford.ErrVertexRange)
}

// ------------------------------------------------------------------------
// 2. Core scenarios.
// ------------------------------------------------------------------------

func TestRun_TriangleRelaxation(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)

	// The two-hop route 0→1→2 (cost 3) must beat the direct edge 0→2 (5).
	d, err := bf.Distance(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)

	// PathTo drops the source by convention.
	path, err := bf.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, path)
}

func TestRouteTo_EdgeTriples(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)

	route, err := bf.RouteTo(2)
	require.NoError(t, err)
	assert.Equal(t, []bellmanford.RouteStep{
		{From: 0, To: 1, Cost: 1},
		{From: 1, To: 2, Cost: 2},
	}, route)
}

func TestPathTo_Unreachable(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)

	// Vertex 3 is isolated.
	d, err := bf.Distance(3)
	require.NoError(t, err)
	assert.Equal(t, inf, d)

	path, err := bf.PathTo(3)
	require.NoError(t, err, "unreachable is a result, not an error")
	assert.Empty(t, path)

	route, err := bf.RouteTo(3)
	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestPathTo_SourceItself(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)

	// The path to the source is the source alone, which the drop
	// convention reduces to empty.
	path, err := bf.PathTo(0)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestRun_PathWeightMatchesDistance(t *testing.T) {
	// Slightly denser fixture with an alternative longer route.
	// 0→1=4, 0→2=1, 2→1=2, 1→3=1, 2→3=7.
	matrix := []int64{
		inf, 4, 1, inf,
		inf, inf, inf, 1,
		inf, 2, inf, 7,
		inf, inf, inf, inf,
	}
	bf := mustRun(t, matrix, 4, 0)

	for target := 0; target < 4; target++ {
		d, err := bf.Distance(target)
		require.NoError(t, err)
		if d == inf {
			continue
		}
		route, err := bf.RouteTo(target)
		require.NoError(t, err)

		var total int64
		for _, step := range route {
			total += step.Cost
		}
		assert.Equal(t, d, total, "route weight to %d must equal distance", target)
	}
}

func TestRun_NegativeWeightsWithoutCycle(t *testing.T) {
	// 0→1=5, 1→2=-3, 0→2=4: the negative edge makes 0→1→2 (cost 2) win.
	matrix := []int64{
		inf, 5, 4,
		inf, inf, -3,
		inf, inf, inf,
	}
	bf := mustRun(t, matrix, 3, 0)

	d, err := bf.Distance(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d)

	path, err := bf.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, path)
}

// ------------------------------------------------------------------------
// 3. Negative cycles.
// ------------------------------------------------------------------------

func TestRun_NegativeCycleDetected(t *testing.T) {
	// 0→1=1, 1→2=-2, 2→1=1: the 1↔2 loop has total weight -1.
	matrix := []int64{
		inf, 1, inf,
		inf, inf, -2,
		inf, 1, inf,
	}
	bf, err := bellmanford.New(matrix, 3)
	require.NoError(t, err)

	ok, err := bf.Run(0)
	require.NoError(t, err)
	assert.False(t, ok, "reachable negative cycle must fail the run")

	// Results are invalid after a failed run.
	_, err = bf.PathTo(2)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	_, err = bf.Distance(1)
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestRun_UnreachableNegativeCycleIsFine(t *testing.T) {
	// The same negative loop sits in vertices 1↔2, but the source 0 has
	// no edge into it: distances from 0 stay Inf there and the run
	// succeeds.
	matrix := []int64{
		inf, inf, inf,
		inf, inf, -2,
		inf, 1, inf,
	}
	bf := mustRun(t, matrix, 3, 0)

	d, err := bf.Distance(1)
	require.NoError(t, err)
	assert.Equal(t, inf, d)
}

func TestRun_RerunSwitchesSource(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)

	// Re-running from vertex 1 recomputes the tables.
	ok, err := bf.Run(1)
	require.NoError(t, err)
	require.True(t, ok)

	path, err := bf.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path)

	d, err := bf.Distance(0)
	require.NoError(t, err)
	assert.Equal(t, inf, d, "vertex 0 is unreachable from 1")
}

// ------------------------------------------------------------------------
// 4. Rendering.
// ------------------------------------------------------------------------

func TestString_Rendering(t *testing.T) {
	bf := mustRun(t, triangle(), 4, 0)
	assert.Equal(t, "[0,1,3,inf] [null,0,1,null]", bf.String())
}
