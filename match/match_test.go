package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/match"
	"github.com/katalvlaran/submatch/schedule/library"
)

func completeGraph(t *testing.T, n int) *csr.Graph {
	t.Helper()
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	g, err := csr.New(n, edges)
	require.NoError(t, err)
	return g
}

func cycleGraph(t *testing.T, n int) *csr.Graph {
	t.Helper()
	var edges [][2]int
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	g, err := csr.New(n, edges)
	require.NoError(t, err)
	return g
}

func starGraph(t *testing.T, leaves int) *csr.Graph {
	t.Helper()
	var edges [][2]int
	for l := 1; l <= leaves; l++ {
		edges = append(edges, [2]int{0, l})
	}
	g, err := csr.New(leaves+1, edges)
	require.NoError(t, err)
	return g
}

func TestEmptyGraphZeroMatches(t *testing.T) {
	g, err := csr.New(0, nil)
	require.NoError(t, err)

	for name, s := range library.All() {
		raw, err := match.CountSequential(g, s, false)
		require.NoError(t, err, name)
		require.Zero(t, raw, name)
	}
}

func TestTriangleCountK4(t *testing.T) {
	g := completeGraph(t, 4)
	raw, err := match.CountSequential(g, library.Triangle(), false)
	require.NoError(t, err)
	require.EqualValues(t, 24, raw) // 4 triangles * redundancy 6
	require.EqualValues(t, 4, raw/library.Triangle().InExclusionOptimizeRedundancy())
}

func TestClique4CountK4(t *testing.T) {
	g := completeGraph(t, 4)
	raw, err := match.CountSequential(g, library.Clique4(), false)
	require.NoError(t, err)
	require.EqualValues(t, 24, raw)
	require.EqualValues(t, 1, raw/library.Clique4().InExclusionOptimizeRedundancy())
}

func TestClique4CountK5(t *testing.T) {
	g := completeGraph(t, 5)
	raw, err := match.CountSequential(g, library.Clique4(), false)
	require.NoError(t, err)
	require.EqualValues(t, 120, raw) // C(5,4) = 5 cliques * redundancy 24
	require.EqualValues(t, 5, raw/library.Clique4().InExclusionOptimizeRedundancy())
}

func TestPath3CountFiveCycle(t *testing.T) {
	g := cycleGraph(t, 5)
	raw, err := match.CountSequential(g, library.Path3(), false)
	require.NoError(t, err)
	require.EqualValues(t, 10, raw)
	require.EqualValues(t, 5, raw/library.Path3().InExclusionOptimizeRedundancy())
}

func TestPath3RestrictedEqualsPath3(t *testing.T) {
	g := cycleGraph(t, 5)

	rawUnrestricted, err := match.CountSequential(g, library.Path3(), false)
	require.NoError(t, err)
	unrestricted := rawUnrestricted / library.Path3().InExclusionOptimizeRedundancy()

	restricted := library.Path3Restricted()
	rawRestricted, err := match.CountSequential(g, restricted, false)
	require.NoError(t, err)
	got := rawRestricted / restricted.InExclusionOptimizeRedundancy()

	require.EqualValues(t, unrestricted, got)
	require.EqualValues(t, 5, got)
}

func TestPlainMatchesAggressive(t *testing.T) {
	g := completeGraph(t, 5)

	plainRaw, err := match.CountSequential(g, library.Triangle(), true)
	require.NoError(t, err)
	aggressiveRaw, err := match.CountSequential(g, library.Triangle(), false)
	require.NoError(t, err)
	require.Equal(t, plainRaw, aggressiveRaw)

	plainRawC, err := match.CountSequential(g, library.Clique4(), true)
	require.NoError(t, err)
	aggressiveRawC, err := match.CountSequential(g, library.Clique4(), false)
	require.NoError(t, err)
	require.Equal(t, plainRawC, aggressiveRawC)
}

func TestClawInExclusionMatchesClaw(t *testing.T) {
	g := starGraph(t, 4)

	rawClaw, err := match.CountSequential(g, library.Claw(), false)
	require.NoError(t, err)
	rawCollapsed, err := match.CountSequential(g, library.ClawInExclusion(), false)
	require.NoError(t, err)

	require.Equal(t, rawClaw, rawCollapsed)
	require.EqualValues(t, 24, rawClaw)
	require.EqualValues(t, 4, rawClaw/library.Claw().InExclusionOptimizeRedundancy())
}

func TestTriangleFastPathMatchesScheduleCount(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5} {
		g := completeGraph(t, n)
		fast := match.CountTrianglesFastPath(g)

		raw, err := match.CountSequential(g, library.Triangle(), false)
		require.NoError(t, err)
		scheduled := raw / library.Triangle().InExclusionOptimizeRedundancy()

		require.Equal(t, scheduled, fast, "n=%d", n)
	}
}

func TestTriangleFastPathOnCycleIsZero(t *testing.T) {
	g := cycleGraph(t, 5)
	require.Zero(t, match.CountTrianglesFastPath(g))
}
