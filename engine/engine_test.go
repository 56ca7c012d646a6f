package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/engine"
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

func TestCountMatchesVertexPattern(t *testing.T) {
	g := completeGraph(t, 5)
	n, err := engine.CountMatches(g, library.Vertex(), 4)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
}

func TestCountMatchesTriangleK4ParallelMatchesSequential(t *testing.T) {
	g := completeGraph(t, 4)
	for _, threads := range []int{1, 2, 3, 8} {
		n, err := engine.CountMatches(g, library.Triangle(), threads)
		require.NoError(t, err, "threads=%d", threads)
		require.EqualValues(t, 4, n, "threads=%d", threads)
	}
}

func TestCountMatchesClique4K5(t *testing.T) {
	g := completeGraph(t, 5)
	n, err := engine.CountMatches(g, library.Clique4(), 4)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
}

func TestCountTrianglesK5(t *testing.T) {
	g := completeGraph(t, 5)
	tri, err := engine.CountTriangles(g, 4)
	require.NoError(t, err)
	require.EqualValues(t, 10, tri) // C(5,3) = 10
}

func TestFSMSupportEdgeOnK4(t *testing.T) {
	g := completeGraph(t, 4)
	support, err := engine.FSMSupport(g, library.Edge(), 3)
	require.NoError(t, err)
	require.EqualValues(t, 4, support) // every vertex is non-isolated
}

func TestRunDistributedLocalMatchesCountMatches(t *testing.T) {
	g := completeGraph(t, 4)
	s := library.Triangle()

	source := engine.NewLocalRangeSource(g.VCount, 3)
	sink := &engine.CollectingSink{}
	require.NoError(t, engine.RunDistributedLocal(g, s, source, sink))

	want, err := engine.CountMatches(g, s, 1)
	require.NoError(t, err)
	require.EqualValues(t, want, sink.Total()/s.InExclusionOptimizeRedundancy())
}
