package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/fsm"
	"github.com/katalvlaran/submatch/schedule/library"
)

func twoDisjointTriangles(t *testing.T) *csr.Graph {
	t.Helper()
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	}
	g, err := csr.New(6, edges)
	require.NoError(t, err)
	return g
}

func TestEdgeSupportOnDisjointTriangles(t *testing.T) {
	g := twoDisjointTriangles(t)
	support, err := fsm.Support(g, library.Edge())
	require.NoError(t, err)
	require.EqualValues(t, 6, support)
}

func TestTriangleSupportOnDisjointTriangles(t *testing.T) {
	g := twoDisjointTriangles(t)
	support, err := fsm.Support(g, library.Triangle())
	require.NoError(t, err)
	require.EqualValues(t, 6, support) // every vertex participates in exactly one triangle
}

func TestPath3SupportOnFiveCycle(t *testing.T) {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		edges = append(edges, [2]int{i, (i + 1) % 5})
	}
	g, err := csr.New(5, edges)
	require.NoError(t, err)

	support, err := fsm.Support(g, library.Path3())
	require.NoError(t, err)
	require.EqualValues(t, 5, support) // every vertex is both an endpoint and a midpoint of some 3-path
}

func TestNewWorkerRejectsRestrictedSchedule(t *testing.T) {
	g := twoDisjointTriangles(t)
	_, err := fsm.NewWorker(g, library.Path3Restricted())
	require.ErrorIs(t, err, fsm.ErrUnsupportedSchedule)
}

func TestNewWorkerRejectsInExclusionSchedule(t *testing.T) {
	g := twoDisjointTriangles(t)
	_, err := fsm.NewWorker(g, library.ClawInExclusion())
	require.ErrorIs(t, err, fsm.ErrUnsupportedSchedule)
}

func TestEmptyGraphZeroSupport(t *testing.T) {
	g, err := csr.New(0, nil)
	require.NoError(t, err)
	support, err := fsm.Support(g, library.Edge())
	require.NoError(t, err)
	require.Zero(t, support)
}
