package csr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/submatch/csr"
)

func k4Edges() [][2]int {
	var edges [][2]int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return edges
}

func TestNewBuildsSymmetricSortedCSR(t *testing.T) {
	g, err := csr.New(4, k4Edges())
	require.NoError(t, err)
	require.Equal(t, 4, g.VCount)
	require.Equal(t, 12, g.ECount) // 6 undirected edges, stored twice
	require.NoError(t, g.Validate())

	for v := 0; v < 4; v++ {
		nbrs := g.Neighbors(v)
		require.Len(t, nbrs, 3)
		for i := 1; i < len(nbrs); i++ {
			require.Less(t, nbrs[i-1], nbrs[i])
		}
	}
}

func TestNewRejectsSelfLoopAndOutOfRange(t *testing.T) {
	_, err := csr.New(3, [][2]int{{0, 0}})
	require.ErrorIs(t, err, csr.ErrMalformedGraph)

	_, err = csr.New(3, [][2]int{{0, 5}})
	require.ErrorIs(t, err, csr.ErrMalformedGraph)
}

func TestNewDeduplicatesParallelEdges(t *testing.T) {
	g, err := csr.New(2, [][2]int{{0, 1}, {0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, 2, g.ECount)
}

func TestLoadSingleDirectionMirrorsAutomatically(t *testing.T) {
	input := "vcount 5\n0 1\n1 2\n2 3\n3 4\n4 0\n"
	g, err := csr.Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 5, g.VCount)
	require.NoError(t, g.Validate())
	require.Equal(t, []int{1, 4}, g.Neighbors(0))
}

func TestLoadInfersVCountWhenAbsent(t *testing.T) {
	g, err := csr.Load(strings.NewReader("0 1\n1 2\n"))
	require.NoError(t, err)
	require.Equal(t, 3, g.VCount)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := csr.Load(strings.NewReader("0 1 2\n"))
	require.ErrorIs(t, err, csr.ErrMalformedGraph)
}

func TestEmptyGraph(t *testing.T) {
	g, err := csr.New(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, g.VCount)
	require.NoError(t, g.Validate())
}
