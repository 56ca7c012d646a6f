package csr

import "sort"

// Graph is an immutable undirected simple graph in compressed-sparse-row
// form. VCount is the vertex count; Vertex is the VCount+1 row-pointer
// array; Edge is the flat, per-row-sorted neighbor array (each undirected
// edge appears twice, once in each endpoint's row).
type Graph struct {
	VCount int
	ECount int
	Vertex []int
	Edge   []int
}

// GetEdgeIndex returns the half-open range [l, r) into g.Edge holding v's
// sorted neighbor list.
func (g *Graph) GetEdgeIndex(v int) (l, r int) {
	return g.Vertex[v], g.Vertex[v+1]
}

// Neighbors returns v's sorted neighbor slice as a borrowed view into
// g.Edge. Callers must not mutate the returned slice.
func (g *Graph) Neighbors(v int) []int {
	l, r := g.GetEdgeIndex(v)
	return g.Edge[l:r]
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	l, r := g.GetEdgeIndex(v)
	return r - l
}

// New builds a Graph from vCount vertices and a list of undirected edges
// (u, v) with 0 <= u, v < vCount, u != v. Parallel edges are deduplicated.
// It returns ErrMalformedGraph if any endpoint is out of range or u == v.
func New(vCount int, edges [][2]int) (*Graph, error) {
	adj := make([][]int, vCount)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= vCount || v < 0 || v >= vCount {
			return nil, ErrMalformedGraph
		}
		if u == v {
			return nil, ErrMalformedGraph
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	g := &Graph{VCount: vCount, Vertex: make([]int, vCount+1)}
	for v := 0; v < vCount; v++ {
		adj[v] = sortDedup(adj[v])
		g.Vertex[v+1] = g.Vertex[v] + len(adj[v])
	}
	g.Edge = make([]int, g.Vertex[vCount])
	for v := 0; v < vCount; v++ {
		copy(g.Edge[g.Vertex[v]:g.Vertex[v+1]], adj[v])
	}
	g.ECount = len(g.Edge)
	return g, nil
}

func sortDedup(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}

// Validate checks the §3 CSR invariants against an already-built Graph:
// non-decreasing row pointers, per-row sorted/duplicate-free/no-self
// neighbor lists, and symmetry. It is O(V + E) and intended for tests and
// debug-mode loader checks, not the matching hot path.
func (g *Graph) Validate() error {
	if len(g.Vertex) != g.VCount+1 {
		return ErrMalformedGraph
	}
	for v := 0; v < g.VCount; v++ {
		l, r := g.GetEdgeIndex(v)
		if l > r {
			return ErrMalformedGraph
		}
		row := g.Edge[l:r]
		for i, w := range row {
			if w == v {
				return ErrMalformedGraph
			}
			if i > 0 && row[i-1] >= w {
				return ErrMalformedGraph
			}
		}
	}
	for v := 0; v < g.VCount; v++ {
		for _, w := range g.Neighbors(v) {
			if !contains(g.Neighbors(w), v) {
				return ErrMalformedGraph
			}
		}
	}
	return nil
}

func contains(xs []int, v int) bool {
	i := sort.SearchInts(xs, v)
	return i < len(xs) && xs[i] == v
}
