package match

import "github.com/katalvlaran/submatch/csr"

// IntersectionSizeClique counts common neighbors of v1 and v2 that are
// strictly less than v2, using an ordered two-pointer merge that stops
// scanning either adjacency row as soon as it crosses v2. This is the
// bound used by the K3 fast path: the caller passes v1 > v2 and so only
// ever asks for common neighbors smaller than the smaller of the two
// vertices, and every triangle is discovered from exactly one (v1, v2, w)
// triple with w < v2 < v1, so the fast path needs no redundancy division.
//
// This stops one pointer short of reading past its own row's bound rather
// than reading the raw adjacency array unconditionally, which is a
// defensive simplification of the early-exit check but has identical
// asymptotic behavior.
func IntersectionSizeClique(g *csr.Graph, v1, v2 int) int {
	l1, r1 := g.GetEdgeIndex(v1)
	l2, r2 := g.GetEdgeIndex(v2)
	minVertex := v2
	edge := g.Edge

	ans := 0
	for l1 < r1 && l2 < r2 {
		a, b := edge[l1], edge[l2]
		switch {
		case a >= minVertex || b >= minVertex:
			return ans
		case a < b:
			l1++
		case b < a:
			l2++
		default:
			ans++
			l1++
			l2++
		}
	}
	return ans
}

// CountTrianglesFastPath returns the exact number of triangles in g,
// bypassing the schedule engine entirely: for every vertex v and every
// smaller neighbor u (adjacency rows are sorted ascending, so these are
// the prefix of v's row), it adds the count of common neighbors smaller
// than u. Since w < u < v for every contribution, each triangle is
// counted exactly once — no division by the automorphism count is
// needed, unlike the schedule-driven Triangle() pattern.
func CountTrianglesFastPath(g *csr.Graph) int64 {
	var ans int64
	for v := 0; v < g.VCount; v++ {
		l, r := g.GetEdgeIndex(v)
		for i := l; i < r; i++ {
			u := g.Edge[i]
			if u >= v {
				break
			}
			ans += int64(IntersectionSizeClique(g, v, u))
		}
	}
	return ans
}
