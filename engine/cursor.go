package engine

import "sync/atomic"

// cursor is an atomic work-stealing counter over [0, n). Each call to
// take returns the next unclaimed index and true, or (0, false) once
// every index has been claimed. Vertex-granularity stealing keeps workers
// busy even when per-root search cost is wildly uneven, at the price of
// one atomic increment per root.
type cursor struct {
	next int64
	n    int64
}

func newCursor(n int) *cursor {
	return &cursor{n: int64(n)}
}

func (c *cursor) take() (int, bool) {
	v := atomic.AddInt64(&c.next, 1) - 1
	if v >= c.n {
		return 0, false
	}
	return int(v), true
}

// normalizeThreadCount clamps threadCount to at least 1 and at most n
// (spawning more goroutines than there are roots to steal is pure
// overhead).
func normalizeThreadCount(threadCount, n int) int {
	if threadCount < 1 {
		threadCount = 1
	}
	if n > 0 && threadCount > n {
		threadCount = n
	}
	return threadCount
}
