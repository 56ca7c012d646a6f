package match

import (
	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/schedule"
)

// CountSequential sums Worker.Root over every vertex of g as root on a
// single goroutine, returning the raw (pre redundancy-division) total.
// package engine does the parallel, work-stealing equivalent of this
// loop (and is what the CLI runs); this sequential form is used by the
// tests.
func CountSequential(g *csr.Graph, s schedule.Schedule, plain bool) (int64, error) {
	w := NewWorker(g, s)
	var total int64
	for v := 0; v < g.VCount; v++ {
		n, err := w.Root(v, plain)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
