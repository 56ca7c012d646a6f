package fsm

import (
	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/schedule"
	"github.com/katalvlaran/submatch/vset"
)

// Support computes the minimum-image support of the pattern described by
// s against g, single-threaded: every vertex is tried as a root, every
// completed embedding is recorded, and the result is the minimum
// per-position image cardinality across the whole graph. Package engine's
// FSMSupport is the parallel, work-stealing equivalent that merges
// multiple Workers' accumulators via MergeAccumulators before reducing.
func Support(g *csr.Graph, s schedule.Schedule) (int32, error) {
	w, err := NewWorker(g, s)
	if err != nil {
		return 0, err
	}
	for v := 0; v < g.VCount; v++ {
		if err := w.Root(v); err != nil {
			return 0, err
		}
	}
	return MinCardinality(w.Accumulators()), nil
}

// MinCardinality returns the minimum Len() across accum, or 0 if accum is
// empty.
func MinCardinality(accum []vset.Set) int32 {
	if len(accum) == 0 {
		return 0
	}
	min := accum[0].Len()
	for _, s := range accum[1:] {
		if n := s.Len(); n < min {
			min = n
		}
	}
	return int32(min)
}

// MergeAccumulators unions src into dst in place, position by position.
// Used to combine each parallel worker's per-position image sets into one
// final accumulator set before taking MinCardinality.
func MergeAccumulators(dst, src []vset.Set) error {
	for p := range dst {
		data := src[p].Data()
		for _, v := range data {
			if err := dst[p].Add(v); err != nil {
				return err
			}
		}
	}
	return nil
}
