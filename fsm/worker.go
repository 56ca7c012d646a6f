package fsm

import (
	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/schedule"
	"github.com/katalvlaran/submatch/vset"
)

// Worker holds one goroutine's private search state plus the per-position
// image accumulators it contributes to. The accumulators persist across
// Root calls (they are the whole point — every root's completed
// embeddings feed the same running image sets) and are merged across
// workers by the caller once every root has been processed; see
// package engine.
type Worker struct {
	graph    *csr.Graph
	schedule schedule.Schedule

	prefixes  []vset.Set
	embedding vset.Set
	accum     []vset.Set // len == schedule.Size(), one image set per pattern position
}

// NewWorker allocates a Worker for the given graph and schedule. s must
// carry no restrictions and no in-exclusion collapse (ErrUnsupportedSchedule
// otherwise); schedule.Validate should already have been run.
func NewWorker(g *csr.Graph, s schedule.Schedule) (*Worker, error) {
	size := s.Size()
	for d := 0; d < size; d++ {
		if s.RestrictLast(d) != -1 {
			return nil, ErrUnsupportedSchedule
		}
	}
	if s.InExclusionOptimizeNum() > 1 {
		return nil, ErrUnsupportedSchedule
	}

	w := &Worker{
		graph:     g,
		schedule:  s,
		prefixes:  make([]vset.Set, s.TotalPrefixNum()),
		embedding: vset.Empty(size),
		accum:     make([]vset.Set, size),
	}
	for i := range w.accum {
		w.accum[i] = vset.Empty(8)
	}
	return w, nil
}

// Root runs one root-vertex iteration: builds the depth-0 prefixes from
// N(v), pushes v onto the embedding, and recurses from depth 1,
// recording every completed embedding's per-position vertex into the
// running accumulators. Must not be called with a size-1 schedule.
func (w *Worker) Root(v int) error {
	neigh := w.graph.Neighbors(v)
	if err := w.buildPrefixesAfter(0, neigh); err != nil {
		return err
	}
	if err := w.embedding.PushBack(v); err != nil {
		return err
	}
	err := w.recurse(1)
	w.embedding.PopBack()
	return err
}

// Accumulators exposes the per-position image sets for merging across
// workers. Callers must not mutate the returned sets.
func (w *Worker) Accumulators() []vset.Set { return w.accum }

func (w *Worker) buildPrefixesAfter(depth int, neigh []int) error {
	s := w.schedule
	for k := s.Last(depth); k != -1; k = s.Next(k) {
		father := s.Father(k)
		if father == -1 {
			w.prefixes[k] = vset.Borrow(neigh)
			continue
		}
		if err := w.prefixes[k].SetIntersection(&w.prefixes[father], neigh); err != nil {
			return err
		}
	}
	return nil
}

// inEmbedding reports whether v is already on the embedding stack. The
// stack is in push order, not sorted, so this is a linear scan rather than
// Set.Has's binary search.
func (w *Worker) inEmbedding(v int) bool {
	for _, u := range w.embedding.Data() {
		if u == v {
			return true
		}
	}
	return false
}

// recurse is the brute-force enumeration: has_data membership pruning at
// every depth, full descent with no restriction bound, recording every
// completed leaf into the accumulators.
func (w *Worker) recurse(depth int) error {
	s := w.schedule
	loop := &w.prefixes[s.LoopSetPrefixID(depth)]
	n := loop.Len()
	if n == 0 {
		return nil
	}
	data := loop.Data()

	if depth == s.Size()-1 {
		for i := 0; i < n; i++ {
			cand := data[i]
			if w.inEmbedding(cand) {
				continue
			}
			for p := 0; p < depth; p++ {
				if err := w.accum[p].Add(w.embedding.At(p)); err != nil {
					return err
				}
			}
			if err := w.accum[depth].Add(cand); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < n; i++ {
		cand := data[i]
		if w.inEmbedding(cand) {
			continue
		}
		neigh := w.graph.Neighbors(cand)
		zero, err := w.descend(depth, neigh)
		if err != nil {
			return err
		}
		if zero {
			continue
		}
		if err := w.embedding.PushBack(cand); err != nil {
			return err
		}
		err = w.recurse(depth + 1)
		w.embedding.PopBack()
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Worker) descend(depth int, neigh []int) (empty bool, err error) {
	s := w.schedule
	for k := s.Last(depth); k != -1; k = s.Next(k) {
		father := s.Father(k)
		if father == -1 {
			w.prefixes[k] = vset.Borrow(neigh)
		} else if err := w.prefixes[k].SetIntersection(&w.prefixes[father], neigh); err != nil {
			return false, err
		}
		if w.prefixes[k].Len() == 0 {
			return true, nil
		}
	}
	return false, nil
}
