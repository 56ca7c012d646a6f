package match

import (
	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/schedule"
	"github.com/katalvlaran/submatch/vset"
)

// Worker holds one goroutine's private search state for a fixed
// (graph, schedule) pair. Create one per goroutine with NewWorker and
// drive it across many root vertices with Root; the prefix array and
// embedding stack are reused across calls, so a Worker must not be shared
// between goroutines.
type Worker struct {
	graph    *csr.Graph
	schedule schedule.Schedule

	prefixes  []vset.Set // len == schedule.TotalPrefixNum()
	embedding vset.Set   // the partial embedding stack, a0..a(depth-1)
	scratch   vset.Set   // in-exclusion group-intersection scratch
	ids       []int      // in-exclusion offset -> prefix id, reused per call

	localAns int64
}

// NewWorker allocates a Worker for the given graph and schedule. The
// schedule should already have passed schedule.Validate.
func NewWorker(g *csr.Graph, s schedule.Schedule) *Worker {
	w := &Worker{
		graph:     g,
		schedule:  s,
		prefixes:  make([]vset.Set, s.TotalPrefixNum()),
		embedding: vset.Empty(s.Size()),
		scratch:   vset.Empty(8),
	}
	if k := s.InExclusionOptimizeNum(); k > 1 {
		w.ids = make([]int, k)
	}
	return w
}

// Root runs one root-vertex iteration: builds the depth-0 prefixes from
// N(v), pushes v onto the embedding, and recurses from depth 1 using
// either the plain or the aggressive variant. It returns the raw (not yet
// redundancy-divided) match count contributed by this root. Must not be
// called with a size-1 schedule; callers special-case that trivially as
// VCount/redundancy.
func (w *Worker) Root(v int, plain bool) (int64, error) {
	w.localAns = 0
	neigh := w.graph.Neighbors(v)
	if err := w.buildPrefixesAfter(0, neigh); err != nil {
		return 0, err
	}
	if err := w.embedding.PushBack(v); err != nil {
		return 0, err
	}

	var err error
	if plain {
		err = w.matchPlain(1)
	} else {
		err = w.matchAggressive(1)
	}
	w.embedding.PopBack()
	if err != nil {
		return 0, err
	}
	return w.localAns, nil
}

// buildPrefixesAfter rebuilds every prefix whose father depth is depth,
// per the contract P[k] = intersect(P[father(k)], N(a[depth])), or
// P[k] = N(a[depth]) (borrowed, no copy) when father(k) == -1.
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

// minRestrictBound returns the tightest upper bound implied by the active
// restrictions at depth (min over a[j] for every restriction a[depth] <
// a[j]), or graph.VCount when depth carries no restriction.
func (w *Worker) minRestrictBound(depth int) int {
	s := w.schedule
	bound := w.graph.VCount
	for i := s.RestrictLast(depth); i != -1; i = s.RestrictNext(i) {
		j := s.RestrictIndex(i)
		if av := w.embedding.At(j); av < bound {
			bound = av
		}
	}
	return bound
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

// matchPlain is the reference recursive variant: no restriction pruning,
// has_data membership checks, unconditional terminal subtraction.
func (w *Worker) matchPlain(depth int) error {
	s := w.schedule
	loop := &w.prefixes[s.LoopSetPrefixID(depth)]
	n := loop.Len()
	if n == 0 {
		return nil
	}

	if depth == s.Size()-1 {
		w.localAns += int64(vset.UnorderedSubtractionSize(loop, &w.embedding))
		return nil
	}

	data := loop.Data()
	for i := 0; i < n; i++ {
		cand := data[i]
		if w.inEmbedding(cand) {
			continue
		}
		neigh := w.graph.Neighbors(cand)
		if zero, err := w.descend(depth, neigh); err != nil {
			return err
		} else if zero {
			continue
		}
		if err := w.embedding.PushBack(cand); err != nil {
			return err
		}
		err := w.matchPlain(depth + 1)
		w.embedding.PopBack()
		if err != nil {
			return err
		}
	}
	return nil
}

// matchAggressive is the optimized recursive variant: restriction-bound
// pruning via the live candidate range, in-exclusion collapse of the
// final levels, and restrict-bounded terminal subtraction.
func (w *Worker) matchAggressive(depth int) error {
	s := w.schedule
	loop := &w.prefixes[s.LoopSetPrefixID(depth)]
	n := loop.Len()
	if n == 0 {
		return nil
	}

	if k := s.InExclusionOptimizeNum(); k > 1 && depth == s.Size()-k {
		return w.evaluateInExclusion(depth, k)
	}

	if depth == s.Size()-1 {
		if s.RestrictLast(depth) == -1 {
			w.localAns += int64(vset.UnorderedSubtractionSize(loop, &w.embedding))
			return nil
		}
		bound := loop.LowerBound(w.minRestrictBound(depth))
		if bound > 0 {
			w.localAns += int64(vset.UnorderedSubtractionSize(loop, &w.embedding, bound))
		}
		return nil
	}

	bound := w.minRestrictBound(depth)
	data := loop.Data()
	for i := 0; i < n && data[i] < bound; i++ {
		cand := data[i]
		if w.inEmbedding(cand) {
			continue
		}
		neigh := w.graph.Neighbors(cand)
		if zero, err := w.descend(depth, neigh); err != nil {
			return err
		} else if zero {
			continue
		}
		if err := w.embedding.PushBack(cand); err != nil {
			return err
		}
		err := w.matchAggressive(depth + 1)
		w.embedding.PopBack()
		if err != nil {
			return err
		}
	}
	return nil
}

// descend rebuilds every prefix born at this depth against the candidate's
// neighbor list, reporting whether any of them collapsed to empty (in
// which case the caller should prune this candidate without recursing).
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

// evaluateInExclusion computes the inclusion-exclusion sum over the final
// k levels in one shot, per the schedule's groups/vals, without recursing
// through them. Each term multiplies its coefficient by the subtraction
// cardinality of the (possibly intersected) group of loop sets; a zero
// factor short-circuits the rest of that term.
func (w *Worker) evaluateInExclusion(depth, k int) error {
	s := w.schedule
	for i := 0; i < k; i++ {
		w.ids[i] = s.LoopSetPrefixID(depth + i)
	}
	groups := s.InExclusionOptimizeGroups()
	vals := s.InExclusionOptimizeVals()

	for t, term := range groups {
		val := vals[t]
		for _, group := range term {
			var size int
			if len(group) == 1 {
				size = vset.UnorderedSubtractionSize(&w.prefixes[w.ids[group[0]]], &w.embedding)
			} else {
				if err := w.scratch.CopyFrom(&w.prefixes[w.ids[group[0]]]); err != nil {
					return err
				}
				for _, off := range group[1:] {
					if err := w.scratch.IntersectWith(&w.prefixes[w.ids[off]]); err != nil {
						return err
					}
				}
				size = vset.UnorderedSubtractionSize(&w.scratch, &w.embedding)
			}
			val *= int64(size)
			if val == 0 {
				break
			}
		}
		w.localAns += val
	}
	return nil
}
