package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/fsm"
	"github.com/katalvlaran/submatch/match"
	"github.com/katalvlaran/submatch/schedule"
	"github.com/katalvlaran/submatch/vset"
)

// CountMatches returns the number of distinct (automorphism-quotiented)
// embeddings of the pattern described by s in g, using threadCount
// goroutines. The size-1 "single vertex" pattern is special-cased to
// VCount/redundancy, since it carries no prefixes to recurse over.
func CountMatches(g *csr.Graph, s schedule.Schedule, threadCount int) (int64, error) {
	if err := schedule.Validate(s, s.Size()); err != nil {
		return 0, err
	}
	if s.Size() == 1 {
		return int64(g.VCount) / s.InExclusionOptimizeRedundancy(), nil
	}

	threadCount = normalizeThreadCount(threadCount, g.VCount)
	c := newCursor(g.VCount)
	partials := make([]int64, threadCount)

	grp, ctx := errgroup.WithContext(context.Background())
	for t := 0; t < threadCount; t++ {
		t := t
		grp.Go(func() error {
			w := match.NewWorker(g, s)
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				v, ok := c.take()
				if !ok {
					return nil
				}
				n, err := w.Root(v, false)
				if err != nil {
					return err
				}
				partials[t] += n
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	var raw int64
	for _, p := range partials {
		raw += p
	}
	return raw / s.InExclusionOptimizeRedundancy(), nil
}

// CountTriangles returns the exact number of triangles in g via the K3
// fast path (match.IntersectionSizeClique), parallelized across
// threadCount goroutines by root vertex.
func CountTriangles(g *csr.Graph, threadCount int) (int64, error) {
	threadCount = normalizeThreadCount(threadCount, g.VCount)
	c := newCursor(g.VCount)
	partials := make([]int64, threadCount)

	grp, ctx := errgroup.WithContext(context.Background())
	for t := 0; t < threadCount; t++ {
		t := t
		grp.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				v, ok := c.take()
				if !ok {
					return nil
				}
				l, r := g.GetEdgeIndex(v)
				var local int64
				for i := l; i < r; i++ {
					u := g.Edge[i]
					if u >= v {
						break
					}
					local += int64(match.IntersectionSizeClique(g, v, u))
				}
				partials[t] += local
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, p := range partials {
		total += p
	}
	return total, nil
}

// FSMSupport computes the minimum-image support of the pattern described
// by s in g, with the brute-force enumeration parallelized by root vertex
// across threadCount goroutines. Each goroutine accumulates its own
// per-position image sets; they are merged (unioned) once every worker
// finishes, then reduced to the minimum cardinality.
func FSMSupport(g *csr.Graph, s schedule.Schedule, threadCount int) (int32, error) {
	if err := schedule.Validate(s, s.Size()); err != nil {
		return 0, err
	}
	if s.Size() == 1 {
		return int32(g.VCount) / int32(s.InExclusionOptimizeRedundancy()), nil
	}

	threadCount = normalizeThreadCount(threadCount, g.VCount)
	workers := make([]*fsm.Worker, threadCount)
	for t := range workers {
		w, err := fsm.NewWorker(g, s)
		if err != nil {
			return 0, err
		}
		workers[t] = w
	}

	c := newCursor(g.VCount)
	grp, ctx := errgroup.WithContext(context.Background())
	for t := 0; t < threadCount; t++ {
		w := workers[t]
		grp.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				v, ok := c.take()
				if !ok {
					return nil
				}
				if err := w.Root(v); err != nil {
					return err
				}
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, err
	}

	merged := make([]vset.Set, s.Size())
	for i := range merged {
		merged[i] = vset.Empty(8)
	}
	for _, w := range workers {
		if err := fsm.MergeAccumulators(merged, w.Accumulators()); err != nil {
			return 0, err
		}
	}
	return fsm.MinCardinality(merged), nil
}
