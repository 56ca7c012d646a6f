package engine

import (
	"sync"

	"github.com/katalvlaran/submatch/csr"
	"github.com/katalvlaran/submatch/match"
	"github.com/katalvlaran/submatch/schedule"
)

// RangeSource hands out disjoint, contiguous root-vertex ranges to be
// counted independently. NextRange returns ok == false once every range
// has been claimed. Implementations are free to back this with a wire
// protocol (work-queue service, gRPC stream, etc.); this package only
// depends on the interface, never a concrete transport.
type RangeSource interface {
	NextRange() (lo, hi int, ok bool)
}

// ResultSink receives one raw (pre redundancy-division) partial count per
// range consumed from a RangeSource. Implementations decide how partials
// are collected (in-process channel, RPC call, message queue, ...).
type ResultSink interface {
	Report(partial int64)
}

// LocalRangeSource splits [0, n) into roughly equal contiguous chunks and
// hands them out one at a time under a mutex. It exists to exercise the
// RangeSource/ResultSink surface in-process, without a real distributed
// transport.
type LocalRangeSource struct {
	mu     sync.Mutex
	ranges [][2]int
	i      int
}

// NewLocalRangeSource partitions [0, n) into contiguous ranges of
// ceil(n/chunkCount) vertices each (the last may be shorter), which is at
// most chunkCount ranges and can be fewer: n = 4, chunkCount = 3 gives two.
func NewLocalRangeSource(n, chunkCount int) *LocalRangeSource {
	if chunkCount < 1 {
		chunkCount = 1
	}
	if chunkCount > n && n > 0 {
		chunkCount = n
	}
	src := &LocalRangeSource{}
	if n == 0 {
		return src
	}
	size := (n + chunkCount - 1) / chunkCount
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		src.ranges = append(src.ranges, [2]int{lo, hi})
	}
	return src
}

func (s *LocalRangeSource) NextRange() (lo, hi int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.i >= len(s.ranges) {
		return 0, 0, false
	}
	r := s.ranges[s.i]
	s.i++
	return r[0], r[1], true
}

// CollectingSink is a ResultSink that sums every reported partial under a
// mutex.
type CollectingSink struct {
	mu    sync.Mutex
	total int64
}

func (s *CollectingSink) Report(partial int64) {
	s.mu.Lock()
	s.total += partial
	s.mu.Unlock()
}

// Total returns the accumulated sum of every reported partial.
func (s *CollectingSink) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// RunDistributedLocal demonstrates the RangeSource/ResultSink extension
// point: it drains source sequentially, counting matches over each
// [lo, hi) root range with a single match.Worker, and reports each
// range's raw (pre redundancy-division) partial to sink. The caller is
// responsible for dividing sink.Total() by s.InExclusionOptimizeRedundancy()
// once every range has been reported — this function never assumes it
// owns the whole graph's root range, so it cannot apply the division
// itself.
func RunDistributedLocal(g *csr.Graph, s schedule.Schedule, source RangeSource, sink ResultSink) error {
	w := match.NewWorker(g, s)
	for {
		lo, hi, ok := source.NextRange()
		if !ok {
			return nil
		}
		var partial int64
		for v := lo; v < hi; v++ {
			n, err := w.Root(v, false)
			if err != nil {
				return err
			}
			partial += n
		}
		sink.Report(partial)
	}
}
