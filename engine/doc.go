// Package engine drives package match and package fsm in parallel across
// a shared-memory worker pool: every goroutine owns a private search
// state (one match.Worker or fsm.Worker) and pulls root vertices off a
// single atomic work-stealing cursor, one vertex at a time, until the
// cursor is exhausted. golang.org/x/sync/errgroup supplies goroutine
// lifecycle management and fatal-abort-on-error semantics — if any
// worker's Root call fails (e.g. vset.ErrAllocFailed under a bounded
// capacity), every other worker is cancelled and the first error is
// returned.
//
// The package also exposes a RangeSource/ResultSink extension point for
// driving the same per-worker logic from an externally supplied
// partitioning and result channel, without committing to any particular
// wire transport — see distributed.go.
package engine
