// Package match implements the recursive backtracking subgraph-matching
// engine described by the schedule contract (package schedule): given a
// csr.Graph and a schedule.Schedule, descend the schedule's prefix forest
// one pattern depth at a time, pruning the live candidate set at every
// level and subtracting the partial embedding at the leaves.
//
// Two variants are selected by Worker.Root's plain flag. The plain variant
// (matchPlain) is the reference semantics: membership in the embedding is
// tested at every non-terminal depth and the terminal depth always
// subtracts the whole embedding unconditionally. The aggressive variant
// (matchAggressive) adds two optimizations on top: schedule restrictions
// bound the live candidate range so the walk over the ascending loop set
// stops at the first candidate not below the bound, and the
// schedule's in-exclusion window collapses the final levels into a single
// inclusion-exclusion evaluation instead of recursing through them. Callers
// must not run the plain variant against a restriction-bearing schedule —
// it ignores restrictions entirely and would overcount.
//
// A Worker holds one goroutine's mutable search state (the prefix array,
// the embedding stack, and an in-exclusion scratch set) so the package
// function CountTrianglesFastPath and the Worker methods never allocate
// once a Worker's buffers have grown to their steady-state size; package
// engine drives many Worker.Root calls in parallel, one per root vertex.
package match
