// Package fsm implements the minimum-image-support engine used for
// frequent subgraph mining: given a csr.Graph and a schedule.Schedule, it
// enumerates every embedding by brute-force full recursion (no
// restriction pruning, no in-exclusion collapse — those optimizations
// only preserve embedding *counts*, and support is defined over the
// *distinct images* each pattern position takes, which restriction
// pruning or in-exclusion collapse would silently drop), and for every
// pattern position accumulates the set of distinct data-graph vertices
// that occupy it across all embeddings found. The support of the pattern
// is the minimum of those accumulator cardinalities (the image with the
// fewest distinct witnesses is the bottleneck).
//
// schedule.Validate still applies, but callers must only pass a
// restriction-free, non-collapsed schedule — see NewWorker's doc comment.
package fsm
