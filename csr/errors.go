package csr

import "errors"

// ErrMalformedGraph is returned by New for a self-loop or an out-of-range
// endpoint, by Load additionally for a line it cannot parse, and by
// Graph.Validate when a built Graph violates one of the §3 CSR invariants:
// asymmetry, an unsorted or duplicate-bearing adjacency row, or a
// self-loop. New itself sorts, deduplicates and mirrors every row, so it
// never rejects input for asymmetry, ordering or duplicates.
var ErrMalformedGraph = errors.New("csr: malformed graph input")
