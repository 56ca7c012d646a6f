// Package csr implements the immutable compressed-sparse-row data graph G
// that the matching and FSM engines search.
//
// A Graph is built once (via Load or New) and never mutated again: every
// worker goroutine reads through borrowed views into its Edge slice without
// synchronization, which is safe exactly because nothing ever writes to it
// after construction.
//
// Invariants enforced at construction time (see §3 of the design doc):
//
//   - symmetric: w ∈ N(v) ⇔ v ∈ N(w)
//   - each adjacency row is sorted and duplicate-free
//   - no self-loops
package csr
