// Package vset implements the sorted integer vertex set that the matching
// and FSM engines use as both adjacency views and intersection scratch
// space.
//
// A Set is a sorted, duplicate-free slice of int, except when it is used
// as a push-order stack through PushBack/PopBack. It carries an
// ownership flag distinguishing a borrowed view into someone else's
// backing array (typically a CSR neighbor slice) from an owned heap
// buffer the Set allocated itself. Borrowed sets are read-only: any
// mutating operation promotes the Set to owned storage first.
//
// Complexity:
//
//   - Intersect / IntersectWith: O(|a| + |b|), two-pointer merge.
//   - Has: O(log n), binary search.
//   - UnorderedSubtractionSize: O(|a| · |b|), a linear membership scan of
//     b, which may be unsorted; caller does not need the residue, only its
//     cardinality.
//
// Errors:
//
//   - ErrAllocFailed  - an owned buffer needed to grow past MaxCapacity.
package vset
