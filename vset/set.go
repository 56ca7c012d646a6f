package vset

import "sort"

// Set is a sorted, duplicate-free collection of data-graph vertex IDs.
//
// The zero value is an empty Set ready to use; its first mutation allocates
// an owned buffer. Set is not safe for
// concurrent use; each worker owns its own Sets (see package engine).
type Set struct {
	data  []int
	owned bool

	// maxCapacity bounds how large an owned buffer may grow. Zero means
	// unbounded. Tests use this to exercise the ErrAllocFailed path
	// deterministically without needing to actually exhaust memory.
	maxCapacity int
}

// Empty returns an empty, owned Set with the given initial capacity hint.
func Empty(capHint int) Set {
	if capHint < 0 {
		capHint = 0
	}
	return Set{data: make([]int, 0, capHint), owned: true}
}

// Borrow wraps data as a read-only view. data must already be sorted,
// duplicate-free, and must outlive the returned Set. Mutating operations
// on a borrowed Set allocate a fresh owned copy first.
func Borrow(data []int) Set {
	return Set{data: data, owned: false}
}

// FromSlice copies data into a new owned Set. data must already be sorted
// and duplicate-free.
func FromSlice(data []int) Set {
	cp := make([]int, len(data))
	copy(cp, data)
	return Set{data: cp, owned: true}
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.data) }

// At returns the i-th smallest element.
func (s *Set) At(i int) int { return s.data[i] }

// Data exposes the underlying sorted slice for read-only iteration. Callers
// must not mutate the returned slice.
func (s *Set) Data() []int { return s.data }

// Owned reports whether this Set holds a private heap buffer rather than a
// borrowed view.
func (s *Set) Owned() bool { return s.owned }

// SetMaxCapacity bounds future growth of this Set's owned buffer. Used by
// tests to simulate resource exhaustion (see ErrAllocFailed).
func (s *Set) SetMaxCapacity(n int) { s.maxCapacity = n }

// Has reports whether v is present, via binary search.
func (s *Set) Has(v int) bool {
	data := s.data
	i := sort.SearchInts(data, v)
	return i < len(data) && data[i] == v
}

// Reset empties the Set in place without releasing its owned backing array,
// so the buffer can be reused across recursion frames without reallocating.
// Reset on a borrowed Set simply detaches the view.
func (s *Set) Reset() {
	if s.owned {
		s.data = s.data[:0]
		return
	}
	s.data = nil
}

// promote ensures s owns a private buffer with room for at least n elements,
// copying existing contents. No-op if s is already owned with enough
// capacity.
func (s *Set) promote(n int) error {
	if s.owned && cap(s.data) >= n {
		return nil
	}
	if s.maxCapacity > 0 && n > s.maxCapacity {
		return ErrAllocFailed
	}
	buf := make([]int, len(s.data), growCap(n))
	copy(buf, s.data)
	s.data = buf
	s.owned = true
	return nil
}

// growCap rounds a requested capacity up geometrically so repeated growth
// amortizes instead of reallocating every push.
func growCap(n int) int {
	c := 8
	for c < n {
		c *= 2
	}
	return c
}

// PushBack appends v at the end without keeping sorted order (the embedding
// stack grows by appending the newly chosen pattern vertex, whatever its
// value). A Set used as such a stack is in push order, not sorted, so Has
// and LowerBound do not apply to it. Promotes to owned storage if necessary.
func (s *Set) PushBack(v int) error {
	if err := s.promote(len(s.data) + 1); err != nil {
		return err
	}
	s.data = append(s.data, v)
	return nil
}

// PopBack removes and discards the last element. It is the caller's
// responsibility to balance PushBack/PopBack calls across recursion, per
// the embedding-stack invariant in §3.
func (s *Set) PopBack() {
	s.data = s.data[:len(s.data)-1]
}

// Last returns the most recently pushed element, or -1 if empty.
func (s *Set) Last() int {
	if len(s.data) == 0 {
		return -1
	}
	return s.data[len(s.data)-1]
}

// CopyFrom overwrites s with an owned copy of other's contents.
func (s *Set) CopyFrom(other *Set) error {
	if err := s.ensureOwnedCap(other.Len()); err != nil {
		return err
	}
	s.data = append(s.data[:0], other.data...)
	return nil
}

// ensureOwnedCap grows s to an owned buffer of at least n capacity without
// preserving contents (used when the caller is about to overwrite s.data
// wholesale, e.g. CopyFrom / Intersect results).
func (s *Set) ensureOwnedCap(n int) error {
	if s.owned && cap(s.data) >= n {
		return nil
	}
	if s.maxCapacity > 0 && n > s.maxCapacity {
		return ErrAllocFailed
	}
	s.data = make([]int, 0, growCap(n))
	s.owned = true
	return nil
}

// Intersect computes the sorted intersection of a and b into a fresh owned
// Set via two-pointer merge, O(|a|+|b|).
func Intersect(a, b *Set) Set {
	out := Empty(minInt(a.Len(), b.Len()))
	mergeIntersect(a.data, b.data, &out)
	return out
}

// IntersectWith replaces s in place with intersect(s, other). Promotes s to
// owned storage. This is the hot path used when rebuilding a prefix set
// P[k] = intersect(P[father(k)], N(a[depth])) during recursion.
func (s *Set) IntersectWith(other *Set) error {
	n := minInt(s.Len(), other.Len())
	if s.maxCapacity > 0 && n > s.maxCapacity {
		return ErrAllocFailed
	}
	// An owned buffer is reused in place: the merge never writes past the
	// element it is reading. A borrowed view gets a fresh buffer.
	var tmp Set
	if s.owned {
		tmp = Set{data: s.data[:0], owned: true}
	} else {
		tmp = Set{data: make([]int, 0, n), owned: true}
	}
	mergeIntersect(s.data, other.data, &tmp)
	s.data = tmp.data
	s.owned = true
	return nil
}

// IntersectNeighbors replaces s in place with intersect(s, neigh), where
// neigh is typically a borrowed CSR adjacency slice. Equivalent to
// IntersectWith(Borrow(neigh)) but avoids constructing a temporary Set.
func (s *Set) IntersectNeighbors(neigh []int) error {
	tmp := Borrow(neigh)
	return s.IntersectWith(&tmp)
}

// SetIntersection overwrites s in place with intersect(parent, neigh),
// reusing s's own backing array when it already has enough capacity. This
// is the hot-path primitive for rebuilding a prefix set P[k] =
// intersect(P[father(k)], N(a[depth])) once per recursion frame without
// allocating once capacities stabilize.
func (s *Set) SetIntersection(parent *Set, neigh []int) error {
	n := minInt(parent.Len(), len(neigh))
	if s.maxCapacity > 0 && n > s.maxCapacity {
		return ErrAllocFailed
	}
	buf := s.data[:0]
	if !s.owned || cap(buf) < n {
		buf = make([]int, 0, growCap(n))
	}
	out := Set{data: buf, owned: true}
	mergeIntersect(parent.data, neigh, &out)
	s.data = out.data
	s.owned = true
	return nil
}

// Add inserts v if not already present, maintaining sorted order.
// Idempotent: adding an existing element is a no-op. Used by the FSM
// engine's per-pattern-position accumulator sets, where the insertion
// order is arbitrary (insertions arrive embedding by embedding, not
// ascending), unlike PushBack's append-only embedding-stack discipline.
func (s *Set) Add(v int) error {
	i := sort.SearchInts(s.data, v)
	if i < len(s.data) && s.data[i] == v {
		return nil
	}
	if err := s.promote(len(s.data) + 1); err != nil {
		return err
	}
	s.data = append(s.data, 0)
	copy(s.data[i+1:], s.data[i:len(s.data)-1])
	s.data[i] = v
	return nil
}

func mergeIntersect(a, b []int, out *Set) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out.data = append(out.data, a[i])
			i++
			j++
		}
	}
}

// UnorderedSubtractionSize returns |{a ∈ A[:min(|A|,limit)] : a ∉ B}|. When
// limit is absent (or negative), the whole of A is considered; a limit of 0
// considers no element. B need not be sorted (the engines pass the
// push-order embedding stack), so membership in B is a linear scan. Callers
// only need the cardinality of the residue, never the residue itself, so
// this never allocates.
func UnorderedSubtractionSize(a, b *Set, limit ...int) int {
	n := a.Len()
	if len(limit) > 0 && limit[0] >= 0 && limit[0] < n {
		n = limit[0]
	}
	count := 0
	for _, x := range a.data[:n] {
		found := false
		for _, y := range b.data {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			count++
		}
	}
	return count
}

// LowerBound returns the index of the first element >= v (binary search),
// i.e. the count of elements strictly less than v. Used by the matching
// engine to bound a restriction-constrained prefix before subtracting.
func (s *Set) LowerBound(v int) int {
	return sort.SearchInts(s.data, v)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
