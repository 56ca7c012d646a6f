package schedule

import "fmt"

// Validate runs the structural assertions of the Schedule contract against
// s for a pattern of the given size. It is cheap relative to the search
// (O(size(P) + totalPrefixNum)) so engine.CountMatches runs it unconditionally
// rather than gating it behind a debug build, per §7.
func Validate(s Schedule, patternSize int) error {
	if s.Size() != patternSize {
		return fmt.Errorf("%w: schedule size %d != pattern size %d", ErrMalformed, s.Size(), patternSize)
	}
	if patternSize == 1 {
		// The trivial single-vertex pattern carries no prefixes, no loop
		// sets, and no restrictions to check — the engine special-cases it
		// as VCount/redundancy without ever touching the prefix forest.
		if s.InExclusionOptimizeRedundancy() <= 0 {
			return fmt.Errorf("%w: redundancy must be positive, got %d", ErrMalformed, s.InExclusionOptimizeRedundancy())
		}
		return nil
	}
	m := s.TotalPrefixNum()
	if m <= 0 {
		return fmt.Errorf("%w: total prefix count must be positive, got %d", ErrMalformed, m)
	}

	for k := 0; k < m; k++ {
		father := s.Father(k)
		if father != -1 && (father < 0 || father >= m) {
			return fmt.Errorf("%w: prefix %d has out-of-range father %d", ErrMalformed, k, father)
		}
		if father == k {
			return fmt.Errorf("%w: prefix %d is its own father", ErrMalformed, k)
		}
		d := s.FatherDepth(k)
		if d < 0 || d >= patternSize {
			return fmt.Errorf("%w: prefix %d has out-of-range father depth %d", ErrMalformed, k, d)
		}
	}

	for d := 0; d < patternSize; d++ {
		loop := s.LoopSetPrefixID(d)
		if loop < 0 || loop >= m {
			return fmt.Errorf("%w: depth %d loop-set prefix %d out of range", ErrMalformed, d, loop)
		}
		for i := s.RestrictLast(d); i != -1; i = s.RestrictNext(i) {
			j := s.RestrictIndex(i)
			if j < 0 || j >= d {
				return fmt.Errorf("%w: restriction at depth %d references non-ancestor depth %d", ErrMalformed, d, j)
			}
		}
	}

	k := s.InExclusionOptimizeNum()
	if k < 0 || k > patternSize {
		return fmt.Errorf("%w: in-exclusion window %d exceeds pattern size %d", ErrMalformed, k, patternSize)
	}
	if k > 1 {
		groups := s.InExclusionOptimizeGroups()
		vals := s.InExclusionOptimizeVals()
		if len(groups) != len(vals) {
			return fmt.Errorf("%w: in-exclusion groups/vals length mismatch (%d vs %d)", ErrMalformed, len(groups), len(vals))
		}
		for _, term := range groups {
			for _, group := range term {
				for _, offset := range group {
					if offset < 0 || offset >= k {
						return fmt.Errorf("%w: in-exclusion group references offset %d outside window [0,%d)", ErrMalformed, offset, k)
					}
				}
			}
		}
	}
	if s.InExclusionOptimizeRedundancy() <= 0 {
		return fmt.Errorf("%w: redundancy must be positive, got %d", ErrMalformed, s.InExclusionOptimizeRedundancy())
	}
	return nil
}
