package schedule

import "errors"

// ErrMalformed is returned by Validate when a Schedule violates one of its
// contract invariants: a father index outside the prefix array, a
// restriction referencing a depth >= its own, or an in-exclusion group
// referencing a loop-set offset outside the collapsed window. This is a
// programmer contract violation (§7 category 1), not a data-dependent
// condition; a well-formed schedule never trips it.
var ErrMalformed = errors.New("schedule: malformed schedule")
