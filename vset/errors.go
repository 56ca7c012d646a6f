package vset

import "errors"

// ErrAllocFailed indicates an owned Set needed to grow past its configured
// MaxCapacity. It models the §7 category-2 "resource exhaustion" path: the
// caller should treat this as fatal for the whole worker, not retry with a
// smaller request.
var ErrAllocFailed = errors.New("vset: allocation would exceed max capacity")
