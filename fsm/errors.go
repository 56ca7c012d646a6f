package fsm

import "errors"

// ErrUnsupportedSchedule is returned by NewWorker when given a schedule
// that carries restrictions or an in-exclusion collapse window. Both
// optimizations are count-preserving, not image-set-preserving, and would
// silently distort minimum-image support.
var ErrUnsupportedSchedule = errors.New("fsm: schedule must be restriction-free and non-collapsed")
