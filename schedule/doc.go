// Package schedule defines the opaque pattern-matching plan the engine
// consumes: a prefix forest over intersection sets, per-depth loop sets,
// symmetry-breaking restrictions, and an optional in-exclusion (inclusion–
// exclusion) collapse of the final levels.
//
// Pattern-to-schedule compilation itself is out of scope for this module
// (see §1 of the design doc): callers either hand-build a Static value
// (package schedule/library ships one for each pattern exercised by tests
// and the CLI) or plug in a schedule produced elsewhere.
package schedule
