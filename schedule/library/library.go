// Package library ships hand-built schedule.Static values for the small,
// fixed set of patterns exercised by this module's tests, examples, and
// CLI. It is not a pattern-to-schedule compiler (that is an external
// collaborator, see package schedule's doc comment) — just a literal
// catalogue.
package library

import "github.com/katalvlaran/submatch/schedule"

// Vertex returns the trivial size-1 "single vertex" pattern. The engine
// special-cases this: the answer is simply VCount / redundancy.
func Vertex() *schedule.Static {
	return schedule.NewStatic("vertex", 1, 0)
}

// Edge returns the size-2 pattern of a single undirected edge.
// Automorphism group order 2 (swap the endpoints), no restrictions.
func Edge() *schedule.Static {
	s := schedule.NewStatic("edge", 2, 1)
	s.AddPrefix(0, -1, 0) // prefix0 = N(a0), built right after depth0
	s.SetLoopSet(1, 0)
	return s.WithRedundancy(2)
}

// Triangle returns the size-3 triangle pattern with no restrictions;
// automorphism group order 6 (S3 on the three vertices).
func Triangle() *schedule.Static {
	s := schedule.NewStatic("triangle", 3, 2)
	s.AddPrefix(0, -1, 0) // prefix0 = N(a0)
	s.SetLoopSet(1, 0)
	s.AddPrefix(1, 0, 1) // prefix1 = intersect(prefix0, N(a1))
	s.SetLoopSet(2, 1)
	return s.WithRedundancy(6)
}

// Path3 returns the size-3 path a0-a1-a2 with no restrictions;
// automorphism group order 2 (reflect the two endpoints).
func Path3() *schedule.Static {
	s := schedule.NewStatic("path3", 3, 2)
	s.AddPrefix(0, -1, 0) // prefix0 = N(a0), candidates for a1
	s.SetLoopSet(1, 0)
	s.AddPrefix(1, -1, 1) // prefix1 = N(a1), candidates for a2 (no edge required to a0)
	s.SetLoopSet(2, 1)
	return s.WithRedundancy(2)
}

// Path3Restricted returns the same path3 pattern with the reflection broken
// by a restriction a[2] < a[0], redundancy 1. count_matches on this
// schedule must equal count_matches on Path3 (redundancy 2, unrestricted).
func Path3Restricted() *schedule.Static {
	s := schedule.NewStatic("path3_restricted", 3, 2)
	s.AddPrefix(0, -1, 0)
	s.SetLoopSet(1, 0)
	s.AddPrefix(1, -1, 1)
	s.SetLoopSet(2, 1)
	s.AddRestriction(2, 0) // a[2] < a[0]
	return s.WithRedundancy(1)
}

// Clique4 returns the size-4 complete-graph pattern K4 with no
// restrictions; automorphism group order 24 (S4).
func Clique4() *schedule.Static {
	s := schedule.NewStatic("clique4", 4, 3)
	s.AddPrefix(0, -1, 0) // prefix0 = N(a0)
	s.SetLoopSet(1, 0)
	s.AddPrefix(1, 0, 1) // prefix1 = intersect(prefix0, N(a1))
	s.SetLoopSet(2, 1)
	s.AddPrefix(2, 1, 2) // prefix2 = intersect(prefix1, N(a2))
	s.SetLoopSet(3, 2)
	return s.WithRedundancy(24)
}

// Claw returns the size-4 star K(1,3): center a0, leaves a1, a2, a3, no
// edges required among the leaves. Automorphism group order 6 (S3 on the
// leaves), no restrictions. A single prefix (N(a0)) serves as the loop set
// at every leaf depth since no leaf's candidate pool depends on another
// leaf.
func Claw() *schedule.Static {
	s := schedule.NewStatic("claw", 4, 1)
	s.AddPrefix(0, -1, 0) // prefix0 = N(a0)
	s.SetLoopSet(1, 0)
	s.SetLoopSet(2, 0)
	s.SetLoopSet(3, 0)
	return s.WithRedundancy(6)
}

// ClawInExclusion returns the Claw pattern with the three leaf picks
// collapsed via in-exclusion (the textbook use case: three positions that
// independently draw from the identical candidate set N(a0), so naive
// recursion would need inclusion-exclusion to avoid double-counting
// coincident picks). count_matches on this schedule must equal
// count_matches on Claw for any graph (see match/match_test.go's
// TestClawInExclusionMatchesClaw round-trip check, grounding spec.md §8 scenario 6's in-exclusion sanity property —
// a claw stands in for "the 4-vertex pattern whose last levels collapse"
// since inclusion-exclusion only applies where the collapsed positions
// share one candidate pool with no edges between them; a literal 4-path's
// last two positions are sequentially dependent and are not a valid
// in-exclusion candidate for any real schedule compiler).
func ClawInExclusion() *schedule.Static {
	s := schedule.NewStatic("claw_in_exclusion", 4, 1)
	s.AddPrefix(0, -1, 0)
	s.SetLoopSet(1, 0)
	s.SetLoopSet(2, 0)
	s.SetLoopSet(3, 0)

	groups := [][][]int{
		{{0}, {1}, {2}},
		{{0, 1}, {2}},
		{{0, 2}, {1}},
		{{1, 2}, {0}},
		{{0, 1, 2}},
	}
	vals := []int64{1, -1, -1, -1, 2}
	s.WithInExclusion(3, groups, vals)
	return s.WithRedundancy(6)
}

// All returns every named schedule in the library, keyed by name, for
// CLI listing and table-driven tests.
func All() map[string]schedule.Schedule {
	return map[string]schedule.Schedule{
		"vertex":            Vertex(),
		"edge":              Edge(),
		"triangle":          Triangle(),
		"path3":             Path3(),
		"path3_restricted":  Path3Restricted(),
		"clique4":           Clique4(),
		"claw":              Claw(),
		"claw_in_exclusion": ClawInExclusion(),
	}
}
