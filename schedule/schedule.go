package schedule

// Schedule is the opaque, precomputed plan the matching and FSM engines
// consume for a single pattern P. The engine treats every accessor here as
// data: it never inspects how a Schedule was produced.
//
// Contract invariants (enforced by Validate, assumed thereafter):
//
//  1. The "father" relation on prefixes forms a forest rooted at the
//     pseudo-root (Father returns -1 for a root prefix).
//  2. For every prefix k with FatherDepth(k) == d, P[k] at depth d+1 equals
//     intersect(P[Father(k)], N(a[d])), or just N(a[d]) when Father(k) is
//     the root.
//  3. A restriction active at depth d references only indices < d.
//  4. In-exclusion groups at depth Size()-k reference only loop-set
//     prefixes for depths Size()-k .. Size()-1.
type Schedule interface {
	// Size returns |P|, the number of pattern vertices.
	Size() int

	// TotalPrefixNum returns m, the number of entries in the per-worker
	// prefix array.
	TotalPrefixNum() int

	// LoopSetPrefixID returns which prefix supplies the candidate pool at
	// the given depth.
	LoopSetPrefixID(depth int) int

	// Father returns the prefix id that prefix k's set is intersected
	// with N(a[FatherDepth(k)]) to produce, or -1 if k is a forest root
	// (in which case P[k] is simply N(a[FatherDepth(k)])).
	Father(k int) int

	// FatherDepth returns the depth after which prefix k becomes
	// buildable; equivalently, k appears in the Last/Next list for this
	// depth.
	FatherDepth(k int) int

	// Last returns the head of the intrusive linked list of prefix ids
	// that must be (re)built immediately after choosing a[depth], or -1
	// if none.
	Last(depth int) int

	// Next returns the next prefix id in the list started by Last, or -1
	// at the end.
	Next(prefixID int) int

	// RestrictLast returns the head of the intrusive linked list of
	// symmetry-breaking restrictions active at depth, or -1 if none.
	RestrictLast(depth int) int

	// RestrictNext returns the next restriction entry id, or -1 at the
	// end.
	RestrictNext(entryID int) int

	// RestrictIndex returns, for restriction entry entryID, the ancestor
	// depth j such that a[depth] < a[j] is required.
	RestrictIndex(entryID int) int

	// InExclusionOptimizeNum returns k >= 0; when k > 1, the final k
	// recursion levels collapse into a closed-form sum.
	InExclusionOptimizeNum() int

	// InExclusionOptimizeGroups returns, per term, a partition of
	// {0..k-1} into groups (each group a list of in-window loop-set
	// offsets).
	InExclusionOptimizeGroups() [][][]int

	// InExclusionOptimizeVals returns the signed coefficient for each
	// term in InExclusionOptimizeGroups, same length and order.
	InExclusionOptimizeVals() []int64

	// InExclusionOptimizeRedundancy returns the positive divisor applied
	// once to the grand total after the parallel reduction.
	InExclusionOptimizeRedundancy() int64
}
