package schedule

// Static is a literal, in-memory Schedule built from plain slices. It is
// the only Schedule implementation this module ships; pattern-to-schedule
// compilation is an external collaborator (see package doc).
type Static struct {
	Name string

	size          int
	totalPrefixes int

	loopSetPrefixID []int // len == size
	father          []int // len == totalPrefixes, -1 for roots
	fatherDepth     []int // len == totalPrefixes

	last []int // len == size, head of per-depth build list
	next []int // len == totalPrefixes, intrusive list link

	restrictLast  []int // len == size
	restrictNext  []int // len == total restriction entries
	restrictIndex []int // len == total restriction entries

	inExNum        int
	inExGroups     [][][]int
	inExVals       []int64
	redundancy     int64
}

// NewStatic builds a Static schedule with the given size and total prefix
// count, with every forest/list field defaulted to "empty" (-1 sentinels).
// Callers populate fields via the With* builders below.
func NewStatic(name string, size, totalPrefixes int) *Static {
	s := &Static{
		Name:          name,
		size:          size,
		totalPrefixes: totalPrefixes,
		father:        fillInt(totalPrefixes, -1),
		fatherDepth:   fillInt(totalPrefixes, -1),
		next:          fillInt(totalPrefixes, -1),
		last:          fillInt(size, -1),
		restrictLast:  fillInt(size, -1),
		redundancy:    1,
	}
	s.loopSetPrefixID = make([]int, size)
	return s
}

func fillInt(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// SetLoopSet assigns the loop-set prefix id used at depth.
func (s *Static) SetLoopSet(depth, prefixID int) *Static {
	s.loopSetPrefixID[depth] = prefixID
	return s
}

// AddPrefix registers prefix k as built right after depth fatherDepth, by
// intersecting P[father] (or just N(a[fatherDepth]) when father == -1) with
// the new vertex's neighbor list. Prefixes for the same fatherDepth form an
// intrusive singly-linked list (last-in-front, order does not matter to the
// engine).
func (s *Static) AddPrefix(k, father, fatherDepth int) *Static {
	s.father[k] = father
	s.fatherDepth[k] = fatherDepth
	s.next[k] = s.last[fatherDepth]
	s.last[fatherDepth] = k
	return s
}

// AddRestriction registers "a[depth] < a[ancestorDepth]" as an active
// restriction at depth.
func (s *Static) AddRestriction(depth, ancestorDepth int) *Static {
	entryID := len(s.restrictIndex)
	s.restrictIndex = append(s.restrictIndex, ancestorDepth)
	s.restrictNext = append(s.restrictNext, s.restrictLast[depth])
	s.restrictLast[depth] = entryID
	return s
}

// WithRedundancy sets the automorphism-count divisor applied once to the
// grand total.
func (s *Static) WithRedundancy(r int64) *Static {
	s.redundancy = r
	return s
}

// WithInExclusion enables the in-exclusion collapse over the final num
// levels, with the given signed per-term coefficients and group partitions
// (offsets relative to depth = Size()-num).
func (s *Static) WithInExclusion(num int, groups [][][]int, vals []int64) *Static {
	s.inExNum = num
	s.inExGroups = groups
	s.inExVals = vals
	return s
}

func (s *Static) Size() int                { return s.size }
func (s *Static) TotalPrefixNum() int       { return s.totalPrefixes }
func (s *Static) LoopSetPrefixID(d int) int { return s.loopSetPrefixID[d] }
func (s *Static) Father(k int) int          { return s.father[k] }
func (s *Static) FatherDepth(k int) int     { return s.fatherDepth[k] }
func (s *Static) Last(d int) int            { return s.last[d] }
func (s *Static) Next(k int) int            { return s.next[k] }
func (s *Static) RestrictLast(d int) int    { return s.restrictLast[d] }
func (s *Static) RestrictNext(i int) int    { return s.restrictNext[i] }
func (s *Static) RestrictIndex(i int) int   { return s.restrictIndex[i] }

func (s *Static) InExclusionOptimizeNum() int             { return s.inExNum }
func (s *Static) InExclusionOptimizeGroups() [][][]int     { return s.inExGroups }
func (s *Static) InExclusionOptimizeVals() []int64          { return s.inExVals }
func (s *Static) InExclusionOptimizeRedundancy() int64      { return s.redundancy }
