package cache

// EmptyTag marks a line that has never held a block.
const EmptyTag = -1

// A Line is one way of a set: the metadata kept for a single cache line.
// No data is stored, only the tag, the SRRIP re-reference prediction value,
// and the dirty flag.
type Line struct {
	// Tag identifies the block currently held, or EmptyTag.
	Tag int
	// RRPV is the re-reference prediction value, in [0, MaxRRPV].
	RRPV int
	// Dirty is set when the line holds modified data not yet written back.
	Dirty bool
}

// A Set holds all the lines that share one index value. The number of ways
// is fixed at construction.
type Set struct {
	// Ways are the line slots of this set. The slice length never changes.
	Ways []Line
	// MaxRRPV is 2^M - 1 for the SRRIP parameter M.
	MaxRRPV int

	finder VictimFinder
}

// NewSet creates a set with the given number of ways and SRRIP parameter m.
// All lines start empty, clean, and at the maximum RRPV so that cold misses
// fill the set in way order.
func NewSet(associativity, m int, finder VictimFinder) *Set {
	maxRRPV := 1<<m - 1

	s := &Set{
		Ways:    make([]Line, associativity),
		MaxRRPV: maxRRPV,
		finder:  finder,
	}
	for i := range s.Ways {
		s.Ways[i] = Line{Tag: EmptyTag, RRPV: maxRRPV}
	}

	return s
}

// LookupRead scans the ways for tag. On a hit the matched line is promoted
// to RRPV 0.
func (s *Set) LookupRead(tag int) bool {
	for i := range s.Ways {
		if s.Ways[i].Tag == tag {
			s.Ways[i].RRPV = 0
			return true
		}
	}
	return false
}

// LookupWrite scans the ways for tag. On a hit the matched line is promoted
// to RRPV 0 and marked dirty.
func (s *Set) LookupWrite(tag int) bool {
	for i := range s.Ways {
		if s.Ways[i].Tag == tag {
			s.Ways[i].RRPV = 0
			s.Ways[i].Dirty = true
			return true
		}
	}
	return false
}

// InsertOnReadMiss evicts a victim and installs tag in its place with
// RRPV = MaxRRPV-1. The installed line is clean. Returns true when the
// victim was dirty and a write-back had to be counted.
func (s *Set) InsertOnReadMiss(tag int) bool {
	victim := s.finder.FindVictim(s)
	victim.RRPV = s.MaxRRPV - 1
	victim.Tag = tag

	if victim.Dirty {
		victim.Dirty = false
		return true
	}
	return false
}

// InsertOnWriteMiss evicts a victim and installs tag in its place with
// RRPV = MaxRRPV-1. Returns true when the victim was dirty; in that case
// the installed line is left clean. When the victim was clean, the
// installed line is marked dirty to record the write that caused the miss.
func (s *Set) InsertOnWriteMiss(tag int) bool {
	victim := s.finder.FindVictim(s)
	victim.RRPV = s.MaxRRPV - 1
	victim.Tag = tag

	if victim.Dirty {
		victim.Dirty = false
		return true
	}
	victim.Dirty = true
	return false
}
