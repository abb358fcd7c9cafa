package cache

// A VictimFinder decides which line of a set should be evicted.
type VictimFinder interface {
	FindVictim(set *Set) *Line
}

// SRRIPVictimFinder selects victims with Static Re-Reference Interval
// Prediction: any line whose RRPV has reached the maximum is evictable; if
// none has, the whole set ages until one does.
type SRRIPVictimFinder struct {
}

// NewSRRIPVictimFinder returns a newly constructed SRRIP evictor.
func NewSRRIPVictimFinder() *SRRIPVictimFinder {
	e := new(SRRIPVictimFinder)
	return e
}

// FindVictim returns the first line in way order whose RRPV equals MaxRRPV,
// aging the set (incrementing every RRPV) between scans until one appears.
// The loop terminates within MaxRRPV+1 rounds: outside this loop no RRPV
// ever exceeds MaxRRPV, so each aging pass moves the highest-valued way one
// step closer to it.
func (e *SRRIPVictimFinder) FindVictim(set *Set) *Line {
	for {
		for i := range set.Ways {
			if set.Ways[i].RRPV == set.MaxRRPV {
				return &set.Ways[i]
			}
		}

		for i := range set.Ways {
			set.Ways[i].RRPV++
		}
	}
}
