// Package cache models a set-associative cache with the SRRIP replacement
// policy. The cache is driven one access at a time and tracks hit, miss, and
// dirty-eviction counts; no data values are stored, only line metadata.
package cache

import (
	"math/bits"
)

// Op distinguishes the two access types a trace can carry.
type Op int

const (
	// OpLoad is a read access.
	OpLoad Op = iota
	// OpStore is a write access.
	OpStore
)

// Stats holds the counters accumulated over a simulation run. All counters
// are monotonic for the life of the cache.
type Stats struct {
	Accesses       uint64
	ReadHits       uint64
	WriteHits      uint64
	ReadMisses     uint64
	WriteMisses    uint64
	DirtyEvictions uint64
}

// TotalHits returns the combined read and write hit count.
func (s Stats) TotalHits() uint64 {
	return s.ReadHits + s.WriteHits
}

// TotalMisses returns the combined read and write miss count.
func (s Stats) TotalMisses() uint64 {
	return s.ReadMisses + s.WriteMisses
}

// MissRate returns the fraction of accesses that missed, or 0 before any
// access has been processed.
func (s Stats) MissRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.TotalMisses()) / float64(s.Accesses)
}

// ReadMissRate returns the fraction of all accesses that were read misses,
// or 0 before any access has been processed.
func (s Stats) ReadMissRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.ReadMisses) / float64(s.Accesses)
}

// Cache is a simulated set-associative cache using SRRIP replacement.
// Sets are created lazily, the first time an access maps to their index.
// A Cache is not safe for concurrent use; the simulation is strictly
// sequential.
type Cache struct {
	config Config

	indexOffset uint
	tagOffset   uint
	m           int

	sets   map[uint32]*Set
	finder VictimFinder

	stats Stats
}

// New creates a cache from the given geometry. The geometry is validated
// here, at the boundary; once constructed, access processing never fails.
func New(config Config) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	numSets := config.SizeKB * 1024 / (config.Associativity * config.LineSize)
	indexOffset := uint(bits.TrailingZeros32(uint32(config.LineSize)))
	tagOffset := indexOffset + uint(bits.TrailingZeros32(uint32(numSets)))

	// SRRIP uses a 2-bit RRPV counter for wider caches and a 1-bit counter
	// for direct-mapped and 2-way caches.
	m := 1
	if config.Associativity > 2 {
		m = 2
	}

	return &Cache{
		config:      config,
		indexOffset: indexOffset,
		tagOffset:   tagOffset,
		m:           m,
		sets:        make(map[uint32]*Set),
		finder:      NewSRRIPVictimFinder(),
	}, nil
}

// Access processes one memory access against the cache, updating the
// targeted set and the counters.
func (c *Cache) Access(op Op, addr uint32) {
	c.stats.Accesses++

	index := ExtractBits(addr, c.tagOffset, c.indexOffset)
	tag := int(ExtractBits(addr, 32, c.tagOffset))

	set, ok := c.sets[index]
	if !ok {
		set = NewSet(c.config.Associativity, c.m, c.finder)
		c.sets[index] = set
	}

	if op == OpStore {
		c.store(set, tag)
	} else {
		c.load(set, tag)
	}
}

func (c *Cache) load(set *Set, tag int) {
	if set.LookupRead(tag) {
		c.stats.ReadHits++
		return
	}

	c.stats.ReadMisses++
	if set.InsertOnReadMiss(tag) {
		c.stats.DirtyEvictions++
	}
}

func (c *Cache) store(set *Set, tag int) {
	if set.LookupWrite(tag) {
		c.stats.WriteHits++
		return
	}

	c.stats.WriteMisses++
	if set.InsertOnWriteMiss(tag) {
		c.stats.DirtyEvictions++
	}
}

// Stats returns the counters accumulated so far.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Config returns the cache geometry.
func (c *Cache) Config() Config {
	return c.config
}

// IndexOffset returns the number of low-order address bits consumed by the
// byte offset within a line.
func (c *Cache) IndexOffset() uint {
	return c.indexOffset
}

// TagOffset returns the bit position where the tag field starts.
func (c *Cache) TagOffset() uint {
	return c.tagOffset
}

// M returns the SRRIP parameter M in use.
func (c *Cache) M() int {
	return c.m
}

// PopulatedSets returns the number of sets that have been touched by at
// least one access.
func (c *Cache) PopulatedSets() int {
	return len(c.sets)
}
