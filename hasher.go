// SPDX-License-Identifier: GPL-2.0-only

package brcore

import "github.com/brotlicore/backref/internal/obsmetrics"

// HasherSearchResult is the output of one FindLongestMatch probe (spec §3).
// It is reset at the start of each probe to {0,0,0,kMinScore} and updated
// only monotonically: a candidate replaces the current contents only when
// its score strictly exceeds out.Score.
type HasherSearchResult struct {
	Len       int
	Distance  int
	Score     int
	LenXCode  int
}

// reset seeds a search result the way spec §4.7's driver does before each
// FindLongestMatch call: Len set to seedLen, Distance/LenXCode cleared, and
// Score floored at kMinScore. (The quality<5 lazy look-ahead seed of the
// previous match's length minus one is built directly in driver.go.)
func (r *HasherSearchResult) reset(seedLen int) {
	r.Len = seedLen
	r.Distance = 0
	r.LenXCode = 0
	r.Score = kMinScore
}

// dictStats tracks the adaptive dictionary-probe gate (spec §4.6): probing
// is skipped unless historical hits are at least 1-in-128 of lookups.
type dictStats struct {
	lookups int
	matches int
}

func (s *dictStats) shouldProbe() bool {
	return s.matches >= s.lookups>>7
}

// Hasher is the capability set every concrete index structure implements
// (spec §3 "Hasher (polymorphic)", spec §9 "single polymorphic driver
// parameterized over a capability set"). HashTypeLen and StoreLookahead are
// per-variant constants the driver consults to size its scan window and
// StoreRange calls.
type Hasher interface {
	// HashTypeLen is the number of bytes this hasher's key is computed over
	// (spec §4.7: "while pos + hash_type_len < end").
	HashTypeLen() int

	// StoreLookahead is the minimum lookahead a Store/StoreRange call needs
	// (spec §4.7: "store_end = end - store_lookahead + 1").
	StoreLookahead() int

	// PrepareDistanceCache re-derives near-distance cache slots this hasher
	// reads (spec §4.2); hashers that check 0 cache slots are a no-op.
	PrepareDistanceCache(cache *DistanceCache)

	// FindLongestMatch implements the per-hasher probe order in spec §4.4
	// and returns whether out was updated. Each implementation owns its own
	// static-dictionary table (built at construction from HasherParams.
	// UseDictionary), so the interface takes no dictionary arguments.
	FindLongestMatch(rb *RingBuffer, cache *DistanceCache, curIx, maxLength, maxBackward int,
		out *HasherSearchResult) bool

	// Store inserts position ix into the index (spec §4.4 step 6).
	Store(rb *RingBuffer, ix int)

	// StoreRange inserts every position in [start,end) (spec §4.7's
	// "StoreRange(pos+2, min(pos+len, store_end))").
	StoreRange(rb *RingBuffer, start, end int)

	// Metrics returns the obsmetrics.Metrics bound at construction time
	// (nil if Params.Registerer was nil), so callers that want aggregate
	// counters (e.g. Scan's commands_emitted_total) can reuse the same
	// registered collectors this hasher records dictionary and chain-depth
	// observations into, instead of registering a second set.
	Metrics() *obsmetrics.Metrics
}
