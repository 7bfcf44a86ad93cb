// SPDX-License-Identifier: GPL-2.0-only

package brcore

// DistanceCache holds the rolling distance cache (spec §3): slots 0-3 are
// the four most recently used backward distances (MRU at 0), slots 4-15
// are near-distances derived from slots 0 and 1.
type DistanceCache [16]int

// NewDistanceCache returns a cache seeded the way a fresh encoder call
// starts: the four canonical initial distances used throughout Brotli
// (1, 4, 11, 4), with derived slots left zero until the first
// PrepareDistanceCache call.
func NewDistanceCache() *DistanceCache {
	return &DistanceCache{0: 1, 1: 4, 2: 11, 3: 4}
}

// Prepare (re-)derives the near-distance slots 4..15 from slots 0 and 1
// (spec §4.2). numSlots is the hasher's NumLastDistancesToCheck; hashers
// that check fewer than 10 slots skip deriving slots they never read.
func (c *DistanceCache) Prepare(numSlots int) {
	if numSlots < 10 {
		return
	}

	d0 := c[0]
	c[4] = d0 - 1
	c[5] = d0 + 1
	c[6] = d0 - 2
	c[7] = d0 + 2
	c[8] = d0 - 3
	c[9] = d0 + 3

	if numSlots < 16 {
		return
	}

	d1 := c[1]
	c[10] = d1 - 1
	c[11] = d1 + 1
	c[12] = d1 - 2
	c[13] = d1 + 2
	c[14] = d1 - 3
	c[15] = d1 + 3
}

// Rotate pushes distance into slot 0 and shifts the previous MRU slots down
// (spec §4.2), then re-derives the near-distance slots. Call only when the
// emitted copy's distance code is an explicit code above 16 (a "fresh"
// distance, not already reachable via one of the short codes 1..16);
// callers that computed a short code or 0 must leave the cache untouched
// instead of calling this.
func (c *DistanceCache) Rotate(distance, numSlots int) {
	c[3] = c[2]
	c[2] = c[1]
	c[1] = c[0]
	c[0] = distance
	c.Prepare(numSlots)
}

// ComputeDistanceCode implements the external contract in spec §4.5: it
// returns a short-code in [1,16] when distance matches one of the 16 cache
// slots (slot 0 -> code 1, slot 1 -> code 2, ...), 0 when distance is 0 or
// exceeds maxDistance, or distance+15 as an explicit code for any other
// distance.
//
// The format's short-code table additionally folds small positive/negative
// offsets from slots 0 and 1 into codes 16..inf when the literal slot value
// itself does not match but a neighboring value would have under a
// different cache entry; this core only needs the contract's externally
// observable behavior (a code the driver uses to decide whether to rotate
// the cache: it rotates only on an explicit code above 16), so it
// implements the direct 16-slot lookup plus the explicit-code fallback.
func ComputeDistanceCode(distance, maxDistance int, cache *DistanceCache) int {
	if distance == 0 || distance > maxDistance {
		return 0
	}

	for i, slot := range cache {
		if slot == distance {
			return i + 1
		}
	}

	return distance + 15
}
