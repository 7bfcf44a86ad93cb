// SPDX-License-Identifier: GPL-2.0-only

package brcore

import (
	"math/bits"

	"github.com/brotlicore/backref/internal/wordsize"
)

// kMinScore is the minimum acceptable match score (spec §4.1): a candidate
// is kept only once its score strictly exceeds this floor.
var kMinScore = 240*wordsize.Bytes + kMinScoreBase

// ScoreUsingLastDistance scores a match that reuses a distance already held
// in the distance cache (spec §4.1). The constant favors cache reuse over an
// equally long match at a fresh distance.
func ScoreUsingLastDistance(length int) int {
	return 135*length + 240*wordsize.Bytes + 15
}

// Score scores a match at an arbitrary backward distance (spec §4.1). Lower
// backward distances score higher; log2Floor is the index of the MSB,
// defined for backward >= 1.
func Score(length, backward int) int {
	return 240*wordsize.Bytes + 135*length - 30*log2Floor(backward)
}

// Penalty returns the score penalty applied to a candidate drawn from
// distance-cache slot i>0 (spec §4.1). Slot 0 (the MRU distance) is never
// penalized; this is called only for i>0.
func Penalty(i int) int {
	return 39 + ((0x1ca10 >> uint(i&0xe)) & 0xe)
}

// log2Floor returns the index of the most significant set bit of a positive
// integer. Brotli's own Log2FloorNonZero is defined only for n>=1; callers
// must never pass 0 (a backward distance of 0 cannot occur — spec §3: every
// stored position differs from cur_ix by at least 1).
func log2Floor(n int) int {
	invariant(n >= 1, ErrInternalInvariant, "log2Floor: n=%d must be >= 1", n)
	return bits.Len(uint(n)) - 1
}
