// SPDX-License-Identifier: GPL-2.0-only

package brcore

import (
	"math/bits"

	"github.com/brotlicore/backref/internal/wordsize"
)

// RingBuffer is the sliding window of source bytes (spec §3): an
// immutable-for-this-call byte sequence indexed by an absolute, monotonic
// 64-bit position, with a power-of-two mask selecting the physical slot.
type RingBuffer struct {
	Data []byte
	Mask int
}

// NewRingBuffer builds a ring buffer over data with the given lgwin. Mask is
// (1<<lgwin)-1 (spec §6). len(data) must already equal Mask+1; callers own
// writing new bytes into Data as position advances past its initial extent.
func NewRingBuffer(data []byte, lgwin int) *RingBuffer {
	mask := (1 << uint(lgwin)) - 1
	invariant(len(data) == mask+1, ErrInternalInvariant,
		"NewRingBuffer: len(data)=%d != mask+1=%d", len(data), mask+1)
	return &RingBuffer{Data: data, Mask: mask}
}

// At returns the physical slot for an absolute position.
func (r *RingBuffer) At(pos int) byte {
	return r.Data[pos&r.Mask]
}

// Slice returns the byte slice starting at the physical slot for pos,
// running to the end of the backing array (callers bound reads themselves
// via max_length, as the match finder does).
func (r *RingBuffer) Slice(pos int) []byte {
	return r.Data[pos&r.Mask:]
}

// Load32 reads 4 bytes starting at pos as a little-endian-assembled 32-bit
// word (spec §4.3's "unaligned 32-bit load"), masking each byte access so a
// read straddling the ring's wraparound point is still correct.
func (r *RingBuffer) Load32(pos int) uint32 {
	return uint32(r.At(pos)) | uint32(r.At(pos+1))<<8 |
		uint32(r.At(pos+2))<<16 | uint32(r.At(pos+3))<<24
}

// Load64 is Load32's 8-byte counterpart (spec §4.3's "unaligned 64-bit
// load").
func (r *RingBuffer) Load64(pos int) uint64 {
	return uint64(r.Load32(pos)) | uint64(r.Load32(pos+4))<<32
}

// fastUnalignedLoads is resolved once at package init (spec §9: the
// "Unaligned loads" assumption is a platform property, not a per-call
// decision).
var fastUnalignedLoads = wordsize.FastUnalignedLoads()

// MatchLength returns the length of the common prefix of the bytes at
// absolute positions a and b (each masked independently per access, so a
// comparison that straddles the ring's wraparound point is still correct),
// bounded by limit (spec §4.4's "LCP" — longest common prefix). It is the
// one comparison primitive every hasher variant's probe loop calls.
//
// On platforms where unaligned 64-bit loads are cheap, the common-prefix
// scan compares 8 bytes at a time and uses the first differing byte's
// position within the XOR of the two words, falling back to a byte-at-a-time
// loop for the remainder and on platforms where it isn't (spec §9).
func (r *RingBuffer) MatchLength(a, b, limit int) int {
	n := 0
	if fastUnalignedLoads {
		for n+8 <= limit {
			wa, wb := r.Load64(a+n), r.Load64(b+n)
			if wa != wb {
				return n + bits.TrailingZeros64(wa^wb)/8
			}
			n += 8
		}
	}
	for n < limit && r.At(a+n) == r.At(b+n) {
		n++
	}
	return n
}
