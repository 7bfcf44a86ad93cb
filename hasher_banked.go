// SPDX-License-Identifier: GPL-2.0-only
// Grounded directly on original_source/src/enc/backward_references.rs
// (H40/H41/H42: BankH40/BankH41/BankH42, SlotH40 {delta,next}, the
// addr/head/tiny_hash triple, and FindLongestMatchH40's distance-cache
// tiny_hash fast-reject followed by the delta-chain walk) — the teacher has
// no analogous structure, per spec §9's call to still model all nine
// table-driven hasher types.
//
// bucketBank is the delta-to-next-older-position chain: unlike chainHasher's
// fixed-size ring, each slot stores how much further back the next older
// position with the same key sits, so a bank can represent an
// effectively-unbounded chain in fixed-size slot storage. tiny_hash holds a
// cheap low-byte fingerprint of each position's key, letting the
// distance-cache probe skip a full match attempt when the fingerprint can't
// match.

package brcore

import (
	"github.com/brotlicore/backref/internal/obsmetrics"
	"github.com/prometheus/client_golang/prometheus"
)

const bankedKeyBits = 16
const bankedKeySpace = 1 << bankedKeyBits
const bankedKeyMask = bankedKeySpace - 1

// bankedDeltaSaturated marks a stored delta that has been capped at the
// bankSlot.delta field's representable range (spec §3's REDESIGN FLAGS: the
// source dead-codes a delta==0 termination guard, so this core treats
// delta-saturation itself as the walk's termination signal).
const bankedDeltaSaturated = 0xFFFF

type bankSlot struct {
	delta uint32
	next  uint32
}

// bankedHasher implements the H40/H41/H42 family.
type bankedHasher struct {
	hashLen      int
	numBanks     int
	slotsPerBank int
	maxHops      int
	numLast      int
	useDict      bool

	addr      []int32 // key -> most recent absolute position stored
	head      []uint32
	tinyHash  []uint8
	banks     [][]bankSlot
	freeSlot  []uint32

	dict      *StaticDictionary
	dictTable []uint16
	stats     dictStats

	metrics *obsmetrics.Metrics
}

// bankedHasherConfig mirrors H40 (1 bank of 65536 slots, shallow hop limit),
// H41 (1 bank of 65536 slots, deeper hop limit for the higher-quality tier),
// and H42 (512 banks of 512 slots, spreading the same total slot budget
// across more, smaller chains so no single chain dominates probe time).
func bankedHasherConfig(hasherType int) (hashLen, numBanks, slotsPerBank, maxHops int) {
	switch hasherType {
	case 40:
		return 4, 1, 65536, 64
	case 41:
		return 4, 1, 65536, 512
	case 42:
		return 4, 512, 512, 512
	default:
		invariant(false, ErrInternalInvariant, "bankedHasherConfig: unsupported type %d", hasherType)
		return 0, 0, 0, 0
	}
}

func newBankedHasher(p *HasherParams, reg prometheus.Registerer) *bankedHasher {
	hashLen, numBanks, slotsPerBank, maxHops := bankedHasherConfig(p.Type)

	h := &bankedHasher{
		hashLen:      hashLen,
		numBanks:     numBanks,
		slotsPerBank: slotsPerBank,
		maxHops:      maxHops,
		numLast:      p.NumLastDistancesToCheck,
		useDict:      p.UseDictionary,
		addr:         make([]int32, bankedKeySpace),
		head:         make([]uint32, bankedKeySpace),
		tinyHash:     make([]uint8, bankedKeySpace),
		banks:        make([][]bankSlot, numBanks),
		freeSlot:     make([]uint32, numBanks),
		metrics:      obsmetrics.New(reg),
	}
	for i := range h.addr {
		h.addr[i] = kInvalidPos
	}
	for i := range h.banks {
		h.banks[i] = make([]bankSlot, slotsPerBank)
	}
	if h.useDict {
		h.dict = NewStaticDictionary()
		h.dictTable = BuildDictHashTable(h.dict)
	}
	return h
}

func (h *bankedHasher) HashTypeLen() int    { return h.hashLen }
func (h *bankedHasher) StoreLookahead() int { return h.hashLen }

func (h *bankedHasher) PrepareDistanceCache(cache *DistanceCache) {
	cache.Prepare(h.numLast)
}

// hashKey is the same 4-byte-flavored hash as H5 (spec §4.3): an unaligned
// 32-bit load times kHashMul32, shifted down to the key width.
func (h *bankedHasher) hashKey(rb *RingBuffer, pos int) int {
	v := rb.Load32(pos)
	return int((v * kHashMul32) >> uint(32-bankedKeyBits))
}

func (h *bankedHasher) FindLongestMatch(rb *RingBuffer, cache *DistanceCache,
	curIx, maxLength, maxBackward int, out *HasherSearchResult) bool {

	updated := false
	key := h.hashKey(rb, curIx)
	tinyHash := tinyHashByte(key)

	numCacheSlots := h.numLast
	if numCacheSlots > 4 {
		numCacheSlots = 4
	}
	for i := 0; i < numCacheSlots; i++ {
		backward := cache[i]
		prevIx := curIx - backward
		if i > 0 && h.tinyHash[uint16(prevIx)] != tinyHash {
			continue
		}
		if backward <= 0 || prevIx >= curIx || backward > maxBackward {
			continue
		}
		length := rb.MatchLength(prevIx, curIx, maxLength)
		if length < 2 {
			continue
		}
		score := ScoreUsingLastDistance(length)
		if i != 0 {
			score -= Penalty(i)
		}
		if score > out.Score {
			out.Len = length
			out.Distance = backward
			out.LenXCode = 0
			out.Score = score
			updated = true
		}
	}

	bank := key & (h.numBanks - 1)
	backward := 0
	delta := curIx - int(h.addr[key])
	slot := h.head[key]

	for hops := h.maxHops; hops > 0 && h.addr[key] != kInvalidPos; hops-- {
		backward += delta
		if backward > maxBackward {
			break
		}
		prevIx := curIx - backward
		next := h.banks[bank][slot].next
		delta = int(h.banks[bank][slot].delta)
		if delta == bankedDeltaSaturated {
			break // next hop's true distance is unknown past the cap
		}
		slot = next

		length := rb.MatchLength(prevIx, curIx, maxLength)
		if length < 4 {
			continue
		}
		score := Score(length, backward)
		if score > out.Score {
			out.Len = length
			out.Distance = backward
			out.LenXCode = 0
			out.Score = score
			updated = true
		}
	}

	h.store(key, curIx)

	if !updated && h.useDict {
		// rb.Mask-15 is the window's max backward limit, (1<<lgwin)-16.
		matched := ProbeStaticDictionary(h.dict, h.dictTable, rb, curIx, maxLength, rb.Mask-15, false, &h.stats, out)
		h.metrics.ObserveDictProbe(matched)
		if matched {
			updated = true
		}
	}

	return updated
}

func (h *bankedHasher) Metrics() *obsmetrics.Metrics { return h.metrics }

func (h *bankedHasher) store(key, ix int) {
	bank := key & (h.numBanks - 1)
	delta := uint32(0)
	if h.addr[key] != kInvalidPos {
		delta = uint32(ix) - uint32(h.addr[key])
		if delta > bankedDeltaSaturated {
			delta = bankedDeltaSaturated
		}
	}

	idx := h.freeSlot[bank]
	h.freeSlot[bank] = (idx + 1) % uint32(h.slotsPerBank)

	h.banks[bank][idx] = bankSlot{delta: delta, next: h.head[key]}
	h.head[key] = idx
	h.tinyHash[uint16(ix)] = tinyHashByte(key)
	h.addr[key] = int32(ix)
}

func (h *bankedHasher) Store(rb *RingBuffer, ix int) {
	key := h.hashKey(rb, ix)
	h.store(key, ix)
}

func (h *bankedHasher) StoreRange(rb *RingBuffer, start, end int) {
	for ix := start; ix < end; ix++ {
		h.Store(rb, ix)
	}
}
