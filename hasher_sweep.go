// SPDX-License-Identifier: GPL-2.0-only
// Grounded on: github.com/woozymasta/lzo (compress_1x_fast.go — single flat
// hash table probed at one or two related slots, cyclic dict[dictIndex]
// overwrite, short/long match split).

package brcore

import (
	"github.com/brotlicore/backref/internal/obsmetrics"
	"github.com/prometheus/client_golang/prometheus"
)

// sweepHasher implements the H2/H3/H4/H54 family (spec §3): a flat hash
// table of small, fixed-size buckets, each holding up to `sweep` recent
// positions that are cyclically overwritten as new ones arrive. There is no
// chain to walk; every bucket slot is compared against on every probe.
type sweepHasher struct {
	bucketBits int
	sweep      int
	hashLen    int
	numLast    int
	useDict    bool

	table  []int32 // 1<<bucketBits buckets * sweep entries, flattened
	cursor []uint8 // next slot to overwrite, per bucket

	dict      *StaticDictionary
	dictTable []uint16
	stats     dictStats

	metrics *obsmetrics.Metrics
}

// sweepHasherConfig returns the {bucketBits, sweep, hashLen} triple the
// reference quality table assigns to each sweep-family type, used whenever
// the caller leaves HasherParams.BucketBits at its zero value. Per spec §3's
// data-model table, H2/H3/H4 are 5-byte-flavored hashes and only H54 is
// 7-byte-flavored.
func sweepHasherConfig(hasherType int) (bucketBits, sweep, hashLen int) {
	switch hasherType {
	case 2:
		return 16, 1, 5
	case 3:
		return 16, 2, 5
	case 4:
		return 17, 4, 5
	case 54:
		return 20, 4, 7
	default:
		invariant(false, ErrInternalInvariant, "sweepHasherConfig: unsupported type %d", hasherType)
		return 0, 0, 0
	}
}

func newSweepHasher(p *HasherParams, reg prometheus.Registerer) *sweepHasher {
	bucketBits, sweep, hashLen := sweepHasherConfig(p.Type)
	if p.BucketBits != 0 {
		bucketBits = p.BucketBits
	}

	buckets := 1 << uint(bucketBits)
	h := &sweepHasher{
		bucketBits: bucketBits,
		sweep:      sweep,
		hashLen:    hashLen,
		numLast:    p.NumLastDistancesToCheck,
		useDict:    p.UseDictionary,
		table:      make([]int32, buckets*sweep),
		cursor:     make([]uint8, buckets),
		metrics:    obsmetrics.New(reg),
	}
	for i := range h.table {
		h.table[i] = kInvalidPos
	}
	if h.useDict {
		h.dict = NewStaticDictionary()
		h.dictTable = BuildDictHashTable(h.dict)
	}
	return h
}

func (h *sweepHasher) HashTypeLen() int    { return h.hashLen }
func (h *sweepHasher) StoreLookahead() int { return h.hashLen }

func (h *sweepHasher) PrepareDistanceCache(cache *DistanceCache) {
	cache.Prepare(h.numLast)
}

// hashKey implements spec §4.3's 5-byte/7-byte-flavored hash (original
// source: H2Sub::HashBytes, backward_references.rs:265-267): an unaligned
// 64-bit load, shifted left so only the low hashLen bytes survive the
// multiply's high bits, times kHashMul64, shifted down to the bucket width.
func (h *sweepHasher) hashKey(rb *RingBuffer, pos int) int {
	v := rb.Load64(pos) << uint(64-8*h.hashLen)
	return int((v * kHashMul64) >> uint(64-h.bucketBits))
}

func (h *sweepHasher) bucketOf(idx int) []int32 {
	return h.table[idx*h.sweep : idx*h.sweep+h.sweep]
}

func (h *sweepHasher) FindLongestMatch(rb *RingBuffer, cache *DistanceCache,
	curIx, maxLength, maxBackward int, out *HasherSearchResult) bool {

	updated := false

	// Cache-slot-0 fast path (spec §4.4 step 2): H2's single-slot bucket
	// makes this its primary mechanism, so an accepted match here skips the
	// bucket sweep below entirely.
	if backward := cache[0]; backward > 0 && backward <= maxBackward {
		prevIx := curIx - backward
		if length := rb.MatchLength(prevIx, curIx, maxLength); length >= 2 {
			if score := ScoreUsingLastDistance(length); score > out.Score {
				out.Len = length
				out.Distance = backward
				out.LenXCode = 0
				out.Score = score
				updated = true
			}
		}
	}
	if h.sweep == 1 && updated {
		return true
	}

	idx := h.hashKey(rb, curIx)
	for _, cand := range h.bucketOf(idx) {
		if cand == kInvalidPos {
			continue
		}
		backward := curIx - int(cand)
		if backward <= 0 || backward > maxBackward {
			continue
		}
		length := rb.MatchLength(int(cand), curIx, maxLength)
		if length < 4 {
			continue
		}
		code := ComputeDistanceCode(backward, maxBackward, cache)
		var score int
		if code > 0 {
			score = ScoreUsingLastDistance(length)
		} else {
			score = Score(length, backward)
		}
		if score > out.Score {
			out.Len = length
			out.Distance = backward
			out.LenXCode = 0
			out.Score = score
			updated = true
		}
	}

	if h.useDict {
		// rb.Mask-15 is the window's max backward limit, (1<<lgwin)-16.
		matched := ProbeStaticDictionary(h.dict, h.dictTable, rb, curIx, maxLength, rb.Mask-15, h.sweep == 1, &h.stats, out)
		h.metrics.ObserveDictProbe(matched)
		if matched {
			updated = true
		}
	}

	return updated
}

func (h *sweepHasher) Metrics() *obsmetrics.Metrics { return h.metrics }

func (h *sweepHasher) Store(rb *RingBuffer, ix int) {
	idx := h.hashKey(rb, ix)
	bucket := h.bucketOf(idx)
	slot := h.cursor[idx]
	bucket[slot] = int32(ix)
	h.cursor[idx] = (slot + 1) % uint8(h.sweep)
}

func (h *sweepHasher) StoreRange(rb *RingBuffer, start, end int) {
	for ix := start; ix < end; ix++ {
		h.Store(rb, ix)
	}
}
