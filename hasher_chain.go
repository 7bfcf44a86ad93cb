// SPDX-License-Identifier: GPL-2.0-only
// Grounded on: github.com/woozymasta/lzo (sliding_window.go — hashHead +
// chainNext linked-list per hash bucket; compress_1x_999.go —
// hcSearchDepthByLevel's level-to-probe-depth table and hcMatch3Table's
// head/chain/bestLen triple).

package brcore

import (
	"github.com/brotlicore/backref/internal/obsmetrics"
	"github.com/prometheus/client_golang/prometheus"
)

// chainHasher implements the H5/H6 family (spec §3): each bucket holds a
// cyclically overwritten ring of up to block_size recent positions, walked
// newest-first up to a fixed probe depth per call, plus up to 4 distance-cache slots probed first with
// a per-slot score penalty (spec §4.2, §4.4).
type chainHasher struct {
	bucketBits int
	blockBits  int
	blockSize  int
	blockMask  int
	hashType   int // 5 or 6 (spec §3): selects which of the two hash paths below applies
	hashLen    int // H6 only; H5 always hashes a fixed 4 bytes
	numLast    int
	useDict    bool
	depth      int

	head [][]int32 // per-bucket ring of up to blockSize recent positions
	next []uint16  // per-bucket next-write cursor

	dict      *StaticDictionary
	dictTable []uint16
	stats     dictStats

	metrics *obsmetrics.Metrics
}

func newChainHasher(p *HasherParams, quality int, reg prometheus.Registerer) *chainHasher {
	bucketBits := p.BucketBits
	if bucketBits == 0 {
		bucketBits = 15
	}
	blockBits := p.BlockBits
	if blockBits == 0 {
		blockBits = 6
	}
	// H5 is a fixed 4-byte hash; only H6's width is configurable via
	// HasherParams.HashLen (spec §3's data-model table).
	hashLen := 4
	if p.Type == 6 {
		hashLen = p.HashLen
	}

	buckets := 1 << uint(bucketBits)
	blockSize := 1 << uint(blockBits)

	h := &chainHasher{
		bucketBits: bucketBits,
		blockBits:  blockBits,
		blockSize:  blockSize,
		blockMask:  blockSize - 1,
		hashType:   p.Type,
		hashLen:    hashLen,
		numLast:    p.NumLastDistancesToCheck,
		useDict:    p.UseDictionary,
		depth:      chainProbeDepth(quality),
		head:       make([][]int32, buckets),
		next:       make([]uint16, buckets),
		metrics:    obsmetrics.New(reg),
	}
	for i := range h.head {
		bucket := make([]int32, blockSize)
		for j := range bucket {
			bucket[j] = kInvalidPos
		}
		h.head[i] = bucket
	}
	if h.useDict {
		h.dict = NewStaticDictionary()
		h.dictTable = BuildDictHashTable(h.dict)
	}
	return h
}

func (h *chainHasher) HashTypeLen() int    { return h.hashLen }
func (h *chainHasher) StoreLookahead() int { return h.hashLen }

func (h *chainHasher) PrepareDistanceCache(cache *DistanceCache) {
	cache.Prepare(h.numLast)
}

// hashKey implements spec §4.3's two chain-family hash paths: H5 is the
// fixed 4-byte-flavored hash (unaligned 32-bit load, kHashMul32), H6 is the
// variable-width masked 64-bit hash (unaligned 64-bit load masked to
// hash_len bytes, kHashMul64Long).
func (h *chainHasher) hashKey(rb *RingBuffer, pos int) int {
	if h.hashType == 5 {
		v := rb.Load32(pos)
		return int((v * kHashMul32) >> uint(32-h.bucketBits))
	}
	mask := ^uint64(0) >> uint(64-8*h.hashLen)
	v := rb.Load64(pos) & mask
	return int((v * kHashMul64Long) >> uint(64-h.bucketBits))
}

func (h *chainHasher) FindLongestMatch(rb *RingBuffer, cache *DistanceCache,
	curIx, maxLength, maxBackward int, out *HasherSearchResult) bool {

	updated := false

	// Distance-cache slots first (spec §4.4): cheap to test, penalized by
	// slot index so an equally long in-chain match at a fresher distance
	// still wins ties.
	numCacheSlots := h.numLast
	if numCacheSlots > 4 {
		numCacheSlots = 4
	}
	for i := 0; i < numCacheSlots; i++ {
		backward := cache[i]
		if backward <= 0 || backward > maxBackward {
			continue
		}
		candidate := curIx - backward
		length := rb.MatchLength(candidate, curIx, maxLength)
		if length < 3 && !(length == 2 && i < 2) {
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

	idx := h.hashKey(rb, curIx)
	bucket := h.head[idx]
	depth := h.depth
	cursor := int(h.next[idx])

	probed := 0
	for i := 0; i < h.blockSize && i < depth; i++ {
		slot := (cursor - 1 - i) & h.blockMask
		cand := bucket[slot]
		if cand == kInvalidPos {
			break
		}
		probed++
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

	h.metrics.ObserveChainProbeDepth(probed)

	if h.useDict {
		// rb.Mask-15 is the window's max backward limit, (1<<lgwin)-16.
		matched := ProbeStaticDictionary(h.dict, h.dictTable, rb, curIx, maxLength, rb.Mask-15, false, &h.stats, out)
		h.metrics.ObserveDictProbe(matched)
		if matched {
			updated = true
		}
	}

	return updated
}

func (h *chainHasher) Metrics() *obsmetrics.Metrics { return h.metrics }

func (h *chainHasher) Store(rb *RingBuffer, ix int) {
	idx := h.hashKey(rb, ix)
	bucket := h.head[idx]
	slot := int(h.next[idx]) & h.blockMask
	bucket[slot] = int32(ix)
	h.next[idx] = uint16((slot + 1) & h.blockMask)
}

func (h *chainHasher) StoreRange(rb *RingBuffer, start, end int) {
	for ix := start; ix < end; ix++ {
		h.Store(rb, ix)
	}
}
