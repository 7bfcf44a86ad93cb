// SPDX-License-Identifier: GPL-2.0-only
// Grounded directly on original_source/src/enc/backward_references.rs
// (CreateBackwardReferencesH5/H40's shared loop shape: single-step lazy
// look-ahead gated by cost_diff_lazy, apply_random_heuristics sparse-skip
// striding, ComputeDistanceCode-gated cache rotation), and on the teacher's
// compress9x.go for the Go idiom of a small package-level driver function
// operating on a reusable scratch struct (spec §9's "single polymorphic
// driver parameterized over a capability set").

package brcore

// costDiffLazy is the minimum score margin a one-step look-ahead match at
// position+1 must beat the match at position by before the driver delays
// emitting the earlier match (spec §4.7).
const costDiffLazy = 175

// literalSpreeLengthForSparseSearch returns the random-heuristics window
// size (spec §4.7): the number of literals past the last match before
// sparse-skip striding starts, 64 below quality 9 and 512 from quality 9 up.
// The stride itself (2 or 4) does not depend on quality.
func literalSpreeLengthForSparseSearch(quality int) int {
	if quality < 9 {
		return 64
	}
	return 512
}

// CreateBackwardReferences runs the full discovery loop (spec §4.7) over
// [position, position+numBytes) of rb, appending one Command per accepted
// match (carrying the literal run before it as InsertLength) to commands;
// literals after the last match are not appended. It returns the updated
// command slice
// together with the insert-length carried over for the caller's next call
// (mirroring last_insert_len in the original driver, so callers can invoke
// this repeatedly across chunk boundaries without losing pending literals).
func CreateBackwardReferences(p *Params, h Hasher, rb *RingBuffer, cache *DistanceCache,
	position, numBytes int, lastInsertLen int, commands []Command) ([]Command, int) {

	maxBackwardLimit := p.MaxBackwardLimit()
	posEnd := position + numBytes
	hashTypeLen := h.HashTypeLen()
	storeLookahead := h.StoreLookahead()

	storeEnd := position
	if numBytes >= storeLookahead {
		storeEnd = posEnd - storeLookahead + 1
	}

	windowSize := literalSpreeLengthForSparseSearch(p.Quality)
	applyRandomHeuristics := position + windowSize

	insertLength := lastInsertLen

	h.PrepareDistanceCache(cache)

	var sr HasherSearchResult

	for position+hashTypeLen < posEnd {
		maxLength := posEnd - position
		maxDistance := min(position, maxBackwardLimit)

		sr.reset(0)

		if h.FindLongestMatch(rb, cache, position, maxLength, maxDistance, &sr) {
			delayedInRow := 0
			maxLength--

		lazyLoop:
			for {
				var sr2 HasherSearchResult
				if p.Quality < 5 {
					sr2.Len = min(sr.Len-1, maxLength)
				}
				sr2.Score = kMinScore

				maxDistance = min(position+1, maxBackwardLimit)
				found := h.FindLongestMatch(rb, cache, position+1, maxLength, maxDistance, &sr2)

				if found && sr2.Score >= sr.Score+costDiffLazy {
					position++
					insertLength++
					sr = sr2
					delayedInRow++
					if delayedInRow < 4 && position+hashTypeLen < posEnd {
						maxLength--
						continue lazyLoop
					}
				}
				break
			}

			applyRandomHeuristics = position + 2*sr.Len + windowSize
			maxDistance = min(position, maxBackwardLimit)

			// A dictionary match's distance always exceeds maxBackwardLimit (spec
			// §4.6): it addresses a synthetic word+transform slot, not a ring
			// buffer offset, so it can never land in a cache slot and always
			// gets the explicit distance+15 code directly. Only in-window
			// matches participate in ComputeDistanceCode's cache lookup and
			// rotate the cache.
			var distanceCode int
			if sr.Distance > maxBackwardLimit {
				distanceCode = sr.Distance + 15
			} else {
				distanceCode = ComputeDistanceCode(sr.Distance, maxDistance, cache)
				if distanceCode > 16 {
					cache.Rotate(sr.Distance, p.Hasher.NumLastDistancesToCheck)
				}
			}

			commands = append(commands, Command{
				InsertLength:   insertLength,
				CopyLength:     sr.Len,
				CopyLengthCode: sr.Len ^ sr.LenXCode,
				DistanceCode:   distanceCode,
			})
			insertLength = 0

			h.StoreRange(rb, position+2, min(position+sr.Len, storeEnd))
			position += sr.Len
			continue
		}

		insertLength++
		position++

		if position <= applyRandomHeuristics {
			continue
		}

		if position > applyRandomHeuristics+4*windowSize {
			kMargin := max(storeLookahead-1, 4)
			posJump := min(position+16, posEnd-kMargin)
			for position < posJump {
				h.Store(rb, position)
				insertLength += 4
				position += 4
			}
		} else {
			kMargin := max(storeLookahead-1, 2)
			posJump := min(position+8, posEnd-kMargin)
			for position < posJump {
				h.Store(rb, position)
				insertLength += 2
				position += 2
			}
		}
	}

	insertLength += posEnd - position
	return commands, insertLength
}
