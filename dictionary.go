// SPDX-License-Identifier: GPL-2.0-only
// Grounded directly on original_source/src/enc/backward_references.rs
// (TestStaticDictionaryItem, SearchInStaticDictionary, Hash14): the item
// bit-layout, matchlen/cutoff/transform_id/backward arithmetic, and the
// two-slot shallow/normal probe are copied from there, not invented.

package brcore

// StaticDictionary is the read-only word table the dictionary prober
// searches (spec §1: "the static dictionary contents (treated as opaque
// read-only tables)" — out of scope for content, in scope for the probing
// algorithm built around it). Words are grouped by their exact length, the
// same (length, offset) addressing spec §4.6's item encoding assumes. Groups
// shorter than 4 bytes are never indexed by BuildDictHashTable, since the
// probe hashes 4 bytes of key material, so words stored there are never
// matched. Deliberately small and representative rather than Brotli's
// real multi-kilobyte table; see dictionary_data.go and DESIGN.md.
type StaticDictionary struct {
	byLength [32][][]byte
}

// sizeBitsByLength is the published Brotli static-dictionary
// size-bits-by-length table (spec §4.6): for a word of a given length, the
// number of low bits of `backward` reserved for its dist field, with
// transform_id packed into the bits above. It is sized for the real
// dictionary's per-length word counts; this core's much smaller
// representative dictionary never comes close to exhausting any entry, so
// reusing the real constants costs nothing but keeps the format-level
// arithmetic identical to the reference encoder.
var sizeBitsByLength = [32]uint{
	0, 0, 0, 0, 10, 10, 11, 11, 10, 10,
	10, 10, 10, 9, 9, 8, 7, 7, 8, 7,
	7, 6, 6, 5, 5, 0, 0, 0, 0, 0,
	0, 0,
}

// hash14 hashes the current 4-byte key to a 14-bit value (spec §4.6: "a
// sibling 14-bit hash of the current four bytes"), the same shape as
// Hash14 in the original source.
func hash14(key uint32) uint32 {
	return (key * kHashMul32) >> (32 - dictHashBits)
}

// BuildDictHashTable indexes dict by the first 4 bytes of every word,
// storing packed items (len in the low 5 bits, dist - the word's index
// within its length group - above that) at slot and slot+1 of a
// 2*2^dictHashBits table, mirroring the two adjacent slots
// ProbeStaticDictionary reads.
func BuildDictHashTable(dict *StaticDictionary) []uint16 {
	table := make([]uint16, 2*(dictHashMask+1))
	for length, group := range dict.byLength {
		if length < 4 {
			continue
		}
		for dist, word := range group {
			key := uint32(word[0]) | uint32(word[1])<<8 | uint32(word[2])<<16 | uint32(word[3])<<24
			slot := hash14(key) << 1
			item := uint16(length) | uint16(dist)<<5
			if table[slot] == 0 {
				table[slot] = item
			} else if table[slot+1] == 0 {
				table[slot+1] = item
			}
		}
	}
	return table
}

// testStaticDictionaryItem implements TestStaticDictionaryItem: it resolves
// item into a candidate word, measures the longest common prefix against
// the input at curIx, rejects matches too short to be worth a transform
// (spec §4.6's cutoff gate), and on acceptance encodes the remaining cut
// suffix into a transform_id folded into backward.
func testStaticDictionaryItem(dict *StaticDictionary, item uint16, rb *RingBuffer,
	curIx, maxLength, maxBackward int, out *HasherSearchResult) bool {

	length := int(item & 0x1F)
	dist := int(item >> 5)
	if length > maxLength || dist >= len(dict.byLength[length]) {
		return false
	}
	word := dict.byLength[length][dist]

	matchlen := 0
	for matchlen < length && rb.At(curIx+matchlen) == word[matchlen] {
		matchlen++
	}
	if matchlen+kCutoffTransformsCount <= length || matchlen == 0 {
		return false
	}

	cut := length - matchlen
	transformID := (cut << 2) + int((kCutoffTransforms>>uint(cut*6))&0x3f)
	backward := maxBackward + dist + 1 + (transformID << sizeBitsByLength[length])

	score := Score(matchlen, backward)
	if score <= out.Score {
		return false
	}
	out.Len = matchlen
	out.LenXCode = length ^ matchlen
	out.Distance = backward
	out.Score = score
	return true
}

// ProbeStaticDictionary implements spec §4.6 / SearchInStaticDictionary: it
// looks up the dictionary item(s) hashing to the current 4-byte key and
// tests each one, reporting whether out was updated.
//
// shallow restricts the probe to a single hash-table slot (spec §3's
// "shallow (1 entry)" mode); the normal mode additionally probes slot+1.
func ProbeStaticDictionary(dict *StaticDictionary, table []uint16, rb *RingBuffer,
	curIx, maxLength, maxBackwardLimit int, shallow bool, stats *dictStats, out *HasherSearchResult) bool {

	if maxLength < 4 || !stats.shouldProbe() {
		return false
	}

	key32 := uint32(rb.At(curIx)) | uint32(rb.At(curIx+1))<<8 |
		uint32(rb.At(curIx+2))<<16 | uint32(rb.At(curIx+3))<<24
	key := int(hash14(key32)) << 1

	n := 2
	if shallow {
		n = 1
	}

	updated := false
	for i := 0; i < n; i++ {
		stats.lookups++
		if item := table[key]; item != 0 {
			if testStaticDictionaryItem(dict, item, rb, curIx, maxLength, maxBackwardLimit, out) {
				stats.matches++
				updated = true
			}
		}
		key++
	}
	return updated
}
