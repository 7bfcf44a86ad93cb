// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Grounded on: github.com/woozymasta/lzo (decompress.go — copyLiteralRun
// plus copyBackRef driven by a decoded instruction stream), generalized
// from decoding an LZO opcode byte-stream to replaying a Command slice.

package brcore

// ReplayCommands reconstructs the byte sequence a Command stream describes
// by copying insert_length literal bytes from source at each command's
// current input cursor, then applying a CopyBackRef for copy_length bytes
// (spec §6: "CreateBackwardReferences ... emits Commands that, replayed
// against the same input, reconstruct it exactly" — property 1 of spec §8).
//
// Distance codes are decoded against a DistanceCache rolled forward the
// same way CreateBackwardReferences' driver rolls it (spec §4.2, §4.5):
// this is the one place outside driver.go that needs the cache's evolution,
// since a short code alone cannot be decoded without it.
func ReplayCommands(source []byte, commands []Command, numLastDistances int) ([]byte, error) {
	cache := NewDistanceCache()
	cache.Prepare(numLastDistances)
	out := make([]byte, 0, len(source))
	inPos := 0

	for _, cmd := range commands {
		if inPos+cmd.InsertLength > len(source) {
			return nil, ErrInsertPastInput
		}
		out = append(out, source[inPos:inPos+cmd.InsertLength]...)
		inPos += cmd.InsertLength

		if cmd.CopyLength == 0 {
			continue
		}

		distance, isShortCode := decodeDistanceCode(cmd.DistanceCode, cache)
		var err error
		out, err = CopyBackRef(out, distance, cmd.CopyLength)
		if err != nil {
			return nil, err
		}
		if !isShortCode {
			cache.Rotate(distance, numLastDistances)
		}
		inPos += cmd.CopyLength
	}

	if inPos < len(source) {
		out = append(out, source[inPos:]...)
	}

	return out, nil
}

// decodeDistanceCode inverts ComputeDistanceCode (spec §4.5): codes 1..16
// read back one of the 16 cache slots verbatim (and leave the cache
// untouched, since a short-code match reuses a distance already present
// rather than introducing a new one); any other code recovers an explicit
// distance as code-15.
func decodeDistanceCode(code int, cache *DistanceCache) (distance int, isShortCode bool) {
	if code >= 1 && code <= 16 {
		return cache[code-1], true
	}
	return code - 15, false
}
