// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Grounded on: github.com/woozymasta/lzo (copy.go — exponential-doubling
// overlapping back-reference copy).

package brcore

// CopyBackRef appends length bytes to *dst copying from dst[len(dst)-dist:]
// (spec §6: the copy semantics a downstream decoder applies to every
// Command this core emits). When dist < length the source region overlaps
// the destination — the match covers bytes this same copy is still
// writing — so the copy is seeded with one full distance chunk and then
// doubled against the output already produced, which is the behavior a
// repeated short pattern (e.g. "abab...ab") relies on.
func CopyBackRef(dst []byte, dist, length int) ([]byte, error) {
	start := len(dst) - dist
	if start < 0 {
		return nil, ErrLookBehindUnderrun
	}

	dst = append(dst, make([]byte, length)...)
	out := dst[len(dst)-length:]

	if dist >= length {
		copy(out, dst[start:start+length])
		return dst, nil
	}

	copied := copy(out, dst[start:start+dist])
	for copied < length {
		n := copy(out[copied:], out[:copied])
		copied += n
	}

	return dst, nil
}
