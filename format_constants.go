// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (format_constants.go — grouped named-constant-block style)

package brcore

// Hash multipliers (spec §4.3). These are opaque: changing them changes the
// output of the compressor, so they are never derived or tuned, only named.
const (
	kHashMul32     = 0x1e35a7bd
	kHashMul64     = 0x1e35a7bd_1e35a7bd
	kHashMul64Long = 0x1fe35a7b_d3579bd3
)

// Static-dictionary transform/cutoff constants (spec §4.6, §6).
const (
	kCutoffTransforms      = 0x71b520a_da2d3200
	kCutoffTransformsCount = 10
)

// Static-dictionary probe hash width (spec §4.6: "a sibling 14-bit hash of
// the current four bytes").
const (
	dictHashBits = 14
	dictHashMask = (1 << dictHashBits) - 1
)

// kMinScoreBase is the word-size-independent half of kMinScore (spec §4.1);
// the W-dependent half is added in score.go using wordsize.Bytes.
const kMinScoreBase = 100

// kInvalidPos marks an empty bucket/chain slot across all hasher variants
// (spec §3: "a candidate is valid only if cur - entry <= max_backward";
// a zero-valued or sentinel slot must never satisfy that check by accident).
const kInvalidPos = -1
