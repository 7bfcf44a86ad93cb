// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Grounded on: github.com/woozymasta/lzo (level_params.go — a fixed,
// index-by-level array of tuning knobs), repurposed from LZO1X-999's
// per-level tryLazy/goodLen/maxChain table to the chain hasher's
// per-quality probe-depth table.

package brcore

// chainProbeDepthByQuality mirrors fixedLevels' maxChain column: how many
// chain entries a single FindLongestMatch call is willing to walk, indexed
// by encoder quality (spec §4.4's hasher-specific "probe depth" knob).
// Index 0 is unused (quality 0 never selects a chain hasher — see
// DefaultParams in params.go).
var chainProbeDepthByQuality = [12]int{
	0,
	8, 8, 16, 16, 32, 64, 128, 256, 512, 1024, 2048,
}

func chainProbeDepth(quality int) int {
	quality = max(quality, 0)
	quality = min(quality, len(chainProbeDepthByQuality)-1)
	return chainProbeDepthByQuality[quality]
}
