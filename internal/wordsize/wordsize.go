// SPDX-License-Identifier: GPL-2.0-only

// Package wordsize reports the platform word width the scoring constants in
// spec §4.1 are defined in terms of ("240·W" uses W = the word size in
// bytes: 8 for 64-bit, 4 for 32-bit), and whether the current CPU does cheap
// unaligned 64-bit loads the way BROTLI_UNALIGNED_LOAD64 assumes.
package wordsize

import (
	"math/bits"
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Bytes is the platform word size in bytes, used as the W constant in the
// scoring functions. It is a build-time constant (not configurable), since
// spec §9 requires hash output to be identical on 32-bit and 64-bit
// platforms "except where the scoring constants depend on word size (which
// is intentional)".
const Bytes = bits.UintSize / 8

// FastUnalignedLoads reports whether the running CPU can do unaligned 64-bit
// loads at full speed, the assumption BROTLI_UNALIGNED_LOAD64 bakes in
// (spec §9, "Unaligned loads"). amd64 and arm64 always qualify; on amd64 we
// additionally require SSE2 (present on every CPU Go still supports, so this
// is effectively documentation of the assumption rather than a real gate).
// Match extension falls back to a byte-at-a-time loop when this is false.
func FastUnalignedLoads() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpuid.CPU.Has(cpuid.SSE2)
	case "arm64":
		return true
	default:
		return false
	}
}
