// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Grounded on: github.com/woozymasta/lzo (opcode_byte.go — single-purpose
// low-8-bits truncation helper), repurposed from opcode packing to the
// banked hasher's tiny_hash fingerprint truncation.

package brcore

// tinyHashByte truncates a hash key to the single-byte fingerprint a banked
// hasher stores per position (spec §4.4, "tiny_hash" fast-rejection byte).
func tinyHashByte(key int) uint8 {
	return uint8(key & 0xff)
}
