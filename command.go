// SPDX-License-Identifier: GPL-2.0-only

package brcore

// Command is one (insert_length, copy_length, distance_code) tuple emitted
// by CreateBackwardReferences (spec §3, §6). CopyLengthCode is CopyLength
// XOR LenXCode — XORing a dictionary match's transform-selecting len_x_code
// into the coded copy length, or equal to CopyLength for in-window matches
// where LenXCode is always 0.
type Command struct {
	InsertLength   int
	CopyLength     int
	CopyLengthCode int
	DistanceCode   int
}

// IsDictionaryMatch reports whether this command's distance addresses the
// static dictionary rather than the in-window ring buffer (spec §4.6:
// "backward = max_backward + dist + 1 + (transform_id << size_bits...)").
// A distance beyond the window's max_backward_limit can only have come from
// the dictionary probe.
func (c Command) IsDictionaryMatch(maxBackwardLimit int) bool {
	return c.CopyLength > 0 && c.DistanceCode > 0 && c.decodedDistance() > maxBackwardLimit
}

// decodedDistance recovers an explicit-code distance (code = distance+15)
// for commands whose code did not come from one of the 16 cache slots.
// Short-code commands (code in [1,16]) address a cache slot and cannot on
// their own reconstruct a distance without the cache state at emission
// time; callers needing that should track the cache alongside the command
// stream instead (as the roundtrip replayer in replay.go does).
func (c Command) decodedDistance() int {
	if c.DistanceCode <= 16 {
		return 0
	}
	return c.DistanceCode - 15
}

// Insert/copy length code tables (spec §6, "Static tables (dependency)").
// These belong to the downstream entropy coder (out of scope per spec §1)
// but are kept here, unused by the scan loop itself, because
// internal/downstream's bit-cost oracle (SPEC_FULL §6) needs them to
// estimate what the entropy coder would have spent on a given command
// stream when sanity-checking this core's output in tests.
var (
	kInsBase = [24]int{
		0, 1, 2, 3, 4, 5, 6, 8, 10, 14, 18, 26,
		34, 50, 66, 98, 130, 194, 322, 578, 1090, 2114, 6210, 22594,
	}
	kInsExtra = [24]int{
		0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
		4, 4, 5, 5, 6, 7, 8, 9, 10, 12, 14, 24,
	}
	kCopyBase = [24]int{
		2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 14, 18,
		22, 30, 38, 54, 70, 102, 134, 198, 326, 582, 1094, 2118,
	}
	kCopyExtra = [24]int{
		0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 2,
		3, 3, 4, 4, 5, 5, 6, 7, 8, 9, 10, 24,
	}
)
