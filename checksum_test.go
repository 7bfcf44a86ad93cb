// SPDX-License-Identifier: GPL-2.0-only

package brcore

import (
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
)

// TestReplayChecksumMatchesSource hashes both sides of a scan/replay
// roundtrip with xxhash instead of a byte-by-byte comparison, the cheap
// whole-buffer sanity check a fuzz corpus runner would use before falling
// back to a full diff on mismatch.
func TestReplayChecksumMatchesSource(t *testing.T) {
	data := []byte(strings.Repeat("checksum roundtrip corpus entry ", 300))

	p := DefaultParams(9)
	commands, err := Scan(data, p)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	got, err := ReplayCommands(data, commands, p.Hasher.NumLastDistancesToCheck)
	if err != nil {
		t.Fatalf("ReplayCommands: %v", err)
	}

	want := xxhash.Sum64(data)
	have := xxhash.Sum64(got)
	if want != have {
		t.Fatalf("xxhash mismatch after roundtrip: want %x, got %x", want, have)
	}
}
