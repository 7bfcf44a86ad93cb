// SPDX-License-Identifier: GPL-2.0-only

package brcore

import (
	"strings"
	"testing"
)

func runScanAndReplay(t *testing.T, data []byte, p *Params) []Command {
	t.Helper()
	commands, err := Scan(data, p)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	got, err := ReplayCommands(data, commands, p.Hasher.NumLastDistancesToCheck)
	if err != nil {
		t.Fatalf("ReplayCommands: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("roundtrip mismatch: got %d bytes, want %d bytes", len(got), len(data))
	}
	return commands
}

func TestRoundtripAllHasherTypes(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 40))

	for _, quality := range []int{1, 3, 5, 7, 9, 11} {
		quality := quality
		t.Run(qualityName(quality), func(t *testing.T) {
			p := DefaultParams(quality)
			runScanAndReplay(t, data, p)
		})
	}
}

func qualityName(q int) string {
	switch {
	case q <= 2:
		return "q1-2-sweep"
	case q <= 4:
		return "q3-4-sweep"
	case q <= 7:
		return "q5-7-chain"
	case q <= 9:
		return "q8-9-chain"
	default:
		return "q10-11-banked"
	}
}

func TestScanRepeatedSingleByte(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = 'a'
	}
	p := DefaultParams(9)
	commands := runScanAndReplay(t, data, p)

	var totalCopy int
	for _, c := range commands {
		totalCopy += c.CopyLength
	}
	if totalCopy == 0 {
		t.Error("expected at least one copy command over 4096 identical bytes")
	}
}

func TestScanPeriodicPattern(t *testing.T) {
	data := []byte(strings.Repeat("abc", 1000))
	p := DefaultParams(9)
	runScanAndReplay(t, data, p)
}

func TestScanUniformRandomBytesNoCrash(t *testing.T) {
	data := make([]byte, 4096)
	seed := uint32(0x2545F491)
	for i := range data {
		// A cheap xorshift generator: deterministic so the test has no flake
		// risk, and spec §8's property 6 only asks that literal-only output
		// still roundtrips, not that any matches be found.
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		data[i] = byte(seed)
	}
	p := DefaultParams(9)
	runScanAndReplay(t, data, p)
}

// TestScanDictionaryWordPrefix checks that a static-dictionary match gets
// produced with the shape spec §4.6 describes. It scans directly rather than
// through runScanAndReplay: a dictionary match's distance addresses the
// dictionary, not the in-window ring buffer ReplayCommands reconstructs
// from, so replaying a command stream containing one is outside what this
// core's decoder-side half supports (spec §1 treats dictionary contents as
// opaque, and ReplayCommands has no dictionary to resolve one against).
func TestScanDictionaryWordPrefix(t *testing.T) {
	data := []byte("function transform the document class structure")
	p := DefaultParams(5)
	commands, err := Scan(data, p)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var dictCmd *Command
	for i, c := range commands {
		if c.IsDictionaryMatch(p.MaxBackwardLimit()) {
			dictCmd = &commands[i]
		}
	}
	if dictCmd == nil {
		t.Fatal("expected at least one static-dictionary match among common words")
	}
	if dictCmd.CopyLength == 0 {
		t.Error("dictionary match command has zero copy length")
	}
}

func TestScanLazyMatchOnRepeatedSentence(t *testing.T) {
	sentence := "a quick test of the lazy matching behavior. "
	data := []byte(sentence + sentence + sentence)
	p := DefaultParams(7)
	runScanAndReplay(t, data, p)
}

func TestCreateBackwardReferencesAcrossChunkBoundaries(t *testing.T) {
	// Deliberately avoids any static-dictionary word (spec §1's dictionary
	// is opaque content, but ReplayCommands has no dictionary to resolve a
	// match against — see TestScanDictionaryWordPrefix); this test is about
	// the driver's chunk-boundary bookkeeping, not dictionary probing.
	data := []byte(strings.Repeat("chunked streaming input payload sample ", 50))
	p := DefaultParams(7)
	params := *p
	if need := windowBitsFor(len(data)); params.LGWin < need {
		params.LGWin = need
	}
	if err := params.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	h, err := NewHasher(&params)
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}

	mask := (1 << uint(params.LGWin)) - 1
	buf := make([]byte, mask+1)
	copy(buf, data)
	rb := NewRingBuffer(buf, params.LGWin)
	cache := NewDistanceCache()

	var commands []Command
	insertLen := 0
	chunkSize := 37 // deliberately not a divisor of len(data)
	pos := 0
	for pos < len(data) {
		n := min(chunkSize, len(data)-pos)
		commands, insertLen = CreateBackwardReferences(&params, h, rb, cache, pos, n, insertLen, commands)
		pos += n
	}

	got, err := ReplayCommands(data, commands, params.Hasher.NumLastDistancesToCheck)
	if err != nil {
		t.Fatalf("ReplayCommands: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("chunked roundtrip mismatch: got %d bytes, want %d bytes", len(got), len(data))
	}
}
