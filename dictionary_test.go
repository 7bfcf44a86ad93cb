// SPDX-License-Identifier: GPL-2.0-only

package brcore

import "testing"

func TestProbeStaticDictionaryMatchesKnownWord(t *testing.T) {
	dict := NewStaticDictionary()
	table := BuildDictHashTable(dict)

	data := make([]byte, 16)
	copy(data, []byte("that0000000000"))
	rb := NewRingBuffer(data, 4)

	var stats dictStats
	out := &HasherSearchResult{Score: kMinScore}

	if !ProbeStaticDictionary(dict, table, rb, 0, 16, 1000, false, &stats, out) {
		t.Fatal("expected a dictionary match for \"that\"")
	}
	if out.Len != 4 {
		t.Errorf("out.Len = %d, want 4", out.Len)
	}
	if out.Distance <= 1000 {
		t.Errorf("dictionary match distance %d should exceed maxBackwardLimit 1000", out.Distance)
	}
	if stats.lookups != 2 || stats.matches != 1 {
		t.Errorf("stats = %+v, want two lookups (normal mode probes both slots) and one match", stats)
	}
}

func TestProbeStaticDictionaryNoMatch(t *testing.T) {
	dict := NewStaticDictionary()
	table := BuildDictHashTable(dict)

	data := make([]byte, 16)
	copy(data, []byte("qzjx0000000000")) // not a dictionary prefix
	rb := NewRingBuffer(data, 4)

	var stats dictStats
	out := &HasherSearchResult{Score: kMinScore}

	if ProbeStaticDictionary(dict, table, rb, 0, 16, 1000, false, &stats, out) {
		t.Fatal("did not expect a dictionary match")
	}
	if stats.lookups != 2 || stats.matches != 0 {
		t.Errorf("stats = %+v, want two lookups and zero matches", stats)
	}
}

func TestDictStatsGating(t *testing.T) {
	stats := dictStats{lookups: 0, matches: 0}
	if !stats.shouldProbe() {
		t.Error("a fresh dict_stats should allow probing")
	}

	stats = dictStats{lookups: 200, matches: 0}
	if stats.shouldProbe() {
		t.Error("200 consecutive misses should gate off further probing (spec §4.6 1-in-128 floor)")
	}

	stats = dictStats{lookups: 200, matches: 2}
	if !stats.shouldProbe() {
		t.Error("a 1% hit rate should clear the 1-in-128 floor")
	}
}

func TestProbeStaticDictionaryRewardsLongerCutoffMatch(t *testing.T) {
	dict := NewStaticDictionary()
	table := BuildDictHashTable(dict)

	// "function" is 8 bytes; matching only "functi" (6 bytes) still clears
	// the cutoff gate (6+10 > 8) and should produce a transform_id-encoded
	// backward distance distinct from the dictionary's word count alone.
	data := make([]byte, 16)
	copy(data, []byte("functiAAAAAAAAAA"))
	rb := NewRingBuffer(data, 4)

	var stats dictStats
	out := &HasherSearchResult{Score: kMinScore}
	if !ProbeStaticDictionary(dict, table, rb, 0, 16, 1000, false, &stats, out) {
		t.Fatal("expected a partial dictionary match for \"functi\"")
	}
	if out.Len != 6 {
		t.Errorf("out.Len = %d, want 6 (matchlen, not the full word length)", out.Len)
	}
	if out.LenXCode != 8^6 {
		t.Errorf("out.LenXCode = %d, want len^matchlen = %d", out.LenXCode, 8^6)
	}
}
