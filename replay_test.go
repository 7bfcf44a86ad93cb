// SPDX-License-Identifier: GPL-2.0-only

package brcore

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReplayRoundtripProperty exercises spec §8's roundtrip property
// (CreateBackwardReferences output, replayed, reconstructs the input
// exactly) over a spread of synthetic corpora and every hasher family, the
// way the teacher's compat_corpus_test.go swept multiple fixed inputs
// through one assertion helper.
func TestReplayRoundtripProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	corpora := map[string][]byte{
		"empty":           {},
		"single byte":     []byte("x"),
		"short literal":   []byte("hello"),
		"long repeat":     []byte(strings.Repeat("x", 2000)),
		"english prose":   []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 30)),
		"binary noise":    randomBytes(rng, 3000),
		"mixed structure": mixedCorpus(rng),
	}

	for name, data := range corpora {
		data := data
		for _, quality := range []int{1, 5, 9, 11} {
			quality := quality
			t.Run(name+"/"+qualityName(quality), func(t *testing.T) {
				p := DefaultParams(quality)
				commands, err := Scan(data, p)
				require.NoError(t, err)

				got, err := ReplayCommands(data, commands, p.Hasher.NumLastDistancesToCheck)
				require.NoError(t, err)
				assert.Equal(t, data, got)
			})
		}
	}
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// mixedCorpus interleaves repeated structure with random noise, the shape
// most likely to exercise both the lazy look-ahead path and the literal
// sparse-skip striding in the same scan (spec §4.7).
func mixedCorpus(rng *rand.Rand) []byte {
	var b []byte
	b = append(b, []byte(strings.Repeat("repeated-block-", 20))...)
	b = append(b, randomBytes(rng, 500)...)
	b = append(b, []byte(strings.Repeat("repeated-block-", 20))...)
	return b
}

func TestReplayRejectsTruncatedSource(t *testing.T) {
	commands := []Command{{InsertLength: 10, CopyLength: 0}}
	_, err := ReplayCommands([]byte("short"), commands, 16)
	require.ErrorIs(t, err, ErrInsertPastInput)
}

func TestReplayRejectsUnderrunCopy(t *testing.T) {
	// Explicit code 20 decodes to distance 5, reaching before the start of
	// an empty output buffer.
	commands := []Command{{InsertLength: 0, CopyLength: 4, DistanceCode: 20}}
	_, err := ReplayCommands([]byte("ab"), commands, 16)
	require.ErrorIs(t, err, ErrLookBehindUnderrun)
}

func TestReplayShortCodeDoesNotRotateCache(t *testing.T) {
	// A short-code command reuses an existing cache slot and must leave the
	// cache unchanged (spec §4.5); verified indirectly by checking that two
	// consecutive short-code commands referencing the seeded default
	// distance both resolve to the same 4-byte copy.
	source := []byte("abcdabcdabcdabcd")
	commands := []Command{
		{InsertLength: 4, CopyLength: 0},
		{InsertLength: 0, CopyLength: 4, DistanceCode: 2}, // slot 1 -> seeded distance 4
		{InsertLength: 0, CopyLength: 4, DistanceCode: 2},
		{InsertLength: 0, CopyLength: 4, DistanceCode: 2},
	}
	got, err := ReplayCommands(source, commands, 16)
	require.NoError(t, err)
	assert.Equal(t, source, got)
}
