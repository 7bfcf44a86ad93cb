// SPDX-License-Identifier: GPL-2.0-only
// Grounded on: github.com/woozymasta/lzo (doc.go — package overview plus
// one short usage example per top-level operation).

/*
Package brcore implements the backward-reference discovery core of a
Brotli-compatible compressor: given a window of source bytes, it finds
profitable LZ77-style matches against bytes already seen (or against a
small static dictionary of common fragments) and emits them as a sequence
of Commands. It does not implement entropy coding, block splitting, or
bitstream framing — only match discovery.

# Scan

For a one-shot buffer that fits in memory:

	commands, err := brcore.Scan(data, brcore.DefaultParams(9))

From an io.Reader:

	commands, err := brcore.ScanFromReader(r, 0, brcore.DefaultParams(9))

# Streaming

Longer-lived callers drive the discovery loop directly over a shared
RingBuffer and Hasher, carrying the returned insert length into the next
call:

	hasher, err := brcore.NewHasher(params)
	rb := brcore.NewRingBuffer(window, params.LGWin)
	cache := brcore.NewDistanceCache()
	commands, insertLen = brcore.CreateBackwardReferences(params, hasher, rb, cache, pos, n, insertLen, commands)

# Replay

ReplayCommands reconstructs the original bytes from a Command stream,
useful for verifying that a Scan call's output is lossless:

	out, err := brcore.ReplayCommands(data, commands, params.Hasher.NumLastDistancesToCheck)
*/
package brcore
