// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Grounded on: github.com/woozymasta/lzo (compress.go — nil-options-means-
// defaults top-level convenience wrapper; decompress_reader.go — the
// read-everything-then-delegate io.Reader wrapper).

package brcore

import (
	"io"

	"go.uber.org/zap"
)

// windowBitsFor returns the smallest lgwin in [10,24] whose window covers n
// bytes, so Scan never truncates a one-shot buffer into a window smaller
// than the data itself.
func windowBitsFor(n int) int {
	bits := 10
	for bits < 24 && (1<<uint(bits)) < n {
		bits++
	}
	return bits
}

// Scan runs the full discovery loop over data in one call (spec §4.7,
// §6 "Top-level operation"). p may be nil, in which case DefaultParams(9)
// is used. p.LGWin is raised as needed to cover len(data); callers that
// want true sliding-window behavior over a stream larger than memory
// should drive CreateBackwardReferences directly instead.
func Scan(data []byte, p *Params) ([]Command, error) {
	if p == nil {
		p = DefaultParams(9)
	}
	params := *p
	if need := windowBitsFor(len(data)); params.LGWin < need {
		params.LGWin = need
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	h, err := NewHasher(&params)
	if err != nil {
		return nil, err
	}

	mask := (1 << uint(params.LGWin)) - 1
	buf := make([]byte, mask+1)
	copy(buf, data)
	rb := NewRingBuffer(buf, params.LGWin)

	scratch := acquireScanScratch()
	defer releaseScanScratch(scratch)

	scratch.commands, _ = CreateBackwardReferences(&params, h, rb, scratch.cache, 0, len(data), 0, scratch.commands)

	out := make([]Command, len(scratch.commands))
	copy(out, scratch.commands)

	h.Metrics().ObserveCommandsEmitted(len(out))

	params.logger().Debug("scan complete",
		zap.Int("input_bytes", len(data)),
		zap.Int("commands", len(out)),
		zap.Int("hasher_type", params.Hasher.Type),
	)

	return out, nil
}

// ScanFromReader reads r fully, then calls Scan. It has no scanning logic
// of its own. If maxInputSize > 0 and more bytes are read, it returns
// ErrInputTooLarge.
func ScanFromReader(r io.Reader, maxInputSize int, p *Params) ([]Command, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if maxInputSize > 0 && len(data) > maxInputSize {
		return nil, ErrInputTooLarge
	}

	return Scan(data, p)
}
