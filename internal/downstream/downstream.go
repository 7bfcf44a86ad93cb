// SPDX-License-Identifier: GPL-2.0-only

// Package downstream estimates what an entropy coder downstream of this
// package's Command stream would have spent encoding it, purely as a test
// oracle (SPEC_FULL §6): this core stops at backward-reference discovery and
// never emits compressed bytes itself, so there is nothing to compare a real
// Brotli encoder's output size against directly. Instead, EstimateBitCost
// feeds the literal/copy-length/distance-code shape of a command stream
// through klauspost/compress's flate implementation and reports the
// compressed size, giving tests a monotonic signal ("better backward
// references should shrink this") without depending on a bit-exact Brotli
// entropy stage.
package downstream

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

// Command mirrors the brcore.Command shape without importing the root
// package, keeping this internal package free of a cycle back to brcore.
type Command struct {
	InsertLength   int
	CopyLength     int
	CopyLengthCode int
	DistanceCode   int
}

// EstimateBitCost serializes commands into a flat byte stream (one varint
// triple per command) and runs it through flate at the given level, so test
// code can compare the relative bit cost of two command streams over the
// same input without needing a real Brotli entropy coder.
func EstimateBitCost(commands []Command, level int) (int, error) {
	var raw bytes.Buffer
	for _, c := range commands {
		putVarint(&raw, c.InsertLength)
		putVarint(&raw, c.CopyLength)
		putVarint(&raw, c.DistanceCode)
	}

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, level)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(raw.Bytes()); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	return compressed.Len() * 8, nil
}

func putVarint(buf *bytes.Buffer, v int) {
	u := uint64(v)
	for u >= 0x80 {
		buf.WriteByte(byte(u) | 0x80)
		u >>= 7
	}
	buf.WriteByte(byte(u))
}
