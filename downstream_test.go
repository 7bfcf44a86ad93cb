// SPDX-License-Identifier: GPL-2.0-only

package brcore

import (
	"strings"
	"testing"

	"github.com/brotlicore/backref/internal/downstream"
)

func toDownstreamCommands(cmds []Command) []downstream.Command {
	out := make([]downstream.Command, len(cmds))
	for i, c := range cmds {
		out[i] = downstream.Command{
			InsertLength:   c.InsertLength,
			CopyLength:     c.CopyLength,
			CopyLengthCode: c.CopyLengthCode,
			DistanceCode:   c.DistanceCode,
		}
	}
	return out
}

// TestHigherQualityShrinksEstimatedBitCost checks a monotonic property
// rather than a bit-exact size: discovery at a deeper probe depth should
// never produce a stream whose estimated downstream cost is worse than a
// shallow pass over the same, highly repetitive input.
func TestHigherQualityShrinksEstimatedBitCost(t *testing.T) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 200))

	shallow, err := Scan(data, DefaultParams(1))
	if err != nil {
		t.Fatalf("Scan(quality 1): %v", err)
	}
	deep, err := Scan(data, DefaultParams(10))
	if err != nil {
		t.Fatalf("Scan(quality 10): %v", err)
	}

	shallowCost, err := downstream.EstimateBitCost(toDownstreamCommands(shallow), 6)
	if err != nil {
		t.Fatalf("EstimateBitCost(shallow): %v", err)
	}
	deepCost, err := downstream.EstimateBitCost(toDownstreamCommands(deep), 6)
	if err != nil {
		t.Fatalf("EstimateBitCost(deep): %v", err)
	}

	if deepCost > shallowCost {
		t.Errorf("deeper search produced a worse estimated bit cost: shallow=%d deep=%d", shallowCost, deepCost)
	}
}
