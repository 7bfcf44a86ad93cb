// SPDX-License-Identifier: GPL-2.0-only

package brcore

import "testing"

func TestNewDistanceCacheSeeds(t *testing.T) {
	cache := NewDistanceCache()
	want := DistanceCache{0: 1, 1: 4, 2: 11, 3: 4}
	for i := 0; i < 4; i++ {
		if cache[i] != want[i] {
			t.Errorf("cache[%d] = %d, want %d", i, cache[i], want[i])
		}
	}
}

func TestDistanceCachePrepareDerivesNearSlots(t *testing.T) {
	cache := NewDistanceCache()
	cache.Prepare(16)

	if cache[4] != cache[0]-1 || cache[5] != cache[0]+1 {
		t.Errorf("slots 4/5 not derived from slot 0: got %d/%d, d0=%d", cache[4], cache[5], cache[0])
	}
	if cache[10] != cache[1]-1 || cache[11] != cache[1]+1 {
		t.Errorf("slots 10/11 not derived from slot 1: got %d/%d, d1=%d", cache[10], cache[11], cache[1])
	}
}

func TestDistanceCachePrepareSkipsUnusedSlots(t *testing.T) {
	cache := NewDistanceCache()
	cache.Prepare(4) // fewer than 10: no derived slots touched
	for i := 4; i < 16; i++ {
		if cache[i] != 0 {
			t.Errorf("cache[%d] = %d, want untouched zero value", i, cache[i])
		}
	}
}

func TestDistanceCacheRotate(t *testing.T) {
	cache := NewDistanceCache()
	cache.Rotate(99, 16)

	if cache[0] != 99 {
		t.Fatalf("cache[0] = %d, want 99", cache[0])
	}
	if cache[1] != 1 || cache[2] != 4 || cache[3] != 11 {
		t.Errorf("rotate did not shift MRU slots down: got %v", cache[:4])
	}
}

func TestComputeDistanceCode(t *testing.T) {
	cache := NewDistanceCache() // {1,4,11,4,...}

	tests := []struct {
		name     string
		distance int
		max      int
		want     int
	}{
		{"zero distance has no code", 0, 1000, 0},
		{"beyond max distance has no code", 2000, 1000, 0},
		{"matches cache slot 0", 1, 1000, 1},
		{"matches cache slot 2", 11, 1000, 3},
		{"explicit code for unrepresented distance", 500, 1000, 515},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeDistanceCode(tc.distance, tc.max, cache); got != tc.want {
				t.Errorf("ComputeDistanceCode(%d,%d) = %d, want %d", tc.distance, tc.max, got, tc.want)
			}
		})
	}
}
