// SPDX-License-Identifier: GPL-2.0-only
// Grounded on: github.com/woozymasta/lzo (sliding_window_pool.go —
// sync.Pool-backed acquire/release pair resetting pooled state to zero
// value before reuse).

package brcore

import "sync"

// scanScratch bundles the per-call mutable state CreateBackwardReferences
// needs beyond the caller-owned Hasher and RingBuffer: the rolling distance
// cache and the growing command slice. Pooling it avoids an allocation per
// call for repeat scans over many chunks of the same stream.
type scanScratch struct {
	cache    *DistanceCache
	commands []Command
}

var scanScratchPool = sync.Pool{
	New: func() any {
		return &scanScratch{cache: NewDistanceCache()}
	},
}

// acquireScanScratch gets a scratch value from the pool, with its command
// slice truncated to length zero and its distance cache reset to the
// canonical initial distances.
func acquireScanScratch() *scanScratch {
	s := scanScratchPool.Get().(*scanScratch)
	*s.cache = *NewDistanceCache()
	s.commands = s.commands[:0]
	return s
}

// releaseScanScratch returns s to the pool. Callers must have copied out
// anything they still need from s.commands first.
func releaseScanScratch(s *scanScratch) {
	if s == nil {
		return
	}
	scanScratchPool.Put(s)
}
