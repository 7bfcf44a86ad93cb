// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (errors.go — sentinel error style)

package brcore

import "errors"

// Sentinel errors for hasher construction and scan preconditions.
//
// The scan loop itself cannot fail mid-call (spec §7): "no matches found" is
// a normal outcome, not an error, and out-of-band conditions are masked or
// clamped rather than surfaced. Only construction-time configuration errors
// are returned; anything the caller violates at the precondition level
// (spec §7, "Precondition violation") panics via invariant() in invariant.go
// instead of returning an error, since those are programming errors the
// scan loop is specified to never need to recover from.
var (
	// ErrInvalidHasherType is returned when Params.Hasher.Type is outside the
	// supported set {2,3,4,5,6,40,41,42,54}.
	ErrInvalidHasherType = errors.New("brcore: unsupported hasher type")

	// ErrInvalidBucketBits names a HasherParams.BucketBits range error.
	// Validate does not check BucketBits, so no function in this package
	// returns it.
	ErrInvalidBucketBits = errors.New("brcore: bucket_bits out of range")

	// ErrInvalidBlockBits is returned when HasherParams.BlockBits is outside
	// [1,24] (spec §7).
	ErrInvalidBlockBits = errors.New("brcore: block_bits out of range [1,24]")

	// ErrInvalidHashLen is returned when HasherParams.HashLen is outside the
	// 4-8 byte range H6's variable-width hash supports.
	ErrInvalidHashLen = errors.New("brcore: hash_len out of range [4,8]")

	// ErrInvalidLGWin is returned when Params.LGWin is outside [10,24].
	ErrInvalidLGWin = errors.New("brcore: lgwin out of range [10,24]")

	// ErrInvalidQuality is returned when Params.Quality is outside [0,11].
	ErrInvalidQuality = errors.New("brcore: quality out of range [0,11]")

	// ErrInvalidNumLastDistances is returned when
	// HasherParams.NumLastDistancesToCheck is not one of {0,4,10,16}.
	ErrInvalidNumLastDistances = errors.New("brcore: num_last_distances_to_check must be one of {0,4,10,16}")

	// ErrDistanceCacheTooShort names a distance cache with fewer than 16
	// slots (spec §3). DistanceCache is a fixed 16-slot array, so no check
	// in this package raises or returns it.
	ErrDistanceCacheTooShort = errors.New("brcore: distance cache must have at least 16 slots")

	// ErrScanPastWindow names a call whose num_bytes would step position
	// past the ring buffer's addressable range. CreateBackwardReferences
	// does not check this, so no code in this package raises or returns it.
	ErrScanPastWindow = errors.New("brcore: num_bytes steps past ring buffer capacity")

	// ErrInternalInvariant marks an invariant panic for any other assumption
	// this core depends on internally (e.g. a zero backward distance reaching
	// log2Floor). It is never returned directly.
	ErrInternalInvariant = errors.New("brcore: internal invariant violated")

	// ErrLookBehindUnderrun is returned by CopyBackRef/ReplayCommands when a
	// command's distance reaches before the start of the buffer built so
	// far — a malformed or out-of-order command stream.
	ErrLookBehindUnderrun = errors.New("brcore: copy distance reaches before start of buffer")

	// ErrInsertPastInput is returned by ReplayCommands when a command's
	// insert_length would read past the end of the source data.
	ErrInsertPastInput = errors.New("brcore: insert length reaches past end of input")

	// ErrInputTooLarge is returned by ScanFromReader when the stream exceeds
	// the caller-supplied maxInputSize.
	ErrInputTooLarge = errors.New("brcore: input exceeds maximum size")
)
