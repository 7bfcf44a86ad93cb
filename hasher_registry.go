// SPDX-License-Identifier: GPL-2.0-only
// Grounded on: github.com/woozymasta/lzo (options.go/compress.go's
// Default*Options-plus-dispatch-by-level style, generalized to dispatch by
// hasher type instead of compression level).

package brcore

// NewHasher constructs the concrete Hasher named by params.Hasher.Type,
// after validating params (spec §6, §7). It is the single entry point the
// rest of this package uses to turn a Params value into a usable index.
func NewHasher(params *Params) (Hasher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch {
	case isSweepHasherType(params.Hasher.Type):
		return newSweepHasher(&params.Hasher, params.Registerer), nil
	case isChainHasherType(params.Hasher.Type):
		return newChainHasher(&params.Hasher, params.Quality, params.Registerer), nil
	case isBankedHasherType(params.Hasher.Type):
		return newBankedHasher(&params.Hasher, params.Registerer), nil
	default:
		invariant(false, ErrInternalInvariant, "NewHasher: type %d passed validation but matches no family", params.Hasher.Type)
		return nil, nil
	}
}
