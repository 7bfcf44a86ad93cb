// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (options.go — options-struct-plus-Default* style)

package brcore

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"
)

// Mode mirrors the Brotli encoder's content-mode hint. It is carried in
// Params only: no hasher or driver code reads it, and dictionary probing is
// controlled by HasherParams.UseDictionary alone.
type Mode int

const (
	ModeGeneric Mode = iota
	ModeText
	ModeFont
)

// HasherParams selects one concrete hasher variant and its shape, per the
// table in spec §3.
type HasherParams struct {
	// Type is one of {2,3,4,5,6,40,41,42,54}.
	Type int
	// BucketBits sizes the hash table (bucket count = 1<<BucketBits).
	BucketBits int
	// BlockBits sizes a chained hasher's per-bucket ring (block_size = 1<<BlockBits).
	BlockBits int
	// HashLen is H6's variable hash input width in bytes, [4,8].
	HashLen int
	// NumLastDistancesToCheck is one of {0,4,10,16} (spec §3 table).
	NumLastDistancesToCheck int
	// UseDictionary turns static-dictionary probing on for every hasher
	// type; when it is false no hasher probes the dictionary. There is no
	// per-type default beyond what DefaultParams sets.
	UseDictionary bool
}

// Params collects the parameters spec §6 lists as "Parameters (consumed)",
// plus the ambient logging/metrics hooks SPEC_FULL §5.1/§6 add.
type Params struct {
	Mode                          Mode
	Quality                       int
	LGWin                         int
	LGBlock                       int
	SizeHint                      int
	DisableLiteralContextModeling bool
	Hasher                        HasherParams

	// Logger receives one Debug line per Scan call and a Warn line when
	// Validate rejects the configuration (SPEC_FULL §5.1);
	// CreateBackwardReferences itself does not log. Nil is treated as
	// zap.NewNop().
	Logger *zap.Logger

	// Registerer, if non-nil, receives the dictionary-probe and chain-depth
	// metrics described in SPEC_FULL §6. Nil disables metrics entirely.
	Registerer prometheus.Registerer
}

// logger returns p.Logger, or a no-op logger if unset.
func (p *Params) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// MaxBackwardLimit computes (1<<lgwin)-16, the largest distance this window
// size can address (spec §4.7, §6).
func (p *Params) MaxBackwardLimit() int {
	return (1 << uint(p.LGWin)) - 16
}

// Validate checks every field against the ranges spec §6/§7 define,
// aggregating every violation into one multierr chain (SPEC_FULL §5.2)
// instead of stopping at the first problem.
func (p *Params) Validate() error {
	var err error

	if p.Quality < 0 || p.Quality > 11 {
		err = multierr.Append(err, ErrInvalidQuality)
	}
	if p.LGWin < 10 || p.LGWin > 24 {
		err = multierr.Append(err, ErrInvalidLGWin)
	}

	switch p.Hasher.Type {
	case 2, 3, 4, 5, 6, 40, 41, 42, 54:
	default:
		err = multierr.Append(err, ErrInvalidHasherType)
	}

	if isChainHasherType(p.Hasher.Type) {
		if p.Hasher.BlockBits < 1 || p.Hasher.BlockBits > 24 {
			err = multierr.Append(err, ErrInvalidBlockBits)
		}
	}

	if p.Hasher.Type == 6 {
		if p.Hasher.HashLen < 4 || p.Hasher.HashLen > 8 {
			err = multierr.Append(err, ErrInvalidHashLen)
		}
	}

	switch p.Hasher.NumLastDistancesToCheck {
	case 0, 4, 10, 16:
	default:
		err = multierr.Append(err, ErrInvalidNumLastDistances)
	}

	if err != nil {
		p.logger().Warn("rejected hasher configuration",
			zap.Int("hasher_type", p.Hasher.Type),
			zap.Int("quality", p.Quality),
			zap.Int("lgwin", p.LGWin),
			zap.Error(err),
		)
	}

	return err
}

func isChainHasherType(t int) bool {
	switch t {
	case 5, 6:
		return true
	default:
		return false
	}
}

func isBankedHasherType(t int) bool {
	switch t {
	case 40, 41, 42:
		return true
	default:
		return false
	}
}

func isSweepHasherType(t int) bool {
	switch t {
	case 2, 3, 4, 54:
		return true
	default:
		return false
	}
}

// DefaultParams returns a Params value for the given quality level
// (mirroring DefaultCompressOptions()'s one-knob convenience constructor),
// selecting a hasher the way the reference encoder's quality table does:
// low qualities get a cheap sweep hasher, mid qualities a chained hasher
// with a modest block size, high qualities the deepest chain.
func DefaultParams(quality int) *Params {
	quality = max(quality, 0)
	quality = min(quality, 11)

	p := &Params{
		Mode:     ModeGeneric,
		Quality:  quality,
		LGWin:    22,
		LGBlock:  0,
		SizeHint: 0,
	}

	switch {
	case quality <= 2:
		p.Hasher = HasherParams{Type: 2, UseDictionary: true}
	case quality <= 4:
		p.Hasher = HasherParams{Type: 4, UseDictionary: true}
	case quality <= 7:
		p.Hasher = HasherParams{
			Type: 5, BucketBits: 15, BlockBits: 6, NumLastDistancesToCheck: 4, UseDictionary: true,
		}
	case quality <= 9:
		p.Hasher = HasherParams{
			Type: 6, BucketBits: 17, BlockBits: 7, HashLen: 5, NumLastDistancesToCheck: 4, UseDictionary: true,
		}
	default:
		p.Hasher = HasherParams{
			Type: 42, NumLastDistancesToCheck: 16, UseDictionary: true,
		}
	}

	return p
}
