// SPDX-License-Identifier: GPL-2.0-only

// Command brcoredump runs the backward-reference discovery core over a file
// and prints a per-hasher-type stats table, grounded on grafana-k6's
// cmd/root.go (a single cobra.Command with pflag-bound options, a zap-style
// structured logger wired in instead of logrus) but trimmed to the single
// command this tool needs instead of k6's subcommand tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	brcore "github.com/brotlicore/backref"
)

var hasherTypes = []int{2, 3, 4, 5, 6, 40, 41, 42, 54}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var quality int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "brcoredump [file]",
		Short: "Scan a file with every hasher type and report match statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], quality, verbose)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&quality, "quality", 9, "quality level (0-11) used for hasher types that honor it")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")
	_ = pflag.CommandLine // grounded on cmd/root.go's pattern of exposing the pflag.FlagSet the cobra command wraps

	return cmd
}

// hasherParamsFor returns a minimally valid HasherParams for t: the exact
// NumLastDistancesToCheck and block/hash sizing a real deployment would tune
// don't matter for a stats dump, but spec §6/§7's validation requires
// type-specific fields (H6's HashLen, chain family's BlockBits) to be
// present up front rather than defaulted after the fact.
func hasherParamsFor(t int) brcore.HasherParams {
	p := brcore.HasherParams{Type: t, NumLastDistancesToCheck: 4, UseDictionary: true}
	switch t {
	case 5, 6:
		p.BlockBits = 6
	}
	if t == 6 {
		p.HashLen = 5
	}
	return p
}

func run(path string, quality int, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck

	fmt.Printf("%-10s %10s %12s %12s\n", "hasher", "commands", "copy_bytes", "literal_bytes")

	for _, t := range hasherTypes {
		p := &brcore.Params{
			Mode:    brcore.ModeGeneric,
			Quality: quality,
			LGWin:   22,
			Hasher:  hasherParamsFor(t),
			Logger:  logger,
		}

		commands, err := brcore.Scan(data, p)
		if err != nil {
			logger.Warn("scan failed for hasher type", zap.Int("type", t), zap.Error(err))
			continue
		}

		var copyBytes, literalBytes int
		for _, c := range commands {
			copyBytes += c.CopyLength
			literalBytes += c.InsertLength
		}

		fmt.Printf("H%-9d %10d %12d %12d\n", t, len(commands), copyBytes, literalBytes)
	}

	return nil
}
