// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-air/aig/expr"
	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/sim"
)

// ErrNotEquivalent is returned when a difference is found.
var ErrNotEquivalent = errors.New("not equivalent")

func newEquivCmd() *cobra.Command {
	var (
		rounds, workers int
		seed            int64
	)
	cmd := &cobra.Command{
		Use:   "equiv EXPR1 EXPR2",
		Short: "Check two expressions for equivalence by simulation",
		Long: `Check two expressions for equivalence, matching variables by name.
With few inputs the check is exhaustive; otherwise random patterns are
simulated concurrently and only differences are conclusive.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			opts := cfg.simOptions()
			if cmd.Flags().Changed("rounds") {
				opts.Rounds = rounds
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			ba := expr.NewBuilder(logic.NewCap(cfg.Capacity))
			sa, err := ba.Parse(args[0])
			if err != nil {
				return err
			}
			bb := expr.NewBuilder(logic.NewCap(cfg.Capacity))
			bb.Declare(ba.Inputs()...)
			sb, err := bb.Parse(args[1])
			if err != nil {
				return err
			}
			ba.Declare(bb.Inputs()...)
			ba.Net.PO(sa)
			bb.Net.PO(sb)
			logger.Debug("built networks", "inputs", ba.Net.NumPIs(),
				"size1", ba.Net.Size(), "size2", bb.Net.Size())

			prog := newProgress(logger)
			err = sim.Equiv(ctx, ba.Net, bb.Net, opts)
			prog.done("simulated", "inputs", ba.Net.NumPIs(), "rounds", opts.Rounds, "workers", opts.Workers)

			w := cmd.OutOrStdout()
			var cex *sim.Cex
			switch {
			case err == nil:
				how := "exhaustively"
				if ba.Net.NumPIs() > sim.MaxTTInputs {
					how = "on random patterns"
				}
				printSuccess(w, "equivalent %s", how)
				return nil
			case errors.As(err, &cex):
				names := ba.Inputs()
				var buf strings.Builder
				for i, v := range cex.Inputs {
					if i > 0 {
						buf.WriteByte(' ')
					}
					buf.WriteString(names[i])
					if v {
						buf.WriteString("=1")
					} else {
						buf.WriteString("=0")
					}
				}
				printFailure(w, "differ at %s", buf.String())
				return ErrNotEquivalent
			default:
				return err
			}
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "r", sim.DefaultOptions.Rounds, "rounds of 64 random patterns")
	cmd.Flags().IntVarP(&workers, "workers", "j", sim.DefaultOptions.Workers, "concurrent simulation workers")
	cmd.Flags().Int64VarP(&seed, "seed", "s", sim.DefaultOptions.Seed, "random pattern seed")
	return cmd
}
