// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/go-air/aig/expr"
	"github.com/go-air/aig/logic"
)

func newExprCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expr EXPR...",
		Short: "Build expressions into one network and print its statistics",
		Long: `Build each expression into a shared network, registering one output per
expression.  Operators are ! (or ~), &, ^ and |, from tightest to loosest.
Truth tables are printed for networks with few inputs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			prog := newProgress(logger)

			b := expr.NewBuilder(logic.NewCap(cfg.Capacity))
			for _, src := range args {
				s, err := b.Parse(src)
				if err != nil {
					return err
				}
				i := b.Net.PO(s)
				logger.Debug("built expression", "output", i, "signal", s, "size", b.Net.Size())
			}
			prog.done("built network", "expressions", len(args))

			w := cmd.OutOrStdout()
			printStats(w, b.Net)
			return printTruthTables(w, b.Net, b.Inputs())
		},
	}
}
