// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the aig command line.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		cfgPath string
	)
	root := &cobra.Command{
		Use:           appName,
		Short:         "Build and check and-inverter graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			level := cfg.level()
			if verbose {
				level = LogDebug
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			logger.Debug("config", "path", cfgPath, "capacity", cfg.Capacity,
				"seed", cfg.Seed, "rounds", cfg.Rounds, "workers", cfg.Workers)
			ctx = withLogger(ctx, logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newExprCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newEquivCmd())
	return root
}
