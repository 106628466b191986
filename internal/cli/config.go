// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"context"
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	perrors "github.com/pkg/errors"

	"github.com/go-air/aig/sim"
)

// ErrConfig is wrapped by configuration errors.
var ErrConfig = errors.New("bad configuration")

// Config holds settings read from a TOML file.  Command line flags
// override them.
type Config struct {
	Capacity int    `toml:"capacity"`
	Seed     int64  `toml:"seed"`
	Rounds   int    `toml:"rounds"`
	Workers  int    `toml:"workers"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Capacity: 128,
		Seed:     sim.DefaultOptions.Seed,
		Rounds:   sim.DefaultOptions.Rounds,
		Workers:  sim.DefaultOptions.Workers,
		LogLevel: "info"}
}

// loadConfig reads the file at path over the defaults.  An empty path
// gives the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perrors.Wrap(err, "read config")
	}
	if err := parseConfig(data, cfg); err != nil {
		return nil, perrors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func parseConfig(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return perrors.Wrapf(ErrConfig, "%s", err)
	}
	if cfg.Capacity < 1 {
		return perrors.Wrapf(ErrConfig, "capacity %d", cfg.Capacity)
	}
	if cfg.Rounds < 1 {
		return perrors.Wrapf(ErrConfig, "rounds %d", cfg.Rounds)
	}
	if cfg.Workers < 1 {
		return perrors.Wrapf(ErrConfig, "workers %d", cfg.Workers)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return perrors.Wrapf(ErrConfig, "log_level %q", cfg.LogLevel)
	}
	return nil
}

func (c *Config) level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

func (c *Config) simOptions() sim.Options {
	return sim.Options{Rounds: c.Rounds, Workers: c.Workers, Seed: c.Seed}
}

type configKey struct{}

func withConfig(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, configKey{}, c)
}

// configFromContext returns the configuration attached to ctx, or the
// defaults.
func configFromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return defaultConfig()
}
