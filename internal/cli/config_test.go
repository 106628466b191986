// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *defaultConfig() {
		t.Errorf("empty path: %+v", cfg)
	}
	path := filepath.Join(t.TempDir(), "aig.toml")
	data := "capacity = 1024\nseed = 7\nrounds = 8\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Capacity != 1024 || cfg.Seed != 7 || cfg.Rounds != 8 {
		t.Errorf("loaded %+v", cfg)
	}
	if cfg.Workers != defaultConfig().Workers {
		t.Errorf("workers not defaulted: %d", cfg.Workers)
	}
	if cfg.level() != log.DebugLevel {
		t.Errorf("level %s", cfg.level())
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("missing file loaded")
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, data := range []string{
		"rounds = 0",
		"workers = -1",
		"capacity = 0",
		"log_level = \"loud\"",
		"rounds = ",
	} {
		err := parseConfig([]byte(data), defaultConfig())
		if !errors.Is(err, ErrConfig) {
			t.Errorf("%q: got %v", data, err)
		}
	}
}

func TestConfigContext(t *testing.T) {
	if configFromContext(context.Background()).Rounds != defaultConfig().Rounds {
		t.Errorf("no default config")
	}
	cfg := defaultConfig()
	cfg.Rounds = 3
	if configFromContext(withConfig(context.Background(), cfg)) != cfg {
		t.Errorf("config not attached")
	}
}
