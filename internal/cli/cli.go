// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cli implements the aig command line interface.
//
// The commands build and-inverter graphs from expressions or generators,
// report their statistics and truth tables, and test networks for
// equivalence by simulation.  Loggers and configuration are passed to
// commands through context.Context.
package cli

import "github.com/charmbracelet/log"

const appName = "aig"

// maxTTInputs bounds the number of inputs for which truth tables are
// printed.
const maxTTInputs = 10

// Log levels exported for use in main.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)
