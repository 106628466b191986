// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/sim"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col > 0:
				return styleNumber
			default:
				return styleCell
			}
		})
}

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printStats prints the counts and depth of p.
func printStats(w io.Writer, p *logic.Net) {
	t := newTable("", "count").
		Row("nodes", strconv.Itoa(p.Size())).
		Row("inputs", strconv.Itoa(p.NumPIs())).
		Row("outputs", strconv.Itoa(p.NumPOs())).
		Row("gates", strconv.Itoa(p.NumGates())).
		Row("depth", strconv.Itoa(p.Depth()))
	fmt.Fprintln(w, t.Render())
}

// printTruthTables prints the truth table of each output of p, if p has at
// most maxTTInputs inputs.  names label the inputs.
func printTruthTables(w io.Writer, p *logic.Net, names []string) error {
	if p.NumPIs() > maxTTInputs {
		return nil
	}
	tts, err := sim.OutputTTs(p)
	if err != nil {
		return err
	}
	if len(names) > 0 {
		vars := newTable("input", "bit")
		for i, name := range names {
			vars.Row(name, strconv.Itoa(i))
		}
		fmt.Fprintln(w, vars.Render())
	}
	t := newTable("output", "truth table", "ones")
	for i, f := range tts {
		t.Row(p.POAt(i).String(), f.String(), strconv.Itoa(f.Ones()))
	}
	fmt.Fprintln(w, t.Render())
	return nil
}
