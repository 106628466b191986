// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	perrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-air/aig/gen"
	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/partition"
	"github.com/go-air/aig/z"
)

// ErrGen is wrapped by errors in generator arguments.
var ErrGen = errors.New("bad generator")

const maxMuxWidth = 16

var generators = map[string]func(p *logic.Net, width, gates int){
	"adder": func(p *logic.Net, width, _ int) {
		a, b := gen.Inputs(p, width), gen.Inputs(p, width)
		sum, cout := gen.Adder(p, a, b, z.False)
		for _, s := range sum {
			p.PO(s)
		}
		p.PO(cout)
	},
	"parity": func(p *logic.Net, width, _ int) {
		p.PO(gen.Parity(p, gen.Inputs(p, width)))
	},
	"mux": func(p *logic.Net, width, _ int) {
		sel := gen.Inputs(p, width)
		data := gen.Inputs(p, 1<<uint(width))
		p.PO(gen.Mux(p, sel, data))
	},
	"rand": func(p *logic.Net, width, gates int) {
		gen.Rand(p, width, gates, 1)
	},
}

func newGenCmd() *cobra.Command {
	var width, gates, parts int
	cmd := &cobra.Command{
		Use:       "gen adder|parity|mux|rand",
		Short:     "Generate a circuit and print its statistics",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"adder", "parity", "mux", "rand"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			build, ok := generators[args[0]]
			if !ok {
				return perrors.Wrapf(ErrGen, "unknown kind %q", args[0])
			}
			if width < 1 {
				return perrors.Wrapf(ErrGen, "width %d", width)
			}
			if args[0] == "mux" && width > maxMuxWidth {
				return perrors.Wrapf(ErrGen, "mux width %d exceeds %d", width, maxMuxWidth)
			}
			if gates < 0 || parts < 0 {
				return perrors.Wrapf(ErrGen, "gates %d parts %d", gates, parts)
			}

			gen.Seed(cfg.Seed)
			prog := newProgress(logger)
			p := logic.NewCap(cfg.Capacity)
			build(p, width, gates)
			prog.done("generated", "kind", args[0], "width", width, "size", p.Size())

			w := cmd.OutOrStdout()
			printTitle(w, "%s %d", args[0], width)
			printStats(w, p)
			if parts > 0 {
				printPartitions(w, p, partitionByLevel(p, parts, logger), parts)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 4, "number of inputs, or bits per operand")
	cmd.Flags().IntVarP(&gates, "gates", "g", 32, "number of and operations for rand")
	cmd.Flags().IntVarP(&parts, "parts", "p", 0, "split nodes into this many partitions by level")
	return cmd
}

// partitionByLevel assigns every node of p to one of k partitions by its
// level and records fanout adjacency.  Levels are scaled by the deepest
// gate, which may lie outside every output cone.
func partitionByLevel(p *logic.Net, k int, logger *log.Logger) *partition.Book {
	book := partition.NewWithLogger(logger)
	p.Depth()
	d := 0
	p.ForEachGate(func(n z.Node) bool {
		if l := int(p.Value(n)); l > d {
			d = l
		}
		return true
	})
	conns := make(map[z.Node][]z.Node)
	p.ForEachGate(func(n z.Node) bool {
		p.ForEachFanin(n, func(s z.Signal, _ int) bool {
			conns[s.Node()] = append(conns[s.Node()], n)
			return true
		})
		return true
	})
	book.SetConnections(conns)
	p.ForEachNode(func(n z.Node) bool {
		book.Assign(n, int(p.Value(n))*k/(d+1))
		return true
	})
	book.Derive()
	return book
}

// printPartitions prints per partition node, edge and cut counts.
func printPartitions(w io.Writer, p *logic.Net, book *partition.Book, k int) {
	t := newTable("partition", "nodes", "edges", "cut")
	for i := 0; i < k; i++ {
		edges, cut := 0, 0
		for _, adj := range book.PartitionConnections(i) {
			for _, m := range adj {
				edges++
				if j, _ := book.Partition(m); j != i {
					cut++
				}
			}
		}
		t.Row(strconv.Itoa(i), strconv.Itoa(book.Size(i)), strconv.Itoa(edges), strconv.Itoa(cut))
	}
	fmt.Fprintln(w, t.Render())
}
