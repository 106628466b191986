// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package sim simulates and-inverter graphs.
//
// Simulation visits gates in index order, which is a topological order, and
// evaluates each gate with the Compute functions of package logic.  The
// functions of this package only read the network, so any number of them
// may run concurrently over a network which is not being modified.
package sim

import (
	"errors"

	perrors "github.com/pkg/errors"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/tt"
	"github.com/go-air/aig/z"
)

// Errors returned by simulation.
var (
	ErrInputs   = errors.New("wrong number of input values")
	ErrShape    = errors.New("networks differ in inputs or outputs")
	ErrTooWide  = errors.New("too many inputs for truth tables")
	ErrMismatch = errors.New("outputs differ")
)

// MaxTTInputs bounds the number of inputs of a network simulated with
// truth tables.
const MaxTTInputs = 16

// Bools simulates p with input values ins, ins[i] giving the value of the
// i'th primary input, and returns the value of every node by index.
func Bools(p *logic.Net, ins []bool) ([]bool, error) {
	if len(ins) != p.NumPIs() {
		return nil, perrors.Wrapf(ErrInputs, "got %d, have %d inputs", len(ins), p.NumPIs())
	}
	vs := make([]bool, p.Size())
	p.ForEachPI(func(n z.Node, i int) bool {
		vs[n] = ins[i]
		return true
	})
	p.ForEachGate(func(n z.Node) bool {
		c0, c1 := p.Fanins(n)
		vs[n] = p.ComputeBool(n, vs[c0.Node()], vs[c1.Node()])
		return true
	})
	return vs, nil
}

// Words is like Bools but simulates 64 input patterns in parallel,
// one per bit.
func Words(p *logic.Net, ins []uint64) ([]uint64, error) {
	if len(ins) != p.NumPIs() {
		return nil, perrors.Wrapf(ErrInputs, "got %d, have %d inputs", len(ins), p.NumPIs())
	}
	vs := make([]uint64, p.Size())
	p.ForEachPI(func(n z.Node, i int) bool {
		vs[n] = ins[i]
		return true
	})
	p.ForEachGate(func(n z.Node) bool {
		c0, c1 := p.Fanins(n)
		vs[n] = p.Compute64(n, vs[c0.Node()], vs[c1.Node()])
		return true
	})
	return vs, nil
}

// TruthTables returns the truth table of every node by index, as a
// function of the primary inputs in input order.
func TruthTables(p *logic.Net) ([]*tt.T, error) {
	k := p.NumPIs()
	if k > MaxTTInputs {
		return nil, perrors.Wrapf(ErrTooWide, "%d inputs", k)
	}
	vs := make([]*tt.T, p.Size())
	vs[0] = tt.Const(k, false)
	p.ForEachPI(func(n z.Node, i int) bool {
		vs[n] = tt.Var(k, i)
		return true
	})
	p.ForEachGate(func(n z.Node) bool {
		c0, c1 := p.Fanins(n)
		vs[n] = logic.ComputeTT(p, n, vs[c0.Node()], vs[c1.Node()])
		return true
	})
	return vs, nil
}

// Bool returns the value of s given node values vs.
func Bool(vs []bool, s z.Signal) bool {
	return vs[s.Node()] != s.IsCompl()
}

// Word returns the value of s given node values vs.
func Word(vs []uint64, s z.Signal) uint64 {
	if s.IsCompl() {
		return ^vs[s.Node()]
	}
	return vs[s.Node()]
}

// TT returns the truth table of s given node truth tables vs.
func TT(vs []*tt.T, s z.Signal) *tt.T {
	if s.IsCompl() {
		return vs[s.Node()].Not()
	}
	return vs[s.Node()]
}

// OutputTTs returns the truth tables of the primary outputs of p.
func OutputTTs(p *logic.Net) ([]*tt.T, error) {
	vs, err := TruthTables(p)
	if err != nil {
		return nil, err
	}
	res := make([]*tt.T, 0, p.NumPOs())
	p.ForEachPO(func(s z.Signal, _ int) bool {
		res = append(res, TT(vs, s))
		return true
	})
	return res, nil
}
