// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"github.com/go-air/aig/tt"
	"github.com/go-air/aig/z"
)

// The Compute functions evaluate a single gate from the values of its two
// fanin nodes, vs[0] for child 0 and vs[1] for child 1, applying the
// polarity of each fanin edge.  They do not traverse the network; callers
// visit gates in a topological order, for example index order.
//
// Computing the constant or an input panics with ErrNotGate, fewer than two
// values panics with ErrArity.

// ComputeBool evaluates gate n on boolean values.
func (p *Net) ComputeBool(n z.Node, vs ...bool) bool {
	nd := p.gate(n, len(vs))
	return (vs[0] != nd.c0.IsCompl()) && (vs[1] != nd.c1.IsCompl())
}

// Compute64 is like ComputeBool but evaluates 64 different inputs in
// parallel as the bits of a uint64.
func (p *Net) Compute64(n z.Node, vs ...uint64) uint64 {
	nd := p.gate(n, len(vs))
	a, b := vs[0], vs[1]
	if nd.c0.IsCompl() {
		a = ^a
	}
	if nd.c1.IsCompl() {
		b = ^b
	}
	return a & b
}

// TruthTable is the set of operations on function representations needed
// by ComputeTT.  *tt.T implements TruthTable[*tt.T].
type TruthTable[T any] interface {
	Not() T
	And(T) T
}

// ComputeTT evaluates gate n of p on truth tables of equal arity.
func ComputeTT[T TruthTable[T]](p *Net, n z.Node, vs ...T) T {
	nd := p.gate(n, len(vs))
	a, b := vs[0], vs[1]
	if nd.c0.IsCompl() {
		a = a.Not()
	}
	if nd.c1.IsCompl() {
		b = b.Not()
	}
	return a.And(b)
}

// NodeFunction returns the local function of n over its two fanins, which
// is the same 2 input and for every node.
func (p *Net) NodeFunction(n z.Node) *tt.T {
	p.s.check(n)
	return tt.FromWord(2, 0x8)
}

func (p *Net) gate(n z.Node, nvs int) node {
	nd := *p.s.at(n)
	if n == 0 {
		panicNotGate(n, "the constant")
	}
	if nd.c0 == z.SignalNull {
		panicNotGate(n, "an input")
	}
	if nvs < 2 {
		panicArity(nvs)
	}
	return nd
}
