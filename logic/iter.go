// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

// Iteration over a network visits elements in index order.  The bound of
// each iteration is fixed when it starts: nodes, inputs or outputs created
// by fn are not visited by the same iteration.  If fn returns false, the
// iteration stops.

// ForEachNode calls fn on every node, including the
// constant and the inputs.
func (p *Net) ForEachNode(fn func(n z.Node) bool) {
	e := len(p.s.nodes)
	for i := 0; i < e; i++ {
		if !fn(z.Node(i)) {
			return
		}
	}
}

// ForEachPI calls fn on every primary input together with its position in
// the input list.
func (p *Net) ForEachPI(fn func(n z.Node, i int) bool) {
	e := len(p.s.inputs)
	for i := 0; i < e; i++ {
		if !fn(p.s.inputs[i], i) {
			return
		}
	}
}

// ForEachPO calls fn on every primary output signal together with its
// position in the output list.
func (p *Net) ForEachPO(fn func(s z.Signal, i int) bool) {
	e := len(p.s.outputs)
	for i := 0; i < e; i++ {
		if !fn(p.s.outputs[i], i) {
			return
		}
	}
}

// ForEachGate calls fn on every and gate.
func (p *Net) ForEachGate(fn func(n z.Node) bool) {
	e := len(p.s.nodes)
	for i := 1; i < e; i++ {
		n := z.Node(i)
		if p.s.isPI(n) {
			continue
		}
		if !fn(n) {
			return
		}
	}
}

// ForEachFanin calls fn on the fanins of n, first child 0 then child 1.  If
// n is the constant or an input, fn is not called.
func (p *Net) ForEachFanin(n z.Node, fn func(s z.Signal, i int) bool) {
	nd := *p.s.at(n)
	if n == 0 || nd.c0 == z.SignalNull {
		return
	}
	if !fn(nd.c0, 0) {
		return
	}
	fn(nd.c1, 1)
}

// PIs appends the primary inputs to dst and returns the result.
func (p *Net) PIs(dst []z.Node) []z.Node {
	return append(dst, p.s.inputs...)
}

// POs appends the primary output signals to dst and returns the result.
func (p *Net) POs(dst []z.Signal) []z.Signal {
	return append(dst, p.s.outputs...)
}

// PIAt returns the i'th primary input.
func (p *Net) PIAt(i int) z.Node {
	return p.s.inputs[i]
}

// POAt returns the i'th primary output.
func (p *Net) POAt(i int) z.Signal {
	return p.s.outputs[i]
}
