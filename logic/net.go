// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

// Net is a handle on a structurally hashed and-inverter graph.
//
// Every gate of a Net is a two input AND over possibly complemented
// signals.  Gates are hash-consed: asking for the conjunction of the same
// pair of signals twice, in either order, yields the same node.  Node
// indices are assigned in creation order, so they form a topological order:
// the fanins of a gate always have smaller indices than the gate.
type Net struct {
	s *Storage
}

// New creates a new network.
func New() *Net {
	return NewCap(128)
}

// NewCap creates a new network with initial capacity capHint.
func NewCap(capHint int) *Net {
	return &Net{s: NewStorage(capHint)}
}

// View returns a handle on the network stored in s.  Handles share all
// nodes, inputs and outputs.
func View(s *Storage) *Net {
	return &Net{s: s}
}

// Storage returns the storage backing p.
func (p *Net) Storage() *Storage {
	return p.s
}

// Constant returns the constant signal with value v.
func (p *Net) Constant(v bool) z.Signal {
	return z.Sig(0, v)
}

// PI creates a new primary input and returns a positive
// signal for it.
func (p *Net) PI() z.Signal {
	n, j := p.s.newNode()
	n.c0 = z.SignalNull
	n.c1 = z.SignalNull
	p.s.inputs = append(p.s.inputs, j)
	return j.Pos()
}

// PO registers s as a primary output and returns its position in the output
// list.
func (p *Net) PO(s z.Signal) int {
	p.s.at(s.Node()).fanout++
	p.s.outputs = append(p.s.outputs, s)
	return len(p.s.outputs) - 1
}

// Buf returns a.
func (p *Net) Buf(a z.Signal) z.Signal {
	return a
}

// Not returns the negation of a.
func (p *Net) Not(a z.Signal) z.Signal {
	return a.Not()
}

// And returns a signal equivalent to "a and b".
//
// And creates at most one node, and none if a node with the same fanins
// already exists or if the result simplifies to a constant, a or b.
func (p *Net) And(a, b z.Signal) z.Signal {
	if a.Node() > b.Node() {
		a, b = b, a
	}
	p.s.check(b.Node())
	if a.Node() == b.Node() {
		if a == b {
			return a
		}
		return z.False
	}
	if a.Node() == 0 {
		if a.IsCompl() {
			return b
		}
		return z.False
	}
	c := strashCode(a, b)
	if n, ok := p.s.lookup(a, b, c); ok {
		return n.Pos()
	}
	return p.s.newGate(a, b, c).Pos()
}

// Nand returns a signal equivalent to "not (a and b)".
func (p *Net) Nand(a, b z.Signal) z.Signal {
	return p.And(a, b).Not()
}

// Or returns a signal equivalent to "a or b".
func (p *Net) Or(a, b z.Signal) z.Signal {
	return p.And(a.Not(), b.Not()).Not()
}

// Nor returns a signal equivalent to "not (a or b)".
func (p *Net) Nor(a, b z.Signal) z.Signal {
	return p.And(a.Not(), b.Not())
}

// Xor returns a signal equivalent to "a xor b".  Xor uses 3 gates over the
// nodes of a and b; the polarities of a and b only affect the polarity of
// the result.
func (p *Net) Xor(a, b z.Signal) z.Signal {
	c := a.IsCompl() != b.IsCompl()
	c1 := p.And(a.Pos(), b.Neg())
	c2 := p.And(b.Pos(), a.Neg())
	return p.And(c1.Not(), c2.Not()).Xor(!c)
}

// Xnor returns a signal equivalent to "a iff b".
func (p *Net) Xnor(a, b z.Signal) z.Signal {
	return p.Xor(a, b).Not()
}

// Ands constructs a conjunction of a sequence of signals.
// If ms is empty, then Ands returns z.True.
func (p *Net) Ands(ms ...z.Signal) z.Signal {
	a := z.True
	for _, m := range ms {
		a = p.And(a, m)
	}
	return a
}

// Ors constructs the disjunction of the signals in ms.
// If ms is empty, then Ors returns z.False.
func (p *Net) Ors(ms ...z.Signal) z.Signal {
	d := z.False
	for _, m := range ms {
		d = p.Or(d, m)
	}
	return d
}

// Implies constructs a signal equivalent to (a implies b).
func (p *Net) Implies(a, b z.Signal) z.Signal {
	return p.Or(a.Not(), b)
}

// Choice constructs a signal which is equivalent to
//
//	if i then t else e
func (p *Net) Choice(i, t, e z.Signal) z.Signal {
	return p.Or(p.And(i, t), p.And(i.Not(), e))
}

// Size returns the number of nodes, including the constant.
func (p *Net) Size() int {
	return len(p.s.nodes)
}

// NumPIs returns the number of primary inputs.
func (p *Net) NumPIs() int {
	return len(p.s.inputs)
}

// NumPOs returns the number of primary outputs.
func (p *Net) NumPOs() int {
	return len(p.s.outputs)
}

// NumGates returns the number of and gates.
func (p *Net) NumGates() int {
	return len(p.s.nodes) - len(p.s.inputs) - 1
}

// FaninSize returns 2 if n is a gate and 0 otherwise.
func (p *Net) FaninSize(n z.Node) int {
	p.s.check(n)
	if p.s.isGate(n) {
		return 2
	}
	return 0
}

// FanoutSize returns the number of references to n, as a fanin of
// a gate or as a primary output.
func (p *Net) FanoutSize(n z.Node) int {
	return int(p.s.at(n).fanout)
}

// IsConstant returns whether n is the constant node.
func (p *Net) IsConstant(n z.Node) bool {
	return n == 0
}

// IsPI returns whether n is a primary input.
func (p *Net) IsPI(n z.Node) bool {
	p.s.check(n)
	return p.s.isPI(n)
}

// IsGate returns whether n is an and gate.
func (p *Net) IsGate(n z.Node) bool {
	p.s.check(n)
	return p.s.isGate(n)
}

// IsPO returns whether some primary output points to n.
func (p *Net) IsPO(n z.Node) bool {
	p.s.check(n)
	for _, o := range p.s.outputs {
		if o.Node() == n {
			return true
		}
	}
	return false
}

// ConstantValue returns the value of the constant node, which is false.
func (p *Net) ConstantValue(n z.Node) bool {
	return false
}

// GetNode returns the node of s.
func (p *Net) GetNode(s z.Signal) z.Node {
	return s.Node()
}

// MakeSignal returns the positive signal to n.
func (p *Net) MakeSignal(n z.Node) z.Signal {
	return n.Pos()
}

// IsComplemented returns whether s is complemented.
func (p *Net) IsComplemented(s z.Signal) bool {
	return s.IsCompl()
}

// NodeToIndex returns the index of n.
func (p *Net) NodeToIndex(n z.Node) int {
	return int(n)
}

// IndexToNode returns the node with index i.
func (p *Net) IndexToNode(i int) z.Node {
	if i < 0 || i >= len(p.s.nodes) {
		panicUnknown(z.Node(i), len(p.s.nodes))
	}
	return z.Node(i)
}

// Fanins returns the children of n.
//
// If n is an input or the constant, then Fanins returns
// z.SignalNull, z.SignalNull.
func (p *Net) Fanins(n z.Node) (z.Signal, z.Signal) {
	nd := p.s.at(n)
	if n == 0 {
		return z.SignalNull, z.SignalNull
	}
	return nd.c0, nd.c1
}
