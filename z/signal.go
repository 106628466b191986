// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Signal is an edge in an and-inverter graph: a node together with a
// complement flag.  If the flag is set, the signal denotes the negation of
// the function of its node.
//
// Signals are values; two signals are equal (==) iff they point to the
// same node with the same polarity.
type Signal struct {
	node  Node
	compl bool
}

// False and True are the signals of the constant node.
var (
	False = Signal{}
	True  = Signal{compl: true}
)

// SignalNull is the sentinel used for the children of inputs.  It is never
// returned by a network as a signal to a node.
var SignalNull = Signal{node: NodeNull, compl: true}

// Sig makes a signal pointing to n, complemented if c is set.
func Sig(n Node, c bool) Signal {
	return Signal{node: n, compl: c}
}

// SignalOf makes a signal from its combined representation, in
// which bit 0 is the complement flag and bits 1 through 32
// are the node index.  Bits above 32 are discarded, so
// SignalOf(s.Data()) == s for every s but other values may
// not round trip.
func SignalOf(d uint64) Signal {
	return Signal{node: Node(uint32(d >> 1)), compl: d&1 == 1}
}

// Data returns the combined representation of s, see SignalOf.
func (s Signal) Data() uint64 {
	d := uint64(s.node) << 1
	if s.compl {
		d |= 1
	}
	return d
}

// Node returns the node to which s points.
func (s Signal) Node() Node {
	return s.node
}

// IsCompl returns whether s is complemented.
func (s Signal) IsCompl() bool {
	return s.compl
}

// Not returns the negation of s.
func (s Signal) Not() Signal {
	s.compl = !s.compl
	return s
}

// Xor returns s complemented iff c.
func (s Signal) Xor(c bool) Signal {
	s.compl = s.compl != c
	return s
}

// Pos returns the non-complemented signal to the node of s.
func (s Signal) Pos() Signal {
	return Signal{node: s.node}
}

// Neg returns the complemented signal to the node of s.
func (s Signal) Neg() Signal {
	return Signal{node: s.node, compl: true}
}

func (s Signal) String() string {
	if s == SignalNull {
		return "null"
	}
	if s.compl {
		return fmt.Sprintf("-%d", uint32(s.node))
	}
	return fmt.Sprintf("+%d", uint32(s.node))
}
