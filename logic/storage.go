// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

// Storage is the node arena of an and-inverter graph, together with its
// structural hash table and input and output lists.
//
// A Storage may be shared by several *Net handles (see View).  Storage does
// no locking: while any handle mutates it, no other handle may access it.
// Once construction is done, any number of goroutines may read it.
type Storage struct {
	nodes   []node
	strash  []uint32 // bucket heads, indexed by strashCode % cap(nodes)
	inputs  []z.Node
	outputs []z.Signal
}

type node struct {
	c0, c1  z.Signal // z.SignalNull for inputs
	fanout  uint32
	value   uint32
	visited uint32
	next    uint32 // next in strash bucket, 0 terminates
}

// NewStorage creates a new storage with capacity capHint
// nodes.  Only the constant node is present.
func NewStorage(capHint int) *Storage {
	if capHint < 2 {
		capHint = 2
	}
	return &Storage{
		nodes:  make([]node, 1, capHint),
		strash: make([]uint32, capHint)}
}

func (s *Storage) check(n z.Node) {
	if int(n) >= len(s.nodes) {
		panicUnknown(n, len(s.nodes))
	}
}

func (s *Storage) at(n z.Node) *node {
	s.check(n)
	return &s.nodes[n]
}

func (s *Storage) isPI(n z.Node) bool {
	nd := &s.nodes[n]
	return nd.c0 == z.SignalNull && nd.c1 == z.SignalNull
}

func (s *Storage) isGate(n z.Node) bool {
	return n != 0 && !s.isPI(n)
}

// lookup returns the node with children a, b if any.
// a and b must be ordered.
func (s *Storage) lookup(a, b z.Signal, code uint32) (z.Node, bool) {
	k := code % uint32(cap(s.nodes))
	for si := s.strash[k]; si != 0; si = s.nodes[si].next {
		n := &s.nodes[si]
		if n.c0 == a && n.c1 == b {
			return z.Node(si), true
		}
	}
	return 0, false
}

func (s *Storage) newNode() (*node, z.Node) {
	if len(s.nodes) == cap(s.nodes) {
		s.grow()
	}
	id := len(s.nodes)
	s.nodes = s.nodes[:id+1]
	return &s.nodes[id], z.Node(id)
}

func (s *Storage) newGate(a, b z.Signal, code uint32) z.Node {
	m, j := s.newNode()
	m.c0 = a
	m.c1 = b
	k := code % uint32(cap(s.nodes))
	m.next = s.strash[k]
	s.strash[k] = uint32(j)
	s.nodes[a.Node()].fanout++
	s.nodes[b.Node()].fanout++
	return j
}

func (s *Storage) grow() {
	newCap := cap(s.nodes) * 2
	nodes := make([]node, len(s.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, s.nodes)
	ucap := uint32(newCap)
	for i := 1; i < len(nodes); i++ {
		n := &nodes[i]
		if n.c0 == z.SignalNull {
			continue
		}
		j := strashCode(n.c0, n.c1) % ucap
		n.next = strash[j]
		strash[j] = uint32(i)
	}
	s.nodes = nodes
	s.strash = strash
}

const strashSeed = ^uint32(2010) // -2011

func strashCode(a, b z.Signal) uint32 {
	h := strashSeed
	h += uint32(a.Node()) * 7937
	h += uint32(b.Node()) * 2971
	if a.IsCompl() {
		h += 911
	}
	if b.IsCompl() {
		h += 353
	}
	return h
}
