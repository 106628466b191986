// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

// CloneNode creates in p the gate src of other over the new fanins
// children.  Exactly two children must be given.
func (p *Net) CloneNode(other *Net, src z.Node, children ...z.Signal) z.Signal {
	if !other.IsGate(src) {
		panicNotGate(src, "not a gate of the source network")
	}
	if len(children) != 2 {
		panicArity(len(children))
	}
	return p.And(children[0], children[1])
}

// Copier copies cones of one network into another.
//
// Each source node is copied at most once; copies are remembered and
// reused by later calls to At.
type Copier struct {
	Src  *Net // the network copied from
	Dst  *Net // the network copied to
	dmap []z.Signal
}

// NewCopier creates a new copier from src to dst.  The constant of src is
// mapped to the constant of dst.
func NewCopier(src, dst *Net) *Copier {
	c := &Copier{
		Src:  src,
		Dst:  dst,
		dmap: make([]z.Signal, src.Size())}
	for i := range c.dmap {
		c.dmap[i] = z.SignalNull
	}
	c.dmap[0] = z.False
	return c
}

// Map sets the copy of source node n to m.
func (c *Copier) Map(n z.Node, m z.Signal) {
	c.Src.s.check(n)
	c.fit(n)
	c.dmap[n] = m
}

// At returns the copy in c.Dst of signal m of c.Src.  Source inputs
// which are not mapped are copied as new inputs of c.Dst.
func (c *Copier) At(m z.Signal) z.Signal {
	n := m.Node()
	c.Src.s.check(n)
	c.fit(n)
	res := c.dmap[n]
	if res == z.SignalNull {
		nd := c.Src.s.nodes[n]
		if nd.c0 == z.SignalNull {
			res = c.Dst.PI()
		} else {
			a, b := c.At(nd.c0), c.At(nd.c1)
			res = c.Dst.And(a, b)
		}
		c.dmap[n] = res
	}
	return res.Xor(m.IsCompl())
}

func (c *Copier) fit(n z.Node) {
	for len(c.dmap) <= int(n) {
		c.dmap = append(c.dmap, z.SignalNull)
	}
}

// Cleanup returns a copy of p without gates which are not in the cone of
// some primary output.  Inputs and outputs keep their order.
func Cleanup(p *Net) *Net {
	q := NewCap(p.Size())
	c := NewCopier(p, q)
	p.ForEachPI(func(n z.Node, _ int) bool {
		c.Map(n, q.PI())
		return true
	})
	p.ForEachPO(func(s z.Signal, _ int) bool {
		q.PO(c.At(s))
		return true
	})
	return q
}
