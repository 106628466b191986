// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

// CardSort provides cardinality predicates over a set of signals via
// sorting networks.
//
// Sorting Networks
//
// CardSort builds an odd-even merge sorting network over the signals, in
// which each compare/swap is an and gate (the low output) and an or gate
// (the high output).  After sorting, the i'th signal from the top is true
// iff at least i+1 of the input signals are true, so every cardinality
// predicate is a single signal of the network.
//
// The idea was originally presented by Nicolas Sorensson and Nicolas Een in
// "Translating Pseudo-Boolean Constraints into SAT" Journal on Satisfiability,
// Boolean Modelng, and Computation.
type CardSort struct {
	n  int
	p  *Net
	ms []z.Signal
}

// CardSort creates a new CardSort object which gives access to unary
// cardinality predicates over ms.  The resulting predicates reflect how many
// of the signals in ms are true.
func (p *Net) CardSort(ms []z.Signal) *CardSort {
	q := uint(0)
	for 1<<q < len(ms) {
		q++
	}
	ns := make([]z.Signal, 1<<q)
	copy(ns, ms)
	c := &CardSort{ms: ns, p: p, n: len(ms)}
	for i := len(ms); i < len(ns); i++ {
		ns[i] = z.True
	}
	c.sort(0, len(ns))
	return c
}

// Less returns a signal which is true iff the number of true
// signals is less than b.
func (c *CardSort) Less(b int) z.Signal {
	return c.Leq(b - 1)
}

// Leq returns a signal which is true iff the number of true
// signals does not exceed b.
func (c *CardSort) Leq(b int) z.Signal {
	if b >= c.n {
		return z.True
	}
	if b < 0 {
		return z.False
	}
	return c.ms[(c.n-1)-b].Not()
}

// Geq returns a signal which is true iff at least b signals
// are true.
func (c *CardSort) Geq(b int) z.Signal {
	if b <= 0 {
		return z.True
	}
	if b >= c.n+1 {
		return z.False
	}
	return c.Leq(b - 1).Not()
}

// Gr returns a signal which is true iff more than b signals
// are true.
func (c *CardSort) Gr(b int) z.Signal {
	return c.Geq(b + 1)
}

// N returns the number of signals whose cardinality is tested.
func (c *CardSort) N() int {
	return c.n
}

func (c *CardSort) sort(l, h int) {
	if h-l <= 1 {
		return
	}
	m := l + (h-l)/2
	c.sort(l, m)
	c.sort(m, h)
	c.merge(l, h, 1)
}

// odd even merge
func (c *CardSort) merge(l, h, s int) {
	if h <= l+s {
		return
	}
	ss := 2 * s
	if ss >= h-l {
		c.ms[l], c.ms[l+s] = c.lh(l, l+s)
		return
	}
	c.merge(l, h, ss)
	c.merge(l+s, h, ss)
	lim := h - s
	for i := l + s; i < lim; i += ss {
		c.ms[i], c.ms[i+s] = c.lh(i, i+s)
	}
}

// compare-and-swap (low-high)
func (c *CardSort) lh(i, j int) (z.Signal, z.Signal) {
	mi, mj := c.ms[i], c.ms[j]
	return c.p.And(mi, mj), c.p.Or(mi, mj)
}
