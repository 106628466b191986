// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

const (
	dfsOpen uint32 = 1
	dfsDone uint32 = 2
)

// PostOrder calls fn on every node in the cones of roots, each node after
// its fanins and at most once.  The constant and inputs are included.
//
// PostOrder clears and then uses the visited markers.  It keeps its own
// stack, so the depth of the network does not bound it.
func (p *Net) PostOrder(fn func(n z.Node), roots ...z.Signal) {
	p.ClearVisited()
	var stack []z.Node
	for _, r := range roots {
		p.s.check(r.Node())
		stack = p.vis(r.Node(), fn, stack[:0])
	}
}

// vis visits the cone of root.  A node is marked dfsOpen when its fanins
// are pushed and dfsDone once fn has been called on it; since fanins have
// smaller indices, an open node is never reached again before it is done.
func (p *Net) vis(root z.Node, fn func(n z.Node), stack []z.Node) []z.Node {
	stack = append(stack, root)
	for len(stack) > 0 {
		top := len(stack) - 1
		n := stack[top]
		nd := &p.s.nodes[n]
		switch nd.visited {
		case dfsDone:
			stack = stack[:top]
		case dfsOpen:
			stack = stack[:top]
			fn(n)
			nd.visited = dfsDone
		default:
			nd.visited = dfsOpen
			if !p.s.isGate(n) {
				continue
			}
			if c1 := nd.c1.Node(); p.s.nodes[c1].visited != dfsDone {
				stack = append(stack, c1)
			}
			if c0 := nd.c0.Node(); p.s.nodes[c0].visited != dfsDone {
				stack = append(stack, c0)
			}
		}
	}
	return stack
}

// Depth returns the number of gates on a longest path from an input or the
// constant to a primary output.
//
// Depth clears and then uses the node values; afterwards the value of each
// node is its level.
func (p *Net) Depth() int {
	p.ClearValues()
	p.ForEachGate(func(n z.Node) bool {
		c0, c1 := p.Fanins(n)
		l0, l1 := p.Value(c0.Node()), p.Value(c1.Node())
		if l1 > l0 {
			l0 = l1
		}
		p.SetValue(n, l0+1)
		return true
	})
	d := uint32(0)
	p.ForEachPO(func(s z.Signal, _ int) bool {
		if v := p.Value(s.Node()); v > d {
			d = v
		}
		return true
	})
	return int(d)
}
