// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/aig/z"

// Every node carries two scratch words for algorithms: a value and a visited
// marker.  They are shared by all algorithms and all handles on a storage
// and are never reset implicitly.  An algorithm must call ClearValues or
// ClearVisited before relying on them.

// ClearValues sets the value of every node to 0.
func (p *Net) ClearValues() {
	for i := range p.s.nodes {
		p.s.nodes[i].value = 0
	}
}

// Value returns the value of n.
func (p *Net) Value(n z.Node) uint32 {
	return p.s.at(n).value
}

// SetValue sets the value of n to v.
func (p *Net) SetValue(n z.Node, v uint32) {
	p.s.at(n).value = v
}

// IncrValue increments the value of n and returns the value
// it had before.
func (p *Net) IncrValue(n z.Node) uint32 {
	nd := p.s.at(n)
	v := nd.value
	nd.value++
	return v
}

// DecrValue decrements the value of n and returns the new value.
func (p *Net) DecrValue(n z.Node) uint32 {
	nd := p.s.at(n)
	nd.value--
	return nd.value
}

// ClearVisited sets the visited marker of every node to 0.
func (p *Net) ClearVisited() {
	for i := range p.s.nodes {
		p.s.nodes[i].visited = 0
	}
}

// Visited returns the visited marker of n.
func (p *Net) Visited(n z.Node) uint32 {
	return p.s.at(n).visited
}

// SetVisited sets the visited marker of n to v.
func (p *Net) SetVisited(n z.Node, v uint32) {
	p.s.at(n).visited = v
}
