// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Node is the index of a node in the arena of a network.
//
// Node 0 is the constant false node.  Nodes are never moved once created, so
// a Node is valid for the lifetime of the storage which created it.
type Node uint32

// NodeNull is never the index of a node.
const NodeNull = Node(^uint32(0) >> 1)

// Pos returns the non-complemented signal pointing to n.
func (n Node) Pos() Signal {
	return Signal{node: n}
}

// Neg returns the complemented signal pointing to n.
func (n Node) Neg() Signal {
	return Signal{node: n, compl: true}
}

// Index returns n as an int, suitable for indexing
// per-node slices.
func (n Node) Index() int {
	return int(n)
}

func (n Node) String() string {
	return fmt.Sprintf("n%d", uint32(n))
}
