// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package partition keeps partition and connection annotations for the nodes
// of a network.
//
// A Book is an annotation service keyed by node index.  It does not look at
// the network: it performs no validation and places no constraint on the
// network's structure.  All maps are ordered by node index, so derived views
// are deterministic.
package partition

import (
	"github.com/charmbracelet/log"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/go-air/aig/z"
)

// Book records, per node, an adjacency list and a partition id.
type Book struct {
	conns    *redblacktree.Tree // z.Node -> []z.Node
	parts    *redblacktree.Tree // z.Node -> int
	sizes    map[int]int
	n        int
	partConn map[int]map[z.Node][]z.Node
	log      *log.Logger
}

// New creates an empty book logging to log.Default().
func New() *Book {
	return NewWithLogger(log.Default())
}

// NewWithLogger creates an empty book logging to l.
func NewWithLogger(l *log.Logger) *Book {
	return &Book{
		conns:    redblacktree.NewWith(nodeComparator),
		parts:    redblacktree.NewWith(nodeComparator),
		sizes:    make(map[int]int),
		partConn: make(map[int]map[z.Node][]z.Node),
		log:      l}
}

func nodeComparator(a, b interface{}) int {
	return utils.UInt32Comparator(uint32(a.(z.Node)), uint32(b.(z.Node)))
}

// SetConnections replaces all adjacency lists with conns.
func (b *Book) SetConnections(conns map[z.Node][]z.Node) {
	b.conns.Clear()
	for n, adj := range conns {
		b.conns.Put(n, copyNodes(adj))
	}
	b.log.Debug("replaced connections", "nodes", b.conns.Size())
}

// SetConnection sets the adjacency list of n to adj.
func (b *Book) SetConnection(n z.Node, adj []z.Node) {
	b.conns.Put(n, copyNodes(adj))
}

// Connection returns the adjacency list of n, or nil.
func (b *Book) Connection(n z.Node) []z.Node {
	v, ok := b.conns.Get(n)
	if !ok {
		return nil
	}
	return copyNodes(v.([]z.Node))
}

// Connections returns a copy of all adjacency lists.
func (b *Book) Connections() map[z.Node][]z.Node {
	res := make(map[z.Node][]z.Node, b.conns.Size())
	it := b.conns.Iterator()
	for it.Next() {
		res[it.Key().(z.Node)] = copyNodes(it.Value().([]z.Node))
	}
	return res
}

// Assign puts node n in partition part.  The number of partitions becomes
// at least part+1.  Reassigning a node moves it.
func (b *Book) Assign(n z.Node, part int) {
	if part < 0 {
		panic("negative partition id")
	}
	if old, ok := b.parts.Get(n); ok {
		b.sizes[old.(int)]--
	}
	if part+1 > b.n {
		b.n = part + 1
	}
	b.log.Debug("assign partition", "node", n, "partition", part)
	b.parts.Put(n, part)
	b.sizes[part]++
}

// SetPartitions assigns every node in parts.  Earlier assignments of other
// nodes are kept, and the number of partitions never shrinks.
func (b *Book) SetPartitions(parts map[z.Node]int) {
	for n, part := range parts {
		b.Assign(n, part)
	}
}

// Partition returns the partition of n and whether n was assigned.
func (b *Book) Partition(n z.Node) (int, bool) {
	v, ok := b.parts.Get(n)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Partitions returns a copy of the node to partition map.
func (b *Book) Partitions() map[z.Node]int {
	res := make(map[z.Node]int, b.parts.Size())
	it := b.parts.Iterator()
	for it.Next() {
		res[it.Key().(z.Node)] = it.Value().(int)
	}
	return res
}

// NumPartitions returns one more than the largest partition id assigned so
// far, or 0.
func (b *Book) NumPartitions() int {
	return b.n
}

// Size returns the number of nodes assigned to part.
func (b *Book) Size(part int) int {
	return b.sizes[part]
}

// Members returns the nodes of part in index order.
func (b *Book) Members(part int) []z.Node {
	var res []z.Node
	it := b.parts.Iterator()
	for it.Next() {
		if it.Value().(int) == part {
			res = append(res, it.Key().(z.Node))
		}
	}
	return res
}

// Derive recomputes the per partition adjacency view: for each
// partition, the adjacency lists of its members.  Members without an
// adjacency list map to nil.
func (b *Book) Derive() {
	b.partConn = make(map[int]map[z.Node][]z.Node, b.n)
	for i := 0; i < b.n; i++ {
		b.partConn[i] = make(map[z.Node][]z.Node)
	}
	it := b.parts.Iterator()
	for it.Next() {
		n, part := it.Key().(z.Node), it.Value().(int)
		b.partConn[part][n] = b.Connection(n)
	}
	for i := 0; i < b.n; i++ {
		b.log.Debug("derived partition", "partition", i, "nodes", len(b.partConn[i]))
	}
}

// PartitionConnections returns the adjacency view of part computed by the
// last call to Derive.
func (b *Book) PartitionConnections(part int) map[z.Node][]z.Node {
	res := make(map[z.Node][]z.Node, len(b.partConn[part]))
	for n, adj := range b.partConn[part] {
		res[n] = copyNodes(adj)
	}
	return res
}

func copyNodes(ns []z.Node) []z.Node {
	if ns == nil {
		return nil
	}
	res := make([]z.Node, len(ns))
	copy(res, ns)
	return res
}
