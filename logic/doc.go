// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides structurally hashed and-inverter graphs.
//
// A network (Net) is an arena of nodes: the constant false node with index
// 0, primary inputs, and two input and gates whose fanins are signals, that
// is nodes with an optional complement.  Or, xor and the other connectives
// are expressed with and gates and complemented signals, so negation never
// creates a node.
//
// Networks grow monotonically.  There is no node deletion; Cleanup copies
// the live part of a network into a new one.
package logic
