// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the basic edge encoding of and-inverter graphs.
//
// A Node is an index into the node arena of a network, and a Signal is a
// Node together with a complement flag.  Negating a Signal is free: it
// never touches the network.
package z
