// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/z"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the random source of the package.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Inputs creates n new primary inputs of p.
func Inputs(p *logic.Net, n int) []z.Signal {
	ms := make([]z.Signal, n)
	for i := range ms {
		ms[i] = p.PI()
	}
	return ms
}

// Rand adds a random circuit with nIns new inputs and nGates and
// operations to p.  Each operand is chosen uniformly from the constant,
// the new inputs and the previous results, with random polarity.  The last
// nOuts results are registered as outputs.
//
// Since and operations may simplify or hit existing gates, p may
// grow by less than nGates gates.
func Rand(p *logic.Net, nIns, nGates, nOuts int) []z.Signal {
	mu.Lock() // for package rng
	defer mu.Unlock()
	ss := append([]z.Signal{z.False}, Inputs(p, nIns)...)
	for i := 0; i < nGates; i++ {
		a := ss[rng.Intn(len(ss))].Xor(rng.Intn(2) == 1)
		b := ss[rng.Intn(len(ss))].Xor(rng.Intn(2) == 1)
		ss = append(ss, p.And(a, b))
	}
	if nOuts > len(ss) {
		nOuts = len(ss)
	}
	outs := ss[len(ss)-nOuts:]
	for _, o := range outs {
		p.PO(o)
	}
	return outs
}

// RandCube returns the conjunction of between 1 and maxSize signals chosen
// from ms with random polarities.
func RandCube(p *logic.Net, ms []z.Signal, maxSize int) z.Signal {
	mu.Lock()
	defer mu.Unlock()
	return randCube(p, ms, maxSize)
}

func randCube(p *logic.Net, ms []z.Signal, maxSize int) z.Signal {
	sz := 1 + rng.Intn(maxSize)
	c := z.True
	for i := 0; i < sz; i++ {
		m := ms[rng.Intn(len(ms))].Xor(rng.Intn(2) == 1)
		c = p.And(c, m)
	}
	return c
}

// RandSop returns a random sum of n cubes over ms, see RandCube.
func RandSop(p *logic.Net, ms []z.Signal, n, maxSize int) z.Signal {
	mu.Lock()
	defer mu.Unlock()
	d := z.False
	for i := 0; i < n; i++ {
		d = p.Or(d, randCube(p, ms, maxSize))
	}
	return d
}
