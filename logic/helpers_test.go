// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"errors"
	"testing"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/z"
)

// eval simulates p in index order with input values ins and
// returns the value of every node.
func eval(p *logic.Net, ins []bool) []bool {
	vs := make([]bool, p.Size())
	p.ForEachPI(func(n z.Node, i int) bool {
		vs[n] = ins[i]
		return true
	})
	p.ForEachGate(func(n z.Node) bool {
		c0, c1 := p.Fanins(n)
		vs[n] = p.ComputeBool(n, vs[c0.Node()], vs[c1.Node()])
		return true
	})
	return vs
}

func sigVal(vs []bool, s z.Signal) bool {
	return vs[s.Node()] != s.IsCompl()
}

// assignment returns the bits of i as n booleans.
func assignment(i, n int) []bool {
	ins := make([]bool, n)
	for j := range ins {
		ins[j] = (i>>uint(j))&1 == 1
	}
	return ins
}

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected panic %v", target)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("expected panic %v, got %v", target, r)
		}
	}()
	f()
}
