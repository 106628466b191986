// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/z"
)

func TestForEachNodeSnapshot(t *testing.T) {
	p := logic.New()
	a, b := p.PI(), p.PI()
	p.And(a, b)
	sz := p.Size()
	var seen []z.Node
	p.ForEachNode(func(n z.Node) bool {
		seen = append(seen, n)
		p.PI()
		return true
	})
	if len(seen) != sz {
		t.Fatalf("visited %d nodes, size was %d", len(seen), sz)
	}
	for i, n := range seen {
		if int(n) != i {
			t.Errorf("node %d at position %d", n, i)
		}
	}
	if p.Size() != 2*sz {
		t.Errorf("inputs not created during iteration")
	}
}

func TestForEachGate(t *testing.T) {
	p := logic.New()
	a := p.PI()
	b := p.PI()
	g := p.And(a, b)
	c := p.PI()
	h := p.And(g, c.Not())
	var gs []z.Node
	p.ForEachGate(func(n z.Node) bool {
		gs = append(gs, n)
		return true
	})
	if len(gs) != 2 || gs[0] != g.Node() || gs[1] != h.Node() {
		t.Errorf("gates %v", gs)
	}
	k := 0
	p.ForEachGate(func(n z.Node) bool {
		k++
		return false
	})
	if k != 1 {
		t.Errorf("gate iteration did not stop")
	}
}

func TestForEachPIPO(t *testing.T) {
	p := logic.New()
	ins := []z.Signal{p.PI(), p.PI(), p.PI()}
	g := p.Xor(ins[0], ins[2])
	p.PO(g)
	p.PO(ins[1].Not())
	p.ForEachPI(func(n z.Node, i int) bool {
		if ins[i].Node() != n {
			t.Errorf("input %d: %s", i, n)
		}
		p.PI()
		return true
	})
	if p.NumPIs() != 6 {
		t.Errorf("inputs %d", p.NumPIs())
	}
	var os []z.Signal
	p.ForEachPO(func(s z.Signal, i int) bool {
		os = append(os, s)
		p.PO(s)
		return true
	})
	if len(os) != 2 || os[0] != g || os[1] != ins[1].Not() {
		t.Errorf("outputs %v", os)
	}
	if n := len(p.POs(nil)); n != 4 {
		t.Errorf("outputs after iteration %d", n)
	}
	if n := len(p.PIs(nil)); n != 6 {
		t.Errorf("inputs after iteration %d", n)
	}
}

func TestForEachFanin(t *testing.T) {
	p := logic.New()
	a, b := p.PI(), p.PI()
	g := p.And(b, a.Not())
	var fs []z.Signal
	p.ForEachFanin(g.Node(), func(s z.Signal, i int) bool {
		if i != len(fs) {
			t.Errorf("fanin position %d", i)
		}
		fs = append(fs, s)
		return true
	})
	if len(fs) != 2 || fs[0] != a.Not() || fs[1] != b {
		t.Errorf("fanins %v", fs)
	}
	fs = fs[:0]
	p.ForEachFanin(g.Node(), func(s z.Signal, i int) bool {
		fs = append(fs, s)
		return false
	})
	if len(fs) != 1 {
		t.Errorf("fanin iteration did not stop")
	}
	p.ForEachFanin(a.Node(), func(s z.Signal, i int) bool {
		t.Errorf("input has fanin %s", s)
		return true
	})
	p.ForEachFanin(0, func(s z.Signal, i int) bool {
		t.Errorf("constant has fanin %s", s)
		return true
	})
}
