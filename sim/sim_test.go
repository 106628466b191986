// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/tt"
	"github.com/go-air/aig/z"
)

func TestBoolsXor(t *testing.T) {
	p := logic.New()
	x0, x1 := p.PI(), p.PI()
	p.PO(p.Xor(x0, x1))
	exp := []bool{false, true, true, false}
	for i, e := range exp {
		vs, err := Bools(p, []bool{i&1 == 1, i&2 == 2})
		if err != nil {
			t.Fatal(err)
		}
		if Bool(vs, p.POAt(0)) != e {
			t.Errorf("xor on %d", i)
		}
	}
	if _, err := Bools(p, []bool{true}); !errors.Is(err, ErrInputs) {
		t.Errorf("expected input error, got %v", err)
	}
}

func randNet(rnd *rand.Rand, nIns, nGates, nOuts int) *logic.Net {
	p := logic.New()
	ss := []z.Signal{z.False}
	for i := 0; i < nIns; i++ {
		ss = append(ss, p.PI())
	}
	for i := 0; i < nGates; i++ {
		a := ss[rnd.Intn(len(ss))].Xor(rnd.Intn(2) == 1)
		b := ss[rnd.Intn(len(ss))].Xor(rnd.Intn(2) == 1)
		ss = append(ss, p.And(a, b))
	}
	for i := 0; i < nOuts; i++ {
		p.PO(ss[len(ss)-1-i].Xor(rnd.Intn(2) == 1))
	}
	return p
}

func TestWordsMatchBools(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	p := randNet(rnd, 6, 60, 4)
	ins := make([]uint64, p.NumPIs())
	for i := range ins {
		ins[i] = rnd.Uint64()
	}
	ws, err := Words(p, ins)
	if err != nil {
		t.Fatal(err)
	}
	for bit := 0; bit < 64; bit++ {
		bs := make([]bool, len(ins))
		for i, w := range ins {
			bs[i] = (w>>uint(bit))&1 == 1
		}
		vs, err := Bools(p, bs)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < p.NumPOs(); i++ {
			o := p.POAt(i)
			if ((Word(ws, o)>>uint(bit))&1 == 1) != Bool(vs, o) {
				t.Errorf("bit %d output %d", bit, i)
			}
		}
	}
}

func TestTruthTables(t *testing.T) {
	p := logic.New()
	a, b, c := p.PI(), p.PI(), p.PI()
	p.PO(p.Xor(p.Xor(a, b), c))
	p.PO(p.Constant(true))
	fs, err := OutputTTs(p)
	if err != nil {
		t.Fatal(err)
	}
	if s := fs[0].String(); s != "96" {
		t.Errorf("parity %s", s)
	}
	if !fs[1].Equal(tt.Const(3, true)) {
		t.Errorf("constant output %s", fs[1])
	}
}

func parity(p *logic.Net, ms []z.Signal, balanced bool) z.Signal {
	if !balanced {
		r := z.False
		for _, m := range ms {
			r = p.Xor(r, m)
		}
		return r
	}
	if len(ms) == 1 {
		return ms[0]
	}
	h := len(ms) / 2
	return p.Xor(parity(p, ms[:h], true), parity(p, ms[h:], true))
}

func parityNet(n int, balanced bool, broken bool) *logic.Net {
	p := logic.New()
	ms := make([]z.Signal, n)
	for i := range ms {
		ms[i] = p.PI()
	}
	if broken {
		ms[1] = p.And(ms[1], ms[2])
	}
	p.PO(parity(p, ms, balanced))
	return p
}

func TestEquivTT(t *testing.T) {
	a, b := parityNet(8, false, false), parityNet(8, true, false)
	if err := Equiv(context.Background(), a, b, Options{}); err != nil {
		t.Errorf("parity not equivalent: %v", err)
	}
	c := parityNet(8, true, true)
	err := Equiv(context.Background(), a, c, Options{})
	var cex *Cex
	if !errors.As(err, &cex) || !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected counterexample, got %v", err)
	}
	va, _ := Bools(a, cex.Inputs)
	vc, _ := Bools(c, cex.Inputs)
	if Bool(va, a.POAt(0)) == Bool(vc, c.POAt(0)) {
		t.Errorf("counterexample %v does not distinguish", cex.Inputs)
	}
}

func TestEquivRandom(t *testing.T) {
	n := MaxTTInputs + 8
	a, b := parityNet(n, false, false), parityNet(n, true, false)
	opts := Options{Rounds: 32, Workers: 3, Seed: 7}
	if err := Equiv(context.Background(), a, b, opts); err != nil {
		t.Errorf("parity not equivalent: %v", err)
	}
	c := parityNet(n, false, true)
	err := Equiv(context.Background(), b, c, opts)
	var cex *Cex
	if !errors.As(err, &cex) {
		t.Fatalf("expected counterexample, got %v", err)
	}
	vb, _ := Bools(b, cex.Inputs)
	vc, _ := Bools(c, cex.Inputs)
	if Bool(vb, b.POAt(0)) == Bool(vc, c.POAt(0)) {
		t.Errorf("counterexample does not distinguish")
	}
}

func TestEquivShape(t *testing.T) {
	a, b := parityNet(3, false, false), parityNet(4, false, false)
	if err := Equiv(context.Background(), a, b, Options{}); !errors.Is(err, ErrShape) {
		t.Errorf("expected shape error, got %v", err)
	}
}

func TestEquivCancel(t *testing.T) {
	n := MaxTTInputs + 1
	a, b := parityNet(n, false, false), parityNet(n, true, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Equiv(ctx, a, b, Options{Rounds: 4}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}
