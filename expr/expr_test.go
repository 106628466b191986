// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"errors"
	"testing"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/sim"
)

func evalExpr(t *testing.T, src string, f func(ins []bool) bool) {
	t.Helper()
	p, names, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	n := len(names)
	for i := 0; i < 1<<uint(n); i++ {
		ins := make([]bool, n)
		for j := range ins {
			ins[j] = (i>>uint(j))&1 == 1
		}
		vs, err := sim.Bools(p, ins)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := sim.Bool(vs, p.POAt(0)), f(ins); got != want {
			t.Errorf("%s at %v: got %t want %t", src, ins, got, want)
		}
	}
}

func TestPrecedence(t *testing.T) {
	evalExpr(t, "a | b & c", func(v []bool) bool { return v[0] || (v[1] && v[2]) })
	evalExpr(t, "a ^ b & c", func(v []bool) bool { return v[0] != (v[1] && v[2]) })
	evalExpr(t, "a | b ^ c", func(v []bool) bool { return v[0] || (v[1] != v[2]) })
	evalExpr(t, "!a & b", func(v []bool) bool { return !v[0] && v[1] })
	evalExpr(t, "!(a & b)", func(v []bool) bool { return !(v[0] && v[1]) })
	evalExpr(t, "~~a", func(v []bool) bool { return v[0] })
}

func TestConstants(t *testing.T) {
	p, names, err := Parse("a & 0 | 1 & a")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 {
		t.Fatalf("names %v", names)
	}
	if p.POAt(0) != p.PIAt(0).Pos() {
		t.Errorf("expected a, got %s", p.POAt(0))
	}
	p, _, err = Parse("!0")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsConstant(p.POAt(0).Node()) || p.POAt(0) != p.Constant(true) {
		t.Errorf("expected true, got %s", p.POAt(0))
	}
}

func TestSharedInputs(t *testing.T) {
	b := NewBuilder(logic.New())
	s0, err := b.Parse("x & y")
	if err != nil {
		t.Fatal(err)
	}
	s1, err := b.Parse("y & x")
	if err != nil {
		t.Fatal(err)
	}
	if s0 != s1 {
		t.Errorf("not hash-consed: %s %s", s0, s1)
	}
	if _, err := b.Parse("z | x"); err != nil {
		t.Fatal(err)
	}
	names := b.Inputs()
	if len(names) != 3 || names[0] != "x" || names[1] != "y" || names[2] != "z" {
		t.Errorf("inputs %v", names)
	}
	if s, ok := b.Input("y"); !ok || s.Node() != b.Net.PIAt(1) {
		t.Errorf("input y %s %v", s, ok)
	}
	if b.Net.NumPIs() != 3 {
		t.Errorf("pis %d", b.Net.NumPIs())
	}
}

func TestSyntax(t *testing.T) {
	for _, src := range []string{"", "a &", "(a | b", "a b", "a + b"} {
		_, _, err := Parse(src)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected syntax error, got %v", src, err)
		}
	}
}

func TestDeclare(t *testing.T) {
	b := NewBuilder(logic.New())
	b.Declare("q", "p")
	s, err := b.Parse("p & q")
	if err != nil {
		t.Fatal(err)
	}
	q, _ := b.Input("q")
	if q.Node() != b.Net.PIAt(0) || b.Net.NumPIs() != 2 {
		t.Errorf("declare order: %s", q)
	}
	c0, c1 := b.Net.Fanins(s.Node())
	if c0.Node() != b.Net.PIAt(0) || c1.Node() != b.Net.PIAt(1) {
		t.Errorf("fanins %s %s", c0, c1)
	}
}
