// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "testing"

func TestSignalData(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Node(i)
		if SignalOf(n.Pos().Data()) != n.Pos() {
			t.Errorf("data conversion %d", i)
		}
		if SignalOf(n.Neg().Data()) != n.Neg() {
			t.Errorf("data - conversion %d", i)
		}
		if n.Pos().IsCompl() {
			t.Errorf("complemented: +%d", i)
		}
		if !n.Neg().IsCompl() {
			t.Errorf("not complemented: -%d", i)
		}
	}
	if SignalOf(7) != Sig(3, true) {
		t.Errorf("data 7 gave %s", SignalOf(7))
	}
	if s := SignalOf(1<<40 | 3); s != Sig(1, true) {
		t.Errorf("high bits not discarded: %s", s)
	}
	if s := SignalOf(uint64(^uint32(0))<<1 | 1); s.Node() != Node(^uint32(0)) || !s.IsCompl() {
		t.Errorf("widest node lost: %s", s)
	}
}

func TestSignalNot(t *testing.T) {
	s := Sig(12, false)
	if s.Not().Not() != s {
		t.Errorf("double negation")
	}
	if s.Not() == s {
		t.Errorf("negation is identity")
	}
	if s.Not().Node() != s.Node() {
		t.Errorf("negation changed node")
	}
	if s.Xor(true) != s.Not() || s.Xor(false) != s {
		t.Errorf("xor polarity")
	}
	if s.Not().Pos() != s || s.Neg() != s.Not() || s.Not().Neg() != s.Not() {
		t.Errorf("projections")
	}
	if True != False.Not() {
		t.Errorf("constants")
	}
}
