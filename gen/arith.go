// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/z"
)

// FullAdder returns the sum and carry of a, b and c.
func FullAdder(p *logic.Net, a, b, c z.Signal) (sum, carry z.Signal) {
	x := p.Xor(a, b)
	sum = p.Xor(x, c)
	carry = p.Or(p.And(a, b), p.And(x, c))
	return
}

// Adder builds a ripple carry adder over the little endian words a and b
// with carry in cin.  a and b must have the same length.
func Adder(p *logic.Net, a, b []z.Signal, cin z.Signal) (sum []z.Signal, cout z.Signal) {
	if len(a) != len(b) {
		panic("adder operands of different widths")
	}
	sum = make([]z.Signal, len(a))
	cout = cin
	for i := range a {
		sum[i], cout = FullAdder(p, a[i], b[i], cout)
	}
	return sum, cout
}

// Parity returns the xor of ms, built as a balanced tree.
// The parity of no signals is z.False.
func Parity(p *logic.Net, ms []z.Signal) z.Signal {
	switch len(ms) {
	case 0:
		return z.False
	case 1:
		return ms[0]
	}
	h := len(ms) / 2
	return p.Xor(Parity(p, ms[:h]), Parity(p, ms[h:]))
}

// Mux returns data[i] where i is the little endian number given by sel.
// data must have 1 << len(sel) elements.
func Mux(p *logic.Net, sel, data []z.Signal) z.Signal {
	if len(data) != 1<<uint(len(sel)) {
		panic("mux data does not match select width")
	}
	if len(sel) == 0 {
		return data[0]
	}
	h := len(data) / 2
	top := len(sel) - 1
	lo := Mux(p, sel[:top], data[:h])
	hi := Mux(p, sel[:top], data[h:])
	return p.Choice(sel[top], hi, lo)
}
