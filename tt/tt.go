// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tt provides truth tables of boolean functions over a small number
// of variables, stored as bit vectors.
//
// Bit i of a truth table over n variables is the value of the function
// under the assignment in which variable j is true iff bit j of i is set.
package tt

import (
	"errors"
	"math/bits"
	"strings"

	perrors "github.com/pkg/errors"
)

// Errors for misuse of truth tables.
var (
	ErrArity   = errors.New("truth table arity mismatch")
	ErrVar     = errors.New("variable out of range")
	ErrTooWide = errors.New("too many variables")
)

// MaxVars bounds the number of variables of a truth table.
const MaxVars = 30

var projections = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000}

// T is a truth table.  Operations on truth tables return new
// truth tables and leave their operands untouched.
type T struct {
	n    int
	bits []uint64
}

// New creates the constant false truth table over n variables.
func New(n int) *T {
	if n < 0 || n > MaxVars {
		panic(perrors.Wrapf(ErrTooWide, "%d variables", n))
	}
	w := 1
	if n > 6 {
		w = 1 << uint(n-6)
	}
	return &T{n: n, bits: make([]uint64, w)}
}

// Const creates the constant v truth table over n variables.
func Const(n int, v bool) *T {
	t := New(n)
	if v {
		for i := range t.bits {
			t.bits[i] = ^uint64(0)
		}
		t.mask()
	}
	return t
}

// Var creates the truth table of the projection onto variable i
// over n variables.
func Var(n, i int) *T {
	t := New(n)
	if i < 0 || i >= n {
		panic(perrors.Wrapf(ErrVar, "variable %d of %d", i, n))
	}
	if i < 6 {
		for j := range t.bits {
			t.bits[j] = projections[i]
		}
		t.mask()
		return t
	}
	s := uint(i - 6)
	for j := range t.bits {
		if (j>>s)&1 == 1 {
			t.bits[j] = ^uint64(0)
		}
	}
	return t
}

// FromWord creates a truth table over n <= 6 variables
// from the low 1<<n bits of w.
func FromWord(n int, w uint64) *T {
	if n > 6 {
		panic(perrors.Wrapf(ErrTooWide, "%d variables in one word", n))
	}
	t := New(n)
	t.bits[0] = w
	t.mask()
	return t
}

// Vars returns the number of variables of t.
func (t *T) Vars() int {
	return t.n
}

// Len returns the number of bits of t, 1 << t.Vars().
func (t *T) Len() int {
	return 1 << uint(t.n)
}

// Words returns the underlying words of t.  The caller should not
// modify the result.
func (t *T) Words() []uint64 {
	return t.bits
}

// Bit returns bit i of t.
func (t *T) Bit(i int) bool {
	return t.bits[i>>6]&(1<<uint(i&63)) != 0
}

// SetBit sets bit i of t to v.
func (t *T) SetBit(i int, v bool) {
	if v {
		t.bits[i>>6] |= 1 << uint(i&63)
		return
	}
	t.bits[i>>6] &^= 1 << uint(i&63)
}

// Not returns the complement of t.
func (t *T) Not() *T {
	r := t.clone()
	for i := range r.bits {
		r.bits[i] = ^r.bits[i]
	}
	r.mask()
	return r
}

// And returns the conjunction of t and o.
func (t *T) And(o *T) *T {
	t.check(o)
	r := t.clone()
	for i, w := range o.bits {
		r.bits[i] &= w
	}
	return r
}

// Or returns the disjunction of t and o.
func (t *T) Or(o *T) *T {
	t.check(o)
	r := t.clone()
	for i, w := range o.bits {
		r.bits[i] |= w
	}
	return r
}

// Xor returns the exclusive or of t and o.
func (t *T) Xor(o *T) *T {
	t.check(o)
	r := t.clone()
	for i, w := range o.bits {
		r.bits[i] ^= w
	}
	return r
}

// Equal returns whether t and o represent the same function
// over the same variables.
func (t *T) Equal(o *T) bool {
	if t.n != o.n {
		return false
	}
	for i, w := range t.bits {
		if o.bits[i] != w {
			return false
		}
	}
	return true
}

// Ones returns the number of set bits of t.
func (t *T) Ones() int {
	c := 0
	for _, w := range t.bits {
		c += bits.OnesCount64(w)
	}
	return c
}

// String returns t in hexadecimal, most significant digit first.
func (t *T) String() string {
	digits := t.Len() / 4
	if digits == 0 {
		digits = 1
	}
	var sb strings.Builder
	sb.Grow(digits)
	for d := digits - 1; d >= 0; d-- {
		w := t.bits[(d*4)>>6]
		sb.WriteByte("0123456789abcdef"[(w>>uint((d*4)&63))&0xf])
	}
	return sb.String()
}

func (t *T) clone() *T {
	bs := make([]uint64, len(t.bits))
	copy(bs, t.bits)
	return &T{n: t.n, bits: bs}
}

func (t *T) check(o *T) {
	if t.n != o.n {
		panic(perrors.Wrapf(ErrArity, "%d vs %d variables", t.n, o.n))
	}
}

func (t *T) mask() {
	if t.n < 6 {
		t.bits[0] &= (uint64(1) << (uint(1) << uint(t.n))) - 1
	}
}
