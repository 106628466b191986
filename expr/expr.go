// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package expr builds and-inverter graphs from boolean expressions.
//
// Expressions use the operators
//
//	!a, ~a    negation
//	a & b     conjunction
//	a ^ b     exclusive or
//	a | b     disjunction
//
// listed from tightest to loosest binding, parentheses, the constants 0 and
// 1, and variables.  Each variable becomes a primary input of the network
// the first time a Builder sees it.
package expr

import (
	"errors"

	perrors "github.com/pkg/errors"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/z"
)

// ErrSyntax is wrapped by errors from malformed expressions.
var ErrSyntax = errors.New("syntax error")

// Builder translates expressions into gates of a network, sharing
// variables between expressions.
type Builder struct {
	Net   *logic.Net
	names map[string]z.Signal
	order []string
}

// NewBuilder creates a builder adding gates to p.
func NewBuilder(p *logic.Net) *Builder {
	return &Builder{Net: p, names: make(map[string]z.Signal)}
}

// Parse parses src and returns the signal computing it.
func (b *Builder) Parse(src string) (z.Signal, error) {
	e, err := parser.ParseString("", src)
	if err != nil {
		return z.SignalNull, perrors.Wrapf(ErrSyntax, "%q: %s", src, err)
	}
	return b.or(e), nil
}

// Inputs returns the variable names seen so far, in the order of their
// inputs.
func (b *Builder) Inputs() []string {
	res := make([]string, len(b.order))
	copy(res, b.order)
	return res
}

// Declare makes sure each name has an input, creating inputs in the order
// given for names not seen before.
func (b *Builder) Declare(names ...string) {
	for _, name := range names {
		b.variable(name)
	}
}

// Input returns the input signal of the variable name.
func (b *Builder) Input(name string) (z.Signal, bool) {
	s, ok := b.names[name]
	return s, ok
}

// Parse builds src into a new network with a single output.  It returns
// the network and the names of its inputs, in input order.
func Parse(src string) (*logic.Net, []string, error) {
	b := NewBuilder(logic.New())
	s, err := b.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	b.Net.PO(s)
	return b.Net, b.Inputs(), nil
}

func (b *Builder) or(e *Or) z.Signal {
	s := b.xor(e.Left)
	for _, r := range e.Right {
		s = b.Net.Or(s, b.xor(r))
	}
	return s
}

func (b *Builder) xor(e *Xor) z.Signal {
	s := b.and(e.Left)
	for _, r := range e.Right {
		s = b.Net.Xor(s, b.and(r))
	}
	return s
}

func (b *Builder) and(e *And) z.Signal {
	s := b.unary(e.Left)
	for _, r := range e.Right {
		s = b.Net.And(s, b.unary(r))
	}
	return s
}

func (b *Builder) unary(e *Unary) z.Signal {
	if e.Not != nil {
		return b.unary(e.Not).Not()
	}
	return b.atom(e.Atom)
}

func (b *Builder) atom(e *Atom) z.Signal {
	switch {
	case e.Const != nil:
		return b.Net.Constant(*e.Const == "1")
	case e.Var != nil:
		return b.variable(*e.Var)
	default:
		return b.or(e.Sub)
	}
}

func (b *Builder) variable(name string) z.Signal {
	if s, ok := b.names[name]; ok {
		return s
	}
	s := b.Net.PI()
	b.names[name] = s
	b.order = append(b.order, name)
	return s
}
