// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Or is a disjunction of one or more Xors.
type Or struct {
	Left  *Xor   `parser:"@@"`
	Right []*Xor `parser:"( \"|\" @@ )*"`
}

// Xor is an exclusive or of one or more Ands.
type Xor struct {
	Left  *And   `parser:"@@"`
	Right []*And `parser:"( \"^\" @@ )*"`
}

// And is a conjunction of one or more Unarys.
type And struct {
	Left  *Unary   `parser:"@@"`
	Right []*Unary `parser:"( \"&\" @@ )*"`
}

// Unary is a possibly negated atom.
type Unary struct {
	Not  *Unary `parser:"  ( \"!\" | \"~\" ) @@"`
	Atom *Atom  `parser:"| @@"`
}

// Atom is a constant, a variable or a parenthesized expression.
type Atom struct {
	Const *string `parser:"  @Const"`
	Var   *string `parser:"| @Ident"`
	Sub   *Or     `parser:"| \"(\" @@ \")\""`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\[\]\.]*`},
	{Name: "Const", Pattern: `[01]`},
	{Name: "Punct", Pattern: `[!~&|^()]`},
	{Name: "whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[Or](
	participle.Lexer(exprLexer),
	participle.Elide("whitespace"),
)
