// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"errors"

	perrors "github.com/pkg/errors"

	"github.com/go-air/aig/z"
)

// Errors signalling misuse of a network.  They are raised as panics, wrapped
// with context, since they indicate a broken invariant in the caller rather
// than bad input.  Use errors.Is on the recovered value to classify them.
var (
	ErrUnknownNode = errors.New("unknown node")
	ErrNotGate     = errors.New("node is not a gate")
	ErrArity       = errors.New("wrong number of fanin values")
)

func panicUnknown(n z.Node, size int) {
	panic(perrors.Wrapf(ErrUnknownNode, "%s not in [0, %d)", n, size))
}

func panicNotGate(n z.Node, what string) {
	panic(perrors.Wrapf(ErrNotGate, "%s is %s", n, what))
}

func panicArity(got int) {
	panic(perrors.Wrapf(ErrArity, "got %d, need 2", got))
}
