// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package sim

import (
	"context"
	"fmt"
	"math/bits"
	"math/rand"

	perrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/go-air/aig/logic"
)

// Options control random simulation in Equiv.
type Options struct {
	Rounds  int   // number of 64 pattern rounds
	Workers int   // number of concurrent workers, 0 means 1
	Seed    int64 // seed of the pattern generators
}

// DefaultOptions are used by Equiv for zero Rounds.
var DefaultOptions = Options{Rounds: 256, Workers: 4, Seed: 33}

// Cex is a counterexample to the equivalence of two networks: an input
// assignment under which output Output differs.
type Cex struct {
	Output int
	Inputs []bool
}

func (c *Cex) Error() string {
	return fmt.Sprintf("output %d differs on inputs %v", c.Output, c.Inputs)
}

// Unwrap makes errors.Is(c, ErrMismatch) hold.
func (c *Cex) Unwrap() error {
	return ErrMismatch
}

// Equiv tests whether a and b compute the same outputs, matching inputs and
// outputs by position.  If a and b have at most MaxTTInputs inputs, the test
// is exhaustive.  Otherwise random simulation is used and a nil result only
// means no difference was found.
//
// If a difference is found, the returned error is a *Cex.
func Equiv(ctx context.Context, a, b *logic.Net, opts Options) error {
	if a.NumPIs() != b.NumPIs() || a.NumPOs() != b.NumPOs() {
		return perrors.Wrapf(ErrShape, "%d/%d vs %d/%d inputs/outputs",
			a.NumPIs(), a.NumPOs(), b.NumPIs(), b.NumPOs())
	}
	if a.NumPIs() <= MaxTTInputs {
		return equivTT(a, b)
	}
	if opts.Rounds == 0 {
		opts = DefaultOptions
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.Workers; w++ {
		n := opts.Rounds / opts.Workers
		if w < opts.Rounds%opts.Workers {
			n++
		}
		rnd := rand.New(rand.NewSource(opts.Seed + int64(w)))
		g.Go(func() error {
			return equivRand(ctx, a, b, rnd, n)
		})
	}
	return g.Wait()
}

func equivTT(a, b *logic.Net) error {
	fa, err := OutputTTs(a)
	if err != nil {
		return err
	}
	fb, err := OutputTTs(b)
	if err != nil {
		return err
	}
	for i := range fa {
		d := fa[i].Xor(fb[i])
		if d.Ones() == 0 {
			continue
		}
		for j := 0; j < d.Len(); j++ {
			if d.Bit(j) {
				ins := make([]bool, a.NumPIs())
				for k := range ins {
					ins[k] = (j>>uint(k))&1 == 1
				}
				return &Cex{Output: i, Inputs: ins}
			}
		}
	}
	return nil
}

func equivRand(ctx context.Context, a, b *logic.Net, rnd *rand.Rand, rounds int) error {
	ins := make([]uint64, a.NumPIs())
	for r := 0; r < rounds; r++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range ins {
			ins[i] = rnd.Uint64()
		}
		va, err := Words(a, ins)
		if err != nil {
			return err
		}
		vb, err := Words(b, ins)
		if err != nil {
			return err
		}
		for i := 0; i < a.NumPOs(); i++ {
			d := Word(va, a.POAt(i)) ^ Word(vb, b.POAt(i))
			if d == 0 {
				continue
			}
			bit := bits.TrailingZeros64(d)
			cex := &Cex{Output: i, Inputs: make([]bool, len(ins))}
			for k, w := range ins {
				cex.Inputs[k] = (w>>uint(bit))&1 == 1
			}
			return cex
		}
	}
	return nil
}
