// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/go-air/aig/logic"
	"github.com/go-air/aig/z"
)

func TestCardSort(t *testing.T) {
	for N := 1; N <= 6; N++ {
		p := logic.New()
		ms := make([]z.Signal, N)
		for i := range ms {
			ms[i] = p.PI()
		}
		cs := p.CardSort(ms)
		if cs.N() != N {
			t.Errorf("card N %d", cs.N())
		}
		for i := 0; i < 1<<uint(N); i++ {
			ins := assignment(i, N)
			k := 0
			for _, v := range ins {
				if v {
					k++
				}
			}
			vs := eval(p, ins)
			for b := -1; b <= N+1; b++ {
				if sigVal(vs, cs.Leq(b)) != (k <= b) {
					t.Errorf("N=%d k=%d leq %d", N, k, b)
				}
				if sigVal(vs, cs.Less(b)) != (k < b) {
					t.Errorf("N=%d k=%d less %d", N, k, b)
				}
				if sigVal(vs, cs.Geq(b)) != (k >= b) {
					t.Errorf("N=%d k=%d geq %d", N, k, b)
				}
				if sigVal(vs, cs.Gr(b)) != (k > b) {
					t.Errorf("N=%d k=%d gr %d", N, k, b)
				}
			}
		}
	}
}
