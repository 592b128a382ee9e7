// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"fmt"
	"strings"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
)

// Product builds the product algebra of factors, per spec.md §4.3: carrier
// size is the product of the factors' cardinalities, and each operation is
// applied componentwise. Every factor must share the same similarity type
// (same operation symbols, in the same order) — Product fails with
// InvalidAlgebra otherwise, since a componentwise operation needs one
// factor operation per symbol.
func Product(factors ...*Algebra) (*Algebra, error) {
	if len(factors) == 0 {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "product: at least one factor required")
	}
	numOps := len(factors[0].ops)
	for _, f := range factors[1:] {
		if len(f.ops) != numOps {
			return nil, uacalc.Errorf(uacalc.InvalidAlgebra, "product: factor %q has %d operations, want %d", f.name, len(f.ops), numOps)
		}
		for i := range f.ops {
			if !f.ops[i].Symbol().Equal(factors[0].ops[i].Symbol()) {
				return nil, uacalc.Errorf(uacalc.InvalidAlgebra, "product: factor %q operation %d is %s, want %s", f.name, i, f.ops[i].Symbol(), factors[0].ops[i].Symbol())
			}
		}
	}

	sizes := make([]int, len(factors))
	names := make([]string, len(factors))
	for i, f := range factors {
		sizes[i] = f.n
		names[i] = f.name
	}

	productOps := make([]*op.Operation, numOps)
	for i := 0; i < numOps; i++ {
		factorOps := make([]*op.Operation, len(factors))
		for j, f := range factors {
			factorOps[j] = f.ops[i]
		}
		po, err := op.NewComponentWise(factors[0].ops[i].Symbol(), factorOps, sizes)
		if err != nil {
			return nil, err
		}
		productOps[i] = po
	}

	n := 1
	for _, s := range sizes {
		n *= s
	}
	return New(fmt.Sprintf("(%s)", strings.Join(names, " x ")), n, productOps)
}

// Power builds the m-th direct power of base, i.e. Product applied to m
// copies of base (spec.md §5's Supplemented features: Power is Product
// specialized to a single repeated factor). Each power operation is a
// ComponentWise operation whose factors are all the same base operation,
// so no per-factor copy of its table is made.
func Power(base *Algebra, m int) (*Algebra, error) {
	if m <= 0 {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "power: exponent %d must be positive", m)
	}
	factors := make([]*Algebra, m)
	for i := range factors {
		factors[i] = base
	}
	return Product(factors...)
}
