// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"fmt"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/partition"
)

// Quotient builds the quotient algebra a/cong: one element per block of
// cong, with each operation's value on a tuple of blocks computed by
// applying the original operation to one representative per block and
// mapping the result back to its block. This is well-defined exactly when
// cong is compatible with every operation of a (the Congruence invariant of
// spec.md §3); Quotient does not itself verify compatibility — callers that
// built cong via Cg or a CongruenceLattice already have that guarantee.
//
// SPEC_FULL.md §5 adds this view: spec.md's Algebra contract names
// "quotient view" as a component but never gives it an operation.
func Quotient(a *Algebra, cong *partition.Partition) (*Algebra, error) {
	if cong.Size() != a.n {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "quotient: partition of size %d does not match algebra carrier size %d", cong.Size(), a.n)
	}
	blocks := cong.Blocks()
	blockOf := make([]int, a.n)
	for bi, blk := range blocks {
		for _, e := range blk {
			blockOf[e] = bi
		}
	}

	quotientOps := make([]*op.Operation, len(a.ops))
	for idx, o := range a.ops {
		o := o
		k := o.Arity()
		quotientOps[idx] = op.NewComputed(o.Symbol(), len(blocks), func(args uacalc.IntArray) (uacalc.Element, error) {
			if args.Len() != k {
				return 0, uacalc.Errorf(uacalc.InvalidArgument, "operation %s: got %d arguments, want %d", o.Symbol(), args.Len(), k)
			}
			orig := make([]uacalc.Element, k)
			for i := 0; i < k; i++ {
				b := args.At(i)
				if b < 0 || b >= len(blocks) {
					return 0, uacalc.Errorf(uacalc.InvalidArgument, "operation %s: block index %d out of range [0,%d)", o.Symbol(), b, len(blocks))
				}
				orig[i] = blocks[b][0]
			}
			v, err := o.Value(uacalc.NewIntArray(orig))
			if err != nil {
				return 0, err
			}
			return blockOf[v], nil
		})
	}
	return New(fmt.Sprintf("%s/θ", a.name), len(blocks), quotientOps)
}
