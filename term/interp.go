// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
)

// Interpretation views a term t, closed over a fixed variable ordering, as
// an operation of arity len(vars) over an algebra of carrier size setSize,
// resolved through alg. Per the resolved Open Question on eager-vs-lazy
// interpretation, the result is a lazy, closure-backed op.Operation (kind
// Computed): each Value call evaluates t via Eval, and the full table is
// only materialized if a caller explicitly asks for Table() — the same
// lazy-table contract every other op.Operation variant already offers.
func Interpretation(t Term, vars []string, alg OperationLookup, setSize int) *op.Operation {
	names := make([]string, len(vars))
	copy(names, vars)
	sym := uacalc.NewOperationSymbol(t.String(), len(names))
	return op.NewComputed(sym, setSize, func(args uacalc.IntArray) (uacalc.Element, error) {
		if args.Len() != len(names) {
			return 0, uacalc.Errorf(uacalc.InvalidArgument, "interpretation of arity %d applied to %d arguments", len(names), args.Len())
		}
		assignment := make(map[string]uacalc.Element, len(names))
		for i, name := range names {
			assignment[name] = args.At(i)
		}
		return Eval(t, alg, assignment)
	})
}
