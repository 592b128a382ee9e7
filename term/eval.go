// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "github.com/jamiewannenburg/uacalc"

// Evaluator is the capability Eval needs from whatever an operation symbol
// resolves to: evaluate it on a tuple of elements. *op.Operation satisfies
// this already.
type Evaluator interface {
	Value(args uacalc.IntArray) (uacalc.Element, error)
}

// OperationLookup is the capability Eval needs from an algebra: resolve an
// operation symbol to an Evaluator. alg.Algebra satisfies this.
type OperationLookup interface {
	OperationBySymbol(sym uacalc.OperationSymbol) (Evaluator, bool)
}

// frame is one pending node in Eval's explicit work stack. args accumulates
// already-evaluated children in order.
type frame struct {
	term Term
	args []uacalc.Element
}

// Eval interprets t in alg under assignment, per spec.md §4.8. Evaluation
// is iterative — a work-stack holds pending nodes so that very deep terms
// never recurse on term depth — and a per-call cache indexed by term-node
// pointer identity memoizes repeated shared subterms, discarded once Eval
// returns.
//
// Eval fails with UnknownOperation if t references a symbol alg does not
// have, UnboundVariable if assignment lacks a binding t needs, or whatever
// error the underlying operation's Value returns.
func Eval(t Term, alg OperationLookup, assignment map[string]uacalc.Element) (uacalc.Element, error) {
	memo := make(map[Term]uacalc.Element)
	stack := []*frame{{term: t}}

	deliver := func(v uacalc.Element) (uacalc.Element, bool) {
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return v, true
		}
		parent := stack[len(stack)-1]
		parent.args = append(parent.args, v)
		return 0, false
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if v, ok := memo[top.term]; ok {
			if result, done := deliver(v); done {
				return result, nil
			}
			continue
		}

		switch nt := top.term.(type) {
		case *Variable:
			v, ok := assignment[nt.Name]
			if !ok {
				return 0, uacalc.Errorf(uacalc.UnboundVariable, "unbound variable %q", nt.Name)
			}
			memo[top.term] = v
			if result, done := deliver(v); done {
				return result, nil
			}

		case *NonVariable:
			if len(top.args) < len(nt.Children) {
				stack = append(stack, &frame{term: nt.Children[len(top.args)]})
				continue
			}
			evaluator, ok := alg.OperationBySymbol(nt.Sym)
			if !ok {
				return 0, uacalc.Errorf(uacalc.UnknownOperation, "unknown operation symbol %s", nt.Sym)
			}
			v, err := evaluator.Value(uacalc.NewIntArray(top.args))
			if err != nil {
				return 0, err
			}
			memo[top.term] = v
			if result, done := deliver(v); done {
				return result, nil
			}

		case *Flat:
			v, err := evalFlat(nt, alg, top.args)
			if err != nil {
				if _, ok := err.(needMore); ok {
					stack = append(stack, &frame{term: nt.Children[len(top.args)]})
					continue
				}
				return 0, err
			}
			memo[top.term] = v
			if result, done := deliver(v); done {
				return result, nil
			}

		default:
			return 0, uacalc.Errorf(uacalc.InvalidArgument, "unrecognized term node %T", nt)
		}
	}
	// unreachable: the loop always returns once the root frame is
	// delivered, since the root has no parent to append to.
	return 0, uacalc.Errorf(uacalc.InvalidArgument, "empty term")
}

// needMore signals evalFlat wants one more child evaluated before it can
// proceed; it is not a real failure.
type needMore struct{}

func (needMore) Error() string { return "need more children" }

// evalFlat left-folds a Flat node's already-evaluated children (in args)
// through its binary operation once every child has a value, requesting
// one more child at a time otherwise.
func evalFlat(t *Flat, alg OperationLookup, args []uacalc.Element) (uacalc.Element, error) {
	if len(args) < len(t.Children) {
		return 0, needMore{}
	}
	evaluator, ok := alg.OperationBySymbol(t.Sym)
	if !ok {
		return 0, uacalc.Errorf(uacalc.UnknownOperation, "unknown operation symbol %s", t.Sym)
	}
	acc := args[0]
	for _, v := range args[1:] {
		var err error
		acc, err = evaluator.Value(uacalc.NewIntArray([]uacalc.Element{acc, v}))
		if err != nil {
			return 0, err
		}
	}
	return acc, nil
}
