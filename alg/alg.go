// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alg implements Algebra, the finite-algebra abstraction of
// spec.md §3/§4.3: a carrier size plus a list of operations sharing that
// set size, together with its derived views — subalgebra, quotient,
// product and power.
package alg

import (
	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/cg"
	"github.com/jamiewannenburg/uacalc/closure"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/partition"
	"github.com/jamiewannenburg/uacalc/term"
)

// Algebra is a finite carrier {0,…,n-1} together with a fixed-order list of
// operations, all sharing that carrier size. Every Algebra is responsible
// for validating this at construction, per spec.md §4.3.
type Algebra struct {
	name string
	n    int
	ops  []*op.Operation

	// firstByName maps an operation's symbol name to the index of its
	// first occurrence in ops, per spec.md §4.3's "operations() by
	// ... symbol name (first match)".
	firstByName map[string]int
}

// New builds an Algebra on carrier size n with the given operations. It
// fails with InvalidAlgebra if any operation's set size differs from n.
func New(name string, n int, ops []*op.Operation) (*Algebra, error) {
	cp := make([]*op.Operation, len(ops))
	firstByName := make(map[string]int, len(ops))
	for i, o := range ops {
		if o.SetSize() != n {
			return nil, uacalc.Errorf(uacalc.InvalidAlgebra, "algebra %s: operation %s has set size %d, want %d", name, o.Symbol(), o.SetSize(), n)
		}
		cp[i] = o
		if _, ok := firstByName[o.Symbol().Name]; !ok {
			firstByName[o.Symbol().Name] = i
		}
	}
	return &Algebra{name: name, n: n, ops: cp, firstByName: firstByName}, nil
}

// Name returns the algebra's name.
func (a *Algebra) Name() string { return a.name }

// Cardinality returns n, the carrier size.
func (a *Algebra) Cardinality() int { return a.n }

// SetSize is an alias for Cardinality, matching op.Operation's accessor
// name so Algebra reads uniformly alongside operations in calling code.
func (a *Algebra) SetSize() int { return a.n }

// Operations returns the algebra's operations, in construction order.
// Callers must not mutate the returned slice's operations.
func (a *Algebra) Operations() []*op.Operation {
	return a.ops
}

// OperationByName returns the first operation whose symbol has the given
// name, per spec.md §4.3.
func (a *Algebra) OperationByName(name string) (*op.Operation, bool) {
	i, ok := a.firstByName[name]
	if !ok {
		return nil, false
	}
	return a.ops[i], true
}

// OperationBySymbol returns the operation matching sym exactly (name and
// arity), satisfying term.OperationLookup so terms can be evaluated
// directly against an Algebra.
func (a *Algebra) OperationBySymbol(sym uacalc.OperationSymbol) (term.Evaluator, bool) {
	for _, o := range a.ops {
		if o.Symbol().Equal(sym) {
			return o, true
		}
	}
	return nil, false
}

// SimilarityType returns the algebra's operation symbols, sorted by
// (name, arity) per spec.md §3.
func (a *Algebra) SimilarityType() []uacalc.OperationSymbol {
	syms := make([]uacalc.OperationSymbol, len(a.ops))
	for i, o := range a.ops {
		syms[i] = o.Symbol()
	}
	uacalc.SortSymbols(syms)
	return syms
}

// Subalgebra returns the algebra whose carrier is the subuniverse
// generated by generators (via the closure engine, spec.md §4.5) and whose
// operations are the restrictions of a's operations to that subuniverse.
func (a *Algebra) Subalgebra(generators []uacalc.Element) (*Algebra, error) {
	res, err := closure.Close(a.n, a.ops, generators, false, nil, nil)
	if err != nil {
		return nil, err
	}
	members := res.Sorted()
	restricted := make([]*op.Operation, len(a.ops))
	for i, o := range a.ops {
		r, err := op.NewRestricted(o, members)
		if err != nil {
			return nil, err
		}
		restricted[i] = r
	}
	return New(a.name+" (subalgebra)", len(members), restricted)
}

// Cg computes the principal congruence Cg(x,y) of a, per spec.md §4.6,
// using cg.Generate (the frontier-pair optimization).
func (a *Algebra) Cg(x, y uacalc.Element) (*partition.Partition, error) {
	return cg.Generate(a.n, a.ops, x, y)
}
