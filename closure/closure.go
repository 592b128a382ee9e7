// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package closure implements the Closer engine of spec.md §4.5: given a set
// of operations over a fixed carrier and a seed set, compute the smallest
// subuniverse containing the seed, optionally recording a witness term for
// every element produced.
//
// The algorithm is breadth-first, grounded on the frontier/queue shape the
// retrieval pack's graph/topo package uses for its own BFS-family
// algorithms (topo.ConnectedComponents, topo.TarjanSCC): a frontier window
// of "elements not yet fully swept" is processed round by round, and the
// newly produced elements become the next round's frontier, rather than
// re-sweeping the whole closed set from scratch every round.
package closure

import (
	"fmt"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/term"
)

// Result is the outcome of a closure computation.
type Result struct {
	// Elements is the closed set, in the deterministic order elements were
	// first added (seed order, then values of nullary operations, then BFS
	// discovery order).
	Elements []uacalc.Element

	// Witness maps every element of Elements to a term built from variables
	// x0, x1, … (one per seed, in seed order) that evaluates to it. Nil if
	// witnesses were not requested.
	Witness map[uacalc.Element]term.Term
}

// Sorted returns a copy of r.Elements in ascending order, the form spec.md
// §4.5's "Observable contract" requires for the returned universe.
func (r *Result) Sorted() []uacalc.Element {
	sorted := append([]uacalc.Element(nil), r.Elements...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

// Close computes the smallest subuniverse of a setSize-element carrier with
// operations ops that contains seed, per spec.md §4.5. If recordWitnesses
// is true, the result's Witness map is populated; otherwise it is nil and
// Close avoids the extra term-building work entirely.
//
// cancel and progress may be nil; Close polls cancel between rounds and, if
// progress is non-nil, reports after every round.
//
// When ops are all ComponentWise operations of a power algebra, op.Operation's
// own componentwise dispatch already evaluates each factor via the shared
// factor table rather than rebuilding one table per power — Close needs no
// separate specialization to benefit from that.
func Close(setSize int, ops []*op.Operation, seed []uacalc.Element, recordWitnesses bool, cancel *uacalc.CancelToken, progress uacalc.ProgressFunc) (*Result, error) {
	for _, s := range seed {
		if s < 0 || s >= setSize {
			return nil, uacalc.Errorf(uacalc.InvalidArgument, "closure: generator %d out of range [0,%d)", s, setSize)
		}
	}

	var witness map[uacalc.Element]term.Term
	if recordWitnesses {
		witness = make(map[uacalc.Element]term.Term)
	}

	U := make([]uacalc.Element, 0, len(seed))
	inU := make(map[uacalc.Element]bool, len(seed))
	addSeed := func(s uacalc.Element, varIndex int) {
		if inU[s] {
			return
		}
		inU[s] = true
		U = append(U, s)
		if witness != nil {
			witness[s] = term.NewVariable(fmt.Sprintf("x%d", varIndex))
		}
	}
	for i, s := range seed {
		addSeed(s, i)
	}

	for _, f := range ops {
		if f.Arity() != 0 {
			continue
		}
		v, err := f.Value(uacalc.NewIntArray(nil))
		if err != nil {
			return nil, err
		}
		if !inU[v] {
			inU[v] = true
			U = append(U, v)
			if witness != nil {
				w, err := term.NewNonVariable(f.Symbol(), nil)
				if err != nil {
					return nil, err
				}
				witness[v] = w
			}
		}
	}

	frontierStart, frontierEnd := 0, len(U)
	round := 0
	for frontierStart < frontierEnd {
		if err := uacalc.CheckCancel(cancel); err != nil {
			return nil, err
		}
		roundLen := len(U)
		for _, f := range ops {
			k := f.Arity()
			if k == 0 {
				continue
			}
			if err := sweepOperation(f, U, roundLen, frontierStart, frontierEnd, inU, witness, &U); err != nil {
				return nil, err
			}
		}
		round++
		uacalc.Report(progress, frontierFraction(frontierEnd, setSize), fmt.Sprintf("closure round %d: %d elements", round, len(U)))
		frontierStart, frontierEnd = frontierEnd, len(U)
	}

	return &Result{Elements: U, Witness: witness}, nil
}

func frontierFraction(closed, setSize int) float64 {
	if setSize <= 0 {
		return 1
	}
	f := float64(closed) / float64(setSize)
	if f > 1 {
		return 1
	}
	return f
}

// sweepOperation enumerates every k-tuple of indices into U[0:roundLen) that
// includes at least one index in [frontierStart,frontierEnd), evaluates f on
// it, and appends any new result to *uPtr (and inU, and witness when
// non-nil). Tuples are enumerated in lexicographic order of index tuples,
// per spec.md §4.5's determinism requirement.
func sweepOperation(f *op.Operation, U []uacalc.Element, roundLen, frontierStart, frontierEnd int, inU map[uacalc.Element]bool, witness map[uacalc.Element]term.Term, uPtr *[]uacalc.Element) error {
	k := f.Arity()
	idx := make([]int, k)
	for {
		hasFrontier := false
		for _, ix := range idx {
			if ix >= frontierStart && ix < frontierEnd {
				hasFrontier = true
				break
			}
		}
		if hasFrontier {
			args := make([]uacalc.Element, k)
			var witnessArgs []term.Term
			if witness != nil {
				witnessArgs = make([]term.Term, k)
			}
			for i, ix := range idx {
				args[i] = U[ix]
				if witness != nil {
					witnessArgs[i] = witness[U[ix]]
				}
			}
			v, err := f.Value(uacalc.NewIntArray(args))
			if err != nil {
				return err
			}
			if !inU[v] {
				inU[v] = true
				*uPtr = append(*uPtr, v)
				U = *uPtr
				if witness != nil {
					w, err := term.NewNonVariable(f.Symbol(), witnessArgs)
					if err != nil {
						return err
					}
					witness[v] = w
				}
			}
		}
		if !incrementOdometer(idx, roundLen) {
			return nil
		}
	}
}

// incrementOdometer advances idx as a base-modulus odometer, least
// significant digit last, returning false once every digit has wrapped
// (i.e. all tuples have been produced).
func incrementOdometer(idx []int, modulus int) bool {
	if modulus == 0 {
		return false
	}
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < modulus {
			return true
		}
		idx[i] = 0
	}
	return false
}
