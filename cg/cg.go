// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cg implements the principal-congruence generator Cg(a,b) of
// spec.md §4.6: the smallest congruence of an algebra identifying a with b.
//
// Two independent algorithms are provided — Naive (the direct Maltsev
// chain-closure rule) and Generate (the frontier-pair-queue optimization
// spec.md marks normative for acceptable performance) — because the
// specification requires tests to cross-check that both variants produce
// the same final partition on small algebras.
package cg

import (
	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/partition"
)

// Generate computes Cg(a,b) using the frontier-pair-queue optimization of
// spec.md §4.6: only pairs freshly identified are chained through each
// operation, at each argument position, with every other position ranging
// over the whole carrier — each identified pair is processed once, instead
// of re-sweeping every pair of related tuples until a fixed point as Naive
// does. This is the implementation every other package in this module should
// call; Naive exists only to cross-check it in tests.
func Generate(setSize int, ops []*op.Operation, a, b uacalc.Element) (*partition.Partition, error) {
	if err := checkRange(setSize, a, b); err != nil {
		return nil, err
	}
	p := partition.Create(setSize)
	if a == b {
		return p, nil
	}
	p.Union(a, b)
	queue := [][2]uacalc.Element{{a, b}}
	all := make([]int, setSize)
	for i := range all {
		all[i] = i
	}

	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		x, y := pair[0], pair[1]

		for _, f := range ops {
			k := f.Arity()
			if k == 0 {
				continue
			}
			for i := 0; i < k; i++ {
				newPairs, err := chainAt(f, p, x, y, i, all)
				if err != nil {
					return nil, err
				}
				queue = append(queue, newPairs...)
			}
		}
	}
	return p, nil
}

// chainAt fixes position i of f's arguments to x and y respectively, and
// every other position to each (k-1)-tuple drawn from elems (every element
// of the carrier), per spec.md §4.6's optimization. It unions the
// two results in p whenever they are not already related, and returns the
// newly-related pairs so the caller can enqueue them.
func chainAt(f *op.Operation, p *partition.Partition, x, y uacalc.Element, pos int, elems []int) ([][2]uacalc.Element, error) {
	k := f.Arity()
	others := k - 1
	combo := make([]int, others)
	var newPairs [][2]uacalc.Element

	for {
		u := make([]uacalc.Element, k)
		v := make([]uacalc.Element, k)
		oi := 0
		for j := 0; j < k; j++ {
			if j == pos {
				u[j], v[j] = x, y
				continue
			}
			u[j] = elems[combo[oi]]
			v[j] = elems[combo[oi]]
			oi++
		}
		fu, err := f.Value(uacalc.NewIntArray(u))
		if err != nil {
			return nil, err
		}
		fv, err := f.Value(uacalc.NewIntArray(v))
		if err != nil {
			return nil, err
		}
		if !p.SameBlock(fu, fv) {
			p.Union(fu, fv)
			newPairs = append(newPairs, [2]uacalc.Element{fu, fv})
		}
		if !incrementCombo(combo, len(elems)) {
			break
		}
	}
	return newPairs, nil
}

func incrementCombo(combo []int, modulus int) bool {
	if modulus == 0 {
		return false
	}
	for i := len(combo) - 1; i >= 0; i-- {
		combo[i]++
		if combo[i] < modulus {
			return true
		}
		combo[i] = 0
	}
	return false
}

// Naive computes Cg(a,b) by direct application of the Maltsev chain-closure
// rule of spec.md §4.6 step 2: repeat sweeping every operation over every
// pair of tuples agreeing coordinatewise with the current partition, until
// a fixed point. This is exponential in operation arity and is intended
// only for cross-checking Generate on small test algebras, never for
// production use.
func Naive(setSize int, ops []*op.Operation, a, b uacalc.Element) (*partition.Partition, error) {
	if err := checkRange(setSize, a, b); err != nil {
		return nil, err
	}
	p := partition.Create(setSize)
	if a == b {
		return p, nil
	}
	p.Union(a, b)

	for {
		changed := false
		for _, f := range ops {
			k := f.Arity()
			if k == 0 {
				continue
			}
			if sweepNaive(f, p, setSize) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return p, nil
}

// sweepNaive enumerates every tuple u over the full carrier and, for each,
// every tuple v drawn from the cartesian product of the blocks containing
// each ui — exactly the set of v with ui ≡ vi for every i — unioning
// f(u) with f(v) whenever they are not already related.
func sweepNaive(f *op.Operation, p *partition.Partition, setSize int) bool {
	k := f.Arity()
	changed := false
	u := make([]int, k)
	for {
		blocks := make([][]int, k)
		for i, ui := range u {
			blocks[i] = p.Block(ui)
		}
		combo := make([]int, k)
		for {
			v := make([]uacalc.Element, k)
			for i, bi := range combo {
				v[i] = blocks[i][bi]
			}
			uArgs := make([]uacalc.Element, k)
			for i, ui := range u {
				uArgs[i] = ui
			}
			fu, errU := f.Value(uacalc.NewIntArray(uArgs))
			fv, errV := f.Value(uacalc.NewIntArray(v))
			if errU == nil && errV == nil && !p.SameBlock(fu, fv) {
				p.Union(fu, fv)
				changed = true
			}
			if !incrementComboBlocks(combo, blocks) {
				break
			}
		}
		if !incrementOdometer(u, setSize) {
			break
		}
	}
	return changed
}

func incrementComboBlocks(combo []int, blocks [][]int) bool {
	for i := len(combo) - 1; i >= 0; i-- {
		combo[i]++
		if combo[i] < len(blocks[i]) {
			return true
		}
		combo[i] = 0
	}
	return false
}

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

func checkRange(setSize int, a, b uacalc.Element) error {
	if a < 0 || a >= setSize {
		return uacalc.Errorf(uacalc.InvalidArgument, "cg: element %d out of range [0,%d)", a, setSize)
	}
	if b < 0 || b >= setSize {
		return uacalc.Errorf(uacalc.InvalidArgument, "cg: element %d out of range [0,%d)", b, setSize)
	}
	return nil
}
