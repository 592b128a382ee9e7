// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sublat implements SubalgebraLattice, spec.md §4.9: the lattice of
// subuniverses of a finite algebra ordered by inclusion, dual in shape to
// conlat.CongruenceLattice but built from closure (spec.md §4.5) rather
// than principal congruences.
package sublat

import (
	"strconv"
	"strings"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/closure"
	"github.com/jamiewannenburg/uacalc/internal/latticebuild"
	"github.com/jamiewannenburg/uacalc/op"
)

// elem adapts a subuniverse — a sorted slice of elements — to
// latticebuild.Elem: the comma-joined member list is the dedup key, and
// Leq is subset inclusion.
type elem struct{ members []uacalc.Element }

func (e elem) Key() string {
	var sb strings.Builder
	for i, m := range e.members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(m))
	}
	return sb.String()
}

func (e elem) Leq(other latticebuild.Elem) bool {
	o := other.(elem)
	set := make(map[uacalc.Element]bool, len(o.members))
	for _, m := range o.members {
		set[m] = true
	}
	for _, m := range e.members {
		if !set[m] {
			return false
		}
	}
	return true
}

// Lattice is a computed subalgebra lattice.
type Lattice struct {
	*latticebuild.Lattice
	byKey map[string]int
}

// Build computes the full subalgebra lattice of an algebra of the given
// carrier size and operations, per spec.md §4.9:
//   - zero = sg(∅) (the closure of no generators — just whatever nullary
//     operations force into every subuniverse),
//   - join-irreducibles = { sg({x}) | x ∈ carrier },
//   - join = sg(union), closed under via the same latticebuild engine
//     conlat uses,
//   - meet = set intersection (needs no further closure: the intersection
//     of two subuniverses is already a subuniverse).
func Build(setSize int, ops []*op.Operation, cancel *uacalc.CancelToken, progress uacalc.ProgressFunc) (*Lattice, error) {
	zeroRes, err := closure.Close(setSize, ops, nil, false, cancel, nil)
	if err != nil {
		return nil, err
	}
	zero := elem{zeroRes.Sorted()}

	seen := make(map[string]bool)
	var irreducibles []latticebuild.Elem
	for x := 0; x < setSize; x++ {
		if err := uacalc.CheckCancel(cancel); err != nil {
			return nil, err
		}
		res, err := closure.Close(setSize, ops, []uacalc.Element{x}, false, cancel, nil)
		if err != nil {
			return nil, err
		}
		e := elem{res.Sorted()}
		if seen[e.Key()] {
			continue
		}
		seen[e.Key()] = true
		irreducibles = append(irreducibles, e)
		uacalc.Report(progress, float64(x+1)/float64(setSize)*0.5, "one-generated subuniverses")
	}

	lb := latticebuild.Build(zero, irreducibles, func(a, b latticebuild.Elem) latticebuild.Elem {
		union := unionSorted(a.(elem).members, b.(elem).members)
		res, _ := closure.Close(setSize, ops, union, false, nil, nil)
		return elem{res.Sorted()}
	})
	uacalc.Report(progress, 1, "subalgebra lattice ready")

	byKey := make(map[string]int, len(lb.Elements))
	for i, e := range lb.Elements {
		byKey[e.Key()] = i
	}
	return &Lattice{Lattice: lb, byKey: byKey}, nil
}

func unionSorted(a, b []uacalc.Element) []uacalc.Element {
	set := make(map[uacalc.Element]bool, len(a)+len(b))
	for _, x := range a {
		set[x] = true
	}
	for _, x := range b {
		set[x] = true
	}
	out := make([]uacalc.Element, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Size returns the number of subuniverses in the lattice.
func (l *Lattice) Size() int { return len(l.Elements) }

// Subuniverse returns the sorted member list at lattice index i.
func (l *Lattice) Subuniverse(i int) []uacalc.Element {
	return append([]uacalc.Element(nil), l.Elements[i].(elem).members...)
}

// Join returns the lattice index of sg(union of subuniverses i and j).
func (l *Lattice) Join(i, j int, ops []*op.Operation, setSize int) (int, error) {
	union := unionSorted(l.Subuniverse(i), l.Subuniverse(j))
	res, err := closure.Close(setSize, ops, union, false, nil, nil)
	if err != nil {
		return 0, err
	}
	key := elem{res.Sorted()}.Key()
	return l.byKey[key], nil
}

// Meet returns the lattice index of the set intersection of subuniverses i
// and j, per spec.md §4.9 — no closure call needed, since the intersection
// of two subuniverses is already a subuniverse.
func (l *Lattice) Meet(i, j int) int {
	a, b := l.Subuniverse(i), l.Subuniverse(j)
	inB := make(map[uacalc.Element]bool, len(b))
	for _, x := range b {
		inB[x] = true
	}
	var inter []uacalc.Element
	for _, x := range a {
		if inB[x] {
			inter = append(inter, x)
		}
	}
	key := elem{inter}.Key()
	return l.byKey[key]
}
