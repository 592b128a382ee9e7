// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latticebuild implements the join-closure and order-structure
// machinery shared by conlat.CongruenceLattice (spec.md §4.7) and
// sublat.SubalgebraLattice (spec.md §4.9): both are "start from a set of
// join-irreducibles, close under binary join, then derive atoms, coatoms,
// join/meet-irreducibles, the covering relation, height and width" — the
// only thing that differs between them is what an Elem and its Join mean.
//
// The covering-relation DAG and its longest-path/height computation follow
// the adjacency-map and topological traversal style of the retrieval
// pack's graph/topo package; the width computation (largest antichain, via
// Dilworth's theorem reduced to a bipartite-matching problem) is a
// textbook algorithm with no library in the retrieval pack to ground it
// on, implemented directly against the Elem interface below.
package latticebuild

import "sort"

// Elem is one element of the lattice being built: something with a stable
// canonical key (for deduplication) and a partial order.
type Elem interface {
	// Key returns a string that is equal for equal elements and distinct
	// otherwise, used to deduplicate the growing closure.
	Key() string
	// Leq reports whether this element precedes or equals other in the
	// lattice's order.
	Leq(other Elem) bool
}

// Lattice is the result of Build: the closed set of elements plus its
// derived order structure.
type Lattice struct {
	Elements []Elem
	Zero     Elem
	One      Elem

	// Covers[i] lists the indices of elements directly above Elements[i]
	// (the covering relation, i.e. Elements[i] < Elements[j] with nothing
	// strictly between).
	Covers [][]int
	// CoveredBy[i] lists the indices of elements directly below Elements[i].
	CoveredBy [][]int
}

// Build closes {zero} ∪ irreducibles under binary join (spec.md §4.7 steps
// 1-4 / §4.9's dual), then derives the covering relation. one, the top
// element, is identified as the unique element every other element Leqs;
// Build assumes the supplied irreducibles and join function actually
// produce a lattice with a top (true for congruence and subalgebra
// lattices of a finite algebra, since the full relation / whole carrier is
// always reachable by repeated join).
func Build(zero Elem, irreducibles []Elem, join func(a, b Elem) Elem) *Lattice {
	byKey := make(map[string]Elem)
	var all []Elem
	add := func(e Elem) bool {
		k := e.Key()
		if _, ok := byKey[k]; ok {
			return false
		}
		byKey[k] = e
		all = append(all, e)
		return true
	}
	add(zero)
	for _, e := range irreducibles {
		add(e)
	}
	for {
		changed := false
		n := len(all)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if add(join(all[i], all[j])) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	one := findTop(all)
	covers, coveredBy := coveringRelation(all)
	return &Lattice{Elements: all, Zero: zero, One: one, Covers: covers, CoveredBy: coveredBy}
}

func findTop(all []Elem) Elem {
	for _, candidate := range all {
		isTop := true
		for _, other := range all {
			if !other.Leq(candidate) {
				isTop = false
				break
			}
		}
		if isTop {
			return candidate
		}
	}
	return nil
}

// coveringRelation computes, for every pair i != j with Elements[i] <
// Elements[j] (strictly), whether any k makes it non-covering (Elements[i]
// < Elements[k] < Elements[j]); if none does, j directly covers i.
func coveringRelation(all []Elem) (covers, coveredBy [][]int) {
	n := len(all)
	lt := make([][]bool, n)
	for i := range lt {
		lt[i] = make([]bool, n)
		for j := range lt[i] {
			if i == j {
				continue
			}
			lt[i][j] = all[i].Leq(all[j]) && all[i].Key() != all[j].Key()
		}
	}
	covers = make([][]int, n)
	coveredBy = make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !lt[i][j] {
				continue
			}
			between := false
			for k := 0; k < n; k++ {
				if lt[i][k] && lt[k][j] {
					between = true
					break
				}
			}
			if !between {
				covers[i] = append(covers[i], j)
				coveredBy[j] = append(coveredBy[j], i)
			}
		}
	}
	return covers, coveredBy
}

// Atoms returns the indices of elements directly covering Zero.
func (l *Lattice) Atoms() []int {
	zi := l.indexOf(l.Zero)
	return append([]int(nil), l.Covers[zi]...)
}

// Coatoms returns the indices of elements directly covered by One.
func (l *Lattice) Coatoms() []int {
	oi := l.indexOf(l.One)
	return append([]int(nil), l.CoveredBy[oi]...)
}

// JoinIrreducibles returns the indices of elements with exactly one lower
// cover (excluding Zero itself, which has none).
func (l *Lattice) JoinIrreducibles() []int {
	var out []int
	for i := range l.Elements {
		if len(l.CoveredBy[i]) == 1 {
			out = append(out, i)
		}
	}
	return out
}

// MeetIrreducibles returns the indices of elements with exactly one upper
// cover (excluding One itself, which has none), dual to JoinIrreducibles.
func (l *Lattice) MeetIrreducibles() []int {
	var out []int
	for i := range l.Elements {
		if len(l.Covers[i]) == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Height returns the length (number of edges) of the longest chain from
// Zero to One, computed as the longest path in the covering-relation DAG.
func (l *Lattice) Height() int {
	n := len(l.Elements)
	memo := make([]int, n)
	for i := range memo {
		memo[i] = -1
	}
	var longest func(i int) int
	longest = func(i int) int {
		if memo[i] >= 0 {
			return memo[i]
		}
		best := 0
		for _, j := range l.Covers[i] {
			if d := 1 + longest(j); d > best {
				best = d
			}
		}
		memo[i] = best
		return best
	}
	zi := l.indexOf(l.Zero)
	return longest(zi)
}

// Width returns the size of the largest antichain, via Dilworth's theorem:
// the minimum number of chains needed to cover the poset equals the
// maximum antichain size, and the minimum chain cover is computed as
// n - (maximum bipartite matching on the strict-order relation), per
// König's theorem.
func (l *Lattice) Width() int {
	n := len(l.Elements)
	lt := make([][]bool, n)
	for i := range lt {
		lt[i] = make([]bool, n)
		for j := range lt[i] {
			if i != j {
				lt[i][j] = l.Elements[i].Leq(l.Elements[j]) && l.Elements[i].Key() != l.Elements[j].Key()
			}
		}
	}
	matchRight := make([]int, n)
	for i := range matchRight {
		matchRight[i] = -1
	}
	matching := 0
	for i := 0; i < n; i++ {
		visited := make([]bool, n)
		if tryAugment(i, lt, visited, matchRight) {
			matching++
		}
	}
	return n - matching
}

// tryAugment is Kuhn's algorithm: a DFS augmenting-path search for
// bipartite matching, matching left vertex u against some right vertex
// reachable via lt[u][*].
func tryAugment(u int, lt [][]bool, visited []bool, matchRight []int) bool {
	for v := range lt[u] {
		if !lt[u][v] || visited[v] {
			continue
		}
		visited[v] = true
		if matchRight[v] == -1 || tryAugment(matchRight[v], lt, visited, matchRight) {
			matchRight[v] = u
			return true
		}
	}
	return false
}

func (l *Lattice) indexOf(e Elem) int {
	for i, x := range l.Elements {
		if x.Key() == e.Key() {
			return i
		}
	}
	return -1
}

// SortedKeys returns the lattice's element keys in sorted order, useful
// for deterministic test output and debugging.
func (l *Lattice) SortedKeys() []string {
	keys := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		keys[i] = e.Key()
	}
	sort.Strings(keys)
	return keys
}
