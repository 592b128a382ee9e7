// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conlat implements CongruenceLattice, spec.md §4.7: the complete
// lattice of congruences of a finite algebra, ordered by refinement.
package conlat

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/cg"
	"github.com/jamiewannenburg/uacalc/internal/latticebuild"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/partition"
)

// elem adapts *partition.Partition to latticebuild.Elem: canonical Block
// form is the dedup key (two partitions are the same lattice element iff
// their Block-format strings agree), and Leq is partition refinement.
type elem struct{ p *partition.Partition }

func (e elem) Key() string                    { return e.p.Format(partition.Block) }
func (e elem) Leq(other latticebuild.Elem) bool { return e.p.Leq(other.(elem).p) }

// Lattice is a computed congruence lattice: the closed set of congruences
// plus its derived order structure (atoms, coatoms, irreducibles, height,
// width, covering relation), per spec.md §4.7.
type Lattice struct {
	*latticebuild.Lattice
	byKey map[string]int
}

// Build computes the full congruence lattice of an algebra of the given
// carrier size and operations, per spec.md §4.7's five-step algorithm:
//  1. compute J := {Cg(a,b) | 0≤a<b<n} (spec.md §4.6),
//  2. deduplicate by canonical form,
//  3-4. close under binary join until stable,
//  5. derive atoms/coatoms/irreducibles/height/width/covering relation.
//
// Step 1 is embarrassingly parallel — each Cg(a,b) is independent — so it
// runs across GOMAXPROCS worker goroutines via errgroup; per spec.md §5
// this internal parallelism is invisible to the caller: results are
// reassembled in the fixed (a,b) enumeration order before the (single-
// threaded) join-closure of step 3-4 begins, so the resulting Lattice is
// exactly as deterministic as a sequential computation.
func Build(setSize int, ops []*op.Operation, cancel *uacalc.CancelToken, progress uacalc.ProgressFunc) (*Lattice, error) {
	type pair struct{ a, b uacalc.Element }
	var pairs []pair
	for a := 0; a < setSize; a++ {
		for b := a + 1; b < setSize; b++ {
			pairs = append(pairs, pair{a, b})
		}
	}

	principal := make([]*partition.Partition, len(pairs))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))
	for i, pr := range pairs {
		i, pr := i, pr
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := uacalc.CheckCancel(cancel); err != nil {
				return err
			}
			p, err := cg.Generate(setSize, ops, pr.a, pr.b)
			if err != nil {
				return err
			}
			principal[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	uacalc.Report(progress, 0.5, "principal congruences computed")

	seen := make(map[string]bool, len(principal))
	var irreducibles []latticebuild.Elem
	for _, p := range principal {
		key := p.Format(partition.Block)
		if seen[key] {
			continue
		}
		seen[key] = true
		irreducibles = append(irreducibles, elem{p})
	}

	if err := uacalc.CheckCancel(cancel); err != nil {
		return nil, err
	}
	zero := elem{partition.Create(setSize)}
	lb := latticebuild.Build(zero, irreducibles, func(a, b latticebuild.Elem) latticebuild.Elem {
		return elem{a.(elem).p.Join(b.(elem).p)}
	})
	uacalc.Report(progress, 1, "congruence lattice ready")

	byKey := make(map[string]int, len(lb.Elements))
	for i, e := range lb.Elements {
		byKey[e.Key()] = i
	}
	return &Lattice{Lattice: lb, byKey: byKey}, nil
}

// Size returns the number of congruences in the lattice.
func (l *Lattice) Size() int { return len(l.Elements) }

// Congruence returns the partition at lattice index i.
func (l *Lattice) Congruence(i int) *partition.Partition { return l.Elements[i].(elem).p }

// Join returns the lattice index of the join of the congruences at i and j,
// computed by partition join (§4.4) and looked up in the lattice's
// dictionary, per spec.md §4.7.
func (l *Lattice) Join(i, j int) int {
	res := l.Congruence(i).Join(l.Congruence(j))
	return l.byKey[res.Format(partition.Block)]
}

// Meet returns the lattice index of the meet of the congruences at i and j,
// analogous to Join. The result is always present in the lattice's
// dictionary because the set of congruences of an algebra is closed under
// meet as well as join.
func (l *Lattice) Meet(i, j int) int {
	res := l.Congruence(i).Meet(l.Congruence(j))
	return l.byKey[res.Format(partition.Block)]
}
