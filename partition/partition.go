// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition implements set partitions of {0,…,n-1} as a union-find
// structure, with the operations (join, meet, refinement order) that make
// the set of partitions a lattice. It is the data structure underlying both
// principal-congruence generation (package cg) and the congruence lattice
// (package conlat).
//
// The union-find core follows the rank-based disjoint-set forest in
// gonum's set.DisjointSet, adapted in two ways this module needs and
// gonum's does not: elements are plain ints rather than interface{} keys,
// and every observation canonicalizes so that the representative of a
// block is always its smallest element (spec.md §3's "canonical partition
// form"), which set.DisjointSet's rank-based roots do not guarantee.
package partition

import (
	"sort"

	"github.com/jamiewannenburg/uacalc"
)

// Partition is a set partition of {0,…,n-1}. The zero value is not usable;
// construct one with Create, CreateOne or FromBlocks.
//
// Internally Partition is a union-find forest: Union operates on a
// rank-balanced forest for near-constant amortized cost, exactly as
// gonum's set.DisjointSet does. The canonical form required by spec.md §3
// (every representative is the minimum element of its block, and
// parent(parent(i)) = parent(i)) is restored lazily: a dirty flag is set
// on every mutation and cleared by a single O(n·α(n)) canonicalization pass
// the first time an observation method is called afterward, per spec.md
// §4.4's "if lazy, the observation methods canonicalize on first query and
// are idempotent thereafter".
type Partition struct {
	n      int
	parent []int
	rank   []int

	dirty bool
	canon []int // canon[i] is the canonical (min-element) representative of i; valid iff !dirty
	nb    int   // number of blocks; valid iff !dirty
}

// Create returns the zero partition of {0,…,n-1}: n singleton blocks.
func Create(n int) *Partition {
	p := &Partition{n: n, parent: make([]int, n), rank: make([]int, n), canon: make([]int, n)}
	for i := range p.parent {
		p.parent[i] = i
		p.canon[i] = i
	}
	p.nb = n
	return p
}

// CreateOne returns the one partition of {0,…,n-1}: a single block
// containing every element.
func CreateOne(n int) *Partition {
	p := Create(n)
	for i := 1; i < n; i++ {
		p.union(0, i)
	}
	p.dirty = true
	return p
}

// FromBlocks builds the partition whose blocks are exactly blocks. Every
// integer in [0,n) must appear in exactly one block, where n is the total
// number of elements across all blocks; otherwise FromBlocks fails with
// InvalidPartition.
func FromBlocks(blocks [][]int) (*Partition, error) {
	n := 0
	for _, b := range blocks {
		n += len(b)
	}
	seen := make([]bool, n)
	for _, b := range blocks {
		for _, e := range b {
			if e < 0 || e >= n {
				return nil, uacalc.Errorf(uacalc.InvalidPartition, "element %d out of range [0,%d)", e, n)
			}
			if seen[e] {
				return nil, uacalc.Errorf(uacalc.InvalidPartition, "element %d appears in more than one block", e)
			}
			seen[e] = true
		}
	}
	for e, ok := range seen {
		if !ok {
			return nil, uacalc.Errorf(uacalc.InvalidPartition, "element %d missing from any block", e)
		}
	}
	p := Create(n)
	for _, b := range blocks {
		for i := 1; i < len(b); i++ {
			p.union(b[0], b[i])
		}
	}
	p.dirty = true
	return p, nil
}

// Clone returns a deep copy of p; mutating the result never affects p.
func (p *Partition) Clone() *Partition {
	q := &Partition{
		n:      p.n,
		parent: append([]int(nil), p.parent...),
		rank:   append([]int(nil), p.rank...),
		dirty:  p.dirty,
	}
	if !p.dirty {
		q.canon = append([]int(nil), p.canon...)
		q.nb = p.nb
	}
	return q
}

// Size returns n, the cardinality of the underlying set {0,…,n-1}.
func (p *Partition) Size() int { return p.n }

func (p *Partition) find(x int) int {
	root := x
	for p.parent[root] != root {
		root = p.parent[root]
	}
	for p.parent[x] != root {
		p.parent[x], x = root, p.parent[x]
	}
	return root
}

// union merges the blocks containing x and y using rank-balanced
// attachment for amortized O(α(n)) cost; it does not itself restore the
// canonical min-index-representative form (see ensureCanonical).
func (p *Partition) union(x, y int) {
	rx, ry := p.find(x), p.find(y)
	if rx == ry {
		return
	}
	switch {
	case p.rank[rx] < p.rank[ry]:
		p.parent[rx] = ry
	case p.rank[rx] > p.rank[ry]:
		p.parent[ry] = rx
	default:
		p.parent[ry] = rx
		p.rank[rx]++
	}
}

// Union merges, in place, the blocks containing x and y. After Union the
// representative of the merged block is the smaller of the two former
// representatives, per spec.md §4.4; this is restored by the next
// canonicalizing observation, not by Union itself.
func (p *Partition) Union(x, y int) {
	p.union(x, y)
	p.dirty = true
}

// ensureCanonical restores the invariants of spec.md §3 (representative of
// each block is its minimum element; parent(i) ≤ i; parent is idempotent)
// and caches the result until the next Union.
func (p *Partition) ensureCanonical() {
	if !p.dirty {
		return
	}
	canon := make([]int, p.n)
	// Each block's canonical representative is the first (smallest) i
	// whose root is seen, since i is iterated in increasing order.
	repOfRoot := make(map[int]int, p.n)
	for i := 0; i < p.n; i++ {
		root := p.find(i)
		if _, ok := repOfRoot[root]; !ok {
			repOfRoot[root] = i
		}
	}
	nb := 0
	for i := 0; i < p.n; i++ {
		root := p.find(i)
		canon[i] = repOfRoot[root]
		if canon[i] == i {
			nb++
		}
	}
	p.canon = canon
	p.nb = nb
	p.dirty = false
}

// Representative returns the canonical representative of x's block: the
// smallest element in that block.
func (p *Partition) Representative(x int) int {
	p.ensureCanonical()
	return p.canon[x]
}

// SameBlock reports whether x and y belong to the same block.
func (p *Partition) SameBlock(x, y int) bool {
	return p.find(x) == p.find(y)
}

// IsRelated is an alias for SameBlock, matching spec.md §3's naming.
func (p *Partition) IsRelated(x, y int) bool { return p.SameBlock(x, y) }

// Block returns the sorted elements of the block containing x.
func (p *Partition) Block(x int) []int {
	p.ensureCanonical()
	rep := p.canon[x]
	var block []int
	for i := 0; i < p.n; i++ {
		if p.canon[i] == rep {
			block = append(block, i)
		}
	}
	return block
}

// Blocks returns every block of p, outer order ascending by smallest
// element, inner order ascending, per spec.md §3/§4.4.
func (p *Partition) Blocks() [][]int {
	p.ensureCanonical()
	byRep := make(map[int][]int, p.nb)
	reps := make([]int, 0, p.nb)
	for i := 0; i < p.n; i++ {
		rep := p.canon[i]
		if _, ok := byRep[rep]; !ok {
			reps = append(reps, rep)
		}
		byRep[rep] = append(byRep[rep], i)
	}
	sort.Ints(reps)
	blocks := make([][]int, len(reps))
	for i, r := range reps {
		blocks[i] = byRep[r]
	}
	return blocks
}

// Representatives returns the sorted list of block representatives.
func (p *Partition) Representatives() []int {
	p.ensureCanonical()
	reps := make([]int, 0, p.nb)
	for i := 0; i < p.n; i++ {
		if p.canon[i] == i {
			reps = append(reps, i)
		}
	}
	return reps
}

// NumberOfBlocks returns the number of blocks in p.
func (p *Partition) NumberOfBlocks() int {
	p.ensureCanonical()
	return p.nb
}

// Rank returns n - NumberOfBlocks(), per spec.md §3.
func (p *Partition) Rank() int {
	return p.n - p.NumberOfBlocks()
}

// IsZero reports whether p is the all-singletons partition.
func (p *Partition) IsZero() bool { return p.NumberOfBlocks() == p.n }

// IsOne reports whether p is the single-block partition.
func (p *Partition) IsOne() bool { return p.n == 0 || p.NumberOfBlocks() == 1 }

// IsUniform reports whether every block of p has equal size.
func (p *Partition) IsUniform() bool {
	blocks := p.Blocks()
	if len(blocks) == 0 {
		return true
	}
	size := len(blocks[0])
	for _, b := range blocks[1:] {
		if len(b) != size {
			return false
		}
	}
	return true
}

// Leq reports whether p refines q: every block of p is contained in some
// block of q.
func (p *Partition) Leq(q *Partition) bool {
	if p.n != q.n {
		return false
	}
	for _, b := range p.Blocks() {
		rep := q.Representative(b[0])
		for _, e := range b[1:] {
			if q.Representative(e) != rep {
				return false
			}
		}
	}
	return true
}

// Equal reports whether p and q have exactly the same blocks.
func (p *Partition) Equal(q *Partition) bool {
	return p.n == q.n && p.Leq(q) && q.Leq(p)
}

// Join returns the smallest partition coarsening both p and q: start from a
// clone of p, then for each block of q, union its elements together, per
// spec.md §4.4. Join does not mutate p or q.
func (p *Partition) Join(q *Partition) *Partition {
	r := p.Clone()
	for _, b := range q.Blocks() {
		for i := 1; i < len(b); i++ {
			r.union(b[0], b[i])
		}
	}
	r.dirty = true
	return r
}

// Meet returns the pairwise intersection of p and q: two elements are
// related in the result iff related in both p and q, per spec.md §4.4.
// Meet does not mutate p or q.
func (p *Partition) Meet(q *Partition) *Partition {
	type pair struct{ a, b int }
	keyOf := make(map[pair]int, p.n)
	blocks := make([][]int, 0, p.n)
	for i := 0; i < p.n; i++ {
		k := pair{p.Representative(i), q.Representative(i)}
		if idx, ok := keyOf[k]; ok {
			blocks[idx] = append(blocks[idx], i)
		} else {
			keyOf[k] = len(blocks)
			blocks = append(blocks, []int{i})
		}
	}
	r, err := FromBlocks(blocks)
	if err != nil {
		// blocks is a partition of [0,p.n) by construction; this cannot fail.
		panic(err)
	}
	return r
}

// String renders p in the canonical BLOCK form fixed by spec.md §9:
// "|b0,elts|b1,elts|…|" with blocks in ascending order by smallest element
// and elements within a block in ascending order.
func (p *Partition) String() string { return p.Format(Block) }
