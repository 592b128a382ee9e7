// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func TestCreateIsZero(t *testing.T) {
	p := Create(5)
	if !p.IsZero() {
		t.Error("Create should be the zero partition")
	}
	if p.NumberOfBlocks() != 5 {
		t.Errorf("NumberOfBlocks = %d, want 5", p.NumberOfBlocks())
	}
}

func TestCreateOneIsOne(t *testing.T) {
	p := CreateOne(5)
	if !p.IsOne() {
		t.Error("CreateOne should be the one partition")
	}
	if p.NumberOfBlocks() != 1 {
		t.Errorf("NumberOfBlocks = %d, want 1", p.NumberOfBlocks())
	}
}

func TestFromBlocksValid(t *testing.T) {
	p, err := FromBlocks([][]int{{0, 2}, {1}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if !p.SameBlock(0, 2) || p.SameBlock(0, 1) {
		t.Error("FromBlocks did not preserve block membership")
	}
	if p.Representative(2) != 0 {
		t.Errorf("Representative(2) = %d, want 0", p.Representative(2))
	}
}

func TestFromBlocksDuplicate(t *testing.T) {
	_, err := FromBlocks([][]int{{0, 1}, {1, 2}})
	if err == nil {
		t.Fatal("expected InvalidPartition for duplicate element")
	}
}

func TestFromBlocksMissing(t *testing.T) {
	_, err := FromBlocks([][]int{{0}, {2}})
	if err == nil {
		t.Fatal("expected InvalidPartition for missing element")
	}
}

func TestUnionCanonicalRepresentativeIsSmaller(t *testing.T) {
	p := Create(5)
	p.Union(3, 1)
	if p.Representative(3) != 1 {
		t.Errorf("Representative(3) = %d, want 1", p.Representative(3))
	}
	p.Union(1, 0)
	if p.Representative(3) != 0 {
		t.Errorf("Representative(3) = %d, want 0 after merging with 0", p.Representative(3))
	}
}

func TestBlocksOrdering(t *testing.T) {
	p, _ := FromBlocks([][]int{{3}, {0, 2}, {1, 4}})
	want := [][]int{{0, 2}, {1, 4}, {3}}
	if diff := cmp.Diff(want, p.Blocks()); diff != "" {
		t.Errorf("Blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockFormatCanonical(t *testing.T) {
	p, _ := FromBlocks([][]int{{1, 0}, {2}})
	if got, want := p.String(), "|0,1|2|"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestJoinMeetCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		p := randomPartition(rng, n)
		q := randomPartition(rng, n)

		if !p.Join(q).Equal(q.Join(p)) {
			t.Fatalf("join not commutative for p=%s q=%s", p, q)
		}
		if !p.Meet(q).Equal(q.Meet(p)) {
			t.Fatalf("meet not commutative for p=%s q=%s", p, q)
		}
	}
}

func TestJoinAssociativeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		p := randomPartition(rng, n)
		q := randomPartition(rng, n)
		r := randomPartition(rng, n)

		lhs := p.Join(q).Join(r)
		rhs := p.Join(q.Join(r))
		if !lhs.Equal(rhs) {
			t.Fatalf("join not associative for p=%s q=%s r=%s", p, q, r)
		}
		if !p.Join(p).Equal(p) {
			t.Fatalf("join not idempotent for p=%s", p)
		}
		if !p.Meet(p).Equal(p) {
			t.Fatalf("meet not idempotent for p=%s", p)
		}
	}
}

func TestJoinIsLeastUpperBound(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		p := randomPartition(rng, n)
		q := randomPartition(rng, n)
		j := p.Join(q)
		if !p.Leq(j) || !q.Leq(j) {
			t.Fatalf("join %s is not an upper bound of %s, %s", j, p, q)
		}
		m := p.Meet(q)
		if !m.Leq(p) || !m.Leq(q) {
			t.Fatalf("meet %s is not a lower bound of %s, %s", m, p, q)
		}
	}
}

func TestLeqIsPartialOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		p := randomPartition(rng, n)
		if !p.Leq(p) {
			t.Fatalf("Leq not reflexive for %s", p)
		}
	}
	n := 4
	p, _ := FromBlocks([][]int{{0, 1}, {2}, {3}})
	q, _ := FromBlocks([][]int{{0, 1, 2}, {3}})
	r, _ := FromBlocks([][]int{{0, 1, 2, 3}})
	if !p.Leq(q) || !q.Leq(r) || !p.Leq(r) {
		t.Fatal("Leq not transitive on the expected chain")
	}
	_ = n
}

func TestJoinDoesNotMutateInputs(t *testing.T) {
	p := Create(4)
	q, _ := FromBlocks([][]int{{0, 1}, {2}, {3}})
	before := p.String()
	_ = p.Join(q)
	_ = p.Meet(q)
	if p.String() != before {
		t.Fatal("Join/Meet mutated their receiver")
	}
}

func randomPartition(rng *rand.Rand, n int) *Partition {
	p := Create(n)
	unions := rng.Intn(n)
	for i := 0; i < unions; i++ {
		x, y := rng.Intn(n), rng.Intn(n)
		p.Union(x, y)
	}
	return p
}
