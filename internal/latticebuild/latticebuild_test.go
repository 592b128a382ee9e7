// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latticebuild

import (
	"strconv"
	"testing"
)

// divisor is a toy Elem: the divisibility lattice, ordered by "a divides
// b", joined by lcm. Used to test Build/Height/Width/Atoms/Coatoms against
// a lattice whose shape is known by hand.
type divisor int

func (d divisor) Key() string { return strconv.Itoa(int(d)) }
func (d divisor) Leq(other Elem) bool {
	o := other.(divisor)
	return int(o)%int(d) == 0
}

func lcm(a, b Elem) Elem {
	x, y := int(a.(divisor)), int(b.(divisor))
	g := gcd(x, y)
	return divisor(x / g * y)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// divisors of 6 under lcm form the diamond {1,2,3,6}: a B2 boolean lattice.
func TestBuildDiamondFromDivisors(t *testing.T) {
	l := Build(divisor(1), []Elem{divisor(2), divisor(3)}, lcm)
	if len(l.Elements) != 4 {
		t.Fatalf("closure has %d elements, want 4 (1,2,3,6)", len(l.Elements))
	}
	if l.One.(divisor) != 6 {
		t.Fatalf("One = %v, want 6", l.One)
	}
	if h := l.Height(); h != 2 {
		t.Errorf("Height = %d, want 2", h)
	}
	if w := l.Width(); w != 2 {
		t.Errorf("Width = %d, want 2", w)
	}
	atoms := l.Atoms()
	if len(atoms) != 2 {
		t.Errorf("Atoms = %v, want 2 elements (2 and 3)", atoms)
	}
	coatoms := l.Coatoms()
	if len(coatoms) != 2 {
		t.Errorf("Coatoms = %v, want 2 elements (2 and 3)", coatoms)
	}
	ji := l.JoinIrreducibles()
	if len(ji) != 2 {
		t.Errorf("JoinIrreducibles = %v, want 2 elements", ji)
	}
	mi := l.MeetIrreducibles()
	if len(mi) != 2 {
		t.Errorf("MeetIrreducibles = %v, want 2 elements", mi)
	}
}

// divisors of a prime p form a 2-element chain {1,p}: height 1, width 1.
func TestBuildTwoElementChain(t *testing.T) {
	l := Build(divisor(1), []Elem{divisor(5)}, lcm)
	if len(l.Elements) != 2 {
		t.Fatalf("closure has %d elements, want 2", len(l.Elements))
	}
	if h := l.Height(); h != 1 {
		t.Errorf("Height = %d, want 1", h)
	}
	if w := l.Width(); w != 1 {
		t.Errorf("Width = %d, want 1", w)
	}
}
