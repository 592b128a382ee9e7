// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"testing"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/term"
)

func z3() *Algebra {
	sym := uacalc.NewOperationSymbol("+", 2)
	table := make([]uacalc.Element, 9)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			code, _ := uacalc.HornerEncode([]uacalc.Element{x, y}, 3)
			table[code] = (x + y) % 3
		}
	}
	plus, _ := op.NewTable(sym, 3, table)
	a, _ := New("Z3", 3, []*op.Operation{plus})
	return a
}

func TestNewRejectsMismatchedSetSize(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	plus, _ := op.NewTable(sym, 3, make([]uacalc.Element, 9))
	if _, err := New("bad", 4, []*op.Operation{plus}); err == nil {
		t.Fatal("expected InvalidAlgebra for mismatched set size")
	}
}

func TestOperationByNameAndSymbol(t *testing.T) {
	a := z3()
	o, ok := a.OperationByName("+")
	if !ok || o.Symbol().Arity != 2 {
		t.Fatal("OperationByName(\"+\") failed")
	}
	ev, ok := a.OperationBySymbol(uacalc.NewOperationSymbol("+", 2))
	if !ok || ev != term.Evaluator(o) {
		t.Fatal("OperationBySymbol did not return the same operation")
	}
	if _, ok := a.OperationBySymbol(uacalc.NewOperationSymbol("*", 2)); ok {
		t.Fatal("OperationBySymbol should not find an absent symbol")
	}
}

func TestSubalgebraOfZ3GeneratedByOneIsWholeThing(t *testing.T) {
	a := z3()
	sub, err := a.Subalgebra([]uacalc.Element{1})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Cardinality() != 3 {
		t.Errorf("subalgebra cardinality = %d, want 3", sub.Cardinality())
	}
}

func TestCgDelegatesToPrincipalCongruence(t *testing.T) {
	a := z3()
	p, err := a.Cg(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsOne() {
		t.Errorf("Cg(0,1) on Z3 = %v, want the one partition", p)
	}
}

func TestQuotientByOnePartitionIsTrivial(t *testing.T) {
	a := z3()
	cong, err := a.Cg(0, 1) // Z3 is simple, so this is the one partition
	if err != nil {
		t.Fatal(err)
	}
	q, err := Quotient(a, cong)
	if err != nil {
		t.Fatal(err)
	}
	if q.Cardinality() != 1 {
		t.Errorf("quotient by the one partition has cardinality %d, want 1", q.Cardinality())
	}
}

func TestProductCardinalityAndComponentwise(t *testing.T) {
	a := z3()
	prod, err := Product(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if prod.Cardinality() != 9 {
		t.Errorf("Z3 x Z3 cardinality = %d, want 9", prod.Cardinality())
	}
}

func TestPowerIsProductOfCopies(t *testing.T) {
	a := z3()
	pw, err := Power(a, 3)
	if err != nil {
		t.Fatal(err)
	}
	if pw.Cardinality() != 27 {
		t.Errorf("Z3^3 cardinality = %d, want 27", pw.Cardinality())
	}
}

func TestProductMismatchedTypeFails(t *testing.T) {
	a := z3()
	sym := uacalc.NewOperationSymbol("*", 2)
	other, _ := op.NewTable(sym, 2, make([]uacalc.Element, 4))
	b, _ := New("B", 2, []*op.Operation{other})
	if _, err := Product(a, b); err == nil {
		t.Fatal("expected InvalidAlgebra for mismatched similarity type")
	}
}

func TestSimilarityTypeIsSorted(t *testing.T) {
	a := z3()
	st := a.SimilarityType()
	if len(st) != 1 || st[0].Name != "+" {
		t.Errorf("SimilarityType = %v, want [+]", st)
	}
}
