// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import (
	"testing"

	"github.com/jamiewannenburg/uacalc"
)

func z3AddTable() []uacalc.Element {
	// Z3 addition: table[x+3*y] = (x+y) mod 3, Horner order with x varying
	// fastest per HornerEncode's "x0 is least significant digit" convention.
	table := make([]uacalc.Element, 9)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			code, _ := uacalc.HornerEncode([]uacalc.Element{x, y}, 3)
			table[code] = (x + y) % 3
		}
	}
	return table
}

func TestTableOperationValue(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	o, err := NewTable(sym, 3, z3AddTable())
	if err != nil {
		t.Fatal(err)
	}
	v, err := o.Value(uacalc.NewIntArray([]uacalc.Element{1, 2}))
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Errorf("1+2 mod 3 = %d, want 0", v)
	}
}

func TestTableOperationBadTableSize(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	_, err := NewTable(sym, 3, []uacalc.Element{0, 1})
	if err == nil {
		t.Fatal("expected InvalidAlgebra for wrong table length")
	}
}

func TestComputedMatchesTableLazily(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	o := NewComputed(sym, 3, func(args uacalc.IntArray) (uacalc.Element, error) {
		return (args.At(0) + args.At(1)) % 3, nil
	})
	table, err := o.Table()
	if err != nil {
		t.Fatal(err)
	}
	want := z3AddTable()
	for i := range want {
		if table[i] != want[i] {
			t.Fatalf("table[%d] = %d, want %d", i, table[i], want[i])
		}
	}
	// table is cached: mutate the function's closure state is not possible
	// here, so instead assert a second call returns the identical slice.
	table2, _ := o.Table()
	if &table[0] != &table2[0] {
		t.Error("Table() did not reuse the cached array")
	}
}

func TestProjection(t *testing.T) {
	p, err := NewProjection(1, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	v, err := p.Value(uacalc.NewIntArray([]uacalc.Element{4, 2, 0}))
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Errorf("projection 1 of (4,2,0) = %d, want 2", v)
	}
}

func TestProjectionOutOfRangeIndex(t *testing.T) {
	if _, err := NewProjection(3, 3, 5); err == nil {
		t.Fatal("expected InvalidArgument for out-of-range projection index")
	}
}

func TestRestrictedRenumbersAndEvaluates(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	parent, _ := NewTable(sym, 3, z3AddTable())
	// subuniverse {0} is closed under + (0+0=0)
	sub, err := NewRestricted(parent, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	v, err := sub.Value(uacalc.NewIntArray([]uacalc.Element{0, 0}))
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Errorf("restricted value = %d, want 0", v)
	}
}

func TestRestrictedEscapeIsInvalidAlgebra(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	parent, _ := NewTable(sym, 3, z3AddTable())
	// {0,1} is NOT closed under + (1+1=2 escapes), so Restricted should
	// surface the violation rather than silently misbehave.
	sub, _ := NewRestricted(parent, []int{0, 1})
	_, err := sub.Value(uacalc.NewIntArray([]uacalc.Element{1, 1}))
	if err == nil {
		t.Fatal("expected InvalidAlgebra for a result escaping the subuniverse")
	}
}

func TestComponentWiseProduct(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	z3, _ := NewTable(sym, 3, z3AddTable())
	z2table := make([]uacalc.Element, 4)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			code, _ := uacalc.HornerEncode([]uacalc.Element{x, y}, 2)
			z2table[code] = (x + y) % 2
		}
	}
	z2, _ := NewTable(sym, 2, z2table)

	prod, err := NewComponentWise(sym, []*Operation{z3, z2}, []int{3, 2})
	if err != nil {
		t.Fatal(err)
	}
	if prod.SetSize() != 6 {
		t.Fatalf("product set size = %d, want 6", prod.SetSize())
	}
	a, _ := mixedEncode([]uacalc.Element{1, 1}, []int{3, 2}) // (1,1)
	b, _ := mixedEncode([]uacalc.Element{2, 1}, []int{3, 2}) // (2,1)
	v, err := prod.Value(uacalc.NewIntArray([]uacalc.Element{a, b}))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := mixedEncode([]uacalc.Element{0, 0}, []int{3, 2}) // (1+2 mod 3, 1+1 mod 2) = (0,0)
	if v != want {
		t.Errorf("component-wise value = %d, want %d", v, want)
	}
}

func TestIsIdempotentCommutativeAssociative(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	z3, _ := NewTable(sym, 3, z3AddTable())
	if idem, err := z3.IsIdempotent(); err != nil || idem {
		t.Errorf("Z3 addition should not be idempotent, got %v, %v", idem, err)
	}
	if comm, err := z3.IsCommutative(); err != nil || !comm {
		t.Errorf("Z3 addition should be commutative, got %v, %v", comm, err)
	}
	if assoc, err := z3.IsAssociative(); err != nil || !assoc {
		t.Errorf("Z3 addition should be associative, got %v, %v", assoc, err)
	}
}

func TestIsMaltsevArityGuard(t *testing.T) {
	sym := uacalc.NewOperationSymbol("+", 2)
	z3, _ := NewTable(sym, 3, z3AddTable())
	if _, err := z3.IsMaltsev(); err == nil {
		t.Fatal("expected InvalidArgument calling IsMaltsev on a binary operation")
	}
}

func TestNullaryOperation(t *testing.T) {
	sym := uacalc.NewOperationSymbol("zero", 0)
	o, err := NewTable(sym, 3, []uacalc.Element{2})
	if err != nil {
		t.Fatal(err)
	}
	v, err := o.Value(uacalc.NewIntArray(nil))
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Errorf("nullary value = %d, want 2", v)
	}
}
