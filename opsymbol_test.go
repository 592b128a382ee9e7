// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

import "testing"

func TestOperationSymbolEqualIgnoresAssociative(t *testing.T) {
	a := OperationSymbol{Name: "f", Arity: 2, Associative: true}
	b := OperationSymbol{Name: "f", Arity: 2, Associative: false}
	if !a.Equal(b) {
		t.Error("Associative flag must not affect equality")
	}
}

func TestOperationSymbolOrdering(t *testing.T) {
	syms := []OperationSymbol{
		{Name: "g", Arity: 1},
		{Name: "f", Arity: 2},
		{Name: "f", Arity: 1},
	}
	SortSymbols(syms)
	want := []OperationSymbol{{Name: "f", Arity: 1}, {Name: "f", Arity: 2}, {Name: "g", Arity: 1}}
	for i := range want {
		if !syms[i].Equal(want[i]) {
			t.Fatalf("sorted[%d] = %v, want %v", i, syms[i], want[i])
		}
	}
}
