// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"testing"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/op"
	"github.com/jamiewannenburg/uacalc/term"
)

func z3Plus() *op.Operation {
	sym := uacalc.NewOperationSymbol("+", 2)
	table := make([]uacalc.Element, 9)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			code, _ := uacalc.HornerEncode([]uacalc.Element{x, y}, 3)
			table[code] = (x + y) % 3
		}
	}
	o, _ := op.NewTable(sym, 3, table)
	return o
}

func TestCloseGeneratesWholeCyclicGroup(t *testing.T) {
	res, err := Close(3, []*op.Operation{z3Plus()}, []uacalc.Element{1}, true, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := res.Sorted()
	want := []uacalc.Element{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("closure = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("closure = %v, want %v", got, want)
		}
	}
	for _, e := range got {
		w, ok := res.Witness[e]
		if !ok {
			t.Fatalf("missing witness for %d", e)
		}
		v, err := term.Eval(w, &lookup{z3Plus()}, map[string]uacalc.Element{"x0": 1})
		if err != nil {
			t.Fatal(err)
		}
		if v != e {
			t.Errorf("witness for %d evaluates to %d", e, v)
		}
	}
}

// lookup adapts a single *op.Operation to term.OperationLookup for witness
// verification.
type lookup struct{ o *op.Operation }

func (l *lookup) OperationBySymbol(sym uacalc.OperationSymbol) (term.Evaluator, bool) {
	if sym.Equal(l.o.Symbol()) {
		return l.o, true
	}
	return nil, false
}

func TestCloseSingletonGeneratorOnIdempotentOp(t *testing.T) {
	// a projection-only algebra: closure of any single generator is just
	// that generator, since a projection never produces a new element from
	// identical arguments.
	p, _ := op.NewProjection(0, 2, 3)
	res, err := Close(3, []*op.Operation{p}, []uacalc.Element{1}, false, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Elements) != 1 || res.Elements[0] != 1 {
		t.Errorf("closure = %v, want [1]", res.Elements)
	}
}

func TestCloseNullaryConstantAlwaysIncluded(t *testing.T) {
	constSym := uacalc.NewOperationSymbol("zero", 0)
	c, _ := op.NewTable(constSym, 3, []uacalc.Element{0})
	res, err := Close(3, []*op.Operation{c}, []uacalc.Element{2}, false, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range res.Elements {
		if e == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("closure %v should include the nullary constant 0", res.Elements)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	plus := z3Plus()
	first, err := Close(3, []*op.Operation{plus}, []uacalc.Element{1}, false, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Close(3, []*op.Operation{plus}, first.Elements, false, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Elements) != len(second.Elements) {
		t.Errorf("re-closing a closed set grew it: %v -> %v", first.Elements, second.Elements)
	}
}

func TestCloseOutOfRangeGenerator(t *testing.T) {
	plus := z3Plus()
	if _, err := Close(3, []*op.Operation{plus}, []uacalc.Element{5}, false, nil, nil); err == nil {
		t.Fatal("expected InvalidArgument for an out-of-range generator")
	}
}

func TestCloseRespectsCancellation(t *testing.T) {
	plus := z3Plus()
	tok := uacalc.NewCancelToken()
	tok.Cancel()
	_, err := Close(3, []*op.Operation{plus}, []uacalc.Element{1}, false, tok, nil)
	if err == nil {
		t.Fatal("expected Cancelled error")
	}
	uerr, ok := err.(*uacalc.Error)
	if !ok || uerr.Kind != uacalc.Cancelled {
		t.Errorf("got %v, want Cancelled", err)
	}
}
