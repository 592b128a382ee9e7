// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uaio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/alg"
	"github.com/jamiewannenburg/uacalc/op"
)

func z3() *alg.Algebra {
	sym := uacalc.NewOperationSymbol("+", 2)
	table := make([]uacalc.Element, 9)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			code, _ := uacalc.HornerEncode([]uacalc.Element{x, y}, 3)
			table[code] = (x + y) % 3
		}
	}
	o, _ := op.NewTable(sym, 3, table)
	a, _ := alg.New("Z3", 3, []*op.Operation{o})
	return a
}

func TestRoundTripTableOperation(t *testing.T) {
	a := z3()
	var buf bytes.Buffer
	if err := Write(&buf, a, "cyclic group of order 3"); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(&buf, "")
	if err != nil {
		t.Fatalf("Parse after Write: %v", err)
	}
	if got.Name() != a.Name() || got.Cardinality() != a.Cardinality() {
		t.Fatalf("round trip changed name/cardinality: got %q/%d, want %q/%d", got.Name(), got.Cardinality(), a.Name(), a.Cardinality())
	}
	wantOp := a.Operations()[0]
	gotOp, ok := got.OperationByName("+")
	if !ok {
		t.Fatal("round trip lost operation +")
	}
	wantTable, _ := wantOp.Table()
	gotTable, _ := gotOp.Table()
	if len(gotTable) != len(wantTable) {
		t.Fatalf("round trip table length = %d, want %d", len(gotTable), len(wantTable))
	}
	for i := range wantTable {
		if gotTable[i] != wantTable[i] {
			t.Errorf("round trip table[%d] = %d, want %d", i, gotTable[i], wantTable[i])
		}
	}
}

func TestRoundTripUnaryAndNullaryArity(t *testing.T) {
	// g: successor mod 3 (arity 1); c: constant 2 (arity 0).
	gSym := uacalc.NewOperationSymbol("g", 1)
	g, _ := op.NewTable(gSym, 3, []uacalc.Element{1, 2, 0})
	cSym := uacalc.NewOperationSymbol("c", 0)
	c, _ := op.NewTable(cSym, 3, []uacalc.Element{2})
	a, err := alg.New("gc", 3, []*op.Operation{g, c})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, a, ""); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(&buf, "")
	if err != nil {
		t.Fatal(err)
	}
	gg, ok := got.OperationByName("g")
	if !ok {
		t.Fatal("round trip lost operation g")
	}
	gTable, _ := gg.Table()
	if len(gTable) != 3 {
		t.Fatalf("g table length = %d, want 3", len(gTable))
	}
	for x := 0; x < 3; x++ {
		if gTable[x] != uacalc.Element((x+1)%3) {
			t.Errorf("g(%d) = %d, want %d", x, gTable[x], (x+1)%3)
		}
	}
	cc, ok := got.OperationByName("c")
	if !ok {
		t.Fatal("round trip lost operation c")
	}
	cTable, _ := cc.Table()
	if len(cTable) != 1 || cTable[0] != 2 {
		t.Errorf("c table = %v, want [2]", cTable)
	}
}

func TestParseMissingAlgName(t *testing.T) {
	const doc = `<algebra><basicAlgebra><cardinality>3</cardinality></basicAlgebra></algebra>`
	_, err := Parse(strings.NewReader(doc), "bad.ua")
	if err == nil {
		t.Fatal("expected an error for missing algName")
	}
	var e *uacalc.Error
	if !asError(err, &e) || e.Sub != uacalc.MissingElement {
		t.Errorf("got error %v, want MissingElement", err)
	}
}

func TestParseInvalidCardinality(t *testing.T) {
	const doc = `<algebra><basicAlgebra><algName>bad</algName><cardinality>0</cardinality></basicAlgebra></algebra>`
	_, err := Parse(strings.NewReader(doc), "bad.ua")
	if err == nil {
		t.Fatal("expected an error for non-positive cardinality")
	}
	var e *uacalc.Error
	if !asError(err, &e) || e.Sub != uacalc.ValueOutOfRange {
		t.Errorf("got error %v, want ValueOutOfRange", err)
	}
}

func TestParseMalformedXML(t *testing.T) {
	const doc = `<algebra><basicAlgebra><algName>bad</algName>`
	_, err := Parse(strings.NewReader(doc), "bad.ua")
	if err == nil {
		t.Fatal("expected an error for malformed XML")
	}
}

func TestParseWrongRowCount(t *testing.T) {
	const doc = `<algebra><basicAlgebra><algName>bad</algName><cardinality>2</cardinality>` +
		`<operations><op><opSymbol><opName>f</opName><arity>1</arity></opSymbol>` +
		`<opTable><intArray><row r="[0]">0</row></intArray></opTable></op></operations>` +
		`</basicAlgebra></algebra>`
	_, err := Parse(strings.NewReader(doc), "bad.ua")
	if err == nil {
		t.Fatal("expected an error for wrong row count")
	}
	var e *uacalc.Error
	if !asError(err, &e) || e.Sub != uacalc.Malformed {
		t.Errorf("got error %v, want Malformed", err)
	}
}

func TestParseValueOutOfRange(t *testing.T) {
	const doc = `<algebra><basicAlgebra><algName>bad</algName><cardinality>2</cardinality>` +
		`<operations><op><opSymbol><opName>f</opName><arity>1</arity></opSymbol>` +
		`<opTable><intArray><row r="[0]">5</row><row r="[1]">0</row></intArray></opTable></op></operations>` +
		`</basicAlgebra></algebra>`
	_, err := Parse(strings.NewReader(doc), "bad.ua")
	if err == nil {
		t.Fatal("expected an error for an out-of-range table value")
	}
	var e *uacalc.Error
	if !asError(err, &e) || e.Sub != uacalc.ValueOutOfRange {
		t.Errorf("got error %v, want ValueOutOfRange", err)
	}
}

func asError(err error, target **uacalc.Error) bool {
	e, ok := err.(*uacalc.Error)
	if ok {
		*target = e
	}
	return ok
}
