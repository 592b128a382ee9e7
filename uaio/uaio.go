// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uaio implements the algebra file format of spec.md §6: an
// XML-style serialization of a finite algebra's carrier size and
// table-backed operations, Horner-encoded (§4.1) so files round-trip
// bit-exactly.
//
// No XML library appears anywhere in the retrieval pack, so this package
// is built on the standard library's encoding/xml — the one deliberate
// standard-library exception in this module, recorded in DESIGN.md.
package uaio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/alg"
	"github.com/jamiewannenburg/uacalc/op"
)

type xmlDocument struct {
	XMLName xml.Name        `xml:"algebra"`
	Basic   xmlBasicAlgebra `xml:"basicAlgebra"`
}

type xmlBasicAlgebra struct {
	Name        string  `xml:"algName"`
	Desc        string  `xml:"desc,omitempty"`
	Cardinality int     `xml:"cardinality"`
	Operations  []xmlOp `xml:"operations>op"`
}

type xmlOp struct {
	Symbol xmlOpSymbol `xml:"opSymbol"`
	Table  xmlOpTable  `xml:"opTable"`
}

type xmlOpSymbol struct {
	Name  string `xml:"opName"`
	Arity int    `xml:"arity"`
}

type xmlOpTable struct {
	Rows []xmlRow `xml:"intArray>row"`
}

type xmlRow struct {
	R      string `xml:"r,attr"`
	Values string `xml:",chardata"`
}

// Load reads and parses the algebra file at path, per spec.md §6's
// loadAlgebra contract.
func Load(path string) (*alg.Algebra, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "%v", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads an algebra in the spec.md §6 XML format from r. path is used
// only to annotate error messages; pass "" if none is available.
func Parse(r io.Reader, path string) (*alg.Algebra, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "malformed XML: %v", err)
	}
	b := doc.Basic
	if strings.TrimSpace(b.Name) == "" {
		return nil, uacalc.FileErrorf(uacalc.MissingElement, path, 0, 0, "algName is required and must be non-empty")
	}
	if b.Cardinality <= 0 {
		return nil, uacalc.FileErrorf(uacalc.ValueOutOfRange, path, 0, 0, "cardinality must be positive, got %d", b.Cardinality)
	}
	n := b.Cardinality

	ops := make([]*op.Operation, 0, len(b.Operations))
	for _, xo := range b.Operations {
		if strings.TrimSpace(xo.Symbol.Name) == "" {
			return nil, uacalc.FileErrorf(uacalc.MissingElement, path, 0, 0, "opName is required and must be non-empty")
		}
		if xo.Symbol.Arity < 0 {
			return nil, uacalc.FileErrorf(uacalc.ValueOutOfRange, path, 0, 0, "operation %q: arity must be non-negative, got %d", xo.Symbol.Name, xo.Symbol.Arity)
		}
		table, err := parseTable(xo, n, path)
		if err != nil {
			return nil, err
		}
		sym := uacalc.NewOperationSymbol(xo.Symbol.Name, xo.Symbol.Arity)
		o, err := op.NewTable(sym, n, table)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return alg.New(b.Name, n, ops)
}

// parseTable reconstructs the flat, Horner-encoded table for one operation
// from its XML rows: row r holds the n^(arity-1) values whose Horner code,
// combined with r as the most-significant digit, gives the full code into
// the flat table (spec.md §6's "remaining arguments are Horner-encoded
// into the row").
func parseTable(xo xmlOp, n int, path string) ([]uacalc.Element, error) {
	arity := xo.Symbol.Arity
	size, err := uacalc.TableSize(n, arity)
	if err != nil {
		return nil, err
	}

	wantRows := n
	wantCols := size / n
	if arity == 0 {
		wantRows = 1
		wantCols = 1
	}
	if len(xo.Table.Rows) != wantRows {
		return nil, uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "operation %q: got %d rows, want %d", xo.Symbol.Name, len(xo.Table.Rows), wantRows)
	}

	table := make([]uacalc.Element, size)
	for _, row := range xo.Table.Rows {
		r, err := parseRowIndex(row.R, path, xo.Symbol.Name)
		if err != nil {
			return nil, err
		}
		if r < 0 || r >= wantRows {
			return nil, uacalc.FileErrorf(uacalc.ValueOutOfRange, path, 0, 0, "operation %q: row index %d out of range [0,%d)", xo.Symbol.Name, r, wantRows)
		}
		values, err := parseValues(row.Values, path, xo.Symbol.Name)
		if err != nil {
			return nil, err
		}
		if len(values) != wantCols {
			return nil, uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "operation %q row %d: got %d values, want %d", xo.Symbol.Name, r, len(values), wantCols)
		}
		for col, v := range values {
			if v < 0 || v >= n {
				return nil, uacalc.FileErrorf(uacalc.ValueOutOfRange, path, 0, 0, "operation %q row %d: value %d out of range [0,%d)", xo.Symbol.Name, r, v, n)
			}
			table[r*wantCols+col] = v
		}
	}
	return table, nil
}

func parseRowIndex(r, path, opName string) (int, error) {
	s := strings.TrimSpace(r)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "operation %q: malformed row index %q", opName, r)
	}
	return v, nil
}

func parseValues(s, path, opName string) ([]uacalc.Element, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	values := make([]uacalc.Element, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "operation %q: malformed integer %q", opName, p)
		}
		values[i] = v
	}
	return values, nil
}

// Save writes a to path in the spec.md §6 XML format, per saveAlgebra.
func Save(path string, a *alg.Algebra, desc string) error {
	f, err := os.Create(path)
	if err != nil {
		return uacalc.FileErrorf(uacalc.Malformed, path, 0, 0, "%v", err)
	}
	defer f.Close()
	return Write(f, a, desc)
}

// Write serializes a to w in the spec.md §6 XML format.
func Write(w io.Writer, a *alg.Algebra, desc string) error {
	doc := xmlDocument{Basic: xmlBasicAlgebra{
		Name:        a.Name(),
		Desc:        desc,
		Cardinality: a.Cardinality(),
	}}
	n := a.Cardinality()
	for _, o := range a.Operations() {
		table, err := o.Table()
		if err != nil {
			return err
		}
		arity := o.Arity()
		rows, cols := n, len(table)/n
		if arity == 0 {
			rows, cols = 1, 1
		}
		xo := xmlOp{Symbol: xmlOpSymbol{Name: o.Symbol().Name, Arity: arity}}
		for r := 0; r < rows; r++ {
			parts := make([]string, cols)
			for c := 0; c < cols; c++ {
				parts[c] = strconv.Itoa(table[r*cols+c])
			}
			xo.Table.Rows = append(xo.Table.Rows, xmlRow{
				R:      fmt.Sprintf("[%d]", r),
				Values: strings.Join(parts, ","),
			})
		}
		doc.Basic.Operations = append(doc.Basic.Operations, xo)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(doc)
}
