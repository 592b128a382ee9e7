// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package op implements Operation, the finitary-function abstraction of
// spec.md §3/§4.2: a capability set of {arity, setSize, value, table} with
// five variants (table-backed, computed, projection, restricted,
// component-wise). Following spec.md §9 ("best modeled as a tagged sum …
// Avoid a deep class hierarchy in favor of dispatch over the tag"), the
// variants are not five separate types implementing a common interface —
// a pattern this module's teacher uses for graph.Graph implementations
// (simple.UndirectedGraph, simple.DirectedGraph, simple.WeightedDirectedGraph,
// …) — but a single Operation struct carrying a Kind tag, dispatched over
// in Value and Table.
package op

import (
	"fmt"
	"sort"

	"github.com/jamiewannenburg/uacalc"
)

// Kind tags which variant an Operation is.
type Kind int

const (
	// Table is backed by a fully materialized length-n^k result array.
	Table Kind = iota
	// Computed evaluates on demand via an arbitrary Go function.
	Computed
	// Projection returns one fixed argument position.
	Projection
	// Restricted wraps a parent Operation together with a subuniverse,
	// renumbering elements to the subuniverse's local indices.
	Restricted
	// ComponentWise applies per-factor operations to the respective
	// components of a product algebra's elements.
	ComponentWise
)

func (k Kind) String() string {
	switch k {
	case Table:
		return "Table"
	case Computed:
		return "Computed"
	case Projection:
		return "Projection"
	case Restricted:
		return "Restricted"
	case ComponentWise:
		return "ComponentWise"
	default:
		return "Unknown"
	}
}

// EvalFunc is the evaluator signature backing the Computed variant.
type EvalFunc func(args uacalc.IntArray) (uacalc.Element, error)

// Operation is a finitary function on {0,…,n-1} of fixed arity, one of the
// five Kind variants above. The zero value is not usable; build one with
// NewTable, NewComputed, NewProjection, NewRestricted or NewComponentWise.
type Operation struct {
	sym  uacalc.OperationSymbol
	n    int
	kind Kind

	// lazily built/cached table, shared machinery for every non-Table kind;
	// Table-kind operations populate this directly at construction.
	table      []uacalc.Element
	tableBuilt bool

	computeFn EvalFunc

	projIndex int

	restrictedParent  *Operation
	restrictedMembers []int // sorted original-universe elements; local index i <-> restrictedMembers[i]

	factorOps   []*Operation
	factorSizes []int
}

// Symbol returns the operation's symbol.
func (o *Operation) Symbol() uacalc.OperationSymbol { return o.sym }

// Arity returns the operation's arity.
func (o *Operation) Arity() int { return o.sym.Arity }

// SetSize returns n, the cardinality of the carrier the operation acts on.
func (o *Operation) SetSize() int { return o.n }

// Kind returns which variant o is.
func (o *Operation) Kind() Kind { return o.kind }

// NewTable builds a table-backed Operation. table must have length
// n^arity and every entry must lie in [0,n); otherwise NewTable fails with
// InvalidAlgebra.
func NewTable(sym uacalc.OperationSymbol, n int, table []uacalc.Element) (*Operation, error) {
	want, err := uacalc.TableSize(n, sym.Arity)
	if err != nil {
		return nil, err
	}
	if len(table) != want {
		return nil, uacalc.Errorf(uacalc.InvalidAlgebra, "operation %s: table has %d entries, want %d", sym, len(table), want)
	}
	for _, v := range table {
		if v < 0 || v >= n {
			return nil, uacalc.Errorf(uacalc.InvalidAlgebra, "operation %s: table entry %d out of range [0,%d)", sym, v, n)
		}
	}
	cp := make([]uacalc.Element, len(table))
	copy(cp, table)
	return &Operation{sym: sym, n: n, kind: Table, table: cp, tableBuilt: true}, nil
}

// NewComputed builds an Operation that evaluates fn on demand and builds
// (and caches) its table only when Table is first called.
func NewComputed(sym uacalc.OperationSymbol, n int, fn EvalFunc) *Operation {
	return &Operation{sym: sym, n: n, kind: Computed, computeFn: fn}
}

// NewProjection builds the i-th projection of the given arity on a carrier
// of size n: value(x0,…,x_{arity-1}) = x_i. NewProjection fails with
// InvalidArgument if i is outside [0,arity).
func NewProjection(i, arity, n int) (*Operation, error) {
	if i < 0 || i >= arity {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "projection index %d out of range [0,%d)", i, arity)
	}
	sym := uacalc.NewOperationSymbol(projName(i), arity)
	return &Operation{sym: sym, n: n, kind: Projection, projIndex: i}, nil
}

func projName(i int) string {
	return fmt.Sprintf("pi_%d", i)
}

// NewRestricted builds the restriction of parent to the subuniverse whose
// original-universe elements are members (need not be pre-sorted). The
// resulting Operation's local carrier is {0,…,len(members)-1}, with local
// index i denoting members[i] once sorted. Value fails with InvalidArgument
// if an argument is outside that local range and with InvalidAlgebra if
// parent's result on the corresponding original elements escapes members,
// which would mean members was not actually closed under parent — a
// violation of the subuniverse invariant the caller (alg.Subalgebra) is
// responsible for establishing before constructing a Restricted operation.
func NewRestricted(parent *Operation, members []int) (*Operation, error) {
	sorted := append([]int(nil), members...)
	sort.Ints(sorted)
	return &Operation{
		sym:               parent.sym,
		n:                 len(sorted),
		kind:              Restricted,
		restrictedParent:  parent,
		restrictedMembers: sorted,
	}, nil
}

// NewComponentWise builds the product operation for factor operations ops
// (one per factor algebra, all sharing the same symbol/arity), with
// factorSizes giving each factor's carrier size. The product carrier size
// is the product of factorSizes.
func NewComponentWise(sym uacalc.OperationSymbol, ops []*Operation, factorSizes []int) (*Operation, error) {
	n := 1
	for _, s := range factorSizes {
		if s <= 0 {
			return nil, uacalc.Errorf(uacalc.InvalidArgument, "component-wise operation %s: non-positive factor size %d", sym, s)
		}
		n *= s
	}
	return &Operation{
		sym:         sym,
		n:           n,
		kind:        ComponentWise,
		factorOps:   append([]*Operation(nil), ops...),
		factorSizes: append([]int(nil), factorSizes...),
	}, nil
}

// Value evaluates o on args, which must have length Arity(). It fails with
// InvalidArgument if args has the wrong length or an entry outside
// [0,SetSize()).
func (o *Operation) Value(args uacalc.IntArray) (uacalc.Element, error) {
	if args.Len() != o.Arity() {
		return 0, uacalc.Errorf(uacalc.InvalidArgument, "operation %s: got %d arguments, want %d", o.sym, args.Len(), o.Arity())
	}
	for i := 0; i < args.Len(); i++ {
		v := args.At(i)
		if v < 0 || v >= o.n {
			return 0, uacalc.Errorf(uacalc.InvalidArgument, "operation %s: argument %d=%d out of range [0,%d)", o.sym, i, v, o.n)
		}
	}
	switch o.kind {
	case Table:
		code, err := uacalc.HornerEncode(args.Slice(), o.n)
		if err != nil {
			return 0, err
		}
		return o.table[code], nil
	case Computed:
		return o.computeFn(args)
	case Projection:
		return args.At(o.projIndex), nil
	case Restricted:
		return o.valueRestricted(args)
	case ComponentWise:
		return o.valueComponentWise(args)
	default:
		return 0, uacalc.Errorf(uacalc.InvalidAlgebra, "operation %s: unknown kind", o.sym)
	}
}

func (o *Operation) valueRestricted(args uacalc.IntArray) (uacalc.Element, error) {
	orig := make([]uacalc.Element, args.Len())
	for i := 0; i < args.Len(); i++ {
		orig[i] = o.restrictedMembers[args.At(i)]
	}
	result, err := o.restrictedParent.Value(uacalc.NewIntArray(orig))
	if err != nil {
		return 0, err
	}
	idx := sort.SearchInts(o.restrictedMembers, result)
	if idx >= len(o.restrictedMembers) || o.restrictedMembers[idx] != result {
		return 0, uacalc.Errorf(uacalc.InvalidAlgebra, "operation %s: result %d escapes the subuniverse", o.sym, result)
	}
	return idx, nil
}

func (o *Operation) valueComponentWise(args uacalc.IntArray) (uacalc.Element, error) {
	m := len(o.factorOps)
	// decode every argument into its m components
	components := make([][]uacalc.Element, args.Len())
	for i := 0; i < args.Len(); i++ {
		comps, err := mixedDecode(args.At(i), o.factorSizes)
		if err != nil {
			return 0, err
		}
		components[i] = comps
	}
	results := make([]uacalc.Element, m)
	for c := 0; c < m; c++ {
		tuple := make([]uacalc.Element, args.Len())
		for i := range tuple {
			tuple[i] = components[i][c]
		}
		r, err := o.factorOps[c].Value(uacalc.NewIntArray(tuple))
		if err != nil {
			return 0, err
		}
		results[c] = r
	}
	return mixedEncode(results, o.factorSizes)
}

// Table returns the full length-n^arity result array, building it lazily
// on first call and reusing it afterward, per spec.md §4.2.
func (o *Operation) Table() ([]uacalc.Element, error) {
	if o.tableBuilt {
		return o.table, nil
	}
	size, err := uacalc.TableSize(o.n, o.Arity())
	if err != nil {
		return nil, err
	}
	table := make([]uacalc.Element, size)
	for code := 0; code < size; code++ {
		tuple, err := uacalc.HornerDecode(code, o.n, o.Arity())
		if err != nil {
			return nil, err
		}
		v, err := o.Value(uacalc.NewIntArray(tuple))
		if err != nil {
			return nil, err
		}
		table[code] = v
	}
	o.table = table
	o.tableBuilt = true
	return table, nil
}

// mixedEncode encodes per-factor components into a single product element
// using a mixed-radix generalization of spec.md §4.1's Horner encoding:
// factor 0 varies fastest.
func mixedEncode(components []uacalc.Element, sizes []int) (uacalc.Element, error) {
	if len(components) != len(sizes) {
		return 0, uacalc.Errorf(uacalc.InvalidArgument, "mixed radix: %d components for %d factors", len(components), len(sizes))
	}
	code := 0
	mult := 1
	for i, sz := range sizes {
		v := components[i]
		if v < 0 || v >= sz {
			return 0, uacalc.Errorf(uacalc.InvalidArgument, "mixed radix: component %d=%d out of range [0,%d)", i, v, sz)
		}
		code += v * mult
		mult *= sz
	}
	return code, nil
}

func mixedDecode(code uacalc.Element, sizes []int) ([]uacalc.Element, error) {
	n := 1
	for _, sz := range sizes {
		n *= sz
	}
	if code < 0 || code >= n {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "mixed radix: code %d out of range [0,%d)", code, n)
	}
	comps := make([]uacalc.Element, len(sizes))
	rem := code
	for i, sz := range sizes {
		comps[i] = rem % sz
		rem /= sz
	}
	return comps, nil
}
