// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

// MaxArity is the largest operation arity this module's evaluators and
// operation-argument buffers are guaranteed to handle without reallocating,
// per spec.md §4.8 ("bounded by a maximum operation arity (implementation-
// defined, but ≥ 10)").
const MaxArity = 16

// OperationSymbol names one operation of a similarity type: a name, an
// arity, and whether the operation is metadata-flagged associative. Two
// symbols are equal iff their (Name, Arity) pair is equal; Associative is
// metadata consulted only by term flattening (term.Flatten) and never
// affects OperationSymbol equality or ordering.
type OperationSymbol struct {
	Name        string
	Arity       int
	Associative bool
}

// NewOperationSymbol returns the symbol (name, arity) with Associative
// false.
func NewOperationSymbol(name string, arity int) OperationSymbol {
	return OperationSymbol{Name: name, Arity: arity}
}

// Equal reports whether s and o name the same operation: same Name and
// Arity. Associative is ignored.
func (s OperationSymbol) Equal(o OperationSymbol) bool {
	return s.Name == o.Name && s.Arity == o.Arity
}

// Less orders symbols lexicographically on (Name, Arity), the ordering
// spec.md §3 requires for a deterministic similarity type.
func (s OperationSymbol) Less(o OperationSymbol) bool {
	if s.Name != o.Name {
		return s.Name < o.Name
	}
	return s.Arity < o.Arity
}

func (s OperationSymbol) String() string { return s.Name }

// SortSymbols sorts syms in place by (Name, Arity), the canonical order
// used to fix a similarity type and, in turn, the deterministic iteration
// order of the closure engine (spec.md §4.5).
func SortSymbols(syms []OperationSymbol) {
	// insertion sort: similarity types are small (single digits to low
	// hundreds of operations), so an O(n^2) sort keeps this allocation-free
	// and avoids pulling in sort.Slice's interface boxing for a hot path
	// exercised once per Algebra construction.
	for i := 1; i < len(syms); i++ {
		for j := i; j > 0 && syms[j].Less(syms[j-1]); j-- {
			syms[j], syms[j-1] = syms[j-1], syms[j]
		}
	}
}
