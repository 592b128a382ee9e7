// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term implements the term language of spec.md §3/§4.8: an
// abstract syntax tree over variables and operation symbols, an iterative
// (non-recursive) evaluator, interpretation of a term as an op.Operation,
// and associative flattening.
//
// The AST shape — a small tagged interface with Variable and NonVariable
// leaves/nodes, each carrying only the data it needs — follows the
// lambda-calculus term representation in the retrieval pack's
// KarpelesLab-lambda package (Var/Abstraction/Application implementing a
// common Object interface), adapted from a binder calculus to a
// first-order term algebra: NonVariable plays the role of Application,
// Variable is unchanged, and there is no Abstraction since terms here bind
// no variables of their own.
package term

import (
	"strings"

	"github.com/jamiewannenburg/uacalc"
)

// Term is a Variable, a NonVariable, or a Flat (produced by Flatten). All
// are represented as
// pointers so that distinct occurrences of what is conceptually "the same
// subterm" can share a single node (spec.md §9, "Terms as trees with
// shared subterms"); the per-evaluation memo cache in Eval keys off this
// pointer identity.
type Term interface {
	isTerm()
	String() string
}

// Variable is a leaf term standing for one bound name.
type Variable struct {
	Name string
}

func (*Variable) isTerm() {}

// NewVariable returns a Variable named name.
func NewVariable(name string) *Variable { return &Variable{Name: name} }

func (v *Variable) String() string { return v.Name }

// NonVariable applies an operation symbol to a fixed number of child
// terms, one per argument position.
type NonVariable struct {
	Sym      uacalc.OperationSymbol
	Children []Term
}

func (*NonVariable) isTerm() {}

// NewNonVariable builds sym applied to children. It fails with
// InvalidArgument if len(children) != sym.Arity or sym.Arity exceeds
// uacalc.MaxArity.
func NewNonVariable(sym uacalc.OperationSymbol, children []Term) (*NonVariable, error) {
	if sym.Arity > uacalc.MaxArity {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "operation %s: arity %d exceeds MaxArity %d", sym, sym.Arity, uacalc.MaxArity)
	}
	if len(children) != sym.Arity {
		return nil, uacalc.Errorf(uacalc.InvalidArgument, "operation %s: got %d children, want %d", sym, len(children), sym.Arity)
	}
	cp := make([]Term, len(children))
	copy(cp, children)
	return &NonVariable{Sym: sym, Children: cp}, nil
}

func (t *NonVariable) String() string {
	var sb strings.Builder
	sb.WriteString(t.Sym.Name)
	sb.WriteByte('(')
	for i, c := range t.Children {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Depth returns the number of edges on the longest root-to-leaf path. A
// Variable has depth 0.
func Depth(t Term) int {
	switch n := t.(type) {
	case *Variable:
		return 0
	case *NonVariable:
		max := 0
		for _, c := range n.Children {
			if d := Depth(c); d > max {
				max = d
			}
		}
		return max + 1
	case *Flat:
		max := 0
		for _, c := range n.Children {
			if d := Depth(c); d > max {
				max = d
			}
		}
		return max + 1
	default:
		return 0
	}
}

// Length returns the number of symbols (variable occurrences plus
// operation-symbol occurrences) in t.
func Length(t Term) int {
	switch n := t.(type) {
	case *Variable:
		return 1
	case *NonVariable:
		total := 1
		for _, c := range n.Children {
			total += Length(c)
		}
		return total
	case *Flat:
		total := 1
		for _, c := range n.Children {
			total += Length(c)
		}
		return total
	default:
		return 0
	}
}

// Variables returns the distinct variable names occurring in t, sorted.
func Variables(t Term) []string {
	set := make(map[string]bool)
	collectVariables(t, set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sortStrings(names)
	return names
}

func collectVariables(t Term, set map[string]bool) {
	switch n := t.(type) {
	case *Variable:
		set[n.Name] = true
	case *NonVariable:
		for _, c := range n.Children {
			collectVariables(c, set)
		}
	case *Flat:
		for _, c := range n.Children {
			collectVariables(c, set)
		}
	}
}

type symKey struct {
	name  string
	arity int
}

// Symbols returns the distinct operation symbols occurring in t, sorted by
// (Name, Arity). Associative is not part of the identity used for
// deduplication, matching OperationSymbol.Equal.
func Symbols(t Term) []uacalc.OperationSymbol {
	set := make(map[symKey]uacalc.OperationSymbol)
	collectSymbols(t, set)
	syms := make([]uacalc.OperationSymbol, 0, len(set))
	for _, s := range set {
		syms = append(syms, s)
	}
	uacalc.SortSymbols(syms)
	return syms
}

func collectSymbols(t Term, set map[symKey]uacalc.OperationSymbol) {
	switch n := t.(type) {
	case *NonVariable:
		set[symKey{n.Sym.Name, n.Sym.Arity}] = n.Sym
		for _, c := range n.Children {
			collectSymbols(c, set)
		}
	case *Flat:
		set[symKey{n.Sym.Name, n.Sym.Arity}] = n.Sym
		for _, c := range n.Children {
			collectSymbols(c, set)
		}
	}
}

func sortStrings(xs []string) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
