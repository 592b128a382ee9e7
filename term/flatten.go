// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"strings"

	"github.com/jamiewannenburg/uacalc"
)

// Flat represents a left-associative chain f(f(…f(c0,c1),c2)…,ck) of a
// binary, associative-flagged operation symbol collapsed into a single
// node with more than two children, per spec.md §4.8's flattening policy.
// Flat only ever appears for symbols with Sym.Arity == 2 and
// Sym.Associative == true, and only ever has three or more children (two
// children would be indistinguishable from an ordinary NonVariable, so
// Flatten never produces one).
type Flat struct {
	Sym      uacalc.OperationSymbol
	Children []Term
}

func (*Flat) isTerm() {}

func (t *Flat) String() string {
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

// Flatten normalizes t: every maximal chain of nested applications of the
// same binary, associative-flagged symbol is collapsed into a single Flat
// node, per spec.md §4.8. Flattening is purely syntactic — it does not
// change the value Eval produces for any assignment, provided the
// operation the symbol names is genuinely associative.
func Flatten(t Term) Term {
	switch n := t.(type) {
	case *Variable:
		return n
	case *Flat:
		// already flat; flatten children defensively and re-chain, so
		// Flatten is idempotent even on input built by hand rather than by
		// a prior Flatten call.
		flatChildren := make([]Term, 0, len(n.Children))
		for _, c := range n.Children {
			flatChildren = append(flatChildren, flattenChainMember(Flatten(c), n.Sym)...)
		}
		return &Flat{Sym: n.Sym, Children: flatChildren}
	case *NonVariable:
		children := make([]Term, len(n.Children))
		for i, c := range n.Children {
			children[i] = Flatten(c)
		}
		if !n.Sym.Associative || n.Sym.Arity != 2 {
			return &NonVariable{Sym: n.Sym, Children: children}
		}
		chain := make([]Term, 0, len(children)+1)
		for _, c := range children {
			chain = append(chain, flattenChainMember(c, n.Sym)...)
		}
		if len(chain) <= 2 {
			return &NonVariable{Sym: n.Sym, Children: chain}
		}
		return &Flat{Sym: n.Sym, Children: chain}
	default:
		return t
	}
}

// flattenChainMember splices child into the chain being built for sym: if
// child is itself (after flattening) an application of sym, its members
// are spliced in directly; otherwise child is a single chain member.
func flattenChainMember(child Term, sym uacalc.OperationSymbol) []Term {
	switch c := child.(type) {
	case *Flat:
		if c.Sym.Equal(sym) {
			return c.Children
		}
	case *NonVariable:
		if c.Sym.Equal(sym) && sym.Associative && sym.Arity == 2 {
			return c.Children
		}
	}
	return []Term{child}
}

// Equal reports whether a and b are structurally identical terms: same
// shape, same symbols/names, same children, recursively. A NonVariable
// with two children is never Equal to a Flat with the same symbol and
// children, since Flatten never produces a 2-child Flat — callers that
// want flattening-invariant comparison should Flatten both sides first.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case *Variable:
		bv, ok := b.(*Variable)
		return ok && av.Name == bv.Name
	case *NonVariable:
		bv, ok := b.(*NonVariable)
		if !ok || !av.Sym.Equal(bv.Sym) || len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !Equal(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	case *Flat:
		bv, ok := b.(*Flat)
		if !ok || !av.Sym.Equal(bv.Sym) || len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !Equal(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
