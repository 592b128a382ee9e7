// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import "github.com/jamiewannenburg/uacalc"

// IsIdempotent reports whether f(x,x,…,x) = x for every x in the carrier,
// per spec.md §4.2. It is defined for every arity, including 0 (a nullary
// operation is idempotent iff its one value equals... there being no x to
// compare against, a nullary operation is vacuously idempotent).
func (o *Operation) IsIdempotent() (bool, error) {
	if o.Arity() == 0 {
		return true, nil
	}
	args := make([]uacalc.Element, o.Arity())
	for x := 0; x < o.n; x++ {
		for i := range args {
			args[i] = x
		}
		v, err := o.Value(uacalc.NewIntArray(args))
		if err != nil {
			return false, err
		}
		if v != x {
			return false, nil
		}
	}
	return true, nil
}

// IsAssociative reports whether f(f(x,y),z) = f(x,f(y,z)) for all x,y,z.
// It is defined only for binary operations; for any other arity it fails
// with InvalidArgument, per spec.md §4.2's "(only for binary)".
func (o *Operation) IsAssociative() (bool, error) {
	if o.Arity() != 2 {
		return false, uacalc.Errorf(uacalc.InvalidArgument, "IsAssociative: operation %s has arity %d, want 2", o.sym, o.Arity())
	}
	for x := 0; x < o.n; x++ {
		for y := 0; y < o.n; y++ {
			fxy, err := o.Value(uacalc.NewIntArray([]uacalc.Element{x, y}))
			if err != nil {
				return false, err
			}
			for z := 0; z < o.n; z++ {
				lhs, err := o.Value(uacalc.NewIntArray([]uacalc.Element{fxy, z}))
				if err != nil {
					return false, err
				}
				fyz, err := o.Value(uacalc.NewIntArray([]uacalc.Element{y, z}))
				if err != nil {
					return false, err
				}
				rhs, err := o.Value(uacalc.NewIntArray([]uacalc.Element{x, fyz}))
				if err != nil {
					return false, err
				}
				if lhs != rhs {
					return false, nil
				}
			}
		}
	}
	return true, nil
}

// IsCommutative reports whether f(x,y) = f(y,x) for all x,y. Defined only
// for binary operations.
func (o *Operation) IsCommutative() (bool, error) {
	if o.Arity() != 2 {
		return false, uacalc.Errorf(uacalc.InvalidArgument, "IsCommutative: operation %s has arity %d, want 2", o.sym, o.Arity())
	}
	for x := 0; x < o.n; x++ {
		for y := x + 1; y < o.n; y++ {
			xy, err := o.Value(uacalc.NewIntArray([]uacalc.Element{x, y}))
			if err != nil {
				return false, err
			}
			yx, err := o.Value(uacalc.NewIntArray([]uacalc.Element{y, x}))
			if err != nil {
				return false, err
			}
			if xy != yx {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsMaltsev reports whether f(x,x,y) = y and f(x,y,y) = x for all x,y.
// Defined only for ternary operations.
func (o *Operation) IsMaltsev() (bool, error) {
	if o.Arity() != 3 {
		return false, uacalc.Errorf(uacalc.InvalidArgument, "IsMaltsev: operation %s has arity %d, want 3", o.sym, o.Arity())
	}
	for x := 0; x < o.n; x++ {
		for y := 0; y < o.n; y++ {
			v1, err := o.Value(uacalc.NewIntArray([]uacalc.Element{x, x, y}))
			if err != nil {
				return false, err
			}
			if v1 != y {
				return false, nil
			}
			v2, err := o.Value(uacalc.NewIntArray([]uacalc.Element{x, y, y}))
			if err != nil {
				return false, err
			}
			if v2 != x {
				return false, nil
			}
		}
	}
	return true, nil
}
