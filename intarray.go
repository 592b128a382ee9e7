// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

// Element identifies one member of a finite carrier {0, 1, …, n-1}.
type Element = int

// IntArray is an immutable fixed-length tuple of Elements, used as an
// operation's argument tuple. Equality is defined structurally: two
// IntArrays are equal iff they have the same length and are pointwise
// equal. IntArray itself is not comparable with ==; Key gives a string
// form that can serve as a map key.
//
// IntArray is a value type. Callers must not mutate a slice after wrapping
// it in an IntArray; construct a fresh one instead.
type IntArray struct {
	vals []Element
}

// NewIntArray copies vals into a new IntArray. The caller's slice is not
// retained, so it may be reused or mutated afterward.
func NewIntArray(vals []Element) IntArray {
	cp := make([]Element, len(vals))
	copy(cp, vals)
	return IntArray{vals: cp}
}

// Len returns the number of elements in the tuple.
func (a IntArray) Len() int { return len(a.vals) }

// At returns the element at index i. It panics if i is out of range, the
// same contract as slice indexing.
func (a IntArray) At(i int) Element { return a.vals[i] }

// Slice returns a copy of the tuple's contents as a plain slice, safe for
// the caller to mutate.
func (a IntArray) Slice() []Element {
	cp := make([]Element, len(a.vals))
	copy(cp, a.vals)
	return cp
}

// Equal reports whether a and b have the same length and are pointwise
// equal.
func (a IntArray) Equal(b IntArray) bool {
	if len(a.vals) != len(b.vals) {
		return false
	}
	for i, v := range a.vals {
		if b.vals[i] != v {
			return false
		}
	}
	return true
}

// Key returns a value suitable for use as a Go map key that is equal for
// equal IntArrays and distinct (with overwhelming probability of distinct
// hash buckets) otherwise. Go does not allow []int as a map key directly;
// Key converts the tuple to a string over a separator byte that cannot
// appear in a rune-encoded non-negative integer, so no two distinct tuples
// can collide by concatenation ambiguity.
func (a IntArray) Key() string {
	if len(a.vals) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(a.vals)*4)
	for i, v := range a.vals {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits written since start
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// String renders the tuple in the conventional "(v0,v1,…)" form.
func (a IntArray) String() string {
	if len(a.vals) == 0 {
		return "()"
	}
	buf := []byte{'('}
	for i, v := range a.vals {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}
	buf = append(buf, ')')
	return string(buf)
}
