// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

// Package-level sentinel message fragments, following the
// "packagename: reason" convention gonum uses throughout (see
// stat/combin.badNegInput) so that %w-wrapped or string-matched errors stay
// stable across refactors.
const (
	hornerBadSize  = "uacalc: non-positive set size"
	hornerBadArity = "uacalc: negative arity"
	hornerOutOfRng = "uacalc: tuple value out of range"
)

// HornerEncode computes the Horner code of tuple, a mixed-radix encoding of
// an arity-k tuple over {0,…,n-1} into [0, n^k), per spec.md §4.1:
//
//	code = ((…(x[k-1]·n + x[k-2])·n + …)·n + x[0])
//
// HornerEncode fails with InvalidArgument if n <= 0 or any tuple entry is
// outside [0, n).
func HornerEncode(tuple []Element, n int) (int, error) {
	if n <= 0 {
		return 0, Errorf(InvalidArgument, "%s: %d", hornerBadSize, n)
	}
	k := len(tuple)
	if k == 0 {
		return 0, nil
	}
	for _, v := range tuple {
		if v < 0 || v >= n {
			return 0, Errorf(InvalidArgument, "%s: %d not in [0,%d)", hornerOutOfRng, v, n)
		}
	}
	code := tuple[k-1]
	for i := k - 2; i >= 0; i-- {
		code = code*n + tuple[i]
	}
	return code, nil
}

// HornerDecode inverts HornerEncode: it recovers the length-k tuple over
// {0,…,n-1} whose Horner code (base n) is code. HornerDecode fails with
// InvalidArgument if n <= 0, k < 0, or code is outside [0, n^k).
func HornerDecode(code, n, k int) ([]Element, error) {
	if n <= 0 {
		return nil, Errorf(InvalidArgument, "%s: %d", hornerBadSize, n)
	}
	if k < 0 {
		return nil, Errorf(InvalidArgument, "%s: %d", hornerBadArity, k)
	}
	if k == 0 {
		if code != 0 {
			return nil, Errorf(InvalidArgument, "%s: code %d for arity 0", hornerOutOfRng, code)
		}
		return []Element{}, nil
	}
	if code < 0 {
		return nil, Errorf(InvalidArgument, "%s: negative code %d", hornerOutOfRng, code)
	}
	tuple := make([]Element, k)
	rem := code
	for i := 0; i < k; i++ {
		tuple[i] = rem % n
		rem /= n
	}
	if rem != 0 {
		return nil, Errorf(InvalidArgument, "%s: code %d out of range for n=%d, k=%d", hornerOutOfRng, code, n, k)
	}
	return tuple, nil
}

// TableSize returns n^k, the length of a table-backed operation's result
// array for set size n and arity k. TableSize fails with InvalidArgument
// under the same conditions as HornerEncode/HornerDecode.
func TableSize(n, k int) (int, error) {
	if n <= 0 {
		return 0, Errorf(InvalidArgument, "%s: %d", hornerBadSize, n)
	}
	if k < 0 {
		return 0, Errorf(InvalidArgument, "%s: %d", hornerBadArity, k)
	}
	size := 1
	for i := 0; i < k; i++ {
		size *= n
	}
	return size, nil
}
