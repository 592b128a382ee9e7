// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

// ProgressFunc receives advisory (fraction, message) updates from a
// long-running computation, per spec.md §6. fraction lies in [0,1];
// message is a short human-readable description of the current phase. A
// nil ProgressFunc means "no reporting occurs" — callers are never
// required to supply one, and every core function that accepts one treats
// nil as a no-op sink.
//
// Progress is advisory only: exact call frequency is implementation
// defined, and no further calls occur after a computation fails (spec.md
// §7).
type ProgressFunc func(fraction float64, message string)

// report calls fn if it is non-nil; it exists purely to avoid repeating the
// nil check at every call site.
func report(fn ProgressFunc, fraction float64, message string) {
	if fn != nil {
		fn(fraction, message)
	}
}

// Report is the exported form of report, for use by sibling packages that
// drive their own long-running loops (closure, conlat, sublat).
func Report(fn ProgressFunc, fraction float64, message string) {
	report(fn, fraction, message)
}
