// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uacalc provides the foundational value types shared by every
// other package in this module: carrier elements, fixed-length integer
// tuples, operation symbols, the Horner tuple codec, the module-wide error
// taxonomy, and the cancellation/progress contract used by long-running
// computations (closure, principal-congruence generation, lattice
// construction).
//
// Higher-level structure — operations, algebras, terms, partitions,
// congruence and subalgebra lattices — lives in the sibling packages op,
// alg, term, partition, cg, conlat and sublat.
package uacalc // import "github.com/jamiewannenburg/uacalc"
