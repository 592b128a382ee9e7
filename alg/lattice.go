// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alg

import (
	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/conlat"
	"github.com/jamiewannenburg/uacalc/sublat"
)

// CongruenceLattice computes the full congruence lattice of a, per
// spec.md §4.7. cancel and progress may be nil.
func (a *Algebra) CongruenceLattice(cancel *uacalc.CancelToken, progress uacalc.ProgressFunc) (*conlat.Lattice, error) {
	return conlat.Build(a.n, a.ops, cancel, progress)
}

// SubalgebraLattice computes the full subalgebra lattice of a, per
// spec.md §4.9. cancel and progress may be nil.
func (a *Algebra) SubalgebraLattice(cancel *uacalc.CancelToken, progress uacalc.ProgressFunc) (*sublat.Lattice, error) {
	return sublat.Build(a.n, a.ops, cancel, progress)
}
