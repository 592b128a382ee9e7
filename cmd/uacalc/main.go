// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command uacalc loads an algebra file and computes one of the operations
// described in spec.md §4: a summary of the algebra, a principal
// congruence, the full congruence lattice, the full subalgebra lattice, or
// the quotient by a principal congruence.
package main // import "github.com/jamiewannenburg/uacalc/cmd/uacalc"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jamiewannenburg/uacalc"
	"github.com/jamiewannenburg/uacalc/alg"
	"github.com/jamiewannenburg/uacalc/uaio"
)

func main() {
	log.SetPrefix("uacalc: ")
	log.SetFlags(0)

	file := flag.String("file", "", "path to an algebra file in the spec.md §6 XML format")
	op := flag.String("op", "info", "operation to perform: info, cg, conlat, sublat, or quotient")
	a := flag.Int("a", -1, "first element, for -op=cg or -op=quotient")
	b := flag.Int("b", -1, "second element, for -op=cg or -op=quotient")
	out := flag.String("out", "", "path to write the quotient algebra to, for -op=quotient")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			`Usage: uacalc -file ALGEBRA.ua [options]

ex:
 $> uacalc -file z3.ua -op info
 $> uacalc -file z3.ua -op cg -a 0 -b 1
 $> uacalc -file z3.ua -op conlat
 $> uacalc -file z3.ua -op sublat
 $> uacalc -file z3.ua -op quotient -a 0 -b 1 -out z3-mod.ua

Options:
`,
		)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *file == "" {
		flag.Usage()
		log.Fatalf("missing -file")
	}

	a1, err := uaio.Load(*file)
	if err != nil {
		log.Fatalf("could not load %s: %v", *file, err)
	}

	switch *op {
	case "info":
		runInfo(a1)
	case "cg":
		runCg(a1, *a, *b)
	case "conlat":
		runConlat(a1)
	case "sublat":
		runSublat(a1)
	case "quotient":
		runQuotient(a1, *a, *b, *out)
	default:
		flag.Usage()
		log.Fatalf("unknown -op %q", *op)
	}
}

func runInfo(a *alg.Algebra) {
	fmt.Printf("algebra %q, cardinality %d\n", a.Name(), a.Cardinality())
	for _, o := range a.Operations() {
		fmt.Printf("  operation %s, arity %d\n", o.Symbol().Name, o.Arity())
	}
}

func runCg(a *alg.Algebra, x, y int) {
	if x < 0 || y < 0 {
		log.Fatalf("-op=cg requires -a and -b")
	}
	p, err := a.Cg(uacalc.Element(x), uacalc.Element(y))
	if err != nil {
		log.Fatalf("cg(%d,%d): %v", x, y, err)
	}
	fmt.Println(p)
}

func runConlat(a *alg.Algebra) {
	l, err := a.CongruenceLattice(nil, nil)
	if err != nil {
		log.Fatalf("congruence lattice: %v", err)
	}
	fmt.Printf("congruence lattice: %d elements, height %d, width %d\n", l.Size(), l.Height(), l.Width())
	for i := 0; i < l.Size(); i++ {
		fmt.Printf("  %d: %v\n", i, l.Congruence(i))
	}
}

func runSublat(a *alg.Algebra) {
	l, err := a.SubalgebraLattice(nil, nil)
	if err != nil {
		log.Fatalf("subalgebra lattice: %v", err)
	}
	fmt.Printf("subalgebra lattice: %d elements, height %d, width %d\n", l.Size(), l.Height(), l.Width())
	for i := 0; i < l.Size(); i++ {
		fmt.Printf("  %d: %v\n", i, l.Subuniverse(i))
	}
}

func runQuotient(a *alg.Algebra, x, y int, out string) {
	if x < 0 || y < 0 {
		log.Fatalf("-op=quotient requires -a and -b")
	}
	if out == "" {
		log.Fatalf("-op=quotient requires -out")
	}
	cong, err := a.Cg(uacalc.Element(x), uacalc.Element(y))
	if err != nil {
		log.Fatalf("cg(%d,%d): %v", x, y, err)
	}
	q, err := alg.Quotient(a, cong)
	if err != nil {
		log.Fatalf("quotient by cg(%d,%d): %v", x, y, err)
	}
	if err := uaio.Save(out, q, fmt.Sprintf("quotient of %s by cg(%d,%d)", a.Name(), x, y)); err != nil {
		log.Fatalf("could not save %s: %v", out, err)
	}
	fmt.Printf("wrote quotient algebra (cardinality %d) to %s\n", q.Cardinality(), out)
}
