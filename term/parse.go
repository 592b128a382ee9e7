// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"github.com/jamiewannenburg/uacalc"
)

// Parse reads a term written as a bare name (a variable) or as
// name(arg1,arg2,...) (an operation applied to sub-terms), per SPEC_FULL.md
// §5's term grammar. A name is any run of characters other than whitespace,
// parentheses and commas, so operator symbols such as "+" are names too.
// A name without parentheses is always a Variable. For an application,
// symbolOf resolves the name and argument count to the OperationSymbol of
// the NonVariable node; if it returns ok == false, Parse fails with
// UnknownOperation.
//
// Whitespace around identifiers, commas and parentheses is ignored. Parse
// does not flatten; callers that want associative chains collapsed should
// call Flatten on the result.
func Parse(s string, symbolOf func(name string, arity int) (uacalc.OperationSymbol, bool)) (Term, error) {
	p := &parser{input: s}
	p.skipSpace()
	t, err := p.parseTerm(symbolOf)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, uacalc.FileErrorf(uacalc.Malformed, "", 0, 0, "unexpected trailing input %q", p.input[p.pos:])
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) parseIdent() (string, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", uacalc.FileErrorf(uacalc.Malformed, "", 0, start, "expected identifier at position %d", start)
	}
	return p.input[start:p.pos], nil
}

func isIdentByte(b byte) bool {
	return b != ' ' && b != '\t' && b != '\n' && b != '(' && b != ')' && b != ','
}

func (p *parser) parseTerm(symbolOf func(name string, arity int) (uacalc.OperationSymbol, bool)) (Term, error) {
	p.skipSpace()
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != '(' {
		return NewVariable(name), nil
	}
	p.pos++ // consume '('
	var children []Term
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == ')' {
		p.pos++
	} else {
		for {
			child, err := p.parseTerm(symbolOf)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
			p.skipSpace()
			if p.pos >= len(p.input) {
				return nil, uacalc.FileErrorf(uacalc.Malformed, "", 0, p.pos, "unterminated argument list for %q", name)
			}
			if p.input[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.input[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, uacalc.FileErrorf(uacalc.Malformed, "", 0, p.pos, "expected ',' or ')' in argument list for %q, got %q", name, string(p.input[p.pos]))
		}
	}
	sym, ok := symbolOf(name, len(children))
	if !ok {
		return nil, uacalc.Errorf(uacalc.UnknownOperation, "unknown operation symbol %s/%d", name, len(children))
	}
	return NewNonVariable(sym, children)
}

// MapSymbolLookup builds a symbolOf function for Parse from a flat list of
// symbols, matching on (Name, Arity) as OperationSymbol.Equal does.
func MapSymbolLookup(syms []uacalc.OperationSymbol) func(name string, arity int) (uacalc.OperationSymbol, bool) {
	return func(name string, arity int) (uacalc.OperationSymbol, bool) {
		for _, s := range syms {
			if s.Name == name && s.Arity == arity {
				return s, true
			}
		}
		return uacalc.OperationSymbol{}, false
	}
}
