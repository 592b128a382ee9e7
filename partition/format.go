// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"fmt"
	"strings"
)

// PrintType selects one of the textual renderings of a Partition. Only
// Block is fixed by spec.md §9 as the canonical form; the others are
// conventional and included for completeness since the source names them
// (INTERNAL, EWK, BLOCK, HUMAN, SQ_BRACE_BLOCK).
type PrintType int

const (
	// Internal renders the raw canonical representative array, e.g.
	// "[0 0 2 0]".
	Internal PrintType = iota
	// EWK renders one block per line, in the style of the Equational
	// Workbench: "{0,1,3}\n{2}".
	EWK
	// Block is the canonical form fixed by spec.md §9:
	// "|0,1,3|2|".
	Block
	// Human renders a comma-separated, brace-delimited list of blocks:
	// "{0,1,3}, {2}".
	Human
	// SQBraceBlock renders blocks inside square brackets:
	// "[0,1,3][2]".
	SQBraceBlock
)

// Format renders p according to t.
func (p *Partition) Format(t PrintType) string {
	blocks := p.Blocks()
	switch t {
	case Internal:
		p.ensureCanonical()
		var sb strings.Builder
		sb.WriteByte('[')
		for i, r := range p.canon {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", r)
		}
		sb.WriteByte(']')
		return sb.String()
	case EWK:
		parts := make([]string, len(blocks))
		for i, b := range blocks {
			parts[i] = "{" + joinInts(b) + "}"
		}
		return strings.Join(parts, "\n")
	case Human:
		parts := make([]string, len(blocks))
		for i, b := range blocks {
			parts[i] = "{" + joinInts(b) + "}"
		}
		return strings.Join(parts, ", ")
	case SQBraceBlock:
		var sb strings.Builder
		for _, b := range blocks {
			sb.WriteByte('[')
			sb.WriteString(joinInts(b))
			sb.WriteByte(']')
		}
		return sb.String()
	default: // Block
		var sb strings.Builder
		sb.WriteByte('|')
		for _, b := range blocks {
			sb.WriteString(joinInts(b))
			sb.WriteByte('|')
		}
		return sb.String()
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ",")
}
