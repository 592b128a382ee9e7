// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

import "fmt"

// Kind classifies the failure modes a fallible operation in this module can
// report. Callers that need to branch on failure type should compare Kind,
// not the error string.
type Kind int

const (
	// NoError is the zero value and is never returned in a non-nil Error.
	NoError Kind = iota
	// InvalidArgument reports an out-of-range element, a wrong-arity tuple,
	// or a negative size supplied by the caller.
	InvalidArgument
	// InvalidAlgebra reports inconsistent operation set-sizes or a
	// malformed operation table.
	InvalidAlgebra
	// InvalidPartition reports a duplicate or missing element in a
	// caller-supplied block list.
	InvalidPartition
	// UnknownOperation reports an operation symbol absent from an algebra.
	UnknownOperation
	// UnboundVariable reports a term evaluation missing a required
	// variable binding.
	UnboundVariable
	// BadFile reports a structural or syntactic failure parsing an algebra
	// file. See BadFileSubkind for the finer-grained reason.
	BadFile
	// MemoryLimitExceeded reports that a caller-set budget was exceeded.
	MemoryLimitExceeded
	// Cancelled reports that a caller's cancellation token was signaled.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidAlgebra:
		return "InvalidAlgebra"
	case InvalidPartition:
		return "InvalidPartition"
	case UnknownOperation:
		return "UnknownOperation"
	case UnboundVariable:
		return "UnboundVariable"
	case BadFile:
		return "BadFile"
	case MemoryLimitExceeded:
		return "MemoryLimitExceeded"
	case Cancelled:
		return "Cancelled"
	default:
		return "NoError"
	}
}

// BadFileSubkind refines a BadFile error with the specific parsing failure,
// per spec.md §7.
type BadFileSubkind int

const (
	// NoSubkind is the zero value, used by non-BadFile errors.
	NoSubkind BadFileSubkind = iota
	MissingElement
	Malformed
	UnsupportedKind
	ValueOutOfRange
)

func (s BadFileSubkind) String() string {
	switch s {
	case MissingElement:
		return "MissingElement"
	case Malformed:
		return "Malformed"
	case UnsupportedKind:
		return "UnsupportedKind"
	case ValueOutOfRange:
		return "ValueOutOfRange"
	default:
		return ""
	}
}

// Error is the concrete error type returned by every fallible operation in
// this module. It is never returned with Kind == NoError.
type Error struct {
	Kind    Kind
	Sub     BadFileSubkind // meaningful only when Kind == BadFile
	Message string

	// Path, Line and Col are populated for BadFile errors when the
	// originating reader can supply them; Line and Col are 1-based and are
	// zero when unknown.
	Path string
	Line int
	Col  int
}

func (e *Error) Error() string {
	if e.Kind == BadFile && e.Path != "" {
		if e.Line > 0 {
			return fmt.Sprintf("uacalc: %s (%s) at %s:%d:%d: %s", e.Kind, e.Sub, e.Path, e.Line, e.Col, e.Message)
		}
		return fmt.Sprintf("uacalc: %s (%s) at %s: %s", e.Kind, e.Sub, e.Path, e.Message)
	}
	if e.Kind == BadFile {
		return fmt.Sprintf("uacalc: %s (%s): %s", e.Kind, e.Sub, e.Message)
	}
	return fmt.Sprintf("uacalc: %s: %s", e.Kind, e.Message)
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, &Error{Kind: uacalc.Cancelled}) works without matching the
// message text.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == NoError {
		return false
	}
	return e.Kind == t.Kind
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FileErrorf builds a BadFile *Error with the given subkind and location.
func FileErrorf(sub BadFileSubkind, path string, line, col int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    BadFile,
		Sub:     sub,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
		Line:    line,
		Col:     col,
	}
}
