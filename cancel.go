// Copyright ©2026 The uacalc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uacalc

import "sync"

// CancelToken is the opaque cancellation token spec.md §5/§6 requires
// long-running computations (Closer, CongruenceLattice, SubalgebraLattice)
// to poll. cg.Generate takes no token; CongruenceLattice polls before each
// principal congruence it computes. The core does not implement a clock: a caller that wants a
// timeout wraps one around a CancelToken itself, e.g. by calling Cancel
// from a time.AfterFunc.
//
// The zero value is a valid, never-cancelled token: callers that do not
// need cancellation can pass uacalc.CancelToken{} or nil *CancelToken.
type CancelToken struct {
	ch   chan struct{}
	once sync.Once
}

// NewCancelToken returns a fresh, un-cancelled token.
func NewCancelToken() *CancelToken {
	return &CancelToken{ch: make(chan struct{})}
}

// Cancel signals the token. Cancel is idempotent and safe to call from any
// goroutine, any number of times. On a nil token or the zero value it has
// no effect.
func (c *CancelToken) Cancel() {
	if c == nil || c.ch == nil {
		return
	}
	c.once.Do(func() { close(c.ch) })
}

// Cancelled reports whether the token has been signaled. A nil token, or a
// token with a nil internal channel, is never cancelled.
func (c *CancelToken) Cancelled() bool {
	if c == nil || c.ch == nil {
		return false
	}
	select {
	case <-c.ch:
		return true
	default:
		return false
	}
}

// CheckCancel returns a Cancelled *Error if c has been signaled, and nil
// otherwise. Long-running loops call this periodically and return early on
// a non-nil result, per spec.md §5.
func CheckCancel(c *CancelToken) error {
	if c.Cancelled() {
		return Errorf(Cancelled, "operation cancelled")
	}
	return nil
}
