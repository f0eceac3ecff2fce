// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package contract

import (
	"errors"
	"fmt"
)

// Require returns err if cond is false, nil otherwise.
func Require(cond bool, err error) error {
	if cond {
		return nil
	}
	return err
}

// Violation is the panic value for a failed postcondition or invariant.
//
// Violation implements error and unwraps to Err, so a recovering caller
// can classify it with errors.Is.
type Violation struct {
	Op    string // Operation that detected the failure
	Err   error  // Sentinel describing what failed
	State string // Snapshot of the offending structure
}

// New returns a Violation for op.
func New(op string, err error, state string) *Violation {
	return &Violation{Op: op, Err: err, State: state}
}

func (v *Violation) Error() string {
	if v.State == "" {
		return fmt.Sprintf("ringq: %s: %v", v.Op, v.Err)
	}
	return fmt.Sprintf("ringq: %s: %v: %s", v.Op, v.Err, v.State)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Catch runs fn and returns the *Violation it panicked with, or nil if fn
// returned normally. Panics with any other value are re-raised.
func Catch(fn func()) (v *Violation) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok && errors.As(err, &v) {
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
