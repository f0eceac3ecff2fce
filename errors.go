// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq/internal/contract"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// It is an alias for [iox.ErrWouldBlock]. [ErrFull] and [ErrEmpty] wrap it,
// so callers that only care about backpressure can test for it directly.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrPrecondition is wrapped by every error a caller can provoke through
// misuse of the API. See [IsContractViolation].
var ErrPrecondition = errors.New("ringq: precondition failed")

// Precondition errors. Always checked, always returned to the caller.
var (
	// ErrNilItem is returned by Enqueue when given a nil element.
	// Unlike ErrFull, retrying cannot succeed.
	ErrNilItem = fmt.Errorf("%w: enqueue nil item", ErrPrecondition)

	// ErrFull is returned by Enqueue on a full queue.
	ErrFull error = &preconditionError{msg: "enqueue into full queue"}

	// ErrEmpty is returned by Dequeue and Peek on an empty queue.
	ErrEmpty error = &preconditionError{msg: "dequeue from empty queue"}
)

// Verification failures. Only detected when verification is enabled, and
// raised as a panic carrying *Violation rather than returned.
var (
	// ErrNullProduced means Dequeue read an empty slot from a queue that
	// reported itself non-empty.
	ErrNullProduced = errors.New("empty slot produced by non-empty queue")

	// ErrInvariantViolated means the occupied or free region of the slot
	// array is inconsistent with the cursors.
	ErrInvariantViolated = errors.New("queue invariant violated")
)

// Violation is the panic value raised when a postcondition or invariant
// check fails. It unwraps to ErrNullProduced or ErrInvariantViolated.
type Violation = contract.Violation

// preconditionError is a precondition failure that also signals
// backpressure: it matches both ErrPrecondition and ErrWouldBlock.
type preconditionError struct {
	msg string
}

func (e *preconditionError) Error() string {
	return "ringq: precondition failed: " + e.msg
}

func (e *preconditionError) Unwrap() []error {
	return []error{ErrPrecondition, iox.ErrWouldBlock}
}

// IsWouldBlock reports whether err indicates the queue was full or empty.
func IsWouldBlock(err error) bool {
	return errors.Is(err, iox.ErrWouldBlock) || iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// ErrFull and ErrEmpty are semantic; ErrNilItem is not.
func IsSemantic(err error) bool {
	return IsWouldBlock(err) || iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrFull and ErrEmpty; false for ErrNilItem.
func IsNonFailure(err error) bool {
	return err == nil || IsWouldBlock(err) || iox.IsNonFailure(err)
}

// IsContractViolation reports whether err is a precondition failure
// returned by the queue.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrPrecondition)
}
