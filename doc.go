// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a bounded circular FIFO queue with
// design-by-contract checking.
//
// # Quick Start
//
//	q := ringq.NewCircular[string](3)
//
//	s := "a"
//	if err := q.Enqueue(&s); err != nil {
//	    // ErrNilItem or ErrFull
//	}
//
//	v, err := q.Dequeue()
//	if ringq.IsWouldBlock(err) {
//	    // Queue is empty
//	}
//
// Builder API:
//
//	q := ringq.Build[Event](ringq.New(1024))                  // process default
//	q := ringq.Build[Event](ringq.New(1024).Verify())         // always verify
//	q := ringq.Build[Event](ringq.New(1024).NoVerify())       // never verify
//	q := ringq.Build[Event](ringq.New(1024).Logger(logger))   // with diagnostics
//
// # Layout
//
// The queue is a fixed array of slots and two cursors:
//
//	in  - next slot to write
//	out - next slot to read
//
// Both advance modulo the capacity. When in == out the queue is either
// empty or full; a wrap flag, set when in wraps to 0 and cleared when out
// does, tells which:
//
//	in == out, !wrapped  → EMPTY    (only Enqueue succeeds)
//	in != out            → PARTIAL  (both succeed)
//	in == out, wrapped   → FULL     (only Dequeue succeeds)
//
// Every slot carries its own occupied flag, so the zero value of T is an
// ordinary element and needs no sentinel.
//
// # Contracts
//
// Checks fall into two tiers.
//
// Preconditions are the caller's obligations. They are always checked and
// a failure is returned as an error, leaving the queue unchanged:
//
//	ErrNilItem - Enqueue(nil)
//	ErrFull    - Enqueue on a full queue
//	ErrEmpty   - Dequeue or Peek on an empty queue
//
// All three wrap [ErrPrecondition]. ErrFull and ErrEmpty also wrap
// [ErrWouldBlock] (from [code.hybscloud.com/iox]): they are backpressure
// signals, and retrying later may succeed. ErrNilItem is a plain failure.
//
//	err := q.Enqueue(&item)
//	ringq.IsContractViolation(err) // any precondition failure
//	ringq.IsWouldBlock(err)        // ErrFull or ErrEmpty
//	ringq.IsNonFailure(err)        // nil, ErrFull or ErrEmpty
//
// Postconditions and invariants are the queue's own obligations. They are
// checked only when verification is enabled, before and after each
// Enqueue and Dequeue:
//
//   - every slot from out up to in holds an element
//   - every slot from in up to out is empty (unless full)
//   - both cursors lie in [0, capacity)
//   - Dequeue never produces an empty slot
//
// A failure means the queue itself is broken. It panics with a
// [*Violation] wrapping [ErrInvariantViolated] or [ErrNullProduced] and
// carrying the queue's String() dump. Do not recover and continue.
//
// # Verification
//
// Verification is resolved when a queue is built, from, in order:
//
//	Builder.Verify() / Builder.NoVerify()   per queue
//	SetVerification(bool)                   process level
//	-tags ringq_verify                      compile time (VerifyDefault)
//
// Without the build tag and without an override, verification is off and
// each operation is O(1). With it on, each operation also walks the ring,
// O(capacity).
//
// # Thread Safety
//
// A queue is not safe for concurrent use. Callers sharing one across
// goroutines must hold a single lock around each call; every operation
// is O(1) and non-blocking, so the critical sections are short.
// SetVerification and Verification are safe from any goroutine.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for the process-level verification flag.
package ringq
