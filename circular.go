// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"code.hybscloud.com/ringq/internal/contract"
)

// Circular is a bounded FIFO queue over a fixed ring of slots.
//
// The cursors in and out alone cannot tell an empty ring from a full one,
// since both have in == out. The wrapped flag settles it: it is set when in
// crosses the end of the ring and cleared when out does, so it is true
// exactly when in is one lap ahead of out.
//
// Circular is not safe for concurrent use.
//
// Memory: O(capacity), one flag per slot
type Circular[T any] struct {
	slots   []slot[T]
	in      int  // Next slot to write
	out     int  // Next slot to read
	wrapped bool // in is one lap ahead of out
	verify  bool
	log     *slog.Logger
}

// slot holds Occupied(value) or Empty. An explicit flag keeps the zero
// value of T storable.
type slot[T any] struct {
	value    T
	occupied bool
}

// NewCircular creates a queue holding at most capacity elements, using
// the process-level verification default.
//
// Panics if capacity < 1.
func NewCircular[T any](capacity int) *Circular[T] {
	return Build[T](New(capacity))
}

func newCircular[T any](capacity int, verify bool, logger *slog.Logger) *Circular[T] {
	checkCapacity(capacity)
	q := &Circular[T]{
		slots:  make([]slot[T], capacity),
		verify: verify,
		log:    logger,
	}
	if q.verify {
		q.invariant("new")
	}
	return q
}

// Enqueue copies *elem into the queue.
//
// Returns ErrNilItem if elem is nil and ErrFull if the queue is full.
// Neither error changes the queue.
func (q *Circular[T]) Enqueue(elem *T) error {
	if err := contract.Require(elem != nil, ErrNilItem); err != nil {
		return q.reject("enqueue", err)
	}
	if err := contract.Require(!q.IsFull(), ErrFull); err != nil {
		return q.reject("enqueue", err)
	}
	if q.verify {
		q.invariant("enqueue")
	}

	q.slots[q.in] = slot[T]{value: *elem, occupied: true}
	q.in++
	if q.in >= len(q.slots) {
		q.in = 0
		q.wrapped = true
	}

	if q.verify {
		q.invariant("enqueue")
	}
	return nil
}

// Dequeue removes and returns the oldest element.
// The vacated slot is cleared so the queue keeps no reference to it.
//
// Returns (zero-value, ErrEmpty) if the queue is empty.
func (q *Circular[T]) Dequeue() (T, error) {
	if err := contract.Require(!q.IsEmpty(), ErrEmpty); err != nil {
		var zero T
		return zero, q.reject("dequeue", err)
	}
	if q.verify {
		q.invariant("dequeue")
	}

	s := q.slots[q.out]
	q.slots[q.out] = slot[T]{}
	q.out++
	if q.out >= len(q.slots) {
		q.out = 0
		q.wrapped = false
	}

	if q.verify {
		q.ensure(s.occupied, "dequeue", ErrNullProduced)
		q.invariant("dequeue")
	}
	return s.value, nil
}

// Peek returns the element Dequeue would return, without removing it.
//
// Returns (zero-value, ErrEmpty) if the queue is empty.
func (q *Circular[T]) Peek() (T, error) {
	if err := contract.Require(!q.IsEmpty(), ErrEmpty); err != nil {
		var zero T
		return zero, q.reject("peek", err)
	}
	return q.slots[q.out].value, nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *Circular[T]) IsEmpty() bool {
	return !q.wrapped && q.in == q.out
}

// IsFull reports whether the queue holds Cap() elements.
func (q *Circular[T]) IsFull() bool {
	return q.wrapped && q.in == q.out
}

// IsWrapped returns the raw wrap flag. Diagnostic only.
func (q *Circular[T]) IsWrapped() bool {
	return q.wrapped
}

// Len returns the number of elements in the queue.
func (q *Circular[T]) Len() int {
	if q.wrapped {
		return len(q.slots) - q.out + q.in
	}
	return q.in - q.out
}

// Cap returns the queue capacity.
func (q *Circular[T]) Cap() int {
	return len(q.slots)
}

// Verifying reports whether postconditions and invariants are checked on
// this queue.
func (q *Circular[T]) Verifying() bool {
	return q.verify
}

// String renders the cursors, the full/empty predicates and every slot,
// with _ marking an empty slot. The format is for humans and may change.
func (q *Circular[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "in = %d, out = %d, full = %t, empty = %t, slots = [",
		q.in, q.out, q.IsFull(), q.IsEmpty())
	for i, s := range q.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.occupied {
			fmt.Fprint(&b, s.value)
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// invariant checks that both cursors are in range, that the Len() slots
// starting at out are occupied and that the remaining slots starting at in
// are empty.
func (q *Circular[T]) invariant(op string) {
	n := len(q.slots)
	q.ensure(q.in >= 0 && q.in < n && q.out >= 0 && q.out < n, op, ErrInvariantViolated)

	held := q.Len()
	q.ensure(held >= 0 && held <= n, op, ErrInvariantViolated)
	i := q.out
	for range held {
		q.ensure(q.slots[i].occupied, op, ErrInvariantViolated)
		i = (i + 1) % n
	}
	// i == q.in here; the free region runs from in back round to out.
	for range n - held {
		q.ensure(!q.slots[i].occupied, op, ErrInvariantViolated)
		i = (i + 1) % n
	}
}

// ensure panics with a *Violation if cond is false.
func (q *Circular[T]) ensure(cond bool, op string, err error) {
	if cond {
		return
	}
	v := contract.New(op, err, q.String())
	q.log.Error("ringq: verification failed",
		slog.String("op", op),
		slog.Any("err", err),
		slog.String("state", v.State))
	panic(v)
}

// reject logs a precondition failure and returns err unchanged.
func (q *Circular[T]) reject(op string, err error) error {
	if q.log.Enabled(context.Background(), slog.LevelDebug) {
		q.log.Debug("ringq: rejected",
			slog.String("op", op),
			slog.Any("err", err),
			slog.Int("len", q.Len()),
			slog.Int("cap", q.Cap()))
	}
	return err
}
