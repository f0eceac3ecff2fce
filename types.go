// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the combined producer-consumer interface for a bounded FIFO
// queue with observable fullness.
//
// Example:
//
//	var q ringq.Queue[string] = ringq.NewCircular[string](3)
//
//	s := "a"
//	if err := q.Enqueue(&s); err != nil {
//	    // ErrFull: check IsFull first or apply backpressure
//	}
//
//	if !q.IsEmpty() {
//	    v, _ := q.Dequeue()
//	    fmt.Println(v)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	IsEmpty() bool
	IsFull() bool
	Len() int
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer; a nil pointer is the absent value and
// is rejected with ErrNilItem. The queue stores a copy of the pointed-to
// value, so the original can be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue (non-blocking).
	// Returns nil on success, ErrNilItem for a nil element,
	// ErrFull if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value and its slot is cleared, so the queue
// holds no reference to a dequeued element.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrEmpty) if the queue is empty.
	Dequeue() (T, error)
}

var _ Queue[int] = (*Circular[int])(nil)
