// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "log/slog"

// verifyMode selects how a queue decides whether to verify.
type verifyMode uint8

const (
	verifyInherit verifyMode = iota // Use the process-level default
	verifyOn
	verifyOff
)

// Options configures queue creation.
type Options struct {
	capacity int
	verify   verifyMode
	logger   *slog.Logger
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Verified queue for tests, regardless of build tags
//	q := ringq.Build[string](ringq.New(64).Verify())
//
//	// Production queue with diagnostics routed to the service logger
//	q := ringq.Build[Job](ringq.New(1024).Logger(logger))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity is used exactly; it is not rounded.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	checkCapacity(capacity)
	return &Builder{opts: Options{capacity: capacity}}
}

// Verify forces postcondition and invariant checks on for the built queue,
// overriding the process-level default.
func (b *Builder) Verify() *Builder {
	b.opts.verify = verifyOn
	return b
}

// NoVerify forces postcondition and invariant checks off for the built
// queue, overriding the process-level default. Preconditions are still
// checked.
func (b *Builder) NoVerify() *Builder {
	b.opts.verify = verifyOff
	return b
}

// Logger sets the logger used for contract diagnostics. Rejected
// operations are logged at Debug level; verification failures at Error
// level, just before the panic. A nil logger discards.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.opts.logger = l
	return b
}

// Build creates a Circular[T] from the builder's configuration.
// The verification setting is resolved now and fixed for the queue's
// lifetime.
func Build[T any](b *Builder) *Circular[T] {
	verify := Verification()
	switch b.opts.verify {
	case verifyOn:
		verify = true
	case verifyOff:
		verify = false
	}

	logger := b.opts.logger
	if logger == nil {
		logger = discardLogger
	}
	return newCircular[T](b.opts.capacity, verify, logger)
}

var discardLogger = slog.New(slog.DiscardHandler)

func checkCapacity(capacity int) {
	if capacity < 1 {
		panic("ringq: capacity must be >= 1")
	}
}
