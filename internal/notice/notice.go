// Package notice keeps the messages shown to the operator: the most recent
// error until something supersedes it, and a success message that clears
// itself after a short delay.
package notice

import (
	"errors"
	"sync"
	"time"

	"gamecatalog/admin/internal/catalog"
)

const (
	// SuccessTTL is how long a success message stays visible.
	SuccessTTL = 3 * time.Second

	FallbackMessage = "Something went wrong"
)

// Board is safe for concurrent use.
type Board struct {
	mu  sync.Mutex
	now func() time.Time
	ttl time.Duration

	err       error
	success   string
	successAt time.Time
}

// Option configures a Board.
type Option func(*Board)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithTTL replaces SuccessTTL.
func WithTTL(ttl time.Duration) Option {
	return func(b *Board) { b.ttl = ttl }
}

func NewBoard(opts ...Option) *Board {
	b := &Board{now: time.Now, ttl: SuccessTTL}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Fail shows err and hides any success message. A nil err is ignored.
func (b *Board) Fail(err error) {
	if err == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
	b.success = ""
}

// Succeed shows msg and clears the current error.
func (b *Board) Succeed(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = nil
	b.success = msg
	b.successAt = b.now()
}

// Clear hides everything, as when the operator starts a new action.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = nil
	b.success = ""
}

// Err returns the error on display, if any.
func (b *Board) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Success returns the success message while it has not expired.
func (b *Board) Success() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.success != "" && b.now().Sub(b.successAt) >= b.ttl {
		b.success = ""
	}
	return b.success
}

// Message is the text shown for err: the server's message for remote
// failures, the validation message for local ones.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var v *catalog.ValidationError
	if errors.As(err, &v) && v.Message != "" {
		return v.Message
	}
	if e, ok := catalog.AsError(err); ok && e.Message != "" {
		return e.Message
	}
	return FallbackMessage
}
