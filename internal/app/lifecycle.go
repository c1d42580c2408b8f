package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"
)

// runScope bounds one harness run. Its context ends when the configured
// timeout expires or when SIGINT or SIGTERM arrives, whichever happens first.
type runScope struct {
	ctx     context.Context
	start   time.Time
	timeout time.Duration

	cancelTimeout context.CancelFunc
	stopSignals   context.CancelFunc
}

// newRunScope derives the run context from parent. A non-positive timeout
// disables the deadline.
func newRunScope(parent context.Context, timeout time.Duration) *runScope {
	s := &runScope{start: time.Now(), timeout: timeout}
	ctx := parent
	if timeout > 0 {
		ctx, s.cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	s.ctx, s.stopSignals = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return s
}

// Context returns the run context.
func (s *runScope) Context() context.Context { return s.ctx }

// Elapsed reports the time since the scope was opened.
func (s *runScope) Elapsed() time.Duration { return time.Since(s.start) }

// EndReason describes why the run context ended: "timeout", "interrupted",
// or the empty string while it is still live.
func (s *runScope) EndReason() string {
	switch err := s.ctx.Err(); {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "interrupted"
	}
}

// Close stops signal delivery and releases the deadline. It is safe to call
// more than once.
func (s *runScope) Close() {
	if s.stopSignals != nil {
		s.stopSignals()
	}
	if s.cancelTimeout != nil {
		s.cancelTimeout()
	}
}
