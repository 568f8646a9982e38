package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/projeto-evento/evento-api/internal/config"
)

var ErrTimeout = errors.New("database operation timed out")

// QueryPolicy bounds every database call. Reads are retried on a deadline while the
// caller's context is still alive; writes run once.
type QueryPolicy struct {
	Timeout      time.Duration
	ReadAttempts int
}

func NewQueryPolicy(conf *config.PostgresConfig) QueryPolicy {
	if conf == nil {
		return QueryPolicy{ReadAttempts: 1}
	}

	return QueryPolicy{
		Timeout:      conf.QueryTimeout,
		ReadAttempts: conf.ReadAttempts,
	}
}

func (p QueryPolicy) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, p.Timeout)
}

func readWithRetry[T any](ctx context.Context, p QueryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	attempts := p.ReadAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		attemptCtx, cancel := p.attemptContext(ctx)
		v, err := fn(attemptCtx)
		timedOut := isDeadline(attemptCtx, err)
		cancel()

		if err == nil {
			return v, nil
		}
		if !timedOut {
			return zero, err
		}
		if ctx.Err() != nil {
			return zero, fmt.Errorf("%w after %d attempt(s)", ErrTimeout, attempt)
		}
	}

	return zero, fmt.Errorf("%w after %d attempt(s)", ErrTimeout, attempts)
}

func writeOnce[T any](ctx context.Context, p QueryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	attemptCtx, cancel := p.attemptContext(ctx)
	defer cancel()

	v, err := fn(attemptCtx)
	if err != nil && isDeadline(attemptCtx, err) {
		return v, fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return v, err
}

func isDeadline(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
