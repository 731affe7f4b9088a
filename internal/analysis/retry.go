package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = time.Second
)

// RetryPolicy bounds the retry decorator around a single remote call:
// at most MaxAttempts attempts, sleeping InitialDelay before the first
// retry and doubling before each subsequent one.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = DefaultInitialDelay
	}
	return p
}

// CallWithRetry wraps a single-attempt remote call with the bounded
// exponential-backoff policy, independent of the call's result type.
// Only errors IsRetryable reports true for are retried; a non-retryable
// error, and the error of the final attempt, surface to the caller
// untranslated. onRetry fires with the 1-based attempt number before
// each backoff sleep, so it runs exactly maxAttempts-1 times when every
// attempt fails.
func CallWithRetry[T any](ctx context.Context, policy RetryPolicy, onRetry func(attempt int), call func(ctx context.Context) (T, error)) (T, error) {
	policy = policy.withDefaults()
	backoff := retry.WithMaxRetries(uint64(policy.MaxAttempts-1), retry.NewExponential(policy.InitialDelay))

	var result T
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		var callErr error
		result, callErr = call(ctx)
		if callErr == nil {
			return nil
		}
		if !IsRetryable(callErr) {
			return callErr
		}
		if onRetry != nil && attempt < policy.MaxAttempts {
			onRetry(attempt)
		}
		return retry.RetryableError(callErr)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

var retryableMarkers = []string{
	"network",
	"fetch failed",
	"connection refused",
	"connection reset",
	"no such host",
	"i/o timeout",
	"429",
	"500",
	"503",
}

// IsRetryable reports whether a remote-call failure looks transient:
// a network-level failure or an HTTP 429/500/503 surfaced in the error
// message. Everything else fails fast.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
