package analysis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, InitialDelay: time.Millisecond}
}

func TestCallWithRetry_SucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	got, err := CallWithRetry(context.Background(), fastPolicy(), nil, func(ctx context.Context) (string, error) {
		attempts++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, 1, attempts)
}

func TestCallWithRetry_RecoversAfterTransientFailure(t *testing.T) {
	attempts := 0
	var notified []int
	got, err := CallWithRetry(context.Background(), fastPolicy(), func(attempt int) {
		notified = append(notified, attempt)
	}, func(ctx context.Context) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, fmt.Errorf("status 503 from upstream")
		}
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, got)
	require.Equal(t, 2, attempts)
	require.Equal(t, []int{1}, notified)
}

func TestCallWithRetry_ExhaustsAndReturnsLastError(t *testing.T) {
	attempts := 0
	var notified []int
	_, err := CallWithRetry(context.Background(), fastPolicy(), func(attempt int) {
		notified = append(notified, attempt)
	}, func(ctx context.Context) (string, error) {
		attempts++
		return "", fmt.Errorf("attempt %d: 429 too many requests", attempts)
	})
	require.Error(t, err)
	require.Equal(t, 3, attempts)
	require.Equal(t, []int{1, 2}, notified)
	// The final attempt's error surfaces untranslated.
	require.EqualError(t, err, "attempt 3: 429 too many requests")
}

func TestCallWithRetry_NonRetryableFailsFast(t *testing.T) {
	attempts := 0
	_, err := CallWithRetry(context.Background(), fastPolicy(), func(int) {
		t.Fatal("onRetry must not fire for a non-retryable error")
	}, func(ctx context.Context) (string, error) {
		attempts++
		return "", fmt.Errorf("401 unauthorized")
	})
	require.Error(t, err)
	require.Equal(t, 1, attempts)
	require.EqualError(t, err, "401 unauthorized")
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"network error during fetch", true},
		{"fetch failed", true},
		{"dial tcp: connection refused", true},
		{"read: connection reset by peer", true},
		{"lookup api.example.com: no such host", true},
		{"read tcp: i/o timeout", true},
		{"got HTTP status 429", true},
		{"got HTTP status 500", true},
		{"got HTTP status 503", true},
		{"got HTTP status 400", false},
		{"API key not valid", false},
		{"permission denied", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsRetryable(fmt.Errorf("%s", tc.msg)), tc.msg)
	}
	require.False(t, IsRetryable(nil))
}
