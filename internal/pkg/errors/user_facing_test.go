package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyModelError(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"api key", "API key not valid. Please pass a valid API key.", MsgAuth},
		{"forbidden", "got HTTP status 403", MsgAuth},
		{"safety", "candidate was blocked due to SAFETY", MsgSafety},
		{"network", "Post \"https://example.com\": fetch failed", MsgNetwork},
		{"dns", "lookup api.example.com: no such host", MsgNetwork},
		{"rate limit", "got HTTP status 429", MsgHighTraffic},
		{"quota", "RESOURCE exhausted: quota exceeded", MsgHighTraffic},
		{"bad request", "got HTTP status 400", MsgSimplify},
		{"server error", "got HTTP status 500", MsgUnavailable},
		{"overloaded", "the model is overloaded", MsgUnavailable},
		{"unknown", "something exploded", MsgGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyModelError(fmt.Errorf("%s", tc.raw))
			require.Equal(t, tc.want, got.Error())
		})
	}
}

// An auth marker wins over a retry-looking marker in the same message.
func TestClassifyModelError_AuthTakesPriority(t *testing.T) {
	got := ClassifyModelError(fmt.Errorf("401 unauthorized after 429 backoff"))
	require.Equal(t, MsgAuth, got.Error())
}

func TestClassifyModelError_PassThrough(t *testing.T) {
	orig := NewUserFacing(MsgBadResponse, fmt.Errorf("parse findings: boom"))
	got := ClassifyModelError(orig)
	require.Same(t, orig, got)
}

func TestClassifyModelError_WrappedPassThrough(t *testing.T) {
	orig := NewUserFacing(MsgSafety, nil)
	got := ClassifyModelError(fmt.Errorf("chunk 2: %w", orig))
	require.Same(t, orig, got)
}

func TestClassifyModelError_Nil(t *testing.T) {
	if ClassifyModelError(nil) != nil {
		t.Fatal("nil error must classify to nil")
	}
}

func TestUserFacingError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	ufe := NewUserFacing(MsgGeneric, cause)
	require.Equal(t, MsgGeneric, ufe.Error())
	require.Equal(t, cause, ufe.Unwrap())
}
