package errors

import (
	"errors"
	"strings"
)

// Fixed messages surfaced to end users when an analysis fails terminally.
// Handlers and orchestrators pass these through unchanged; only the layer
// that first observes the failure picks the message.
const (
	MsgAuth        = "The AI service credential is invalid or missing. Please check the configured API key."
	MsgSafety      = "The content was rejected by the AI service's safety filters. Please revise the text and try again."
	MsgNetwork     = "Could not reach the AI service. Please check your network connection and try again."
	MsgHighTraffic = "The AI service is experiencing high traffic right now. Please try again in a few minutes."
	MsgSimplify    = "The AI service could not process this request. Try simplifying the content and checking it again."
	MsgUnavailable = "The AI service is temporarily unavailable. Please try again later."
	MsgBadResponse = "The AI service returned an unexpected response. Please try again."
	MsgGeneric     = "Something went wrong while analyzing the content. Please try again."
)

// UserFacingError carries a fixed, human-readable message for the UI
// while keeping the underlying failure for logs.
type UserFacingError struct {
	msg   string
	cause error
}

func NewUserFacing(msg string, cause error) *UserFacingError {
	return &UserFacingError{msg: msg, cause: cause}
}

func (e *UserFacingError) Error() string {
	return e.msg
}

func (e *UserFacingError) Unwrap() error {
	return e.cause
}

func AsUserFacing(err error) (*UserFacingError, bool) {
	var ufe *UserFacingError
	if errors.As(err, &ufe) {
		return ufe, true
	}
	return nil, false
}

// ClassifyModelError maps a terminal model-call failure to its fixed
// user-facing message. An error that is already user-facing is returned
// as-is so intermediate layers never re-wrap.
func ClassifyModelError(err error) *UserFacingError {
	if err == nil {
		return nil
	}
	if ufe, ok := AsUserFacing(err); ok {
		return ufe
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "api key", "api_key", "credential", "401", "403", "unauthenticated", "permission denied"):
		return NewUserFacing(MsgAuth, err)
	case containsAny(msg, "safety", "blocked", "prohibited content"):
		return NewUserFacing(MsgSafety, err)
	case containsAny(msg, "network", "fetch failed", "connection refused", "connection reset", "no such host", "i/o timeout"):
		return NewUserFacing(MsgNetwork, err)
	case containsAny(msg, "429", "quota", "resource exhausted", "rate limit"):
		return NewUserFacing(MsgHighTraffic, err)
	case containsAny(msg, "400", "invalid argument", "bad request"):
		return NewUserFacing(MsgSimplify, err)
	case containsAny(msg, "500", "503", "unavailable", "overloaded"):
		return NewUserFacing(MsgUnavailable, err)
	default:
		return NewUserFacing(MsgGeneric, err)
	}
}

func containsAny(msg string, markers ...string) bool {
	for _, marker := range markers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
