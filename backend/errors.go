package backend

import (
	"errors"
	"fmt"
)

// Kind tells the two ways a backend call can fail apart.
type Kind int

const (
	// KindTransport covers everything that kept a usable answer from
	// arriving: connection failures, timeouts, bodies that aren't JSON.
	KindTransport Kind = iota + 1
	// KindRejected means the backend answered with success set to false.
	KindRejected
)

func (kind Kind) String() string {
	switch kind {
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ServerErrorMessage is shown for every transport failure.
const ServerErrorMessage = "Server error. Please try again later."

// Error is returned by all Client calls.
type Error struct {
	Kind Kind
	// Op is the endpoint, e.g. "POST /login".
	Op string
	// Message is what the backend said, only set for KindRejected.
	Message string
	Err     error
}

func (err *Error) Error() string {
	if err.Kind == KindRejected {
		if err.Message == "" {
			return fmt.Sprintf("%s: rejected", err.Op)
		}
		return fmt.Sprintf("%s: rejected: %s", err.Op, err.Message)
	}
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}

// IsRejected reports whether err is an application level failure.
func IsRejected(err error) bool {
	var backendErr *Error
	return errors.As(err, &backendErr) && backendErr.Kind == KindRejected
}

// Message turns err into the text shown on a page. Rejections show what the
// backend said, or fallback if it said nothing. Anything else shows
// ServerErrorMessage.
func Message(err error, fallback string) string {
	var backendErr *Error
	if errors.As(err, &backendErr) && backendErr.Kind == KindRejected {
		if backendErr.Message != "" {
			return backendErr.Message
		}
		return fallback
	}
	return ServerErrorMessage
}
