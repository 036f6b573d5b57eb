package engine

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors. Provider failures wrap one of the first three; the dispatcher
// recovers all of them by moving on to the next provider.
var (
	ErrTransport         = errors.New("transport failure")
	ErrUpstreamRejected  = errors.New("upstream rejected")
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidArgument is a caller bug (bad video or channel ID). It is the only
	// non-context error the public operations return.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FailureKind classifies why a provider attempt did not produce a result.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureTransport
	FailureRejected
	FailureMalformed
	FailureSkipped
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTransport:
		return "transport"
	case FailureRejected:
		return "rejected"
	case FailureMalformed:
		return "malformed"
	case FailureSkipped:
		return "skipped"
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// StatusError is a non-2xx response from a provider.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

// Is makes errors.Is(err, ErrUpstreamRejected) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamRejected
}

// Retryable reports whether the status is one that usually clears on its own.
func (e *StatusError) Retryable() bool {
	return IsRetryableStatus(e.StatusCode)
}

// Malformed builds a normalization failure.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

// KindOf maps an attempt error onto the failure taxonomy. Anything that is not a
// status or normalization failure (DNS, connect, timeouts, TLS) is transport.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrMalformedResponse):
		return FailureMalformed
	case errors.Is(err, ErrUpstreamRejected):
		return FailureRejected
	case errors.Is(err, errSkipped):
		return FailureSkipped
	}
	return FailureTransport
}

// errSkipped marks providers the dispatcher never called.
var errSkipped = errors.New("skipped")

// Timeout reports whether err came from an attempt deadline rather than a network error.
func Timeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
