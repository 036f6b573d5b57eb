package engine

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"nil", nil, FailureNone},
		{"status", &StatusError{StatusCode: 403}, FailureRejected},
		{"wrapped status", fmt.Errorf("call: %w", &StatusError{StatusCode: 429}), FailureRejected},
		{"malformed", Malformed("missing %s", "title"), FailureMalformed},
		{"transport sentinel", fmt.Errorf("%w: dial", ErrTransport), FailureTransport},
		{"dns", &net.DNSError{Err: "no such host", Name: "x"}, FailureTransport},
		{"deadline", context.DeadlineExceeded, FailureTransport},
		{"plain", errors.New("boom"), FailureTransport},
		{"skipped", errSkipped, FailureSkipped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	err := error(&StatusError{StatusCode: 503, Body: []byte("busy")})
	if !errors.Is(err, ErrUpstreamRejected) {
		t.Error("StatusError should match ErrUpstreamRejected")
	}
	if errors.Is(err, ErrTransport) {
		t.Error("StatusError must not match ErrTransport")
	}
	var se *StatusError
	if !errors.As(fmt.Errorf("wrap: %w", err), &se) || se.StatusCode != 503 {
		t.Errorf("errors.As failed, got %v", se)
	}
	if err.Error() != "upstream status 503" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestTimeout(t *testing.T) {
	if !Timeout(fmt.Errorf("attempt: %w", context.DeadlineExceeded)) {
		t.Error("wrapped deadline should be a timeout")
	}
	if Timeout(context.Canceled) {
		t.Error("cancellation is not a timeout")
	}
}

func TestFailureKindString(t *testing.T) {
	if FailureMalformed.String() != "malformed" {
		t.Errorf("String() = %q", FailureMalformed.String())
	}
	if FailureKind(42).String() != "FailureKind(42)" {
		t.Errorf("String() = %q", FailureKind(42).String())
	}
}
