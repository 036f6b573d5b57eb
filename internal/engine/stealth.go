package engine

import (
	"context"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Re-export stealth helpers for provider implementations.

var DefaultRetryConfig = stealth.DefaultRetryConfig

func RandomUserAgent() string         { return stealth.RandomUserAgent() }
func IsRetryableStatus(code int) bool { return stealth.IsRetryableStatus(code) }

func RetryDo[T any](ctx context.Context, rc stealth.RetryConfig, fn func() (T, error)) (T, error) {
	return stealth.RetryDo(ctx, rc, fn)
}
