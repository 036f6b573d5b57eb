package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Operation names the four logical lookups.
type Operation string

const (
	OpVideoMetadata  Operation = "video_metadata"
	OpChannelDetails Operation = "channel_details"
	OpSearch         Operation = "search"
	OpChannelVideos  Operation = "channel_videos"
)

// Outcome records how one provider attempt went.
type Outcome struct {
	Provider ProviderID
	Kind     FailureKind
	Err      error
	Elapsed  time.Duration
}

// attemptFunc runs a single provider for one operation.
type attemptFunc[T any] func(ctx context.Context, d Descriptor, req Request) (T, error)

// dispatched is the result of a dispatch walk.
type dispatched[T any] struct {
	value    T
	provider Descriptor
	sent     *Cursor // cursor actually handed to the winning provider
	ok       bool    // false = every provider failed
	outcomes []Outcome
}

// dispatch walks the registry in priority order and returns the first success.
// Provider failures are recorded and never returned; the only error is the
// caller's context ending, which also stops the walk.
func dispatch[T any](
	ctx context.Context,
	r *Resolver,
	op Operation,
	cursor *Cursor,
	supports func(Descriptor) bool,
	call attemptFunc[T],
) (dispatched[T], error) {
	var res dispatched[T]
	trace := uuid.NewString()
	cred := r.credentials.Resolve()
	metrics.Dispatches.Add(1)

	for _, d := range r.registry.providers {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if !supports(d) || (d.Caps.RequiresCredential && cred.Empty()) {
			res.outcomes = append(res.outcomes, Outcome{Provider: d.ID, Kind: FailureSkipped, Err: errSkipped})
			continue
		}

		req := Request{
			Credential: cred,
			Cursor:     CursorFor(cursor, d.ID),
			Limit:      r.limitFor(op),
		}
		start := time.Now()
		v, err := runAttempt(ctx, r.timeout, func(actx context.Context) (T, error) {
			return call(actx, d, req)
		})
		elapsed := time.Since(start)

		if err != nil {
			// The caller gave up; this is not the provider's fault.
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			kind := KindOf(err)
			recordFailure(kind)
			res.outcomes = append(res.outcomes, Outcome{Provider: d.ID, Kind: kind, Err: err, Elapsed: elapsed})
			slog.Debug("provider attempt failed",
				slog.String("trace", trace),
				slog.String("op", string(op)),
				slog.String("provider", string(d.ID)),
				slog.String("kind", kind.String()),
				slog.Bool("timeout", Timeout(err)),
				slog.Duration("elapsed", elapsed),
				slog.Any("error", err),
			)
			continue
		}

		metrics.Successes.Add(1)
		res.outcomes = append(res.outcomes, Outcome{Provider: d.ID, Elapsed: elapsed})
		res.value, res.provider, res.sent, res.ok = v, d, req.Cursor, true
		slog.Info("provider resolved",
			slog.String("trace", trace),
			slog.String("op", string(op)),
			slog.String("provider", string(d.ID)),
			slog.Int("attempts", len(res.outcomes)),
			slog.Duration("elapsed", elapsed),
		)
		return res, nil
	}

	metrics.Exhausted.Add(1)
	slog.Warn("all providers failed",
		slog.String("trace", trace),
		slog.String("op", string(op)),
		slog.Int("providers", len(r.registry.providers)),
	)
	return res, nil
}

// runAttempt bounds fn by timeout. A provider that ignores its context is
// abandoned when the deadline passes; its result is discarded.
func runAttempt[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn(actx)
		ch <- result{v, err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-actx.Done():
		var zero T
		return zero, actx.Err()
	}
}
