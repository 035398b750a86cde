package mwclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meshwallet/sdk-go/core/types"
	"github.com/meshwallet/sdk-go/core/util"
)

// Poller defaults, applied for any WaitOptions field left nil. Both bounds
// run simultaneously; whichever trips first ends the wait.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 60
	DefaultWaitDeadline = 2 * time.Minute
)

// statusFetch is one status round trip.
type statusFetch func(ctx context.Context) (*types.Operation, error)

// waitForTerminal polls fetch until the operation reaches a terminal state
// or a bound trips.
//
// Per poll: fetch, fire OnPoll with the payload, then check terminality.
// Errors are never retried; only a non-terminal state is. The sleep between
// polls is skipped when the very first fetch is already terminal and when
// the interval is zero.
func (c *Client) waitForTerminal(ctx context.Context, id string, fetch statusFetch, opts types.WaitOptions) (*types.Operation, error) {
	interval, maxAttempts, deadline, err := c.resolveWaitBounds(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, normalizeCtxErr(err)
		}

		op, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		attempts++

		if opts.OnPoll != nil {
			opts.OnPoll(op)
		}

		c.logger.Debug("polled operation",
			zap.String("id", id),
			zap.String("state", string(op.State)),
			zap.Int("attempt", attempts),
		)

		if op.State.IsTerminal() {
			return op, nil
		}

		if attempts >= maxAttempts {
			return nil, types.NewTimeoutError("operation %s still %s after %d polls", id, op.State, attempts)
		}
		if time.Since(start) >= deadline {
			return nil, types.NewTimeoutError("operation %s still %s after %s", id, op.State, deadline)
		}

		select {
		case <-ctx.Done():
			return nil, normalizeCtxErr(ctx.Err())
		case <-sleepCtx(ctx, interval):
		}
	}
}

// resolveWaitBounds merges per-call options over the client-level wait
// defaults, then over the package defaults.
func (c *Client) resolveWaitBounds(opts types.WaitOptions) (time.Duration, int, time.Duration, error) {
	interval := util.OrDefault(opts.Interval, util.OrDefault(c.waitDefaults.Interval, DefaultPollInterval))
	if interval < 0 {
		return 0, 0, 0, types.NewFormatError("poll interval cannot be negative")
	}

	maxAttempts := util.OrDefault(opts.MaxAttempts, util.OrDefault(c.waitDefaults.MaxAttempts, DefaultMaxAttempts))
	if maxAttempts <= 0 {
		return 0, 0, 0, types.NewFormatError("max attempts must be positive")
	}

	deadline := util.OrDefault(opts.Deadline, util.OrDefault(c.waitDefaults.Deadline, DefaultWaitDeadline))
	if deadline <= 0 {
		return 0, 0, 0, types.NewFormatError("wait deadline must be positive")
	}

	return interval, maxAttempts, deadline, nil
}

// sleepCtx returns a channel that closes after d or when ctx is done.
// A non-positive d closes immediately without starting a timer.
func sleepCtx(ctx context.Context, d time.Duration) <-chan struct{} {
	ch := make(chan struct{})
	if d <= 0 {
		close(ch)
		return ch
	}
	go func() {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
		close(ch)
	}()
	return ch
}

// normalizeCtxErr maps context failures into the tagged error type: a
// caller deadline is a timeout, a cancellation a transport-level abort.
func normalizeCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return types.NewTimeoutError("wait aborted: context deadline exceeded")
	}
	return types.NewTransportError(err)
}
