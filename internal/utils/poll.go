package utils

import (
	"context"
	"errors"
	"time"
)

var ErrPollTimeout = errors.New("condition not met before the poll timeout")

// ConditionFunc reports whether the awaited state has been observed.
type ConditionFunc func(ctx context.Context) (bool, error)

// PollUntil evaluates condition every interval until it holds, it errors, the
// context is done or timeout has elapsed. Time spent inside condition counts
// towards the timeout.
func PollUntil(ctx context.Context, interval, timeout time.Duration, condition ConditionFunc) error {
	if interval <= 0 {
		return errors.New("poll interval must be positive")
	}
	pollCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	deadline, _ := pollCtx.Deadline()

	// bounds the loop when sleeping is stubbed out
	attempts := int(timeout/interval) + 1
	for i := 0; ; i++ {
		done, err := condition(pollCtx)
		if err != nil {
			if ctx.Err() == nil && pollCtx.Err() != nil {
				return ErrPollTimeout
			}
			return err
		}
		if done {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		remaining := time.Until(deadline)
		if i >= attempts-1 || remaining <= 0 {
			return ErrPollTimeout
		}
		wait := interval
		if remaining < wait {
			wait = remaining
		}
		if err := SleepContext(pollCtx, wait); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return ErrPollTimeout
		}
	}
}
