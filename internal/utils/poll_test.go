package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollUntil(t *testing.T) {
	var slept []time.Duration
	SetSleepFunc(func(d time.Duration) { slept = append(slept, d) })
	defer ResetSleepFunc()

	calls := 0
	err := PollUntil(context.Background(), time.Second, 10*time.Second, func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, slept)
}

func TestPollUntilTimesOut(t *testing.T) {
	SetSleepFunc(func(time.Duration) {})
	defer ResetSleepFunc()

	calls := 0
	err := PollUntil(context.Background(), time.Second, 4*time.Second, func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, 5, calls)
}

func TestPollUntilStopsOnError(t *testing.T) {
	SetSleepFunc(func(time.Duration) {})
	defer ResetSleepFunc()

	boom := errors.New("rpc down")
	err := PollUntil(context.Background(), time.Second, 10*time.Second, func(ctx context.Context) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestPollUntilHonoursContext(t *testing.T) {
	SetSleepFunc(func(time.Duration) {})
	defer ResetSleepFunc()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := PollUntil(ctx, time.Second, 10*time.Second, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPollUntilCountsTimeSpentInCondition(t *testing.T) {
	SetSleepFunc(func(time.Duration) {})
	defer ResetSleepFunc()

	calls := 0
	start := time.Now()
	err := PollUntil(context.Background(), time.Millisecond, 50*time.Millisecond, func(ctx context.Context) (bool, error) {
		calls++
		// a slow node call that only returns once the poll deadline cancels it
		<-ctx.Done()
		return false, ctx.Err()
	})
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPollUntilWakesOnCancel(t *testing.T) {
	ResetSleepFunc()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	start := time.Now()
	err := PollUntil(ctx, time.Hour, 2*time.Hour, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleepContext(t *testing.T) {
	ResetSleepFunc()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SleepContext(ctx, time.Hour), context.Canceled)
	assert.NoError(t, SleepContext(context.Background(), time.Millisecond))
}
