package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithSpanRecordsSpan(t *testing.T) {
	info := &TracingInfo{}
	ctx := context.WithValue(context.Background(), TracingInfoKey, info)

	result, err := WrapWithSpan(ctx, "readVaults", func() (int, error) {
		return 42, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, result)
	if assert.Len(t, info.SpanDetails, 1) {
		assert.Equal(t, "readVaults", info.SpanDetails[0].Name)
	}
}

func TestWrapWithSpanWithoutTracingInfo(t *testing.T) {
	boom := errors.New("boom")
	_, err := WrapWithSpan(context.Background(), "noop", func() (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestAttachTracingIntoContext(t *testing.T) {
	ctx := AttachTracingIntoContext(context.Background())

	traceId, ok := ctx.Value(TraceIdKey).(string)
	assert.True(t, ok)
	assert.Len(t, traceId, 36)

	_, _ = WrapWithSpan(ctx, "span", func() (bool, error) { return true, nil })
	info, ok := ctx.Value(TracingInfoKey).(*TracingInfo)
	if assert.True(t, ok) {
		assert.Len(t, info.SpanDetails, 1)
	}
}
