package tracing

import (
	"context"

	"github.com/google/uuid"
)

// AttachTracingIntoContext gives the request a trace id and an empty span
// collector.
func AttachTracingIntoContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, TraceIdKey, uuid.NewString())
	return context.WithValue(ctx, TracingInfoKey, &TracingInfo{})
}
