package utils

import (
	"context"
	"saude-connect/internal/pkg/constvars"

	"github.com/google/uuid"
)

// WithRequestID makes sure ctx carries a request id, generating one when the
// caller did not set it.
func WithRequestID(ctx context.Context) (context.Context, string) {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return ctx, requestID
	}
	requestID := uuid.NewString()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
