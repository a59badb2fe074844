package log

import "context"

// WithRequestID stores a request id that every log line written with ctx will carry.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// WithUserID stores the authenticated user id for log correlation.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func fieldsFromContext(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if id, ok := ctx.Value(ctxKeyRequestID).(string); ok && id != "" {
		fields = append(fields, "request_id", id)
	}
	if id, ok := ctx.Value(ctxKeyUserID).(string); ok && id != "" {
		fields = append(fields, "user_id", id)
	}
	return fields
}
