package telemetry

import "context"

// sendIDKey is the context key type used to store a send ID.
type sendIDKey struct{}

// WithSendID returns a child context that carries the provided send ID.
// If ctx is nil, context.Background() is used.
func WithSendID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sendIDKey{}, id)
}

// SendIDFromContext returns the send ID from ctx, if present.
// Returns "", false if the value is missing or not a non-empty string.
func SendIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v := ctx.Value(sendIDKey{})
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
