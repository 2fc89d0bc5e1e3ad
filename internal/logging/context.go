package logging

import "context"

// RequestIDKey is the record attribute holding the request id.
const RequestIDKey = "request_id"

type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx carrying id. Both adapters add
// it to every record logged with that context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID puts the request id first so a dangling key in args cannot
// swallow it.
func withRequestID(ctx context.Context, args []any) []any {
	if id := RequestIDFromContext(ctx); id != "" {
		out := make([]any, 0, len(args)+2)
		out = append(out, RequestIDKey, id)
		return append(out, args...)
	}
	return args
}
