package premiumerrors

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type traceCtxKey struct{}

var traceKey traceCtxKey

// TraceIDFromRequest returns the request's trace ID. The X-Request-Id header
// wins over an ID stored in the request context.
func TraceIDFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if id := r.Header.Get(HeaderTraceID); id != "" {
		return id
	}
	return TraceIDFromContext(r.Context())
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, if any.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey).(string)
	return id
}

// WithTraceID returns a copy of ctx carrying id. Billing calls made with the
// returned context report errors under the same trace as the HTTP request.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey, id)
}

// TraceMiddleware makes sure every request has a trace ID, reusing the
// caller's X-Request-Id when present and minting a UUIDv4 otherwise.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := TraceIDFromRequest(r)
		if id == "" {
			id = uuid.NewString()
		}
		next.ServeHTTP(w, r.WithContext(WithTraceID(r.Context(), id)))
	})
}
