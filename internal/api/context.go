package api

import (
	"context"
	"net/http"

	"github.com/oklog/ulid/v2"
)

// EvaluationIDHeader carries the evaluation id back to the caller.
const EvaluationIDHeader = "X-Evaluation-ID"

// evaluationIDContextKey is the context key for the per-request evaluation id.
type evaluationIDContextKey struct{}

// WithEvaluationID returns a new context with the evaluation id attached.
func WithEvaluationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, evaluationIDContextKey{}, id)
}

// EvaluationIDFromContext extracts the evaluation id from the context.
// Returns an empty string if not present.
func EvaluationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(evaluationIDContextKey{}).(string)
	return id
}

// EvaluationIDMiddleware mints a ULID for every classification request,
// stores it in the request context and echoes it in EvaluationIDHeader.
func EvaluationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set(EvaluationIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithEvaluationID(r.Context(), id)))
	})
}
