package interaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// This package carries the ID of the current user interaction (one button press in
// the dashboard) through a request context so every log line for it can be correlated.

// contextKey is a private type to avoid key collisions in the context.
type contextKey string

// IDKey is the context key for the interaction ID.
const IDKey = contextKey("interaction_id")

// SetID returns a new request with the interaction ID added to its context.
func SetID(r *http.Request, id uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), IDKey, id)
	return r.WithContext(ctx)
}

// GetID retrieves the interaction ID from the context.
func GetID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(IDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("no interaction ID in context")
	}
	return id, nil
}

// Middleware assigns a fresh interaction ID to every request and echoes it back in
// the X-Interaction-Id response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New()
		w.Header().Set("X-Interaction-Id", id.String())
		next.ServeHTTP(w, SetID(r, id))
	})
}
