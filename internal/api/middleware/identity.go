package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// userIDHeader carries the authenticated caller's ID, set by the gateway
// in front of this service. Authentication itself happens upstream.
const userIDHeader = "X-User-Id"

// Identity resolves the caller's user ID from the gateway header and
// stores it in the request context. A missing or malformed header leaves
// the context without a user ID; handlers decide whether that is fatal.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get(userIDHeader))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID retrieves the caller's user ID from context.
// Returns uuid.Nil when no identity was resolved.
func GetUserID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(UserIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
