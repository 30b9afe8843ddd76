package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/profileapi/pkg/portal"
)

const maxRequestIDLength = 128

// RequestID keeps a caller supplied X-Request-ID or mints a new one, echoes it
// on the response and stores it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(portal.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
