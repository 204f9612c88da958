package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/revisaquest-backend/pkg/ctxutil"
)

// UserIDHeader identifies the acting user. The header is trusted as-is:
// authentication happens upstream (reverse proxy or identity-aware gateway).
const UserIDHeader = "X-User-ID"

// UserID returns middleware that requires a valid X-User-ID header and
// stores the parsed UUID in the request context. Requests without a valid
// header are rejected with 401.
func UserID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				writeAuthError(w, "missing "+UserIDHeader+" header")
				return
			}
			userID, err := uuid.Parse(raw)
			if err != nil || userID == uuid.Nil {
				writeAuthError(w, "invalid "+UserIDHeader+" header")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`)) //nolint:errcheck
}
