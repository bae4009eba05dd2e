package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/campusreg/campusreg-go/internal/crypto"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "campusreg_session"

type contextKey string

const userIDKey contextKey = "userID"

// SessionAuth returns middleware that guards routes behind a valid session
// cookie. Absent, malformed, tampered, and expired tokens all produce the
// same 401 with no detail about which check failed. On success the resolved
// user id is attached to the request context.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := crypto.ValidateToken(cookie.Value, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// UserIDFromCookie resolves the session cookie on an unguarded request.
// Used by the session-probe endpoint, which must answer 200 either way. The
// token is fully verified before the embedded user id is trusted.
func UserIDFromCookie(r *http.Request, secret string) (int64, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	claims, err := crypto.ValidateToken(cookie.Value, secret)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
