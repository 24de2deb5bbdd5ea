package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"famand_admin/internal/models"
)

// contextKey is a private type for context values to avoid collisions.
type contextKey string

// ContextAdminID is the key under which the authenticated operator's
// admin ID is stored in the request context.
const ContextAdminID contextKey = "contextAdminID"

// CheckJWTMiddleware validates the Authorization header of incoming requests.
// It expects a Bearer token, parses it, and stores the admin ID in the request
// context; any failure yields a 401 response without invoking the next handler.
func CheckJWTMiddleware() func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			if authHeader == "" {
				writeErrorResponse(w, "missing auth header", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeErrorResponse(w, "invalid auth header", http.StatusUnauthorized)
				return
			}

			claims, err := ParseToken(parts[1])
			if err != nil {
				writeErrorResponse(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextAdminID, claims.AdminID)
			h.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

// AdminIDFromContext extracts the admin ID placed by CheckJWTMiddleware.
// The second return value reports whether a valid ID was present.
func AdminIDFromContext(ctx context.Context) (int32, bool) {
	adminID, ok := ctx.Value(ContextAdminID).(int32)
	if !ok || adminID == 0 {
		return 0, false
	}
	return adminID, true
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
