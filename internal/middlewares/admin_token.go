package middlewares

import (
	"net/http"
)

// AdminTokenMiddleware validates the admin token from the Authorization header
// The header value is compared byte-for-byte with the configured secret
func AdminTokenMiddleware(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from header
			providedToken := r.Header.Get("Authorization")

			// If no token provided or it doesn't match, return 401
			if providedToken == "" || providedToken != adminToken {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}

			// Token is valid, proceed to next handler
			next.ServeHTTP(w, r)
		})
	}
}
