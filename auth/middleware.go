package auth

import (
	"net/http"
	"strings"

	"github.com/diewo77/go-notes/httpx"
)

// RequireToken returns middleware that establishes caller identity from the
// Authorization header. A missing credential is 401; a credential that fails
// verification (malformed, bad signature, expired) is 403. On success the
// subject user id is attached to the request context for downstream stages.
//
// The middleware trusts the token signature alone and never consults the
// user store; permission checks downstream handle deleted users.
func RequireToken(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "access token missing", nil)
				return
			}
			claims, err := tokens.Verify(raw)
			if err != nil {
				httpx.JSONError(w, http.StatusForbidden, "invalid access token", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
