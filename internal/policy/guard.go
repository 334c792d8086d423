package policy

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-notes/auth"
	"github.com/diewo77/go-notes/gate"
	"github.com/diewo77/go-notes/httpx"
)

// Guard is the permission-check pipeline stage. It runs after the token
// middleware has established caller identity, consults the route permission
// map for the request path, and resolves the caller's role only when a
// permission is actually required.
type Guard struct {
	routes   *gate.RouteMap
	resolver gate.RoleResolver[uint]
}

// NewGuard creates a guard over the given route map and role resolver.
// Pass the cached resolver here; the guard performs one external lookup per
// guarded request at most.
func NewGuard(routes *gate.RouteMap, resolver gate.RoleResolver[uint]) *Guard {
	return &Guard{routes: routes, resolver: resolver}
}

// Middleware enforces the route permission map.
// Requests to unmapped paths pass through. A role-resolution failure or a
// missing permission is forbidden; an unexpected store fault is 500.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		required, ok := g.routes.Required(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			httpx.JSONError(w, http.StatusUnauthorized, "access token missing", nil)
			return
		}

		role, err := g.resolver.Resolve(r.Context(), userID)
		switch {
		case errors.Is(err, gate.ErrUserNotFound), errors.Is(err, gate.ErrNoRoleAssigned):
			httpx.JSONError(w, http.StatusForbidden, "access denied: no role assigned", nil)
			return
		case err != nil:
			httpx.JSONError(w, http.StatusInternalServerError, "authorization failed", nil)
			return
		}

		if !role.HasPermission(required) {
			httpx.JSONError(w, http.StatusForbidden, "access denied: insufficient permissions", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
