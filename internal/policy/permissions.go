// Package policy wires the application's authorization: the database role
// resolver, the TTL role cache, the declarative route permission map, and the
// permission guard middleware that enforces it.
package policy

import "github.com/diewo77/go-notes/gate"

// Permission codes used across roles and the route map.
const (
	PermUpdateNote  gate.Permission = "updateNote"
	PermDeleteNote  gate.Permission = "deleteNote"
	PermManageRoles gate.Permission = "manageRoles"
)

// Routes returns the route permission map: the single declarative policy
// surface mapping protected route prefixes to required permissions.
// Paths with no matching prefix require no permission beyond authentication.
func Routes() *gate.RouteMap {
	return gate.NewRouteMap(
		gate.Rule{Prefix: "/notes/update", Permission: PermUpdateNote},
		gate.Rule{Prefix: "/notes/delete", Permission: PermDeleteNote},
		gate.Rule{Prefix: "/admin", Permission: PermManageRoles},
	)
}
