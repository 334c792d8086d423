// Package gate provides role-based authorization primitives: opaque
// permission codes, a resolver from user to role, a TTL cache with explicit
// invalidation, and a declarative route-to-permission map. The package has no
// dependency on domain models or on the HTTP layer and can be reused across
// web applications.
//
// The package uses generics to allow any user/subject type:
//   - RoleResolver[uint] for simple user ID based auth
//   - RoleResolver[string] for external subject identifiers
package gate

import "context"

// Permission is an opaque capability code gating one class of protected
// operation, e.g. "updateNote". Codes are matched by exact equality; the set
// of valid codes is a convention shared between roles and the route map.
type Permission string

// Role is a named permission bundle assigned to a user.
type Role interface {
	Name() string
	HasPermission(p Permission) bool
	Permissions() []Permission
}

// RoleResolver resolves a user to their role.
// U is the user type (e.g., uint for userID).
// Implementations return ErrUserNotFound when the user does not exist and
// ErrNoRoleAssigned when the user record carries no role reference.
type RoleResolver[U any] interface {
	Resolve(ctx context.Context, user U) (Role, error)
}
