package gate

import "context"

// StaticRole is a simple in-memory role implementation.
// Useful for testing or static configuration.
type StaticRole struct {
	name        string
	permissions map[Permission]bool
}

// NewStaticRole creates a role granting the given permissions.
func NewStaticRole(name string, permissions ...Permission) *StaticRole {
	r := &StaticRole{
		name:        name,
		permissions: make(map[Permission]bool),
	}
	for _, p := range permissions {
		r.permissions[p] = true
	}
	return r
}

func (r *StaticRole) Name() string { return r.name }

// HasPermission reports whether the role grants the requested permission.
func (r *StaticRole) HasPermission(p Permission) bool {
	return r.permissions[p]
}

// Permissions returns all permissions granted by this role.
func (r *StaticRole) Permissions() []Permission {
	perms := make([]Permission, 0, len(r.permissions))
	for p := range r.permissions {
		perms = append(perms, p)
	}
	return perms
}

// StaticResolver is a simple in-memory resolver for testing.
type StaticResolver[U comparable] struct {
	roles map[U]Role
}

// NewStaticResolver creates a resolver with no user-role mappings.
func NewStaticResolver[U comparable]() *StaticResolver[U] {
	return &StaticResolver[U]{roles: make(map[U]Role)}
}

// Set assigns a role to a user. A nil role marks the user as existing but
// role-less, so Resolve returns ErrNoRoleAssigned for them.
func (r *StaticResolver[U]) Set(user U, role Role) {
	r.roles[user] = role
}

// Resolve returns the role for the given user.
func (r *StaticResolver[U]) Resolve(_ context.Context, user U) (Role, error) {
	role, ok := r.roles[user]
	if !ok {
		return nil, ErrUserNotFound
	}
	if role == nil {
		return nil, ErrNoRoleAssigned
	}
	return role, nil
}
