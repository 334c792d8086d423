package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/go-notes/gate"
	"github.com/diewo77/go-notes/internal/models"
	"gorm.io/gorm"
)

// DBRoleResolver fetches user roles from the database.
// It implements gate.RoleResolver for uint user IDs.
type DBRoleResolver struct {
	DB *gorm.DB
}

// NewDBRoleResolver creates a new database-backed role resolver.
func NewDBRoleResolver(db *gorm.DB) *DBRoleResolver {
	return &DBRoleResolver{DB: db}
}

// Resolve looks up the user's role from the database, preloading permissions.
// Returns gate.ErrUserNotFound if the id does not resolve and
// gate.ErrNoRoleAssigned if the user record carries no role reference.
func (r *DBRoleResolver) Resolve(ctx context.Context, userID uint) (gate.Role, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Preload("Role.Permissions").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gate.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve role for user %d: %w", userID, err)
	}
	if user.Role == nil {
		return nil, gate.ErrNoRoleAssigned
	}
	return &dbRoleAdapter{role: user.Role}, nil
}

// dbRoleAdapter wraps a models.Role to implement the gate.Role interface.
type dbRoleAdapter struct {
	role *models.Role
}

func (a *dbRoleAdapter) Name() string { return a.role.Name }

// HasPermission checks the role's permission codes by exact match.
func (a *dbRoleAdapter) HasPermission(p gate.Permission) bool {
	for _, perm := range a.role.Permissions {
		if gate.Permission(perm.Code) == p {
			return true
		}
	}
	return false
}

// Permissions returns all permission codes as gate.Permission values.
func (a *dbRoleAdapter) Permissions() []gate.Permission {
	result := make([]gate.Permission, len(a.role.Permissions))
	for i, perm := range a.role.Permissions {
		result[i] = gate.Permission(perm.Code)
	}
	return result
}
