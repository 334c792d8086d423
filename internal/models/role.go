package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is a named permission bundle. A user is assigned to one role,
// inheriting all its permissions. Roles are created administratively and
// must not be deleted while any user references them.
type Role struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	// Permissions holds the set of permission codes this role grants.
	// Many-to-many relationship via role_permissions join table.
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// Permission is a single opaque capability code, e.g. "updateNote".
// No registry of valid codes is enforced; roles and the route permission map
// must agree by convention.
type Permission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Code        string    `gorm:"uniqueIndex;size:100;not null" json:"code"`
	Description string    `gorm:"size:200" json:"description,omitempty"`
}
