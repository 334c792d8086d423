package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated user in the system.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Email     string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name      string         `gorm:"size:255" json:"name,omitempty"`
	Mobile    string         `gorm:"size:15" json:"mobile,omitempty"`
	Password  string         `gorm:"size:255;not null" json:"-"` // Hashed, never exposed in JSON
	// RoleID links the user to exactly one role.
	// A nil value means the user has no role assigned (limited access).
	RoleID *uint `gorm:"index" json:"role_id,omitempty"`
	Role   *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}
