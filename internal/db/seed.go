package db

import (
	"fmt"

	"github.com/diewo77/go-notes/internal/models"
	"gorm.io/gorm"
)

// Seed creates the core permissions and the default roles.
// Uses FirstOrCreate throughout so re-running is a no-op.
func Seed(db *gorm.DB) error {
	permissions := []struct {
		Code        string
		Description string
	}{
		{"updateNote", "Update own notes"},
		{"deleteNote", "Delete own notes"},
		{"manageRoles", "Administer roles and role assignments"},
	}

	byCode := make(map[string]models.Permission)
	for _, p := range permissions {
		perm := models.Permission{Code: p.Code, Description: p.Description}
		if err := db.Where("code = ?", p.Code).FirstOrCreate(&perm).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", p.Code, err)
		}
		byCode[p.Code] = perm
	}

	roles := []struct {
		Name  string
		Codes []string
	}{
		{"member", nil},
		{"editor", []string{"updateNote", "deleteNote"}},
		{"admin", []string{"updateNote", "deleteNote", "manageRoles"}},
	}

	for _, r := range roles {
		role := models.Role{Name: r.Name}
		if err := db.Where("name = ?", r.Name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", r.Name, err)
		}
		var perms []models.Permission
		for _, code := range r.Codes {
			perms = append(perms, byCode[code])
		}
		if len(perms) > 0 {
			if err := db.Model(&role).Association("Permissions").Replace(perms); err != nil {
				return fmt.Errorf("seed role %s permissions: %w", r.Name, err)
			}
		}
	}
	return nil
}
