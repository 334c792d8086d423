package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diewo77/go-notes/gate"
	"github.com/diewo77/go-notes/httpx"
	"github.com/diewo77/go-notes/internal/models"
	"github.com/diewo77/go-notes/validation"
	"gorm.io/gorm"
)

// AdminHandler manages roles and role assignments. Every mutation here
// invalidates affected role-cache entries before responding, so a permission
// change is never observable as a stale allow.
type AdminHandler struct {
	db    *gorm.DB
	cache *gate.CachedResolver[uint]
}

func NewAdminHandler(db *gorm.DB, cache *gate.CachedResolver[uint]) *AdminHandler {
	return &AdminHandler{db: db, cache: cache}
}

// ListRoles returns all roles with their permissions.
// GET /admin/roles
func (h *AdminHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	var roles []models.Role
	if err := h.db.WithContext(r.Context()).Preload("Permissions").Order("name").Find(&roles).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to fetch roles", nil)
		return
	}
	httpx.Message(w, http.StatusOK, "roles fetched successfully", "roles", roles)
}

type createRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// CreateRole creates a role granting the given permission codes.
// Unknown codes are created on the fly; the set of valid codes is a
// convention, not a registry.
// POST /admin/roles
func (h *AdminHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req createRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}

	var existing int64
	h.db.WithContext(r.Context()).Model(&models.Role{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		httpx.JSONError(w, http.StatusConflict, "role already exists", nil)
		return
	}

	role := models.Role{Name: req.Name}
	for _, code := range req.Permissions {
		var perm models.Permission
		if err := h.db.WithContext(r.Context()).Where("code = ?", code).FirstOrCreate(&perm, models.Permission{Code: code}).Error; err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "failed to create role", nil)
			return
		}
		role.Permissions = append(role.Permissions, perm)
	}

	if err := h.db.WithContext(r.Context()).Create(&role).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to create role", nil)
		return
	}

	// A new role affects no existing assignment; nothing to invalidate.
	httpx.Message(w, http.StatusCreated, "role created successfully", "role", role)
}

type assignRoleRequest struct {
	RoleName string `json:"roleName"`
}

// AssignRole assigns the named role to a user and synchronously invalidates
// that user's cached role.
// POST /admin/users/{id}/role
func (h *AdminHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.RoleName == "" {
		httpx.JSONError(w, http.StatusBadRequest, "roleName is required", nil)
		return
	}

	var role models.Role
	if err := h.db.WithContext(r.Context()).Where("name = ?", req.RoleName).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusBadRequest, "invalid role name", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed to assign role", nil)
		return
	}

	var user models.User
	err := h.db.WithContext(r.Context()).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to assign role", nil)
		return
	}

	user.RoleID = &role.ID
	if err := h.db.WithContext(r.Context()).Save(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to assign role", nil)
		return
	}

	// Invalidate before responding: the next permission check must see the
	// new role, stale-allow is a security defect.
	h.cache.Invalidate(user.ID)

	httpx.Message(w, http.StatusOK, "role assigned successfully")
}
