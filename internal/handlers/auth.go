package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/diewo77/go-notes/auth"
	"github.com/diewo77/go-notes/gate"
	"github.com/diewo77/go-notes/httpx"
	"github.com/diewo77/go-notes/internal/models"
	"github.com/diewo77/go-notes/validation"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login and profile management.
type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
	hasher *auth.Hasher
	cache  *gate.CachedResolver[uint]
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, hasher *auth.Hasher, cache *gate.CachedResolver[uint]) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, hasher: hasher, cache: cache}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleName string `json:"roleName"`
	Mobile   string `json:"mobile"`
}

// Register creates a user with the named role.
// POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.Required("email", req.Email, v)
	validation.Required("password", req.Password, v)
	validation.Required("roleName", req.RoleName, v)
	validation.Required("mobile", req.Mobile, v)
	if req.Email != "" {
		validation.Email("email", req.Email, v)
	}
	if req.Mobile != "" {
		validation.Digits("mobile", req.Mobile, 10, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}

	var role models.Role
	if err := h.db.WithContext(r.Context()).Where("name = ?", req.RoleName).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusBadRequest, "invalid role name", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed to register user", nil)
		return
	}

	var existing int64
	h.db.WithContext(r.Context()).Model(&models.User{}).Where("email = ?", req.Email).Count(&existing)
	if existing > 0 {
		httpx.JSONError(w, http.StatusConflict, "email already registered", nil)
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to register user", nil)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: hashed,
		RoleID:   &role.ID,
	}
	if err := h.db.WithContext(r.Context()).Create(&user).Error; err != nil {
		// Unique index race: a concurrent registration with the same email
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			httpx.JSONError(w, http.StatusConflict, "email already registered", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed to register user", nil)
		return
	}

	httpx.Message(w, http.StatusCreated, "user registered successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues an access token.
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	var user models.User
	if err := h.db.WithContext(r.Context()).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "login failed", nil)
		return
	}

	if !h.hasher.Check(req.Password, user.Password) {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "login failed", nil)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{"accessToken": token})
}

// Me returns the caller's own profile with role and permissions.
// GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var user models.User
	err := h.db.WithContext(r.Context()).Preload("Role.Permissions").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to fetch user details", nil)
		return
	}

	httpx.Message(w, http.StatusOK, "user details fetched successfully", "user", user)
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// UpdateProfile updates the caller's own name and mobile.
// Empty fields keep their current value.
// PUT /auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Mobile != "" {
		v := make(validation.Violations)
		validation.Digits("mobile", req.Mobile, 10, v)
		if !v.Empty() {
			httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
			return
		}
	}

	var user models.User
	err := h.db.WithContext(r.Context()).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Mobile != "" {
		user.Mobile = req.Mobile
	}
	if err := h.db.WithContext(r.Context()).Save(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to update profile", nil)
		return
	}

	httpx.Message(w, http.StatusOK, "profile updated", "user", user)
}

// DeleteProfile deletes the caller's own account and synchronously drops any
// cached permission state for them. Tokens already issued stay
// signature-valid until expiry; subsequent role lookups fail, so guarded
// routes reject them.
// DELETE /auth/profile
func (h *AuthHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	res := h.db.WithContext(r.Context()).Delete(&models.User{}, userID)
	if res.Error != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to delete user", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "user not found", nil)
		return
	}

	h.cache.Invalidate(userID)

	httpx.Message(w, http.StatusOK, "user deleted successfully")
}
