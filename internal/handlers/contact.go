package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/diewo77/go-notes/httpx"
	"github.com/diewo77/go-notes/internal/models"
	"github.com/diewo77/go-notes/validation"
	"gorm.io/gorm"
)

// ContactHandler persists messages from the public contact form.
type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Create stores a contact message.
// POST /contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	validation.Required("email", req.Email, v)
	validation.Required("phone", req.Phone, v)
	validation.Required("message", req.Message, v)
	if req.Name != "" {
		validation.MinLen("name", req.Name, 3, v)
		validation.MaxLen("name", req.Name, 50, v)
	}
	if req.Email != "" {
		validation.Email("email", req.Email, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation failed", v)
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := h.db.WithContext(r.Context()).Create(&contact).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to send contact message", nil)
		return
	}

	httpx.Message(w, http.StatusCreated, "contact message sent successfully")
}
