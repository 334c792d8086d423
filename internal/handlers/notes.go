package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diewo77/go-notes/auth"
	"github.com/diewo77/go-notes/httpx"
	"github.com/diewo77/go-notes/internal/models"
	"github.com/diewo77/go-notes/validation"
	"gorm.io/gorm"
)

// NoteHandler serves the caller's notes. Every query is scoped to the
// caller's user id: reads filter on it, creates stamp it, updates and
// deletes match on (id, user_id). A miss on another owner's note is
// indistinguishable from a missing note and reported as 404.
type NoteHandler struct {
	db *gorm.DB
}

func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{db: db}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (req noteRequest) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("title", req.Title, v)
	validation.Required("content", req.Content, v)
	if req.Title != "" {
		validation.MinLen("title", req.Title, 3, v)
		validation.MaxLen("title", req.Title, 100, v)
	}
	return v
}

// List returns the caller's notes, latest first.
// GET /notes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var notes []models.Note
	if err := h.db.WithContext(r.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to fetch notes", nil)
		return
	}

	httpx.Message(w, http.StatusOK, "notes fetched successfully", "notes", notes)
}

// Get returns one of the caller's notes by id.
// GET /notes/{id}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id := r.PathValue("id")

	var note models.Note
	err := h.db.WithContext(r.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "note not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to fetch note", nil)
		return
	}

	httpx.Message(w, http.StatusOK, "note fetched successfully", "note", note)
}

// Create stores a new note owned by the caller.
// POST /notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "failed to create note", v)
		return
	}

	note := models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.db.WithContext(r.Context()).Create(&note).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to create note", nil)
		return
	}

	httpx.Message(w, http.StatusCreated, "note created successfully", "note", note)
}

// Update modifies one of the caller's notes.
// PUT /notes/update/{id}
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id := r.PathValue("id")

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "failed to update note", v)
		return
	}

	var note models.Note
	err := h.db.WithContext(r.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "note not found", nil)
		return
	}
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to update note", nil)
		return
	}

	note.Title = req.Title
	note.Content = req.Content
	if err := h.db.WithContext(r.Context()).Save(&note).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to update note", nil)
		return
	}

	httpx.Message(w, http.StatusOK, "note updated successfully", "note", note)
}

// Delete removes one of the caller's notes.
// DELETE /notes/delete/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id := r.PathValue("id")

	res := h.db.WithContext(r.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Note{})
	if res.Error != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed to delete note", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "note not found", nil)
		return
	}

	httpx.Message(w, http.StatusOK, "note deleted successfully")
}
