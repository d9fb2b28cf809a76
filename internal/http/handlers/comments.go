package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/requesthub/requests-service/internal/errors"
	"github.com/requesthub/requests-service/internal/http/middleware"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/service"
)

// commentPayload — тело комментария/ответа от клиента.
type commentPayload struct {
	Content string `json:"content"`
	Format  string `json:"format,omitempty"`
	Files   []struct {
		FileID string `json:"file_id"`
	} `json:"files,omitempty"`
}

func (p commentPayload) toModel() models.EventPayload {
	payload := models.EventPayload{
		Content: p.Content,
		Format:  p.Format,
	}

	for _, f := range p.Files {
		payload.Files = append(payload.Files, models.FileRef{FileID: f.FileID})
	}

	return payload
}

// CreateComment — POST /requests/{id}/comments.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var in commentPayload
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	entry, err := h.service.CreateComment(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// CreateReply — POST /requests/{id}/comments/{parent_id}/reply.
// Разрешён один уровень вложенности.
func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var in commentPayload
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	entry, err := h.service.CreateReply(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, chi.URLParam(r, "parent_id"), in.toModel())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// UpdateComment — PUT /requests/{id}/comments/{comment_id}.
// If-Match с ревизией события включает условную запись.
func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	revision, ok := expectedRevision(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var in commentPayload
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	entry, err := h.service.UpdateComment(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, chi.URLParam(r, "comment_id"), in.toModel(), revision)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// DeleteComment — DELETE /requests/{id}/comments/{comment_id}.
// Мягкое удаление: запись остаётся в таймлайне лог-событием.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	revision, ok := expectedRevision(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	_, err := h.service.DeleteComment(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, chi.URLParam(r, "comment_id"), revision)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
