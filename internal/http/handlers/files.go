package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/requesthub/requests-service/internal/errors"
	"github.com/requesthub/requests-service/internal/http/middleware"
	"github.com/requesthub/requests-service/internal/service"
)

// UploadFile — PUT /requests/{id}/files/upload/{filename}.
// Тело запроса — сырое содержимое файла; Content-Length обязателен
// (стриминговая запись без буферизации в памяти).
func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	filename := chi.URLParam(r, "filename")

	if r.ContentLength < 0 {
		apierrors.Write(w, r, http.StatusLengthRequired, "Content-Length required")
		return
	}

	entry, err := h.service.CreateFile(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, filename, r.Body, r.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fileToView(entry))
}

// ListFiles — GET /requests/{id}/files: упорядоченный список ключей.
func (h *Handlers) ListFiles(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	entries, err := h.service.ListFiles(r.Context(), middleware.IdentityFrom(r.Context()), requestID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}

	writeJSON(w, http.StatusOK, keys)
}

// FileContent — GET /requests/{id}/files/{key}/content: сырое содержимое
// с сохранённым mimetype.
func (h *Handlers) FileContent(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	rc, entry, err := h.service.FileContent(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.Write(w, r, http.StatusNotFound, "File not found")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", entry.Mimetype)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}

// DeleteFile — DELETE /requests/{id}/files/{key}: удаление по ключу.
// Не идемпотентно: повторное удаление — 404.
func (h *Handlers) DeleteFile(w http.ResponseWriter, r *http.Request) {
	h.deleteFile(w, r, chi.URLParam(r, "key"), "")
}

// DeleteFileBySelector — DELETE /requests/{id}/files?file_key=...&file_id=...
// Ровно один селектор обязателен; при обоих приоритет у file_key.
func (h *Handlers) DeleteFileBySelector(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.deleteFile(w, r, q.Get("file_key"), q.Get("file_id"))
}

func (h *Handlers) deleteFile(w http.ResponseWriter, r *http.Request, fileKey, fileID string) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	_, err := h.service.DeleteFile(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, fileKey, fileID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			apierrors.Write(w, r, http.StatusNotFound, "File not found")
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
