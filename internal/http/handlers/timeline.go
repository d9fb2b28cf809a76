package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/requesthub/requests-service/internal/errors"
	"github.com/requesthub/requests-service/internal/http/middleware"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/service"
)

// Timeline — GET /requests/{id}/timeline?page&size&sort.
// Корневые записи с превью детей; sort: newest (дефолт) | oldest.
func (h *Handlers) Timeline(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	params, ok := pageParams(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	sort := models.TimelineSort(r.URL.Query().Get("sort"))
	if sort != "" && sort != models.SortNewest && sort != models.SortOldest {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	page, err := h.service.Timeline(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, params, sort)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToView(page))
}

// Replies — GET /requests/{id}/comments/{parent_id}/replies?page&size.
// Ответы одной ветки, от старых к новым.
func (h *Handlers) Replies(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	params, ok := pageParams(r)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	page, err := h.service.Replies(r.Context(), middleware.IdentityFrom(r.Context()),
		requestID, chi.URLParam(r, "parent_id"), params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToView(page))
}
