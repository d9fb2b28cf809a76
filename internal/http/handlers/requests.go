package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/requesthub/requests-service/internal/errors"
	"github.com/requesthub/requests-service/internal/http/middleware"
	"github.com/requesthub/requests-service/internal/service"
)

type createRequestRequest struct {
	Title string `json:"title"`
}

func (h *Handlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var in createRequestRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	result, err := h.service.CreateRequest(r.Context(), middleware.IdentityFrom(r.Context()), in.Title)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestToView(result))
}

func (h *Handlers) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDParam(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	result, err := h.service.RequestByID(r.Context(), middleware.IdentityFrom(r.Context()), requestID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestToView(result))
}
