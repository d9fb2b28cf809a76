package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/access"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/pkg/log"
	"github.com/requesthub/requests-service/internal/storage"
)

// CreateRequest — создание заявки от имени identity.
func (s *Service) CreateRequest(ctx context.Context, identity models.Identity, title string) (*models.Request, error) {
	const op = "service/requests/CreateRequest"

	lg := log.From(ctx).With("op", op, "user_id", identity.UserID.String())

	if identity.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.requests.CreateRequest(ctx, models.Request{
		Title:     title,
		CreatedBy: identity.UserID,
	})
	if err != nil {
		lg.Error("storage error on CreateRequest", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("request created", "request_id", result.ID.String(), "number", result.Number)

	return result, nil
}

// RequestByID — чтение заявки с проверкой права read_request.
func (s *Service) RequestByID(ctx context.Context, identity models.Identity, id uuid.UUID) (*models.Request, error) {
	const op = "service/requests/RequestByID"

	request, err := s.requestByID(ctx, op, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionReadRequest, request) {
		log.From(ctx).Warn("permission denied", "op", op, "request_id", id.String())
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return request, nil
}

// requestByID — общий резолв заявки с маппингом ошибок хранилища.
func (s *Service) requestByID(ctx context.Context, op string, id uuid.UUID) (*models.Request, error) {
	request, err := s.requests.RequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundRequest) {
			log.From(ctx).Warn("request not found", "op", op, "request_id", id.String())
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("request lookup failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return request, nil
}
