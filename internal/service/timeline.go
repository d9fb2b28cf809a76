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

// normalizeParams приводит page/size к допустимым значениям:
// page < 1 -> 1; size <= 0 -> дефолт из конфигурации; size > max -> max.
func (s *Service) normalizeParams(params models.PageParams) models.PageParams {
	if params.Page < 1 {
		params.Page = 1
	}

	if params.Size <= 0 {
		params.Size = s.cfg.Timeline.Default
	}

	if params.Size > s.cfg.Timeline.Max {
		params.Size = s.cfg.Timeline.Max
	}

	return params
}

// Timeline — страница корневых записей таймлайна заявки. У каждого корня
// children — превью последних ответов (не более preview_size), новые
// первыми, и children_count — полное число ответов.
func (s *Service) Timeline(ctx context.Context, identity models.Identity, requestID uuid.UUID, params models.PageParams, sort models.TimelineSort) (*models.EventPage, error) {
	const op = "service/timeline/Timeline"

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionReadTimeline, request) {
		log.From(ctx).Warn("permission denied", "op", op, "request_id", requestID.String())
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if sort != models.SortOldest {
		sort = models.SortNewest
	}

	page, err := s.index.Timeline(ctx, requestID, s.normalizeParams(params), sort, s.cfg.Timeline.PreviewSize)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPage) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("timeline query failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// Replies — страница ответов одной ветки, от старых к новым. Единственный
// путь, гарантирующий доступ к ответам за пределами превью.
func (s *Service) Replies(ctx context.Context, identity models.Identity, requestID uuid.UUID, parentID string, params models.PageParams) (*models.EventPage, error) {
	const op = "service/timeline/Replies"

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionReadTimeline, request) {
		log.From(ctx).Warn("permission denied", "op", op, "request_id", requestID.String())
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Родитель должен существовать и принадлежать заявке.
	parent, err := s.events.EventByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundEvent) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.From(ctx).Error("parent lookup failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if parent.RequestID != requestID {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	page, err := s.index.Replies(ctx, requestID, parentID, s.normalizeParams(params))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPage) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		log.From(ctx).Error("replies query failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}
