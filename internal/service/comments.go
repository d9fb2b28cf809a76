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

// CreateComment — корневой комментарий таймлайна заявки.
//
// Валидация payload (content + перекрёстные файловые ссылки) собирает все
// нарушения в одну ValidationGroupError; комментарий не персистится частично.
func (s *Service) CreateComment(ctx context.Context, identity models.Identity, requestID uuid.UUID, payload models.EventPayload) (*models.TimelineEntry, error) {
	const op = "service/comments/CreateComment"

	return s.createEvent(ctx, op, identity, requestID, "", payload)
}

// CreateReply — ответ на корневой комментарий. Разрешён ровно один уровень
// вложенности: ответ на ответ отклоняется с ErrNestedReply, запись не
// создаётся.
func (s *Service) CreateReply(ctx context.Context, identity models.Identity, requestID uuid.UUID, parentID string, payload models.EventPayload) (*models.TimelineEntry, error) {
	const op = "service/comments/CreateReply"

	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return s.createEvent(ctx, op, identity, requestID, parentID, payload)
}

// createEvent — общий путь создания комментария/ответа.
func (s *Service) createEvent(ctx context.Context, op string, identity models.Identity, requestID uuid.UUID, parentID string, payload models.EventPayload) (*models.TimelineEntry, error) {
	lg := log.From(ctx).With(
		"op", op,
		"request_id", requestID.String(),
		"user_id", identity.UserID.String(),
		"parent_id", parentID,
	)

	if identity.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionCreateComment, request) {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if parentID != "" {
		parent, err := s.events.EventByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFoundEvent) {
				lg.Warn("parent not found")
				return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			lg.Error("parent lookup failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if parent.RequestID != requestID {
			lg.Warn("parent belongs to another request")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		// Ответ возможен только на корневой комментарий.
		if parent.ParentID != "" {
			lg.Warn("nested reply rejected")
			return nil, fmt.Errorf("%s: %w", op, ErrNestedReply)
		}

		if parent.Type != models.EventComment {
			lg.Warn("reply to non-comment event rejected")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	if err := s.validatePayload(ctx, requestID, payload); err != nil {
		var group *ValidationGroupError
		if errors.As(err, &group) {
			lg.Warn("payload validation failed", "violations", len(group.Fields))
			return nil, fmt.Errorf("%s: %w", op, group)
		}

		lg.Error("payload validation error", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	payload.Content = strings.TrimSpace(payload.Content)

	event, err := s.events.CreateEvent(ctx, models.Event{
		RequestID: requestID,
		ParentID:  parentID,
		Type:      models.EventComment,
		CreatedBy: identity.UserID,
		Payload:   payload,
	})
	if err != nil {
		lg.Error("event create failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.touchActivity(ctx, requestID, event.CreatedAt)

	entry := s.indexEvent(ctx, event)

	lg.Info("comment created", "event_id", event.ID)

	return &entry, nil
}

// UpdateComment — обновление payload комментария на месте.
//
// expectedRevision — ожидаемая версия события (If-Match семантика);
// storage.UnconditionalRevision отключает проверку. После принятия записи
// запускается cleanup-реконсилиация: файлы, выпавшие из списка ссылок,
// удаляются (best-effort).
func (s *Service) UpdateComment(ctx context.Context, identity models.Identity, requestID uuid.UUID, commentID string, payload models.EventPayload, expectedRevision int64) (*models.TimelineEntry, error) {
	const op = "service/comments/UpdateComment"

	lg := log.From(ctx).With(
		"op", op,
		"request_id", requestID.String(),
		"event_id", commentID,
		"user_id", identity.UserID.String(),
	)

	request, event, err := s.commentForMutation(ctx, op, identity, requestID, commentID, access.ActionUpdateComment)
	if err != nil {
		return nil, err
	}

	if err := s.validatePayload(ctx, requestID, payload); err != nil {
		var group *ValidationGroupError
		if errors.As(err, &group) {
			lg.Warn("payload validation failed", "violations", len(group.Fields))
			return nil, fmt.Errorf("%s: %w", op, group)
		}

		lg.Error("payload validation error", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	payload.Content = strings.TrimSpace(payload.Content)

	updated, err := s.events.UpdatePayload(ctx, commentID, payload, expectedRevision)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundEvent):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStaleWrite):
			lg.Warn("stale write on comment update")
			return nil, fmt.Errorf("%s: %w", op, ErrStaleWrite)
		default:
			lg.Error("event update failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	// Реконсилиация: previous_ids - next_ids — осиротевшие файлы.
	if dropped := droppedFileIDs(event.Payload.Files, updated.Payload.Files); len(dropped) > 0 {
		lg.Info("cleanup of dropped file refs", "count", len(dropped))
		s.cleanupFiles(ctx, request, dropped)
	}

	s.touchActivity(ctx, requestID, updated.UpdatedAt)

	entry := s.indexEvent(ctx, updated)

	lg.Info("comment updated", "revision", updated.Revision)

	return &entry, nil
}

// DeleteComment — мягкое удаление: комментарий переписывается на месте в
// лог-событие с фиксированным payload, сохраняя позицию и связи в таймлайне.
// Все файлы, на которые ссылался комментарий, удаляются безусловно
// (best-effort).
func (s *Service) DeleteComment(ctx context.Context, identity models.Identity, requestID uuid.UUID, commentID string, expectedRevision int64) (*models.TimelineEntry, error) {
	const op = "service/comments/DeleteComment"

	lg := log.From(ctx).With(
		"op", op,
		"request_id", requestID.String(),
		"event_id", commentID,
		"user_id", identity.UserID.String(),
	)

	request, event, err := s.commentForMutation(ctx, op, identity, requestID, commentID, access.ActionDeleteComment)
	if err != nil {
		return nil, err
	}

	deleted, err := s.events.ConvertToLog(ctx, commentID, models.EventPayload{
		Content: models.DeletedCommentContent,
		Event:   models.DeletedCommentEvent,
	}, expectedRevision)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundEvent):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStaleWrite):
			lg.Warn("stale write on comment delete")
			return nil, fmt.Errorf("%s: %w", op, ErrStaleWrite)
		default:
			lg.Error("event delete failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	// Безусловная зачистка всех файлов из payload до удаления.
	if refs := fileIDs(event.Payload.Files); len(refs) > 0 {
		lg.Info("cleanup of referenced files", "count", len(refs))
		s.cleanupFiles(ctx, request, refs)
	}

	s.touchActivity(ctx, requestID, deleted.UpdatedAt)

	entry := s.indexEvent(ctx, deleted)

	lg.Info("comment deleted")

	return &entry, nil
}

// commentForMutation — общий резолв и авторизация мутаций комментария:
// заявка существует, событие принадлежит заявке, тип — комментарий
// (лог-события не редактируются), автор — сам пользователь либо admin.
func (s *Service) commentForMutation(ctx context.Context, op string, identity models.Identity, requestID uuid.UUID, commentID string, action access.Action) (*models.Request, *models.Event, error) {
	lg := log.From(ctx).With("op", op, "request_id", requestID.String(), "event_id", commentID)

	if identity.UserID == uuid.Nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, nil, err
	}

	if !s.policy.Can(identity, action, request) {
		lg.Warn("permission denied")
		return nil, nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	event, err := s.events.EventByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundEvent) {
			lg.Warn("comment not found")
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("event lookup failed", "err", err)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if event.RequestID != requestID || event.Type != models.EventComment {
		lg.Warn("comment not found on request")
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if event.CreatedBy != identity.UserID && !isAdmin(identity) {
		lg.Warn("permission denied: not an author")
		return nil, nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return request, event, nil
}

// fileIDs — список идентификаторов файловых ссылок payload.
func fileIDs(refs []models.FileRef) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if id := strings.TrimSpace(ref.FileID); id != "" {
			out = append(out, id)
		}
	}

	return out
}

// droppedFileIDs — previous_ids - next_ids в порядке появления в previous.
func droppedFileIDs(previous, next []models.FileRef) []string {
	kept := make(map[string]struct{}, len(next))
	for _, ref := range next {
		kept[strings.TrimSpace(ref.FileID)] = struct{}{}
	}

	var dropped []string
	for _, id := range fileIDs(previous) {
		if _, ok := kept[id]; !ok {
			dropped = append(dropped, id)
		}
	}

	return dropped
}
