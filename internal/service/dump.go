package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/pkg/log"
)

// dumpEvent строит поисковый документ события: read-through обогащение
// файловых ссылок живыми данными FileEntry. Ссылки на уже удалённые файлы
// остаются в документе, но без дополнительных полей — дамп выполняется и
// при удалении комментария, когда файлы могли уйти раньше.
func (s *Service) dumpEvent(ctx context.Context, event *models.Event) (models.TimelineEntry, error) {
	payload := models.DumpedPayload{
		Content: event.Payload.Content,
		Format:  event.Payload.Format,
		Event:   event.Payload.Event,
	}

	if len(event.Payload.Files) > 0 {
		ids := make([]uuid.UUID, 0, len(event.Payload.Files))
		for _, ref := range event.Payload.Files {
			if id, err := uuid.Parse(strings.TrimSpace(ref.FileID)); err == nil {
				ids = append(ids, id)
			}
		}

		entries, err := s.requests.FilesByIDs(ctx, event.RequestID, ids)
		if err != nil {
			return models.TimelineEntry{}, err
		}

		byID := make(map[string]models.FileEntry, len(entries))
		for _, entry := range entries {
			byID[entry.ID.String()] = entry
		}

		for _, ref := range event.Payload.Files {
			dumped := models.DumpedFile{FileID: ref.FileID}

			if entry, ok := byID[canonicalFileID(ref.FileID)]; ok {
				links := FileLinks(event.RequestID, entry.Key)
				created := entry.CreatedAt.UTC()

				dumped.Key = entry.Key
				dumped.OriginalFilename = entry.OriginalFilename
				dumped.Size = entry.Size
				dumped.Mimetype = entry.Mimetype
				dumped.Created = &created
				dumped.Links = &links
			}

			payload.Files = append(payload.Files, dumped)
		}
	}

	return models.TimelineEntry{
		ID:        event.ID,
		RequestID: event.RequestID,
		ParentID:  event.ParentID,
		Type:      event.Type,
		CreatedBy: event.CreatedBy,
		Payload:   payload,
		Revision:  event.Revision,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
		Children:  []models.TimelineEntry{},
	}, nil
}

// indexEvent денормализует событие в индекс и делает запись видимой для
// чтения (read-after-write в пределах одного обработчика). Ошибки индекса
// не фатальны для уже зафиксированной мутации.
func (s *Service) indexEvent(ctx context.Context, event *models.Event) models.TimelineEntry {
	lg := log.From(ctx).With("event_id", event.ID, "request_id", event.RequestID.String())

	entry, err := s.dumpEvent(ctx, event)
	if err != nil {
		lg.Warn("event dump failed, indexing bare payload", "err", err)
		entry = bareEntry(event)
	}

	if err := s.index.Index(ctx, entry); err != nil {
		lg.Warn("event indexing failed", "err", err)
		return entry
	}

	if err := s.index.Refresh(ctx); err != nil {
		lg.Warn("index refresh failed", "err", err)
	}

	return entry
}

// bareEntry — документ без файлового обогащения (fallback-путь дампа).
func bareEntry(event *models.Event) models.TimelineEntry {
	payload := models.DumpedPayload{
		Content: event.Payload.Content,
		Format:  event.Payload.Format,
		Event:   event.Payload.Event,
	}

	for _, ref := range event.Payload.Files {
		payload.Files = append(payload.Files, models.DumpedFile{FileID: ref.FileID})
	}

	return models.TimelineEntry{
		ID:        event.ID,
		RequestID: event.RequestID,
		ParentID:  event.ParentID,
		Type:      event.Type,
		CreatedBy: event.CreatedBy,
		Payload:   payload,
		Revision:  event.Revision,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}

// touchActivity сдвигает last_activity_at заявки по записи в таймлайн.
// Неуспех не фатален.
func (s *Service) touchActivity(ctx context.Context, requestID uuid.UUID, at time.Time) {
	if err := s.requests.TouchActivity(ctx, requestID, at); err != nil {
		log.From(ctx).Warn("touch activity failed", "request_id", requestID.String(), "err", err)
	}
}
