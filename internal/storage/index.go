package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
)

var (
	// ErrInvalidPage — некорректные параметры постраничной выдачи.
	ErrInvalidPage = errors.New("invalid page params")
)

// EventIndex — денормализованный поисковый индекс таймлайна.
//
// Индекс хранит по документу на событие; parent_id играет роль join-поля
// (parent/child). Превью детей собирается join-запросом с ограничением на
// стороне индекса, а не чтением всех ответов с обрезкой у клиента.
type EventIndex interface {
	// Index записывает (upsert) поисковый документ события.
	Index(ctx context.Context, entry models.TimelineEntry) error

	// Timeline возвращает страницу корневых документов заявки.
	// У каждого корня заполняются Children (не более previewSize последних
	// ответов, новые первыми) и ChildrenCount (полное число ответов).
	Timeline(ctx context.Context, requestID uuid.UUID, params models.PageParams, sort models.TimelineSort, previewSize int32) (*models.EventPage, error)

	// Replies возвращает страницу ответов одной ветки, от старых к новым.
	// Единственный путь, гарантирующий доступ к ответам за пределами превью.
	Replies(ctx context.Context, requestID uuid.UUID, parentID string, params models.PageParams) (*models.EventPage, error)

	// StripFileFields атомарно убирает обогащённые файловые поля (key,
	// original_filename, size, mimetype, created, links) из всех документов
	// заявки, ссылающихся на fileID; сам file_id в документе остаётся.
	StripFileFields(ctx context.Context, requestID uuid.UUID, fileID string) error

	// Refresh принудительно делает выполненные записи видимыми для чтения.
	// Вызывается сервисом между записью и чтением в одном обработчике
	// (read-after-write). Для синхронных реализаций — no-op.
	Refresh(ctx context.Context) error
}
