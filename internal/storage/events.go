package storage

import (
	"context"
	"errors"

	"github.com/requesthub/requests-service/internal/models"
)

var (
	// ErrNotFoundEvent — событие таймлайна не найдено.
	ErrNotFoundEvent = errors.New("event not found")
	// ErrParentNotFound — указан parent_id, но родитель не найден.
	ErrParentNotFound = errors.New("parent not found")
)

// UnconditionalRevision — значение expectedRevision, отключающее условную
// проверку версии события (запись last-writer-wins).
const UnconditionalRevision int64 = -1

// Events описывает авторитетное хранилище событий таймлайна.
//
// Мутации существующих событий принимают expectedRevision: при
// expectedRevision >= 0 запись выполняется условно (revision должна
// совпасть, иначе ErrStaleWrite); UnconditionalRevision отключает проверку.
type Events interface {
	// CreateEvent создаёт событие (корневое или ответ) с revision = 0.
	// Входной Event должен содержать RequestID, Type, CreatedBy, Payload
	// и опционально ParentID. ID/Revision/метки времени проставляет хранилище.
	CreateEvent(ctx context.Context, event models.Event) (*models.Event, error)

	// EventByID возвращает событие по строковому идентификатору.
	// Если запись не найдена (включая битый формат id) — ErrNotFoundEvent.
	EventByID(ctx context.Context, id string) (*models.Event, error)

	// UpdatePayload заменяет payload комментария и инкрементирует revision.
	// Возможные ошибки: ErrNotFoundEvent, ErrStaleWrite.
	UpdatePayload(ctx context.Context, id string, payload models.EventPayload, expectedRevision int64) (*models.Event, error)

	// ConvertToLog переписывает событие на месте в лог-вариант с заданным
	// payload (мягкое удаление комментария): тип меняется на EventLog,
	// parent_id и позиция в таймлайне сохраняются, revision инкрементируется.
	// Возможные ошибки: ErrNotFoundEvent, ErrStaleWrite.
	ConvertToLog(ctx context.Context, id string, payload models.EventPayload, expectedRevision int64) (*models.Event, error)
}

// EventsStorage — верхнеуровневый интерфейс хранилища событий.
type EventsStorage interface {
	Events
	Close(ctx context.Context) error
}
