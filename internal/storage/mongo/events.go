package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// eventDoc — BSON-проекция события в авторитетной коллекции.
type eventDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	RequestID string              `bson:"request_id"`
	ParentID  string              `bson:"parent_id"`
	Type      string              `bson:"type"`
	CreatedBy string              `bson:"created_by"`
	Payload   models.EventPayload `bson:"payload"`
	Revision  int64               `bson:"revision"`
	CreatedAt time.Time           `bson:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at"`
}

func (d eventDoc) toModel() (*models.Event, error) {
	requestID, err := uuid.Parse(d.RequestID)
	if err != nil {
		return nil, fmt.Errorf("bad request_id %q: %w", d.RequestID, err)
	}

	createdBy, err := uuid.Parse(d.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("bad created_by %q: %w", d.CreatedBy, err)
	}

	return &models.Event{
		ID:        d.ID.Hex(),
		RequestID: requestID,
		ParentID:  d.ParentID,
		Type:      models.EventType(d.Type),
		CreatedBy: createdBy,
		Payload:   d.Payload,
		Revision:  d.Revision,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}, nil
}

// CreateEvent вставляет событие (корневое или ответ) с revision = 0.
// Существование родителя и ограничение вложенности валидирует сервисный слой.
func (m *Mongo) CreateEvent(ctx context.Context, event models.Event) (*models.Event, error) {
	const op = "storage/mongo/events/CreateEvent"

	// MongoDB DateTime хранит миллисекунды.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := eventDoc{
		RequestID: event.RequestID.String(),
		ParentID:  strings.TrimSpace(event.ParentID),
		Type:      string(event.Type),
		CreatedBy: event.CreatedBy.String(),
		Payload:   event.Payload,
		Revision:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := m.events.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid

	return mustModel(op, doc)
}

// EventByID возвращает событие по идентификатору.
// Если запись не найдена — storage.ErrNotFoundEvent.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) EventByID(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage/mongo/events/EventByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundEvent)
	}

	var doc eventDoc
	if err := m.events.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundEvent)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mustModel(op, doc)
}

// UpdatePayload заменяет payload события и инкрементирует revision.
// При expectedRevision >= 0 обновление условно: несовпадение версии —
// storage.ErrStaleWrite. Отсутствие записи — storage.ErrNotFoundEvent.
func (m *Mongo) UpdatePayload(ctx context.Context, id string, payload models.EventPayload, expectedRevision int64) (*models.Event, error) {
	const op = "storage/mongo/events/UpdatePayload"

	return m.conditionalUpdate(ctx, op, id, expectedRevision, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "payload", Value: payload},
			{Key: "updated_at", Value: time.Now().UTC().Truncate(time.Millisecond)},
		}},
		{Key: "$inc", Value: bson.D{{Key: "revision", Value: 1}}},
	})
}

// ConvertToLog переписывает событие на месте в лог-вариант с заданным
// payload (мягкое удаление комментария): тип меняется на log, parent_id и
// позиция в таймлайне сохраняются, revision инкрементируется.
func (m *Mongo) ConvertToLog(ctx context.Context, id string, payload models.EventPayload, expectedRevision int64) (*models.Event, error) {
	const op = "storage/mongo/events/ConvertToLog"

	return m.conditionalUpdate(ctx, op, id, expectedRevision, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "type", Value: string(models.EventLog)},
			{Key: "payload", Value: payload},
			{Key: "updated_at", Value: time.Now().UTC().Truncate(time.Millisecond)},
		}},
		{Key: "$inc", Value: bson.D{{Key: "revision", Value: 1}}},
	})
}

// conditionalUpdate — общий путь условных обновлений события.
func (m *Mongo) conditionalUpdate(ctx context.Context, op, id string, expectedRevision int64, update bson.D) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundEvent)
	}

	filter := bson.D{{Key: "_id", Value: oid}}
	if expectedRevision != storage.UnconditionalRevision {
		filter = append(filter, bson.E{Key: "revision", Value: expectedRevision})
	}

	res, err := m.events.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		// Разбираемся: события нет вовсе или не совпала ревизия.
		count, err := m.events.CountDocuments(ctx, bson.D{{Key: "_id", Value: oid}})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if count == 0 {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundEvent)
		}

		return nil, fmt.Errorf("%s: %w", op, storage.ErrStaleWrite)
	}

	var doc eventDoc
	if err := m.events.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mustModel(op, doc)
}

func mustModel(op string, doc eventDoc) (*models.Event, error) {
	event, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.EventsStorage = (*Mongo)(nil)
