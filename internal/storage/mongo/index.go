package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// timelineDoc — BSON-проекция поискового документа события (_id = hex события).
type timelineDoc struct {
	ID            string               `bson:"_id"`
	RequestID     string               `bson:"request_id"`
	ParentID      string               `bson:"parent_id"`
	Type          string               `bson:"type"`
	CreatedBy     string               `bson:"created_by"`
	Payload       models.DumpedPayload `bson:"payload"`
	Revision      int64                `bson:"revision"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
	Children      []timelineDoc        `bson:"children,omitempty"`
	ChildrenCount int64                `bson:"children_count,omitempty"`
}

func (d timelineDoc) toModel() (models.TimelineEntry, error) {
	requestID, err := uuid.Parse(d.RequestID)
	if err != nil {
		return models.TimelineEntry{}, fmt.Errorf("bad request_id %q: %w", d.RequestID, err)
	}

	createdBy, err := uuid.Parse(d.CreatedBy)
	if err != nil {
		return models.TimelineEntry{}, fmt.Errorf("bad created_by %q: %w", d.CreatedBy, err)
	}

	entry := models.TimelineEntry{
		ID:            d.ID,
		RequestID:     requestID,
		ParentID:      d.ParentID,
		Type:          models.EventType(d.Type),
		CreatedBy:     createdBy,
		Payload:       d.Payload,
		Revision:      d.Revision,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
		Children:      []models.TimelineEntry{},
		ChildrenCount: d.ChildrenCount,
	}

	for _, child := range d.Children {
		sub, err := child.toModel()
		if err != nil {
			return models.TimelineEntry{}, err
		}

		entry.Children = append(entry.Children, sub)
	}

	return entry, nil
}

// Index записывает (upsert) поисковый документ события. Повторная запись
// того же события полностью заменяет документ.
func (m *Mongo) Index(ctx context.Context, entry models.TimelineEntry) error {
	const op = "storage/mongo/index/Index"

	doc := timelineDoc{
		ID:        entry.ID,
		RequestID: entry.RequestID.String(),
		ParentID:  strings.TrimSpace(entry.ParentID),
		Type:      string(entry.Type),
		CreatedBy: entry.CreatedBy.String(),
		Payload:   entry.Payload,
		Revision:  entry.Revision,
		CreatedAt: entry.CreatedAt.UTC().Truncate(time.Millisecond),
		UpdatedAt: entry.UpdatedAt.UTC().Truncate(time.Millisecond),
	}

	_, err := m.timeline.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: doc.ID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// normalizePage валидирует и нормализует page/size (нумерация страниц с 1).
func normalizePage(params models.PageParams) (skip, limit int64, err error) {
	if params.Page < 1 || params.Size < 1 {
		return 0, 0, storage.ErrInvalidPage
	}

	return int64(params.Page-1) * int64(params.Size), int64(params.Size), nil
}

// Timeline возвращает страницу корневых документов заявки.
//
// Превью детей и их полное число собираются на стороне БД двумя $lookup
// sub-pipeline: первый отдаёт не более previewSize последних ответов (новые
// первыми), второй — только $count. Чтение всех ответов с обрезкой на
// клиенте исключено намеренно.
func (m *Mongo) Timeline(ctx context.Context, requestID uuid.UUID, params models.PageParams, sort models.TimelineSort, previewSize int32) (*models.EventPage, error) {
	const op = "storage/mongo/index/Timeline"

	skip, limit, err := normalizePage(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// $limit в sub-pipeline должен быть строго положительным.
	if previewSize < 1 {
		previewSize = 1
	}

	order := -1
	if sort == models.SortOldest {
		order = 1
	}

	rootFilter := bson.D{
		{Key: "request_id", Value: requestID.String()},
		{Key: "parent_id", Value: ""},
	}

	total, err := m.timeline.CountDocuments(ctx, rootFilter)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	childMatch := bson.D{{Key: "$match", Value: bson.D{
		{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$parent_id", "$$root_id"}}}},
	}}}

	pipeline := bson.A{
		bson.D{{Key: "$match", Value: rootFilter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: order}, {Key: "_id", Value: order}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: timelineCollection},
			{Key: "let", Value: bson.D{{Key: "root_id", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				childMatch,
				bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}}},
				bson.D{{Key: "$limit", Value: int64(previewSize)}},
			}},
			{Key: "as", Value: "children"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: timelineCollection},
			{Key: "let", Value: bson.D{{Key: "root_id", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				childMatch,
				bson.D{{Key: "$count", Value: "n"}},
			}},
			{Key: "as", Value: "children_total"},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "children_count", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$children_total.n", 0}}},
				0,
			}}}},
		}}},
		bson.D{{Key: "$unset", Value: "children_total"}},
	}

	cur, err := m.timeline.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.TimelineEntry
	for cur.Next(ctx) {
		var doc timelineDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		entry, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, entry)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return &models.EventPage{Items: items, Total: total}, nil
}

// Replies возвращает страницу ответов одной ветки, от старых к новым.
func (m *Mongo) Replies(ctx context.Context, requestID uuid.UUID, parentID string, params models.PageParams) (*models.EventPage, error) {
	const op = "storage/mongo/index/Replies"

	skip, limit, err := normalizePage(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	filter := bson.D{
		{Key: "request_id", Value: requestID.String()},
		{Key: "parent_id", Value: strings.TrimSpace(parentID)},
	}

	total, err := m.timeline.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := m.timeline.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.TimelineEntry
	for cur.Next(ctx) {
		var doc timelineDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		entry, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, entry)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return &models.EventPage{Items: items, Total: total}, nil
}

// StripFileFields атомарно убирает обогащённые файловые поля из всех
// документов заявки, ссылающихся на fileID. Сам file_id в ссылке остаётся:
// комментарий продолжает указывать на удалённый файл.
func (m *Mongo) StripFileFields(ctx context.Context, requestID uuid.UUID, fileID string) error {
	const op = "storage/mongo/index/StripFileFields"

	filter := bson.D{
		{Key: "request_id", Value: requestID.String()},
		{Key: "payload.files.file_id", Value: fileID},
	}

	update := bson.D{{Key: "$unset", Value: bson.D{
		{Key: "payload.files.$[f].key", Value: ""},
		{Key: "payload.files.$[f].original_filename", Value: ""},
		{Key: "payload.files.$[f].size", Value: ""},
		{Key: "payload.files.$[f].mimetype", Value: ""},
		{Key: "payload.files.$[f].created", Value: ""},
		{Key: "payload.files.$[f].links", Value: ""},
	}}}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.D{{Key: "f.file_id", Value: fileID}}},
	})

	if _, err := m.timeline.UpdateMany(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Refresh — записи видны сразу после подтверждения, поэтому no-op.
// Метод оставлен в контракте под реализации с отложенной видимостью.
func (m *Mongo) Refresh(_ context.Context) error {
	return nil
}

// Проверка выполнения контракта индекса.
var _ storage.EventIndex = (*Mongo)(nil)
