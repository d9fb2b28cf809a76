// mongo предоставляет реализацию storage.EventsStorage и storage.EventIndex
// на базе MongoDB.
//
// events.go — авторитетная коллекция событий таймлайна (условные обновления
// по revision).
// index.go — денормализованная коллекция поискового индекса: по документу на
// событие; превью детей собирается агрегатным join-запросом с ограничением
// на стороне БД.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/requesthub/requests-service/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	eventsCollection   = "events"
	timelineCollection = "timeline"
	defaultDBName      = "requests"
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg      *config.Config
	client   *mongodriver.Client
	db       *mongodriver.Database
	events   *mongodriver.Collection
	timeline *mongodriver.Collection
}

// New подключается к MongoDB, проверяет его, подготавливает коллекции и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.Mongo.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.Mongo.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.Mongo.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:      cfg,
		client:   cli,
		db:       db,
		events:   db.Collection(eventsCollection),
		timeline: db.Collection(timelineCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создает индексы, необходимые для таймлайна заявок.
// events:
//   - request_id + parent_id + created_at — выборка корней заявки;
//   - parent_id + created_at(asc) — ответы ветки.
//
// timeline (индекс-коллекция, _id = hex события):
//   - request_id + parent_id + created_at — страница корней;
//   - parent_id + created_at — join превью детей и страница ответов;
//   - request_id + payload.files.file_id — точечная зачистка файловых полей.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	eventModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}, {Key: "parent_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("request_parent_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "parent_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("parent_created_asc"),
		},
	}

	if _, err := m.events.Indexes().CreateMany(ctx, eventModels); err != nil {
		return fmt.Errorf("mongo ensure events indexes: %w", err)
	}

	timelineModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}, {Key: "parent_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("request_parent_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "parent_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("parent_created_asc"),
		},
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}, {Key: "payload.files.file_id", Value: 1}},
			Options: options.Index().SetName("request_file_refs"),
		},
	}

	if _, err := m.timeline.Indexes().CreateMany(ctx, timelineModels); err != nil {
		return fmt.Errorf("mongo ensure timeline indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает разумное значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
