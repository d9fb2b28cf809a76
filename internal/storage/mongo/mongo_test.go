package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/config"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в ENV DATABASE_URL, а каждая спецификация
// создаёт свою БД с уникальным именем (см. newTestConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	// Получаем host:port и формируем URI без имени БД.
	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	_ = os.Setenv("DATABASE_URL", uri)

	// Запускаем тесты пакета.
	code := m.Run()

	// Гасим контейнер *после* выполнения пакета тестов.
	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	dbName := "requests_test_" + uuid.New().String()
	if baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL + dbName
	} else {
		baseURL = baseURL + "/" + dbName
	}

	return &config.Config{
		Mongo: config.MongoConfig{
			URL: baseURL,
		},
		Timeline: config.TimelineConfig{
			PreviewSize: 5,
			Default:     25,
			Max:         100,
		},
	}
}

// mustNewMongo создаёт подключение к созданной Test DB и регистрирует очистку по завершении теста.
func mustNewMongo(t *testing.T, cfg *config.Config) *Mongo {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("cannot connect to MongoDB in container: %v (DATABASE_URL=%s)", err, cfg.Mongo.URL)
	}

	// При завершении теста — подчистить БД и соединение.
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

// TestNormalizePage — граничные случаи параметров страницы.
func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		in        models.PageParams
		wantSkip  int64
		wantLimit int64
		wantErr   bool
	}{
		{"first-page", models.PageParams{Page: 1, Size: 10}, 0, 10, false},
		{"third-page", models.PageParams{Page: 3, Size: 25}, 50, 25, false},
		{"zero-page", models.PageParams{Page: 0, Size: 10}, 0, 0, true},
		{"zero-size", models.PageParams{Page: 1, Size: 0}, 0, 0, true},
		{"negative", models.PageParams{Page: -1, Size: -1}, 0, 0, true},
	}
	for _, tt := range tests {
		skip, limit, err := normalizePage(tt.in)
		if tt.wantErr {
			if !errors.Is(err, storage.ErrInvalidPage) {
				t.Errorf("%s: want ErrInvalidPage, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if skip != tt.wantSkip || limit != tt.wantLimit {
			t.Errorf("%s: want (%d, %d), got (%d, %d)", tt.name, tt.wantSkip, tt.wantLimit, skip, limit)
		}
	}
}

// newComment — заготовка корневого комментария.
func newComment(requestID uuid.UUID, content string) models.Event {
	return models.Event{
		RequestID: requestID,
		Type:      models.EventComment,
		CreatedBy: uuid.New(),
		Payload:   models.EventPayload{Content: content, Format: "html"},
	}
}

func TestCreateEvent_And_EventByID(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	requestID := uuid.New()

	out, err := m.CreateEvent(ctx, newComment(requestID, "hello"))
	if err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if out.Revision != 0 {
		t.Fatalf("new event revision = %d, want 0", out.Revision)
	}

	got, err := m.EventByID(ctx, out.ID)
	if err != nil {
		t.Fatalf("EventByID error: %v", err)
	}
	if got.Payload.Content != "hello" || got.RequestID != requestID {
		t.Fatalf("unexpected event: %+v", got)
	}

	if _, err := m.EventByID(ctx, "not-a-hex-id"); !errors.Is(err, storage.ErrNotFoundEvent) {
		t.Fatalf("bad id: want ErrNotFoundEvent, got %v", err)
	}
}

func TestUpdatePayload_ConditionalRevision(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	out, err := m.CreateEvent(ctx, newComment(uuid.New(), "v1"))
	if err != nil {
		t.Fatalf("CreateEvent error: %v", err)
	}

	updated, err := m.UpdatePayload(ctx, out.ID, models.EventPayload{Content: "v2", Format: "html"}, out.Revision)
	if err != nil {
		t.Fatalf("UpdatePayload error: %v", err)
	}
	if updated.Payload.Content != "v2" || updated.Revision != out.Revision+1 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	// Повтор со старой ревизией — конфликт.
	if _, err := m.UpdatePayload(ctx, out.ID, models.EventPayload{Content: "v3"}, out.Revision); !errors.Is(err, storage.ErrStaleWrite) {
		t.Fatalf("stale update: want ErrStaleWrite, got %v", err)
	}

	// Безусловная запись проходит.
	final, err := m.UpdatePayload(ctx, out.ID, models.EventPayload{Content: "v3", Format: "html"}, storage.UnconditionalRevision)
	if err != nil {
		t.Fatalf("unconditional UpdatePayload error: %v", err)
	}
	if final.Payload.Content != "v3" || final.Revision != updated.Revision+1 {
		t.Fatalf("unexpected final event: %+v", final)
	}

	if _, err := m.UpdatePayload(ctx, "ffffffffffffffffffffffff", models.EventPayload{}, storage.UnconditionalRevision); !errors.Is(err, storage.ErrNotFoundEvent) {
		t.Fatalf("missing event: want ErrNotFoundEvent, got %v", err)
	}
}

func TestConvertToLog_PreservesParentAndPosition(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	requestID := uuid.New()

	root, err := m.CreateEvent(ctx, newComment(requestID, "root"))
	if err != nil {
		t.Fatalf("CreateEvent(root) error: %v", err)
	}

	reply := newComment(requestID, "reply")
	reply.ParentID = root.ID
	child, err := m.CreateEvent(ctx, reply)
	if err != nil {
		t.Fatalf("CreateEvent(reply) error: %v", err)
	}

	deleted, err := m.ConvertToLog(ctx, child.ID, models.EventPayload{
		Content: models.DeletedCommentContent,
		Event:   models.DeletedCommentEvent,
	}, child.Revision)
	if err != nil {
		t.Fatalf("ConvertToLog error: %v", err)
	}

	if deleted.Type != models.EventLog {
		t.Fatalf("type = %q, want log", deleted.Type)
	}
	if deleted.ParentID != root.ID {
		t.Fatalf("parent_id must be preserved: got %q, want %q", deleted.ParentID, root.ID)
	}
	if !deleted.CreatedAt.Equal(child.CreatedAt) {
		t.Fatalf("created_at must be preserved: got %v, want %v", deleted.CreatedAt, child.CreatedAt)
	}
	if deleted.Payload.Content != models.DeletedCommentContent || deleted.Payload.Event != models.DeletedCommentEvent {
		t.Fatalf("unexpected payload: %+v", deleted.Payload)
	}
	if deleted.Revision != child.Revision+1 {
		t.Fatalf("revision = %d, want %d", deleted.Revision, child.Revision+1)
	}
}

// seedTimeline — корень + n ответов в индексе; возвращает id корня.
func seedTimeline(t *testing.T, m *Mongo, requestID uuid.UUID, replies int) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)

	root := models.TimelineEntry{
		ID:        uuid.New().String(),
		RequestID: requestID,
		Type:      models.EventComment,
		CreatedBy: uuid.New(),
		Payload:   models.DumpedPayload{Content: "root", Format: "html"},
		CreatedAt: base,
		UpdatedAt: base,
	}
	if err := m.Index(ctx, root); err != nil {
		t.Fatalf("Index(root) error: %v", err)
	}

	for i := 0; i < replies; i++ {
		at := base.Add(time.Duration(i+1) * time.Minute)
		entry := models.TimelineEntry{
			ID:        uuid.New().String(),
			RequestID: requestID,
			ParentID:  root.ID,
			Type:      models.EventComment,
			CreatedBy: uuid.New(),
			Payload:   models.DumpedPayload{Content: fmt.Sprintf("reply-%d", i), Format: "html"},
			CreatedAt: at,
			UpdatedAt: at,
		}
		if err := m.Index(ctx, entry); err != nil {
			t.Fatalf("Index(reply %d) error: %v", i, err)
		}
	}

	return root.ID
}

func TestTimeline_PreviewCappedAndCountFull(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	requestID := uuid.New()
	seedTimeline(t, m, requestID, 7)

	page, err := m.Timeline(ctx, requestID, models.PageParams{Page: 1, Size: 10}, models.SortNewest, 5)
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}

	if page.Total != 1 {
		t.Fatalf("total roots = %d, want 1", page.Total)
	}
	if len(page.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(page.Items))
	}

	root := page.Items[0]
	if len(root.Children) != 5 {
		t.Fatalf("children preview = %d, want 5", len(root.Children))
	}
	if root.ChildrenCount != 7 {
		t.Fatalf("children_count = %d, want 7", root.ChildrenCount)
	}

	// Превью — последние ответы, новые первыми.
	if root.Children[0].Payload.Content != "reply-6" {
		t.Fatalf("first preview child = %q, want reply-6", root.Children[0].Payload.Content)
	}
	if !root.Children[0].CreatedAt.After(root.Children[4].CreatedAt) {
		t.Fatalf("preview must be sorted newest first")
	}
}

func TestTimeline_SortAndPagination(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	requestID := uuid.New()
	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)

	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		entry := models.TimelineEntry{
			ID:        uuid.New().String(),
			RequestID: requestID,
			Type:      models.EventComment,
			CreatedBy: uuid.New(),
			Payload:   models.DumpedPayload{Content: fmt.Sprintf("root-%d", i)},
			CreatedAt: at,
			UpdatedAt: at,
		}
		if err := m.Index(ctx, entry); err != nil {
			t.Fatalf("Index error: %v", err)
		}
	}

	oldest, err := m.Timeline(ctx, requestID, models.PageParams{Page: 1, Size: 2}, models.SortOldest, 5)
	if err != nil {
		t.Fatalf("Timeline(oldest) error: %v", err)
	}
	if oldest.Total != 3 || len(oldest.Items) != 2 {
		t.Fatalf("oldest page: total=%d items=%d", oldest.Total, len(oldest.Items))
	}
	if oldest.Items[0].Payload.Content != "root-0" {
		t.Fatalf("oldest first = %q, want root-0", oldest.Items[0].Payload.Content)
	}

	second, err := m.Timeline(ctx, requestID, models.PageParams{Page: 2, Size: 2}, models.SortOldest, 5)
	if err != nil {
		t.Fatalf("Timeline(page 2) error: %v", err)
	}
	if len(second.Items) != 1 || second.Items[0].Payload.Content != "root-2" {
		t.Fatalf("unexpected second page: %+v", second.Items)
	}

	newest, err := m.Timeline(ctx, requestID, models.PageParams{Page: 1, Size: 2}, models.SortNewest, 5)
	if err != nil {
		t.Fatalf("Timeline(newest) error: %v", err)
	}
	if newest.Items[0].Payload.Content != "root-2" {
		t.Fatalf("newest first = %q, want root-2", newest.Items[0].Payload.Content)
	}

	if _, err := m.Timeline(ctx, requestID, models.PageParams{Page: 0, Size: 2}, models.SortNewest, 5); !errors.Is(err, storage.ErrInvalidPage) {
		t.Fatalf("want ErrInvalidPage, got %v", err)
	}
}

func TestReplies_PaginationOldestFirst(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	requestID := uuid.New()
	rootID := seedTimeline(t, m, requestID, 7)

	first, err := m.Replies(ctx, requestID, rootID, models.PageParams{Page: 1, Size: 3})
	if err != nil {
		t.Fatalf("Replies error: %v", err)
	}
	if first.Total != 7 || len(first.Items) != 3 {
		t.Fatalf("replies page: total=%d items=%d", first.Total, len(first.Items))
	}
	if first.Items[0].Payload.Content != "reply-0" {
		t.Fatalf("replies must be oldest first, got %q", first.Items[0].Payload.Content)
	}

	last, err := m.Replies(ctx, requestID, rootID, models.PageParams{Page: 3, Size: 3})
	if err != nil {
		t.Fatalf("Replies(page 3) error: %v", err)
	}
	if len(last.Items) != 1 || last.Items[0].Payload.Content != "reply-6" {
		t.Fatalf("unexpected last page: %+v", last.Items)
	}
}

func TestStripFileFields_KeepsFileID(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	requestID := uuid.New()
	fileID := uuid.New().String()
	otherID := uuid.New().String()
	created := time.Now().UTC().Truncate(time.Millisecond)

	entry := models.TimelineEntry{
		ID:        uuid.New().String(),
		RequestID: requestID,
		Type:      models.EventComment,
		CreatedBy: uuid.New(),
		Payload: models.DumpedPayload{
			Content: "with files",
			Files: []models.DumpedFile{
				{
					FileID:           fileID,
					Key:              "report-aaaaa-bbbbb.pdf",
					OriginalFilename: "report.pdf",
					Size:             123,
					Mimetype:         "application/pdf",
					Created:          &created,
					Links:            &models.FileLinks{Self: "/api/requests/x/files/report-aaaaa-bbbbb.pdf"},
				},
				{
					FileID: otherID,
					Key:    "other-aaaaa-bbbbb.txt",
					Size:   5,
				},
			},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
	if err := m.Index(ctx, entry); err != nil {
		t.Fatalf("Index error: %v", err)
	}

	if err := m.StripFileFields(ctx, requestID, fileID); err != nil {
		t.Fatalf("StripFileFields error: %v", err)
	}

	page, err := m.Timeline(ctx, requestID, models.PageParams{Page: 1, Size: 10}, models.SortNewest, 5)
	if err != nil {
		t.Fatalf("Timeline error: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(page.Items))
	}

	files := page.Items[0].Payload.Files
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}

	// Зачищенная ссылка: остаётся только file_id.
	if files[0].FileID != fileID {
		t.Fatalf("file_id must survive strip, got %q", files[0].FileID)
	}
	if files[0].Key != "" || files[0].OriginalFilename != "" || files[0].Size != 0 || files[0].Links != nil || files[0].Created != nil {
		t.Fatalf("enriched fields must be stripped: %+v", files[0])
	}

	// Соседняя ссылка не тронута.
	if files[1].FileID != otherID || files[1].Key != "other-aaaaa-bbbbb.txt" {
		t.Fatalf("other file ref must be intact: %+v", files[1])
	}
}

// TestRefresh_NoOp — Refresh не возвращает ошибок.
func TestRefresh_NoOp(t *testing.T) {
	m := mustNewMongo(t, newTestConfig(t))

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
}
