package service

// Общие хелперы тестов сервисного слоя.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки контрактов хранилищ и политики доступа:
//   mockgen -source=./internal/storage/requests.go -destination=./mocks/requests.go -package=mocks
//   mockgen -source=./internal/storage/blob.go -destination=./mocks/blob.go -package=mocks
//   mockgen -source=./internal/storage/events.go -destination=./mocks/events.go -package=mocks
//   mockgen -source=./internal/storage/index.go -destination=./mocks/index.go -package=mocks
//   mockgen -source=./internal/access/access.go -destination=./mocks/access.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/config"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/mocks"
)

// serviceMocks собирает моки всех зависимостей сервиса.
type serviceMocks struct {
	requests *mocks.MockRequests
	blobs    *mocks.MockBlobs
	events   *mocks.MockEvents
	index    *mocks.MockEventIndex
	policy   *mocks.MockPolicy
}

// newServiceWithMocks — поднимает сервис с моками зависимостей.
func newServiceWithMocks(t *testing.T) (*Service, serviceMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		requests: mocks.NewMockRequests(ctrl),
		blobs:    mocks.NewMockBlobs(ctrl),
		events:   mocks.NewMockEvents(ctrl),
		index:    mocks.NewMockEventIndex(ctrl),
		policy:   mocks.NewMockPolicy(ctrl),
	}

	s := &Service{
		requests: m.requests,
		blobs:    m.blobs,
		events:   m.events,
		index:    m.index,
		policy:   m.policy,
		cfg: config.Config{
			Files: config.FilesConfig{
				QuotaSize:   100 << 20,
				MaxFileSize: 10 << 20,
			},
			Timeline: config.TimelineConfig{
				PreviewSize: 5,
				Default:     25,
				Max:         100,
			},
		},
	}

	return s, m, ctrl
}

// mustRequest — быстрый хелпер для сборки заявки.
func mustRequest(createdBy uuid.UUID, bucketID *uuid.UUID, revision int64) *models.Request {
	now := time.Now().UTC()
	return &models.Request{
		ID:             uuid.New(),
		Number:         42,
		Title:          "printer on fire",
		Status:         models.StatusOpen,
		CreatedBy:      createdBy,
		BucketID:       bucketID,
		Revision:       revision,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}
}

// mustComment — быстрый хелпер для сборки события-комментария.
func mustComment(requestID uuid.UUID, parentID string, createdBy uuid.UUID, payload models.EventPayload) *models.Event {
	now := time.Now().UTC()
	return &models.Event{
		ID:        uuid.New().String(),
		RequestID: requestID,
		ParentID:  parentID,
		Type:      models.EventComment,
		CreatedBy: createdBy,
		Payload:   payload,
		Revision:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
