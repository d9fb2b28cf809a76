// storage содержит контракты слоя хранилищ requests-сервиса.
//
// requests.go — заявки, бакеты и файловые записи в реляционной БД
// (оптимистическая конкуренция через счётчик revision заявки).
// blob.go — сырое содержимое файлов в S3/MinIO.
// events.go — авторитетный поток событий таймлайна.
// index.go — денормализованный поисковый индекс таймлайна.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/models"
)

var (
	// ErrNotFoundRequest — заявка не найдена.
	ErrNotFoundRequest = errors.New("request not found")
	// ErrNotFoundFile — файловая запись не найдена.
	ErrNotFoundFile = errors.New("file not found")
	// ErrNotFoundBucket — бакет не найден.
	ErrNotFoundBucket = errors.New("bucket not found")
	// ErrStaleWrite — CAS по revision заявки/события не прошёл: параллельная
	// запись успела раньше. Конфликт ретраибелен.
	ErrStaleWrite = errors.New("stale write")
	// ErrQuotaExceeded — суммарный размер файлов превысил бы квоту бакета.
	ErrQuotaExceeded = errors.New("bucket quota exceeded")
	// ErrAlreadyExists — конфликт уникальности (например, повтор ключа файла).
	ErrAlreadyExists = errors.New("already exists")
)

// Requests описывает операции над заявками, их бакетами и файловыми записями.
//
// Все мутации принимают expectedRevision — ожидаемую версию заявки на момент
// чтения агрегата вызывающей стороной. Реализация обязана выполнять запись
// как CAS (WHERE revision = expectedRevision, revision = revision + 1)
// и возвращать ErrStaleWrite при несовпадении.
type Requests interface {
	// CreateRequest создаёт заявку со статусом open и revision = 0.
	CreateRequest(ctx context.Context, req models.Request) (*models.Request, error)

	// RequestByID возвращает заявку по идентификатору.
	// Если запись не найдена — ErrNotFoundRequest.
	RequestByID(ctx context.Context, id uuid.UUID) (*models.Request, error)

	// CreateBucket лениво создаёт бакет заявки и проставляет bucket_id
	// под CAS по revision. Повторное создание — ошибка ErrAlreadyExists.
	CreateBucket(ctx context.Context, requestID uuid.UUID, expectedRevision int64, bucket models.Bucket) (*models.Bucket, error)

	// BucketByID возвращает бакет по идентификатору.
	// Если запись не найдена — ErrNotFoundBucket.
	BucketByID(ctx context.Context, id uuid.UUID) (*models.Bucket, error)

	// CreateFile атомарно (одна транзакция): вставляет файловую запись,
	// увеличивает занятый объём бакета с проверкой квоты и коммитит заявку
	// (CAS по revision). Возможные ошибки: ErrQuotaExceeded, ErrAlreadyExists,
	// ErrStaleWrite.
	CreateFile(ctx context.Context, entry models.FileEntry, expectedRevision int64) (*models.FileEntry, error)

	// DeleteFile атомарно удаляет файловую запись, уменьшает занятый объём
	// бакета и коммитит заявку (CAS по revision). Удаление терминально;
	// отсутствующая запись — ErrNotFoundFile.
	DeleteFile(ctx context.Context, entry models.FileEntry, expectedRevision int64) error

	// FileByKey возвращает файловую запись по (request_id, key).
	// Если запись не найдена — ErrNotFoundFile.
	FileByKey(ctx context.Context, requestID uuid.UUID, key string) (*models.FileEntry, error)

	// ListFiles возвращает все файловые записи заявки, упорядоченные по
	// времени создания (затем по ключу).
	ListFiles(ctx context.Context, requestID uuid.UUID) ([]models.FileEntry, error)

	// FilesByIDs возвращает существующие файловые записи заявки с
	// идентификаторами из ids. Отсутствующие идентификаторы молча опускаются.
	FilesByIDs(ctx context.Context, requestID uuid.UUID, ids []uuid.UUID) ([]models.FileEntry, error)

	// TouchActivity сдвигает last_activity_at заявки (запись в таймлайн).
	TouchActivity(ctx context.Context, requestID uuid.UUID, at time.Time) error
}

// RequestsStorage — верхнеуровневый интерфейс реляционного хранилища.
type RequestsStorage interface {
	Requests
	Close()
}
