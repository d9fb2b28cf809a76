// Package models содержит доменные сущности requests-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus — статус заявки. Ядро сервиса использует статус только
// как precondition-гейт; полная машина состояний живёт выше.
type RequestStatus string

const (
	StatusOpen   RequestStatus = "open"
	StatusClosed RequestStatus = "closed"
)

// Request — агрегат заявки (PostgreSQL).
// Важно:
//   - BucketID — ленивый: NULL до первой загрузки файла (Option<BucketId>).
//   - Revision — счётчик оптимистической конкуренции; любой коммит агрегата
//     выполняется как CAS по revision и при гонке даёт stale-write конфликт.
//   - LastActivityAt — сдвигается записями в таймлайн; нужен для сортировки
//     заявок по активности на вышележащих слоях.
type Request struct {
	ID             uuid.UUID
	Number         int64
	Title          string
	Status         RequestStatus
	CreatedBy      uuid.UUID
	BucketID       *uuid.UUID
	Revision       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastActivityAt time.Time
}

// Bucket — неймспейс хранения файлов одной заявки.
// Создаётся один раз, повторно не создаётся; квота проверяется при записи,
// заранее не резервируется.
type Bucket struct {
	ID          uuid.UUID
	QuotaSize   int64
	MaxFileSize int64
	Size        int64
	CreatedAt   time.Time
}

// Identity — вызывающая сторона (сквозь транспорт и сервисный слой).
type Identity struct {
	UserID   uuid.UUID
	Username string
	Roles    []string
}
