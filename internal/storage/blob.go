package storage

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
)

var (
	// ErrNotFoundObject — объект (ключ) отсутствует в блоб-хранилище.
	ErrNotFoundObject = errors.New("object not found")
)

// ObjectInfo — результат записи объекта.
type ObjectInfo struct {
	// Size — фактически записанный объём.
	Size int64
	// ETag — контрольная сумма содержимого по данным хранилища (hex md5).
	ETag string
	// VersionID — версия объекта; пустая строка, если версионирование выключено.
	VersionID string
}

// Blobs — контракт работы с сырым содержимым файлов.
// Бакет заявки отображается в префикс "<bucketID>/" внутри общего
// физического бакета; ключи объектов совпадают с ключами FileEntry.
type Blobs interface {
	// PutObject записывает содержимое потока под ключом бакета заявки.
	// Запись синхронная; неуспех не оставляет частичного объекта.
	PutObject(ctx context.Context, bucketID uuid.UUID, key string, r io.Reader, size int64, contentType string) (*ObjectInfo, error)

	// ObjectContent возвращает поток содержимого объекта.
	// Если объект отсутствует — ErrNotFoundObject.
	ObjectContent(ctx context.Context, bucketID uuid.UUID, key string) (io.ReadCloser, error)

	// RemoveObject принудительно удаляет объект (минуя retention/soft-delete).
	// Удаление отсутствующего объекта — не ошибка.
	RemoveObject(ctx context.Context, bucketID uuid.UUID, key string) error
}

// BlobStorage — верхнеуровневый интерфейс блоб-хранилища.
type BlobStorage interface {
	Blobs
}
