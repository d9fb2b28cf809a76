package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/requesthub/requests-service/internal/storage"
)

// objectName собирает имя объекта: "<bucketID>/<key>".
func objectName(bucketID uuid.UUID, key string) string {
	return path.Join(bucketID.String(), key)
}

// PutObject синхронно записывает содержимое потока под ключом бакета заявки.
// Клиент minio-go считает md5/sha256 сам; контрольная сумма возвращается в ETag.
func (s *BlobStorage) PutObject(ctx context.Context, bucketID uuid.UUID, key string, r io.Reader, size int64, contentType string) (*storage.ObjectInfo, error) {
	const op = "storage/minio/objects/PutObject"

	info, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, objectName(bucketID, key), r, size, mclient.PutObjectOptions{
		ContentType:    contentType,
		SendContentMd5: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.ObjectInfo{
		Size:      info.Size,
		ETag:      info.ETag,
		VersionID: info.VersionID,
	}, nil
}

// ObjectContent возвращает поток содержимого объекта.
// Отсутствие объекта — storage.ErrNotFoundObject. Ошибка "нет ключа"
// у GetObject ленивая, поэтому факт существования проверяем через Stat.
func (s *BlobStorage) ObjectContent(ctx context.Context, bucketID uuid.UUID, key string) (io.ReadCloser, error) {
	const op = "storage/minio/objects/ObjectContent"

	name := objectName(bucketID, key)

	if _, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, name, mclient.StatObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundObject)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	obj, err := s.client.GetObject(ctx, s.cfg.S3.Bucket, name, mclient.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return obj, nil
}

// RemoveObject принудительно удаляет объект (ForceDelete + bypass governance).
// Удаление отсутствующего объекта не считается ошибкой.
func (s *BlobStorage) RemoveObject(ctx context.Context, bucketID uuid.UUID, key string) error {
	const op = "storage/minio/objects/RemoveObject"

	err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, objectName(bucketID, key), mclient.RemoveObjectOptions{
		ForceDelete:      true,
		GovernanceBypass: true,
	})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
