package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/requesthub/requests-service/internal/access"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/pkg/log"
	"github.com/requesthub/requests-service/internal/storage"
)

// FileLinks собирает клиентские ссылки файла заявки.
func FileLinks(requestID uuid.UUID, key string) models.FileLinks {
	self := fmt.Sprintf("/api/requests/%s/files/%s", requestID, key)

	return models.FileLinks{
		Self:         self,
		Content:      self + "/content",
		DownloadHTML: fmt.Sprintf("/requests/%s/files/%s", requestID, key),
	}
}

// contentTypeFor подбирает mimetype по расширению имени файла.
func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(path.Ext(filename)); ct != "" {
		// TypeByExtension может вернуть параметры ("text/plain; charset=utf-8").
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			return mt
		}

		return ct
	}

	return "application/octet-stream"
}

// CreateFile — загрузка вложения заявки.
//
// Шаги (каждый — жёсткое precondition):
//  1. резолв заявки (ErrNotFound);
//  2. право manage_files (ErrPermissionDenied);
//  3. contentLength в пределах лимита файла (ErrFileSizeLimit, без частичной
//     записи);
//  4. ленивое создание бакета под CAS по revision заявки;
//  5. генерация уникального ключа из имени файла;
//  6. синхронная запись содержимого в блоб-хранилище;
//  7. атомарный коммит FileEntry вместе с заявкой; при неуспехе коммита
//     записанный объект убирается — ни сироты-записи, ни сироты-объекта.
//
// Гонка параллельных записей по одной заявке отдаётся как ErrStaleWrite.
func (s *Service) CreateFile(ctx context.Context, identity models.Identity, requestID uuid.UUID, filename string, content io.Reader, contentLength int64) (*models.FileEntry, error) {
	const op = "service/files/CreateFile"

	lg := log.From(ctx).With(
		"op", op,
		"request_id", requestID.String(),
		"filename", filename,
	)

	filename = strings.TrimSpace(filename)
	if filename == "" {
		lg.Warn("invalid argument: empty filename")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if contentLength < 0 {
		lg.Warn("invalid argument: negative content length")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionManageFiles, request) {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	maxFileSize := s.cfg.Files.MaxFileSize

	// Лимиты существующего бакета важнее конфигурационных дефолтов.
	if request.BucketID != nil {
		bucket, err := s.requests.BucketByID(ctx, *request.BucketID)
		if err != nil {
			lg.Error("bucket lookup failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		maxFileSize = bucket.MaxFileSize
	}

	if contentLength > maxFileSize {
		lg.Warn("file size limit exceeded", "content_length", contentLength, "max_file_size", maxFileSize)
		return nil, fmt.Errorf("%s: %w", op, ErrFileSizeLimit)
	}

	bucketID, revision, err := s.ensureBucket(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrStaleWrite):
			lg.Warn("stale write on bucket creation")
			return nil, fmt.Errorf("%s: %w", op, ErrStaleWrite)
		default:
			lg.Error("ensure bucket failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	key := uniqueFileKey(filename)
	contentType := contentTypeFor(filename)

	info, err := s.blobs.PutObject(ctx, bucketID, key, content, contentLength, contentType)
	if err != nil {
		lg.Error("blob write failed", "err", err, "key", key)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	entry := models.FileEntry{
		RequestID:        request.ID,
		Key:              key,
		OriginalFilename: filename,
		Size:             info.Size,
		Mimetype:         contentType,
		Checksum:         "md5:" + info.ETag,
		ObjectVersion:    info.VersionID,
	}

	result, err := s.requests.CreateFile(ctx, entry, revision)
	if err != nil {
		// Откат блоба, чтобы не оставить объект без записи.
		if rmErr := s.blobs.RemoveObject(ctx, bucketID, key); rmErr != nil {
			lg.Warn("orphan blob cleanup failed", "err", rmErr, "key", key)
		}

		switch {
		case errors.Is(err, storage.ErrStaleWrite):
			lg.Warn("stale write on file commit")
			return nil, fmt.Errorf("%s: %w", op, ErrStaleWrite)
		case errors.Is(err, storage.ErrQuotaExceeded):
			lg.Warn("bucket quota exceeded")
			return nil, fmt.Errorf("%s: %w", op, ErrQuotaExceeded)
		case errors.Is(err, storage.ErrNotFoundRequest):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("file commit failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("file created", "file_id", result.ID.String(), "key", result.Key, "size", result.Size)

	return result, nil
}

// ensureBucket лениво создаёт бакет заявки. Идемпотентность обеспечивается
// nullable-ссылкой на бакет: существующий бакет возвращается как есть.
// Возвращает id бакета и актуальную ревизию заявки для последующего CAS.
func (s *Service) ensureBucket(ctx context.Context, request *models.Request) (uuid.UUID, int64, error) {
	if request.BucketID != nil {
		return *request.BucketID, request.Revision, nil
	}

	bucket, err := s.requests.CreateBucket(ctx, request.ID, request.Revision, models.Bucket{
		QuotaSize:   s.cfg.Files.QuotaSize,
		MaxFileSize: s.cfg.Files.MaxFileSize,
	})
	if err != nil {
		// Параллельный аплоад мог создать бакет первым.
		if errors.Is(err, storage.ErrAlreadyExists) {
			fresh, rerr := s.requests.RequestByID(ctx, request.ID)
			if rerr != nil {
				return uuid.Nil, 0, rerr
			}

			if fresh.BucketID != nil {
				return *fresh.BucketID, fresh.Revision, nil
			}
		}

		return uuid.Nil, 0, err
	}

	return bucket.ID, request.Revision + 1, nil
}

// DeleteFile — удаление вложения по ключу либо по идентификатору.
// Ровно один из fileKey/fileID обязателен (ErrArgumentMissing); при обоих
// заданных приоритет у ключа. Удаление не идемпотентно: повтор — ErrNotFound.
func (s *Service) DeleteFile(ctx context.Context, identity models.Identity, requestID uuid.UUID, fileKey, fileID string) (*models.FileEntry, error) {
	const op = "service/files/DeleteFile"

	lg := log.From(ctx).With(
		"op", op,
		"request_id", requestID.String(),
		"file_key", fileKey,
		"file_id", fileID,
	)

	fileKey = strings.TrimSpace(fileKey)
	fileID = strings.TrimSpace(fileID)

	if fileKey == "" && fileID == "" {
		lg.Warn("argument missing: neither file_key nor file_id")
		return nil, fmt.Errorf("%s: %w", op, ErrArgumentMissing)
	}

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionManageFiles, request) {
		lg.Warn("permission denied")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	entry, err := s.resolveFile(ctx, requestID, fileKey, fileID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundFile) {
			lg.Warn("file not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("file lookup failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.removeFile(ctx, request, entry); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundFile):
			lg.Warn("file already gone")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStaleWrite):
			lg.Warn("stale write on file delete")
			return nil, fmt.Errorf("%s: %w", op, ErrStaleWrite)
		default:
			lg.Error("file delete failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("file deleted", "file_id", entry.ID.String(), "key", entry.Key)

	return entry, nil
}

// resolveFile находит файловую запись по ключу (прямая выборка) либо по
// идентификатору (линейный скан файлов заявки — допустимо, пока число
// файлов ограничено квотой).
func (s *Service) resolveFile(ctx context.Context, requestID uuid.UUID, fileKey, fileID string) (*models.FileEntry, error) {
	if fileKey != "" {
		return s.requests.FileByKey(ctx, requestID, fileKey)
	}

	entries, err := s.requests.ListFiles(ctx, requestID)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].ID.String() == fileID {
			return &entries[i], nil
		}
	}

	return nil, storage.ErrNotFoundFile
}

// removeFile — общий путь физического удаления: принудительное удаление
// объекта, удаление записи с коммитом заявки, зачистка файловых полей в
// индексе. Ошибка зачистки индекса не фатальна.
func (s *Service) removeFile(ctx context.Context, request *models.Request, entry *models.FileEntry) error {
	if request.BucketID != nil {
		if err := s.blobs.RemoveObject(ctx, *request.BucketID, entry.Key); err != nil {
			return err
		}
	}

	fresh, err := s.requests.RequestByID(ctx, request.ID)
	if err != nil {
		return err
	}

	if err := s.requests.DeleteFile(ctx, *entry, fresh.Revision); err != nil {
		return err
	}

	if err := s.index.StripFileFields(ctx, entry.RequestID, entry.ID.String()); err != nil {
		log.From(ctx).Warn("strip file fields failed",
			"request_id", entry.RequestID.String(), "file_id", entry.ID.String(), "err", err)
	}

	return nil
}

// FileContent — потоковое чтение содержимого файла по ключу.
// Возвращает поток и метаданные; закрыть поток обязан вызывающий.
func (s *Service) FileContent(ctx context.Context, identity models.Identity, requestID uuid.UUID, fileKey string) (io.ReadCloser, *models.FileEntry, error) {
	const op = "service/files/FileContent"

	lg := log.From(ctx).With("op", op, "request_id", requestID.String(), "file_key", fileKey)

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, nil, err
	}

	if !s.policy.Can(identity, access.ActionReadFiles, request) {
		lg.Warn("permission denied")
		return nil, nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	entry, err := s.requests.FileByKey(ctx, requestID, strings.TrimSpace(fileKey))
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundFile) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("file lookup failed", "err", err)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if request.BucketID == nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	rc, err := s.blobs.ObjectContent(ctx, *request.BucketID, entry.Key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundObject) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("blob read failed", "err", err)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return rc, entry, nil
}

// ListFiles — упорядоченный список файлов заявки.
func (s *Service) ListFiles(ctx context.Context, identity models.Identity, requestID uuid.UUID) ([]models.FileEntry, error) {
	const op = "service/files/ListFiles"

	request, err := s.requestByID(ctx, op, requestID)
	if err != nil {
		return nil, err
	}

	if !s.policy.Can(identity, access.ActionReadFiles, request) {
		log.From(ctx).Warn("permission denied", "op", op, "request_id", requestID.String())
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	entries, err := s.requests.ListFiles(ctx, requestID)
	if err != nil {
		log.From(ctx).Error("list files failed", "op", op, "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return entries, nil
}

// cleanupFiles — best-effort каскадное удаление файлов, осиротевших после
// мутации комментария. Ошибки отдельных удалений логируются и глотаются:
// мутация комментария первична и уже зафиксирована.
func (s *Service) cleanupFiles(ctx context.Context, request *models.Request, fileIDs []string) {
	lg := log.From(ctx).With("request_id", request.ID.String())

	for _, fileID := range fileIDs {
		entry, err := s.resolveFile(ctx, request.ID, "", fileID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFoundFile) {
				lg.Warn("cleanup lookup failed", "file_id", fileID, "err", err)
			}

			continue
		}

		if err := s.removeFile(ctx, request, entry); err != nil {
			lg.Warn("cleanup delete failed", "file_id", fileID, "err", err)
		}
	}
}
