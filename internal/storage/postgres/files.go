package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"
)

// fileColumns — список колонок таблицы request_files.
const fileColumns = `
id, request_id, key, original_filename, size, mimetype, checksum, object_version, created_at, updated_at
`

func scanFile(row pgx.Row) (*models.FileEntry, error) {
	var entry models.FileEntry

	if err := row.Scan(
		&entry.ID,
		&entry.RequestID,
		&entry.Key,
		&entry.OriginalFilename,
		&entry.Size,
		&entry.Mimetype,
		&entry.Checksum,
		&entry.ObjectVersion,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &entry, nil
}

// casRequest выполняет CAS по revision заявки внутри транзакции.
// При несовпадении возвращает storage.ErrStaleWrite, при отсутствии
// заявки — storage.ErrNotFoundRequest.
func casRequest(ctx context.Context, tx pgx.Tx, requestID uuid.UUID, expectedRevision int64) error {
	q := `
	UPDATE requests
	SET revision = revision + 1, updated_at = now(), last_activity_at = now()
	WHERE id = $1 AND revision = $2`

	tag, err := tx.Exec(ctx, q, requestID, expectedRevision)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`, requestID,
		).Scan(&exists); err != nil {
			return err
		}

		if !exists {
			return storage.ErrNotFoundRequest
		}

		return storage.ErrStaleWrite
	}

	return nil
}

// CreateFile атомарно вставляет файловую запись и резервирует объём бакета.
// Порядок внутри транзакции: CAS заявки -> приращение size с проверкой
// квоты -> вставка записи.
// Ошибки: storage.ErrStaleWrite, storage.ErrNotFoundRequest,
// storage.ErrQuotaExceeded, storage.ErrNotFoundBucket, storage.ErrAlreadyExists.
func (s *RequestsStorage) CreateFile(ctx context.Context, entry models.FileEntry, expectedRevision int64) (*models.FileEntry, error) {
	const op = "storage/postgres/files/CreateFile"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := casRequest(ctx, tx, entry.RequestID, expectedRevision); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := s.requestInTx(ctx, tx, entry.RequestID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.BucketID == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundBucket)
	}

	// Приращение с проверкой квоты одним UPDATE: size меняется только если
	// новый суммарный объём не превышает quota_size.
	qGrow := `
	UPDATE buckets
	SET size = size + $2
	WHERE id = $1 AND size + $2 <= quota_size`

	tag, err := tx.Exec(ctx, qGrow, *req.BucketID, entry.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM buckets WHERE id = $1)`, *req.BucketID,
		).Scan(&exists); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if !exists {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundBucket)
		}

		return nil, fmt.Errorf("%s: %w", op, storage.ErrQuotaExceeded)
	}

	qInsert := `
	INSERT INTO request_files (id, request_id, key, original_filename, size, mimetype, checksum, object_version)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING
	` + fileColumns

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := tx.QueryRow(ctx, qInsert,
		id,
		entry.RequestID,
		entry.Key,
		entry.OriginalFilename,
		entry.Size,
		entry.Mimetype,
		entry.Checksum,
		entry.ObjectVersion,
	)

	result, err := scanFile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeleteFile атомарно удаляет файловую запись и освобождает объём бакета.
// Удаление терминально: повторный вызов вернёт storage.ErrNotFoundFile.
// Ошибки: storage.ErrStaleWrite, storage.ErrNotFoundRequest, storage.ErrNotFoundFile.
func (s *RequestsStorage) DeleteFile(ctx context.Context, entry models.FileEntry, expectedRevision int64) error {
	const op = "storage/postgres/files/DeleteFile"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := casRequest(ctx, tx, entry.RequestID, expectedRevision); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var size int64
	err = tx.QueryRow(ctx,
		`DELETE FROM request_files WHERE id = $1 AND request_id = $2 RETURNING size`,
		entry.ID, entry.RequestID,
	).Scan(&size)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFoundFile)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := s.requestInTx(ctx, tx, entry.RequestID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if req.BucketID != nil {
		qShrink := `UPDATE buckets SET size = GREATEST(size - $2, 0) WHERE id = $1`
		if _, err := tx.Exec(ctx, qShrink, *req.BucketID, size); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// FileByKey возвращает файловую запись по (request_id, key).
// Ошибки: storage.ErrNotFoundFile, либо ошибка выполнения запроса.
func (s *RequestsStorage) FileByKey(ctx context.Context, requestID uuid.UUID, key string) (*models.FileEntry, error) {
	const op = "storage/postgres/files/FileByKey"

	q := `SELECT ` + fileColumns + ` FROM request_files WHERE request_id = $1 AND key = $2`

	result, err := scanFile(s.db.QueryRow(ctx, q, requestID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundFile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListFiles возвращает все файловые записи заявки (старые первыми).
func (s *RequestsStorage) ListFiles(ctx context.Context, requestID uuid.UUID) ([]models.FileEntry, error) {
	const op = "storage/postgres/files/ListFiles"

	q := `SELECT ` + fileColumns + ` FROM request_files WHERE request_id = $1 ORDER BY created_at, key`

	rows, err := s.db.Query(ctx, q, requestID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.FileEntry

	for rows.Next() {
		entry, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// FilesByIDs возвращает существующие файловые записи заявки из набора ids.
// Отсутствующие идентификаторы молча опускаются.
func (s *RequestsStorage) FilesByIDs(ctx context.Context, requestID uuid.UUID, ids []uuid.UUID) ([]models.FileEntry, error) {
	const op = "storage/postgres/files/FilesByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	q := `SELECT ` + fileColumns + ` FROM request_files WHERE request_id = $1 AND id = ANY($2) ORDER BY created_at, key`

	rows, err := s.db.Query(ctx, q, requestID, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.FileEntry

	for rows.Next() {
		entry, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
