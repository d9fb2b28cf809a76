package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/requesthub/requests-service/internal/models"
	"github.com/requesthub/requests-service/internal/storage"
)

// requestColumns — единый список колонок таблицы requests,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const requestColumns = `
id, number, title, status, created_by, bucket_id, revision, created_at, updated_at, last_activity_at
`

// scanRequest сканирует одну строку заявки из результата запроса в доменную модель.
func scanRequest(row pgx.Row) (*models.Request, error) {
	var req models.Request
	var status string

	if err := row.Scan(
		&req.ID,
		&req.Number,
		&req.Title,
		&status,
		&req.CreatedBy,
		&req.BucketID,
		&req.Revision,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.LastActivityAt,
	); err != nil {
		return nil, err
	}

	req.Status = models.RequestStatus(status)

	return &req, nil
}

// CreateRequest вставляет новую заявку (status = open, revision = 0).
// Номер заявки выдаёт последовательность на стороне БД.
// Ошибки: storage.ErrAlreadyExists при конфликте уникальности, иные — как есть.
func (s *RequestsStorage) CreateRequest(ctx context.Context, req models.Request) (*models.Request, error) {
	const op = "storage/postgres/requests/CreateRequest"

	q := `
	INSERT INTO requests (id, title, status, created_by)
	VALUES ($1, $2, $3, $4)
	RETURNING
	` + requestColumns

	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := s.db.QueryRow(ctx, q, id, req.Title, string(models.StatusOpen), req.CreatedBy)

	result, err := scanRequest(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RequestByID возвращает заявку по идентификатору.
// Ошибки: storage.ErrNotFoundRequest, либо ошибка выполнения запроса.
func (s *RequestsStorage) RequestByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	const op = "storage/postgres/requests/RequestByID"

	q := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	row := s.db.QueryRow(ctx, q, id)

	result, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundRequest)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// bucketColumns — список колонок таблицы buckets.
const bucketColumns = `
id, quota_size, max_file_size, size, created_at
`

func scanBucket(row pgx.Row) (*models.Bucket, error) {
	var bucket models.Bucket

	if err := row.Scan(
		&bucket.ID,
		&bucket.QuotaSize,
		&bucket.MaxFileSize,
		&bucket.Size,
		&bucket.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &bucket, nil
}

// CreateBucket лениво создаёт бакет заявки: вставляет запись бакета и
// привязывает её к заявке под CAS по revision. Обе записи — одна транзакция.
// Ошибки: storage.ErrAlreadyExists (бакет уже привязан),
// storage.ErrStaleWrite (CAS не прошёл), storage.ErrNotFoundRequest.
func (s *RequestsStorage) CreateBucket(ctx context.Context, requestID uuid.UUID, expectedRevision int64, bucket models.Bucket) (*models.Bucket, error) {
	const op = "storage/postgres/requests/CreateBucket"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := bucket.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	qInsert := `
	INSERT INTO buckets (id, quota_size, max_file_size, size)
	VALUES ($1, $2, $3, 0)
	RETURNING
	` + bucketColumns

	row := tx.QueryRow(ctx, qInsert, id, bucket.QuotaSize, bucket.MaxFileSize)

	result, err := scanBucket(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	qBind := `
	UPDATE requests
	SET bucket_id = $2, revision = revision + 1, updated_at = now()
	WHERE id = $1 AND revision = $3 AND bucket_id IS NULL`

	tag, err := tx.Exec(ctx, qBind, requestID, result.ID, expectedRevision)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		// Разбираемся, что именно не совпало.
		cur, err := s.requestInTx(ctx, tx, requestID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if cur.BucketID != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, storage.ErrStaleWrite)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// BucketByID возвращает бакет по идентификатору.
// Ошибки: storage.ErrNotFoundBucket, либо ошибка выполнения запроса.
func (s *RequestsStorage) BucketByID(ctx context.Context, id uuid.UUID) (*models.Bucket, error) {
	const op = "storage/postgres/requests/BucketByID"

	q := `SELECT ` + bucketColumns + ` FROM buckets WHERE id = $1`

	row := s.db.QueryRow(ctx, q, id)

	result, err := scanBucket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundBucket)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// TouchActivity сдвигает last_activity_at заявки.
// Отсутствие заявки — storage.ErrNotFoundRequest.
func (s *RequestsStorage) TouchActivity(ctx context.Context, requestID uuid.UUID, at time.Time) error {
	const op = "storage/postgres/requests/TouchActivity"

	q := `UPDATE requests SET last_activity_at = $2 WHERE id = $1`

	tag, err := s.db.Exec(ctx, q, requestID, at)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFoundRequest)
	}

	return nil
}

// requestInTx читает заявку внутри открытой транзакции.
func (s *RequestsStorage) requestInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Request, error) {
	q := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	result, err := scanRequest(tx.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFoundRequest
		}

		return nil, err
	}

	return result, nil
}
